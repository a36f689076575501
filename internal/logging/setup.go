package logging

import (
	"github.com/bokysan/base45/internal/args"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"strings"
)

// SetupLogging configures the standard logrus logger from the General options
func SetupLogging() error {
	SetVerbosity(args.General.Verbose)

	if args.General.LogReportCaller {
		log.AddHook(&ContextHook{})
	}

	log.SetFormatter(NewFormatter(args.General.LogFormat, args.General.LogColor, args.General.LogFullTimestamp))
	log.SetReportCaller(args.General.LogReportCaller)

	if args.General.LogFile != nil {
		w, err := OpenLogFile(*args.General.LogFile)
		if err != nil {
			return err
		}
		log.SetOutput(w)
	}

	log.Debugf("Verbosity level: %v", VerbosityName())
	return nil
}

// NewFormatter creates either a JSON or a text formatter
func NewFormatter(format, color string, fullTimestamp bool) log.Formatter {
	if format == "json" {
		return &log.JSONFormatter{
			FieldMap: log.FieldMap{
				log.FieldKeyTime:  "timestamp",
				log.FieldKeyLevel: "@level",
				log.FieldKeyMsg:   "message",
				log.FieldKeyFunc:  "@caller",
			},
		}
	}

	color = strings.TrimSpace(strings.ToLower(color))
	return &log.TextFormatter{
		ForceColors:   color == "yes" || color == "true" || color == "1",
		DisableColors: color == "no" || color == "false" || color == "0",
		FullTimestamp: fullTimestamp,
	}
}

// OpenLogFile opens the file for appending. An empty name or `-` means standard error.
func OpenLogFile(name string) (io.Writer, error) {
	if name == "" || name == "-" {
		return os.Stderr, nil
	}
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not open log file %s", name)
	}
	return f, nil
}

// TraceBuffer dumps the contents of the buffer when tracing is enabled
func TraceBuffer(name string, data []byte) {
	if log.IsLevelEnabled(log.TraceLevel) {
		log.Tracef("%s (%d bytes):\n%s", name, len(data), spew.Sdump(data))
	}
}
