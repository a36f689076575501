package logging

import (
	log "github.com/sirupsen/logrus"
)

// SetVerbosity defines the verbosity level of the application. Every `-v` raises the level by one,
// starting with panic.
func SetVerbosity(v []bool) {
	log.SetLevel(VerbosityLevel(len(v)))
}

// VerbosityLevel converts the number of `-v` flags into a log level
func VerbosityLevel(count int) log.Level {
	if count < 0 {
		return log.PanicLevel
	} else if count > int(log.TraceLevel) {
		return log.TraceLevel
	}
	return log.Level(count)
}

func VerbosityName() string {
	switch log.GetLevel() {
	case log.PanicLevel:
		return "PANIC"
	case log.FatalLevel:
		return "FATAL"
	case log.ErrorLevel:
		return "ERROR"
	case log.WarnLevel:
		return "WARN"
	case log.InfoLevel:
		return "INFO"
	case log.DebugLevel:
		return "DEBUG"
	default:
		return "TRACE"
	}
}
