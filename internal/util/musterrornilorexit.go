package util

import (
	"github.com/bokysan/base45"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"os"
)

const (
	// ErrInvalidInput is the exit code used when the input could not be decoded (EX_DATAERR)
	ErrInvalidInput = 65
	ErrGeneric      = 99
)

// MustErrorNilOrExit will check the provided argument. If it's `nil` it will simply return. If it's
// not `nil`, it will log the error as `log.FatalLevel` and exit immediately with provided error code.
// Error code is unwrapped from `flags.Error` object. Malformed Base45 input exits with ErrInvalidInput;
// any other kind of error returns a generic error code - 99.
func MustErrorNilOrExit(err error) {
	if err == nil {
		return
	}

	var flagsError *flags.Error
	if errors.As(err, &flagsError) && flagsError.Type == flags.ErrHelp {
		os.Exit(0)
		return
	}

	log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
	log.Exit(ExitCode(err))
}

// ExitCode maps the error to the process exit code
func ExitCode(err error) int {
	var flagsError *flags.Error
	switch {
	case err == nil:
		return 0
	case errors.As(err, &flagsError):
		if flagsError.Type == flags.ErrHelp {
			return 0
		}
		return int(flagsError.Type)
	case errors.Is(err, base45.ErrInvalidBase45):
		return ErrInvalidInput
	default:
		return ErrGeneric
	}
}
