package decode

import (
	"github.com/bokysan/base45/internal/commands"
	"github.com/bokysan/base45/internal/logging"
	"github.com/bokysan/base45/internal/streams"
	"github.com/bokysan/base45/internal/util/enc"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
)

// Command decodes Base45 text into raw bytes
type Command struct {
	commands.IOOptions `yaml:",inline"`
}

func NewCommand() *Command {
	return &Command{
		IOOptions: commands.IOOptions{
			Input:    streams.StandardStream,
			Output:   streams.StandardStream,
			Encoding: "base45",
		},
	}
}

func (c *Command) Execute(args []string) error {
	if err := logging.SetupLogging(); err != nil {
		return err
	}

	encoder, err := c.Encoder()
	if err != nil {
		return err
	}

	in, out, err := c.Open()
	if err != nil {
		return err
	}
	defer streams.LogClose(in)
	defer streams.LogClose(out)

	log.Debugf("Decoding %v with %v to %v", in, encoder.Name(), out)
	if c.Lines {
		return c.DecodeLines(encoder, in, out)
	}
	return c.DecodeAll(encoder, in, out)
}

// DecodeAll decodes the whole input at once. Trailing line terminators are ignored. Nothing is
// written if the input is invalid.
func (c *Command) DecodeAll(encoder enc.Encoder, input io.Reader, output io.Writer) error {
	data, err := commands.ReadAll(input)
	if err != nil {
		return err
	}

	decoded, err := encoder.Decode(string(commands.TrimNewline(data)))
	if err != nil {
		return errors.Wrapf(err, "Could not decode %v", input)
	}
	logging.TraceBuffer("Decoded", decoded)

	if _, err := output.Write(decoded); err != nil {
		return errors.Wrapf(err, "Could not write to %v", output)
	}
	log.Debugf("Decoded %d characters into %d bytes", len(data), len(decoded))
	return nil
}

// DecodeLines decodes every line separately and terminates every decoded line with `\n`. Invalid
// lines are skipped and reported together once the whole input has been processed.
func (c *Command) DecodeLines(encoder enc.Encoder, input io.Reader, output io.Writer) error {
	var errs error

	err := commands.ForEachLine(input, func(number int, line []byte) error {
		decoded, err := encoder.Decode(string(line))
		if err != nil {
			log.Warnf("Line %d is not valid: %v", number, err)
			errs = multierror.Append(errs, errors.Wrapf(err, "line %d", number))
			return nil
		}
		logging.TraceBuffer("Line", decoded)

		if _, err := output.Write(append(decoded, '\n')); err != nil {
			return errors.Wrapf(err, "Could not write line %d to %v", number, output)
		}
		return nil
	})
	if err != nil {
		return multierror.Append(errs, err).ErrorOrNil()
	}

	return errs
}
