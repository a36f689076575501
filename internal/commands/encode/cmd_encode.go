package encode

import (
	"github.com/bokysan/base45/internal/commands"
	"github.com/bokysan/base45/internal/logging"
	"github.com/bokysan/base45/internal/streams"
	"github.com/bokysan/base45/internal/util/enc"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"strings"
)

// Command encodes raw bytes into Base45 text
type Command struct {
	commands.IOOptions `yaml:",inline"`
	NoNewline          bool `yaml:"no-newline" short:"n" long:"no-newline" description:"Do not terminate the output with a newline"`

	Args struct {
		Text []string `positional-arg-name:"TEXT" description:"Text to encode instead of the input. Multiple arguments are joined with a space."`
	} `yaml:"-" positional-args:"yes"`
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

	if len(c.Args.Text) > 0 {
		c.Input = ""
	}

	in, out, err := c.Open()
	if err != nil {
		return err
	}
	defer streams.LogClose(in)
	defer streams.LogClose(out)

	var input io.Reader = in
	if len(c.Args.Text) > 0 {
		input = strings.NewReader(strings.Join(c.Args.Text, " "))
	}

	log.Debugf("Encoding %v with %v to %v", in, encoder.Name(), out)
	if c.Lines {
		return c.EncodeLines(encoder, input, out)
	}
	return c.EncodeAll(encoder, input, out)
}

// EncodeAll encodes the whole input as a single buffer
func (c *Command) EncodeAll(encoder enc.Encoder, input io.Reader, output io.Writer) error {
	data, err := commands.ReadAll(input)
	if err != nil {
		return err
	}
	logging.TraceBuffer("Input", data)

	encoded := encoder.Encode(data)
	if !c.NoNewline {
		encoded += "\n"
	}
	if _, err := io.WriteString(output, encoded); err != nil {
		return errors.Wrapf(err, "Could not write to %v", output)
	}
	log.Debugf("Encoded %d bytes into %d characters", len(data), len(encoded))
	return nil
}

// EncodeLines encodes every line separately. Line terminators are not encoded; every encoded line
// is terminated with `\n`.
func (c *Command) EncodeLines(encoder enc.Encoder, input io.Reader, output io.Writer) error {
	return commands.ForEachLine(input, func(number int, line []byte) error {
		logging.TraceBuffer("Line", line)
		if _, err := io.WriteString(output, encoder.Encode(line)+"\n"); err != nil {
			return errors.Wrapf(err, "Could not write line %d to %v", number, output)
		}
		return nil
	})
}
