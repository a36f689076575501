package commands

import (
	"bufio"
	"bytes"
	"github.com/bokysan/base45/internal/streams"
	"github.com/bokysan/base45/internal/util/enc"
	"github.com/pkg/errors"
	"io"
	"io/ioutil"
)

// IOOptions are shared between the encode and decode commands
type IOOptions struct {
	Input    string `yaml:"input"    short:"i" long:"input"    env:"BASE45_INPUT"    description:"Input file, '-' for standard input" default:"-"`
	Output   string `yaml:"output"   short:"o" long:"output"   env:"BASE45_OUTPUT"   description:"Output file, '-' for standard output" default:"-"`
	Lines    bool   `yaml:"lines"    short:"l" long:"lines"                          description:"Process every line of the input separately"`
	Encoding string `yaml:"encoding" short:"e" long:"encoding" env:"BASE45_ENCODING" description:"Encoding to use" choice:"base45" default:"base45"`
}

// Encoder resolves the configured encoding
func (o *IOOptions) Encoder() (enc.Encoder, error) {
	name := o.Encoding
	if name == "" {
		name = "base45"
	}
	return enc.Lookup(name)
}

// Open opens the configured input and output streams. The caller must close both.
func (o *IOOptions) Open() (*streams.NamedReader, *streams.NamedWriter, error) {
	in, err := streams.OpenInput(o.Input)
	if err != nil {
		return nil, nil, err
	}
	out, err := streams.OpenOutput(o.Output)
	if err != nil {
		streams.LogClose(in)
		return nil, nil, err
	}
	return in, out, nil
}

// ReadAll reads the complete input
func ReadAll(r io.Reader) ([]byte, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not read from %v", r)
	}
	return data, nil
}

// TrimNewline removes trailing line terminators. Spaces are kept as they are valid Base45 symbols.
func TrimNewline(data []byte) []byte {
	return bytes.TrimRight(data, "\r\n")
}

// ForEachLine calls fn for every line of the input. Line numbers start at 1 and the line terminator
// (`\n` or `\r\n`) is not part of the line. A final line without a terminator is still reported.
func ForEachLine(r io.Reader, fn func(number int, line []byte) error) error {
	reader := bufio.NewReader(r)
	for number := 1; ; number++ {
		line, err := reader.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return errors.Wrapf(err, "Could not read line %d", number)
		}
		if len(line) == 0 && err == io.EOF {
			return nil
		}

		line = bytes.TrimSuffix(line, []byte("\n"))
		line = bytes.TrimSuffix(line, []byte("\r"))
		if ferr := fn(number, line); ferr != nil {
			return ferr
		}

		if err == io.EOF {
			return nil
		}
	}
}
