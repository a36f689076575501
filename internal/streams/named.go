package streams

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
)

// StandardStream is the name which selects standard input or output instead of a file
const StandardStream = "-"

// NamedReader implements the io.ReadCloser interface as well as fmt.Stringer. The name is used when
// the stream is printed with `%v`, e.g. in log messages.
type NamedReader struct {
	ReadCloserClosed
	name string
}

func NewNamedReader(wrapped io.ReadCloser, name string) *NamedReader {
	return &NamedReader{
		ReadCloserClosed: NewSafeReader(wrapped),
		name:             name,
	}
}

func (ns *NamedReader) String() string {
	return ns.name
}

// NamedWriter implements the io.WriteCloser interface as well as fmt.Stringer.
type NamedWriter struct {
	WriteCloserClosed
	name string
}

func NewNamedWriter(wrapped io.WriteCloser, name string) *NamedWriter {
	return &NamedWriter{
		WriteCloserClosed: NewSafeWriter(wrapped),
		name:              name,
	}
}

func (ns *NamedWriter) String() string {
	return ns.name
}

// OpenInput opens the named file for reading, or standard input if the name is empty or `-`
func OpenInput(name string) (*NamedReader, error) {
	if name == "" || name == StandardStream {
		return NewNamedReader(os.Stdin, "stdin"), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not open input %s", name)
	}
	log.Debugf("Reading from %s", name)
	return NewNamedReader(f, name), nil
}

// OpenOutput creates (or truncates) the named file, or returns standard output if the name is empty or `-`
func OpenOutput(name string) (*NamedWriter, error) {
	if name == "" || name == StandardStream {
		return NewNamedWriter(os.Stdout, "stdout"), nil
	}
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not open output %s", name)
	}
	log.Debugf("Writing to %s", name)
	return NewNamedWriter(f, name), nil
}

// LogClose closes the stream and logs the failure, if any. Meant for `defer`.
func LogClose(c io.Closer) {
	if err := c.Close(); err != nil {
		log.Warnf("Could not close %v: %v", c, err)
	}
}
