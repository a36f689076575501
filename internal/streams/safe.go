package streams

import (
	"github.com/pkg/errors"
	"io"
	"os"
)

// SafeReader implements the io.ReadCloser and makes sure that `Close()` can be called safely multiple times.
// Calling `Close()` on a closed object will simply succeed without an error. Standard input is never closed.
type SafeReader struct {
	io.ReadCloser
	closed bool
}

func NewSafeReader(wrapped io.ReadCloser) *SafeReader {
	if scs, ok := wrapped.(*SafeReader); ok {
		return scs
	}
	return &SafeReader{
		ReadCloser: wrapped,
	}
}

// Close will close the underlying stream. If the Close has already been called, it will do nothing
func (ns *SafeReader) Close() error {
	if ns.closed {
		return nil
	}
	ns.closed = true
	if ns.ReadCloser == os.Stdin {
		return nil
	}
	return errors.WithStack(ns.ReadCloser.Close())
}

// Closed will return `true` if SafeReader.Close has been called at least once
func (ns *SafeReader) Closed() bool {
	return ns.closed
}

// SafeWriter is the writing counterpart of SafeReader. Standard output and error are never closed.
type SafeWriter struct {
	io.WriteCloser
	closed bool
}

func NewSafeWriter(wrapped io.WriteCloser) *SafeWriter {
	if scs, ok := wrapped.(*SafeWriter); ok {
		return scs
	}
	return &SafeWriter{
		WriteCloser: wrapped,
	}
}

// Write fails once the writer has been closed
func (ns *SafeWriter) Write(p []byte) (int, error) {
	if ns.closed {
		return 0, errors.WithStack(os.ErrClosed)
	}
	return ns.WriteCloser.Write(p)
}

// Close will close the underlying stream. If the Close has already been called, it will do nothing
func (ns *SafeWriter) Close() error {
	if ns.closed {
		return nil
	}
	ns.closed = true
	if ns.WriteCloser == os.Stdout || ns.WriteCloser == os.Stderr {
		return nil
	}
	return errors.WithStack(ns.WriteCloser.Close())
}

func (ns *SafeWriter) Closed() bool {
	return ns.closed
}
