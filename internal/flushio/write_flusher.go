package flushio

import (
	"bufio"
	"bytes"
	"io"
)

// WriteFlusher is a flush-able io.Writer that can also write single bytes.
type WriteFlusher interface {
	io.Writer
	io.ByteWriter
	Flush() error
}

// Discard is a WriteFlusher that does nothing.
var Discard WriteFlusher = discard{}

// NewWriteFlusher creates a new flushable writer: if the given writer is an
// in-memory buffer, a wrapping with a noop Flush is returned; otherwise,
// unless the original writer is already a WriteFlusher, a new bufio.Writer is
// returned.
func NewWriteFlusher(w io.Writer) WriteFlusher {
	// discard writer does not need flushing
	if w == nil || w == io.Discard {
		return Discard
	}

	if wf, is := w.(WriteFlusher); is {
		return wf
	}

	// in memory buffers, as implemented by types like bytes.Buffer and
	// strings.Builder, do not need to be flushed
	type buffer interface {
		io.Writer
		io.ByteWriter
		Cap() int
		Len() int
		Grow(n int)
		Reset()
	}
	if buf, isBuffer := w.(buffer); isBuffer {
		return nopFlusher{buf}
	}

	return bufio.NewWriter(w)
}

type nopFlusher struct {
	buf interface {
		io.Writer
		io.ByteWriter
	}
}

func (nf nopFlusher) Write(p []byte) (int, error) { return nf.buf.Write(p) }
func (nf nopFlusher) WriteByte(c byte) error      { return nf.buf.WriteByte(c) }
func (nf nopFlusher) Flush() error                { return nil }

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
func (discard) WriteByte(c byte) error      { return nil }
func (discard) Flush() error                { return nil }

// LineFlusher wraps a WriteFlusher so that it is flushed after every write
// that contains a line feed, as an interactive terminal would expect.
func LineFlusher(wf WriteFlusher) WriteFlusher {
	switch wf.(type) {
	case nil, discard, nopFlusher, lineFlusher:
		return wf
	}
	return lineFlusher{wf}
}

type lineFlusher struct{ WriteFlusher }

func (lf lineFlusher) Write(p []byte) (int, error) {
	n, err := lf.WriteFlusher.Write(p)
	if err == nil && bytes.IndexByte(p, '\n') >= 0 {
		err = lf.Flush()
	}
	return n, err
}

func (lf lineFlusher) WriteByte(c byte) error {
	err := lf.WriteFlusher.WriteByte(c)
	if err == nil && c == '\n' {
		err = lf.Flush()
	}
	return err
}
