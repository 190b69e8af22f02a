package runeio

import (
	"bufio"
	"io"
)

// Reader is an io.Reader that also supports reading runes.
type Reader interface {
	io.Reader
	io.RuneReader
}

// NewReader returns r if it already reads runes, otherwise r buffered by a
// bufio.Reader. Closing the result closes r when r is an io.Closer.
func NewReader(r io.Reader) Reader {
	if impl, ok := r.(Reader); ok {
		return impl
	}
	br := bufio.NewReader(r)
	if cl, ok := r.(io.Closer); ok {
		return closingReader{br, cl}
	}
	return br
}

type closingReader struct {
	*bufio.Reader
	io.Closer
}
