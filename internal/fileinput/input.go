package fileinput

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jcorbin/gobf/internal/runeio"
)

// Location names a line and column in an Input file.
type Location struct {
	Name string
	Line int
	Col  int
}

// Line combines a Location along with a bytes.Buffer for handling it.
type Line struct {
	Location
	bytes.Buffer
}

func (loc Location) String() string {
	if loc.Col > 0 {
		return fmt.Sprintf("%v:%v:%v", loc.Name, loc.Line, loc.Col)
	}
	return fmt.Sprintf("%v:%v", loc.Name, loc.Line)
}

func (il Line) String() string { return fmt.Sprintf("%v %q", il.Location, il.Buffer.String()) }

// Input implements sequential rune reading through a Queue of one or more
// input streams. Both the current and last scanned lines are tracked to
// facilitate user feedback.
type Input struct {
	rr    io.RuneReader
	eol   bool
	Queue []io.Reader
	Last  Line
	Scan  Line
}

// Loc returns the location of the most recently read rune.
func (in *Input) Loc() Location {
	return in.Scan.Location
}

// ReadRune reads one rune from the current input stream, appending it into the
// current Scan line, and rolling Scan over to Last after line feed.
// Returns io.EOF only after every queued stream has been exhausted.
func (in *Input) ReadRune() (rune, int, error) {
	for {
		if in.rr == nil && !in.nextIn() {
			return 0, 0, io.EOF
		}

		r, n, err := in.rr.ReadRune()
		if n > 0 {
			if in.eol {
				in.nextLine()
			}
			in.Scan.Col++
			if in.eol = r == '\n'; !in.eol {
				in.Scan.WriteRune(r)
			}
			return r, n, nil
		}

		if err == io.EOF {
			in.closeIn()
			continue
		}
		if err == nil {
			err = io.ErrNoProgress
		}
		return 0, 0, err
	}
}

func (in *Input) nextLine() {
	in.Last.Reset()
	in.Last.Location = in.Scan.Location
	in.Last.Col = 0
	in.Last.Write(in.Scan.Bytes())
	in.Scan.Reset()
	in.Scan.Line++
	in.Scan.Col = 0
}

func (in *Input) closeIn() {
	if in.rr != nil {
		if cl, ok := in.rr.(io.Closer); ok {
			cl.Close()
		}
		in.rr = nil
	}
}

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	r := in.Queue[0]
	in.Queue = in.Queue[1:]
	in.rr = runeio.NewReader(r)
	if in.Scan.Name != "" {
		in.nextLine()
	}
	in.Scan.Name = NameOf(r)
	in.Scan.Line = 1
	in.Scan.Col = 0
	in.eol = false
	return true
}

// NameOf returns obj.Name() if it has one, or a placeholder naming its type.
func NameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}

// NamedReader attaches a name to an io.Reader, as reported by NameOf.
func NamedReader(name string, r io.Reader) io.Reader {
	return namedReader{r, name}
}

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }
