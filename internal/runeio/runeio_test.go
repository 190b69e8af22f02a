package runeio_test

import (
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/jcorbin/gobf/internal/runeio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_WriteLatin1(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   []byte
		out  string
	}{
		{"ascii", []byte("hello\n"), "hello\n"},
		{"nel", []byte{0x85}, "\r\n"},
		{"csi", []byte{0x9b, '2', 'J'}, "\x1b[2J"},
		{"latin1", []byte{0xe9, 0xff}, "éÿ"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var sb strings.Builder
			for _, b := range tc.in {
				require.NoError(t, runeio.WriteLatin1(&sb, b))
			}
			assert.Equal(t, tc.out, sb.String())
		})
	}
}

func Test_Display(t *testing.T) {
	assert.Equal(t, "'A'", runeio.Display('A'))
	assert.Equal(t, "^J", runeio.Display('\n'))
	assert.Equal(t, "^@", runeio.Display(0))
	assert.Equal(t, "^?", runeio.Display(0x7f))
	assert.Equal(t, "^[[", runeio.Display(0x9b))
	assert.Equal(t, "'é'", runeio.Display(0xe9))
	assert.Equal(t, "160", runeio.Display(0xa0))
}

func Test_Name(t *testing.T) {
	assert.Equal(t, "<NUL>", runeio.Name(0))
	assert.Equal(t, "<NL>", runeio.Name('\n'))
	assert.Equal(t, "<SP>", runeio.Name(' '))
	assert.Equal(t, "<DEL>", runeio.Name(0x7f))
	assert.Equal(t, "<CSI>", runeio.Name(0x9b))
	assert.Equal(t, "", runeio.Name('x'))
}

type closeCounter struct {
	io.Reader
	closed int
}

func (cc *closeCounter) Close() error {
	cc.closed++
	return nil
}

func Test_NewReader(t *testing.T) {
	sr := strings.NewReader("x")
	assert.Equal(t, runeio.Reader(sr), runeio.NewReader(sr))

	cc := &closeCounter{Reader: iotest.OneByteReader(strings.NewReader("é+"))}
	rr := runeio.NewReader(cc)
	r, _, err := rr.ReadRune()
	require.NoError(t, err)
	assert.Equal(t, 'é', r)
	cl, ok := rr.(io.Closer)
	require.True(t, ok, "expected closer")
	require.NoError(t, cl.Close())
	assert.Equal(t, 1, cc.closed)
}
