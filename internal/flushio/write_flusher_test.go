package flushio_test

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/jcorbin/gobf/internal/flushio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordWriter struct {
	writes []string
	err    error
}

func (rw *recordWriter) Write(p []byte) (int, error) {
	if rw.err != nil {
		return 0, rw.err
	}
	rw.writes = append(rw.writes, string(p))
	return len(p), nil
}

func Test_NewWriteFlusher(t *testing.T) {
	assert.Equal(t, flushio.Discard, flushio.NewWriteFlusher(io.Discard), "expected discard passthru")
	assert.Equal(t, flushio.Discard, flushio.NewWriteFlusher(nil), "expected nil to discard")

	bw := bufio.NewWriter(io.Discard)
	assert.Equal(t, flushio.WriteFlusher(bw), flushio.NewWriteFlusher(bw), "expected a WriteFlusher to pass through")

	var sb strings.Builder
	wf := flushio.NewWriteFlusher(&sb)
	require.NoError(t, wf.WriteByte('h'))
	_, err := wf.Write([]byte("i"))
	require.NoError(t, err)
	assert.Equal(t, "hi", sb.String(), "expected unbuffered in-memory writes")

	var rw recordWriter
	wf = flushio.NewWriteFlusher(&rw)
	require.NoError(t, wf.WriteByte('a'))
	require.NoError(t, wf.WriteByte('b'))
	assert.Empty(t, rw.writes, "expected buffered writes")
	require.NoError(t, wf.Flush())
	assert.Equal(t, []string{"ab"}, rw.writes)
}

func Test_LineFlusher(t *testing.T) {
	var rw recordWriter
	wf := flushio.LineFlusher(flushio.NewWriteFlusher(&rw))
	for _, c := range []byte("ab\ncd") {
		require.NoError(t, wf.WriteByte(c))
	}
	assert.Equal(t, []string{"ab\n"}, rw.writes, "expected flush on line feed")

	_, err := wf.Write([]byte("e\nf"))
	require.NoError(t, err)
	assert.Equal(t, []string{"ab\n", "cde\nf"}, rw.writes)

	assert.Equal(t, flushio.Discard, flushio.LineFlusher(flushio.Discard), "expected discard passthru")
}

func Test_WriteFlushers(t *testing.T) {
	assert.Equal(t, flushio.Discard, flushio.WriteFlushers(), "expected empty combination to discard")

	var a, b bytes.Buffer
	wfa := flushio.NewWriteFlusher(&a)
	assert.Equal(t, wfa, flushio.WriteFlushers(wfa, flushio.Discard, nil), "expected singleton")

	wf := flushio.WriteFlushers(wfa, flushio.WriteFlushers(flushio.NewWriteFlusher(&b)))
	require.NoError(t, wf.WriteByte('x'))
	_, err := wf.Write([]byte("yz"))
	require.NoError(t, err)
	require.NoError(t, wf.Flush())
	assert.Equal(t, "xyz", a.String())
	assert.Equal(t, "xyz", b.String())

	errBroke := errors.New("broke")
	bad := flushio.NewWriteFlusher(&recordWriter{err: errBroke})
	wf = flushio.WriteFlushers(wfa, bad)
	require.NoError(t, wf.WriteByte('!'), "expected buffered write to succeed")
	assert.True(t, errors.Is(wf.Flush(), errBroke), "expected flush error")
}
