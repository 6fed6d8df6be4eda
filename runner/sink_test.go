package runner

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSinkCreatesDirectoryAndOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "results", "lostpig_testing_submission.txt")

	sink, err := NewFileSink(path)
	require.NoError(t, err)
	_, err = sink.Write([]byte("first run\n"))
	require.NoError(t, err)
	require.NoError(t, sink.Close())

	sink, err = NewFileSink(path)
	require.NoError(t, err)
	_, err = sink.Write([]byte("second run\n"))
	require.NoError(t, err)
	require.NoError(t, sink.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second run\n", string(data), "a rerun must overwrite, not append")
	assert.Equal(t, path, sink.Destination())
}

func TestHeadSinkTruncatesToExactLimit(t *testing.T) {
	var out bytes.Buffer
	sink := NewHeadSink(&out, 100)

	for i := 1; i <= 250; i++ {
		_, err := fmt.Fprintf(sink, "line %d\n", i)
		require.NoError(t, err)
	}
	require.NoError(t, sink.Close())

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Len(t, lines, 100)
	assert.Equal(t, "line 1", lines[0])
	assert.Equal(t, "line 100", lines[99])
	assert.True(t, sink.Truncated())
}

func TestHeadSinkPassesShortOutputThrough(t *testing.T) {
	var out bytes.Buffer
	sink := NewHeadSink(&out, 100)

	_, err := sink.Write([]byte("only\nthree\nlines\n"))
	require.NoError(t, err)
	require.NoError(t, sink.Close())

	assert.Equal(t, "only\nthree\nlines\n", out.String())
	assert.False(t, sink.Truncated())
}

func TestHeadSinkSplitAcrossWrites(t *testing.T) {
	var out bytes.Buffer
	sink := NewHeadSink(&out, 2)

	_, _ = sink.Write([]byte("a"))
	_, _ = sink.Write([]byte("b\nc"))
	_, _ = sink.Write([]byte("\nd\ne\n"))
	require.NoError(t, sink.Close())

	assert.Equal(t, "ab\nc\n", out.String())
}

func TestTailBufferKeepsTail(t *testing.T) {
	var tb tailBuffer
	for i := 0; i < 1000; i++ {
		fmt.Fprintf(&tb, "line %d\n", i)
	}
	fmt.Fprintln(&tb, "RESULT game=lostpig agent=x score=1/2 moves=3 status=lost")

	s := tb.String()
	assert.LessOrEqual(t, len(s), tailLimit)
	assert.Contains(t, s, "RESULT game=lostpig")
	assert.NotContains(t, s, "line 0\n")
}
