package log_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/asciimotion/log"
)

func TestTail(t *testing.T) {
	t.Parallel()

	tail := log.NewTail(3)

	_, err := tail.Write([]byte("one\ntwo\n"))
	require.NoError(t, err)
	assert.Equal(t, "two", tail.Last())

	// A partial line is buffered until its newline arrives.
	_, err = tail.Write([]byte("thr"))
	require.NoError(t, err)
	assert.Equal(t, "two", tail.Last())

	_, err = tail.Write([]byte("ee\nfour\n"))
	require.NoError(t, err)

	// Only the newest three lines remain.
	assert.Equal(t, []string{"two", "three", "four"}, tail.Lines())
	assert.Equal(t, "four", tail.Last())
}

func TestTailEmpty(t *testing.T) {
	t.Parallel()

	tail := log.NewTail(0)

	assert.Empty(t, tail.Last())
	assert.Empty(t, tail.Lines())
}
