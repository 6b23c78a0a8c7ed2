package linesource

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTail_When_ReadingExistingContent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tail, err := NewTail(ctx, path)
	require.NoError(t, err)
	defer tail.Close()

	line, err := tail.NextLine()
	require.NoError(t, err)
	assert.Equal(t, "one", line)

	line, err = tail.NextLine()
	require.NoError(t, err)
	assert.Equal(t, "two", line)
}

func TestTail_When_FileGrows(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, []byte("one\n"), 0o644))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tail, err := NewTail(ctx, path)
	require.NoError(t, err)
	defer tail.Close()

	line, err := tail.NextLine()
	require.NoError(t, err)
	assert.Equal(t, "one", line)

	go func() {
		time.Sleep(100 * time.Millisecond)
		f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return
		}
		defer f.Close()
		f.WriteString("two\n")
	}()

	line, err = tail.NextLine()
	require.NoError(t, err)
	assert.Equal(t, "two", line)
}

func TestTail_When_ContextIsCancelled(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	tail, err := NewTail(ctx, path)
	require.NoError(t, err)
	defer tail.Close()

	cancel()
	_, err = tail.NextLine()
	assert.ErrorIs(t, err, context.Canceled)
}
