package linesource

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Tail follows a growing file: existing content is read first, then NextLine
// blocks until more data is appended. The pull contract is preserved — no
// reading happens ahead of the consumer. Removal or rename of the file ends
// the source with io.EOF; context cancellation ends it with ctx.Err().
type Tail struct {
	ctx     context.Context
	f       *os.File
	r       *bufio.Reader
	w       *fsnotify.Watcher
	pending string // partial line carried across append boundaries
	eof     bool
}

// NewTail opens path and begins watching it for appends.
func NewTail(ctx context.Context, path string) (*Tail, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(path); err != nil {
		w.Close()
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		w.Close()
		return nil, err
	}
	return &Tail{ctx: ctx, f: f, r: bufio.NewReader(f), w: w}, nil
}

// NextLine implements parse.LineSource, blocking at end of file until the
// file grows.
func (t *Tail) NextLine() (string, error) {
	if t.eof {
		return "", io.EOF
	}

	for {
		chunk, err := t.r.ReadString('\n')
		if err == nil {
			line := t.pending + strings.TrimRight(chunk, "\r\n")
			t.pending = ""
			return line, nil
		}
		if err != io.EOF {
			return "", err
		}

		// A write may end mid-line; carry the fragment until the rest
		// arrives.
		t.pending += chunk

		if err := t.wait(); err != nil {
			if err == io.EOF {
				t.eof = true
				if t.pending != "" {
					line := t.pending
					t.pending = ""
					return line, nil
				}
			}
			return "", err
		}
	}
}

// wait blocks until the watched file changes.
func (t *Tail) wait() error {
	for {
		select {
		case <-t.ctx.Done():
			return t.ctx.Err()
		case ev, ok := <-t.w.Events:
			if !ok {
				return io.EOF
			}
			if ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				return io.EOF
			}
			if ev.Op&fsnotify.Write != 0 {
				return nil
			}
		case err, ok := <-t.w.Errors:
			if !ok {
				return io.EOF
			}
			return err
		}
	}
}

// Close stops the watcher and releases the file.
func (t *Tail) Close() error {
	werr := t.w.Close()
	ferr := t.f.Close()
	if werr != nil {
		return werr
	}
	return ferr
}
