package log

import (
	"strings"
	"sync"
)

const defaultTailLines = 8

// Tail is an [io.Writer] that retains the most recent complete log lines so
// a TUI can surface them without reading the log file back. Writes from the
// logger and reads from the view may happen on different goroutines, so Tail
// locks. Write always succeeds.
//
// Create instances with [NewTail].
type Tail struct {
	mu      sync.Mutex
	lines   []string
	partial strings.Builder
	max     int
}

// NewTail creates a [Tail] retaining up to n lines. Values less than 1 fall
// back to a small default.
func NewTail(n int) *Tail {
	if n < 1 {
		n = defaultTailLines
	}

	return &Tail{max: n}
}

// Write appends b, completing lines at every newline. Incomplete trailing
// data is buffered until its newline arrives.
func (t *Tail) Write(b []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, c := range string(b) {
		if c != '\n' {
			t.partial.WriteRune(c)
			continue
		}

		t.lines = append(t.lines, t.partial.String())
		t.partial.Reset()

		if len(t.lines) > t.max {
			t.lines = t.lines[len(t.lines)-t.max:]
		}
	}

	return len(b), nil
}

// Last returns the most recent complete line, or "".
func (t *Tail) Last() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.lines) == 0 {
		return ""
	}

	return t.lines[len(t.lines)-1]
}

// Lines returns a copy of the retained lines, oldest first.
func (t *Tail) Lines() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]string, len(t.lines))
	copy(out, t.lines)

	return out
}
