package runner

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"
)

// HeadLines is how many output lines the truncating run mode keeps.
const HeadLines = 100

// Sink receives run output. Destination is a human-readable description used
// in the post-run message.
type Sink interface {
	io.Writer
	Close() error
	Destination() string
}

// FileSink writes output to a results file, creating the directory and
// overwriting any previous file.
type FileSink struct {
	path string
	f    *os.File
}

// NewFileSink opens (and truncates) the results file at path.
func NewFileSink(path string) (*FileSink, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create results directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create results file: %w", err)
	}
	return &FileSink{path: path, f: f}, nil
}

func (s *FileSink) Write(p []byte) (int, error) { return s.f.Write(p) }
func (s *FileSink) Close() error                { return s.f.Close() }
func (s *FileSink) Destination() string         { return s.path }

// HeadSink passes through only the first Limit lines and silently drops the
// rest. A trailing partial line counts as a line once anything follows it or
// the sink is closed.
type HeadSink struct {
	w       io.Writer
	limit   int
	lines   int
	partial bool
}

// NewHeadSink wraps w, keeping the first limit lines.
func NewHeadSink(w io.Writer, limit int) *HeadSink {
	return &HeadSink{w: w, limit: limit}
}

func (s *HeadSink) Write(p []byte) (int, error) {
	total := len(p)
	for len(p) > 0 && s.lines < s.limit {
		i := bytes.IndexByte(p, '\n')
		if i < 0 {
			if _, err := s.w.Write(p); err != nil {
				return total - len(p), err
			}
			s.partial = true
			p = nil
			break
		}
		if _, err := s.w.Write(p[:i+1]); err != nil {
			return total - len(p), err
		}
		s.lines++
		s.partial = false
		p = p[i+1:]
	}
	// Anything past the limit is dropped but reported as written.
	return total, nil
}

// Truncated reports whether any output was dropped.
func (s *HeadSink) Truncated() bool {
	return s.lines >= s.limit
}

func (s *HeadSink) Close() error {
	if s.partial {
		s.lines++
		s.partial = false
	}
	return nil
}

func (s *HeadSink) Destination() string {
	return fmt.Sprintf("console (first %d lines)", s.limit)
}

// ConsoleSink writes to stdout, word-wrapping to the terminal width when
// stdout is a terminal.
type ConsoleSink struct {
	w     io.Writer
	width int
}

// NewConsoleSink returns a sink for unredirected console output.
func NewConsoleSink() *ConsoleSink {
	width := 0
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 20 {
			width = w
		}
	}
	return &ConsoleSink{w: os.Stdout, width: width}
}

func (s *ConsoleSink) Write(p []byte) (int, error) {
	if s.width == 0 {
		return s.w.Write(p)
	}
	if _, err := s.w.Write([]byte(wordwrap.String(string(p), s.width))); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (s *ConsoleSink) Close() error        { return nil }
func (s *ConsoleSink) Destination() string { return "console" }
