package mount

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// MemorySink keeps the most recent markup.
type MemorySink struct {
	mu       sync.RWMutex
	content  string
	replaces int
}

func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) Replace(markup string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.content = markup
	s.replaces++
	return nil
}

// Content returns the current markup.
func (s *MemorySink) Content() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.content
}

// Replaces reports how many times the contents were replaced.
func (s *MemorySink) Replaces() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.replaces
}

// clearScreen moves the cursor home and clears a terminal.
const clearScreen = "\x1b[H\x1b[2J"

// WriterSink writes each render to a stream. With Clear set, each write is
// preceded by a terminal clear so the stream shows only the latest render.
type WriterSink struct {
	w     io.Writer
	Clear bool
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Replace(markup string) error {
	if s.Clear {
		if _, err := io.WriteString(s.w, clearScreen); err != nil {
			return err
		}
	}
	_, err := io.WriteString(s.w, markup)
	return err
}

// FileSink replaces a file's contents atomically on each render.
type FileSink struct {
	path string
}

func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

func (s *FileSink) Replace(markup string) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+"-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.WriteString(markup); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return err
	}
	return os.Rename(tmpName, s.path)
}

// Path returns the file being written.
func (s *FileSink) Path() string {
	return s.path
}
