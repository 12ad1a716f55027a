package mount

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// ChannelSource is an in-process navigation source. Fragments arrive via
// Navigate, SetCurrent or a channel passed to Run. Like a browser, it only
// notifies subscribers when the fragment actually changes.
type ChannelSource struct {
	mu      sync.Mutex
	current string
	subs    map[int]func(string)
	nextID  int
}

// NewChannelSource creates a source whose current fragment is initial.
func NewChannelSource(initial string) *ChannelSource {
	return &ChannelSource{
		current: initial,
		subs:    make(map[int]func(string)),
	}
}

func (s *ChannelSource) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *ChannelSource) SetCurrent(fragment string) {
	s.mu.Lock()
	if fragment == s.current {
		s.mu.Unlock()
		return
	}
	s.current = fragment
	subs := make([]func(string), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(fragment)
	}
}

// Navigate is an alias for SetCurrent.
func (s *ChannelSource) Navigate(fragment string) {
	s.SetCurrent(fragment)
}

func (s *ChannelSource) Subscribe(fn func(fragment string)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// Run navigates to every fragment received on in until in is closed or ctx
// is done.
func (s *ChannelSource) Run(ctx context.Context, in <-chan string) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fragment, ok := <-in:
			if !ok {
				return nil
			}
			s.SetCurrent(fragment)
		}
	}
}

// LineSource reads one fragment per line. Blank lines are skipped.
type LineSource struct {
	*ChannelSource
	r io.Reader
}

// NewLineSource creates a LineSource with no current fragment.
func NewLineSource(r io.Reader) *LineSource {
	return &LineSource{ChannelSource: NewChannelSource(""), r: r}
}

// Run consumes the reader until EOF or until ctx is done. The context is
// checked between lines; a blocked read is not interrupted.
func (s *LineSource) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(s.r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		s.SetCurrent(line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read fragments: %w", err)
	}
	return nil
}
