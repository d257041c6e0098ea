package tags

import (
	"strings"
	"sync"
)

// Stack is an ordered sequence of active tags.
type Stack struct {
	mu   sync.Mutex
	tags []string
}

var defaultStack = NewStack()

// NewStack creates an empty stack.
func NewStack() *Stack {
	return &Stack{tags: make([]string, 0, 8)}
}

// Default returns the process-wide stack used by the package-level helpers.
func Default() *Stack { return defaultStack }

// Push appends tags to the top of the stack.
func (s *Stack) Push(tags ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tags = append(s.tags, tags...)
}

// Remove deletes each tag by value, searching from the top of the stack.
// Tags that are not present are ignored.
func (s *Stack) Remove(tags ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(tags) - 1; i >= 0; i-- {
		s.removeLast(tags[i])
	}
}

func (s *Stack) removeLast(tag string) {
	for i := len(s.tags) - 1; i >= 0; i-- {
		if s.tags[i] == tag {
			s.tags = append(s.tags[:i], s.tags[i+1:]...)
			return
		}
	}
}

// Snapshot returns a copy of the current tags, bottom first.
func (s *Stack) Snapshot() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.tags))
	copy(out, s.tags)
	return out
}

// Len returns the number of active tags.
func (s *Stack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tags)
}

// Render returns the annotation for the current tags.
func (s *Stack) Render() string {
	return Render(s.Snapshot())
}

// Reset drops every tag. Intended for tests.
func (s *Stack) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tags = s.tags[:0]
}

// Render formats tags as "[a, b] ", or "" when there are none.
func Render(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	return "[" + strings.Join(tags, ", ") + "] "
}
