package tags

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// JobTag is replaced with a fresh "job=<id>" tag on every scope entry.
const JobTag = "job"

const jobIDLength = 6

// Scope is a reusable set of tags. A Scope holds no state about entries, so
// one value may be entered many times, including while already active.
type Scope struct {
	stack   *Stack
	tags    []string
	keyword []string
}

// New creates a scope on the process-wide stack.
func New(tags ...string) *Scope {
	return NewOn(defaultStack, tags...)
}

// NewOn creates a scope bound to the given stack.
func NewOn(stack *Stack, tags ...string) *Scope {
	if stack == nil {
		stack = defaultStack
	}
	return &Scope{
		stack: stack,
		tags:  append([]string(nil), tags...),
	}
}

// With returns a copy of the scope with a keyword tag rendered as
// "key=value". Keyword tags always follow the positional tags, in the order
// they were added. The receiver is left unchanged.
func (s *Scope) With(key string, value any) *Scope {
	return s.withKeyword(fmt.Sprintf("%s=%v", key, value))
}

// WithKV is With for alternating key/value arguments.
// Pairs whose key is not a string are skipped.
func (s *Scope) WithKV(kvs ...any) *Scope {
	return s.withKeyword(KV(kvs...)...)
}

func (s *Scope) withKeyword(kw ...string) *Scope {
	keyword := make([]string, 0, len(s.keyword)+len(kw))
	keyword = append(keyword, s.keyword...)
	return &Scope{
		stack:   s.stack,
		tags:    s.tags,
		keyword: append(keyword, kw...),
	}
}

// Tags returns the configured tags before job substitution.
func (s *Scope) Tags() []string {
	out := make([]string, 0, len(s.tags)+len(s.keyword))
	out = append(out, s.tags...)
	return append(out, s.keyword...)
}

// Enter pushes the scope's tags and returns the entry that removes them.
func (s *Scope) Enter() *Entry {
	applied := s.resolve()
	s.stack.Push(applied...)
	return &Entry{stack: s.stack, applied: applied}
}

// Do runs fn inside a fresh entry.
func (s *Scope) Do(fn func()) {
	defer s.Enter().Exit()
	fn()
}

// Run runs fn inside a fresh entry and returns its error.
func (s *Scope) Run(fn func() error) error {
	defer s.Enter().Exit()
	return fn()
}

// Wrap returns a function that runs fn inside a fresh entry on every call.
func (s *Scope) Wrap(fn func()) func() {
	return func() { s.Do(fn) }
}

// WrapErr is Wrap for functions returning an error.
func (s *Scope) WrapErr(fn func() error) func() error {
	return func() error { return s.Run(fn) }
}

func (s *Scope) resolve() []string {
	configured := s.Tags()
	applied := make([]string, len(configured))
	for i, tag := range configured {
		if tag == JobTag {
			tag = JobTag + "=" + NewJobID()
		}
		applied[i] = tag
	}
	return applied
}

// Entry is one activation of a Scope.
type Entry struct {
	stack   *Stack
	applied []string
}

// Tags returns the tags this entry pushed, with job ids substituted.
func (e *Entry) Tags() []string {
	return append([]string(nil), e.applied...)
}

// Exit removes the pushed tags. Calling Exit more than once is a no-op.
func (e *Entry) Exit() {
	if e == nil || e.applied == nil {
		return
	}
	e.stack.Remove(e.applied...)
	e.applied = nil
}

// NewJobID returns six lowercase hex characters from a random UUID.
func NewJobID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:jobIDLength]
}

// KV converts alternating key/value arguments into "key=value" tags.
func KV(kvs ...any) []string {
	out := make([]string, 0, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		key, ok := kvs[i].(string)
		if !ok {
			continue
		}
		out = append(out, fmt.Sprintf("%s=%v", key, kvs[i+1]))
	}
	return out
}
