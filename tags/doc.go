// Package tags keeps the stack of contextual tags that ergolog attaches to
// every emitted record.
//
// A Scope describes a set of tags. Entering a scope pushes its tags onto a
// Stack and the returned Entry pops exactly those tags again, so nested
// scopes accumulate tags and unwind in reverse order:
//
//	defer tags.New("request").With("user", id).Enter().Exit()
//
// Functions can be wrapped so that every call runs inside a fresh entry:
//
//	handle := tags.New("job").Wrap(process)
//
// The special tag "job" is replaced on each entry with "job=<6 hex chars>".
//
// The process-wide stack is only meaningful for a single call stack. For
// concurrent goroutines attach tags to a context.Context instead:
//
//	ctx = tags.New("worker").With("id", n).Context(ctx)
package tags
