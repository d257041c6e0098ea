package tags

import "context"

type contextKey struct{}

// WithContext returns a copy of ctx carrying the given tags after any tags
// already present.
func WithContext(ctx context.Context, tags ...string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if len(tags) == 0 {
		return ctx
	}
	parent := FromContext(ctx)
	merged := make([]string, 0, len(parent)+len(tags))
	merged = append(merged, parent...)
	merged = append(merged, tags...)
	return context.WithValue(ctx, contextKey{}, merged)
}

// FromContext returns the tags attached to ctx.
func FromContext(ctx context.Context) []string {
	if ctx == nil {
		return nil
	}
	if v, ok := ctx.Value(contextKey{}).([]string); ok {
		return v
	}
	return nil
}

// Context attaches the scope's tags to ctx instead of the shared stack.
// Job tags get a fresh id on every call.
func (s *Scope) Context(ctx context.Context) context.Context {
	return WithContext(ctx, s.resolve()...)
}
