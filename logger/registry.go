package logger

import (
	"io"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/kbukum/ergolog/tags"
)

// Registry caches handles by resolved dotted name. All names resolve beneath
// the configured root.
type Registry struct {
	cfg   Config
	base  zerolog.Logger
	stack *tags.Stack
	now   func() time.Time

	mu      sync.Mutex
	handles map[string]*Handle
	root    *Handle
}

// Option customizes a Registry.
type Option func(*registryOptions)

type registryOptions struct {
	out   io.Writer
	stack *tags.Stack
	now   func() time.Time
}

// WithWriter sends output to w instead of the configured stream.
func WithWriter(w io.Writer) Option {
	return func(o *registryOptions) { o.out = w }
}

// WithStack uses stack instead of the process-wide tag stack.
func WithStack(stack *tags.Stack) Option {
	return func(o *registryOptions) { o.stack = stack }
}

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *registryOptions) { o.now = now }
}

// NewRegistry creates a registry and its root handle. Invalid level names
// fall back to debug; call Config.Validate first to reject them.
func NewRegistry(cfg Config, opts ...Option) *Registry {
	cfg.ApplyDefaults()

	o := registryOptions{stack: tags.Default(), now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	out := o.out
	if out == nil {
		out = outputWriter(cfg.Output)
	}

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.DebugLevel
	}

	r := &Registry{
		cfg:     cfg,
		base:    zerolog.New(newConsoleWriter(&cfg, out)).Level(level),
		stack:   o.stack,
		now:     o.now,
		handles: make(map[string]*Handle),
	}
	r.root = r.lookup(cfg.Root)
	return r
}

// Config returns the configuration the registry was built with.
func (r *Registry) Config() Config { return r.cfg }

// RootName returns the root logger name.
func (r *Registry) RootName() string { return r.cfg.Root }

// Root returns the root handle.
func (r *Registry) Root() *Handle { return r.root }

// Stack returns the tag stack read at emission time.
func (r *Registry) Stack() *tags.Stack { return r.stack }

// Get returns the handle for name beneath the root. A leading "<root>." is
// stripped, so Get("child") and Get("<root>.child") are the same handle.
func (r *Registry) Get(name string) *Handle {
	return r.lookup(resolveName(r.cfg.Root, name))
}

// Names returns the resolved names of all cached handles, sorted.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.handles))
	for name := range r.handles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) lookup(resolved string) *Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	if h, ok := r.handles[resolved]; ok {
		return h
	}
	h := &Handle{name: resolved, reg: r}
	r.handles[resolved] = h
	return h
}
