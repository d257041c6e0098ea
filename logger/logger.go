package logger

import (
	"context"
	"fmt"
	"sync"

	"github.com/kbukum/ergolog/tags"
	"github.com/kbukum/ergolog/timer"
)

// --- Global registry ---

var (
	globalMu       sync.RWMutex
	globalRegistry *Registry
)

// Init validates cfg and replaces the global registry.
func Init(cfg Config, opts ...Option) error {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}
	SetDefault(NewRegistry(cfg, opts...))
	return nil
}

// SetDefault sets the global registry instance.
func SetDefault(r *Registry) {
	globalMu.Lock()
	globalRegistry = r
	globalMu.Unlock()
}

// Default returns the global registry, creating one from the environment on
// first use.
func Default() *Registry {
	globalMu.RLock()
	r := globalRegistry
	globalMu.RUnlock()
	if r != nil {
		return r
	}

	globalMu.Lock()
	defer globalMu.Unlock()
	if globalRegistry == nil {
		globalRegistry = NewRegistry(ConfigFromEnv())
	}
	return globalRegistry
}

// Root returns the root handle of the global registry.
func Root() *Handle { return Default().Root() }

// Get returns a named handle from the global registry.
func Get(name string) *Handle { return Default().Get(name) }

// Tag returns a tag scope on the global registry's stack.
//
//	defer logger.Tag("import").With("file", name).Enter().Exit()
func Tag(tagList ...string) *tags.Scope {
	return tags.NewOn(Default().Stack(), tagList...)
}

// Timer returns a started timer reporting to cb, which may be nil.
func Timer(cb func(elapsed string)) *timer.Timer {
	return timer.New(cb)
}

// Ctx binds the root handle to ctx.
func Ctx(ctx context.Context) *Bound { return Root().Ctx(ctx) }

// Package-level convenience functions log through the root handle.

func Debug(msg string, fields ...map[string]interface{}) {
	Root().emit(nil, DebugLevel, msg, fields)
}

func Info(msg string, fields ...map[string]interface{}) {
	Root().emit(nil, InfoLevel, msg, fields)
}

func Warning(msg string, fields ...map[string]interface{}) {
	Root().emit(nil, WarningLevel, msg, fields)
}

func Error(msg string, fields ...map[string]interface{}) {
	Root().emit(nil, ErrorLevel, msg, fields)
}

func Critical(msg string, fields ...map[string]interface{}) {
	Root().emit(nil, CriticalLevel, msg, fields)
}

func Debugf(format string, args ...interface{}) {
	Root().emit(nil, DebugLevel, fmt.Sprintf(format, args...), nil)
}

func Infof(format string, args ...interface{}) {
	Root().emit(nil, InfoLevel, fmt.Sprintf(format, args...), nil)
}

func Warningf(format string, args ...interface{}) {
	Root().emit(nil, WarningLevel, fmt.Sprintf(format, args...), nil)
}

func Errorf(format string, args ...interface{}) {
	Root().emit(nil, ErrorLevel, fmt.Sprintf(format, args...), nil)
}

func Criticalf(format string, args ...interface{}) {
	Root().emit(nil, CriticalLevel, fmt.Sprintf(format, args...), nil)
}
