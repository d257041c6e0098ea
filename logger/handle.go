package logger

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/ergolog/tags"
	"github.com/kbukum/ergolog/timer"
)

// frames between zerolog's Event.Caller and the user's call site:
// emit <- level method <- caller
const callerSkip = 2

// Emitter is the set of leveled logging methods shared by handles and
// context-bound handles.
type Emitter interface {
	Debug(msg string, fields ...map[string]interface{})
	Info(msg string, fields ...map[string]interface{})
	Warning(msg string, fields ...map[string]interface{})
	Error(msg string, fields ...map[string]interface{})
	Critical(msg string, fields ...map[string]interface{})
}

// Level identifies the severity of a record.
type Level int8

const (
	DebugLevel Level = iota
	InfoLevel
	WarningLevel
	ErrorLevel
	CriticalLevel
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarningLevel:
		return "warning"
	case ErrorLevel:
		return "error"
	default:
		return "critical"
	}
}

func (l Level) zl() zerolog.Level {
	switch l {
	case DebugLevel:
		return zerolog.DebugLevel
	case InfoLevel:
		return zerolog.InfoLevel
	case WarningLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.FatalLevel
	}
}

// Handle is a named logger. Handles are created and cached by a Registry;
// the same resolved name always yields the same *Handle.
type Handle struct {
	name string
	reg  *Registry
}

// Name returns the fully resolved dotted name.
func (h *Handle) Name() string { return h.name }

// Get returns the child handle for name, relative to this handle.
// A name already prefixed with this handle's name is not prefixed again,
// and "" returns h itself.
func (h *Handle) Get(name string) *Handle {
	return h.reg.lookup(resolveName(h.name, name))
}

// Tag returns a tag scope on the registry's stack.
func (h *Handle) Tag(tagList ...string) *tags.Scope {
	return tags.NewOn(h.reg.stack, tagList...)
}

// Timer returns a started timer that logs "<label> took <s> S" at debug level
// when stopped. The record's caller is the line that created the timer.
func (h *Handle) Timer(label string) *timer.Timer {
	_, file, line, ok := runtime.Caller(1)
	return timer.New(func(elapsed string) {
		event := h.prepare(nil, DebugLevel, nil)
		if event == nil {
			return
		}
		if ok {
			event = event.Str(zerolog.CallerFieldName, zerolog.CallerMarshalFunc(0, file, line))
		}
		event.Msg(fmt.Sprintf("%s took %s S", label, elapsed))
	})
}

// Ctx returns the handle bound to ctx. Records emitted through it carry the
// context's tags after the stack tags, plus trace and span ids when ctx holds
// a valid span context.
func (h *Handle) Ctx(ctx context.Context) *Bound {
	return &Bound{h: h, ctx: ctx}
}

// GetLogger returns the underlying zerolog.Logger with the logger name attached.
func (h *Handle) GetLogger() zerolog.Logger {
	return h.reg.base.With().Str(FieldLogger, h.name).Logger()
}

// Log emits msg at the given level.
func (h *Handle) Log(level Level, msg string, fields ...map[string]interface{}) {
	h.emit(nil, level, msg, fields)
}

// Debug logs a debug message.
func (h *Handle) Debug(msg string, fields ...map[string]interface{}) {
	h.emit(nil, DebugLevel, msg, fields)
}

// Info logs an info message.
func (h *Handle) Info(msg string, fields ...map[string]interface{}) {
	h.emit(nil, InfoLevel, msg, fields)
}

// Warning logs a warning message.
func (h *Handle) Warning(msg string, fields ...map[string]interface{}) {
	h.emit(nil, WarningLevel, msg, fields)
}

// Error logs an error message.
func (h *Handle) Error(msg string, fields ...map[string]interface{}) {
	h.emit(nil, ErrorLevel, msg, fields)
}

// Critical logs a critical message. It does not exit the process.
func (h *Handle) Critical(msg string, fields ...map[string]interface{}) {
	h.emit(nil, CriticalLevel, msg, fields)
}

func (h *Handle) Debugf(format string, args ...interface{}) {
	h.emit(nil, DebugLevel, fmt.Sprintf(format, args...), nil)
}

func (h *Handle) Infof(format string, args ...interface{}) {
	h.emit(nil, InfoLevel, fmt.Sprintf(format, args...), nil)
}

func (h *Handle) Warningf(format string, args ...interface{}) {
	h.emit(nil, WarningLevel, fmt.Sprintf(format, args...), nil)
}

func (h *Handle) Errorf(format string, args ...interface{}) {
	h.emit(nil, ErrorLevel, fmt.Sprintf(format, args...), nil)
}

func (h *Handle) Criticalf(format string, args ...interface{}) {
	h.emit(nil, CriticalLevel, fmt.Sprintf(format, args...), nil)
}

// emit must be called directly from the exported method the user invoked,
// otherwise the caller annotation points at the wrong frame.
func (h *Handle) emit(ctx context.Context, level Level, msg string, fields []map[string]interface{}) {
	if event := h.prepare(ctx, level, fields); event != nil {
		event.Caller(callerSkip).Msg(msg)
	}
}

// prepare builds a record carrying the user fields followed by the time,
// logger name and tag annotation. It returns nil when level is disabled.
func (h *Handle) prepare(ctx context.Context, level Level, fields []map[string]interface{}) *zerolog.Event {
	event := h.reg.base.WithLevel(level.zl())
	if event == nil {
		return nil
	}
	addFields(event, fields...)
	if !h.reg.cfg.NoTime {
		event = event.Str(zerolog.TimestampFieldName, h.reg.now().Format(h.reg.cfg.TimeFormat))
	}
	event = event.Str(FieldLogger, h.name)

	active := h.reg.stack.Snapshot()
	if ctx != nil {
		active = append(active, tags.FromContext(ctx)...)
		if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
			event = event.Str(FieldTraceID, sc.TraceID().String()).Str(FieldSpanID, sc.SpanID().String())
		}
	}
	if annotation := tags.Render(active); annotation != "" {
		event = event.Str(FieldTags, annotation)
	}
	return event
}

// Bound is a Handle bound to a context.Context.
type Bound struct {
	h   *Handle
	ctx context.Context
}

// Context returns the bound context.
func (b *Bound) Context() context.Context { return b.ctx }

// Debug logs a debug message.
func (b *Bound) Debug(msg string, fields ...map[string]interface{}) {
	b.h.emit(b.ctx, DebugLevel, msg, fields)
}

// Info logs an info message.
func (b *Bound) Info(msg string, fields ...map[string]interface{}) {
	b.h.emit(b.ctx, InfoLevel, msg, fields)
}

// Warning logs a warning message.
func (b *Bound) Warning(msg string, fields ...map[string]interface{}) {
	b.h.emit(b.ctx, WarningLevel, msg, fields)
}

// Error logs an error message.
func (b *Bound) Error(msg string, fields ...map[string]interface{}) {
	b.h.emit(b.ctx, ErrorLevel, msg, fields)
}

// Critical logs a critical message.
func (b *Bound) Critical(msg string, fields ...map[string]interface{}) {
	b.h.emit(b.ctx, CriticalLevel, msg, fields)
}

// reservedFields are written by the handle itself; user fields with these
// names are dropped.
var reservedFields = map[string]bool{
	FieldLogger:                true,
	FieldTags:                  true,
	zerolog.TimestampFieldName: true,
	zerolog.LevelFieldName:     true,
	zerolog.CallerFieldName:    true,
	zerolog.MessageFieldName:   true,
}

func addFields(event *zerolog.Event, fields ...map[string]interface{}) {
	for _, fm := range fields {
		for k, v := range fm {
			if reservedFields[k] {
				continue
			}
			event.Interface(k, v)
		}
	}
}

func resolveName(parent, name string) string {
	name = strings.TrimPrefix(name, parent+".")
	if name == "" || name == parent {
		return parent
	}
	return parent + "." + name
}

var _ Emitter = (*Handle)(nil)
var _ Emitter = (*Bound)(nil)
