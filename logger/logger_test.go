package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/ergolog/errors"
	"github.com/kbukum/ergolog/tags"
)

func newTestRegistry(t *testing.T, cfg Config) (*Registry, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	if !cfg.ForceColors {
		cfg.NoColors = true
	}
	cfg.NoTime = true
	return NewRegistry(cfg, WithWriter(&buf), WithStack(tags.NewStack())), &buf
}

func lines(buf *bytes.Buffer) []string {
	out := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(out) == 1 && out[0] == "" {
		return nil
	}
	return out
}

func TestRegistryRoot(t *testing.T) {
	reg, _ := newTestRegistry(t, Config{})
	if reg.Root().Name() != "ergo" {
		t.Errorf("expected root 'ergo', got %q", reg.Root().Name())
	}
	if reg.Get("") != reg.Root() {
		t.Error("Get(\"\") should return the root handle")
	}
	if reg.Get("ergo") != reg.Root() {
		t.Error("Get(root name) should return the root handle")
	}
}

func TestRegistryIdentity(t *testing.T) {
	reg, _ := newTestRegistry(t, Config{})
	a := reg.Get("child")
	if a.Name() != "ergo.child" {
		t.Errorf("expected 'ergo.child', got %q", a.Name())
	}
	if reg.Get("child") != a {
		t.Error("expected identical handle on second lookup")
	}
	if reg.Get("ergo.child") != a {
		t.Error("prefixed and relative names should resolve to the same handle")
	}
}

func TestChildHandles(t *testing.T) {
	reg, _ := newTestRegistry(t, Config{})
	one := reg.Get("one")
	two := one.Get("two")

	if two.Name() != "ergo.one.two" {
		t.Errorf("expected 'ergo.one.two', got %q", two.Name())
	}
	if one.Get("two") != two {
		t.Error("child lookup should be cached")
	}
	if reg.Get("one.two") != two {
		t.Error("registry and handle lookups should share the cache")
	}
	if one.Get("ergo.one.two") != two {
		t.Error("name prefixed with the parent must not be prefixed twice")
	}
	if one.Get("") != one {
		t.Error("Get(\"\") on a handle should return the handle itself")
	}

	want := []string{"ergo", "ergo.one", "ergo.one.two"}
	got := reg.Names()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestCustomRoot(t *testing.T) {
	reg, buf := newTestRegistry(t, Config{Root: "app"})
	reg.Get("app.worker").Info("hi")
	if reg.RootName() != "app" {
		t.Errorf("expected root name 'app', got %q", reg.RootName())
	}
	if reg.Get("worker").Name() != "app.worker" {
		t.Errorf("unexpected name %q", reg.Get("worker").Name())
	}
	if !strings.Contains(buf.String(), "app.worker") {
		t.Errorf("expected logger name in output, got %q", buf.String())
	}
}

func TestLevelBadges(t *testing.T) {
	reg, buf := newTestRegistry(t, Config{})
	h := reg.Root()
	h.Debug("debug")
	h.Info("info")
	h.Warning("warning")
	h.Error("error")
	h.Critical("critical")

	got := lines(buf)
	want := []string{"[DEBUG   ] ergo", "[INFO    ] ergo", "[WARNING ] ergo", "[ERROR   ] ergo", "[CRITICAL] ergo"}
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(got), got)
	}
	for i := range want {
		if !strings.HasPrefix(got[i], want[i]) {
			t.Errorf("line %d: expected prefix %q, got %q", i, want[i], got[i])
		}
	}
	if !strings.HasSuffix(got[4], " critical") {
		t.Errorf("expected message at end of line, got %q", got[4])
	}
}

func TestLevelFiltering(t *testing.T) {
	reg, buf := newTestRegistry(t, Config{Level: "warning"})
	h := reg.Root()
	h.Debug("d")
	h.Info("i")
	h.Warning("w")
	h.Critical("c")
	if n := len(lines(buf)); n != 2 {
		t.Errorf("expected 2 lines, got %d: %q", n, buf.String())
	}
}

func TestCallerAnnotation(t *testing.T) {
	reg, buf := newTestRegistry(t, Config{})
	reg.Get("named").Infof("value %d", 42)
	line := buf.String()
	if !strings.Contains(line, "(logger_test.go:") {
		t.Errorf("expected caller file in output, got %q", line)
	}
	if !strings.Contains(line, "ergo.named") || !strings.Contains(line, "value 42") {
		t.Errorf("unexpected line %q", line)
	}
}

func TestTagAnnotationAtEmission(t *testing.T) {
	reg, buf := newTestRegistry(t, Config{})
	h := reg.Root()

	a := h.Tag("a").Enter()
	h.Info("one tag")
	b := h.Tag("b").Enter()
	h.Info("two tags")
	b.Exit()
	h.Info("one tag")
	a.Exit()
	h.Info("no tags")

	got := lines(buf)
	want := []string{
		"[INFO    ] ergo [a] (",
		"[INFO    ] ergo [a, b] (",
		"[INFO    ] ergo [a] (",
		"[INFO    ] ergo (",
	}
	for i := range want {
		if !strings.HasPrefix(got[i], want[i]) {
			t.Errorf("line %d: expected prefix %q, got %q", i, want[i], got[i])
		}
	}
}

func TestKeywordTagAnnotation(t *testing.T) {
	reg, buf := newTestRegistry(t, Config{})
	h := reg.Root()
	h.Tag("pos").With("key", "value").Do(func() {
		h.Debug("")
	})
	if !strings.Contains(buf.String(), "[pos, key=value]") {
		t.Errorf("expected keyword tag after positional, got %q", buf.String())
	}
}

func TestWrappedFunctions(t *testing.T) {
	reg, buf := newTestRegistry(t, Config{})
	h := reg.Root()

	inner := h.Tag("inner").Wrap(func() { h.Info("test") })
	outer := h.Tag("outer").Wrap(func() {
		h.Debug("before")
		inner()
		h.Debug("after")
	})

	h.Debug("start")
	outer()
	h.Debug("end")

	got := lines(buf)
	want := []string{
		"[DEBUG   ] ergo (",
		"[DEBUG   ] ergo [outer] (",
		"[INFO    ] ergo [outer, inner] (",
		"[DEBUG   ] ergo [outer] (",
		"[DEBUG   ] ergo (",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %q", len(want), got)
	}
	for i := range want {
		if !strings.HasPrefix(got[i], want[i]) {
			t.Errorf("line %d: expected prefix %q, got %q", i, want[i], got[i])
		}
	}
}

func TestExtraFields(t *testing.T) {
	reg, buf := newTestRegistry(t, Config{})
	reg.Root().Info("saved", Fields("op", "save", "id", 42))
	line := buf.String()
	if !strings.Contains(line, "op=save") || !strings.Contains(line, "id=42") {
		t.Errorf("expected fields in output, got %q", line)
	}
}

func TestCtxTagsAndTrace(t *testing.T) {
	reg, buf := newTestRegistry(t, Config{})
	h := reg.Root()

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
		SpanID:     trace.SpanID{1, 2, 3, 4, 5, 6, 7, 8},
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)
	ctx = tags.WithContext(ctx, "req=1")

	defer h.Tag("stack").Enter().Exit()
	h.Ctx(ctx).Info("bound")

	line := buf.String()
	if !strings.Contains(line, "[stack, req=1]") {
		t.Errorf("expected stack then context tags, got %q", line)
	}
	if !strings.Contains(line, "trace_id=0102030405060708090a0b0c0d0e0f10") {
		t.Errorf("expected trace id, got %q", line)
	}
	if !strings.Contains(line, "span_id=0102030405060708") {
		t.Errorf("expected span id, got %q", line)
	}
	if !strings.Contains(line, "(logger_test.go:") {
		t.Errorf("expected caller file for bound handle, got %q", line)
	}
}

func TestTimestamp(t *testing.T) {
	var buf bytes.Buffer
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 6e6, time.UTC)
	reg := NewRegistry(Config{NoColors: true}, WithWriter(&buf), WithStack(tags.NewStack()),
		WithClock(func() time.Time { return fixed }))
	reg.Root().Info("x")
	if !strings.HasPrefix(buf.String(), "2024-01-02 03:04:05,006 [INFO    ]") {
		t.Errorf("unexpected line %q", buf.String())
	}
}

func TestColors(t *testing.T) {
	reg, buf := newTestRegistry(t, Config{ForceColors: true})
	reg.Root().Info("x")
	if !strings.Contains(buf.String(), "\x1b[32m[INFO    ]") {
		t.Errorf("expected green info badge, got %q", buf.String())
	}

	reg, buf = newTestRegistry(t, Config{})
	reg.Root().Info("x")
	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("expected no escape codes, got %q", buf.String())
	}
}

func TestHandleTimer(t *testing.T) {
	reg, buf := newTestRegistry(t, Config{})
	tm := reg.Get("a").Timer("work")
	tm.Do(func() {})
	line := buf.String()
	if !strings.Contains(line, "ergo.a") || !strings.Contains(line, "work took 0.00 S") {
		t.Errorf("unexpected timer line %q", line)
	}
	if !strings.Contains(line, "(logger_test.go:") || strings.Contains(line, "timer.go") {
		t.Errorf("expected the timer's creation site as caller, got %q", line)
	}
}

func TestReservedFieldsCannotBeOverridden(t *testing.T) {
	reg, buf := newTestRegistry(t, Config{})
	h := reg.Get("svc")
	h.Tag("real").Do(func() {
		h.Info("msg", Fields("logger", "spoof", "tags", "[fake] ", "level", "error", "op", "kept"))
	})
	line := buf.String()
	if !strings.Contains(line, "[INFO    ] ergo.svc [real] (logger_test.go:") {
		t.Errorf("reserved parts were overwritten: %q", line)
	}
	for _, bad := range []string{"spoof", "[fake]", "[ERROR   ]"} {
		if strings.Contains(line, bad) {
			t.Errorf("unexpected %q in %q", bad, line)
		}
	}
	if !strings.Contains(line, "op=kept") {
		t.Errorf("expected ordinary fields to survive, got %q", line)
	}
}

func TestLogAndGetLogger(t *testing.T) {
	reg, buf := newTestRegistry(t, Config{})
	h := reg.Get("raw")

	h.Log(WarningLevel, "through Log")
	zl := h.GetLogger()
	zl.Info().Msg("through zerolog")

	out := lines(buf)
	if len(out) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(out), buf.String())
	}
	if !strings.Contains(out[0], "[WARNING ] ergo.raw") || !strings.Contains(out[0], "through Log") {
		t.Errorf("unexpected Log line %q", out[0])
	}
	if !strings.Contains(out[1], "[INFO    ] ergo.raw") || !strings.Contains(out[1], "through zerolog") {
		t.Errorf("unexpected GetLogger line %q", out[1])
	}
}

func TestLevelString(t *testing.T) {
	tests := map[Level]string{
		DebugLevel:    "debug",
		InfoLevel:     "info",
		WarningLevel:  "warning",
		ErrorLevel:    "error",
		CriticalLevel: "critical",
	}
	for level, want := range tests {
		if got := level.String(); got != want {
			t.Errorf("Level(%d).String() = %q, want %q", level, got, want)
		}
	}
}

func TestInitAndPackageFunctions(t *testing.T) {
	var buf bytes.Buffer
	t.Cleanup(func() { SetDefault(nil) })

	err := Init(Config{NoColors: true, NoTime: true}, WithWriter(&buf), WithStack(tags.NewStack()))
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	Debug("debug")
	Info("info")
	Warning("warning")
	Error("error")
	Critical("critical")
	Get("named").Debug("named")
	Tag("pkg").Do(func() { Infof("tagged %s", "call") })

	got := lines(&buf)
	if len(got) != 7 {
		t.Fatalf("expected 7 lines, got %q", got)
	}
	if !strings.HasPrefix(got[0], "[DEBUG   ] ergo (logger_test.go:") {
		t.Errorf("package-level call should report the caller, got %q", got[0])
	}
	if !strings.HasPrefix(got[5], "[DEBUG   ] ergo.named ") {
		t.Errorf("unexpected named line %q", got[5])
	}
	if !strings.Contains(got[6], "[pkg]") || !strings.HasSuffix(got[6], "tagged call") {
		t.Errorf("unexpected tagged line %q", got[6])
	}
}

func TestInitRejectsInvalidConfig(t *testing.T) {
	err := Init(Config{Level: "loud"})
	if err == nil {
		t.Fatal("expected error for invalid level")
	}
	if !errors.HasCode(err, errors.ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}

func TestDefaultFromEnv(t *testing.T) {
	t.Setenv(EnvDefaultLogger, "envroot")
	t.Cleanup(func() { SetDefault(nil) })
	SetDefault(nil)
	if Root().Name() != "envroot" {
		t.Errorf("expected root from env, got %q", Root().Name())
	}
	if Get("x").Name() != "envroot.x" {
		t.Errorf("unexpected name %q", Get("x").Name())
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{Level: "INFO"}
	cfg.ApplyDefaults()
	if cfg.Root != DefaultRoot {
		t.Errorf("expected root %q, got %q", DefaultRoot, cfg.Root)
	}
	if cfg.Level != "info" {
		t.Errorf("expected lowercased level, got %q", cfg.Level)
	}
	if cfg.Output != "stdout" {
		t.Errorf("expected output 'stdout', got %q", cfg.Output)
	}
	if cfg.TimeFormat != DefaultTimeFormat {
		t.Errorf("expected default time format, got %q", cfg.TimeFormat)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Root: "ergo", Level: "info", Output: "stdout"}, false},
		{"valid critical", Config{Root: "a.b", Level: "critical", Output: "stderr"}, false},
		{"invalid level", Config{Root: "ergo", Level: "loud", Output: "stdout"}, true},
		{"invalid output", Config{Root: "ergo", Level: "info", Output: "file"}, true},
		{"invalid root", Config{Root: "a..b", Level: "info", Output: "stdout"}, true},
		{"conflicting colors", Config{Root: "ergo", Level: "info", Output: "stdout", NoColors: true, ForceColors: true}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(EnvDefaultLogger, "svc")
	t.Setenv(EnvNoColors, "yes")
	t.Setenv(EnvNoTime, "1")
	t.Setenv(EnvLevel, "ERROR")

	cfg := ConfigFromEnv()
	if cfg.Root != "svc" || !cfg.NoColors || !cfg.NoTime || cfg.Level != "error" {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestParseLevel(t *testing.T) {
	for _, name := range []string{"debug", "info", "warning", "warn", "error", "critical", ""} {
		if _, err := ParseLevel(name); err != nil {
			t.Errorf("ParseLevel(%q) unexpected error: %v", name, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestFields(t *testing.T) {
	m := Fields("a", 1, 2, "x", "b")
	if len(m) != 1 || m["a"] != 1 {
		t.Errorf("unexpected fields %v", m)
	}
	if ErrorFields(nil) != nil {
		t.Error("expected nil fields for nil error")
	}
	if ElapsedFields(1500*time.Millisecond)[FieldElapsed] != "1.50" {
		t.Error("expected elapsed seconds")
	}
}
