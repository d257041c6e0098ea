package timer

import (
	"errors"
	"strconv"
	"testing"
	"time"
)

func fakeClock(steps ...time.Duration) func() time.Time {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	i := 0
	return func() time.Time {
		d := steps[len(steps)-1]
		if i < len(steps) {
			d = steps[i]
		}
		i++
		return base.Add(d)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0.00"},
		{100 * time.Millisecond, "0.10"},
		{1234 * time.Millisecond, "1.23"},
		{2 * time.Second, "2.00"},
	}
	for _, tc := range tests {
		if got := Format(tc.in); got != tc.want {
			t.Errorf("Format(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStopInvokesCallback(t *testing.T) {
	var got string
	tm := New(func(s string) { got = s })
	tm.now = fakeClock(0, 1500*time.Millisecond)

	tm.Start()
	if s := tm.Stop(); s != "1.50" {
		t.Errorf("Stop() = %q, want 1.50", s)
	}
	if got != "1.50" {
		t.Errorf("callback got %q, want 1.50", got)
	}
	if tm.String() != "1.50" {
		t.Errorf("String() after stop = %q", tm.String())
	}
}

func TestStringWithoutCallback(t *testing.T) {
	tm := New(nil)
	tm.now = fakeClock(0, 250*time.Millisecond)
	tm.Start()
	tm.Stop()
	if tm.String() != "0.25" {
		t.Errorf("String() = %q, want 0.25", tm.String())
	}
}

func TestSleepingBody(t *testing.T) {
	var got string
	New(func(s string) { got = s }).Do(func() {
		time.Sleep(100 * time.Millisecond)
	})
	v, err := strconv.ParseFloat(got, 64)
	if err != nil {
		t.Fatalf("callback value %q is not a number: %v", got, err)
	}
	if v < 0.10 || v > 0.50 {
		t.Errorf("expected ~0.10, got %q", got)
	}
}

func TestWrapRestartsPerCall(t *testing.T) {
	var calls []string
	tm := New(func(s string) { calls = append(calls, s) })
	tm.now = fakeClock(0, time.Second, 10*time.Second, 12*time.Second)

	wrapped := tm.Wrap(func() {})
	wrapped()
	wrapped()

	want := []string{"1.00", "2.00"}
	if len(calls) != 2 || calls[0] != want[0] || calls[1] != want[1] {
		t.Errorf("got %v, want %v", calls, want)
	}
}

func TestRunReportsOnError(t *testing.T) {
	called := false
	boom := errors.New("boom")
	err := New(func(string) { called = true }).Run(func() error { return boom })
	if !errors.Is(err, boom) {
		t.Errorf("expected boom, got %v", err)
	}
	if !called {
		t.Error("expected callback on error path")
	}
}

func TestDoReportsOnPanic(t *testing.T) {
	called := false
	func() {
		defer func() { _ = recover() }()
		New(func(string) { called = true }).Do(func() { panic("boom") })
	}()
	if !called {
		t.Error("expected callback on panic path")
	}
}

func TestSecondStopSkipsCallback(t *testing.T) {
	calls := 0
	tm := New(func(string) { calls++ })
	tm.now = fakeClock(0, time.Second, 5*time.Second)
	tm.Start()

	first := tm.Stop()
	second := tm.Stop()
	if calls != 1 {
		t.Errorf("expected 1 callback, got %d", calls)
	}
	if first != "1.00" || second != "1.00" {
		t.Errorf("expected both stops to report 1.00, got %q and %q", first, second)
	}
}
