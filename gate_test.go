package xgate

import (
	"io"
	"os"
	"sync"
	"testing"
)

var allLevels = []Level{LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal}

// restoreGate puts the threshold back after a test that moves it.
func restoreGate(t *testing.T) {
	t.Helper()
	old := GetLevel()
	t.Cleanup(func() { SetLevel(old) })
}

func TestGateDefault(t *testing.T) {
	if DefaultLevel != LevelDebug {
		t.Fatalf("default level: got %v want %v", DefaultLevel, LevelDebug)
	}
	if got := GetLevel(); got != DefaultLevel {
		t.Fatalf("initial gate: got %v want %v", got, DefaultLevel)
	}
}

func TestGateRoundTrip(t *testing.T) {
	restoreGate(t)
	for _, v := range allLevels {
		SetLevel(v)
		if got := GetLevel(); got != v {
			t.Fatalf("round trip: got %v want %v", got, v)
		}
	}
}

func TestGateRoundTripOutsideMembers(t *testing.T) {
	restoreGate(t)
	wide := int64(1)<<32 + 8
	for _, v := range []Level{LevelInfo + 1, LevelDebug - 100, Level(wide), Level(-wide)} {
		SetLevel(v)
		if got := GetLevel(); got != v {
			t.Fatalf("round trip of %d: got %d", int64(v), int64(got))
		}
	}
}

func TestGateIdempotent(t *testing.T) {
	restoreGate(t)
	for _, v := range allLevels {
		SetLevel(v)
		SetLevel(v)
		if got := GetLevel(); got != v {
			t.Fatalf("set twice: got %v want %v", got, v)
		}
	}
}

func TestGateLastWriteWins(t *testing.T) {
	restoreGate(t)
	seq := []Level{LevelWarn, LevelDebug, LevelFatal, LevelInfo, LevelError}
	for _, v := range seq {
		SetLevel(v)
	}
	if got, want := GetLevel(), seq[len(seq)-1]; got != want {
		t.Fatalf("last write: got %v want %v", got, want)
	}
}

func TestGateConcurrentAccess(t *testing.T) {
	restoreGate(t)
	valid := make(map[Level]bool, len(allLevels))
	for _, v := range allLevels {
		valid[v] = true
	}

	var wg sync.WaitGroup
	bad := make(chan Level, 1)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				SetLevel(allLevels[(i+j)%len(allLevels)])
				if got := GetLevel(); !valid[got] {
					select {
					case bad <- got:
					default:
					}
					return
				}
			}
		}(i)
	}
	wg.Wait()
	close(bad)
	if v, ok := <-bad; ok {
		t.Fatalf("observed a level that was never written: %d", int(v))
	}
}

func TestDiscard(t *testing.T) {
	restoreGate(t)
	SetLevel(LevelWarn)

	out := captureStdio(t, func() {
		cases := []struct {
			format string
			args   []any
		}{
			{"", nil},
			{"value=%d", []any{42}},
			{"%s %v %q %x", []any{"a", struct{ X int }{1}, []byte("b"), 3.5}},
			{"%d", []any{nil, nil, nil}},
			{"no verbs", []any{map[string]int{"a": 1}, make(chan int), func() {}}},
		}
		for _, c := range cases {
			if n := Discard(c.format, c.args...); n != 0 {
				t.Errorf("Discard(%q): got %d want 0", c.format, n)
			}
		}
	})
	if out != "" {
		t.Fatalf("Discard wrote output: %q", out)
	}
	if got := GetLevel(); got != LevelWarn {
		t.Fatalf("Discard moved the gate: got %v", got)
	}
}

func TestGateScenario(t *testing.T) {
	restoreGate(t)
	SetLevel(DefaultLevel)

	if got := GetLevel(); got != LevelDebug {
		t.Fatalf("start: got %v want DEBUG", got)
	}
	SetLevel(LevelError)
	if got := GetLevel(); got != LevelError {
		t.Fatalf("after set: got %v want ERROR", got)
	}
	if n := Discard("value=%d", 42); n != 0 {
		t.Fatalf("Discard: got %d want 0", n)
	}
	if got := GetLevel(); got != LevelError {
		t.Fatalf("after Discard: got %v want ERROR", got)
	}
}

// captureStdio runs fn with os.Stdout and os.Stderr redirected and returns
// everything written to either.
func captureStdio(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	oldOut, oldErr := os.Stdout, os.Stderr
	os.Stdout, os.Stderr = w, w
	defer func() { os.Stdout, os.Stderr = oldOut, oldErr }()

	done := make(chan string)
	go func() {
		b, _ := io.ReadAll(r)
		done <- string(b)
	}()
	fn()
	_ = w.Close()
	return <-done
}
