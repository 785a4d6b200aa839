package xgate

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

func TestFieldValue(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		f    Field
		want any
	}{
		{FStr("k", "v"), "v"},
		{FInt("k", -3), int64(-3)},
		{FUint("k", 3), uint64(3)},
		{FFloat("k", 1.5), 1.5},
		{FBool("k", true), true},
		{FDur("k", time.Second), time.Second},
		{FTime("k", at), at},
		{FErr("k", boom), boom},
		{FErr("k", nil), nil},
		{FBytes("k", []byte("ab")), []byte("ab")},
		{FAny("k", map[string]int{"a": 1}), map[string]int{"a": 1}},
	}
	for _, c := range cases {
		got := c.f.Value()
		if c.f.Kind == KindError {
			if got != c.want {
				t.Errorf("Value() error: got %v want %v", got, c.want)
			}
			continue
		}
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Errorf("Value() kind %d (-want +got):\n%s", c.f.Kind, diff)
		}
	}
}

func TestFieldSkip(t *testing.T) {
	t.Parallel()

	if !FErr("error", nil).Skip() {
		t.Fatal("nil error should be skipped")
	}
	for _, f := range []Field{FErr("error", errors.New("x")), FStr("k", ""), FAny("k", nil)} {
		if f.Skip() {
			t.Fatalf("unexpected skip for %+v", f)
		}
	}
}
