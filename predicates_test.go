// predicates_test.go — kind predicates over arbitrary error chains.
package xgxstatus

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf_FirstStatusWins(t *testing.T) {
	t.Parallel()

	inner := New("io_error")
	outer := Wrap("config_load_failed", inner)
	if KindOf(outer) != "config_load_failed" {
		t.Fatalf("KindOf=%q", KindOf(outer))
	}

	foreign := fmt.Errorf("at boundary: %w", outer)
	if KindOf(foreign) != "config_load_failed" {
		t.Fatal("KindOf should see through foreign wrappers")
	}

	if KindOf(errors.New("plain")) != "" {
		t.Fatal("plain errors carry no kind")
	}
	if KindOf(nil) != "" {
		t.Fatal("nil carries no kind")
	}
}

func TestHasKind_SearchesWholeChain(t *testing.T) {
	t.Parallel()

	chain := fmt.Errorf("outer: %w", Wrap("config_load_failed", New("io_error")))
	if !HasKind(chain, "io_error") {
		t.Fatal("inner kind should be found")
	}
	if !HasKind(chain, "config_load_failed") {
		t.Fatal("outer kind should be found")
	}
	if HasKind(chain, "timeout") {
		t.Fatal("absent kind must not be found")
	}
	if HasKind(nil, "io_error") {
		t.Fatal("nil has no kinds")
	}
}

func TestIsUnrecognized(t *testing.T) {
	t.Parallel()

	data := Encode(New("brand_new_kind"))
	s, err := Decode(data, NewKindSet("io_error"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !IsUnrecognized(s) {
		t.Fatal("decoded unknown kind should report unrecognized")
	}
	if IsUnrecognized(New("io_error")) {
		t.Fatal("known kind is not unrecognized")
	}
}

func TestRootCause_DeepestError(t *testing.T) {
	t.Parallel()

	src := errors.New("disk gone")
	s := Wrap("config_load_failed", FromError("io_error", src))
	if RootCause(s) != src {
		t.Fatal("root cause should be the foreign source at the bottom")
	}

	plain := New("a")
	if RootCause(plain) != error(plain) {
		t.Fatal("a sourceless status is its own root cause")
	}
	if RootCause(nil) != nil {
		t.Fatal("nil in, nil out")
	}
}
