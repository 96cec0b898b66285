package mulscan_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/midbel/mulscan"
)

func TestLookup(t *testing.T) {
	want := []string{"bychar", "find", "iter", "regexp"}
	if diff := cmp.Diff(want, mulscan.Strategies()); diff != "" {
		t.Fatalf("strategies mismatched! %s", diff)
	}
	for _, n := range want {
		fn, err := mulscan.Lookup(n)
		if err != nil {
			t.Fatalf("%s: unexpected error: %s", n, err)
		}
		if got := fn([]byte("mul(3,4)"), true); got != 12 {
			t.Errorf("%s: total mismatched! want 12, got %d", n, got)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := mulscan.Lookup("iterr")
	if !errors.Is(err, mulscan.ErrUnknown) {
		t.Fatalf("expected ErrUnknown, got %v", err)
	}
	var sugg mulscan.SuggestionError
	if !errors.As(err, &sugg) {
		t.Fatalf("expected suggestions, got %v", err)
	}
	if diff := cmp.Diff([]string{"iter"}, sugg.Others); diff != "" {
		t.Errorf("suggestions mismatched! %s", diff)
	}

	_, err = mulscan.Lookup("nothing-close")
	if !errors.Is(err, mulscan.ErrUnknown) {
		t.Fatalf("expected ErrUnknown, got %v", err)
	}
	if errors.As(err, &sugg) {
		t.Errorf("unexpected suggestions: %v", sugg.Others)
	}
}

func TestRegister(t *testing.T) {
	r := mulscan.Registry{}
	if err := r.Register("bychar", mulscan.ByChar); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if err := r.Register("bychar", mulscan.Find); err == nil {
		t.Fatalf("expected error when registering twice")
	}
	if !r.Exists("bychar") || r.Exists("find") {
		t.Errorf("registry content mismatched: %v", r.Names())
	}
}
