package mulscan

import (
	"fmt"
	"sort"
)

// MatchFunc computes the sum of the products of the mul(X,Y) instructions
// of input. With toggle set, only the instructions enabled at the point
// they occur are counted. A MatchFunc never fails: malformed fragments are
// skipped.
type MatchFunc func(input []byte, toggle bool) uint64

type Registry map[string]MatchFunc

var DefaultRegistry = Registry{
	"regexp": Regexp,
	"bychar": ByChar,
	"iter":   Iter,
	"find":   Find,
}

func Strategies() []string {
	return DefaultRegistry.Names()
}

func Lookup(name string) (MatchFunc, error) {
	return DefaultRegistry.Lookup(name)
}

func (r Registry) Names() []string {
	var names []string
	for n := range r {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (r Registry) Exists(name string) bool {
	_, ok := r[name]
	return ok
}

func (r Registry) Register(name string, fn MatchFunc) error {
	if r.Exists(name) {
		return fmt.Errorf("%s: strategy already registered", name)
	}
	r[name] = fn
	return nil
}

func (r Registry) Lookup(name string) (MatchFunc, error) {
	fn, ok := r[name]
	if !ok {
		return nil, Suggest(fmt.Errorf("%s: %w", name, ErrUnknown), name, r.Names())
	}
	return fn, nil
}
