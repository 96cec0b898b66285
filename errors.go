package mulscan

import (
	"errors"

	"github.com/midbel/distance"
)

var ErrUnknown = errors.New("strategy not registered")

type SuggestionError struct {
	Others []string
	Err    error
}

func Suggest(err error, name string, names []string) error {
	names = distance.Levenshtein(name, names)
	if len(names) == 0 {
		return err
	}
	return SuggestionError{
		Err:    err,
		Others: names,
	}
}

func (s SuggestionError) Error() string {
	return s.Err.Error()
}

func (s SuggestionError) Unwrap() error {
	return s.Err
}
