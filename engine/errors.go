package engine

import (
	"errors"
	"fmt"

	"github.com/hlmerscher/bfc/tokenizer"
)

var (
	ErrUnmatchedLoopStart = errors.New("unmatched [")
	ErrUnmatchedLoopEnd   = errors.New("unmatched ]")
)

// ParseError is a structural error at a source location. Kind is one of
// ErrUnmatchedLoopStart or ErrUnmatchedLoopEnd.
type ParseError struct {
	Loc  tokenizer.Location
	Kind error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %s", e.Kind, e.Loc)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}
