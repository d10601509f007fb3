package engine

import (
	"errors"
	"io"

	"github.com/hlmerscher/bfc/tokenizer"
)

// Parse consumes every token of tk and builds the action tree. The first
// unmatched delimiter in stream order is reported as a *ParseError.
func Parse(tk *tokenizer.Tokenizer) ([]Action, error) {
	return parseSequence(tk, nil)
}

// parseSequence collects actions until the end of input at the top level, or
// until the delimiter closing the loop opened at start.
func parseSequence(tk *tokenizer.Tokenizer, start *tokenizer.Location) ([]Action, error) {
	actions := make([]Action, 0)

	for {
		token, err := tk.Advance()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		if token.Type.IsBasic() {
			actions = append(actions, Basic{Op: token.Type, Loc: token.Loc})
			continue
		}

		switch token.Type {
		case tokenizer.LOOP_START:
			loc := token.Loc
			body, err := parseSequence(tk, &loc)
			if err != nil {
				return nil, err
			}
			actions = append(actions, Loop{Body: body, Loc: loc})

		case tokenizer.LOOP_END:
			if start == nil {
				return nil, &ParseError{Loc: token.Loc, Kind: ErrUnmatchedLoopEnd}
			}
			return actions, nil
		}
	}

	if start != nil {
		return nil, &ParseError{Loc: *start, Kind: ErrUnmatchedLoopStart}
	}
	return actions, nil
}
