package tokenizer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slices"
)

var EmptyToken = Token{}

func New(input io.Reader) *Tokenizer {
	return &Tokenizer{
		input:   bufio.NewReader(input),
		Current: EmptyToken,
	}
}

// Tokenizer turns source text into instruction tokens one at a time.
// Everything that is not one of the eight instruction symbols is a comment.
type Tokenizer struct {
	input   *bufio.Reader
	LineNr  int
	ColNr   int
	Current Token
}

// Advance returns the next instruction token, or io.EOF once the input is
// exhausted.
func (tk *Tokenizer) Advance() (Token, error) {
	for {
		char, _, err := tk.input.ReadRune()
		if err != nil {
			return EmptyToken, err
		}

		loc := Location{Line: tk.LineNr, Col: tk.ColNr}
		if char == '\n' {
			tk.LineNr++
			tk.ColNr = 0
		} else {
			tk.ColNr++
		}

		tokenType, ok := parseTokenType(char)
		if !ok {
			continue
		}

		tk.Current = Token{Raw: char, Type: tokenType, Loc: loc}
		return tk.Current, nil
	}
}

// Tokenize drains a tokenizer over code.
func Tokenize(code string) ([]Token, error) {
	tk := New(strings.NewReader(code))

	tokens := make([]Token, 0)
	for {
		token, err := tk.Advance()
		if errors.Is(err, io.EOF) {
			return tokens, nil
		}
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
}

// Location is a zero-based source position.
type Location struct {
	Line int
	Col  int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line+1, l.Col+1)
}

type TokenType string

const (
	MOVE_RIGHT = TokenType("moveRight")
	MOVE_LEFT  = TokenType("moveLeft")
	INCREMENT  = TokenType("increment")
	DECREMENT  = TokenType("decrement")
	OUTPUT     = TokenType("output")
	INPUT      = TokenType("input")
	LOOP_START = TokenType("loopStart")
	LOOP_END   = TokenType("loopEnd")
)

// IsBasic reports whether the token is a primitive instruction rather than a
// loop delimiter.
func (t TokenType) IsBasic() bool {
	return t != LOOP_START && t != LOOP_END
}

type Token struct {
	Raw  rune
	Type TokenType
	Loc  Location
}

func (t Token) String() string {
	return fmt.Sprintf("%q %s at %s", t.Raw, t.Type, t.Loc)
}

var symbols = []rune{'>', '<', '+', '-', '.', ',', '[', ']'}

var symbolTypes = []TokenType{
	MOVE_RIGHT,
	MOVE_LEFT,
	INCREMENT,
	DECREMENT,
	OUTPUT,
	INPUT,
	LOOP_START,
	LOOP_END,
}

func parseTokenType(char rune) (TokenType, bool) {
	i := slices.Index(symbols, char)
	if i < 0 {
		return "", false
	}
	return symbolTypes[i], true
}

// Symbol returns the source character of a token type.
func Symbol(t TokenType) rune {
	i := slices.Index(symbolTypes, t)
	if i < 0 {
		return 0
	}
	return symbols[i]
}
