package tokenizer

import (
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"
)

func tokens(t *testing.T, src string) []Token {
	t.Helper()
	ts, err := Tokenize(src)
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	return ts
}

func TestTokenizeAllSymbols(t *testing.T) {
	got := tokens(t, "><+-.,[]")
	want := []TokenType{MOVE_RIGHT, MOVE_LEFT, INCREMENT, DECREMENT, OUTPUT, INPUT, LOOP_START, LOOP_END}

	types := make([]TokenType, 0, len(got))
	for _, token := range got {
		types = append(types, token.Type)
	}
	if !reflect.DeepEqual(types, want) {
		t.Fatalf("want %v, got %v", want, types)
	}
	for i, token := range got {
		if token.Loc != (Location{Line: 0, Col: i}) {
			t.Errorf("token %d: want col %d, got %s", i, i, token.Loc)
		}
	}
}

func TestTokenizeSkipsComments(t *testing.T) {
	got := tokens(t, "hello + world\n  ünïcödé - !")
	if len(got) != 2 {
		t.Fatalf("want 2 tokens, got %d: %v", len(got), got)
	}
	if got[0].Type != INCREMENT || got[0].Loc != (Location{Line: 0, Col: 6}) {
		t.Errorf("unexpected first token %v", got[0])
	}
	// columns count characters, not bytes
	if got[1].Type != DECREMENT || got[1].Loc != (Location{Line: 1, Col: 10}) {
		t.Errorf("unexpected second token %v", got[1])
	}
}

func TestTokenizeLines(t *testing.T) {
	got := tokens(t, "+\r\n\n  [\n]")
	want := []Location{
		{Line: 0, Col: 0},
		{Line: 2, Col: 2},
		{Line: 3, Col: 0},
	}
	if len(got) != len(want) {
		t.Fatalf("want %d tokens, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].Loc != want[i] {
			t.Errorf("token %d: want %s, got %s", i, want[i], got[i].Loc)
		}
	}
}

func TestTokenizeEmpty(t *testing.T) {
	if got := tokens(t, "no instructions here"); len(got) != 0 {
		t.Fatalf("want no tokens, got %v", got)
	}
}

func TestAdvanceIsLazy(t *testing.T) {
	tk := New(strings.NewReader("a+b"))

	token, err := tk.Advance()
	if err != nil {
		t.Fatal(err)
	}
	if token.Type != INCREMENT || tk.Current != token {
		t.Fatalf("unexpected token %v", token)
	}
	if _, err := tk.Advance(); !errors.Is(err, io.EOF) {
		t.Fatalf("want io.EOF, got %v", err)
	}
	if _, err := tk.Advance(); !errors.Is(err, io.EOF) {
		t.Fatalf("want io.EOF after exhaustion, got %v", err)
	}
}

func TestLocationString(t *testing.T) {
	if got := (Location{Line: 0, Col: 0}).String(); got != "1:1" {
		t.Errorf("want 1:1, got %s", got)
	}
	if got := (Location{Line: 4, Col: 11}).String(); got != "5:12" {
		t.Errorf("want 5:12, got %s", got)
	}
}

func TestSymbol(t *testing.T) {
	for _, c := range "><+-.,[]" {
		tt, ok := parseTokenType(c)
		if !ok {
			t.Fatalf("%q not recognized", c)
		}
		if Symbol(tt) != c {
			t.Errorf("Symbol(%s) = %q, want %q", tt, Symbol(tt), c)
		}
	}
	if LOOP_START.IsBasic() || LOOP_END.IsBasic() || !OUTPUT.IsBasic() {
		t.Error("IsBasic misclassifies token types")
	}
}
