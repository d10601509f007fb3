package engine

import "github.com/hlmerscher/bfc/tokenizer"

// Action is a node of the parsed program: either a Basic instruction or a
// Loop owning its body.
type Action interface {
	Location() tokenizer.Location
	action()
}

// Basic is a single primitive instruction.
type Basic struct {
	Op  tokenizer.TokenType
	Loc tokenizer.Location
}

// Loop repeats Body while the current cell is nonzero. Loc points at the
// opening delimiter.
type Loop struct {
	Body []Action
	Loc  tokenizer.Location
}

func (b Basic) Location() tokenizer.Location { return b.Loc }
func (l Loop) Location() tokenizer.Location  { return l.Loc }

func (Basic) action() {}
func (Loop) action()  {}

// CountLoops returns the number of Loop nodes in actions, nested ones included.
func CountLoops(actions []Action) int {
	var n int
	for _, action := range actions {
		if loop, ok := action.(Loop); ok {
			n += 1 + CountLoops(loop.Body)
		}
	}
	return n
}
