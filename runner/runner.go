package runner

import (
	"fmt"
	"io"

	"github.com/hlmerscher/bfc/engine"
	"github.com/hlmerscher/bfc/tape"
	"github.com/hlmerscher/bfc/tokenizer"
	"github.com/hlmerscher/bfc/writer"
)

// IOError is a failed input or output instruction. Execution stops at the
// first one.
type IOError struct {
	Op  tokenizer.TokenType
	Loc tokenizer.Location
	Err error
}

func (e *IOError) Error() string {
	verb := "writing output"
	if e.Op == tokenizer.INPUT {
		verb = "reading input"
	}
	return fmt.Sprintf("%s at %s: %v", verb, e.Loc, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Execute runs actions on a fresh tape.
func Execute(actions []engine.Action, in io.ByteReader, out writer.Writer) error {
	r := &runner{tape: tape.New(), in: in, out: out}
	return r.sequence(actions)
}

type runner struct {
	tape *tape.Tape
	in   io.ByteReader
	out  writer.Writer
}

func (r *runner) sequence(actions []engine.Action) error {
	for _, action := range actions {
		if err := r.action(action); err != nil {
			return err
		}
	}
	return nil
}

func (r *runner) action(action engine.Action) error {
	switch action := action.(type) {
	case engine.Loop:
		for r.tape.Read() != 0 {
			if err := r.sequence(action.Body); err != nil {
				return err
			}
		}
	case engine.Basic:
		return r.basic(action)
	default:
		panic(fmt.Sprintf("unknown action %T", action))
	}
	return nil
}

func (r *runner) basic(action engine.Basic) error {
	switch action.Op {
	case tokenizer.MOVE_RIGHT:
		r.tape.MoveRight()
	case tokenizer.MOVE_LEFT:
		r.tape.MoveLeft()
	case tokenizer.INCREMENT:
		r.tape.Increment()
	case tokenizer.DECREMENT:
		r.tape.Decrement()
	case tokenizer.OUTPUT:
		if err := r.out.WriteByte(r.tape.Read()); err != nil {
			return &IOError{Op: action.Op, Loc: action.Loc, Err: err}
		}
		if err := r.out.Flush(); err != nil {
			return &IOError{Op: action.Op, Loc: action.Loc, Err: err}
		}
	case tokenizer.INPUT:
		c, err := r.in.ReadByte()
		if err != nil {
			return &IOError{Op: action.Op, Loc: action.Loc, Err: err}
		}
		r.tape.Write(c)
	default:
		panic(fmt.Sprintf("unknown instruction %s", action.Op))
	}
	return nil
}
