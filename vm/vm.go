package vm

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/hlmerscher/bfc/engine"
	"github.com/hlmerscher/bfc/iokind"
	"github.com/hlmerscher/bfc/logger"
)

//go:embed std.asm
var std string

var ErrUnsupportedIO = errors.New("io kind has no compiled subroutines")

// Compile translates actions into NASM x86-64 source. The program body
// becomes the subroutine `run`, called by the runtime in std.asm.
func Compile(actions []engine.Action, kind iokind.Kind) (string, error) {
	if !kind.Compilable() {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedIO, kind)
	}

	out := new(strings.Builder)
	w := New(out, kind)

	if err := w.WriteRaw(std + "\nsection .text\nrun:\n"); err != nil {
		return "", err
	}
	if err := translate(w, actions); err != nil {
		return "", err
	}
	if err := w.WriteRaw("ret\n"); err != nil {
		return "", err
	}

	logger.Debug("generated assembly", "loops", w.loops, "bytes", out.Len(), "io", kind)
	return out.String(), nil
}

func translate(w *Writer, actions []engine.Action) error {
	for _, action := range actions {
		switch action := action.(type) {
		case engine.Basic:
			if err := w.WriteBasic(action.Op); err != nil {
				return err
			}
		case engine.Loop:
			id := w.NextLoop()
			if err := w.WriteLoopStart(id); err != nil {
				return err
			}
			if err := translate(w, action.Body); err != nil {
				return err
			}
			if err := w.WriteLoopEnd(id); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown action %T at %s", action, action.Location())
		}
	}
	return nil
}
