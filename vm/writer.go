package vm

import (
	"fmt"
	"strings"

	"github.com/hlmerscher/bfc/iokind"
	"github.com/hlmerscher/bfc/tokenizer"
)

// rbx holds the address of the current cell.
var basicOpsTable = map[tokenizer.TokenType]string{
	tokenizer.MOVE_RIGHT: "inc rbx",
	tokenizer.MOVE_LEFT:  "dec rbx",
	tokenizer.INCREMENT:  "inc byte [rbx]",
	tokenizer.DECREMENT:  "dec byte [rbx]",
	tokenizer.OUTPUT:     "call output_%s",
	tokenizer.INPUT:      "call input_%s",
}

// Writer emits instructions for one program. It owns the loop counter, so
// every loop written through the same Writer gets a distinct label number.
type Writer struct {
	out   *strings.Builder
	kind  iokind.Kind
	loops int
}

func New(out *strings.Builder, kind iokind.Kind) *Writer {
	return &Writer{out: out, kind: kind}
}

func (w *Writer) WriteBasic(op tokenizer.TokenType) error {
	template, ok := basicOpsTable[op]
	if !ok {
		return fmt.Errorf("no instruction for %q", tokenizer.Symbol(op))
	}
	if op == tokenizer.OUTPUT || op == tokenizer.INPUT {
		template = fmt.Sprintf(template, w.kind.Suffix())
	}

	_, err := w.out.WriteString(template + "\n")
	return err
}

// NextLoop reserves a label number.
func (w *Writer) NextLoop() int {
	id := w.loops
	w.loops++
	return id
}

func (w *Writer) WriteLoopStart(id int) error {
	_, err := fmt.Fprintf(w.out, ".loop%d_start:\ncmp byte [rbx], 0\nje .loop%d_exit\n", id, id)
	return err
}

func (w *Writer) WriteLoopEnd(id int) error {
	_, err := fmt.Fprintf(w.out, "jmp .loop%d_start\n.loop%d_exit:\n", id, id)
	return err
}

func (w *Writer) WriteRaw(text string) error {
	_, err := w.out.WriteString(text)
	return err
}
