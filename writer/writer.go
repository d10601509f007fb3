package writer

import (
	"bufio"
	"fmt"
	"io"

	"github.com/hlmerscher/bfc/iokind"
)

// Writer receives the bytes produced by the output instruction. The
// interpreter flushes after every byte.
type Writer interface {
	WriteByte(c byte) error
	Flush() error
}

func For(kind iokind.Kind, out io.Writer) Writer {
	if kind == iokind.Number {
		return NewNumber(out)
	}
	return NewStandard(out)
}

func NewStandard(out io.Writer) Writer {
	return bufio.NewWriter(out)
}

// Number writes each byte as a decimal line.
type Number struct {
	out io.Writer
}

func NewNumber(out io.Writer) *Number {
	return &Number{out: out}
}

func (n *Number) WriteByte(c byte) error {
	_, err := fmt.Fprintf(n.out, "output: %d\n", c)
	return err
}

func (n *Number) Flush() error {
	return nil
}
