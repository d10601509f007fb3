package reader

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/hlmerscher/bfc/iokind"
)

// ErrInterrupted is returned when the user interrupts input, either with
// Ctrl-C in a raw-mode terminal or by aborting a prompt.
var ErrInterrupted = errors.New("interrupted")

const ctrlC = 3

// For returns the input strategy for kind. Numeric input uses line editing
// when in is a terminal. The result may implement io.Closer.
func For(kind iokind.Kind, in io.Reader, out io.Writer) io.ByteReader {
	switch kind {
	case iokind.Number:
		if f, ok := in.(*os.File); ok && IsTerminal(f) {
			return NewNumber(NewLinerPrompter(), out)
		}
		return NewNumber(NewLinePrompter(in, out), out)
	case iokind.Echo:
		return NewEcho(in, out)
	case iokind.Raw:
		return NewRaw(in)
	}
	return NewStandard(in)
}

func NewStandard(in io.Reader) io.ByteReader {
	return bufio.NewReader(in)
}

// Terminal reads single bytes from a raw-mode terminal.
type Terminal struct {
	in   io.Reader
	echo io.Writer
	buf  [1]byte
}

func NewRaw(in io.Reader) *Terminal {
	return &Terminal{in: in}
}

// NewEcho returns a terminal reader writing every byte read back to echo,
// with carriage returns expanded to CRLF.
func NewEcho(in io.Reader, echo io.Writer) *Terminal {
	return &Terminal{in: in, echo: echo}
}

func (t *Terminal) ReadByte() (byte, error) {
	if _, err := io.ReadFull(t.in, t.buf[:]); err != nil {
		return 0, err
	}
	c := t.buf[0]
	if c == ctrlC {
		return 0, ErrInterrupted
	}

	if t.echo != nil {
		echoed := t.buf[:]
		if c == '\r' {
			echoed = []byte("\r\n")
		}
		if _, err := t.echo.Write(echoed); err != nil {
			return 0, err
		}
	}
	return c, nil
}
