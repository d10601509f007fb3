package reader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/peterh/liner"
)

const numberPrompt = "input: "

// Prompter shows a prompt and returns the line typed in response.
type Prompter interface {
	Prompt(prompt string) (string, error)
}

// Number reads cell values typed as decimal numbers, asking again until the
// line holds a number between 0 and 255.
type Number struct {
	prompter Prompter
	out      io.Writer
}

func NewNumber(prompter Prompter, out io.Writer) *Number {
	return &Number{prompter: prompter, out: out}
}

func (n *Number) ReadByte() (byte, error) {
	for {
		line, err := n.prompter.Prompt(numberPrompt)
		if err != nil {
			return 0, err
		}

		line = strings.TrimSpace(line)
		value, err := strconv.ParseUint(strings.TrimPrefix(line, "+"), 10, 8)
		if err == nil {
			return byte(value), nil
		}

		var msg string
		switch {
		case line == "":
			msg = "please provide an input"
		case errors.Is(err, strconv.ErrRange):
			msg = "input must be within 0 - 255"
		default:
			msg = "input must be a number"
		}
		if _, err := fmt.Fprintln(n.out, msg); err != nil {
			return 0, err
		}
	}
}

func (n *Number) Close() error {
	if c, ok := n.prompter.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// LinePrompter writes the prompt to out and reads a line from in.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

func (p *LinePrompter) Prompt(prompt string) (string, error) {
	if _, err := io.WriteString(p.out, prompt); err != nil {
		return "", err
	}

	line, err := p.in.ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		return line, nil
	}
	return line, err
}

// LinerPrompter prompts with line editing on an interactive terminal.
type LinerPrompter struct {
	state *liner.State
}

func NewLinerPrompter() *LinerPrompter {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	return &LinerPrompter{state: state}
}

func (p *LinerPrompter) Prompt(prompt string) (string, error) {
	line, err := p.state.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", ErrInterrupted
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(line) != "" {
		p.state.AppendHistory(line)
	}
	return line, nil
}

func (p *LinerPrompter) Close() error {
	return p.state.Close()
}
