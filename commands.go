package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/hlmerscher/bfc/analyzer"
	"github.com/hlmerscher/bfc/assembler"
	"github.com/hlmerscher/bfc/engine"
	"github.com/hlmerscher/bfc/iokind"
	"github.com/hlmerscher/bfc/logger"
	"github.com/hlmerscher/bfc/reader"
	"github.com/hlmerscher/bfc/runner"
	"github.com/hlmerscher/bfc/vm"
	"github.com/hlmerscher/bfc/writer"
)

const defaultAsmOutput = "a.asm"

func loadProgram(filename string) ([]engine.Action, error) {
	actions, err := analyzer.Load(filename)

	var parseErr *engine.ParseError
	if errors.As(err, &parseErr) {
		return nil, fmt.Errorf("error while parsing code:\n%s at %s:%s", parseErr.Kind, filename, parseErr.Loc)
	}
	return actions, err
}

func compileProgram(filename, output, ioName string, asmOnly bool) error {
	kind, err := iokind.Parse(ioName)
	if err != nil {
		return err
	}

	actions, err := loadProgram(filename)
	if err != nil {
		return err
	}

	asm, err := vm.Compile(actions, kind)
	if err != nil {
		return fmt.Errorf("error while compiling:\n%w", err)
	}

	if asmOnly {
		if output == "" {
			output = defaultAsmOutput
		}
		if err := os.WriteFile(output, []byte(asm), 0644); err != nil {
			return fmt.Errorf("error while compiling:\n%w", err)
		}
		logger.Info("wrote assembly", "output", output)
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if output == "" {
		output = assembler.DefaultOutput
	}
	if err := assembler.Assemble(ctx, assembler.ConfigFromEnv(), asm, output); err != nil {
		return fmt.Errorf("error while compiling:\n%w", err)
	}
	logger.Info("built executable", "output", output)
	return nil
}

func interpretProgram(filename, ioName string) error {
	kind, err := iokind.Parse(ioName)
	if err != nil {
		return err
	}

	actions, err := loadProgram(filename)
	if err != nil {
		return err
	}

	if kind == iokind.Echo || kind == iokind.Raw {
		if reader.IsTerminal(os.Stdin) {
			restore, err := reader.MakeRaw(os.Stdin)
			if err != nil {
				return fmt.Errorf("error while executing code:\n%w", err)
			}
			defer restore()
		} else {
			logger.Warn("stdin is not a terminal, raw mode not enabled", "io", kind)
		}
	}

	return execute(actions, kind, os.Stdin, os.Stdout)
}

func execute(actions []engine.Action, kind iokind.Kind, stdin io.Reader, stdout io.Writer) error {
	in := reader.For(kind, stdin, stdout)
	if c, ok := in.(io.Closer); ok {
		defer c.Close()
	}

	if err := runner.Execute(actions, in, writer.For(kind, stdout)); err != nil {
		return fmt.Errorf("error while executing code:\n%w", err)
	}
	return nil
}
