package assembler

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/hlmerscher/bfc/logger"
)

// Assemble builds the executable outFile from NASM source. Intermediate files
// live in a fresh directory under cfg.TempDir and are removed on every path.
// The executable is linked to a staging file beside outFile and renamed into
// place, so outFile never holds a partial result.
func Assemble(ctx context.Context, cfg Config, asm string, outFile string) (err error) {
	if outFile == "" {
		outFile = DefaultOutput
	}

	workDir, err := os.MkdirTemp(cfg.TempDir, "bfc-")
	if err != nil {
		return &FileSystemError{Op: "create work directory", Err: err}
	}
	defer func() {
		if rmErr := os.RemoveAll(workDir); rmErr != nil && err == nil {
			err = &FileSystemError{Op: "remove work directory", Err: rmErr}
		}
	}()

	asmFile := filepath.Join(workDir, "prog.asm")
	objFile := filepath.Join(workDir, "prog.o")

	if err := os.WriteFile(asmFile, []byte(asm), 0644); err != nil {
		return &FileSystemError{Op: "write assembly", Err: err}
	}
	if err := run(ctx, "assembler", cfg.Assembler, "-felf64", asmFile, "-o", objFile); err != nil {
		return err
	}

	staging, err := stagingFile(outFile)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			removeQuietly(staging)
		}
	}()

	if err := run(ctx, "linker", cfg.Linker, "-no-pie", objFile, "-o", staging); err != nil {
		return err
	}

	// outFile appears only after every other step has succeeded.
	if cfg.KeepAsm {
		if err := os.WriteFile(outFile+".asm", []byte(asm), 0644); err != nil {
			return &FileSystemError{Op: "keep assembly", Err: err}
		}
	}

	if err := os.Rename(staging, outFile); err != nil {
		if cfg.KeepAsm {
			removeQuietly(outFile + ".asm")
		}
		return &FileSystemError{Op: "move executable", Err: err}
	}
	return nil
}

// stagingFile reserves a hidden file in the directory of outFile, so the final
// rename never crosses file systems.
func stagingFile(outFile string) (string, error) {
	f, err := os.CreateTemp(filepath.Dir(outFile), "."+filepath.Base(outFile)+"-*.partial")
	if err != nil {
		return "", &FileSystemError{Op: "create staging file", Err: err}
	}
	name := f.Name()
	if err := f.Close(); err != nil {
		removeQuietly(name)
		return "", &FileSystemError{Op: "create staging file", Err: err}
	}
	return name, nil
}

// removeQuietly deletes a leftover build file on a path that is already
// failing; its own error is only logged.
func removeQuietly(name string) {
	if err := os.Remove(name); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Error("remove build file", "file", name, "err", err)
	}
}

func run(ctx context.Context, stage, tool string, args ...string) error {
	cmd := exec.CommandContext(ctx, tool, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = time.Second

	logger.Debug("running "+stage, "cmd", tool, "args", args)
	start := time.Now()
	err := cmd.Run()
	logger.Debug(stage+" finished", "cmd", tool, "took", time.Since(start), "err", err)

	if ctxErr := ctx.Err(); ctxErr != nil {
		return &CommandError{Tool: tool, Err: ctxErr}
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ToolError{Tool: tool, Stage: stage, Output: stdout.String() + stderr.String()}
	}
	if err != nil {
		return &CommandError{Tool: tool, Err: err}
	}
	return nil
}
