package assembler

import "fmt"

// FileSystemError is a failure creating, writing, moving or removing build
// files.
type FileSystemError struct {
	Op  string
	Err error
}

func (e *FileSystemError) Error() string {
	return fmt.Sprintf("filesystem error (%s):\n%v", e.Op, e.Err)
}

func (e *FileSystemError) Unwrap() error { return e.Err }

// CommandError is a tool that could not be started or was killed.
type CommandError struct {
	Tool string
	Err  error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("error executing %s:\n%v", e.Tool, e.Err)
}

func (e *CommandError) Unwrap() error { return e.Err }

// ToolError is a tool that ran and exited with a non-zero status. Output
// holds its stdout followed by stderr.
type ToolError struct {
	Tool   string
	Stage  string
	Output string
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s (%s) failed with:\n%s", e.Stage, e.Tool, e.Output)
}
