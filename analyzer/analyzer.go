package analyzer

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"

	"github.com/hlmerscher/bfc/engine"
	"github.com/hlmerscher/bfc/logger"
	"github.com/hlmerscher/bfc/tokenizer"
)

// ReadError is a source file that could not be read.
type ReadError struct {
	Filename string
	Err      error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("error reading file %s:\n%v", e.Filename, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// EncodingError is a source file that is not valid UTF-8 text.
type EncodingError struct {
	Filename string
	Offset   int
	MIME     string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("invalid unicode in %s:\ninvalid utf-8 sequence at byte %d (content looks like %s)", e.Filename, e.Offset, e.MIME)
}

// Load reads, validates and parses the program in filename.
func Load(filename string) ([]engine.Action, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, &ReadError{Filename: filename, Err: err}
	}

	if offset := invalidOffset(content); offset >= 0 {
		return nil, &EncodingError{
			Filename: filename,
			Offset:   offset,
			MIME:     mimetype.Detect(content).String(),
		}
	}
	logger.Debug("loaded source", "file", filename, "bytes", len(content))

	return Parse(string(content))
}

// Parse builds the action tree of code.
func Parse(code string) ([]engine.Action, error) {
	actions, err := engine.Parse(tokenizer.New(strings.NewReader(code)))
	if err != nil {
		return nil, err
	}
	if logger.Enabled(slog.LevelDebug) {
		logger.Debug("parsed source", "actions", len(actions), "loops", engine.CountLoops(actions))
	}
	return actions, nil
}

// invalidOffset returns the byte offset of the first invalid UTF-8 sequence,
// or -1.
func invalidOffset(content []byte) int {
	for i := 0; i < len(content); {
		r, size := utf8.DecodeRune(content[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
