package assembler

import (
	"os"

	"github.com/xyproto/env/v2"
)

const DefaultOutput = "a.out"

type Config struct {
	// Assembler is a NASM compatible assembler.
	Assembler string
	// Linker is a C compiler driver used to link against libc.
	Linker string
	// TempDir holds the intermediate files of a build.
	TempDir string
	// KeepAsm copies the generated source next to the executable.
	KeepAsm bool
}

// ConfigFromEnv reads BFC_ASSEMBLER, BFC_LINKER, BFC_TMPDIR and BFC_KEEP_ASM.
// The environment is reloaded on every call; env caches it otherwise.
func ConfigFromEnv() Config {
	env.Load()
	return Config{
		Assembler: env.Str("BFC_ASSEMBLER", "nasm"),
		Linker:    env.Str("BFC_LINKER", "cc"),
		TempDir:   env.Str("BFC_TMPDIR", os.TempDir()),
		KeepAsm:   env.Bool("BFC_KEEP_ASM"),
	}
}
