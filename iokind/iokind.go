// Package iokind enumerates the strategies mapping the input and output
// instructions onto a byte channel.
package iokind

import "fmt"

type Kind int

const (
	// Standard reads and writes raw bytes.
	Standard Kind = iota
	// Number reads and writes cell values as decimal text with a prompt.
	Number
	// Echo reads raw bytes from a raw-mode terminal and echoes them back.
	Echo
	// Raw reads raw bytes from a raw-mode terminal without echo.
	Raw
)

var names = map[Kind]string{
	Standard: "std",
	Number:   "num",
	Echo:     "echo",
	Raw:      "raw",
}

func (k Kind) String() string {
	if name, ok := names[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Compilable reports whether generated programs have subroutines for k.
func (k Kind) Compilable() bool {
	return k == Standard || k == Number
}

// Suffix is appended to the input/output subroutine names in generated code.
func (k Kind) Suffix() string {
	return k.String()
}

// Names lists the command-line spellings, compilable kinds first.
func Names(compilableOnly bool) []string {
	kinds := []Kind{Standard, Number, Echo, Raw}
	ret := make([]string, 0, len(kinds))
	for _, k := range kinds {
		if compilableOnly && !k.Compilable() {
			continue
		}
		ret = append(ret, k.String())
	}
	return ret
}

func Parse(name string) (Kind, error) {
	for k, n := range names {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown io kind %q", name)
}
