package vm

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/exp/slices"

	"github.com/hlmerscher/bfc/engine"
	"github.com/hlmerscher/bfc/iokind"
	"github.com/hlmerscher/bfc/tokenizer"
)

func compile(t *testing.T, src string, kind iokind.Kind) string {
	t.Helper()
	actions, err := engine.Parse(tokenizer.New(strings.NewReader(src)))
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	asm, err := Compile(actions, kind)
	if err != nil {
		t.Fatalf("compile %q: %v", src, err)
	}
	return asm
}

// body returns the generated lines of `run`, without the runtime preamble.
func body(t *testing.T, asm string) []string {
	t.Helper()
	const marker = "\nsection .text\nrun:\n"
	i := strings.LastIndex(asm, marker)
	if i < 0 {
		t.Fatalf("missing run subroutine in:\n%s", asm)
	}
	if !strings.HasPrefix(asm, std) {
		t.Fatal("generated code must start with the runtime preamble")
	}
	return strings.Split(strings.TrimSuffix(asm[i+len(marker):], "\n"), "\n")
}

func TestCompileBasicTemplates(t *testing.T) {
	got := body(t, compile(t, "><+-.,", iokind.Standard))
	want := []string{
		"inc rbx",
		"dec rbx",
		"inc byte [rbx]",
		"dec byte [rbx]",
		"call output_std",
		"call input_std",
		"ret",
	}
	if !slices.Equal(got, want) {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestCompileNumberSubroutines(t *testing.T) {
	got := body(t, compile(t, ".,", iokind.Number))
	want := []string{"call output_num", "call input_num", "ret"}
	if !slices.Equal(got, want) {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestCompileLoop(t *testing.T) {
	got := body(t, compile(t, "[-]", iokind.Standard))
	want := []string{
		".loop0_start:",
		"cmp byte [rbx], 0",
		"je .loop0_exit",
		"dec byte [rbx]",
		"jmp .loop0_start",
		".loop0_exit:",
		"ret",
	}
	if !slices.Equal(got, want) {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestCompileNestedLoopsOrder(t *testing.T) {
	got := body(t, compile(t, "[[]][]", iokind.Standard))
	want := []string{
		".loop0_start:", "cmp byte [rbx], 0", "je .loop0_exit",
		".loop1_start:", "cmp byte [rbx], 0", "je .loop1_exit",
		"jmp .loop1_start", ".loop1_exit:",
		"jmp .loop0_start", ".loop0_exit:",
		".loop2_start:", "cmp byte [rbx], 0", "je .loop2_exit",
		"jmp .loop2_start", ".loop2_exit:",
		"ret",
	}
	if !slices.Equal(got, want) {
		t.Fatalf("want %q, got %q", want, got)
	}
}

var labelRe = regexp.MustCompile(`(?m)^\.loop(\d+)_(start|exit):$`)

func TestCompileUniqueLabels(t *testing.T) {
	sources := []string{
		"",
		"+[-]",
		"[[[[[[[[[[]]]]]]]]]]",
		"[][][][][]",
		"+[>[-]<[+[>>[<]]]].[,[[]]]",
		strings.Repeat("[", 50) + strings.Repeat("]", 50) + strings.Repeat("[>]", 20),
	}
	for _, src := range sources {
		actions, err := engine.Parse(tokenizer.New(strings.NewReader(src)))
		if err != nil {
			t.Fatal(err)
		}
		asm, err := Compile(actions, iokind.Standard)
		if err != nil {
			t.Fatal(err)
		}

		starts := make([]int, 0)
		exits := make([]int, 0)
		for _, m := range labelRe.FindAllStringSubmatch(asm, -1) {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				t.Fatal(err)
			}
			if m[2] == "start" {
				starts = append(starts, n)
			} else {
				exits = append(exits, n)
			}
		}

		k := engine.CountLoops(actions)
		if len(starts) != k || len(exits) != k {
			t.Fatalf("%q: want %d label pairs, got %d starts and %d exits", src, k, len(starts), len(exits))
		}
		slices.Sort(starts)
		slices.Sort(exits)
		if len(slices.Compact(starts)) != k {
			t.Fatalf("%q: duplicate loop labels %v", src, starts)
		}
		if !slices.Equal(starts, exits) {
			t.Fatalf("%q: start labels %v do not match exit labels %v", src, starts, exits)
		}
		for i, n := range starts {
			if n != i {
				t.Fatalf("%q: labels are not numbered 0..%d: %v", src, k-1, starts)
			}
		}
	}
}

func TestCompileIsDeterministic(t *testing.T) {
	src := "+[>[-]<[+]]."
	if compile(t, src, iokind.Standard) != compile(t, src, iokind.Standard) {
		t.Fatal("compiling twice must give identical output")
	}
}

func TestCompileUnsupportedIO(t *testing.T) {
	for _, kind := range []iokind.Kind{iokind.Echo, iokind.Raw} {
		_, err := Compile(nil, kind)
		if !errors.Is(err, ErrUnsupportedIO) {
			t.Errorf("%s: want ErrUnsupportedIO, got %v", kind, err)
		}
	}
}

func TestRuntimeDefinesSubroutines(t *testing.T) {
	for _, name := range []string{"main:", "output_std:", "input_std:", "output_num:", "input_num:"} {
		if !strings.Contains(std, "\n"+name+"\n") {
			t.Errorf("runtime does not define %s", name)
		}
	}
}

func TestWriteBasicRejectsDelimiters(t *testing.T) {
	w := New(new(strings.Builder), iokind.Standard)
	err := w.WriteBasic(tokenizer.LOOP_START)
	if err == nil || err.Error() != "no instruction for '['" {
		t.Fatalf("unexpected error %v", err)
	}
}
