package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestVmTranslator(t *testing.T) {
	test := func(source string, options map[string]string, expected []string) {
		dir := t.TempDir()
		input := filepath.Join(dir, "Program.vm")
		output := filepath.Join(dir, "Program.asm")

		if err := os.WriteFile(input, []byte(source), 0644); err != nil {
			t.Fatalf("failed to write input fixture: %v", err)
		}

		opts := map[string]string{"output": output}
		for k, v := range options {
			opts[k] = v
		}

		status := Handler([]string{input}, opts)
		if status != 0 {
			t.Fatalf("unexpected exit status code: expected 0 got: %d", status)
		}

		compiled, err := os.ReadFile(output)
		if err != nil {
			t.Fatalf("error reading output file %s: %v", output, err)
		}

		want := strings.Join(expected, "\n") + "\n"
		if string(compiled) != want {
			t.Fatalf("output does not match, got:\n%s\nwant:\n%s", compiled, want)
		}
	}

	t.Run("Push two constants and add", func(t *testing.T) {
		// 'push constant 7' and 'push constant 8' both expand through the same
		// 'pushD' tail, 'add' pops y then x and pushes back their D+M sum.
		source := "push constant 7\npush constant 8\nadd\n"
		expected := []string{
			"@7", "D=A", "@SP", "A=M", "M=D", "@SP", "M=M+1",
			"@8", "D=A", "@SP", "A=M", "M=D", "@SP", "M=M+1",
			"@SP", "M=M-1", "A=M", "D=M",
			"@SP", "M=M-1", "A=M", "D=D+M",
			"@SP", "A=M", "M=D", "@SP", "M=M+1",
		}
		test(source, map[string]string{"no-init": "true"}, expected)
	})

	t.Run("Pop into a local slot", func(t *testing.T) {
		// 'pop local 2' resolves LCL+2 indirectly, since the base is only known at runtime.
		source := "pop local 2\n"
		expected := []string{
			"@2", "D=A", "@LCL", "D=D+M", "@R13", "M=D",
			"@SP", "M=M-1", "A=M", "D=M",
			"@R13", "A=M", "M=D",
		}
		test(source, map[string]string{"no-init": "true"}, expected)
	})

	t.Run("Unconditional goto to a declared label", func(t *testing.T) {
		source := "label LOOP\ngoto LOOP\n"
		expected := []string{
			"(LOOP)",
			"@LOOP", "0;JMP",
		}
		test(source, map[string]string{"no-init": "true"}, expected)
	})

	t.Run("Bootstrap prepends SP init and a call to Sys.init", func(t *testing.T) {
		source := "push constant 1\n"
		expected := []string{
			"@256", "D=A", "@SP", "M=D",
			"@FUNC_RETURN_1", "D=A",
			"@SP", "A=M", "M=D", "@SP", "M=M+1",
			"@LCL", "D=M", "@SP", "A=M", "M=D", "@SP", "M=M+1",
			"@ARG", "D=M", "@SP", "A=M", "M=D", "@SP", "M=M+1",
			"@THIS", "D=M", "@SP", "A=M", "M=D", "@SP", "M=M+1",
			"@THAT", "D=M", "@SP", "A=M", "M=D", "@SP", "M=M+1",
			"@SP", "D=M", "@5", "D=D-A", "@ARG", "M=D",
			"@SP", "D=M", "@LCL", "M=D",
			"@Sys.init", "0;JMP",
			"(FUNC_RETURN_1)",
			"@1", "D=A", "@SP", "A=M", "M=D", "@SP", "M=M+1",
		}
		test(source, nil, expected)
	})
}
