package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHackAssembler(t *testing.T) {
	test := func(source string, expected []string) {
		dir := t.TempDir()
		input := filepath.Join(dir, "program.asm")
		output := filepath.Join(dir, "program.hack")

		if err := os.WriteFile(input, []byte(source), 0644); err != nil {
			t.Fatalf("failed to write input fixture: %v", err)
		}

		status := Handler([]string{input, output}, nil)
		if status != 0 {
			t.Fatalf("unexpected exit status code: expected 0 got: %d", status)
		}

		compiled, err := os.ReadFile(output)
		if err != nil {
			t.Fatalf("error reading output file %s: %v", output, err)
		}

		want := ""
		for _, line := range expected {
			want += line + "\n"
		}
		if string(compiled) != want {
			t.Fatalf("output does not match, got:\n%s\nwant:\n%s", compiled, want)
		}
	}

	t.Run("Add two constants", func(t *testing.T) {
		// Adds 2+3 and stores the result in R0, the canonical nand2tetris 'Add.asm' program.
		source := "@2\nD=A\n@3\nD=D+A\n@0\nM=D\n"
		expected := []string{
			"0000000000000010",
			"1110110000010000",
			"0000000000000011",
			"1110000010010000",
			"0000000000000000",
			"1110001100001000",
		}
		test(source, expected)
	})

	t.Run("Label and loop resolution", func(t *testing.T) {
		// An infinite loop jumping back to a label declared just before it.
		source := "(LOOP)\n@LOOP\n0;JMP\n"
		expected := []string{
			"0000000000000000",
			"1110101010000111",
		}
		test(source, expected)
	})

	t.Run("Variable allocation", func(t *testing.T) {
		// 'counter' is not a label nor a built-in, so it's allocated starting at address 16.
		source := "@counter\nM=0\n@counter\nD=M\n"
		expected := []string{
			"0000000000010000",
			"1110101010001000",
			"0000000000010000",
			"1111110000010000",
		}
		test(source, expected)
	})
}
