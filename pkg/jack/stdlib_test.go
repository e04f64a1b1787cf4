package jack_test

import (
	"testing"

	"n2t.dev/toolchain/pkg/jack"
)

func TestStandardLibraryABI(t *testing.T) {
	expectedClasses := []string{"Math", "String", "Array", "Output", "Screen", "Keyboard", "Memory", "Sys"}
	for _, name := range expectedClasses {
		if _, ok := jack.StandardLibraryABI[name]; !ok {
			t.Errorf("expected embedded stdlib ABI to contain class '%s'", name)
		}
	}

	math, ok := jack.StandardLibraryABI["Math"]
	if !ok {
		t.Fatalf("expected to find class 'Math'")
	}
	if math.Subroutines.Size() == 0 {
		t.Fatalf("expected 'Math' to have subroutines populated from stdlib.json, got none")
	}

	multiply, ok := math.Subroutines.Get("multiply")
	if !ok {
		t.Fatalf("expected to find subroutine 'Math.multiply'")
	}
	if multiply.Type != jack.Function {
		t.Errorf("expected 'Math.multiply' to be a function, got %s", multiply.Type)
	}
	if len(multiply.Arguments) != 2 {
		t.Errorf("expected 'Math.multiply' to take 2 arguments, got %d", len(multiply.Arguments))
	}
	if multiply.Return != jack.Int {
		t.Errorf("expected 'Math.multiply' to return int, got %s", multiply.Return)
	}

	str, ok := jack.StandardLibraryABI["String"]
	if !ok {
		t.Fatalf("expected to find class 'String'")
	}
	newStr, ok := str.Subroutines.Get("new")
	if !ok {
		t.Fatalf("expected to find subroutine 'String.new'")
	}
	if newStr.Type != jack.Constructor {
		t.Errorf("expected 'String.new' to be a constructor, got %s", newStr.Type)
	}
}
