package jack_test

import (
	"bytes"
	"testing"

	"n2t.dev/toolchain/pkg/jack"
)

func TestParserValidClass(t *testing.T) {
	source := `
// A tiny accumulator class, used to exercise every statement kind at once.
class Accumulator {
    field int total;
    static int instances;

    constructor Accumulator new(int seed) {
        let total = seed;
        let instances = instances + 1;
        return this;
    }

    method void add(int amount) {
        var int i;
        let i = 0;
        while (i < amount) {
            let total = total + 1;
            let i = i + 1;
        }
        return;
    }

    method int value() {
        if (total > 0) {
            return total;
        } else {
            return 0;
        }
    }

    function void main() {
        do Output.printInt(0);
        return;
    }
}
`

	parser := jack.NewParser(bytes.NewReader([]byte(source)))
	class, err := parser.Parse()
	if err != nil {
		t.Fatalf("expected no error parsing a valid class, got: %v", err)
	}

	if class.Name != "Accumulator" {
		t.Errorf("expected class name 'Accumulator', got '%s'", class.Name)
	}
	if class.Fields.Size() != 2 {
		t.Errorf("expected 2 fields, got %d", class.Fields.Size())
	}
	if class.Subroutines.Size() != 4 {
		t.Errorf("expected 4 subroutines, got %d", class.Subroutines.Size())
	}

	ctor, ok := class.Subroutines.Get("new")
	if !ok {
		t.Fatalf("expected to find subroutine 'new'")
	}
	if ctor.Type != jack.Constructor {
		t.Errorf("expected 'new' to be a constructor, got %s", ctor.Type)
	}
	if len(ctor.Arguments) != 1 || ctor.Arguments[0].Name != "seed" {
		t.Errorf("expected 'new' to take a single 'seed' argument, got %+v", ctor.Arguments)
	}

	add, ok := class.Subroutines.Get("add")
	if !ok {
		t.Fatalf("expected to find subroutine 'add'")
	}
	// The single 'var int i;' local declaration is surfaced as a leading VarStmt,
	// ahead of the three statements that make up the subroutine's actual body.
	if len(add.Statements) != 4 {
		t.Errorf("expected 4 statements in 'add', got %d", len(add.Statements))
	}
	if _, ok := add.Statements[0].(jack.VarStmt); !ok {
		t.Errorf("expected first statement in 'add' to be the hoisted local declaration, got %T", add.Statements[0])
	}
	if _, ok := add.Statements[2].(jack.WhileStmt); !ok {
		t.Errorf("expected third statement in 'add' to be a while loop, got %T", add.Statements[2])
	}

	value, ok := class.Subroutines.Get("value")
	if !ok {
		t.Fatalf("expected to find subroutine 'value'")
	}
	ifStmt, ok := value.Statements[0].(jack.IfStmt)
	if !ok {
		t.Fatalf("expected first statement in 'value' to be an if, got %T", value.Statements[0])
	}
	if len(ifStmt.ThenBlock) != 1 || len(ifStmt.ElseBlock) != 1 {
		t.Errorf("expected a single statement in each branch, got then=%d else=%d", len(ifStmt.ThenBlock), len(ifStmt.ElseBlock))
	}
}

func TestParserInvalidClass(t *testing.T) {
	t.Run("Missing closing brace", func(t *testing.T) {
		parser := jack.NewParser(bytes.NewReader([]byte(`class Broken { field int x;`)))
		if _, err := parser.Parse(); err == nil {
			t.Fatalf("expected an error for a malformed class, got none")
		}
	})

	t.Run("Not a class at all", func(t *testing.T) {
		parser := jack.NewParser(bytes.NewReader([]byte(`this is not jack code`)))
		if _, err := parser.Parse(); err == nil {
			t.Fatalf("expected an error for non-Jack input, got none")
		}
	})
}
