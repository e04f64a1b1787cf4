package jack_test

import (
	"testing"

	"n2t.dev/toolchain/pkg/jack"
	"n2t.dev/toolchain/pkg/utils"
)

func TestTypeCheckerClass(t *testing.T) {
	// A minimal two-class program: Point declares a field plus a constructor and a method
	// that both read it, Main calls Point's constructor and then its method.
	point := jack.Class{
		Name: "Point",
		Fields: utils.NewOrderedMapFromList([]utils.MapEntry[string, jack.Variable]{
			{Key: "x", Value: jack.Variable{Name: "x", Type: jack.Field, DataType: jack.Int}},
		}),
		Subroutines: utils.NewOrderedMapFromList([]utils.MapEntry[string, jack.Subroutine]{
			{Key: "new", Value: jack.Subroutine{
				Name: "new", Type: jack.Constructor, Return: jack.Object,
				Statements: []jack.Statement{
					jack.ReturnStmt{Expr: jack.VarExpr{Var: "x"}},
				},
			}},
			{Key: "getX", Value: jack.Subroutine{
				Name: "getX", Type: jack.Method, Return: jack.Int,
				Statements: []jack.Statement{
					jack.ReturnStmt{Expr: jack.VarExpr{Var: "x"}},
				},
			}},
		}),
	}

	main := jack.Class{
		Name: "Main",
		Subroutines: utils.NewOrderedMapFromList([]utils.MapEntry[string, jack.Subroutine]{
			{Key: "main", Value: jack.Subroutine{
				Name: "main", Type: jack.Function, Return: jack.Void,
				Statements: []jack.Statement{
					jack.VarStmt{Vars: []jack.Variable{
						{Name: "p", Type: jack.Local, DataType: jack.Object, ClassName: "Point"},
					}},
					jack.LetStmt{
						Lhs: jack.VarExpr{Var: "p"},
						Rhs: jack.FuncCallExpr{IsExtCall: true, Var: "Point", FuncName: "new"},
					},
					jack.DoStmt{FuncCall: jack.FuncCallExpr{IsExtCall: true, Var: "p", FuncName: "getX"}},
				},
			}},
		}),
	}

	t.Run("Valid program resolves cleanly", func(t *testing.T) {
		program := jack.Program{"Point": point, "Main": main}
		checker := jack.NewTypeChecker(program)

		if _, err := checker.Check(); err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
	})

	t.Run("Reference to undeclared variable fails", func(t *testing.T) {
		broken := jack.Class{
			Name: "Broken",
			Subroutines: utils.NewOrderedMapFromList([]utils.MapEntry[string, jack.Subroutine]{
				{Key: "run", Value: jack.Subroutine{
					Name: "run", Type: jack.Function, Return: jack.Void,
					Statements: []jack.Statement{
						jack.ReturnStmt{Expr: jack.VarExpr{Var: "ghost"}},
					},
				}},
			}),
		}

		checker := jack.NewTypeChecker(jack.Program{"Broken": broken})
		if _, err := checker.Check(); err == nil {
			t.Fatalf("expected an error for undeclared variable, got none")
		}
	})

	t.Run("Reference to undeclared class fails", func(t *testing.T) {
		broken := jack.Class{
			Name: "Broken",
			Subroutines: utils.NewOrderedMapFromList([]utils.MapEntry[string, jack.Subroutine]{
				{Key: "run", Value: jack.Subroutine{
					Name: "run", Type: jack.Function, Return: jack.Void,
					Statements: []jack.Statement{
						jack.DoStmt{FuncCall: jack.FuncCallExpr{IsExtCall: true, Var: "Ghost", FuncName: "new"}},
					},
				}},
			}),
		}

		checker := jack.NewTypeChecker(jack.Program{"Broken": broken})
		if _, err := checker.Check(); err == nil {
			t.Fatalf("expected an error for undeclared class, got none")
		}
	})

	t.Run("Call to undeclared subroutine on a known class fails", func(t *testing.T) {
		broken := jack.Class{
			Name: "Broken",
			Subroutines: utils.NewOrderedMapFromList([]utils.MapEntry[string, jack.Subroutine]{
				{Key: "run", Value: jack.Subroutine{
					Name: "run", Type: jack.Function, Return: jack.Void,
					Statements: []jack.Statement{
						jack.DoStmt{FuncCall: jack.FuncCallExpr{IsExtCall: true, Var: "Point", FuncName: "missing"}},
					},
				}},
			}),
		}

		checker := jack.NewTypeChecker(jack.Program{"Broken": broken, "Point": point})
		if _, err := checker.Check(); err == nil {
			t.Fatalf("expected an error for undeclared subroutine, got none")
		}
	})

	t.Run("Field of unknown class type fails", func(t *testing.T) {
		broken := jack.Class{
			Name: "Broken",
			Fields: utils.NewOrderedMapFromList([]utils.MapEntry[string, jack.Variable]{
				{Key: "ghost", Value: jack.Variable{Name: "ghost", Type: jack.Field, DataType: jack.Object, ClassName: "Ghost"}},
			}),
		}

		checker := jack.NewTypeChecker(jack.Program{"Broken": broken})
		if _, err := checker.Check(); err == nil {
			t.Fatalf("expected an error for unknown field class, got none")
		}
	})
}

func TestTypeCheckerEmptyProgram(t *testing.T) {
	checker := jack.NewTypeChecker(nil)
	if _, err := checker.Check(); err == nil {
		t.Fatalf("expected an error for a nil program, got none")
	}
}
