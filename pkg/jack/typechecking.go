package jack

import "fmt"

// A TypeChecker performs a single, explicit name-resolution pass over a jack.Program
// before it ever reaches the lowerer: every declared variable must resolve to a known
// primitive or a declared class, and every statement/expression must only reference
// declared variables and declared subroutines on declared classes. It does not perform
// any further inference (no arithmetic-type checking, no return-type checking) - running
// a program through '--typecheck' just surfaces the same class of name errors earlier,
// with the same message shape 'ScopeTable.ResolveVariable' already raises during lowering.
type TypeChecker struct {
	program Program
	scopes  ScopeTable // Keeps track of the scopes and declared variables inside each one

	class string // The class currently being checked, needed to resolve unqualified calls
}

func NewTypeChecker(program Program) TypeChecker {
	return TypeChecker{program: program}
}

func (tc *TypeChecker) Check() (bool, error) {
	if tc.program == nil {
		return false, fmt.Errorf("the given 'program' is empty or nil")
	}

	for name, class := range tc.program {
		_, err := tc.HandleClass(class)
		if err != nil {
			return false, fmt.Errorf("error handling type-check of class '%s': %w", name, err)
		}

	}

	return true, nil
}

// Specialized function to type-check a 'jack.Class' and nested fields.
func (tc *TypeChecker) HandleClass(class Class) (bool, error) {
	tc.scopes.PushClassScope(class.Name) // Keep track of the current scope being processed
	defer tc.scopes.PopClassScope()      // Reset the function name after processing

	previous := tc.class
	tc.class = class.Name
	defer func() { tc.class = previous }()

	for _, field := range class.Fields.Entries() {
		if err := tc.checkDataType(field.DataType, field.ClassName); err != nil {
			return false, fmt.Errorf("error handling field '%s' in class '%s': %w", field.Name, class.Name, err)
		}
		tc.scopes.RegisterVariable(field)
	}

	for _, subroutine := range class.Subroutines.Entries() {
		_, err := tc.HandleSubroutine(subroutine)
		if err != nil {
			return false, fmt.Errorf("error handling subroutine '%s' in class '%s': %w", subroutine.Name, class.Name, err)
		}
	}

	return true, nil
}

// Specialized function to type-check a 'jack.Subroutine' and nested fields.
func (tc *TypeChecker) HandleSubroutine(subroutine Subroutine) (bool, error) {
	tc.scopes.PushSubRoutineScope(subroutine.Name) // Keep track of the current subroutine function being processed
	defer tc.scopes.PopSubroutineScope()           // Reset the function name after processing

	// We add to the current scope also all of the arguments of the subroutine
	for _, arg := range subroutine.Arguments {
		if err := tc.checkDataType(arg.DataType, arg.ClassName); err != nil {
			return false, fmt.Errorf("error handling argument '%s' of subroutine '%s': %w", arg.Name, subroutine.Name, err)
		}
		// Like this we're actually supporting shadowing of variables, so if a variable
		// with the same name is already present in the current scope, we just temporarily
		// override it with the most update one instead of returning an error (like Go does
		tc.scopes.RegisterVariable(arg)
	}

	for _, stmt := range subroutine.Statements {
		if _, err := tc.HandleStatement(stmt); err != nil {
			return false, fmt.Errorf("error handling nested statement %T: %w", stmt, err)
		}
	}

	return true, nil
}

// Generalized function to type-check multiple statements types.
func (tc *TypeChecker) HandleStatement(stmt Statement) (bool, error) {
	switch stmt := stmt.(type) {
	case DoStmt:
		return tc.HandleExpression(stmt.FuncCall)

	case VarStmt:
		for _, v := range stmt.Vars {
			if err := tc.checkDataType(v.DataType, v.ClassName); err != nil {
				return false, fmt.Errorf("error handling var '%s': %w", v.Name, err)
			}
			tc.scopes.RegisterVariable(v)
		}
		return true, nil

	case LetStmt:
		if _, err := tc.HandleExpression(stmt.Lhs); err != nil {
			return false, fmt.Errorf("error handling assignment target: %w", err)
		}
		if _, err := tc.HandleExpression(stmt.Rhs); err != nil {
			return false, fmt.Errorf("error handling assigned value: %w", err)
		}
		return true, nil

	case ReturnStmt:
		if stmt.Expr == nil {
			return true, nil
		}
		return tc.HandleExpression(stmt.Expr)

	case IfStmt:
		if _, err := tc.HandleExpression(stmt.Condition); err != nil {
			return false, fmt.Errorf("error handling 'if' condition: %w", err)
		}
		if err := tc.handleStatementList(stmt.ThenBlock); err != nil {
			return false, fmt.Errorf("error handling 'if' then-block: %w", err)
		}
		if err := tc.handleStatementList(stmt.ElseBlock); err != nil {
			return false, fmt.Errorf("error handling 'if' else-block: %w", err)
		}
		return true, nil

	case WhileStmt:
		if _, err := tc.HandleExpression(stmt.Condition); err != nil {
			return false, fmt.Errorf("error handling 'while' condition: %w", err)
		}
		if err := tc.handleStatementList(stmt.Block); err != nil {
			return false, fmt.Errorf("error handling 'while' block: %w", err)
		}
		return true, nil

	default:
		return false, fmt.Errorf("unknown statement type %T", stmt)
	}
}

func (tc *TypeChecker) handleStatementList(stmts []Statement) error {
	for _, stmt := range stmts {
		if _, err := tc.HandleStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Generalized function to type-check multiple expression types, resolving every
// variable and subroutine reference found along the way.
func (tc *TypeChecker) HandleExpression(expr Expression) (bool, error) {
	switch expr := expr.(type) {
	case VarExpr:
		if expr.Var == "this" { // Keyword for the current object, never declared in any scope
			return true, nil
		}
		if _, _, err := tc.scopes.ResolveVariable(expr.Var); err != nil {
			return false, err
		}
		return true, nil

	case LiteralExpr:
		return true, nil

	case ArrayExpr:
		if _, _, err := tc.scopes.ResolveVariable(expr.Var); err != nil {
			return false, err
		}
		return tc.HandleExpression(expr.Index)

	case UnaryExpr:
		return tc.HandleExpression(expr.Rhs)

	case BinaryExpr:
		if _, err := tc.HandleExpression(expr.Lhs); err != nil {
			return false, err
		}
		return tc.HandleExpression(expr.Rhs)

	case FuncCallExpr:
		if err := tc.resolveSubroutineCall(expr); err != nil {
			return false, err
		}
		for _, arg := range expr.Arguments {
			if _, err := tc.HandleExpression(arg); err != nil {
				return false, err
			}
		}
		return true, nil

	default:
		return false, fmt.Errorf("unknown expression type %T", expr)
	}
}

// resolveSubroutineCall figures out which class owns the subroutine being invoked and
// verifies it is actually declared there. An unqualified call ('doSomething(...)') is
// resolved against the enclosing class; a qualified one ('var.doSomething(...)') is first
// tried as a method call on a variable of object type, falling back to a static call on a
// class with that same name (e.g. 'Math.abs(...)').
func (tc *TypeChecker) resolveSubroutineCall(call FuncCallExpr) error {
	className := tc.class

	if call.IsExtCall {
		if _, v, err := tc.scopes.ResolveVariable(call.Var); err == nil {
			if v.DataType != Object {
				return fmt.Errorf("variable '%s' is not an object, cannot call '%s' on it", call.Var, call.FuncName)
			}
			className = v.ClassName
		} else {
			className = call.Var
		}
	}

	class, ok := tc.program[className]
	if !ok {
		return fmt.Errorf("call to undeclared class '%s'", className)
	}
	if _, ok := class.Subroutines.Get(call.FuncName); !ok {
		return fmt.Errorf("call to undeclared subroutine '%s' on class '%s'", call.FuncName, className)
	}

	return nil
}

func (tc *TypeChecker) checkDataType(dt DataType, className string) error {
	switch dt {
	case Int, Bool, Char, Void, String, Null:
		return nil
	case Object:
		if _, ok := tc.program[className]; !ok {
			return fmt.Errorf("variable '%s' undeclared, not found in any scope", className)
		}
		return nil
	default:
		return fmt.Errorf("unknown data type '%s'", dt)
	}
}
