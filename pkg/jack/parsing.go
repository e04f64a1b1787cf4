package jack

import (
	"fmt"
	"io"
	"os"
	"strconv"

	pc "github.com/prataprc/goparsec"
	"n2t.dev/toolchain/pkg/utils"
)

var ast = pc.NewAST("jack_program", 0)

// ----------------------------------------------------------------------------
// Class & member declarations

var (
	pClass = ast.And("class_decl", nil,
		ast.Kleene("file_header", nil, pComment),
		pc.Atom("class", "CLASS"), pIdent, pLBrace,
		ast.Kleene("class_vars_or_comments", nil, ast.OrdChoice("item", nil, pClassVarDecl, pComment)),
		ast.Kleene("subroutines_or_comments", nil, ast.OrdChoice("item", nil, pSubroutineDecl, pComment)),
		pRBrace,
	)

	// Static or instance field declaration: "{static|field} {type} {name} (, {name})* ;"
	pClassVarDecl = ast.And("class_var_decl", nil,
		pVarScope, pDataType, pIdent, ast.Kleene("more_names", nil, pIdent, pComma), pSemi,
	)

	pVarScope = ast.OrdChoice("var_scope", nil, pc.Atom("static", "STATIC"), pc.Atom("field", "FIELD"))

	// Constructor, function or method declaration.
	pSubroutineDecl = ast.And("subroutine_decl", nil,
		pSubroutineKind, pDataType, pIdent,
		pLParen, ast.Kleene("params", nil, pParam, pComma), pRParen,
		pLBrace,
		ast.Kleene("locals", nil, pVarDecl),
		ast.Kleene("body", nil, ast.OrdChoice("item", nil, &pStatement, pComment)),
		pRBrace,
	)

	pSubroutineKind = ast.OrdChoice("subroutine_kind", nil,
		pc.Atom("constructor", "CONSTRUCTOR"), pc.Atom("function", "FUNC"), pc.Atom("method", "METHOD"),
	)

	pParam = ast.And("param", nil, pDataType, pIdent)

	// Local variable declaration inside a subroutine's body: "var {type} {name} (, {name})* ;"
	pVarDecl = ast.And("var_decl", nil, pc.Atom("var", "VAR"), pDataType, pIdent, ast.Kleene("more_names", nil, pIdent, pComma), pSemi)
)

// ----------------------------------------------------------------------------
// Comments

var (
	pSlComment = ast.And("comment", nil, pc.Atom("//", "//"), pc.Token(`(?m).*$`, "COMMENT"))
	pMlComment = ast.And("comment", nil, pc.Token(`/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`, "COMMENT"))
	pComment   = ast.OrdChoice("comment_choice", nil, pSlComment, pMlComment)
)

// ----------------------------------------------------------------------------
// Statements

// 'pStatement' is self-recursive (if/while blocks contain further statements), so it's
// forward declared here and only assigned once every statement kind has been defined;
// every consumer references it through '&pStatement' to avoid an initialization cycle.
var pStatement pc.Parser

var (
	pDoStmt = ast.And("do_stmt", nil, pc.Atom("do", "DO"), pSubroutineCall, pSemi)

	pLetStmt = ast.And("let_stmt", nil,
		pc.Atom("let", "LET"), pIdent,
		ast.Kleene("index", nil, ast.And("array_index", nil, pLBracket, &pExpr, pRBracket)),
		pEq, &pExpr, pSemi,
	)

	pIfStmt = ast.And("if_stmt", nil,
		pc.Atom("if", "IF"), pLParen, &pExpr, pRParen,
		pLBrace, ast.Kleene("then_block", nil, ast.OrdChoice("item", nil, &pStatement, pComment)), pRBrace,
		ast.Kleene("else_block", nil, ast.And("else_clause", nil,
			pc.Atom("else", "ELSE"), pLBrace,
			ast.Kleene("else_stmts", nil, ast.OrdChoice("item", nil, &pStatement, pComment)), pRBrace,
		)),
	)

	pWhileStmt = ast.And("while_stmt", nil,
		pc.Atom("while", "WHILE"), pLParen, &pExpr, pRParen,
		pLBrace, ast.Kleene("block", nil, ast.OrdChoice("item", nil, &pStatement, pComment)), pRBrace,
	)

	pReturnStmt = ast.And("return_stmt", nil, pc.Atom("return", "RETURN"), ast.Kleene("value", nil, &pExpr), pSemi)
)

func init() {
	pStatement = ast.OrdChoice("statement", nil, pDoStmt, pLetStmt, pIfStmt, pWhileStmt, pReturnStmt)
}

// ----------------------------------------------------------------------------
// Subroutine calls

// Covers both the unqualified ('doSomething(x)') and qualified ('var.method(x)' or
// 'Class.method(x)') call syntax; disambiguation happens in 'handleSubroutineCall'.
var pSubroutineCall = ast.And("subroutine_call", nil,
	pIdent, ast.Kleene("qualifier", nil, ast.And("qualified", nil, pDot, pIdent)),
	pLParen, ast.Kleene("args", nil, &pExpr, pComma), pRParen,
)

// ----------------------------------------------------------------------------
// Expressions

// Jack's expression grammar is intentionally flat (no precedence climbing): an
// expression is a term followed by zero or more (operator, term) pairs, evaluated
// strictly left to right. 'pExpr' and 'pTerm' are mutually recursive (parenthesized
// sub-expressions, array indices and unary operands all recurse back into one or the
// other), so both are forward declared and referenced through pointers by anything
// that needs them before their own initializer runs.
var pExpr pc.Parser

// 'pLiteral' must be tried before 'pVarExpr': the keyword constants ('true', 'false',
// 'null') are otherwise indistinguishable from a bare identifier by the lexer alone.
var pTerm = ast.OrdChoice("term", nil,
	pUnaryExpr, pParenExpr, pSubroutineCall, pArrayExpr, pLiteral, pVarExpr,
)

var (
	pUnaryExpr = ast.And("unary_expr", nil, pUnaryOp, &pTerm)
	pParenExpr = ast.And("paren_expr", nil, pLParen, &pExpr, pRParen)
	pArrayExpr = ast.And("array_expr", nil, pIdent, pLBracket, &pExpr, pRBracket)
	pVarExpr   = ast.And("var_expr", nil, pIdent)

	pUnaryOp = ast.OrdChoice("un_op", nil, pc.Atom("-", "MINUS"), pc.Atom("~", "NOT"))
	pBinOp   = ast.OrdChoice("bin_op", nil,
		pc.Atom("+", "PLUS"), pc.Atom("-", "MINUS"), pc.Atom("*", "MUL"), pc.Atom("/", "DIV"),
		pc.Atom("&", "AND"), pc.Atom("|", "OR"), pc.Atom("<", "LT"), pc.Atom(">", "GT"), pc.Atom("=", "EQ"),
	)

	// Only integer, string, and the three keyword constants exist in the Jack grammar;
	// there's no separate char literal syntax (chars are just integer codes).
	pLiteral = ast.OrdChoice("literal", nil,
		pc.Int(), pc.Token(`"(?:\\.|[^"\\])*"`, "STRING"),
		pc.Atom("true", "TRUE"), pc.Atom("false", "FALSE"), pc.Atom("null", "NULL"),
	)
)

func init() {
	pExpr = ast.And("expression", nil, &pTerm, ast.Kleene("expr_tail", nil, ast.And("op_term", nil, pBinOp, &pTerm)))
}

// ----------------------------------------------------------------------------
// Lexical primitives

var (
	// NOTE: An ident is a letter or underscore followed by letters, digits or underscores.
	// NOTE: An ident cannot begin with a leading digit.
	pIdent = pc.Token(`[A-Za-z_][0-9a-zA-Z_]*`, "IDENT")

	pDot      = pc.Atom(".", "DOT")
	pSemi     = pc.Atom(";", "SEMI")
	pComma    = pc.Atom(",", "COMMA")
	pEq       = pc.Atom("=", "ASSIGN")
	pLBrace   = pc.Atom("{", "LBRACE")
	pRBrace   = pc.Atom("}", "RBRACE")
	pLParen   = pc.Atom("(", "LPAREN")
	pRParen   = pc.Atom(")", "RPAREN")
	pLBracket = pc.Atom("[", "LBRACKET")
	pRBracket = pc.Atom("]", "RBRACKET")

	// A type is one of the three primitives, 'void' (only legal as a return type) or a
	// class name (any other identifier).
	pDataType = ast.OrdChoice("data_type", nil,
		pc.Atom("int", "INT"), pc.Atom("char", "CHAR"), pc.Atom("boolean", "BOOL"), pc.Atom("void", "VOID"), pIdent,
	)
)

// ----------------------------------------------------------------------------
// Jack Parser

// This section defines the Parser for the nand2tetris Jack language.
//
// It uses parser combinator(s) to obtain the AST from the source code (the latter can be provided)
// in multiple ways using a generic io.Reader, the library reads up the feature flags (as env vars):
// - PARSEC_DEBUG: Verbose logging to inspect which of the PCs gets triggered and match
// - EXPORT_AST:   Exports in the DEBUG_FOLDER a Graphviz representation of the AST
// - PRINT_AST:    Print on the stdout a textual representation of the AST
type Parser struct{ reader io.Reader }

// Initializes and returns to the caller a brand new 'Parser' struct.
// Requires the argument io.Reader 'r' to be valid and usable.
func NewParser(r io.Reader) Parser {
	return Parser{reader: r}
}

// Parser entrypoint divides the 2 phases of the parsing pipeline
// Text --> AST: This step is done using PCs and returns a generic traversable AST
// AST --> IR: This step is done by traversing the AST and extracting the 'jack.Class'
func (p *Parser) Parse() (Class, error) {
	content, err := io.ReadAll(p.reader)
	if err != nil {
		return Class{}, fmt.Errorf("cannot read from 'io.Reader': %s", err)
	}

	root, success := p.FromSource(content)
	if !success {
		return Class{}, fmt.Errorf("failed to parse AST from input content")
	}

	return p.FromAST(root)
}

// Scans the textual input stream coming from the 'reader' method and returns a traversable AST
// (Abstract Syntax Tree) that can be eventually visited to extract/transform the info available.
func (p *Parser) FromSource(source []byte) (pc.Queryable, bool) {

	// Feature flag: Enable 'goparsec' library's debug logs
	if os.Getenv("PARSEC_DEBUG") != "" {
		ast.SetDebug()
	}

	// We generate the traversable Abstract Syntax Tree from the source content
	root, _ := ast.Parsewith(pClass, pc.NewScanner(source))

	// Feature flag: Enables export of the AST as Dot file (debug.ast.fot)
	if os.Getenv("EXPORT_AST") != "" {
		file, _ := os.Create(fmt.Sprintf("%s/debug.ast.dot", os.Getenv("DEBUG_FOLDER")))
		defer file.Close()

		file.Write([]byte(ast.Dotstring("\"Jack AST\"")))
	}

	// Feature flag: Enables pretty printing of the AST on the console
	if os.Getenv("PRINT_AST") != "" {
		ast.Prettyprint()
	}

	return root, root != nil // Success means a class declaration matched; trailing input is not checked
}

// ----------------------------------------------------------------------------
// AST --> IR traversal

// Takes the root node of the raw parsed AST (a 'class_decl') and returns the in-memory,
// type-safe 'jack.Class' it describes.
func (p *Parser) FromAST(root pc.Queryable) (Class, error) {
	if root.GetName() != "class_decl" {
		return Class{}, fmt.Errorf("expected node 'class_decl', found %s", root.GetName())
	}

	// Children, in grammar order: file_header, "class", name, '{', class_vars, subroutines, '}'
	children := root.GetChildren()
	if len(children) != 7 {
		return Class{}, fmt.Errorf("expected node 'class_decl' with 7 leaf, got %d", len(children))
	}

	class := Class{
		Name:        children[2].GetValue(),
		Fields:      utils.NewOrderedMap[string, Variable](),
		Subroutines: utils.NewOrderedMap[string, Subroutine](),
	}

	for _, item := range children[4].GetChildren() {
		if item.GetName() == "comment" {
			continue
		}
		vars, err := p.HandleClassVarDecl(item)
		if err != nil {
			return Class{}, err
		}
		for _, v := range vars {
			class.Fields.Set(v.Name, v)
		}
	}

	for _, item := range children[5].GetChildren() {
		if item.GetName() == "comment" {
			continue
		}
		subroutine, err := p.HandleSubroutineDecl(item)
		if err != nil {
			return Class{}, err
		}
		class.Subroutines.Set(subroutine.Name, subroutine)
	}

	return class, nil
}

// Specialized function to convert a "class_var_decl" node to a list of 'jack.Variable'.
// Children, in grammar order: scope, type, name, more_names, ';'
func (p *Parser) HandleClassVarDecl(node pc.Queryable) ([]Variable, error) {
	children := node.GetChildren()
	if len(children) != 5 {
		return nil, fmt.Errorf("expected node 'class_var_decl' with 5 leaf, got %d", len(children))
	}

	scope := Field
	if children[0].GetValue() == "static" {
		scope = Static
	}

	dataType, className := parseDataType(children[1])
	names := []string{children[2].GetValue()}
	for _, extra := range children[3].GetChildren() {
		names = append(names, extra.GetValue())
	}

	vars := make([]Variable, 0, len(names))
	for _, name := range names {
		vars = append(vars, Variable{Name: name, Type: scope, DataType: dataType, ClassName: className})
	}
	return vars, nil
}

// Specialized function to convert a "subroutine_decl" node to a 'jack.Subroutine'.
// Children, in grammar order: kind, return type, name, '(', params, ')', '{', locals, body, '}'
func (p *Parser) HandleSubroutineDecl(node pc.Queryable) (Subroutine, error) {
	children := node.GetChildren()
	if len(children) != 10 {
		return Subroutine{}, fmt.Errorf("expected node 'subroutine_decl' with 10 leaf, got %d", len(children))
	}

	kind := SubroutineType(children[0].GetValue())
	returnType, _ := parseDataType(children[1])
	name := children[2].GetValue()

	args := make([]Variable, 0, len(children[4].GetChildren()))
	for _, param := range children[4].GetChildren() {
		arg, err := p.HandleParam(param)
		if err != nil {
			return Subroutine{}, err
		}
		args = append(args, arg)
	}

	statements := []Statement{}
	for _, local := range children[7].GetChildren() {
		vars, err := p.HandleVarDecl(local)
		if err != nil {
			return Subroutine{}, err
		}
		statements = append(statements, VarStmt{Vars: vars})
	}

	for _, item := range children[8].GetChildren() {
		if item.GetName() == "comment" {
			continue
		}
		stmt, err := p.HandleStatement(item)
		if err != nil {
			return Subroutine{}, err
		}
		statements = append(statements, stmt)
	}

	return Subroutine{Name: name, Type: kind, Return: returnType, Arguments: args, Statements: statements}, nil
}

// Specialized function to convert a "param" node to a 'jack.Variable'.
func (p *Parser) HandleParam(node pc.Queryable) (Variable, error) {
	children := node.GetChildren()
	if len(children) != 2 {
		return Variable{}, fmt.Errorf("expected node 'param' with 2 leaf, got %d", len(children))
	}

	dataType, className := parseDataType(children[0])
	return Variable{Name: children[1].GetValue(), Type: Parameter, DataType: dataType, ClassName: className}, nil
}

// Specialized function to convert a "var_decl" node to a list of 'jack.Variable'.
// Children, in grammar order: 'var', type, name, more_names, ';'
func (p *Parser) HandleVarDecl(node pc.Queryable) ([]Variable, error) {
	children := node.GetChildren()
	if len(children) != 5 {
		return nil, fmt.Errorf("expected node 'var_decl' with 5 leaf, got %d", len(children))
	}

	dataType, className := parseDataType(children[1])
	names := []string{children[2].GetValue()}
	for _, extra := range children[3].GetChildren() {
		names = append(names, extra.GetValue())
	}

	vars := make([]Variable, 0, len(names))
	for _, name := range names {
		vars = append(vars, Variable{Name: name, Type: Local, DataType: dataType, ClassName: className})
	}
	return vars, nil
}

// Generalized function to convert any statement node to a 'jack.Statement'.
func (p *Parser) HandleStatement(node pc.Queryable) (Statement, error) {
	switch node.GetName() {
	case "do_stmt":
		return p.HandleDoStmt(node)
	case "let_stmt":
		return p.HandleLetStmt(node)
	case "if_stmt":
		return p.HandleIfStmt(node)
	case "while_stmt":
		return p.HandleWhileStmt(node)
	case "return_stmt":
		return p.HandleReturnStmt(node)
	default:
		return nil, fmt.Errorf("unrecognized statement node '%s'", node.GetName())
	}
}

// Specialized function to convert a "do_stmt" node to a 'jack.DoStmt'.
// Children, in grammar order: 'do', subroutine_call, ';'
func (p *Parser) HandleDoStmt(node pc.Queryable) (Statement, error) {
	children := node.GetChildren()
	if len(children) != 3 {
		return nil, fmt.Errorf("expected node 'do_stmt' with 3 leaf, got %d", len(children))
	}

	call, err := p.HandleSubroutineCall(children[1])
	if err != nil {
		return nil, err
	}
	return DoStmt{FuncCall: call}, nil
}

// Specialized function to convert a "let_stmt" node to a 'jack.LetStmt'.
// Children, in grammar order: 'let', name, index, '=', rhs expr, ';'
func (p *Parser) HandleLetStmt(node pc.Queryable) (Statement, error) {
	children := node.GetChildren()
	if len(children) != 6 {
		return nil, fmt.Errorf("expected node 'let_stmt' with 6 leaf, got %d", len(children))
	}

	name := children[1].GetValue()
	indexChildren := children[2].GetChildren()

	rhs, err := p.HandleExpression(children[4])
	if err != nil {
		return nil, err
	}

	if len(indexChildren) == 0 {
		return LetStmt{Lhs: VarExpr{Var: name}, Rhs: rhs}, nil
	}

	// indexChildren[0] is an 'array_index' node: '[', expr, ']'
	index, err := p.HandleExpression(indexChildren[0].GetChildren()[1])
	if err != nil {
		return nil, err
	}
	return LetStmt{Lhs: ArrayExpr{Var: name, Index: index}, Rhs: rhs}, nil
}

// Specialized function to convert an "if_stmt" node to a 'jack.IfStmt'.
// Children, in grammar order: 'if', '(', cond, ')', '{', then_block, '}', else_block
func (p *Parser) HandleIfStmt(node pc.Queryable) (Statement, error) {
	children := node.GetChildren()
	if len(children) != 8 {
		return nil, fmt.Errorf("expected node 'if_stmt' with 8 leaf, got %d", len(children))
	}

	condition, err := p.HandleExpression(children[2])
	if err != nil {
		return nil, err
	}

	thenBlock, err := p.handleStatementList(children[5])
	if err != nil {
		return nil, err
	}

	elseBlock := []Statement{}
	if elseClauses := children[7].GetChildren(); len(elseClauses) > 0 {
		// elseClauses[0] is an 'else_clause' node: 'else', '{', stmts, '}'
		elseBlock, err = p.handleStatementList(elseClauses[0].GetChildren()[2])
		if err != nil {
			return nil, err
		}
	}

	return IfStmt{Condition: condition, ThenBlock: thenBlock, ElseBlock: elseBlock}, nil
}

// Specialized function to convert a "while_stmt" node to a 'jack.WhileStmt'.
// Children, in grammar order: 'while', '(', cond, ')', '{', block, '}'
func (p *Parser) HandleWhileStmt(node pc.Queryable) (Statement, error) {
	children := node.GetChildren()
	if len(children) != 7 {
		return nil, fmt.Errorf("expected node 'while_stmt' with 7 leaf, got %d", len(children))
	}

	condition, err := p.HandleExpression(children[2])
	if err != nil {
		return nil, err
	}

	block, err := p.handleStatementList(children[5])
	if err != nil {
		return nil, err
	}
	return WhileStmt{Condition: condition, Block: block}, nil
}

// Specialized function to convert a "return_stmt" node to a 'jack.ReturnStmt'.
// Children, in grammar order: 'return', value, ';'
func (p *Parser) HandleReturnStmt(node pc.Queryable) (Statement, error) {
	children := node.GetChildren()
	if len(children) != 3 {
		return nil, fmt.Errorf("expected node 'return_stmt' with 3 leaf, got %d", len(children))
	}

	values := children[1].GetChildren()
	if len(values) == 0 {
		return ReturnStmt{}, nil
	}

	expr, err := p.HandleExpression(values[0])
	if err != nil {
		return nil, err
	}
	return ReturnStmt{Expr: expr}, nil
}

// Converts a Kleene-wrapped list of 'statement'/'comment' nodes (as found in if/while blocks).
func (p *Parser) handleStatementList(node pc.Queryable) ([]Statement, error) {
	statements := []Statement{}
	for _, item := range node.GetChildren() {
		if item.GetName() == "comment" {
			continue
		}
		stmt, err := p.HandleStatement(item)
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	return statements, nil
}

// Specialized function to convert a "subroutine_call" node to a 'jack.FuncCallExpr'.
// Children, in grammar order: name, qualifier, '(', args, ')'
func (p *Parser) HandleSubroutineCall(node pc.Queryable) (FuncCallExpr, error) {
	children := node.GetChildren()
	if len(children) != 5 {
		return FuncCallExpr{}, fmt.Errorf("expected node 'subroutine_call' with 5 leaf, got %d", len(children))
	}

	first := children[0].GetValue()
	qualifiers := children[1].GetChildren()

	call := FuncCallExpr{FuncName: first}
	if len(qualifiers) > 0 {
		// qualifiers[0] is a 'qualified' node: '.', name
		qualified := qualifiers[0].GetChildren()
		call = FuncCallExpr{IsExtCall: true, Var: first, FuncName: qualified[1].GetValue()}
	}

	for _, arg := range children[3].GetChildren() {
		expr, err := p.HandleExpression(arg)
		if err != nil {
			return FuncCallExpr{}, err
		}
		call.Arguments = append(call.Arguments, expr)
	}

	return call, nil
}

// Specialized function to convert an "expression" node to a 'jack.Expression'.
func (p *Parser) HandleExpression(node pc.Queryable) (Expression, error) {
	children := node.GetChildren()
	if len(children) != 2 {
		return nil, fmt.Errorf("expected node 'expression' with 2 leaf, got %d", len(children))
	}

	lhs, err := p.HandleTerm(children[0])
	if err != nil {
		return nil, err
	}

	for _, tail := range children[1].GetChildren() {
		opTerm := tail.GetChildren()
		if len(opTerm) != 2 {
			return nil, fmt.Errorf("expected node 'op_term' with 2 leaf, got %d", len(opTerm))
		}

		rhs, err := p.HandleTerm(opTerm[1])
		if err != nil {
			return nil, err
		}
		lhs = BinaryExpr{Type: binOpType(opTerm[0].GetValue()), Lhs: lhs, Rhs: rhs}
	}

	return lhs, nil
}

// Specialized function to convert a "term" subtree to a 'jack.Expression'.
func (p *Parser) HandleTerm(node pc.Queryable) (Expression, error) {
	switch node.GetName() {
	case "unary_expr":
		children := node.GetChildren()
		rhs, err := p.HandleTerm(children[1])
		if err != nil {
			return nil, err
		}
		return UnaryExpr{Type: unaryOpType(children[0].GetValue()), Rhs: rhs}, nil

	case "paren_expr": // children: '(', expr, ')'
		return p.HandleExpression(node.GetChildren()[1])

	case "subroutine_call":
		return p.HandleSubroutineCall(node)

	case "array_expr": // children: name, '[', expr, ']'
		children := node.GetChildren()
		index, err := p.HandleExpression(children[2])
		if err != nil {
			return nil, err
		}
		return ArrayExpr{Var: children[0].GetValue(), Index: index}, nil

	case "var_expr":
		return VarExpr{Var: node.GetChildren()[0].GetValue()}, nil

	default:
		return p.HandleLiteral(node)
	}
}

// Specialized function to convert a literal node to a 'jack.LiteralExpr'.
func (p *Parser) HandleLiteral(node pc.Queryable) (Expression, error) {
	switch node.GetValue() {
	case "true":
		return LiteralExpr{Type: Bool, Value: "true"}, nil
	case "false":
		return LiteralExpr{Type: Bool, Value: "false"}, nil
	case "null":
		return LiteralExpr{Type: Object, Value: "null"}, nil
	}

	if _, err := strconv.ParseUint(node.GetValue(), 10, 15); err == nil { // Only 0..32767 fit in 15 bits
		return LiteralExpr{Type: Int, Value: node.GetValue()}, nil
	}

	raw := node.GetValue()
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		return LiteralExpr{Type: String, Value: raw[1 : len(raw)-1]}, nil
	}

	return nil, fmt.Errorf("unrecognized literal '%s'", raw)
}

// ----------------------------------------------------------------------------
// Token --> domain-value helpers

// Resolves a "data_type" node to its 'jack.DataType' and (if applicable) class name.
func parseDataType(node pc.Queryable) (DataType, string) {
	switch node.GetValue() {
	case "int":
		return Int, ""
	case "char":
		return Char, ""
	case "boolean":
		return Bool, ""
	case "void":
		return Void, ""
	default:
		return Object, node.GetValue()
	}
}

func binOpType(raw string) ExprType {
	switch raw {
	case "+":
		return Plus
	case "-":
		return Minus
	case "*":
		return Multiply
	case "/":
		return Divide
	case "&":
		return BoolAnd
	case "|":
		return BoolOr
	case "<":
		return LessThan
	case ">":
		return GreatThan
	default:
		return Equal
	}
}

func unaryOpType(raw string) ExprType {
	if raw == "~" {
		return BoolNot
	}
	return Minus
}
