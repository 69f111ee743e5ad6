package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumen/ast"
	"github.com/lumen-lang/lumen/lexer"
)

func parse(t *testing.T, src string) []ast.Node {
	t.Helper()
	tokens, err := lexer.Tokenize(src)
	require.NoError(t, err)
	stmts, diags := New(tokens).Parse()
	require.Empty(t, diags, "unexpected diagnostics: %v", diags)
	return stmts
}

func TestParse_LetAndPrecedence(t *testing.T) {
	stmts := parse(t, "let x := 2 + 3 * 4;")
	require.Len(t, stmts, 1)

	let, ok := stmts[0].(*ast.Let)
	require.True(t, ok, "expected *ast.Let, got %T", stmts[0])
	assert.Equal(t, "x", let.Name)

	// 2 + 3 * 4 parses as 2 + (3 * 4): '+' is the outermost node.
	add, ok := let.Expr.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "+", add.Op)

	mul, ok := add.RHS.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "*", mul.Op)
}

func TestParse_RightAssociativeSum(t *testing.T) {
	stmts := parse(t, "let x := 1 - 2 - 3;")
	let := stmts[0].(*ast.Let)

	// Right-associative: 1 - (2 - 3), not (1 - 2) - 3.
	outer, ok := let.Expr.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "-", outer.Op)

	lhsLit, ok := outer.LHS.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, "1", lhsLit.Text)

	inner, ok := outer.RHS.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "-", inner.Op)
}

func TestParse_IfElse(t *testing.T) {
	stmts := parse(t, "if (x > 0) { print x; } else { print 0; }")
	require.Len(t, stmts, 1)

	ifNode, ok := stmts[0].(*ast.If)
	require.True(t, ok)
	assert.NotNil(t, ifNode.Then)
	assert.NotNil(t, ifNode.Else)
}

func TestParse_While(t *testing.T) {
	stmts := parse(t, "while (i < 10) { i := i + 1; }")
	require.Len(t, stmts, 1)
	_, ok := stmts[0].(*ast.While)
	assert.True(t, ok)
}

func TestParse_FunctionDefAndCall(t *testing.T) {
	stmts := parse(t, "fn add(a, b) { ret a + b; }; let r := add(1, 2);")
	require.Len(t, stmts, 2)

	fn, ok := stmts[0].(*ast.Function)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, []string{"a", "b"}, fn.Params)

	let, ok := stmts[1].(*ast.Let)
	require.True(t, ok)
	call, ok := let.Expr.(*ast.Call)
	require.True(t, ok)
	assert.Equal(t, "add", call.Name)
	assert.Len(t, call.Args, 2)
}

func TestParse_CastVsParenthesization(t *testing.T) {
	stmts := parse(t, "let a := (int) 3.5; let b := (2 + 3);")
	require.Len(t, stmts, 2)

	castLet := stmts[0].(*ast.Let)
	cast, ok := castLet.Expr.(*ast.Cast)
	require.True(t, ok, "expected a Cast node, got %T", castLet.Expr)
	assert.Equal(t, "int", cast.TypeTag)

	parenLet := stmts[1].(*ast.Let)
	_, ok = parenLet.Expr.(*ast.Binary)
	require.True(t, ok, "expected the parenthesised binary expression to survive, got %T", parenLet.Expr)
}

func TestParse_BareCallStatementVsAssignment(t *testing.T) {
	stmts := parse(t, "foo(1, 2); x := 3;")
	require.Len(t, stmts, 2)

	_, ok := stmts[0].(*ast.Call)
	assert.True(t, ok, "expected a bare Call statement, got %T", stmts[0])

	_, ok = stmts[1].(*ast.Assignment)
	assert.True(t, ok, "expected an Assignment, got %T", stmts[1])
}

func TestParse_InputExpression(t *testing.T) {
	stmts := parse(t, "let name := input;")
	let := stmts[0].(*ast.Let)
	_, ok := let.Expr.(*ast.Input)
	assert.True(t, ok)
}

func TestParse_BareReturnHasNilExpr(t *testing.T) {
	stmts := parse(t, "fn f() { ret; }")
	fn := stmts[0].(*ast.Function)
	require.Len(t, fn.Body.Stmts, 1)
	ret, ok := fn.Body.Stmts[0].(*ast.Return)
	require.True(t, ok)
	assert.Nil(t, ret.Expr)
}

func TestParse_ErrorRecoveryCollectsMultipleDiagnostics(t *testing.T) {
	tokens, err := lexer.Tokenize("let := 1; let y := ;")
	require.NoError(t, err)

	stmts, diags := New(tokens).Parse()
	assert.Nil(t, stmts)
	assert.GreaterOrEqual(t, len(diags), 2)
}

func TestParse_EmptySourceProducesNoStatements(t *testing.T) {
	stmts := parse(t, "")
	assert.Empty(t, stmts)
}

func TestParse_NestedBlockShape(t *testing.T) {
	a := parse(t, "{ let x := 1; { let y := 2; }; }")
	b := parse(t, "{ let x := 1; { let y := 2; }; }")

	assert.Equal(t, a, b, "identical source should parse to identical trees")
}

func TestParse_DiagnosticString(t *testing.T) {
	d := Diagnostic{Message: "Expected ';' after statement", Offset: 7}
	assert.Equal(t, "Expected ';' after statement at: 7", d.String())
}
