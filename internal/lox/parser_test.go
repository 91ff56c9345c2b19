package lox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseSource(t *testing.T, source string) ([]Stmt, []*ParseError) {
	t.Helper()
	tokens, scanErrs := NewScanner(source).ScanTokens()
	require.Empty(t, scanErrs)
	return NewParser(tokens).Parse()
}

func TestParser_VarDeclaration(t *testing.T) {
	stmts, errs := parseSource(t, `var x = 1 + 2;`)
	require.Empty(t, errs)
	require.Len(t, stmts, 1)

	varStmt, ok := stmts[0].(*VarStmt)
	require.True(t, ok)
	assert.Equal(t, "x", varStmt.Name.Lexeme)
	_, ok = varStmt.Initializer.(*BinaryExpr)
	assert.True(t, ok)
}

func TestParser_OperatorPrecedence(t *testing.T) {
	expr, err := NewParser(mustScan(t, "1 + 2 * 3;")).ParseExpression()
	require.Nil(t, err)

	printed := (AstPrinter{}).Print(expr)
	assert.Equal(t, "(+ 1 (* 2 3))", printed)
}

func TestParser_Assignment(t *testing.T) {
	stmts, errs := parseSource(t, `a = b = 3;`)
	require.Empty(t, errs)
	require.Len(t, stmts, 1)

	exprStmt := stmts[0].(*ExpressionStmt)
	outer, ok := exprStmt.Expression.(*AssignExpr)
	require.True(t, ok)
	assert.Equal(t, "a", outer.Name.Lexeme)

	inner, ok := outer.Value.(*AssignExpr)
	require.True(t, ok)
	assert.Equal(t, "b", inner.Name.Lexeme)
}

func TestParser_InvalidAssignmentTargetReportsButDoesNotAbort(t *testing.T) {
	stmts, errs := parseSource(t, `1 = 2;`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "Invalid assignment target.")
	// the statement is still produced so later statements keep parsing.
	require.Len(t, stmts, 1)
}

func TestParser_ForDesugarsToWhile(t *testing.T) {
	stmts, errs := parseSource(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	require.Empty(t, errs)
	require.Len(t, stmts, 1)

	block, ok := stmts[0].(*BlockStmt)
	require.True(t, ok)
	require.Len(t, block.Statements, 2)

	_, ok = block.Statements[0].(*VarStmt)
	assert.True(t, ok)

	whileStmt, ok := block.Statements[1].(*WhileStmt)
	require.True(t, ok)

	body, ok := whileStmt.Body.(*BlockStmt)
	require.True(t, ok)
	require.Len(t, body.Statements, 2)
}

func TestParser_ForWithoutConditionDefaultsTrue(t *testing.T) {
	stmts, errs := parseSource(t, `for (;;) print 1;`)
	require.Empty(t, errs)

	whileStmt := stmts[0].(*WhileStmt)
	lit, ok := whileStmt.Condition.(*LiteralExpr)
	require.True(t, ok)
	assert.Equal(t, NewBool(true), lit.Value)
}

func TestParser_FunctionDeclaration(t *testing.T) {
	stmts, errs := parseSource(t, `fun add(a, b) { return a + b; }`)
	require.Empty(t, errs)
	require.Len(t, stmts, 1)

	fn, ok := stmts[0].(*FunctionStmt)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name.Lexeme)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "a", fn.Params[0].Lexeme)
	assert.Equal(t, "b", fn.Params[1].Lexeme)
	require.Len(t, fn.Body, 1)
}

func TestParser_MissingSemicolonProducesSynchronizingError(t *testing.T) {
	stmts, errs := parseSource(t, "print 1\nprint 2;")
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "Expect ';' after value.")
	// synchronize() recovers at the next statement boundary so the
	// well-formed second statement still parses.
	require.Len(t, stmts, 1)
	printStmt := stmts[0].(*PrintStmt)
	lit := printStmt.Expression.(*LiteralExpr)
	assert.Equal(t, NewNumber(2), lit.Value)
}

func TestParser_UnexpectedEOFReportsAtEnd(t *testing.T) {
	_, errs := parseSource(t, `var x =`)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[len(errs)-1].Error(), " at end")
}

func TestParser_CallExpression(t *testing.T) {
	expr, err := NewParser(mustScan(t, "add(1, 2);")).ParseExpression()
	require.Nil(t, err)

	call, ok := expr.(*CallExpr)
	require.True(t, ok)
	require.Len(t, call.Args, 2)
}

func mustScan(t *testing.T, source string) []Token {
	t.Helper()
	tokens, errs := NewScanner(source).ScanTokens()
	require.Empty(t, errs)
	return tokens
}
