package lox

import "strings"

// AstPrinter renders an expression tree back to source-ish text. It
// exists to keep the AST a pure data shape (§9 "no visitor machinery")
// while still giving tests something to call — the teacher put a String() method directly on every node;
// here that's collapsed into one function so ast.go stays free of
// printing concerns.
type AstPrinter struct{}

func (p AstPrinter) Print(e Expr) string {
	switch expr := e.(type) {
	case *LiteralExpr:
		return expr.Value.String()
	case *GroupingExpr:
		return p.parenthesize("group", expr.Expression)
	case *UnaryExpr:
		return p.parenthesize(expr.Operator.Lexeme, expr.Right)
	case *BinaryExpr:
		return p.parenthesize(expr.Operator.Lexeme, expr.Left, expr.Right)
	case *LogicalExpr:
		return p.parenthesize(expr.Operator.Lexeme, expr.Left, expr.Right)
	case *VariableExpr:
		return expr.Name.Lexeme
	case *AssignExpr:
		return p.parenthesize("= "+expr.Name.Lexeme, expr.Value)
	case *CallExpr:
		parts := make([]string, 0, len(expr.Args)+1)
		parts = append(parts, p.Print(expr.Callee))
		for _, a := range expr.Args {
			parts = append(parts, p.Print(a))
		}
		return "(call " + strings.Join(parts, " ") + ")"
	default:
		return "<unknown expr>"
	}
}

func (p AstPrinter) parenthesize(name string, exprs ...Expr) string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(name)
	for _, e := range exprs {
		sb.WriteByte(' ')
		sb.WriteString(p.Print(e))
	}
	sb.WriteByte(')')
	return sb.String()
}
