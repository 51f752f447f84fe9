package ast

import (
	"fmt"
	"strings"
)

// Print renders a node as a parenthesised prefix expression, e.g.
// "(print (+ 1 2))". Placeholders left by failed parses print as "<error>".
func Print(node interface{}) string {
	var b strings.Builder
	switch n := node.(type) {
	case Expr:
		printExpr(&b, n)
	case Stmt:
		printStmt(&b, n)
	case []Stmt:
		for i, s := range n {
			if i > 0 {
				b.WriteByte('\n')
			}
			printStmt(&b, s)
		}
	default:
		panic(fmt.Sprintf("ast.Print: unhandled %T", node))
	}
	return b.String()
}

func parenthesize(b *strings.Builder, name string, parts ...func()) {
	b.WriteByte('(')
	b.WriteString(name)
	for _, part := range parts {
		b.WriteByte(' ')
		part()
	}
	b.WriteByte(')')
}

func printExpr(b *strings.Builder, e Expr) {
	sub := func(e Expr) func() {
		return func() { printExpr(b, e) }
	}
	text := func(s string) func() {
		return func() { b.WriteString(s) }
	}

	switch e := e.(type) {
	case Literal:
		b.WriteString(e.Value.String())
	case Grouping:
		parenthesize(b, "group", sub(e.Expression))
	case Unary:
		parenthesize(b, e.Operator.Lexeme, sub(e.Right))
	case Binary:
		parenthesize(b, e.Operator.Lexeme, sub(e.Left), sub(e.Right))
	case Variable:
		b.WriteString(e.Name.Lexeme)
	case Assign:
		parenthesize(b, "assign", text(e.Name.Lexeme), text("="), sub(e.Value))
	case Call:
		parts := []func(){sub(e.Callee)}
		for _, arg := range e.Arguments {
			parts = append(parts, sub(arg))
		}
		parenthesize(b, "call", parts...)
	default:
		panic(fmt.Sprintf("ast.Print: unhandled expression %T", e))
	}
}

func printStmt(b *strings.Builder, s Stmt) {
	sub := func(s Stmt) func() {
		return func() { printStmt(b, s) }
	}
	expr := func(e Expr) func() {
		return func() { printExpr(b, e) }
	}
	text := func(s string) func() {
		return func() { b.WriteString(s) }
	}

	switch s := s.(type) {
	case ExpressionStmt:
		parenthesize(b, ";", expr(s.Expression))
	case PrintStmt:
		parenthesize(b, "print", expr(s.Expression))
	case VarStmt:
		if s.Initializer == nil {
			parenthesize(b, "var", text(s.Name.Lexeme))
			return
		}
		parenthesize(b, "var", text(s.Name.Lexeme), text("="), expr(s.Initializer))
	case BlockStmt:
		parts := make([]func(), len(s.Statements))
		for i, stmt := range s.Statements {
			parts[i] = sub(stmt)
		}
		parenthesize(b, "block", parts...)
	case IfStmt:
		if s.Else == nil {
			parenthesize(b, "if", expr(s.Condition), sub(s.Then))
			return
		}
		parenthesize(b, "if", expr(s.Condition), sub(s.Then), text("else"), sub(s.Else))
	case WhileStmt:
		parenthesize(b, "while", expr(s.Condition), sub(s.Body))
	case BadStmt:
		b.WriteString("<error>")
	default:
		panic(fmt.Sprintf("ast.Print: unhandled statement %T", s))
	}
}
