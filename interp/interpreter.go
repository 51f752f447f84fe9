package interp

import (
	"fmt"
	"io"
	"os"

	"github.com/pontaoski/lox/ast"
	"github.com/pontaoski/lox/errors"
	"github.com/pontaoski/lox/types"
	"github.com/ztrue/tracerr"
)

// DefaultMaxDepth bounds how deeply statements, groupings, unary operators
// and assignments may nest during evaluation. Binary operator chains are
// not counted, so any expression the parser accepts fits.
const DefaultMaxDepth = 10000

type Interpreter struct {
	globals  *Environment
	env      *Environment
	out      io.Writer
	depth    int
	maxDepth int
}

type Option func(*Interpreter)

// Output sets where print statements write. Defaults to os.Stdout.
func Output(w io.Writer) Option {
	return func(in *Interpreter) {
		in.out = w
	}
}

func MaxDepth(n int) Option {
	return func(in *Interpreter) {
		if n > 0 {
			in.maxDepth = n
		}
	}
}

func NewInterpreter(opts ...Option) *Interpreter {
	globals := NewEnvironment(nil)
	in := &Interpreter{
		globals:  globals,
		env:      globals,
		out:      os.Stdout,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Globals is the root scope. It lives as long as the interpreter, so
// successive Interpret calls see each other's variables.
func (in *Interpreter) Globals() *Environment {
	return in.globals
}

// Interpret runs stmts in order and stops at the first runtime error.
// Output and assignments made before the error are kept.
func (in *Interpreter) Interpret(stmts []ast.Stmt) error {
	_, err := in.Evaluate(stmts)
	return err
}

// Evaluate is Interpret, but also returns the value of the last statement
// when it was an expression statement, and NoValue otherwise.
func (in *Interpreter) Evaluate(stmts []ast.Stmt) (types.Value, error) {
	var last types.Value = types.NoValue{}
	for _, stmt := range stmts {
		v, err := in.execute(stmt)
		if err != nil {
			return nil, tracerr.Wrap(err)
		}
		last = v
	}
	return last, nil
}

func runtimeError(tok types.Token, format string, args ...interface{}) error {
	return errors.RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}

// enter reports whether the nesting limit was crossed. Callers must leave
// either way.
func (in *Interpreter) enter() bool {
	in.depth++
	return in.depth > in.maxDepth
}

func (in *Interpreter) leave() {
	in.depth--
}

func (in *Interpreter) execute(stmt ast.Stmt) (types.Value, error) {
	defer in.leave()
	if in.enter() {
		return nil, runtimeError(stmtToken(stmt), "Maximum nesting depth exceeded.")
	}

	switch s := stmt.(type) {
	case ast.ExpressionStmt:
		return in.evaluate(s.Expression)
	case ast.PrintStmt:
		v, err := in.evaluate(s.Expression)
		if err != nil {
			return nil, err
		}
		fmt.Fprintln(in.out, v.String())
		return types.NoValue{}, nil
	case ast.VarStmt:
		var v types.Value = types.Nil{}
		if s.Initializer != nil {
			var err error
			if v, err = in.evaluate(s.Initializer); err != nil {
				return nil, err
			}
		}
		in.env.Define(s.Name.Lexeme, v)
		return types.NoValue{}, nil
	case ast.BlockStmt:
		return in.executeBlock(s.Statements, NewEnvironment(in.env))
	case ast.IfStmt:
		cond, err := in.evaluate(s.Condition)
		if err != nil {
			return nil, err
		}
		if types.Truthy(cond) {
			return in.discard(in.execute(s.Then))
		} else if s.Else != nil {
			return in.discard(in.execute(s.Else))
		}
		return types.NoValue{}, nil
	case ast.WhileStmt:
		for {
			cond, err := in.evaluate(s.Condition)
			if err != nil {
				return nil, err
			}
			if !types.Truthy(cond) {
				return types.NoValue{}, nil
			}
			if _, err := in.execute(s.Body); err != nil {
				return nil, err
			}
		}
	case ast.BadStmt:
		return types.NoValue{}, nil
	}

	panic(fmt.Sprintf("unhandled statement %T", stmt))
}

func (in *Interpreter) discard(_ types.Value, err error) (types.Value, error) {
	if err != nil {
		return nil, err
	}
	return types.NoValue{}, nil
}

// executeBlock runs stmts in env and puts the previous scope back on every
// exit path.
func (in *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) (types.Value, error) {
	previous := in.env
	in.env = env
	defer func() { in.env = previous }()

	for _, stmt := range stmts {
		if _, err := in.execute(stmt); err != nil {
			return nil, err
		}
	}
	return types.NoValue{}, nil
}

func (in *Interpreter) evaluate(expr ast.Expr) (types.Value, error) {
	switch expr.(type) {
	case ast.Grouping, ast.Unary, ast.Assign:
		defer in.leave()
		if in.enter() {
			return nil, runtimeError(exprToken(expr), "Maximum nesting depth exceeded.")
		}
	}

	switch e := expr.(type) {
	case ast.Literal:
		return e.Value, nil
	case ast.Grouping:
		return in.evaluate(e.Expression)
	case ast.Unary:
		return in.unary(e)
	case ast.Binary:
		return in.binary(e)
	case ast.Variable:
		return in.env.Get(e.Name)
	case ast.Assign:
		v, err := in.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if err := in.env.Assign(e.Name, v); err != nil {
			return nil, err
		}
		return v, nil
	case ast.Call:
		return nil, runtimeError(e.Paren, "Can only call functions and classes.")
	}

	panic(fmt.Sprintf("unhandled expression %T", expr))
}

// exprToken finds a token to blame for an error raised while entering expr.
func exprToken(expr ast.Expr) types.Token {
	switch e := expr.(type) {
	case ast.Literal:
		return e.Token
	case ast.Grouping:
		return exprToken(e.Expression)
	case ast.Unary:
		return e.Operator
	case ast.Binary:
		return e.Operator
	case ast.Variable:
		return e.Name
	case ast.Assign:
		return e.Name
	case ast.Call:
		return e.Paren
	}
	return types.Token{}
}

func stmtToken(stmt ast.Stmt) types.Token {
	switch s := stmt.(type) {
	case ast.ExpressionStmt:
		return exprToken(s.Expression)
	case ast.PrintStmt:
		return exprToken(s.Expression)
	case ast.VarStmt:
		return s.Name
	case ast.BlockStmt:
		return s.Brace
	case ast.IfStmt:
		return exprToken(s.Condition)
	case ast.WhileStmt:
		return exprToken(s.Condition)
	case ast.BadStmt:
		return s.From
	}
	return types.Token{}
}
