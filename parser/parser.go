package parser

import (
	"fmt"
	"strings"

	"github.com/pontaoski/lox/ast"
	"github.com/pontaoski/lox/errors"
	"github.com/pontaoski/lox/lexer"
	"github.com/pontaoski/lox/types"
	"github.com/ztrue/tracerr"
)

// DefaultMaxDepth bounds how deeply statements and expressions may nest.
const DefaultMaxDepth = 512

const maxArguments = 255

type Parser struct {
	tokens   []types.Token
	current  int
	depth    int
	maxDepth int
	errs     errors.List
}

type Option func(*Parser)

// MaxDepth overrides DefaultMaxDepth. Values below one are ignored.
func MaxDepth(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.maxDepth = n
		}
	}
}

func NewParser(tokens []types.Token, opts ...Option) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != types.EOF {
		line := 1
		if len(tokens) > 0 {
			line = tokens[len(tokens)-1].Line()
		}
		tokens = append(tokens[:len(tokens):len(tokens)], types.Token{
			Kind:     types.EOF,
			Literal:  types.Nil{},
			Location: types.Position{Line: line},
		})
	}

	p := &Parser{tokens: tokens, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseString lexes and parses src. The returned error lists every lexical
// and syntactic diagnostic in the order found.
func ParseString(filename, src string, opts ...Option) ([]ast.Stmt, error) {
	var diags errors.List
	tokens := lexer.NewLexer(strings.NewReader(src), filename, &diags).Tokens()

	p := NewParser(tokens, opts...)
	stmts, _ := p.Parse()
	diags = append(diags, p.Errors()...)
	return stmts, tracerr.Wrap(diags.Err())
}

// Parse consumes the whole token sequence. A declaration that failed to
// parse shows up as an ast.BadStmt; the error lists every diagnostic.
func (p *Parser) Parse() ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for !p.atEnd() {
		stmts = append(stmts, p.declaration())
	}
	return stmts, tracerr.Wrap(p.errs.Err())
}

func (p *Parser) Errors() errors.List {
	return p.errs
}

func (p *Parser) atEnd() bool {
	return p.peek().Kind == types.EOF
}

func (p *Parser) peek() types.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() types.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) advance() types.Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kind types.TokenKind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) match(kinds ...types.TokenKind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

// fail records a diagnostic and unwinds to the enclosing declaration.
func (p *Parser) fail(tok types.Token, msg string) {
	err := errors.ParseError{Token: tok, Message: msg}
	p.errs.Report(err)
	panic(err)
}

func (p *Parser) consume(kind types.TokenKind, msg string) types.Token {
	if p.check(kind) {
		return p.advance()
	}

	err := errors.ExpectedKindGotKind{
		Expected: kind,
		Got:      p.peek(),
		Message:  msg,
	}
	p.errs.Report(err)
	panic(err)
}

func (p *Parser) enter() {
	p.depth++
	if p.depth > p.maxDepth {
		p.fail(p.peek(), "Expression nesting too deep.")
	}
}

func (p *Parser) leave() {
	p.depth--
}

// synchronize discards tokens until just past a ';' or until the next
// token starts a statement.
func (p *Parser) synchronize() {
	p.advance()

	for !p.atEnd() {
		if p.previous().Kind == types.EOS {
			return
		}

		switch p.peek().Kind {
		case types.CLASS, types.FUN, types.VAR, types.FOR, types.IF, types.WHILE, types.PRINT, types.RETURN:
			return
		}

		p.advance()
	}
}

func (p *Parser) declaration() (stmt ast.Stmt) {
	from := p.peek()
	mark := len(p.errs)
	depth := p.depth

	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(error)
			if !ok || errors.PhaseOf(err) != errors.Syntactic {
				panic(r)
			}
			p.depth = depth
			p.synchronize()
			stmt = ast.BadStmt{From: from, Err: err}
		}
	}()

	if p.match(types.VAR) {
		stmt = p.varDeclaration()
	} else {
		stmt = p.statement()
	}

	// Non-fatal diagnostics such as an invalid assignment target still
	// void the whole declaration.
	if len(p.errs) > mark {
		return ast.BadStmt{From: from, Err: p.errs[mark]}
	}
	return stmt
}

func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(types.IDENT, "Expect variable name.")

	var initializer ast.Expr
	if p.match(types.EQUALS) {
		initializer = p.expression()
	}

	p.consume(types.EOS, "Expect ';' after variable declaration.")
	return ast.VarStmt{Name: name, Initializer: initializer}
}

func (p *Parser) statement() ast.Stmt {
	p.enter()
	defer p.leave()

	switch {
	case p.match(types.IF):
		return p.ifStatement()
	case p.match(types.WHILE):
		return p.whileStatement()
	case p.match(types.PRINT):
		return p.printStatement()
	case p.match(types.LBRACKET):
		brace := p.previous()
		return ast.BlockStmt{Brace: brace, Statements: p.block()}
	}
	return p.expressionStatement()
}

func (p *Parser) ifStatement() ast.Stmt {
	p.consume(types.LPAREN, "Expect '(' after 'if'.")
	condition := p.expression()
	p.consume(types.RPAREN, "Expect ')' after if condition.")

	then := p.statement()
	var elseBranch ast.Stmt
	if p.match(types.ELSE) {
		elseBranch = p.statement()
	}

	return ast.IfStmt{Condition: condition, Then: then, Else: elseBranch}
}

func (p *Parser) whileStatement() ast.Stmt {
	p.consume(types.LPAREN, "Expect '(' after 'while'.")
	condition := p.expression()
	p.consume(types.RPAREN, "Expect ')' after condition.")

	return ast.WhileStmt{Condition: condition, Body: p.statement()}
}

func (p *Parser) printStatement() ast.Stmt {
	value := p.expression()
	p.consume(types.EOS, "Expect ';' after value.")
	return ast.PrintStmt{Expression: value}
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(types.EOS, "Expect ';' after expression.")
	return ast.ExpressionStmt{Expression: expr}
}

// block should be called when the parser is past the opening brace
func (p *Parser) block() []ast.Stmt {
	var statements []ast.Stmt

	for !p.check(types.RBRACKET) && !p.atEnd() {
		statements = append(statements, p.declaration())
	}

	p.consume(types.RBRACKET, "Expect '}' after block.")
	return statements
}

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

func (p *Parser) assignment() ast.Expr {
	p.enter()
	defer p.leave()

	expr := p.equality()

	if p.match(types.EQUALS) {
		equals := p.previous()
		value := p.assignment()

		if v, ok := expr.(ast.Variable); ok {
			return ast.Assign{Name: v.Name, Value: value}
		}

		p.errs.Report(errors.ParseError{Token: equals, Message: "Invalid assignment target."})
	}

	return expr
}

// binary parses one precedence level: operands come from next and any of
// kinds folds them left-associatively.
func (p *Parser) binary(next func() ast.Expr, kinds ...types.TokenKind) ast.Expr {
	expr := next()

	for p.match(kinds...) {
		operator := p.previous()
		right := next()
		expr = ast.Binary{Left: expr, Operator: operator, Right: right}
	}

	return expr
}

func (p *Parser) equality() ast.Expr {
	return p.binary(p.comparison, types.BANG_EQUALS, types.EQUALS_EQUALS)
}

func (p *Parser) comparison() ast.Expr {
	return p.binary(p.term, types.GREATER, types.GREATER_EQUALS, types.LESS, types.LESS_EQUALS)
}

func (p *Parser) term() ast.Expr {
	return p.binary(p.factor, types.MINUS, types.PLUS)
}

func (p *Parser) factor() ast.Expr {
	return p.binary(p.unary, types.SLASH, types.STAR)
}

func (p *Parser) unary() ast.Expr {
	if p.match(types.BANG, types.MINUS) {
		p.enter()
		defer p.leave()

		operator := p.previous()
		return ast.Unary{Operator: operator, Right: p.unary()}
	}

	return p.call()
}

func (p *Parser) call() ast.Expr {
	expr := p.primary()

	for p.match(types.LPAREN) {
		expr = p.finishCall(expr)
	}

	return expr
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var arguments []ast.Expr

	if !p.check(types.RPAREN) {
		for {
			if len(arguments) >= maxArguments {
				p.errs.Report(errors.ParseError{
					Token:   p.peek(),
					Message: fmt.Sprintf("Can't have more than %d arguments.", maxArguments),
				})
			}
			arguments = append(arguments, p.expression())

			if !p.match(types.COMMA) {
				break
			}
		}
	}

	paren := p.consume(types.RPAREN, "Expect ')' after arguments.")
	return ast.Call{Callee: callee, Paren: paren, Arguments: arguments}
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(types.FALSE):
		return ast.Literal{Value: types.Boolean(false), Token: p.previous()}
	case p.match(types.TRUE):
		return ast.Literal{Value: types.Boolean(true), Token: p.previous()}
	case p.match(types.NIL):
		return ast.Literal{Value: types.Nil{}, Token: p.previous()}
	case p.match(types.NUMBER, types.STRING):
		return ast.Literal{Value: p.previous().Literal, Token: p.previous()}
	case p.match(types.IDENT):
		return ast.Variable{Name: p.previous()}
	case p.match(types.LPAREN):
		expr := p.expression()
		p.consume(types.RPAREN, "Expect ')' after expression.")
		return ast.Grouping{Expression: expr}
	}

	p.fail(p.peek(), "Expect expression.")
	panic("unreachable")
}
