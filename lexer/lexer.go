package lexer

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/pontaoski/lox/errors"
	"github.com/pontaoski/lox/types"
)

type Lexer struct {
	pos    types.Position
	reader *bufio.Reader
	sink   errors.Sink
	done   bool
}

// NewLexer scans reader. Diagnostics go to sink, which may be nil.
func NewLexer(reader io.Reader, filename string, sink errors.Sink) *Lexer {
	return &Lexer{
		pos:    types.Position{Line: 1, Column: 0, Filename: filename},
		reader: bufio.NewReader(reader),
		sink:   sink,
	}
}

// Scan lexes src in one go and returns every diagnostic as an errors.List.
func Scan(filename, src string) ([]types.Token, error) {
	var list errors.List
	tokens := NewLexer(strings.NewReader(src), filename, &list).Tokens()
	return tokens, list.Err()
}

func (l *Lexer) newline() {
	l.pos.Line++
	l.pos.Column = 0
}

func (l *Lexer) report(at types.Position, msg string) {
	if l.sink == nil {
		return
	}
	l.sink.Report(errors.LexError{Location: at, Message: msg})
}

// read consumes one rune. It returns false at end of input.
func (l *Lexer) read() (rune, bool) {
	r, _, err := l.reader.ReadRune()
	if err != nil {
		if err != io.EOF {
			l.report(l.pos, err.Error())
		}
		return 0, false
	}

	if r == '\n' {
		l.newline()
	} else {
		l.pos.Column++
	}
	return r, true
}

// peekIs reports whether the next len(s) bytes of input are exactly s.
func (l *Lexer) peekIs(s string) bool {
	byt, err := l.reader.Peek(len(s))
	if err != nil {
		return false
	}
	return string(byt) == s
}

func (l *Lexer) peekDigit(offset int) bool {
	byt, err := l.reader.Peek(offset + 1)
	if err != nil {
		return false
	}
	return isDigit(rune(byt[offset]))
}

func (l *Lexer) match(s string) bool {
	if !l.peekIs(s) {
		return false
	}
	for range s {
		l.read()
	}
	return true
}

func (l *Lexer) kinded(t types.TokenKind, from types.Position, lexeme string) types.Token {
	return types.Token{
		Kind:     t,
		Lexeme:   lexeme,
		Literal:  types.Nil{},
		Location: from,
	}
}

func (l *Lexer) eof() types.Token {
	l.done = true
	return l.kinded(types.EOF, l.pos, "")
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func firstChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func otherChar(r rune) bool {
	return firstChar(r) || isDigit(r)
}

func (l *Lexer) lexIdent(first rune, from types.Position) types.Token {
	var lit strings.Builder
	lit.WriteRune(first)

	for {
		r, _, err := l.reader.ReadRune()
		if err != nil {
			break
		}
		if !otherChar(r) {
			if err := l.reader.UnreadRune(); err != nil {
				panic(err)
			}
			break
		}
		l.pos.Column++
		lit.WriteRune(r)
	}

	text := lit.String()
	if kind, ok := types.Keywords[text]; ok {
		return l.kinded(kind, from, text)
	}
	return l.kinded(types.IDENT, from, text)
}

func (l *Lexer) lexNumber(first rune, from types.Position) types.Token {
	var lit strings.Builder
	lit.WriteRune(first)

	digits := func() {
		for l.peekDigit(0) {
			r, _ := l.read()
			lit.WriteRune(r)
		}
	}

	digits()
	if l.peekIs(".") && l.peekDigit(1) {
		l.read()
		lit.WriteByte('.')
		digits()
	}

	text := lit.String()
	parsed, err := strconv.ParseFloat(text, 64)
	if err != nil {
		l.report(from, fmt.Sprintf("Invalid number '%s'.", text))
	}
	tok := l.kinded(types.NUMBER, from, text)
	tok.Literal = types.Number(parsed)
	return tok
}

// lexString is called after the opening quote. An unterminated string is
// reported and treated as the end of input.
func (l *Lexer) lexString(from types.Position) (types.Token, bool) {
	var lit strings.Builder

	for {
		r, ok := l.read()
		if !ok {
			l.report(l.pos, "Unterminated string.")
			return types.Token{}, false
		}
		if r == '"' {
			break
		}
		lit.WriteRune(r)
	}

	text := lit.String()
	tok := l.kinded(types.STRING, from, `"`+text+`"`)
	tok.Literal = types.String(text)
	return tok, true
}

func (l *Lexer) skipLine() {
	for !l.peekIs("\n") {
		if _, ok := l.read(); !ok {
			return
		}
	}
}

var single = map[rune]types.TokenKind{
	'(': types.LPAREN,
	')': types.RPAREN,
	'{': types.LBRACKET,
	'}': types.RBRACKET,
	',': types.COMMA,
	'.': types.PERIOD,
	'-': types.MINUS,
	'+': types.PLUS,
	';': types.EOS,
	'*': types.STAR,
}

// withEquals holds the operators that have a two-character form ending in '='.
var withEquals = map[rune][2]types.TokenKind{
	'!': {types.BANG, types.BANG_EQUALS},
	'=': {types.EQUALS, types.EQUALS_EQUALS},
	'<': {types.LESS, types.LESS_EQUALS},
	'>': {types.GREATER, types.GREATER_EQUALS},
}

// Lex returns the next token. Once the input is exhausted it keeps
// returning EOF.
func (l *Lexer) Lex() types.Token {
	for {
		if l.done {
			return l.eof()
		}

		r, ok := l.read()
		if !ok {
			return l.eof()
		}
		from := l.pos

		if kind, ok := single[r]; ok {
			return l.kinded(kind, from, string(r))
		}

		if kinds, ok := withEquals[r]; ok {
			if l.match("=") {
				return l.kinded(kinds[1], from, string(r)+"=")
			}
			return l.kinded(kinds[0], from, string(r))
		}

		switch r {
		case ' ', '\r', '\t', '\n':
			continue
		case '/':
			if l.match("/") {
				l.skipLine()
				continue
			}
			return l.kinded(types.SLASH, from, "/")
		case '"':
			tok, ok := l.lexString(from)
			if !ok {
				return l.eof()
			}
			return tok
		}

		switch {
		case isDigit(r):
			return l.lexNumber(r, from)
		case firstChar(r):
			return l.lexIdent(r, from)
		}

		l.report(from, fmt.Sprintf("Unexpected character '%c'.", r))
	}
}

// Tokens lexes the rest of the input. The result always ends with EOF.
func (l *Lexer) Tokens() (ret []types.Token) {
	for {
		t := l.Lex()
		ret = append(ret, t)
		if t.Kind == types.EOF {
			return
		}
	}
}
