package types

import (
	"fmt"
)

type Position struct {
	Line     int
	Column   int
	Filename string
}

type TokenKind int

const (
	EOF TokenKind = iota

	LPAREN
	RPAREN
	LBRACKET
	RBRACKET
	COMMA
	PERIOD
	MINUS
	PLUS
	EOS
	SLASH
	STAR

	BANG
	BANG_EQUALS
	EQUALS
	EQUALS_EQUALS
	GREATER
	GREATER_EQUALS
	LESS
	LESS_EQUALS

	IDENT
	STRING
	NUMBER

	AND
	CLASS
	ELSE
	FALSE
	FOR
	FUN
	IF
	NIL
	OR
	PRINT
	RETURN
	SUPER
	THIS
	TRUE
	VAR
	WHILE
)

var kindNames = map[TokenKind]string{
	EOF:            "EOF",
	LPAREN:         "LPAREN",
	RPAREN:         "RPAREN",
	LBRACKET:       "LBRACKET",
	RBRACKET:       "RBRACKET",
	COMMA:          "COMMA",
	PERIOD:         "PERIOD",
	MINUS:          "MINUS",
	PLUS:           "PLUS",
	EOS:            "EOS",
	SLASH:          "SLASH",
	STAR:           "STAR",
	BANG:           "BANG",
	BANG_EQUALS:    "BANG_EQUALS",
	EQUALS:         "EQUALS",
	EQUALS_EQUALS:  "EQUALS_EQUALS",
	GREATER:        "GREATER",
	GREATER_EQUALS: "GREATER_EQUALS",
	LESS:           "LESS",
	LESS_EQUALS:    "LESS_EQUALS",
	IDENT:          "IDENT",
	STRING:         "STRING",
	NUMBER:         "NUMBER",
	AND:            "AND",
	CLASS:          "CLASS",
	ELSE:           "ELSE",
	FALSE:          "FALSE",
	FOR:            "FOR",
	FUN:            "FUN",
	IF:             "IF",
	NIL:            "NIL",
	OR:             "OR",
	PRINT:          "PRINT",
	RETURN:         "RETURN",
	SUPER:          "SUPER",
	THIS:           "THIS",
	TRUE:           "TRUE",
	VAR:            "VAR",
	WHILE:          "WHILE",
}

func (t TokenKind) String() string {
	if name, ok := kindNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(t))
}

// Keywords maps reserved words to their token kinds. Anything else made of
// identifier characters lexes as IDENT.
var Keywords = map[string]TokenKind{
	"and":    AND,
	"class":  CLASS,
	"else":   ELSE,
	"false":  FALSE,
	"for":    FOR,
	"fun":    FUN,
	"if":     IF,
	"nil":    NIL,
	"or":     OR,
	"print":  PRINT,
	"return": RETURN,
	"super":  SUPER,
	"this":   THIS,
	"true":   TRUE,
	"var":    VAR,
	"while":  WHILE,
}

func (p Position) String() string {
	if p.Filename == "" {
		p.Filename = "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// Token is immutable once the lexer hands it out. Literal is Nil for
// everything except NUMBER and STRING.
type Token struct {
	Kind     TokenKind
	Lexeme   string
	Literal  Value
	Location Position
}

func (t Token) Line() int {
	return t.Location.Line
}

func (t Token) String() string {
	lit := t.Literal
	if lit == nil {
		lit = Nil{}
	}
	return fmt.Sprintf("%s '%s' %s", t.Kind, t.Lexeme, lit)
}
