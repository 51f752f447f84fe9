package errors

import (
	stderrors "errors"
	"testing"

	"github.com/pontaoski/lox/types"
	"github.com/ztrue/tracerr"
)

func tok(kind types.TokenKind, lexeme string, line int) types.Token {
	return types.Token{Kind: kind, Lexeme: lexeme, Literal: types.Nil{}, Location: types.Position{Line: line}}
}

func TestMessages(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{
			LexError{Location: types.Position{Line: 3}, Message: "Unterminated string."},
			"[line 3] Error: Unterminated string.",
		},
		{
			ParseError{Token: tok(types.EQUALS, "=", 1), Message: "Invalid assignment target."},
			"[line 1] Error at '=': Invalid assignment target.",
		},
		{
			ExpectedKindGotKind{Expected: types.EOS, Got: tok(types.EOF, "", 9), Message: "Expect ';' after value."},
			"[line 9] Error at end: Expect ';' after value.",
		},
		{
			RuntimeError{Token: tok(types.SLASH, "/", 2), Message: "Division by zero."},
			"[line 2] RuntimeError: Division by zero.",
		},
	}

	for _, c := range cases {
		if got := c.err.Error(); got != c.want {
			t.Errorf("got %q, want %q", got, c.want)
		}
	}
}

func TestPhaseOf(t *testing.T) {
	lex := LexError{Message: "x"}
	parse := ParseError{Message: "y"}
	rt := RuntimeError{Message: "z"}

	cases := []struct {
		err  error
		want Phase
	}{
		{nil, NoPhase},
		{stderrors.New("plain"), NoPhase},
		{lex, Lexical},
		{parse, Syntactic},
		{ExpectedKindGotKind{}, Syntactic},
		{rt, Runtime},
		{tracerr.Wrap(rt), Runtime},
		{List{lex, parse}, Syntactic},
		{List{parse, lex}, Syntactic},
		{List{lex}, Lexical},
		{List{}, NoPhase},
	}

	for i, c := range cases {
		if got := PhaseOf(c.err); got != c.want {
			t.Errorf("case %d (%v): got %s, want %s", i, c.err, got, c.want)
		}
	}
}

func TestList(t *testing.T) {
	var l List
	if l.Err() != nil {
		t.Fatal("empty list is an error")
	}

	l.Report(LexError{Location: types.Position{Line: 1}, Message: "first"})
	l.Report(LexError{Location: types.Position{Line: 2}, Message: "second"})

	if l.Err() == nil {
		t.Fatal("non-empty list is not an error")
	}
	if want := "[line 1] Error: first\n[line 2] Error: second"; l.Error() != want {
		t.Errorf("got %q, want %q", l.Error(), want)
	}

	var got List
	if !stderrors.As(l.Err(), &got) || len(got) != 2 {
		t.Errorf("list did not survive errors.As")
	}
}

func TestTee(t *testing.T) {
	var a, b List
	var seen int
	sink := Tee(&a, nil, SinkFunc(func(error) { seen++ }), &b)

	sink.Report(stderrors.New("one"))
	sink.Report(stderrors.New("two"))

	if len(a) != 2 || len(b) != 2 || seen != 2 {
		t.Errorf("a=%d b=%d seen=%d", len(a), len(b), seen)
	}
}
