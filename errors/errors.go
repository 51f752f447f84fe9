package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/pontaoski/lox/types"
	"github.com/ztrue/tracerr"
)

// Phase says which stage of the pipeline produced a diagnostic.
type Phase int

const (
	NoPhase Phase = iota
	Lexical
	Syntactic
	Runtime
)

func (p Phase) String() string {
	switch p {
	case Lexical:
		return "lexical"
	case Syntactic:
		return "syntactic"
	case Runtime:
		return "runtime"
	}
	return "none"
}

type LexError struct {
	Location types.Position
	Message  string
}

func (e LexError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Location.Line, e.Message)
}

func (e LexError) Phase() Phase { return Lexical }

type ParseError struct {
	Token   types.Token
	Message string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.Token.Line(), where(e.Token), e.Message)
}

func (e ParseError) Phase() Phase { return Syntactic }

// ExpectedKindGotKind is raised when the parser requires one specific token.
type ExpectedKindGotKind struct {
	Expected types.TokenKind
	Got      types.Token
	Message  string
}

func (e ExpectedKindGotKind) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.Got.Line(), where(e.Got), e.Message)
}

func (e ExpectedKindGotKind) Phase() Phase { return Syntactic }

type RuntimeError struct {
	Token   types.Token
	Message string
}

func (e RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] RuntimeError: %s", e.Token.Line(), e.Message)
}

func (e RuntimeError) Phase() Phase { return Runtime }

func where(t types.Token) string {
	if t.Kind == types.EOF {
		return " at end"
	}
	return fmt.Sprintf(" at '%s'", t.Lexeme)
}

type phased interface {
	Phase() Phase
}

// PhaseOf finds the most severe phase among err and anything it wraps or
// lists. Runtime outranks syntactic, which outranks lexical.
func PhaseOf(err error) Phase {
	if err == nil {
		return NoPhase
	}
	err = tracerr.Unwrap(err)
	var list List
	if stderrors.As(err, &list) {
		worst := NoPhase
		for _, e := range list {
			if p := PhaseOf(e); p > worst {
				worst = p
			}
		}
		return worst
	}
	var p phased
	if stderrors.As(err, &p) {
		return p.Phase()
	}
	return NoPhase
}

// Sink receives diagnostics as they are found.
type Sink interface {
	Report(err error)
}

type SinkFunc func(err error)

func (f SinkFunc) Report(err error) { f(err) }

// List collects diagnostics in the order they were reported.
type List []error

func (l *List) Report(err error) {
	*l = append(*l, err)
}

func (l List) Error() string {
	msgs := make([]string, len(l))
	for i, err := range l {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

// Err returns nil for an empty list so callers can return it directly.
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

// Tee reports to every sink in order.
func Tee(sinks ...Sink) Sink {
	return SinkFunc(func(err error) {
		for _, s := range sinks {
			if s != nil {
				s.Report(err)
			}
		}
	})
}
