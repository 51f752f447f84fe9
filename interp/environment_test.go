package interp

import (
	"strings"
	"testing"

	"github.com/pontaoski/lox/types"
)

func ident(name string) types.Token {
	return types.Token{Kind: types.IDENT, Lexeme: name, Literal: types.Nil{}, Location: types.Position{Line: 7}}
}

func TestDefineAndGet(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("a", types.Number(1))

	v, err := env.Get(ident("a"))
	if err != nil {
		t.Fatal(err)
	}
	if v != types.Number(1) {
		t.Errorf("a = %v", v)
	}

	env.Define("a", types.String("again"))
	if v, _ := env.Get(ident("a")); v != types.String("again") {
		t.Errorf("redefinition kept %v", v)
	}
}

func TestShadowing(t *testing.T) {
	outer := NewEnvironment(nil)
	outer.Define("a", types.String("outer"))
	inner := NewEnvironment(outer)
	inner.Define("a", types.String("inner"))

	if v, _ := inner.Get(ident("a")); v != types.String("inner") {
		t.Errorf("inner a = %v", v)
	}
	if v, _ := outer.Get(ident("a")); v != types.String("outer") {
		t.Errorf("outer a = %v", v)
	}
	if inner.Enclosing() != outer || outer.Enclosing() != nil {
		t.Errorf("broken chain")
	}
}

func TestAssignWalksOutward(t *testing.T) {
	global := NewEnvironment(nil)
	global.Define("count", types.Number(0))
	middle := NewEnvironment(global)
	inner := NewEnvironment(middle)

	if err := inner.Assign(ident("count"), types.Number(5)); err != nil {
		t.Fatal(err)
	}
	if v, _ := global.Lookup("count"); v != types.Number(5) {
		t.Errorf("count = %v", v)
	}
	if _, ok := middle.values["count"]; ok {
		t.Errorf("assignment created a binding in an intermediate scope")
	}
}

func TestAssignUpdatesInnermostBinding(t *testing.T) {
	outer := NewEnvironment(nil)
	outer.Define("a", types.Number(1))
	inner := NewEnvironment(outer)
	inner.Define("a", types.Number(2))

	if err := inner.Assign(ident("a"), types.Number(3)); err != nil {
		t.Fatal(err)
	}
	if v, _ := inner.Lookup("a"); v != types.Number(3) {
		t.Errorf("inner a = %v", v)
	}
	if v, _ := outer.Lookup("a"); v != types.Number(1) {
		t.Errorf("outer a = %v", v)
	}
}

func TestUndefinedVariable(t *testing.T) {
	env := NewEnvironment(NewEnvironment(nil))

	_, err := env.Get(ident("ghost"))
	if err == nil {
		t.Fatal("get of an undefined name succeeded")
	}
	if want := "[line 7] RuntimeError: Undefined variable 'ghost'."; err.Error() != want {
		t.Errorf("got %q, want %q", err, want)
	}

	err = env.Assign(ident("ghost"), types.Nil{})
	if err == nil || !strings.Contains(err.Error(), "Undefined variable 'ghost'.") {
		t.Errorf("assign: %v", err)
	}
	if _, ok := env.Lookup("ghost"); ok {
		t.Errorf("failed assignment created a binding")
	}
}
