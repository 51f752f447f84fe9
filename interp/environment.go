package interp

import (
	"fmt"

	"github.com/pontaoski/lox/errors"
	"github.com/pontaoski/lox/types"
)

// Environment is one scope in the chain. The root has no enclosing scope.
type Environment struct {
	enclosing *Environment
	values    map[string]types.Value
}

func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{
		enclosing: enclosing,
		values:    make(map[string]types.Value),
	}
}

func (e *Environment) Enclosing() *Environment {
	return e.enclosing
}

// Define binds name in this scope, overwriting any previous binding here.
func (e *Environment) Define(name string, v types.Value) {
	e.values[name] = v
}

func (e *Environment) Get(name types.Token) (types.Value, error) {
	for env := e; env != nil; env = env.enclosing {
		if v, ok := env.values[name.Lexeme]; ok {
			return v, nil
		}
	}

	return nil, undefined(name)
}

// Assign updates the innermost existing binding. It never creates one.
func (e *Environment) Assign(name types.Token, v types.Value) error {
	for env := e; env != nil; env = env.enclosing {
		if _, ok := env.values[name.Lexeme]; ok {
			env.values[name.Lexeme] = v
			return nil
		}
	}

	return undefined(name)
}

// Lookup is Get without a token, for callers outside the evaluator.
func (e *Environment) Lookup(name string) (types.Value, bool) {
	for env := e; env != nil; env = env.enclosing {
		if v, ok := env.values[name]; ok {
			return v, true
		}
	}
	return nil, false
}

func undefined(name types.Token) error {
	return errors.RuntimeError{
		Token:   name,
		Message: fmt.Sprintf("Undefined variable '%s'.", name.Lexeme),
	}
}
