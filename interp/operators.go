package interp

import (
	"github.com/pontaoski/lox/ast"
	"github.com/pontaoski/lox/types"
)

func (in *Interpreter) unary(e ast.Unary) (types.Value, error) {
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Kind {
	case types.MINUS:
		n, ok := right.(types.Number)
		if !ok {
			return nil, runtimeError(e.Operator, "Operand must be a number.")
		}
		return -n, nil
	case types.BANG:
		return types.Boolean(!types.Truthy(right)), nil
	}

	return nil, runtimeError(e.Operator, "Invalid unary operator.")
}

func numberOperands(op types.Token, left, right types.Value) (types.Number, types.Number, error) {
	l, lok := left.(types.Number)
	r, rok := right.(types.Number)
	if !lok || !rok {
		return 0, 0, runtimeError(op, "Operands must be numbers.")
	}
	return l, r, nil
}

// Both operands are evaluated, left first, before the operator is checked.
func (in *Interpreter) binary(e ast.Binary) (types.Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	op := e.Operator
	switch op.Kind {
	case types.EQUALS_EQUALS:
		return types.Boolean(types.Equal(left, right)), nil
	case types.BANG_EQUALS:
		return types.Boolean(!types.Equal(left, right)), nil
	case types.PLUS:
		switch l := left.(type) {
		case types.Number:
			if r, ok := right.(types.Number); ok {
				return l + r, nil
			}
		case types.String:
			if r, ok := right.(types.String); ok {
				return l + r, nil
			}
		}
		return nil, runtimeError(op, "Operands must be two numbers or two strings.")
	case types.MINUS, types.STAR, types.SLASH,
		types.GREATER, types.GREATER_EQUALS, types.LESS, types.LESS_EQUALS:
	default:
		return nil, runtimeError(op, "Invalid binary operator.")
	}

	l, r, err := numberOperands(op, left, right)
	if err != nil {
		return nil, err
	}

	switch op.Kind {
	case types.MINUS:
		return l - r, nil
	case types.STAR:
		return l * r, nil
	case types.SLASH:
		if r == 0 {
			return nil, runtimeError(op, "Division by zero.")
		}
		return l / r, nil
	case types.GREATER:
		return types.Boolean(l > r), nil
	case types.GREATER_EQUALS:
		return types.Boolean(l >= r), nil
	case types.LESS:
		return types.Boolean(l < r), nil
	}
	return types.Boolean(l <= r), nil
}
