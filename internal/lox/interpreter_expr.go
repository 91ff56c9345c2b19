package lox

import "fmt"

// evaluate implements §4.4.2's expression evaluation table.
func (i *Interpreter) evaluate(expr Expr) (Value, error) {
	switch e := expr.(type) {
	case *LiteralExpr:
		return e.Value, nil

	case *GroupingExpr:
		return i.evaluate(e.Expression)

	case *VariableExpr:
		return i.env.Get(e.Name)

	case *AssignExpr:
		value, err := i.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if err := i.env.Assign(e.Name, value); err != nil {
			return nil, err
		}
		return value, nil

	case *UnaryExpr:
		return i.evalUnary(e)

	case *BinaryExpr:
		return i.evalBinary(e)

	case *LogicalExpr:
		return i.evalLogical(e)

	case *CallExpr:
		return i.evalCall(e)

	default:
		return nil, &RuntimeError{Message: "unreachable: unknown expression type"}
	}
}

func (i *Interpreter) evalUnary(e *UnaryExpr) (Value, error) {
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case Bang:
		return NewBool(!IsTruthy(right)), nil
	case Minus:
		n, ok := right.(NumberValue)
		if !ok {
			return nil, &RuntimeError{Token: e.Operator, Message: "Operand must be a number."}
		}
		return NewNumber(-float64(n)), nil
	}
	return nil, &RuntimeError{Token: e.Operator, Message: "unreachable: unary operator"}
}

// evalLogical implements short-circuiting `and`/`or` (§4.4.2): the
// left operand's value is returned as-is when it already decides
// truthiness, otherwise the right operand is evaluated and returned.
func (i *Interpreter) evalLogical(e *LogicalExpr) (Value, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}

	if e.Operator.Type == Or {
		if IsTruthy(left) {
			return left, nil
		}
	} else {
		if !IsTruthy(left) {
			return left, nil
		}
	}

	return i.evaluate(e.Right)
}

func (i *Interpreter) evalBinary(e *BinaryExpr) (Value, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case EqualEqual:
		return NewBool(valuesEqual(left, right)), nil
	case BangEqual:
		return NewBool(!valuesEqual(left, right)), nil

	case Plus:
		if ls, ok := left.(StringValue); ok {
			if rs, ok := right.(StringValue); ok {
				return NewString(string(ls) + string(rs)), nil
			}
		}
		if ln, ok := left.(NumberValue); ok {
			if rn, ok := right.(NumberValue); ok {
				return NewNumber(float64(ln) + float64(rn)), nil
			}
		}
		return nil, &RuntimeError{Token: e.Operator, Message: "Operands must be two numbers or two strings."}

	case Minus:
		l, r, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return NewNumber(l - r), nil

	case Star:
		l, r, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return NewNumber(l * r), nil

	case Slash:
		l, r, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return NewNumber(l / r), nil

	case Greater:
		l, r, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return NewBool(l > r), nil

	case GreaterEqual:
		l, r, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return NewBool(l >= r), nil

	case Less:
		l, r, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return NewBool(l < r), nil

	case LessEqual:
		l, r, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return NewBool(l <= r), nil
	}

	return nil, &RuntimeError{Token: e.Operator, Message: "unreachable: binary operator"}
}

func numberOperands(op Token, left, right Value) (float64, float64, error) {
	l, lok := left.(NumberValue)
	r, rok := right.(NumberValue)
	if !lok || !rok {
		return 0, 0, &RuntimeError{Token: op, Message: "Operands must be numbers."}
	}
	return float64(l), float64(r), nil
}

// evalCall implements the call protocol of §4.4.2/§4.4.4: the callee
// and every argument evaluate strictly left-to-right before the callee
// runs, arity is checked, and only Function values are callable.
func (i *Interpreter) evalCall(e *CallExpr) (Value, error) {
	callee, err := i.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, 0, len(e.Args))
	for _, argExpr := range e.Args {
		arg, err := i.evaluate(argExpr)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	fn, ok := callee.(Function)
	if !ok {
		return nil, &RuntimeError{Token: e.Paren, Message: "Can only call functions and classes."}
	}

	if len(args) != fn.Arity() {
		return nil, &RuntimeError{
			Token:   e.Paren,
			Message: fmt.Sprintf("Expected %d arguments but got %d.", fn.Arity(), len(args)),
		}
	}

	return fn.Call(i, args)
}
