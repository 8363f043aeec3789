package interp

import (
	"github.com/ferronlang/lox/lang/ast"
	"github.com/ferronlang/lox/lang/token"
)

func (in *Interpreter) evaluate(expr ast.Expr) (Value, error) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		return literalValue(e.Value), nil

	case *ast.GroupingExpr:
		return in.evaluate(e.Inner)

	case *ast.UnaryExpr:
		return in.evalUnary(e)

	case *ast.BinaryExpr:
		return in.evalBinary(e)

	case *ast.LogicalExpr:
		return in.evalLogical(e)

	case *ast.VariableExpr:
		return in.lookupVariable(e.LineNo, e.Name, e.Site)

	case *ast.AssignExpr:
		return in.evalAssign(e)

	case *ast.CallExpr:
		return in.evalCall(e)

	case *ast.GetExpr:
		return in.evalGet(e)

	case *ast.SetExpr:
		return in.evalSet(e)

	case *ast.SelfExpr:
		return in.lookupVariable(e.LineNo, "self", e.Site)

	case *ast.SuperExpr:
		return in.evalSuper(e)
	}

	return nil, runtimeErrorf(expr.Line(), "unhandled expression type %T", expr)
}

func literalValue(v any) Value {
	switch v := v.(type) {
	case nil:
		return Nil{}
	case bool:
		return Bool(v)
	case float64:
		return Number(v)
	case string:
		return String(v)
	default:
		return Nil{}
	}
}

func (in *Interpreter) lookupVariable(line int, name string, site ast.SiteID) (Value, error) {
	if d, ok := in.dist[site]; ok {
		if v, ok := in.env.GetAt(d, name); ok {
			return v, nil
		}
		return nil, runtimeErrorf(line, "undefined variable %q", name)
	}
	if v, ok := in.globals.Get(name); ok {
		return v, nil
	}
	return nil, runtimeErrorf(line, "undefined variable %q", name)
}

func (in *Interpreter) evalAssign(e *ast.AssignExpr) (Value, error) {
	v, err := in.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	if d, ok := in.dist[e.Site]; ok {
		in.env.AssignAt(d, e.Name, v)
		return v, nil
	}
	if in.globals.Assign(e.Name, v) {
		return v, nil
	}
	return nil, runtimeErrorf(e.LineNo, "undefined variable %q", e.Name)
}

func (in *Interpreter) evalUnary(e *ast.UnaryExpr) (Value, error) {
	operand, err := in.evaluate(e.Operand)
	if err != nil {
		return nil, err
	}
	switch e.Operator {
	case token.MINUS:
		n, ok := operand.(Number)
		if !ok {
			return nil, runtimeErrorf(e.LineNo, "operand must be a number")
		}
		return -n, nil
	case token.BANG:
		return Bool(!Truth(operand)), nil
	}
	return nil, runtimeErrorf(e.LineNo, "unknown unary operator")
}

func (in *Interpreter) evalLogical(e *ast.LogicalExpr) (Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Operator == token.OR {
		if Truth(left) {
			return left, nil
		}
	} else { // AND
		if !Truth(left) {
			return left, nil
		}
	}
	return in.evaluate(e.Right)
}

func (in *Interpreter) evalBinary(e *ast.BinaryExpr) (Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator {
	case token.PLUS:
		if ln, ok := left.(Number); ok {
			if rn, ok := right.(Number); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(String); ok {
			if rs, ok := right.(String); ok {
				return ls + rs, nil
			}
		}
		return nil, runtimeErrorf(e.LineNo, "operands must be two numbers or two strings")
	case token.MINUS, token.STAR, token.SLASH:
		ln, lok := left.(Number)
		rn, rok := right.(Number)
		if !lok || !rok {
			return nil, runtimeErrorf(e.LineNo, "operands must be numbers")
		}
		switch e.Operator {
		case token.MINUS:
			return ln - rn, nil
		case token.STAR:
			return ln * rn, nil
		default: // token.SLASH: division by zero follows IEEE-754 (Inf/NaN), never an error
			return ln / rn, nil
		}
	case token.GT, token.GT_EQ, token.LT, token.LT_EQ:
		ln, lok := left.(Number)
		rn, rok := right.(Number)
		if !lok || !rok {
			return nil, runtimeErrorf(e.LineNo, "operands must be numbers")
		}
		switch e.Operator {
		case token.GT:
			return Bool(ln > rn), nil
		case token.GT_EQ:
			return Bool(ln >= rn), nil
		case token.LT:
			return Bool(ln < rn), nil
		default:
			return Bool(ln <= rn), nil
		}
	case token.EQ_EQ:
		return Bool(Equal(left, right)), nil
	case token.BANG_EQ:
		return Bool(!Equal(left, right)), nil
	}
	return nil, runtimeErrorf(e.LineNo, "unknown binary operator")
}

func (in *Interpreter) evalCall(e *ast.CallExpr) (Value, error) {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(e.Args))
	for i, a := range e.Args {
		v, err := in.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, runtimeErrorf(e.ParenLine, "can only call functions and classes")
	}
	if len(args) != fn.Arity() {
		return nil, runtimeErrorf(e.ParenLine, "expected %d arguments but got %d", fn.Arity(), len(args))
	}
	return fn.Call(in, args)
}

func (in *Interpreter) evalGet(e *ast.GetExpr) (Value, error) {
	obj, err := in.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*Instance)
	if !ok {
		return nil, runtimeErrorf(e.LineNo, "only instances have properties")
	}
	v, ok := inst.Get(e.Name)
	if !ok {
		return nil, runtimeErrorf(e.LineNo, "undefined property %q", e.Name)
	}
	return v, nil
}

func (in *Interpreter) evalSet(e *ast.SetExpr) (Value, error) {
	obj, err := in.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*Instance)
	if !ok {
		return nil, runtimeErrorf(e.LineNo, "only instances have fields")
	}
	v, err := in.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	inst.Set(e.Name, v)
	return v, nil
}

func (in *Interpreter) evalSuper(e *ast.SuperExpr) (Value, error) {
	d, ok := in.dist[e.Site]
	if !ok {
		return nil, runtimeErrorf(e.LineNo, "undefined variable %q", "super")
	}
	superVal, _ := in.env.GetAt(d, "super")
	super, ok := superVal.(*Class)
	if !ok {
		return nil, runtimeErrorf(e.LineNo, "undefined variable %q", "super")
	}
	selfVal, _ := in.env.GetAt(d-1, "self")
	self, _ := selfVal.(*Instance)

	method, ok := super.findMethod(e.Method)
	if !ok {
		return nil, runtimeErrorf(e.LineNo, "undefined property %q", e.Method)
	}
	return method.bind(self), nil
}
