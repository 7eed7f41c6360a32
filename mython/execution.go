package mython

import "io"

func (n *Constant) Execute(c *Closure, ctx *Context) (Value, bool, error) {
	return n.Val, false, nil
}

func (n *NoneNode) Execute(c *Closure, ctx *Context) (Value, bool, error) {
	return NewNone(), false, nil
}

func (n *VariableValue) Execute(c *Closure, ctx *Context) (Value, bool, error) {
	val, ok := c.Get(n.Names[0])
	if !ok {
		return NewNone(), false, NewRuntimeError(n.Pos, "name '%s' is not defined", n.Names[0])
	}
	for _, name := range n.Names[1:] {
		if val.Kind != KindInstance {
			return val, false, nil
		}
		val, ok = val.Instance().Fields.Get(name)
		if !ok {
			return NewNone(), false, NewRuntimeError(n.Pos, "instance has no field '%s'", name)
		}
	}
	return val, false, nil
}

func (n *Assignment) Execute(c *Closure, ctx *Context) (Value, bool, error) {
	val, _, err := n.RHS.Execute(c, ctx)
	if err != nil {
		return NewNone(), false, err
	}
	c.Set(n.Name, val)
	return val, false, nil
}

func (n *FieldAssignment) Execute(c *Closure, ctx *Context) (Value, bool, error) {
	objVal, _, err := n.Object.Execute(c, ctx)
	if err != nil {
		return NewNone(), false, err
	}
	if objVal.Kind != KindInstance {
		return NewNone(), false, NewRuntimeError(n.Pos, "cannot assign field '%s' on a %s", n.Field, objVal.Kind)
	}
	val, _, err := n.RHS.Execute(c, ctx)
	if err != nil {
		return NewNone(), false, err
	}
	objVal.Instance().Fields.Set(n.Field, val)
	return val, false, nil
}

func (n *Print) Execute(c *Closure, ctx *Context) (Value, bool, error) {
	for i, arg := range n.Args {
		if i > 0 {
			if _, err := io.WriteString(ctx.Out, " "); err != nil {
				return NewNone(), false, err
			}
		}
		val, _, err := arg.Execute(c, ctx)
		if err != nil {
			return NewNone(), false, err
		}
		if err := WriteValue(ctx.Out, val, ctx, n.Pos); err != nil {
			return NewNone(), false, err
		}
	}
	if _, err := io.WriteString(ctx.Out, "\n"); err != nil {
		return NewNone(), false, err
	}
	return NewNone(), false, nil
}

func (n *IfElse) Execute(c *Closure, ctx *Context) (Value, bool, error) {
	cond, _, err := n.Cond.Execute(c, ctx)
	if err != nil {
		return NewNone(), false, err
	}
	if cond.IsTrue() {
		return n.Then.Execute(c, ctx)
	}
	if n.Else != nil {
		return n.Else.Execute(c, ctx)
	}
	return NewNone(), false, nil
}

func (n *MethodCall) Execute(c *Closure, ctx *Context) (Value, bool, error) {
	objVal, _, err := n.Object.Execute(c, ctx)
	if err != nil {
		return NewNone(), false, err
	}
	if objVal.Kind != KindInstance {
		return NewNone(), false, NewRuntimeError(n.Pos, "cannot call method '%s' on a %s", n.Method, objVal.Kind)
	}
	args := make([]Value, len(n.Args))
	for i, a := range n.Args {
		v, _, err := a.Execute(c, ctx)
		if err != nil {
			return NewNone(), false, err
		}
		args[i] = v
	}
	result, err := objVal.Instance().Call(n.Method, args, ctx, n.Pos)
	if err != nil {
		return NewNone(), false, err
	}
	return result, false, nil
}

func (n *NewInstanceNode) Execute(c *Closure, ctx *Context) (Value, bool, error) {
	classVal, _, err := n.ClassExpr.Execute(c, ctx)
	if err != nil {
		return NewNone(), false, err
	}
	if classVal.Kind != KindClass {
		return NewNone(), false, NewRuntimeError(n.Pos, "'%s' is not a class", classVal.Kind)
	}
	inst := NewInstanceObj(classVal.Class())
	args := make([]Value, len(n.Args))
	for i, a := range n.Args {
		v, _, err := a.Execute(c, ctx)
		if err != nil {
			return NewNone(), false, err
		}
		args[i] = v
	}
	if inst.HasMethod("__init__", len(args)) {
		if _, err := inst.Call("__init__", args, ctx, n.Pos); err != nil {
			return NewNone(), false, err
		}
	}
	return NewInstanceValue(inst), false, nil
}

func (n *ReturnNode) Execute(c *Closure, ctx *Context) (Value, bool, error) {
	if n.Expr == nil {
		return NewNone(), true, nil
	}
	val, _, err := n.Expr.Execute(c, ctx)
	if err != nil {
		return NewNone(), false, err
	}
	return val, true, nil
}

func (n *MethodBody) Execute(c *Closure, ctx *Context) (Value, bool, error) {
	val, isReturn, err := n.Body.Execute(c, ctx)
	if err != nil {
		return NewNone(), false, err
	}
	if isReturn {
		return val, false, nil
	}
	return NewNone(), false, nil
}

func (n *Compound) Execute(c *Closure, ctx *Context) (Value, bool, error) {
	for _, stmt := range n.Stmts {
		val, isReturn, err := stmt.Execute(c, ctx)
		if err != nil {
			return NewNone(), false, err
		}
		if isReturn {
			return val, true, nil
		}
	}
	return NewNone(), false, nil
}

func (n *ClassDefinition) Execute(c *Closure, ctx *Context) (Value, bool, error) {
	c.Set(n.Class.Name, NewClassValue(n.Class))
	return NewNone(), false, nil
}

func (n *NotNode) Execute(c *Closure, ctx *Context) (Value, bool, error) {
	val, _, err := n.Operand.Execute(c, ctx)
	if err != nil {
		return NewNone(), false, err
	}
	return NewBool(!val.IsTrue()), false, nil
}

func (n *StringifyNode) Execute(c *Closure, ctx *Context) (Value, bool, error) {
	val, _, err := n.Operand.Execute(c, ctx)
	if err != nil {
		return NewNone(), false, err
	}
	s, err := Stringify(val, ctx, n.Pos)
	if err != nil {
		return NewNone(), false, err
	}
	return NewString(s), false, nil
}

func evalBinaryOperands(l, r Statement, c *Closure, ctx *Context) (Value, Value, error) {
	lv, _, err := l.Execute(c, ctx)
	if err != nil {
		return Value{}, Value{}, err
	}
	rv, _, err := r.Execute(c, ctx)
	if err != nil {
		return Value{}, Value{}, err
	}
	return lv, rv, nil
}

func (n *AddNode) Execute(c *Closure, ctx *Context) (Value, bool, error) {
	l, r, err := evalBinaryOperands(n.Left, n.Right, c, ctx)
	if err != nil {
		return NewNone(), false, err
	}
	switch {
	case l.Kind == KindNumber && r.Kind == KindNumber:
		return NewNumber(l.Number() + r.Number()), false, nil
	case l.Kind == KindString && r.Kind == KindString:
		return NewString(l.StringVal() + r.StringVal()), false, nil
	case l.Kind == KindInstance && l.Instance().HasMethod("__add__", 1):
		result, err := l.Instance().Call("__add__", []Value{r}, ctx, n.Pos)
		if err != nil {
			return NewNone(), false, err
		}
		return result, false, nil
	default:
		return NewNone(), false, NewRuntimeError(n.Pos, "cannot add %s and %s", l.Kind, r.Kind)
	}
}

func (n *SubNode) Execute(c *Closure, ctx *Context) (Value, bool, error) {
	l, r, err := evalBinaryOperands(n.Left, n.Right, c, ctx)
	if err != nil {
		return NewNone(), false, err
	}
	if l.Kind != KindNumber || r.Kind != KindNumber {
		return NewNone(), false, NewRuntimeError(n.Pos, "cannot subtract %s and %s", l.Kind, r.Kind)
	}
	return NewNumber(l.Number() - r.Number()), false, nil
}

func (n *MultNode) Execute(c *Closure, ctx *Context) (Value, bool, error) {
	l, r, err := evalBinaryOperands(n.Left, n.Right, c, ctx)
	if err != nil {
		return NewNone(), false, err
	}
	if l.Kind != KindNumber || r.Kind != KindNumber {
		return NewNone(), false, NewRuntimeError(n.Pos, "cannot multiply %s and %s", l.Kind, r.Kind)
	}
	return NewNumber(l.Number() * r.Number()), false, nil
}

func (n *DivNode) Execute(c *Closure, ctx *Context) (Value, bool, error) {
	l, r, err := evalBinaryOperands(n.Left, n.Right, c, ctx)
	if err != nil {
		return NewNone(), false, err
	}
	if l.Kind != KindNumber || r.Kind != KindNumber {
		return NewNone(), false, NewRuntimeError(n.Pos, "cannot divide %s and %s", l.Kind, r.Kind)
	}
	if r.Number() == 0 {
		return NewNone(), false, NewRuntimeError(n.Pos, "division by zero")
	}
	return NewNumber(l.Number() / r.Number()), false, nil
}

func (n *AndNode) Execute(c *Closure, ctx *Context) (Value, bool, error) {
	l, r, err := evalBinaryOperands(n.Left, n.Right, c, ctx)
	if err != nil {
		return NewNone(), false, err
	}
	return NewBool(l.IsTrue() && r.IsTrue()), false, nil
}

func (n *OrNode) Execute(c *Closure, ctx *Context) (Value, bool, error) {
	l, r, err := evalBinaryOperands(n.Left, n.Right, c, ctx)
	if err != nil {
		return NewNone(), false, err
	}
	return NewBool(l.IsTrue() || r.IsTrue()), false, nil
}

func (n *ComparisonNode) Execute(c *Closure, ctx *Context) (Value, bool, error) {
	l, r, err := evalBinaryOperands(n.Left, n.Right, c, ctx)
	if err != nil {
		return NewNone(), false, err
	}
	var result bool
	switch n.Cmp {
	case "==":
		result, err = Equal(l, r, ctx, n.Pos)
	case "!=":
		result, err = NotEqual(l, r, ctx, n.Pos)
	case "<":
		result, err = Less(l, r, ctx, n.Pos)
	case ">":
		result, err = Greater(l, r, ctx, n.Pos)
	case "<=":
		result, err = LessOrEqual(l, r, ctx, n.Pos)
	case ">=":
		result, err = GreaterOrEqual(l, r, ctx, n.Pos)
	default:
		return NewNone(), false, NewRuntimeError(n.Pos, "unknown comparison operator '%s'", n.Cmp)
	}
	if err != nil {
		return NewNone(), false, err
	}
	return NewBool(result), false, nil
}
