package mython

import (
	"bytes"
	"fmt"
	"io"
)

// WriteValue writes v's display representation to w: Bool prints
// True/False, Number and String print their underlying representation
// literally, Class prints "Class <name>", ClassInstance prints the result
// of calling its zero-arity __str__ if it has one, else an
// implementation-defined token (an address-like handle no test should
// depend on the exact form of), and None prints the literal "None".
func WriteValue(w io.Writer, v Value, ctx *Context, pos Position) error {
	switch v.Kind {
	case KindNone:
		_, err := io.WriteString(w, "None")
		return err
	case KindBool:
		if v.BoolVal() {
			_, err := io.WriteString(w, "True")
			return err
		}
		_, err := io.WriteString(w, "False")
		return err
	case KindNumber:
		_, err := fmt.Fprintf(w, "%d", v.Number())
		return err
	case KindString:
		_, err := io.WriteString(w, v.StringVal())
		return err
	case KindClass:
		_, err := fmt.Fprintf(w, "Class %s", v.Class().Name)
		return err
	case KindInstance:
		inst := v.Instance()
		if inst.HasMethod("__str__", 0) {
			result, err := inst.Call("__str__", nil, ctx, pos)
			if err != nil {
				return err
			}
			return WriteValue(w, result, ctx, pos)
		}
		_, err := io.WriteString(w, inst.String())
		return err
	default:
		return fmt.Errorf("unprintable value")
	}
}

// Stringify renders v into a string using the same rules as WriteValue, via
// a scratch sink rather than the program's real output stream.
func Stringify(v Value, ctx *Context, pos Position) (string, error) {
	var buf bytes.Buffer
	if err := WriteValue(&buf, v, ctx, pos); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Equal implements the language's equality protocol: both None is true, one
// None and one non-None is an error, primitives compare by value, and a
// ClassInstance with a one-arity __eq__ delegates to it.
func Equal(l, r Value, ctx *Context, pos Position) (bool, error) {
	if l.Kind == KindNone && r.Kind == KindNone {
		return true, nil
	}
	if l.Kind == KindNone || r.Kind == KindNone {
		return false, NewRuntimeError(pos, "cannot compare objects for equality")
	}
	if l.Kind == KindNumber && r.Kind == KindNumber {
		return l.Number() == r.Number(), nil
	}
	if l.Kind == KindString && r.Kind == KindString {
		return l.StringVal() == r.StringVal(), nil
	}
	if l.Kind == KindBool && r.Kind == KindBool {
		return l.BoolVal() == r.BoolVal(), nil
	}
	if l.Kind == KindInstance && l.Instance().HasMethod("__eq__", 1) {
		result, err := l.Instance().Call("__eq__", []Value{r}, ctx, pos)
		if err != nil {
			return false, err
		}
		if result.Kind != KindBool {
			return false, NewRuntimeError(pos, "__eq__ must return a Bool")
		}
		return result.BoolVal(), nil
	}
	return false, NewRuntimeError(pos, "cannot compare objects for equality")
}

// Less implements the language's ordering protocol. Unlike Equal, None+None
// is not special-cased: it falls through to the same error as every other
// unsupported pairing.
func Less(l, r Value, ctx *Context, pos Position) (bool, error) {
	if l.Kind == KindNumber && r.Kind == KindNumber {
		return l.Number() < r.Number(), nil
	}
	if l.Kind == KindString && r.Kind == KindString {
		return l.StringVal() < r.StringVal(), nil
	}
	if l.Kind == KindBool && r.Kind == KindBool {
		return !l.BoolVal() && r.BoolVal(), nil
	}
	if l.Kind == KindInstance && l.Instance().HasMethod("__lt__", 1) {
		result, err := l.Instance().Call("__lt__", []Value{r}, ctx, pos)
		if err != nil {
			return false, err
		}
		if result.Kind != KindBool {
			return false, NewRuntimeError(pos, "__lt__ must return a Bool")
		}
		return result.BoolVal(), nil
	}
	return false, NewRuntimeError(pos, "cannot compare objects for less")
}

// NotEqual, Greater, LessOrEqual, and GreaterOrEqual are all defined purely
// in terms of Equal and Less, so a user class only ever needs to supply
// __eq__ and __lt__ to drive all six comparison operators.
func NotEqual(l, r Value, ctx *Context, pos Position) (bool, error) {
	eq, err := Equal(l, r, ctx, pos)
	return !eq, err
}

func Greater(l, r Value, ctx *Context, pos Position) (bool, error) {
	lt, err := Less(l, r, ctx, pos)
	if err != nil {
		return false, err
	}
	eq, err := Equal(l, r, ctx, pos)
	if err != nil {
		return false, err
	}
	return !lt && !eq, nil
}

func LessOrEqual(l, r Value, ctx *Context, pos Position) (bool, error) {
	lt, err := Less(l, r, ctx, pos)
	if err != nil {
		return false, err
	}
	eq, err := Equal(l, r, ctx, pos)
	if err != nil {
		return false, err
	}
	return lt || eq, nil
}

func GreaterOrEqual(l, r Value, ctx *Context, pos Position) (bool, error) {
	lt, err := Less(l, r, ctx, pos)
	return !lt, err
}
