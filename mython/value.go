package mython

// ValueKind tags the dynamic variants a Value can hold.
type ValueKind int

const (
	KindNone ValueKind = iota
	KindNumber
	KindString
	KindBool
	KindClass
	KindInstance
)

func (k ValueKind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	case KindBool:
		return "Bool"
	case KindClass:
		return "Class"
	case KindInstance:
		return "ClassInstance"
	default:
		return "Unknown"
	}
}

// Value is the dynamic runtime value. The Go garbage collector already gives
// shared, cycle-tolerant ownership for the pointer-backed variants, so there
// is no separate holder type: copying a Value copies the struct, which for
// Class/ClassInstance copies only the pointer. That is "Share" for reference
// types, for free.
type Value struct {
	Kind ValueKind
	data any
}

func NewNone() Value                  { return Value{Kind: KindNone} }
func NewNumber(n int32) Value         { return Value{Kind: KindNumber, data: n} }
func NewString(s string) Value        { return Value{Kind: KindString, data: s} }
func NewBool(b bool) Value            { return Value{Kind: KindBool, data: b} }
func NewClassValue(c *ClassDef) Value { return Value{Kind: KindClass, data: c} }
func NewInstanceValue(i *Instance) Value {
	return Value{Kind: KindInstance, data: i}
}

func (v Value) Number() int32     { return v.data.(int32) }
func (v Value) StringVal() string { return v.data.(string) }
func (v Value) BoolVal() bool     { return v.data.(bool) }
func (v Value) Class() *ClassDef  { return v.data.(*ClassDef) }
func (v Value) Instance() *Instance {
	return v.data.(*Instance)
}

// IsTrue implements the language's truthiness protocol: a nonzero Number, a
// non-empty String, or a true Bool. Everything else, including every
// ClassInstance, is false.
func (v Value) IsTrue() bool {
	switch v.Kind {
	case KindNumber:
		return v.Number() != 0
	case KindString:
		return v.StringVal() != ""
	case KindBool:
		return v.BoolVal()
	default:
		return false
	}
}
