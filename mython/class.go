package mython

import "fmt"

// Method is a single named, fixed-arity function attached to a class.
// Arity overloading is not supported: (name, len(Params)) is the lookup key
// HasMethod checks, but a class only ever holds one method per name.
type Method struct {
	Name   string
	Params []string
	Body   *MethodBody
}

// ClassDef is class metadata: a name, an optional parent, and a flattened
// method table built once at construction time by overlaying the class's
// own methods on top of its parent's already-flattened table. Grandparent
// methods are inherited transitively because the parent's table already
// contains them.
type ClassDef struct {
	Name    string
	Parent  *ClassDef
	methods map[string]*Method
}

// NewClassDef builds a ClassDef's flattened method table: parent methods
// first, then this class's own methods overlaid on top (own overrides
// parent by name).
func NewClassDef(name string, parent *ClassDef, methods []*Method) *ClassDef {
	table := make(map[string]*Method)
	if parent != nil {
		for k, v := range parent.methods {
			table[k] = v
		}
	}
	for _, m := range methods {
		table[m.Name] = m
	}
	return &ClassDef{Name: name, Parent: parent, methods: table}
}

// GetMethod resolves name through the flattened table.
func (c *ClassDef) GetMethod(name string) (*Method, bool) {
	m, ok := c.methods[name]
	return m, ok
}

// Instance is a reference to a Class plus a Closure holding its fields.
// Per the corrected NewInstance lifetime rule (see the class-instantiation
// design notes), a fresh Instance is constructed on every evaluation of a
// class-instantiation expression; nothing ties an instance's lifetime to
// the AST node that created it.
type Instance struct {
	Class  *ClassDef
	Fields *Closure
}

// NewInstanceObj builds a bare instance with an empty field closure. The
// caller is responsible for invoking __init__ if the class exposes one.
func NewInstanceObj(class *ClassDef) *Instance {
	return &Instance{Class: class, Fields: NewClosure()}
}

// HasMethod reports whether the instance's class (or an ancestor, via the
// flattened table) has a method of that name with a matching formal
// parameter count.
func (inst *Instance) HasMethod(name string, arity int) bool {
	m, ok := inst.Class.GetMethod(name)
	return ok && len(m.Params) == arity
}

// Call resolves name, binds self and the actual arguments into a fresh
// closure, and executes the method body against it. self is always bound to
// this instance regardless of which ancestor's method body ends up running.
func (inst *Instance) Call(name string, args []Value, ctx *Context, pos Position) (Value, error) {
	m, ok := inst.Class.GetMethod(name)
	if !ok {
		return NewNone(), NewRuntimeError(pos, "%s has no method %s", inst.Class.Name, name)
	}
	if len(m.Params) != len(args) {
		return NewNone(), NewRuntimeError(pos, "%s.%s expects %d argument(s), got %d", inst.Class.Name, name, len(m.Params), len(args))
	}
	closure := NewClosure()
	closure.Set("self", NewInstanceValue(inst))
	for i, p := range m.Params {
		closure.Set(p, args[i])
	}
	val, _, err := m.Body.Execute(closure, ctx)
	return val, err
}

func (inst *Instance) String() string {
	return fmt.Sprintf("%p", inst)
}
