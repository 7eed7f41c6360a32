package mython

// Closure is a mutable, unordered name→Value mapping with unique keys.
// Unlike a lexically nested environment, a Closure never chains to a
// parent: each method invocation and each top-level script run gets exactly
// one flat Closure, matching the language's own scoping rule that a
// function body sees only its own bindings plus whatever self.field access
// reaches through an instance.
type Closure struct {
	vars map[string]Value
}

// NewClosure returns an empty Closure.
func NewClosure() *Closure {
	return &Closure{vars: make(map[string]Value)}
}

// Get looks up name. The second return value is false on lookup failure;
// callers turn that into a runtime error with their own source position
// attached, since Closure itself carries no position information.
func (c *Closure) Get(name string) (Value, bool) {
	v, ok := c.vars[name]
	return v, ok
}

// Set inserts or overwrites name's binding.
func (c *Closure) Set(name string, val Value) {
	c.vars[name] = val
}

// Vars returns a snapshot of every binding currently held. Callers must not
// mutate it to affect the Closure.
func (c *Closure) Vars() map[string]Value {
	snapshot := make(map[string]Value, len(c.vars))
	for k, v := range c.vars {
		snapshot[k] = v
	}
	return snapshot
}
