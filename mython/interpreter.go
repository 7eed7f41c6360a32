package mython

import (
	"context"
	"io"
	"os"
)

// Config controls where a Script's output goes. Both fields default to the
// process's own stdout/stderr when left nil, so a zero-value Config is
// enough for a CLI running against the terminal.
type Config struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Engine holds the output streams every Script compiled from it writes to.
type Engine struct {
	cfg Config
}

// NewEngine builds an Engine from cfg, filling in the standard streams
// wherever the caller left them nil.
func NewEngine(cfg Config) *Engine {
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Stderr == nil {
		cfg.Stderr = os.Stderr
	}
	return &Engine{cfg: cfg}
}

// Script is a compiled, ready-to-run program: source has already been
// lexed and parsed, so Run never reports a lexical or syntax error. It fails
// with a runtime *LanguageError, an error from writing to the output
// stream, or ctx's error when ctx is cancelled.
type Script struct {
	engine  *Engine
	program *Compound
}

// Compile lexes and parses source, returning a Script that Run can execute
// any number of times.
func (e *Engine) Compile(source []byte) (*Script, error) {
	program, err := Parse(source)
	if err != nil {
		return nil, err
	}
	return &Script{engine: e, program: program}, nil
}

// Run evaluates the compiled program's top-level statements in order
// against a fresh, empty Closure, checking ctx for cancellation between
// each one. A return statement reaching the top level (outside of any
// method body) is a runtime error.
func (s *Script) Run(ctx context.Context) error {
	closure := NewClosure()
	rc := &Context{Out: s.engine.cfg.Stdout, Ctx: ctx}
	for _, stmt := range s.program.Stmts {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		_, isReturn, err := stmt.Execute(closure, rc)
		if err != nil {
			return err
		}
		if isReturn {
			return NewRuntimeError(stmt.Position(), "return outside of a method body")
		}
	}
	return nil
}
