package mython

import (
	"context"
	"io"
)

// Context carries the state threaded through every statement's Execute
// call: where Print writes to, and the standard library context.Context
// used to detect cancellation between top-level statements.
type Context struct {
	Out io.Writer
	Ctx context.Context
}
