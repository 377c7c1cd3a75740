package gurobi

import (
	"errors"
	"fmt"

	"github.com/optgo/gurobi-go/internal/capi"
)

// ErrInvalidArgument reports a caller error detected before any foreign call
// was made, typically a dimension mismatch. The solver state is untouched.
var ErrInvalidArgument = errors.New("gurobi: invalid argument")

// ErrNotBuilt reports that the native solver library was not linked into the
// current binary (non-cgo or Windows build).
var ErrNotBuilt = capi.ErrNotBuilt

// Error is a failure reported by the solver. Code is solver-defined and
// opaque to this layer; the message text is resolved lazily from the owning
// environment when the error is formatted, never captured eagerly.
type Error struct {
	Op   string    // operation that failed, e.g. "AddVars"
	Code capi.Code // nonzero solver status

	env *Env // for message lookup; may be nil
}

func (e *Error) Error() string {
	if msg := e.message(); msg != "" {
		return fmt.Sprintf("gurobi: %s failed: %s (code %d)", e.Op, msg, e.Code)
	}
	return fmt.Sprintf("gurobi: %s failed with code %d", e.Op, e.Code)
}

func (e *Error) message() string {
	if e.env == nil || e.env.handle == 0 {
		return ""
	}
	return e.env.api.ErrorMessage(e.env.handle)
}

// newError wraps a nonzero solver code into an error carrying the owning
// environment. CodeNotBuilt remaps to the ErrNotBuilt sentinel so callers can
// detect stub builds with errors.Is.
func newError(op string, code capi.Code, env *Env) error {
	if code == capi.CodeOK {
		return nil
	}
	if code == capi.CodeNotBuilt {
		return fmt.Errorf("gurobi: %s: %w", op, ErrNotBuilt)
	}
	return &Error{Op: op, Code: code, env: env}
}

// argErrorf wraps ErrInvalidArgument with call-site context.
func argErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
