package gurobi

import (
	"runtime"

	"github.com/optgo/gurobi-go/internal/capi"
)

// Model is an opaque handle to a solver model. A Model exclusively owns its
// native handle and is always associated with exactly one Env, which it
// references but does not own.
//
// Once closed, any operation other than Close or Copy is a programming error
// and panics.
type Model struct {
	env    *Env
	api    capi.API
	handle capi.Handle
}

// NewModel creates an empty model (zero variables, zero constraints) in env.
func NewModel(env *Env, name string) (*Model, error) {
	if env == nil || env.handle == 0 {
		return nil, argErrorf("NewModel requires a live environment")
	}
	h, code := env.api.NewModel(env.handle, name)
	if code != capi.CodeOK {
		return nil, newError("NewModel", code, env)
	}
	m := &Model{env: env, api: env.api, handle: h}
	runtime.SetFinalizer(m, func(m *Model) { _ = m.Close() })
	return m, nil
}

// mustLive panics if the model's handle has been released. Use-after-Close is
// a caller bug, not a recoverable condition.
func (m *Model) mustLive(op string) {
	if m.handle == 0 {
		panic("gurobi: " + op + " on closed model")
	}
}

// Copy deep-clones the model's native resource. Copying a closed model
// returns another closed model without a foreign call. A failed copy leaves
// the source model untouched.
//
// The solver clones whatever has been flushed; call Update first to include
// pending modifications.
func (m *Model) Copy() (*Model, error) {
	if m.handle == 0 {
		return &Model{env: m.env, api: m.api}, nil
	}
	h := m.api.CopyModel(m.handle)
	if h == 0 {
		return nil, newError("CopyModel", capi.CodeCopyFailed, m.env)
	}
	clone := &Model{env: m.env, api: m.api, handle: h}
	runtime.SetFinalizer(clone, func(m *Model) { _ = m.Close() })
	return clone, nil
}

// Close releases the model's native resource. It is idempotent and safe to
// combine with finalizer-driven collection; only the first call frees.
func (m *Model) Close() error {
	if m == nil || m.handle == 0 {
		return nil
	}
	runtime.SetFinalizer(m, nil)
	code := m.api.FreeModel(m.handle)
	m.handle = 0
	return newError("FreeModel", code, m.env)
}

// Update flushes pending model modifications (added variables, constraints,
// attribute changes) into the solver's internal state.
func (m *Model) Update() error {
	m.mustLive("Update")
	return newError("UpdateModel", m.api.UpdateModel(m.handle), m.env)
}

// Optimize solves the model. The result is queried through attributes such as
// AttrStatus, AttrObjVal, and AttrX.
func (m *Model) Optimize() error {
	m.mustLive("Optimize")
	return newError("Optimize", m.api.Optimize(m.handle), m.env)
}
