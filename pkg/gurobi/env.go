package gurobi

import (
	"runtime"

	"github.com/optgo/gurobi-go/internal/capi"
)

// Env is an opaque handle to a solver environment. It owns no in-process data
// beyond the handle itself, and must outlive every Model created from it;
// that ordering is the caller's responsibility.
type Env struct {
	api    capi.API
	handle capi.Handle
}

// LoadEnv creates a new solver environment, checking out a license in the
// process. logfile may be empty to disable the solver log file.
//
// The environment must be released with Close when no longer needed. A
// finalizer covers the case where the caller forgets, but explicit Close is
// preferred because license tokens are a scarce resource.
func LoadEnv(logfile string) (*Env, error) {
	api := capi.New()
	h, code := api.LoadEnv(logfile)
	if code != capi.CodeOK {
		return nil, newError("LoadEnv", code, nil)
	}
	e := &Env{api: api, handle: h}
	runtime.SetFinalizer(e, func(e *Env) { _ = e.Close() })
	return e, nil
}

// Close releases the environment. It is idempotent; only the first call
// performs the foreign deallocation.
func (e *Env) Close() error {
	if e == nil || e.handle == 0 {
		return nil
	}
	runtime.SetFinalizer(e, nil)
	e.api.FreeEnv(e.handle)
	e.handle = 0
	return nil
}

// Version reports the major, minor, and technical version of the linked
// solver library. All zeros in a stub build.
func Version() (major, minor, technical int) {
	return capi.New().Version()
}

// SetIntParam sets an integer-valued solver parameter, e.g. "OutputFlag".
func (e *Env) SetIntParam(name string, value int) error {
	return newError("SetIntParam", e.api.SetIntParam(e.handle, name, value), e)
}

// GetIntParam returns the value of an integer-valued solver parameter.
func (e *Env) GetIntParam(name string) (int, error) {
	v, code := e.api.GetIntParam(e.handle, name)
	if err := newError("GetIntParam", code, e); err != nil {
		return 0, err
	}
	return v, nil
}

// SetDoubleParam sets a double-valued solver parameter, e.g. "TimeLimit".
func (e *Env) SetDoubleParam(name string, value float64) error {
	return newError("SetDoubleParam", e.api.SetDoubleParam(e.handle, name, value), e)
}

// GetDoubleParam returns the value of a double-valued solver parameter.
func (e *Env) GetDoubleParam(name string) (float64, error) {
	v, code := e.api.GetDoubleParam(e.handle, name)
	if err := newError("GetDoubleParam", code, e); err != nil {
		return 0, err
	}
	return v, nil
}

// SetStringParam sets a string-valued solver parameter, e.g. "LogFile".
func (e *Env) SetStringParam(name, value string) error {
	return newError("SetStringParam", e.api.SetStringParam(e.handle, name, value), e)
}

// GetStringParam returns the value of a string-valued solver parameter.
func (e *Env) GetStringParam(name string) (string, error) {
	v, code := e.api.GetStringParam(e.handle, name)
	if err := newError("GetStringParam", code, e); err != nil {
		return "", err
	}
	return v, nil
}
