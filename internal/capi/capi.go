// Package capi declares the raw Gurobi C call surface used by pkg/gurobi.
// This package is the only place in the module allowed to import "C"; the
// public binding talks to the solver exclusively through the API interface so
// tests can substitute a fake and non-cgo builds still compile.
package capi

import "errors"

// Handle is an opaque reference to solver-internal state (a GRBenv* or
// GRBmodel*). The zero value is the null sentinel.
type Handle uintptr

// Code is a solver status code. Zero means success; positive values are
// solver-defined error codes, opaque to this layer. Negative values are
// reserved for the binding itself and never originate from the solver.
type Code int32

const (
	// CodeOK is the solver's success status.
	CodeOK Code = 0

	// CodeNotBuilt reports that the native solver library was not linked
	// into the current binary.
	CodeNotBuilt Code = -1

	// CodeCopyFailed reports a failed model clone. GRBcopymodel signals
	// failure only by returning NULL, so the binding supplies this code.
	CodeCopyFailed Code = -2
)

// ErrNotBuilt reports that the native bindings were not linked into the
// current binary. Callers can use this to fall back to safer defaults.
var ErrNotBuilt = errors.New("gurobi/internal/capi: native solver library not built")

// API is the set of foreign calls the binding issues. Every method maps to
// exactly one C entry point. Slice arguments marshal so that an empty or nil
// slice becomes a NULL pointer on the C side; callers that need a materialized
// buffer must pass a non-empty slice.
type API interface {
	// LoadEnv wraps GRBloadenv. logfile may be empty for no log file.
	LoadEnv(logfile string) (Handle, Code)
	// FreeEnv wraps GRBfreeenv.
	FreeEnv(env Handle)
	// ErrorMessage wraps GRBgeterrormsg, returning the message for the most
	// recent error raised against env.
	ErrorMessage(env Handle) string
	// Version wraps GRBversion.
	Version() (major, minor, technical int)

	SetIntParam(env Handle, name string, value int) Code
	GetIntParam(env Handle, name string) (int, Code)
	SetDoubleParam(env Handle, name string, value float64) Code
	GetDoubleParam(env Handle, name string) (float64, Code)
	SetStringParam(env Handle, name, value string) Code
	GetStringParam(env Handle, name string) (string, Code)

	// NewModel wraps GRBnewmodel with zero variables.
	NewModel(env Handle, name string) (Handle, Code)
	// CopyModel wraps GRBcopymodel. A zero Handle means the clone failed.
	CopyModel(model Handle) Handle
	// FreeModel wraps GRBfreemodel.
	FreeModel(model Handle) Code
	// UpdateModel wraps GRBupdatemodel.
	UpdateModel(model Handle) Code
	// Optimize wraps GRBoptimize.
	Optimize(model Handle) Code

	GetIntAttr(model Handle, name string) (int, Code)
	GetDoubleAttr(model Handle, name string) (float64, Code)
	GetStringAttr(model Handle, name string) (string, Code)
	SetIntAttr(model Handle, name string, value int) Code
	SetDoubleAttr(model Handle, name string, value float64) Code
	SetStringAttr(model Handle, name, value string) Code
	// GetDoubleAttrArray wraps GRBgetdblattrarray. first is the solver's
	// 0-based index of the first element.
	GetDoubleAttrArray(model Handle, name string, first, length int) ([]float64, Code)

	// AddVars wraps GRBaddvars with zero non-structural (sparse-column)
	// entries and NULL variable names. nil slices pass NULL buffers.
	AddVars(model Handle, numVars int, obj, lb, ub []float64, vtypes []byte) Code
	// AddConstr wraps GRBaddconstr for a single sparse row.
	AddConstr(model Handle, inds []int32, vals []float64, sense byte, rhs float64, name string) Code
	// AddConstrs wraps GRBaddconstrs with rows in CSR form and NULL names.
	AddConstrs(model Handle, numConstrs int, cbeg, cind []int32, cval []float64, senses []byte, rhs []float64) Code
}
