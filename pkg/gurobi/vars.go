package gurobi

import "math"

// varsSpec is the resolved shape of the optional AddVars arguments. Each of
// type tag, lower bound, and upper bound is absent, a scalar to broadcast, or
// a vector of exactly n values. The variant is decided here, once, at the
// public boundary; the marshaling path below never re-branches on shape.
type varsSpec struct {
	vtype    VType
	vtypeSet bool
	vtypes   []VType

	lb    float64
	lbSet bool
	lbs   []float64

	ub    float64
	ubSet bool
	ubs   []float64
}

// VarsOption configures AddVars.
type VarsOption func(*varsSpec)

// WithVarType applies one variable type to every variable in the batch.
func WithVarType(t VType) VarsOption {
	return func(s *varsSpec) { s.vtype, s.vtypeSet = t, true }
}

// WithVarTypes supplies one type per variable. The slice length must match
// the number of objective coefficients.
func WithVarTypes(ts []VType) VarsOption {
	return func(s *varsSpec) { s.vtypes = ts }
}

// WithLowerBound applies one lower bound to every variable in the batch.
func WithLowerBound(lb float64) VarsOption {
	return func(s *varsSpec) { s.lb, s.lbSet = lb, true }
}

// WithLowerBounds supplies one lower bound per variable.
func WithLowerBounds(lbs []float64) VarsOption {
	return func(s *varsSpec) { s.lbs = lbs }
}

// WithUpperBound applies one upper bound to every variable in the batch.
func WithUpperBound(ub float64) VarsOption {
	return func(s *varsSpec) { s.ub, s.ubSet = ub, true }
}

// WithUpperBounds supplies one upper bound per variable.
func WithUpperBounds(ubs []float64) VarsOption {
	return func(s *varsSpec) { s.ubs = ubs }
}

// AddVars appends len(obj) variables to the model in a single foreign call.
// obj holds the objective coefficient of each new variable.
//
// Variables default to continuous, unbounded below and above. Defaults differ
// from the solver's own (lower bound 0), so an absent lower bound is
// materialized as a -Infinity buffer rather than left to the solver.
//
// Every vector option must have length len(obj); a mismatch fails with
// ErrInvalidArgument before anything reaches the solver. The batch is
// all-or-nothing: on error the model's variable count is unchanged.
//
// The new variables are pending until Update or Optimize flushes them.
func (m *Model) AddVars(obj []float64, opts ...VarsOption) error {
	m.mustLive("AddVars")

	var spec varsSpec
	for _, opt := range opts {
		opt(&spec)
	}

	n := len(obj)
	if err := spec.validate(n, "AddVars"); err != nil {
		return err
	}

	lb, ub := spec.boundBuffers(n)
	return newError("AddVars", m.api.AddVars(m.handle, n, obj, lb, ub, spec.typeBuffer(n)), m.env)
}

// validate checks every vector argument against the batch size before any
// foreign call is made.
func (s *varsSpec) validate(n int, op string) error {
	if s.vtypes != nil && len(s.vtypes) != n {
		return argErrorf("%s got %d variable types for %d variables", op, len(s.vtypes), n)
	}
	if s.lbs != nil && len(s.lbs) != n {
		return argErrorf("%s got %d lower bounds for %d variables", op, len(s.lbs), n)
	}
	if s.ubs != nil && len(s.ubs) != n {
		return argErrorf("%s got %d upper bounds for %d variables", op, len(s.ubs), n)
	}
	return nil
}

// typeBuffer flattens the type variant. A nil buffer means "all continuous",
// which is the solver's documented default.
func (s *varsSpec) typeBuffer(n int) []byte {
	switch {
	case s.vtypes != nil:
		buf := make([]byte, n)
		for i, t := range s.vtypes {
			buf[i] = byte(t)
		}
		return buf
	case s.vtypeSet && s.vtype != Continuous:
		buf := make([]byte, n)
		for i := range buf {
			buf[i] = byte(s.vtype)
		}
		return buf
	default:
		return nil
	}
}

// boundBuffers flattens the bound variants.
//
// Lower bounds are always materialized when absent: the solver's null-buffer
// default is 0, not -Infinity. Upper bounds go the other way: the solver's
// null-buffer default is +Infinity, so absence or a +Infinity scalar passes a
// nil buffer.
func (s *varsSpec) boundBuffers(n int) (lb, ub []float64) {
	switch {
	case s.lbs != nil:
		lb = s.lbs
	case s.lbSet:
		lb = broadcast(clampInf(s.lb), n)
	default:
		lb = broadcast(-Infinity, n)
	}

	switch {
	case s.ubs != nil:
		ub = s.ubs
	case s.ubSet && !isPosInfinity(s.ub):
		ub = broadcast(s.ub, n)
	default:
		ub = nil
	}
	return lb, ub
}

func broadcast(v float64, n int) []float64 {
	buf := make([]float64, n)
	for i := range buf {
		buf[i] = v
	}
	return buf
}

// clampInf maps IEEE infinities onto the solver's representable infinity.
func clampInf(v float64) float64 {
	if math.IsInf(v, -1) {
		return -Infinity
	}
	if math.IsInf(v, 1) {
		return Infinity
	}
	return v
}

func isPosInfinity(v float64) bool {
	return v >= Infinity || math.IsInf(v, 1)
}

// AddVar appends a single variable with explicit bounds and type.
func (m *Model) AddVar(obj, lb, ub float64, t VType) error {
	return m.AddVars([]float64{obj},
		WithVarType(t), WithLowerBound(lb), WithUpperBound(ub))
}

// AddContinuousVars appends continuous variables with explicit per-variable
// bounds. All three slices must have the same length.
func (m *Model) AddContinuousVars(obj, lb, ub []float64) error {
	return m.AddVars(obj, WithLowerBounds(lb), WithUpperBounds(ub))
}

// AddIntegerVars appends integer variables with explicit per-variable bounds.
func (m *Model) AddIntegerVars(obj, lb, ub []float64) error {
	return m.AddVars(obj, WithVarType(Integer),
		WithLowerBounds(lb), WithUpperBounds(ub))
}

// AddBinaryVars appends binary variables; the solver derives the 0/1 bounds
// from the type.
func (m *Model) AddBinaryVars(obj []float64) error {
	return m.AddVars(obj, WithVarType(Binary),
		WithLowerBound(0), WithUpperBound(1))
}
