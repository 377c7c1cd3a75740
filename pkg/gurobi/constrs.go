package gurobi

import "gonum.org/v1/gonum/mat"

// AddConstr appends one linear constraint given in sparse form: the variable
// indices inds (0-based) and their coefficients vals. name may be empty, in
// which case the solver assigns a default.
//
// Like variables, new constraints are pending until Update or Optimize.
func (m *Model) AddConstr(inds []int, vals []float64, sense ConstrSense, rhs float64, name string) error {
	m.mustLive("AddConstr")
	if len(inds) != len(vals) {
		return argErrorf("AddConstr got %d indices for %d values", len(inds), len(vals))
	}
	return newError("AddConstr",
		m.api.AddConstr(m.handle, toInt32(inds), vals, byte(sense), rhs, name), m.env)
}

// AddConstrs appends a batch of linear constraints in compressed sparse row
// form: cbeg[i] is the offset of row i's first entry in inds/vals. One
// foreign call for the whole batch; any dimension mismatch fails with
// ErrInvalidArgument before the call.
func (m *Model) AddConstrs(cbeg, inds []int, vals []float64, senses []ConstrSense, rhs []float64) error {
	m.mustLive("AddConstrs")
	rows := len(cbeg)
	if len(inds) != len(vals) {
		return argErrorf("AddConstrs got %d indices for %d values", len(inds), len(vals))
	}
	if len(senses) != rows {
		return argErrorf("AddConstrs got %d senses for %d rows", len(senses), rows)
	}
	if len(rhs) != rows {
		return argErrorf("AddConstrs got %d right-hand sides for %d rows", len(rhs), rows)
	}
	for i, beg := range cbeg {
		if beg < 0 || beg > len(inds) {
			return argErrorf("AddConstrs row %d begins at %d, outside [0, %d]", i, beg, len(inds))
		}
		if i > 0 && beg < cbeg[i-1] {
			return argErrorf("AddConstrs row offsets must be nondecreasing")
		}
	}

	sbuf := make([]byte, rows)
	for i, s := range senses {
		sbuf[i] = byte(s)
	}
	return newError("AddConstrs",
		m.api.AddConstrs(m.handle, rows, toInt32(cbeg), toInt32(inds), vals, sbuf, rhs), m.env)
}

// AddDenseConstrs appends one constraint per row of a dense coefficient
// matrix, dropping zero entries during the sparse conversion. a must have one
// column per model variable; senses and rhs must have one entry per row.
func (m *Model) AddDenseConstrs(a mat.Matrix, senses []ConstrSense, rhs []float64) error {
	m.mustLive("AddDenseConstrs")
	rows, cols := a.Dims()
	if len(senses) != rows {
		return argErrorf("AddDenseConstrs got %d senses for %d rows", len(senses), rows)
	}
	if len(rhs) != rows {
		return argErrorf("AddDenseConstrs got %d right-hand sides for %d rows", len(rhs), rows)
	}

	cbeg := make([]int, rows)
	var inds []int
	var vals []float64
	for i := 0; i < rows; i++ {
		cbeg[i] = len(inds)
		for j := 0; j < cols; j++ {
			if v := a.At(i, j); v != 0 {
				inds = append(inds, j)
				vals = append(vals, v)
			}
		}
	}
	return m.AddConstrs(cbeg, inds, vals, senses, rhs)
}

func toInt32(xs []int) []int32 {
	if len(xs) == 0 {
		return nil
	}
	out := make([]int32, len(xs))
	for i, x := range xs {
		out[i] = int32(x)
	}
	return out
}
