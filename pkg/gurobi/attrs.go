package gurobi

// Attribute accessors. All four shapes share one contract: exactly one
// foreign call into an output buffer, with a nonzero status wrapped into
// *Error. Attribute names form an open registry; see types.go for the
// constants this package uses itself.

// GetInt returns an integer-valued model attribute.
func (m *Model) GetInt(attr IntAttr) (int, error) {
	m.mustLive("GetInt")
	v, code := m.api.GetIntAttr(m.handle, string(attr))
	if err := newError("GetIntAttr", code, m.env); err != nil {
		return 0, err
	}
	return v, nil
}

// GetDouble returns a double-valued model attribute.
func (m *Model) GetDouble(attr DoubleAttr) (float64, error) {
	m.mustLive("GetDouble")
	v, code := m.api.GetDoubleAttr(m.handle, string(attr))
	if err := newError("GetDoubleAttr", code, m.env); err != nil {
		return 0, err
	}
	return v, nil
}

// GetString returns a string-valued model attribute.
func (m *Model) GetString(attr StringAttr) (string, error) {
	m.mustLive("GetString")
	v, code := m.api.GetStringAttr(m.handle, string(attr))
	if err := newError("GetStringAttr", code, m.env); err != nil {
		return "", err
	}
	return v, nil
}

// SetInt sets an integer-valued model attribute, e.g. AttrModelSense.
// The change is pending until Update or Optimize flushes it.
func (m *Model) SetInt(attr IntAttr, value int) error {
	m.mustLive("SetInt")
	return newError("SetIntAttr", m.api.SetIntAttr(m.handle, string(attr), value), m.env)
}

// SetDouble sets a double-valued model attribute.
func (m *Model) SetDouble(attr DoubleAttr, value float64) error {
	m.mustLive("SetDouble")
	return newError("SetDoubleAttr", m.api.SetDoubleAttr(m.handle, string(attr), value), m.env)
}

// SetString sets a string-valued model attribute.
func (m *Model) SetString(attr StringAttr, value string) error {
	m.mustLive("SetString")
	return newError("SetStringAttr", m.api.SetStringAttr(m.handle, string(attr), value), m.env)
}

// SetSense sets the model's optimization direction.
func (m *Model) SetSense(sense ObjSense) error {
	return m.SetInt(AttrModelSense, int(sense))
}

// GetDoubleSlice returns length elements of an array attribute beginning at
// start. start is 1-based; it is translated to the solver's 0-based indexing
// before the call, so start=1 reads from the first element.
func (m *Model) GetDoubleSlice(attr DoubleAttr, start, length int) ([]float64, error) {
	m.mustLive("GetDoubleSlice")
	if start < 1 {
		return nil, argErrorf("GetDoubleSlice start must be >= 1, got %d", start)
	}
	if length < 0 {
		return nil, argErrorf("GetDoubleSlice length must be >= 0, got %d", length)
	}
	v, code := m.api.GetDoubleAttrArray(m.handle, string(attr), start-1, length)
	if err := newError("GetDoubleAttrArray", code, m.env); err != nil {
		return nil, err
	}
	return v, nil
}

// NumVars returns the number of variables in the model.
func (m *Model) NumVars() (int, error) { return m.GetInt(AttrNumVars) }

// NumConstrs returns the number of linear constraints in the model.
func (m *Model) NumConstrs() (int, error) { return m.GetInt(AttrNumConstrs) }

// NumNonzeros returns the number of nonzeros in the constraint matrix.
func (m *Model) NumNonzeros() (int, error) { return m.GetInt(AttrNumNZs) }

// Name returns the model's name.
func (m *Model) Name() (string, error) { return m.GetString(AttrModelName) }

// Status returns the optimization status of the most recent solve.
func (m *Model) Status() (int, error) { return m.GetInt(AttrStatus) }

// ObjVal returns the objective value of the current solution.
func (m *Model) ObjVal() (float64, error) { return m.GetDouble(AttrObjVal) }

// Solution returns the variable values of the current solution.
func (m *Model) Solution() ([]float64, error) {
	n, err := m.NumVars()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	return m.GetDoubleSlice(AttrX, 1, n)
}

// IsMIP reports whether the model has any integrality requirement. Derived
// from NumIntVars and NumBinVars; no extra foreign calls beyond those reads.
func (m *Model) IsMIP() (bool, error) {
	ints, err := m.GetInt(AttrNumIntVars)
	if err != nil {
		return false, err
	}
	bins, err := m.GetInt(AttrNumBinVars)
	if err != nil {
		return false, err
	}
	return ints+bins > 0, nil
}

// IsQP reports whether the objective has quadratic terms.
func (m *Model) IsQP() (bool, error) {
	qnz, err := m.GetInt(AttrNumQNZs)
	if err != nil {
		return false, err
	}
	return qnz > 0, nil
}

// IsQCP reports whether the model has quadratic constraints.
func (m *Model) IsQCP() (bool, error) {
	qc, err := m.GetInt(AttrNumQConstrs)
	if err != nil {
		return false, err
	}
	return qc > 0, nil
}

// Sense returns the model's optimization direction.
func (m *Model) Sense() (ObjSense, error) {
	s, err := m.GetInt(AttrModelSense)
	if err != nil {
		return 0, err
	}
	if s < 0 {
		return Maximize, nil
	}
	return Minimize, nil
}
