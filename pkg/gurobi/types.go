package gurobi

// Infinity is the solver's representable infinity. Bounds at or beyond this
// magnitude are treated as unbounded.
const Infinity = 1e100

// VType specifies whether a variable is continuous, integer, etc. Values are
// the solver's own type characters.
type VType byte

const (
	// Continuous indicates a continuous variable (the solver default).
	Continuous VType = 'C'
	// Binary indicates a 0/1 variable.
	Binary VType = 'B'
	// Integer indicates an integer variable.
	Integer VType = 'I'
	// SemiContinuous indicates a semi-continuous variable.
	SemiContinuous VType = 'S'
	// SemiInteger indicates a semi-integer variable.
	SemiInteger VType = 'N'
)

// String returns a human-readable representation of the variable type.
func (v VType) String() string {
	switch v {
	case Continuous:
		return "Continuous"
	case Binary:
		return "Binary"
	case Integer:
		return "Integer"
	case SemiContinuous:
		return "SemiContinuous"
	case SemiInteger:
		return "SemiInteger"
	default:
		return "Unknown"
	}
}

// ConstrSense is the relational sense of a linear constraint.
type ConstrSense byte

const (
	// LessEqual is a <= constraint.
	LessEqual ConstrSense = '<'
	// GreaterEqual is a >= constraint.
	GreaterEqual ConstrSense = '>'
	// Equal is an equality constraint.
	Equal ConstrSense = '='
)

// String returns a human-readable representation of the constraint sense.
func (s ConstrSense) String() string {
	switch s {
	case LessEqual:
		return "<="
	case GreaterEqual:
		return ">="
	case Equal:
		return "=="
	default:
		return "Unknown"
	}
}

// ObjSense is the optimization direction of a model.
type ObjSense int

const (
	// Minimize indicates a minimization objective (the solver default).
	Minimize ObjSense = 1
	// Maximize indicates a maximization objective.
	Maximize ObjSense = -1
)

// String returns a human-readable representation of the objective sense.
func (s ObjSense) String() string {
	switch s {
	case Minimize:
		return "Minimize"
	case Maximize:
		return "Maximize"
	default:
		return "Unknown"
	}
}

// IntAttr names an integer-valued model attribute. The attribute space is an
// open registry: any name the solver understands works, the constants below
// only cover the ones this package uses itself.
type IntAttr string

// DoubleAttr names a double-valued model attribute (scalar or array).
type DoubleAttr string

// StringAttr names a string-valued model attribute.
type StringAttr string

const (
	// AttrNumVars is the number of variables.
	AttrNumVars IntAttr = "NumVars"
	// AttrNumConstrs is the number of linear constraints.
	AttrNumConstrs IntAttr = "NumConstrs"
	// AttrNumNZs is the number of nonzeros in the constraint matrix.
	AttrNumNZs IntAttr = "NumNZs"
	// AttrNumQNZs is the number of nonzeros in the quadratic objective.
	AttrNumQNZs IntAttr = "NumQNZs"
	// AttrNumQConstrs is the number of quadratic constraints.
	AttrNumQConstrs IntAttr = "NumQConstrs"
	// AttrNumIntVars is the number of integer variables.
	AttrNumIntVars IntAttr = "NumIntVars"
	// AttrNumBinVars is the number of binary variables.
	AttrNumBinVars IntAttr = "NumBinVars"
	// AttrModelSense is the optimization sense (1 minimize, -1 maximize).
	AttrModelSense IntAttr = "ModelSense"
	// AttrStatus is the optimization status of the most recent solve.
	AttrStatus IntAttr = "Status"

	// AttrObjVal is the objective value of the current solution.
	AttrObjVal DoubleAttr = "ObjVal"
	// AttrObjCon is the constant offset of the objective.
	AttrObjCon DoubleAttr = "ObjCon"
	// AttrX is the variable value array of the current solution.
	AttrX DoubleAttr = "X"
	// AttrRC is the reduced cost array of the current solution.
	AttrRC DoubleAttr = "RC"
	// AttrLB is the variable lower bound array.
	AttrLB DoubleAttr = "LB"
	// AttrUB is the variable upper bound array.
	AttrUB DoubleAttr = "UB"
	// AttrObj is the objective coefficient array.
	AttrObj DoubleAttr = "Obj"

	// AttrModelName is the model's name.
	AttrModelName StringAttr = "ModelName"
)

// Optimization status codes reported by AttrStatus.
const (
	StatusLoaded         = 1
	StatusOptimal        = 2
	StatusInfeasible     = 3
	StatusInfOrUnbounded = 4
	StatusUnbounded      = 5
)
