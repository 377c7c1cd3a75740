package server

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/optgo/gurobi-go/internal/config"
	"github.com/optgo/gurobi-go/pkg/gurobi"
)

// Problem is a linear program in dense row form.
type Problem struct {
	Name        string       `json:"name,omitempty"`
	Sense       string       `json:"sense"` // "min" or "max"
	Objective   []float64    `json:"objective"`
	LowerBounds []float64    `json:"lower_bounds,omitempty"`
	UpperBounds []float64    `json:"upper_bounds,omitempty"`
	Constraints []Constraint `json:"constraints,omitempty"`
}

type Constraint struct {
	Coeffs []float64 `json:"coeffs"`
	Sense  string    `json:"sense"` // "<=", ">=" or "="
	RHS    float64   `json:"rhs"`
}

type Result struct {
	Status    int       `json:"status"`
	Optimal   bool      `json:"optimal"`
	Objective float64   `json:"objective,omitempty"`
	X         []float64 `json:"x,omitempty"`
}

// Solver turns a Problem into a Result.
type Solver interface {
	Solve(p *Problem) (*Result, error)
}

// LPSolver solves problems on a shared environment. The native environment
// is not safe for concurrent model building, so solves are serialized.
type LPSolver struct {
	mu  sync.Mutex
	env *gurobi.Env
}

// NewLPSolver loads an environment and applies the configured solver
// parameters to it.
func NewLPSolver(cfg *config.Config) (*LPSolver, error) {
	env, err := gurobi.LoadEnv(cfg.Solver.LogFile)
	if err != nil {
		return nil, err
	}

	if err := env.SetIntParam("OutputFlag", cfg.Solver.OutputFlag); err != nil {
		_ = env.Close()
		return nil, err
	}
	if cfg.Solver.Threads > 0 {
		if err := env.SetIntParam("Threads", cfg.Solver.Threads); err != nil {
			_ = env.Close()
			return nil, err
		}
	}
	if cfg.Solver.TimeLimit > 0 {
		if err := env.SetDoubleParam("TimeLimit", cfg.Solver.TimeLimit); err != nil {
			_ = env.Close()
			return nil, err
		}
	}

	return &LPSolver{env: env}, nil
}

func (s *LPSolver) Solve(p *Problem) (*Result, error) {
	if err := validateProblem(p); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	model, err := gurobi.NewModel(s.env, p.Name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = model.Close() }()

	n := len(p.Objective)
	lb := p.LowerBounds
	if lb == nil {
		lb = broadcastBound(0, n)
	}
	ub := p.UpperBounds
	if ub == nil {
		ub = broadcastBound(gurobi.Infinity, n)
	}
	if err := model.AddContinuousVars(p.Objective, lb, ub); err != nil {
		return nil, err
	}

	sense := gurobi.Minimize
	if p.Sense == "max" {
		sense = gurobi.Maximize
	}
	if err := model.SetSense(sense); err != nil {
		return nil, err
	}

	if len(p.Constraints) > 0 {
		a := mat.NewDense(len(p.Constraints), n, nil)
		senses := make([]gurobi.ConstrSense, len(p.Constraints))
		rhs := make([]float64, len(p.Constraints))
		for i, c := range p.Constraints {
			a.SetRow(i, c.Coeffs)
			senses[i] = constrSense(c.Sense)
			rhs[i] = c.RHS
		}
		if err := model.AddDenseConstrs(a, senses, rhs); err != nil {
			return nil, err
		}
	}

	if err := model.Optimize(); err != nil {
		return nil, err
	}

	status, err := model.Status()
	if err != nil {
		return nil, err
	}
	res := &Result{Status: status, Optimal: status == gurobi.StatusOptimal}
	if res.Optimal {
		if res.Objective, err = model.ObjVal(); err != nil {
			return nil, err
		}
		if res.X, err = model.Solution(); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Close releases the shared environment.
func (s *LPSolver) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.env.Close()
}

func validateProblem(p *Problem) error {
	n := len(p.Objective)
	if n == 0 {
		return fmt.Errorf("problem has no variables")
	}
	if p.Sense != "" && p.Sense != "min" && p.Sense != "max" {
		return fmt.Errorf("unknown objective sense %q", p.Sense)
	}
	if p.LowerBounds != nil && len(p.LowerBounds) != n {
		return fmt.Errorf("lower_bounds has %d entries, want %d", len(p.LowerBounds), n)
	}
	if p.UpperBounds != nil && len(p.UpperBounds) != n {
		return fmt.Errorf("upper_bounds has %d entries, want %d", len(p.UpperBounds), n)
	}
	for i, c := range p.Constraints {
		if len(c.Coeffs) != n {
			return fmt.Errorf("constraint %d has %d coefficients, want %d", i, len(c.Coeffs), n)
		}
		switch c.Sense {
		case "<=", ">=", "=":
		default:
			return fmt.Errorf("constraint %d has unknown sense %q", i, c.Sense)
		}
	}
	return nil
}

func constrSense(s string) gurobi.ConstrSense {
	switch s {
	case ">=":
		return gurobi.GreaterEqual
	case "=":
		return gurobi.Equal
	default:
		return gurobi.LessEqual
	}
}

func broadcastBound(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
