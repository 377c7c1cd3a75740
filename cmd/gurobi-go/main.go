package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/optgo/gurobi-go/pkg/gurobi"
)

// Loads an environment, builds a small LP and prints the solution. Exits
// cleanly when the native library is not linked in.
func main() {
	major, minor, technical := gurobi.Version()
	log.Printf("gurobi-go: native library v%d.%d.%d", major, minor, technical)

	env, err := gurobi.LoadEnv("")
	if err != nil {
		if errors.Is(err, gurobi.ErrNotBuilt) {
			fmt.Printf("solver unavailable: %v\n", err)
			return
		}
		log.Fatalf("load environment: %v", err)
	}
	defer func() {
		if cerr := env.Close(); cerr != nil {
			log.Printf("close error: %v", cerr)
		}
	}()

	if err := env.SetIntParam("OutputFlag", 0); err != nil {
		log.Fatalf("set OutputFlag: %v", err)
	}

	model, err := gurobi.NewModel(env, "demo")
	if err != nil {
		log.Fatalf("new model: %v", err)
	}
	defer func() { _ = model.Close() }()

	// max 3x + y  s.t.  x + y <= 2,  0 <= x,y <= 1
	if err := model.AddVars([]float64{3, 1},
		gurobi.WithLowerBound(0),
		gurobi.WithUpperBound(1),
	); err != nil {
		log.Fatalf("add variables: %v", err)
	}
	if err := model.SetSense(gurobi.Maximize); err != nil {
		log.Fatalf("set sense: %v", err)
	}
	if err := model.AddConstr([]int{0, 1}, []float64{1, 1}, gurobi.LessEqual, 2, "budget"); err != nil {
		log.Fatalf("add constraint: %v", err)
	}

	if err := model.Optimize(); err != nil {
		log.Fatalf("optimize: %v", err)
	}

	obj, err := model.ObjVal()
	if err != nil {
		log.Fatalf("objective: %v", err)
	}
	x, err := model.Solution()
	if err != nil {
		log.Fatalf("solution: %v", err)
	}
	fmt.Printf("objective %.2f at x = %v\n", obj, x)
}
