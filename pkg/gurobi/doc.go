// Package gurobi provides Go bindings for the Gurobi Optimizer C API.
//
// The package wraps two opaque solver resources: an environment (Env) and a
// model (Model). An Env must outlive every Model created from it; a Model
// exclusively owns its native handle and releases it exactly once, either via
// an explicit Close or a finalizer.
//
//	env, err := gurobi.LoadEnv("")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer env.Close()
//
//	model, err := gurobi.NewModel(env, "lp")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer model.Close()
//
//	// minimize x + 2y + 3z, 0 <= x,y,z
//	err = model.AddVars([]float64{1, 2, 3}, gurobi.WithLowerBound(0))
//
// All operations are synchronous, single blocking foreign calls. The binding
// performs no locking; a Model must not be used from multiple goroutines
// without external synchronization.
//
// Binaries built without cgo (or on Windows) still compile; operations then
// fail with ErrNotBuilt.
package gurobi
