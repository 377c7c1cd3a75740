// Package internalcheck provides internal validation and testing utilities.
//
// This package contains policy tests used internally by the gurobi-go
// library to keep the native call surface isolated. It is not intended
// for external use and the API may change without notice.
//
// # Internal Use Only
//
// This package is part of the internal implementation and should not be
// imported by applications using the gurobi-go library. Use the public API
// provided by pkg/gurobi instead.
package internalcheck
