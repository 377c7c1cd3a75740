package internalcheck

import (
	"fmt"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// Only internal/capi is allowed to talk to the native library. Everything
// else must go through the capi.API interface so it stays testable without
// the solver installed.
const capiPath = "github.com/optgo/gurobi-go/internal/capi"

func TestOnlyCapiImportsCgo(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedImports | packages.NeedName | packages.NeedFiles,
	}

	pkgs, err := packages.Load(cfg, "github.com/optgo/gurobi-go/...")
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	var findings []string

	for _, pkg := range pkgs {
		if pkg.PkgPath == capiPath {
			continue
		}
		for importPath := range pkg.Imports {
			if importPath == "C" || importPath == "runtime/cgo" || importPath == "unsafe" {
				findings = append(findings, fmt.Sprintf("%s imports %q; only %s may touch the native layer", pkg.PkgPath, importPath, capiPath))
			}
		}
	}

	if len(findings) > 0 {
		t.Fatalf("cgo isolation policy violation:\n%s", strings.Join(findings, "\n"))
	}
}

func TestPublicPackageDoesNotImportCapiTransports(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedImports | packages.NeedName,
	}

	pkgs, err := packages.Load(cfg, "github.com/optgo/gurobi-go/internal/...")
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	var findings []string

	// Internal service packages wrap the public API, never the raw call
	// surface, so capi stays swappable.
	for _, pkg := range pkgs {
		if pkg.PkgPath == capiPath || strings.HasPrefix(pkg.PkgPath, capiPath+"/") {
			continue
		}
		for importPath := range pkg.Imports {
			if importPath == capiPath {
				findings = append(findings, fmt.Sprintf("%s imports %s directly; use pkg/gurobi", pkg.PkgPath, importPath))
			}
		}
	}

	if len(findings) > 0 {
		t.Fatalf("layering policy violation:\n%s", strings.Join(findings, "\n"))
	}
}
