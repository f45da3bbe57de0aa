package internalcheck

import (
	"testing"

	"golang.org/x/tools/go/packages"
)

const enginePattern = "github.com/hsiuhsiu/rsademo-go/pkg/rsademo/..."

func loadEngine(t *testing.T, mode packages.LoadMode) []*packages.Package {
	t.Helper()

	cfg := &packages.Config{Mode: mode}
	pkgs, err := packages.Load(cfg, enginePattern)
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		t.Fatalf("packages contain errors")
	}
	return pkgs
}
