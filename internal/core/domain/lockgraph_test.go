package domain_test

import (
	"errors"
	"testing"

	"go.trai.ch/bale/internal/core/domain"
	"go.trai.ch/zerr"
)

func pkg(name string, requires ...string) *domain.Package {
	return &domain.Package{Name: name, Version: "1.0.0", Requires: requires}
}

func mustIndex(t *testing.T, root *domain.Package, packages ...*domain.Package) *domain.Index {
	t.Helper()
	ix, err := domain.NewIndex(root, packages)
	if err != nil {
		t.Fatalf("NewIndex failed: %v", err)
	}
	return ix
}

func TestNewIndex_DuplicatePackage(t *testing.T) {
	_, err := domain.NewIndex(pkg("app"), []*domain.Package{pkg("a"), pkg("a")})
	if err == nil {
		t.Fatal("expected error for duplicate package, got nil")
	}
	if !errors.Is(err, domain.ErrDuplicatePackage) {
		t.Errorf("expected ErrDuplicatePackage, got %v", err)
	}

	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	meta := zErr.Metadata()
	if name, ok := meta["package"].(string); !ok || name != "a" {
		t.Errorf("expected metadata package=a, got %v", meta["package"])
	}
}

func TestClosure_Diamond(t *testing.T) {
	// a -> c, b -> c: c must appear exactly once.
	ix := mustIndex(t, pkg("app"),
		pkg("a", "c"),
		pkg("b", "c"),
		pkg("c"),
	)

	closure, err := ix.Closure([]string{"a", "b"})
	if err != nil {
		t.Fatalf("Closure failed: %v", err)
	}
	if len(closure) != 3 {
		t.Errorf("expected 3 packages in closure, got %d", len(closure))
	}
	for _, name := range []string{"a", "b", "c"} {
		if _, ok := closure[name]; !ok {
			t.Errorf("expected %q in closure", name)
		}
	}
}

func TestClosure_SkipsRoot(t *testing.T) {
	// The root appears as a requirement (path dependency) but never enters
	// the closure.
	ix := mustIndex(t, pkg("app"),
		pkg("a", "app", "b"),
		pkg("b"),
	)

	closure, err := ix.Closure([]string{"a"})
	if err != nil {
		t.Fatalf("Closure failed: %v", err)
	}
	if _, ok := closure["app"]; ok {
		t.Error("root package must not appear in closure")
	}
	if len(closure) != 2 {
		t.Errorf("expected 2 packages in closure, got %d", len(closure))
	}
}

func TestClosure_CycleTerminates(t *testing.T) {
	// a <-> b: the visited set breaks the cycle.
	ix := mustIndex(t, pkg("app"),
		pkg("a", "b"),
		pkg("b", "a"),
	)

	closure, err := ix.Closure([]string{"a"})
	if err != nil {
		t.Fatalf("Closure failed: %v", err)
	}
	if len(closure) != 2 {
		t.Errorf("expected 2 packages in closure, got %d", len(closure))
	}
}

func TestClosure_UnknownPackage(t *testing.T) {
	ix := mustIndex(t, pkg("app"), pkg("a", "ghost"))

	_, err := ix.Closure([]string{"a"})
	if err == nil {
		t.Fatal("expected error for unlocked package, got nil")
	}
	if !errors.Is(err, domain.ErrPackageNotLocked) {
		t.Errorf("expected ErrPackageNotLocked, got %v", err)
	}

	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	meta := zErr.Metadata()
	if name, ok := meta["package"].(string); !ok || name != "ghost" {
		t.Errorf("expected metadata package=ghost, got %v", meta["package"])
	}
}

func TestValidateCoverage_Complete(t *testing.T) {
	ix := mustIndex(t, pkg("app"),
		pkg("a", "c"),
		pkg("b"),
		pkg("c"),
	)

	runtime, err := ix.Closure([]string{"a"})
	if err != nil {
		t.Fatalf("Closure failed: %v", err)
	}
	dev, err := ix.Closure([]string{"b"})
	if err != nil {
		t.Fatalf("Closure failed: %v", err)
	}

	closures := map[string]map[string]*domain.Package{
		"runtime": runtime,
		"dev":     dev,
	}
	if err := domain.ValidateCoverage(ix, closures); err != nil {
		t.Errorf("expected complete coverage, got %v", err)
	}
}

func TestValidateCoverage_UnreachablePackage(t *testing.T) {
	// c is locked but no group reaches it.
	ix := mustIndex(t, pkg("app"),
		pkg("a"),
		pkg("c"),
	)

	runtime, err := ix.Closure([]string{"a"})
	if err != nil {
		t.Fatalf("Closure failed: %v", err)
	}

	err = domain.ValidateCoverage(ix, map[string]map[string]*domain.Package{"runtime": runtime})
	if err == nil {
		t.Fatal("expected coverage error, got nil")
	}
	if !errors.Is(err, domain.ErrCoverage) {
		t.Errorf("expected ErrCoverage, got %v", err)
	}

	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	meta := zErr.Metadata()
	if missing, ok := meta["unreachable"].(string); !ok || missing != "c" {
		t.Errorf("expected metadata unreachable=c, got %v", meta["unreachable"])
	}
}

func TestLocked_SortedWithoutRoot(t *testing.T) {
	ix := mustIndex(t, pkg("app"),
		pkg("zeta"),
		pkg("alpha"),
		pkg("mid"),
	)

	locked := ix.Locked()
	if len(locked) != 3 {
		t.Fatalf("expected 3 locked packages, got %d", len(locked))
	}
	want := []string{"alpha", "mid", "zeta"}
	for i, pkg := range locked {
		if pkg.Name != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], pkg.Name)
		}
	}
}

func TestSortedByName(t *testing.T) {
	set := map[string]*domain.Package{
		"b": pkg("b"),
		"a": pkg("a"),
	}
	sorted := domain.SortedByName(set)
	if len(sorted) != 2 || sorted[0].Name != "a" || sorted[1].Name != "b" {
		t.Errorf("expected [a b], got %v", sorted)
	}
}
