package domain_test

import (
	"strings"
	"testing"

	"go.trai.ch/bale/internal/core/domain"
)

func TestNewIdentity_Unique(t *testing.T) {
	a := domain.NewIdentity("serve")
	b := domain.NewIdentity("serve")

	if !strings.HasPrefix(a, "serve-") {
		t.Errorf("expected identity to start with the entry name, got %q", a)
	}
	if a == b {
		t.Error("expected two identities for the same entry point to differ")
	}
}

func TestNewManifest_Layout(t *testing.T) {
	artifacts := []string{
		"dist/packages/requests-2.31.0-py3-none-any.whl",
		"dist/app-1.0.0-py3-none-any.whl",
	}
	m := domain.NewManifest("serve", "^3.9", "serve-1", artifacts)

	if len(m.Entries) != 2 {
		t.Fatalf("expected 2 archive entries, got %d", len(m.Entries))
	}
	// Artifacts land flat under the packages prefix regardless of where they
	// came from on the build machine.
	want := []string{
		"packages/requests-2.31.0-py3-none-any.whl",
		"packages/app-1.0.0-py3-none-any.whl",
	}
	for i, entry := range m.Entries {
		if entry.Path != want[i] {
			t.Errorf("entry %d: expected path %q, got %q", i, want[i], entry.Path)
		}
		if entry.Source != artifacts[i] {
			t.Errorf("entry %d: expected source %q, got %q", i, artifacts[i], entry.Source)
		}
	}

	if m.Payload == "" {
		t.Fatal("expected manifest to carry a rendered payload")
	}
	if !strings.Contains(m.Payload, `identity: "serve-1"`) {
		t.Errorf("expected payload to embed the identity:\n%s", m.Payload)
	}
}
