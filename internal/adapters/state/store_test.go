package state_test

import (
	"path/filepath"
	"testing"
	"time"

	"go.trai.ch/bale/internal/adapters/state"
	"go.trai.ch/bale/internal/core/domain"
)

func TestStore_PutAndGet(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), state.Filename)

	store, err := state.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	info := domain.BundleInfo{
		Entry:         "serve",
		Identity:      "serve-abc",
		Executable:    "dist/serve",
		ArchiveDigest: "0011223344556677",
		Timestamp:     time.Now(),
	}

	if err := store.Put(info); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := store.Get("serve")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil {
		t.Fatal("Get returned nil")
	}
	if got.Identity != info.Identity {
		t.Errorf("expected Identity %q, got %q", info.Identity, got.Identity)
	}
}

func TestStore_Persistence(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), state.Filename)

	store1, err := state.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore 1 failed: %v", err)
	}
	if err := store1.Put(domain.BundleInfo{Entry: "worker", Identity: "worker-xyz"}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	store2, err := state.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore 2 failed: %v", err)
	}

	got, err := store2.Get("worker")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil {
		t.Fatal("Get returned nil")
	}
	if got.Identity != "worker-xyz" {
		t.Errorf("expected Identity %q, got %q", "worker-xyz", got.Identity)
	}
}

func TestStore_MissingEntry(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), state.Filename)

	store, err := state.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	got, err := store.Get("nope")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing entry, got %v", got)
	}
}

func TestStore_OverwriteKeepsLatest(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), state.Filename)

	store, err := state.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	if err := store.Put(domain.BundleInfo{Entry: "serve", Identity: "serve-old"}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := store.Put(domain.BundleInfo{Entry: "serve", Identity: "serve-new"}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := store.Get("serve")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Identity != "serve-new" {
		t.Errorf("expected latest identity, got %q", got.Identity)
	}
}
