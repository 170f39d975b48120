package ports

import "go.trai.ch/bale/internal/core/domain"

// BundleInfoStore persists per-entry bundle records across runs.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BundleInfoStore interface {
	// Get retrieves the record for an entry point.
	// Returns nil, nil if not found.
	Get(entry string) (*domain.BundleInfo, error)

	// Put stores the record.
	Put(info domain.BundleInfo) error
}
