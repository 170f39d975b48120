package domain

import "time"

// BundleInfo records one produced executable for later inspection.
type BundleInfo struct {
	Entry         string    `json:"entry,omitzero"`
	Identity      string    `json:"identity,omitzero"`
	Executable    string    `json:"executable,omitzero"`
	ArchiveDigest string    `json:"archive_digest,omitzero"`
	Timestamp     time.Time `json:"timestamp,omitzero"`
}
