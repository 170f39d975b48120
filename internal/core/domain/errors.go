package domain

import "go.trai.ch/zerr"

var (
	// ErrNoEntryPoints is returned when the project declares no entry points at all.
	ErrNoEntryPoints = zerr.New("project declares no entry points")

	// ErrUnknownEntryPoint is returned when a requested entry-point name is not declared.
	ErrUnknownEntryPoint = zerr.New("unknown entry point")

	// ErrDuplicatePackage is returned when the locked graph lists a package name twice.
	ErrDuplicatePackage = zerr.New("duplicate package in locked graph")

	// ErrPackageNotLocked is returned when a dependency edge points at a
	// package missing from the locked graph.
	ErrPackageNotLocked = zerr.New("package missing from locked graph")

	// ErrCoverage is returned when the union of all group closures does not
	// equal the full locked package set minus the root.
	ErrCoverage = zerr.New("locked packages unreachable from every dependency group")

	// ErrFetchFailed is returned when the external artifact download operation fails.
	ErrFetchFailed = zerr.New("artifact download failed")

	// ErrHashMismatch is returned when a downloaded artifact's hash is not in
	// the package's accepted set. Never downgraded to a warning.
	ErrHashMismatch = zerr.New("artifact hash not in accepted set")

	// ErrArtifactBuildFailed is returned when building the project's own artifact fails.
	ErrArtifactBuildFailed = zerr.New("project artifact build failed")

	// ErrInvalidVersion is returned for an unparseable interpreter version.
	ErrInvalidVersion = zerr.New("invalid version")

	// ErrInvalidConstraint is returned for an unparseable version constraint.
	ErrInvalidConstraint = zerr.New("invalid version constraint")

	// ErrVersionConstraint is returned on the target machine when the running
	// interpreter does not satisfy the embedded constraint.
	ErrVersionConstraint = zerr.New("interpreter version does not satisfy constraint")

	// ErrMalformedPayload is returned when a produced executable carries a
	// missing or unreadable bootstrap payload.
	ErrMalformedPayload = zerr.New("malformed bootstrap payload")

	// ErrProvisionFailed is returned when the isolated environment cannot be
	// created or populated on the target machine.
	ErrProvisionFailed = zerr.New("environment provisioning failed")
)
