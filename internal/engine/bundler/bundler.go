// Package bundler implements the bundling pipeline: validate the locked
// graph, gather verified artifacts and package one executable per entry
// point.
package bundler

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"go.trai.ch/bale/internal/core/domain"
	"go.trai.ch/bale/internal/core/ports"
	"go.trai.ch/zerr"
)

// Options controls a single bundling run.
type Options struct {
	// EntryPoint selects one declared entry point; empty selects all.
	EntryPoint string

	// DirtyBuild reuses previously downloaded artifacts instead of cleaning
	// and re-fetching the packages directory.
	DirtyBuild bool

	// KeepArchive leaves the intermediate archive next to each executable.
	KeepArchive bool
}

// Bundler drives the pipeline. Steps run sequentially: a hash mismatch or a
// coverage hole must abort the run before anything is packaged.
type Bundler struct {
	fetcher   ports.ArtifactFetcher
	hasher    ports.ArtifactHasher
	builder   ports.ProjectBuilder
	packager  ports.Packager
	workspace ports.Workspace
	store     ports.BundleInfoStore
	telemetry ports.Telemetry
	logger    ports.Logger
}

// New creates a Bundler from its collaborators.
func New(
	fetcher ports.ArtifactFetcher,
	hasher ports.ArtifactHasher,
	builder ports.ProjectBuilder,
	packager ports.Packager,
	workspace ports.Workspace,
	store ports.BundleInfoStore,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Bundler {
	return &Bundler{
		fetcher:   fetcher,
		hasher:    hasher,
		builder:   builder,
		packager:  packager,
		workspace: workspace,
		store:     store,
		telemetry: telemetry,
		logger:    logger,
	}
}

// Run executes one bundling run for the given project and locked graph.
func (b *Bundler) Run(ctx context.Context, project *domain.Project, ix *domain.Index, opts Options) error {
	entries, err := project.SelectEntryPoints(opts.EntryPoint)
	if err != nil {
		return err
	}

	// Coverage is validated up front so a hole in the lockfile aborts the
	// run before any download happens.
	closures := make(map[string]map[string]*domain.Package, len(project.Groups))
	for group, direct := range project.Groups {
		closure, err := ix.Closure(direct)
		if err != nil {
			return zerr.With(err, "group", group)
		}
		closures[group] = closure
	}
	if err := domain.ValidateCoverage(ix, closures); err != nil {
		return err
	}

	bundled := domain.SortedByName(closures[domain.BundleGroup])
	if opts.DirtyBuild {
		b.logger.Info("dirty build, reusing previously downloaded packages")
	} else {
		if err := b.workspace.CleanPackages(); err != nil {
			return err
		}
		if err := b.fetchAll(ctx, bundled); err != nil {
			return err
		}
	}

	projectArtifact, err := b.builder.BuildArtifact(ctx, ".", b.workspace.DistDir())
	if err != nil {
		return err
	}

	artifacts, err := b.workspace.Artifacts()
	if err != nil {
		return err
	}
	artifacts = append(artifacts, filepath.Join(b.workspace.DistDir(), projectArtifact))

	for _, entry := range entries {
		if err := b.packageEntry(ctx, project, entry, artifacts, opts.KeepArchive); err != nil {
			return err
		}
	}
	return nil
}

// fetchAll downloads and verifies every bundled package, in name order.
func (b *Bundler) fetchAll(ctx context.Context, pkgs []*domain.Package) error {
	for i, pkg := range pkgs {
		b.logger.Info(fmt.Sprintf("(%d/%d) downloading %s", i+1, len(pkgs), pkg.Spec()))
		_, vertex := b.telemetry.Record(ctx, "download "+pkg.Spec())
		err := b.fetchAndVerify(ctx, pkg)
		vertex.Complete(err)
		if err != nil {
			return err
		}
	}
	return nil
}

// fetchAndVerify downloads one package's artifact and checks it against the
// locked artifact set before it may enter a bundle.
func (b *Bundler) fetchAndVerify(ctx context.Context, pkg *domain.Package) error {
	file, err := b.fetcher.Fetch(ctx, pkg, b.workspace.PackagesDir())
	if err != nil {
		return err
	}

	hash, err := b.hasher.Hash(ctx, filepath.Join(b.workspace.PackagesDir(), file))
	if err != nil {
		return err
	}

	if !pkg.AcceptsArtifact(file, hash) {
		herr := zerr.With(domain.ErrHashMismatch, "package", pkg.Spec())
		herr = zerr.With(herr, "file", file)
		return zerr.With(herr, "hash", hash)
	}
	return nil
}

// packageEntry produces one executable and records it in the bundle store.
func (b *Bundler) packageEntry(ctx context.Context, project *domain.Project, entry string, artifacts []string, keepArchive bool) error {
	_, vertex := b.telemetry.Record(ctx, "package "+entry)

	identity := domain.NewIdentity(entry)
	manifest := domain.NewManifest(entry, project.Constraint, identity, artifacts)

	exePath, digest, err := b.packager.Package(manifest, b.workspace.DistDir(), keepArchive)
	if err != nil {
		vertex.Complete(err)
		return err
	}

	err = b.store.Put(domain.BundleInfo{
		Entry:         entry,
		Identity:      identity,
		Executable:    exePath,
		ArchiveDigest: digest,
		Timestamp:     time.Now(),
	})
	vertex.Complete(err)
	if err != nil {
		return err
	}

	b.logger.Info("wrote " + exePath)
	return nil
}
