// SPDX-License-Identifier: MIT
// Package: appgen
//
// api.go — thin public entry point for fixture generation.
//
// Design contract (strict):
//   - One orchestrator: Build(cfg, opts...). Resolves the target, computes
//     the shape, writes the tree, writes the bootstrap set — in that order.
//   - The whole pass is synchronous and single-threaded; the budget state
//     has one owner and no lock.
//   - Any error aborts immediately; already-written files are not rolled
//     back (the partial directory is disposable). A temp directory that was
//     never handed to the caller is the one exception: it is removed.
//   - Determinism: identical Config ⇒ byte-identical output trees.

package appgen

import (
	"fmt"
	"os"

	"github.com/bundlebench/appgen/emit"
	"github.com/bundlebench/appgen/tree"
)

// DefaultReactVersion pins the UI library in generated manifests when the
// manifest config does not say otherwise.
const DefaultReactVersion = "^18.2.0"

// ManifestConfig controls the generated package.json.
type ManifestConfig struct {
	// ReactVersion is the version constraint for react and react-dom.
	// Empty means DefaultReactVersion.
	ReactVersion string
}

// Config are the immutable inputs of one generation pass.
type Config struct {
	// ModuleCount is the total number of tree modules, root included (≥ 1).
	ModuleCount uint
	// DirectoryCount caps nested subdirectory creation.
	DirectoryCount uint
	// DynamicImportCount caps lazy child references.
	DynamicImportCount uint
	// Flatness widens the leaf-classification window; larger values produce
	// longer container chains before branches terminate.
	Flatness uint
	// Manifest, when non-nil, requests a package.json in the fixture root.
	Manifest *ManifestConfig
}

// DefaultConfig mirrors the canonical benchmark fixture: a thousand modules,
// fifty directories, no lazy imports, flatness five, manifest included.
func DefaultConfig() Config {
	return Config{
		ModuleCount:    1000,
		DirectoryCount: 50,
		Flatness:       5,
		Manifest:       &ManifestConfig{ReactVersion: DefaultReactVersion},
	}
}

// App is the handle to a generated fixture. The caller owns the directory
// lifetime; Close releases it only when appgen created it as a temp dir.
type App struct {
	path    string
	modules []string
	temp    bool
}

// Path returns the fixture root directory.
func (a *App) Path() string { return a.path }

// Modules returns the absolute tree module paths in breadth-first discovery
// order. The first entry is always the root module.
func (a *App) Modules() []string { return a.modules }

// Close removes the fixture directory if it was generator-created; for an
// explicit target it is a no-op, the caller owns that directory.
func (a *App) Close() error {
	if !a.temp {
		return nil
	}
	return os.RemoveAll(a.path)
}

// Build generates a fixture for cfg. Without WithTarget it creates a fresh
// temporary directory whose lifetime is bound to the returned handle.
func Build(cfg Config, opts ...Option) (*App, error) {
	bo := resolveOptions(opts...)

	target := bo.target
	temp := false
	if target == "" {
		dir, err := os.MkdirTemp("", "appgen-")
		if err != nil {
			return nil, fmt.Errorf("Build: creating temp dir: %w: %w", emit.ErrCreateDir, err)
		}
		target, temp = dir, true
	} else if err := os.MkdirAll(target, 0o755); err != nil {
		return nil, fmt.Errorf("Build: creating target dir: %w: %w", emit.ErrCreateDir, err)
	}

	app, err := buildInto(cfg, target, temp)
	if err != nil && temp {
		// The caller never saw the handle, so the temp dir would leak.
		_ = os.RemoveAll(target)
	}
	return app, err
}

func buildInto(cfg Config, target string, temp bool) (*App, error) {
	shape, err := tree.Build(tree.Params{
		ModuleCount:        cfg.ModuleCount,
		DirectoryCount:     cfg.DirectoryCount,
		DynamicImportCount: cfg.DynamicImportCount,
		Flatness:           cfg.Flatness,
	})
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	modules, err := emit.Tree(target, shape)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	version := DefaultReactVersion
	if cfg.Manifest != nil && cfg.Manifest.ReactVersion != "" {
		version = cfg.Manifest.ReactVersion
	}
	if err := emit.Bootstrap(target, version, cfg.Manifest != nil); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return &App{path: target, modules: modules, temp: temp}, nil
}
