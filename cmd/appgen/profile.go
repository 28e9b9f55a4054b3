package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/bundlebench/appgen"
)

// profile is the optional TOML configuration file. Every field is optional;
// set fields override the built-in defaults, and explicit CLI flags override
// both (defaults < file < flags).
type profile struct {
	Modules        *uint  `toml:"modules"`
	Directories    *uint  `toml:"directories"`
	DynamicImports *uint  `toml:"dynamic_imports"`
	Flatness       *uint  `toml:"flatness"`
	ReactVersion   string `toml:"react_version"`
	NoManifest     bool   `toml:"no_manifest"`
	Target         string `toml:"target"`
}

func loadProfile(path string) (*profile, error) {
	var p profile
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	return &p, nil
}

// apply overlays the profile's set fields onto cfg and target.
func (p *profile) apply(cfg *appgen.Config, target *string) {
	if p.Modules != nil {
		cfg.ModuleCount = *p.Modules
	}
	if p.Directories != nil {
		cfg.DirectoryCount = *p.Directories
	}
	if p.DynamicImports != nil {
		cfg.DynamicImportCount = *p.DynamicImports
	}
	if p.Flatness != nil {
		cfg.Flatness = *p.Flatness
	}
	if p.NoManifest {
		cfg.Manifest = nil
	} else if p.ReactVersion != "" {
		cfg.Manifest = &appgen.ManifestConfig{ReactVersion: p.ReactVersion}
	}
	if p.Target != "" {
		*target = p.Target
	}
}
