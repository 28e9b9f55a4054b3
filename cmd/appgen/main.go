// Command appgen generates a deterministic synthetic web application for
// bundler benchmarking: a budgeted tree of JSX modules plus the fixed
// bootstrap files that make it runnable.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bundlebench/appgen"
)

// Overridable via -ldflags "-X main.version=…".
var version = "dev"

func main() {
	modules := flag.Uint("modules", 1000, "total number of tree modules, root included")
	directories := flag.Uint("directories", 50, "maximum number of nested subdirectories")
	dynamicImports := flag.Uint("dynamic-imports", 0, "maximum number of lazy child imports")
	flatness := flag.Uint("flatness", 5, "leaf-classification window; larger = longer container chains")
	target := flag.String("target", "", "output directory (empty = fresh temp dir)")
	reactVersion := flag.String("react-version", appgen.DefaultReactVersion, "react/react-dom version pinned in package.json")
	noManifest := flag.Bool("no-manifest", false, "skip writing package.json")
	configPath := flag.String("config", "", "TOML profile; explicit flags override it")
	quiet := flag.Bool("q", false, "suppress the result summary")
	showVersion := flag.Bool("version", false, "print version and exit")

	flag.Usage = func() {
		name := filepath.Base(os.Args[0])
		fmt.Fprintf(os.Stdout, `
%s — generates a deterministic synthetic app fixture for bundler benchmarks.

Usage:
  %s [-modules N] [-directories N] [-dynamic-imports N] [-flatness N]
     [-target DIR] [-config FILE] [-react-version V] [-no-manifest] [-q]

Flags:
`, name, name)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stdout, `
Examples:
  %[1]s -modules 1000 -directories 50 -target ./fixture
  %[1]s -config bench.toml -dynamic-imports 25
`, name)
	}

	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		return
	}

	cfg := appgen.DefaultConfig()
	targetDir := ""

	if *configPath != "" {
		p, err := loadProfile(*configPath)
		if err != nil {
			fail(err)
		}
		p.apply(&cfg, &targetDir)
	}

	// Explicit flags win over both defaults and the profile.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "modules":
			cfg.ModuleCount = *modules
		case "directories":
			cfg.DirectoryCount = *directories
		case "dynamic-imports":
			cfg.DynamicImportCount = *dynamicImports
		case "flatness":
			cfg.Flatness = *flatness
		case "react-version":
			cfg.Manifest = &appgen.ManifestConfig{ReactVersion: *reactVersion}
		case "target":
			targetDir = *target
		}
	})
	if *noManifest {
		cfg.Manifest = nil
	}

	var opts []appgen.Option
	if targetDir != "" {
		opts = append(opts, appgen.WithTarget(targetDir))
	}

	app, err := appgen.Build(cfg, opts...)
	if err != nil {
		fail(err)
	}

	if !*quiet {
		fmt.Printf("generated %d modules in %s\n", len(app.Modules()), app.Path())
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "appgen: %v\n", err)
	os.Exit(1)
}
