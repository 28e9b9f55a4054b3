// SPDX-License-Identifier: MIT
// Package: appgen/emit
//
// emit.go — the tree-writing and bootstrap-writing passes.
//
// Contract:
//   - Tree writes modules in breadth-first discovery order; Bootstrap writes
//     a fixed, enumerable file set. Both are sequential: the shape is already
//     fixed, so writes are independent per path, but the reference
//     implementation stays single-threaded.
//   - All shape paths are slash-relative; translation to OS paths happens
//     here and nowhere else.

package emit

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bundlebench/appgen/render"
	"github.com/bundlebench/appgen/tree"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Tree renders and writes every module of s under root, creating the src
// directory and the shape's nested subdirectories first. It returns the
// absolute module paths in discovery order.
func Tree(root string, s *tree.Shape) ([]string, error) {
	if err := makeDir("src directory", filepath.Join(root, tree.SrcDir)); err != nil {
		return nil, err
	}
	for _, d := range s.Dirs {
		if err := makeDir("module subdirectory "+d, filepath.Join(root, filepath.FromSlash(d))); err != nil {
			return nil, err
		}
	}

	modules := make([]string, 0, len(s.Nodes))
	for i := range s.Nodes {
		n := &s.Nodes[i]

		var content []byte
		var name string
		var err error
		if n.Kind == tree.Container {
			name = "container module " + n.Path
			content, err = render.Container(n)
		} else {
			name = "leaf module " + n.Path
			content, err = render.Leaf(n)
		}
		if err != nil {
			return nil, err
		}

		abs := filepath.Join(root, filepath.FromSlash(n.Path))
		if err := writeFile(name, abs, content); err != nil {
			return nil, err
		}
		modules = append(modules, abs)
	}
	return modules, nil
}

// Bootstrap writes the fixed auxiliary file set that wraps the tree into a
// runnable fixture. The manifest is emitted only when withManifest is set;
// reactVersion pins the UI library in it.
func Bootstrap(root, reactVersion string, withManifest bool) error {
	for _, d := range []string{
		filepath.Join(root, "src", "pages"),
		filepath.Join(root, "src", "app", "client"),
		filepath.Join(root, "public"),
	} {
		if err := makeDir("bootstrap directory", d); err != nil {
			return err
		}
	}

	fixed := []struct {
		name    string
		path    string
		content string
	}{
		{"detector component", filepath.Join(root, filepath.FromSlash(tree.DetectorPath)), render.DetectorJSX},
		{"bootstrap entry", filepath.Join(root, "src", "index.jsx"), render.IndexJSX},
		{"bootstrap page", filepath.Join(root, "src", "pages", "page.jsx"), render.PageJSX},
		{"bootstrap static page", filepath.Join(root, "src", "pages", "static.jsx"), render.StaticPageJSX},
		{"bootstrap app page", filepath.Join(root, "src", "app", "page.jsx"), render.AppPageJSX},
		{"app client detector", filepath.Join(root, "src", "app", "client", "detector.jsx"), render.DetectorJSX},
		{"app client page", filepath.Join(root, "src", "app", "client", "page.jsx"), render.AppClientPageJSX},
		{"bootstrap layout", filepath.Join(root, "src", "layout.jsx"), render.LayoutJSX},
		{"bootstrap html", filepath.Join(root, "src", "index.html"), render.IndexHTML},
		{"public html", filepath.Join(root, "public", "index.html"), render.PublicHTML},
		{"vite server", filepath.Join(root, "vite-server.mjs"), render.ViteServerMJS},
		{"vite server entry", filepath.Join(root, "src", "vite-entry-server.jsx"), render.ViteEntryServerJSX},
		{"vite client entry", filepath.Join(root, "src", "vite-entry-client.jsx"), render.ViteEntryClientJSX},
	}
	for _, f := range fixed {
		if err := writeFile(f.name, f.path, []byte(f.content)); err != nil {
			return err
		}
	}

	if withManifest {
		pkg, err := render.PackageJSON(reactVersion)
		if err != nil {
			return err
		}
		if err := writeFile("package.json", filepath.Join(root, "package.json"), pkg); err != nil {
			return err
		}
	}
	return nil
}

// makeDir creates path (and parents), attaching the artifact name and the OS
// cause to the sentinel.
func makeDir(name, path string) error {
	if err := os.MkdirAll(path, dirPerm); err != nil {
		return fmt.Errorf("creating %s: %w: %w", name, ErrCreateDir, err)
	}
	return nil
}

// writeFile writes content to path, attaching the artifact name and the OS
// cause to the sentinel.
func writeFile(name, path string, content []byte) error {
	if err := os.WriteFile(path, content, filePerm); err != nil {
		return fmt.Errorf("writing %s: %w: %w", name, ErrWriteFile, err)
	}
	return nil
}
