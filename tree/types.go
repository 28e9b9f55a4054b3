// SPDX-License-Identifier: MIT
// Package: appgen/tree
//
// types.go — the shape data model: parameters in, node arena out.

package tree

// Fixed layout anchors. All node paths are slash-separated and relative to
// the application root; the writer translates them to OS paths.
const (
	// SrcDir is the directory holding every generated module.
	SrcDir = "src"
	// RootPath is the fixed path of the tree root, regardless of Params.
	RootPath = "src/triangle.jsx"
	// DetectorPath is the fixed path of the instrumentation component that
	// every module imports.
	DetectorPath = "src/detector.jsx"

	// Fanout is the number of children of every container node.
	Fanout = 3

	moduleExt = ".jsx"
)

// Params are the four scalar budgets of one generation pass. Immutable for
// the run.
type Params struct {
	// ModuleCount is the total number of tree modules to create, root
	// included. Must be ≥ 1.
	ModuleCount uint
	// DirectoryCount caps how many containers may nest their children one
	// directory deeper.
	DirectoryCount uint
	// DynamicImportCount caps how many child references render as lazy
	// imports.
	DynamicImportCount uint
	// Flatness widens the modulus window of the leaf rule: larger values
	// yield longer container chains before a branch terminates.
	Flatness uint
}

// Kind classifies a node as terminal or composed.
type Kind uint8

const (
	// Leaf is a terminal node with zero children.
	Leaf Kind = iota
	// Container is a composed node with exactly Fanout children.
	Container
)

// String implements fmt.Stringer for diagnostics.
func (k Kind) String() string {
	if k == Container {
		return "container"
	}
	return "leaf"
}

// ImportMode selects how a container references one child.
type ImportMode uint8

const (
	// StaticImport renders a plain module import plus direct usage.
	StaticImport ImportMode = iota
	// DynamicImport renders a lazy import behind a suspense boundary.
	DynamicImport
)

// Node is one module of the tree. Children and Imports are meaningful only
// when Kind == Container.
type Node struct {
	// Path is the module file path, slash-separated, relative to the app
	// root. Unique within a shape.
	Path string
	// Kind classifies the node.
	Kind Kind
	// Children holds arena indices of the three children, in order.
	Children [Fanout]int
	// Imports holds the per-child reference mode, aligned with Children.
	Imports [Fanout]ImportMode
	// ImportPrefix is the child import-specifier prefix; appending the
	// 1-based child position yields the full specifier (no file extension).
	ImportPrefix string
	// Hydration marks the single node whose instrumentation props carry the
	// hydration flag — the first container processed.
	Hydration bool
}

// Shape is the fully computed tree: an arena of nodes in breadth-first
// discovery order plus the nested directories to create, in decision order.
type Shape struct {
	// Nodes is the node arena; Nodes[0] is the root.
	Nodes []Node
	// Dirs lists nested subdirectories (slash-relative) that the writer must
	// create before writing the modules under them.
	Dirs []string
}

// Root returns the root node.
func (s *Shape) Root() *Node { return &s.Nodes[0] }

// Paths returns the module paths in breadth-first discovery order.
func (s *Shape) Paths() []string {
	out := make([]string, len(s.Nodes))
	for i := range s.Nodes {
		out[i] = s.Nodes[i].Path
	}
	return out
}
