// SPDX-License-Identifier: MIT
// Package: appgen/tree
//
// build.go — breadth-first shape construction.
//
// Contract:
//   - Seeds a FIFO queue with the fixed root; the root is pre-counted, so
//     RemainingModules starts at ModuleCount−1.
//   - A dequeued node is a leaf when the module budget is gone, or when the
//     queue is non-empty and (len(queue)+RemainingModules) falls on the
//     (Flatness+1) modulus window.
//   - Containers spend the directory budget before the module budget and the
//     dynamic-import budget after it, mirroring the opportunity counts each
//     decision sees.
//   - The hydration marker lands on the first container processed, once.
//
// Determinism:
//   - Children are derived and enqueued in fixed order (1,2,3); all decisions
//     are pure functions of the threaded budget.State.
//
// Complexity: O(ModuleCount) time and space.

package tree

import (
	"fmt"
	"path"
	"strings"

	"github.com/bundlebench/appgen/budget"
)

// Build computes the tree shape for p. It is pure: the only output is the
// returned Shape, and identical Params yield identical Shapes.
func Build(p Params) (*Shape, error) {
	if p.ModuleCount == 0 {
		return nil, fmt.Errorf("Build: ModuleCount=0: %w", ErrModuleCount)
	}

	st := &budget.State{
		RemainingModules:        p.ModuleCount - 1, // root pre-counted
		RemainingDirectories:    p.DirectoryCount,
		RemainingDynamicImports: p.DynamicImportCount,
	}

	shape := &Shape{Nodes: make([]Node, 0, p.ModuleCount)}
	shape.Nodes = append(shape.Nodes, Node{Path: RootPath})

	// Queue of arena indices; arena append order is discovery order, and for
	// a FIFO queue discovery order equals processing order.
	queue := []int{0}
	hydrationPlaced := false

	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]

		nodePath := shape.Nodes[idx].Path

		leaf := st.RemainingModules == 0 ||
			(len(queue) > 0 && (uint(len(queue))+st.RemainingModules)%(p.Flatness+1) == 0)
		if leaf {
			shape.Nodes[idx].Kind = Leaf
			continue
		}

		dir := path.Dir(nodePath)
		base := strings.TrimSuffix(path.Base(nodePath), moduleExt)

		// Nesting decision sees the number of container expansions the module
		// budget still affords.
		var childDir, childBase, prefix string
		if st.SpendDirectory(st.RemainingModules / Fanout) {
			sub := path.Join(dir, base)
			shape.Dirs = append(shape.Dirs, sub)
			childDir, childBase = sub, "triangle"
			prefix = "./" + base + "/triangle_"
		} else {
			childDir, childBase = dir, base
			prefix = "./" + base + "_"
		}

		var children [Fanout]int
		for i := 0; i < Fanout; i++ {
			child := Node{Path: fmt.Sprintf("%s/%s_%d%s", childDir, childBase, i+1, moduleExt)}
			shape.Nodes = append(shape.Nodes, child)
			ci := len(shape.Nodes) - 1
			children[i] = ci
			queue = append(queue, ci)
		}
		st.ConsumeModules()

		// Lazy-import decisions run against the post-expansion module budget,
		// with an index-dependent bump that favors earlier children.
		var imports [Fanout]ImportMode
		for i := uint(0); i < Fanout; i++ {
			if st.SpendDynamicImport(st.RemainingModules + (Fanout - 1 - i)) {
				imports[i] = DynamicImport
			}
		}

		n := &shape.Nodes[idx]
		n.Kind = Container
		n.Children = children
		n.Imports = imports
		n.ImportPrefix = prefix
		if !hydrationPlaced {
			n.Hydration = true
			hydrationPlaced = true
		}
	}

	return shape, nil
}
