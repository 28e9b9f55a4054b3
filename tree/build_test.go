// Package tree_test exercises shape construction against the documented
// budget and layout invariants.
package tree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bundlebench/appgen/tree"
)

// buildParams is the grid of configurations used by the property tests.
var buildParams = []tree.Params{
	{ModuleCount: 1, Flatness: 5},
	{ModuleCount: 2, Flatness: 0},
	{ModuleCount: 10, DirectoryCount: 2, DynamicImportCount: 3, Flatness: 1},
	{ModuleCount: 57, DirectoryCount: 7, DynamicImportCount: 9, Flatness: 3},
	{ModuleCount: 100, DirectoryCount: 10, DynamicImportCount: 20, Flatness: 5},
	{ModuleCount: 1000, DirectoryCount: 50, Flatness: 5},
}

func TestBuild_RejectsZeroModuleCount(t *testing.T) {
	t.Parallel()

	_, err := tree.Build(tree.Params{})
	require.ErrorIs(t, err, tree.ErrModuleCount)
}

// TestBuild_SingleModule covers the smallest tree: the root alone, forced to
// be a leaf, with no nested directories and no hydration marker.
func TestBuild_SingleModule(t *testing.T) {
	t.Parallel()

	s, err := tree.Build(tree.Params{ModuleCount: 1, Flatness: 5})
	require.NoError(t, err)
	require.Len(t, s.Nodes, 1)
	require.Equal(t, tree.RootPath, s.Root().Path)
	require.Equal(t, tree.Leaf, s.Root().Kind)
	require.False(t, s.Root().Hydration)
	require.Empty(t, s.Dirs)
}

// TestBuild_FourModulesFlatSiblings pins the documented scenario: with
// ModuleCount=4, DirectoryCount=0, DynamicImportCount=0, Flatness=5 the root
// is a container with three leaf siblings in src/, suffix-disambiguated.
func TestBuild_FourModulesFlatSiblings(t *testing.T) {
	t.Parallel()

	s, err := tree.Build(tree.Params{ModuleCount: 4, Flatness: 5})
	require.NoError(t, err)

	require.Equal(t, []string{
		"src/triangle.jsx",
		"src/triangle_1.jsx",
		"src/triangle_2.jsx",
		"src/triangle_3.jsx",
	}, s.Paths())

	require.Equal(t, tree.Container, s.Root().Kind)
	require.True(t, s.Root().Hydration)
	require.Equal(t, "./triangle_", s.Root().ImportPrefix)
	for i, ci := range s.Root().Children {
		require.Equal(t, tree.Leaf, s.Nodes[ci].Kind)
		require.Equal(t, tree.StaticImport, s.Root().Imports[i])
	}
	require.Empty(t, s.Dirs)
}

// TestBuild_Determinism builds every configuration twice and requires
// structurally identical shapes.
func TestBuild_Determinism(t *testing.T) {
	t.Parallel()

	for _, p := range buildParams {
		a, err := tree.Build(p)
		require.NoError(t, err)
		b, err := tree.Build(p)
		require.NoError(t, err)
		require.Equal(t, a, b, "params %+v", p)
	}
}

// TestBuild_BudgetConservation checks total = 1 + 3·containers and the
// bounded rounding slack of the saturating final expansion.
func TestBuild_BudgetConservation(t *testing.T) {
	t.Parallel()

	for _, p := range buildParams {
		s, err := tree.Build(p)
		require.NoError(t, err)

		containers := 0
		for i := range s.Nodes {
			if s.Nodes[i].Kind == tree.Container {
				containers++
			}
		}
		total := uint(len(s.Nodes))
		require.Equal(t, uint(1+3*containers), total, "params %+v", p)
		require.GreaterOrEqual(t, total, p.ModuleCount, "params %+v", p)
		require.LessOrEqual(t, total, p.ModuleCount+2, "slack above 2 for %+v", p)
	}
}

// TestBuild_DirectoryAndDynamicBudgets verifies neither scarce budget is
// overdrawn.
func TestBuild_DirectoryAndDynamicBudgets(t *testing.T) {
	t.Parallel()

	for _, p := range buildParams {
		s, err := tree.Build(p)
		require.NoError(t, err)

		require.LessOrEqual(t, uint(len(s.Dirs)), p.DirectoryCount, "params %+v", p)

		var dynamic uint
		for i := range s.Nodes {
			if s.Nodes[i].Kind != tree.Container {
				continue
			}
			for _, m := range s.Nodes[i].Imports {
				if m == tree.DynamicImport {
					dynamic++
				}
			}
		}
		require.LessOrEqual(t, dynamic, p.DynamicImportCount, "params %+v", p)
	}
}

// TestBuild_HydrationUniqueness asserts exactly one hydration marker per
// shape, on the first container processed (the root for ModuleCount > 1).
func TestBuild_HydrationUniqueness(t *testing.T) {
	t.Parallel()

	for _, p := range buildParams {
		s, err := tree.Build(p)
		require.NoError(t, err)

		marked := 0
		for i := range s.Nodes {
			if s.Nodes[i].Hydration {
				marked++
				require.Equal(t, tree.Container, s.Nodes[i].Kind)
			}
		}
		if p.ModuleCount == 1 {
			require.Zero(t, marked, "params %+v", p)
			continue
		}
		require.Equal(t, 1, marked, "params %+v", p)
		require.True(t, s.Root().Hydration, "params %+v", p)
	}
}

// TestBuild_PathsUniqueAndRooted checks path uniqueness, the fixed root path,
// and that every module lives under src/.
func TestBuild_PathsUniqueAndRooted(t *testing.T) {
	t.Parallel()

	for _, p := range buildParams {
		s, err := tree.Build(p)
		require.NoError(t, err)

		require.Equal(t, tree.RootPath, s.Nodes[0].Path)
		seen := make(map[string]struct{}, len(s.Nodes))
		for i := range s.Nodes {
			path := s.Nodes[i].Path
			_, dup := seen[path]
			require.False(t, dup, "duplicate path %s for %+v", path, p)
			seen[path] = struct{}{}
			require.Regexp(t, `^src/.+\.jsx$`, path)
		}
	}
}
