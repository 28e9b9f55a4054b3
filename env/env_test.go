package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommandLine_ReadAll(t *testing.T) {
	t.Setenv("APPGEN_ENV_TEST_KEY", "value-1")

	all, err := CommandLine{}.ReadAll()
	require.NoError(t, err)
	require.Equal(t, "value-1", all["APPGEN_ENV_TEST_KEY"])
}

// TestRead_DelegatesToReadAll checks the single-key lookup contract,
// including the presence flag.
func TestRead_DelegatesToReadAll(t *testing.T) {
	t.Setenv("APPGEN_ENV_TEST_KEY", "value-2")

	v, ok, err := Read(CommandLine{}, "APPGEN_ENV_TEST_KEY")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "value-2", v)

	_, ok, err = Read(CommandLine{}, "APPGEN_ENV_TEST_MISSING")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestDotenv_OverlaysPrior(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("SHARED=from-file\nONLY_FILE=yes\n"), 0o644))

	prior := Static{"SHARED": "from-prior", "ONLY_PRIOR": "yes"}
	all, err := Dotenv{Path: path, Prior: prior}.ReadAll()
	require.NoError(t, err)

	require.Equal(t, "from-file", all["SHARED"])
	require.Equal(t, "yes", all["ONLY_FILE"])
	require.Equal(t, "yes", all["ONLY_PRIOR"])
}

func TestDotenv_MissingFilePassesPriorThrough(t *testing.T) {
	t.Parallel()

	prior := Static{"A": "1"}
	all, err := Dotenv{Path: filepath.Join(t.TempDir(), "absent.env"), Prior: prior}.ReadAll()
	require.NoError(t, err)
	require.Equal(t, map[string]string{"A": "1"}, all)
}

// TestDotenv_CacheReturnsCopies ensures mutating a returned map cannot
// poison the parse cache for later readers.
func TestDotenv_CacheReturnsCopies(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("KEY=original\n"), 0o644))

	d := Dotenv{Path: path}
	first, err := d.ReadAll()
	require.NoError(t, err)
	first["KEY"] = "mutated"

	second, err := d.ReadAll()
	require.NoError(t, err)
	require.Equal(t, "original", second["KEY"])
}

// TestDotenv_SeesFileChanges: the cache key carries size and mtime, so a
// rewritten file is re-parsed.
func TestDotenv_SeesFileChanges(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("KEY=before\n"), 0o644))

	d := Dotenv{Path: path}
	all, err := d.ReadAll()
	require.NoError(t, err)
	require.Equal(t, "before", all["KEY"])

	// Different length changes the cache key even at mtime granularity.
	require.NoError(t, os.WriteFile(path, []byte("KEY=after-change\n"), 0o644))
	all, err = d.ReadAll()
	require.NoError(t, err)
	require.Equal(t, "after-change", all["KEY"])
}

func TestFilter_PrefixSubset(t *testing.T) {
	t.Parallel()

	inner := Static{"APP_A": "1", "APP_B": "2", "OTHER": "3"}
	all, err := Filter{Inner: inner, Prefix: "APP_"}.ReadAll()
	require.NoError(t, err)
	require.Equal(t, map[string]string{"APP_A": "1", "APP_B": "2"}, all)
}
