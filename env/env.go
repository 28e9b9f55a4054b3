package env

import "sync"

// Env is a source of environment variables.
type Env interface {
	// ReadAll returns the full variable map. Implementations return a map
	// the caller may mutate freely.
	ReadAll() (map[string]string, error)
}

// Read looks up a single variable by delegating to ReadAll. The second
// return reports whether the variable is present.
func Read(e Env, name string) (string, bool, error) {
	all, err := e.ReadAll()
	if err != nil {
		return "", false, err
	}
	v, ok := all[name]
	return v, ok, nil
}

// ProcessLock serializes access to the process environment. Hold it while
// mutating process variables (tests, mostly) so concurrent ReadAll calls on
// CommandLine observe a consistent snapshot.
var ProcessLock sync.Mutex
