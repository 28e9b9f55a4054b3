package env

import (
	"os"
	"strings"
)

// CommandLine reads the environment the process was started with.
type CommandLine struct{}

// ReadAll snapshots the current process environment under ProcessLock.
func (CommandLine) ReadAll() (map[string]string, error) {
	ProcessLock.Lock()
	environ := os.Environ()
	ProcessLock.Unlock()

	out := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		out[k] = v
	}
	return out, nil
}
