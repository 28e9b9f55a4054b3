package env

import (
	"fmt"
	"maps"
	"os"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/joho/godotenv"
)

// parseCacheSize bounds the per-process dotenv parse cache. Generators are
// often invoked many times against the same handful of files.
const parseCacheSize = 64

// parseCache memoizes parsed dotenv files keyed by path|size|mtime, so an
// unchanged file is parsed at most once per process.
var parseCache, _ = lru.New[string, map[string]string](parseCacheSize)

// Dotenv layers the variables of a dotenv file over a prior source. A missing
// file is not an error: the prior variables pass through unchanged.
type Dotenv struct {
	// Path is the dotenv file to read.
	Path string
	// Prior is the underlying source to layer over; nil means start empty.
	Prior Env
}

// ReadAll returns the prior variables overlaid with the file's entries.
func (d Dotenv) ReadAll() (map[string]string, error) {
	var out map[string]string
	if d.Prior != nil {
		prior, err := d.Prior.ReadAll()
		if err != nil {
			return nil, err
		}
		out = prior
	}
	if out == nil {
		out = make(map[string]string)
	}

	parsed, err := parseDotenv(d.Path)
	if err != nil {
		return nil, err
	}
	maps.Copy(out, parsed)
	return out, nil
}

// parseDotenv reads and parses path through the per-process cache. The
// returned map is a copy; callers may mutate it.
func parseDotenv(path string) (map[string]string, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("env: stat %s: %w", path, err)
	}

	key := fmt.Sprintf("%s|%d|%d", path, info.Size(), info.ModTime().UnixNano())
	if cached, ok := parseCache.Get(key); ok {
		return maps.Clone(cached), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("env: open %s: %w", path, err)
	}
	defer f.Close()

	parsed, err := godotenv.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("env: parse %s: %w", path, err)
	}
	parseCache.Add(key, parsed)
	return maps.Clone(parsed), nil
}
