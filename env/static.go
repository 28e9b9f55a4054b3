package env

import "maps"

// Static is a fixed in-memory variable map, handy as a base layer and in
// tests.
type Static map[string]string

// ReadAll returns a copy of the map.
func (s Static) ReadAll() (map[string]string, error) {
	return maps.Clone(map[string]string(s)), nil
}
