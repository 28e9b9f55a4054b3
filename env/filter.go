package env

import "strings"

// Filter exposes only the variables of an inner source whose names carry a
// fixed prefix.
type Filter struct {
	Inner  Env
	Prefix string
}

// ReadAll returns the prefixed subset of the inner variables.
func (f Filter) ReadAll() (map[string]string, error) {
	all, err := f.Inner.ReadAll()
	if err != nil {
		return nil, err
	}
	out := make(map[string]string)
	for k, v := range all {
		if strings.HasPrefix(k, f.Prefix) {
			out[k] = v
		}
	}
	return out, nil
}
