package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TypeMap maps virtual type names to concrete type names. It is built
// during parsing and consulted only at emission time.
type TypeMap map[string]string

// Set records a mapping, last write wins.
func (m TypeMap) Set(key, typ string) {
	m[key] = typ
}

// Merge copies o into m, o winning on shared keys.
func (m TypeMap) Merge(o TypeMap) {
	for k, v := range o {
		m[k] = v
	}
}

// Resolve returns the concrete type for a virtual name, or the name
// itself when no mapping exists.
func (m TypeMap) Resolve(name string) string {
	if t, ok := m[name]; ok {
		return t
	}
	return name
}

// LoadTypeMap reads a YAML mapping of virtual type names to concrete
// type names, as accepted by the -typemap option.
func LoadTypeMap(path string) (TypeMap, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResource, err)
	}
	res := TypeMap{}
	if err := yaml.Unmarshal(d, &res); err != nil {
		return nil, fmt.Errorf("could not parse type map %q: %w", path, err)
	}
	return res, nil
}
