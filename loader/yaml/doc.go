// Package yaml provides a YAML decoder implementation for the loader package.
//
// This package uses github.com/goccy/go-yaml to parse whole documents into
// map[string]any trees. Nested mappings decode as map[string]any and
// sequences as []any, which is the shape the resolver package navigates.
//
// Usage:
//
//	decoder := yaml.NewDecoder()
//	values, err := decoder.Decode(data)
//
// A document whose root is not a mapping (a bare scalar or sequence) is
// rejected with ErrNotMapping, since a configuration store needs string keys
// at the top level.
package yaml
