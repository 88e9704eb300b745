// Package config provides a path-addressable configuration store with
// defaults layering.
//
// A Store owns two nested mappings: the user values and an optional set of
// defaults. Values are addressed by delimiter-separated path strings
// (default delimiter "."):
//
//	store, err := config.New(
//	    map[string]any{"db": map[string]any{"host": "localhost"}},
//	    config.WithDefaults(map[string]any{
//	        "db": map[string]any{"host": "example.com", "port": 5432},
//	    }),
//	)
//	host, err := store.Get("db.host") // "localhost", from the user values
//	port, err := store.Get("db.port") // 5432, from the defaults
//
// Reads fall back to the defaults only on absence; a malformed user value
// (wrong container kind along the path) is reported as an error rather than
// silently masked by a default. Writes and deletes only ever touch the user
// values. Map returns the fully merged view as a deep copy.
//
// # Loading from files
//
// FromFile reads a YAML or JSON file once, at construction time, through the
// loader package; no I/O happens afterwards:
//
//	store, err := config.FromFile("config.yaml",
//	    config.WithDefaultsFile("defaults.yaml"),
//	)
//
// # Fx integration
//
// Module provides a named *Store to an Fx container, so multiple
// configurations can coexist in one application.
//
// A Store is single-threaded by design: concurrent mutation requires external
// serialization by the caller.
package config
