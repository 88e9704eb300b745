// Package loader reads configuration files into nested mappings.
//
// A Loader owns a registry of Decoder implementations keyed by file
// extension; YAML (.yaml, .yml) and JSON (.json) come built in, and callers
// can register additional formats:
//
//	l := loader.New(loader.WithDecoder(".toml", tomlDecoder))
//	values, err := l.Load("/etc/app/config.toml")
//
// Loading happens exactly once per call; nothing is cached or watched. The
// resulting map[string]any is handed to the store, which performs no further
// I/O.
//
// Error Handling:
//   - Use errors.Is(err, loader.ErrPathIsDirectory) for directory paths
//   - Use errors.Is(err, loader.ErrUnsupportedFormat) for unknown extensions
//   - Decode failures wrap the decoder package's sentinels (e.g. yaml.ErrNotMapping)
package loader
