package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/0xalexb/hjarta-config/loader"
	"github.com/0xalexb/hjarta-config/resolver"
)

// Store holds a user configuration and an optional defaults configuration and
// exposes path-based access over both. Reads consult the user values first
// and fall back to defaults; writes only ever touch the user values.
//
// A Store is not safe for concurrent mutation; callers needing concurrent
// access must serialize externally.
type Store struct {
	values   map[string]any
	defaults map[string]any
	resolver *resolver.Resolver
	log      *slog.Logger
}

// New creates a Store from an in-memory nested mapping. A nil mapping is
// treated as empty. Defaults supplied via WithDefaults or WithDefaultsFile
// are stored separately and never mutated by Get, Set, or Delete.
func New(values map[string]any, opts ...Option) (*Store, error) {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	if values == nil {
		values = map[string]any{}
	}

	defaults := options.Defaults

	if options.DefaultsPath != "" {
		loaded, err := loader.Load(options.DefaultsPath)
		if err != nil {
			return nil, fmt.Errorf("loading defaults: %w", err)
		}

		defaults = loaded
	}

	var resolverOpts []resolver.Option

	if options.Delimiter != "" {
		resolverOpts = append(resolverOpts, resolver.WithDelimiter(options.Delimiter))
	}

	log := options.Logger
	if log == nil {
		log = slog.Default()
	}

	return &Store{
		values:   values,
		defaults: defaults,
		resolver: resolver.New(resolverOpts...),
		log:      log,
	}, nil
}

// FromFile creates a Store from a configuration file. The file is read
// exactly once, here; no I/O happens in later Store operations.
func FromFile(fpath string, opts ...Option) (*Store, error) {
	values, err := loader.Load(fpath)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	return New(values, opts...)
}

// Get returns the value at path, consulting the user values first and the
// defaults on absence. Returns ErrKeyNotFound when neither layer resolves the
// path. A type mismatch in the user values propagates immediately and is
// never masked by a default.
func (s *Store) Get(path string) (any, error) {
	s.log.Debug("getting configuration key", slog.String("path", path))

	value, err := s.resolver.Get(s.values, path)
	if err == nil {
		return value, nil
	}

	if !errors.Is(err, resolver.ErrNotFound) {
		return nil, err
	}

	value, defaultsErr := s.resolver.Get(s.defaults, path)
	if defaultsErr == nil {
		return value, nil
	}

	if !errors.Is(defaultsErr, resolver.ErrNotFound) {
		return nil, defaultsErr
	}

	return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, path)
}

// GetOr behaves like Get but returns fallback instead of ErrKeyNotFound when
// the path is absent from both layers. Type mismatches and malformed paths
// still return an error.
func (s *Store) GetOr(path string, fallback any) (any, error) {
	value, err := s.Get(path)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return fallback, nil
		}

		return nil, err
	}

	return value, nil
}

// Set writes value at path inside the user values, creating missing
// intermediate mappings. Defaults are never touched.
func (s *Store) Set(path string, value any) error {
	s.log.Debug("setting configuration key", slog.String("path", path))

	_, err := s.resolver.Set(s.values, path, value)

	return err
}

// Delete removes the key or index at path from the user values. A path only
// present in the defaults is reported as absent, since defaults are read-only.
func (s *Store) Delete(path string) error {
	s.log.Debug("deleting configuration key", slog.String("path", path))

	updated, err := s.resolver.Delete(s.values, path)
	if err != nil {
		return err
	}

	if mapping, ok := updated.(map[string]any); ok {
		s.values = mapping
	}

	return nil
}

// Has reports whether path resolves in either the user values or the
// defaults. Malformed paths report false.
func (s *Store) Has(path string) bool {
	found, err := s.resolver.Has(s.values, path)
	if err != nil {
		return false
	}

	if found {
		return true
	}

	found, err = s.resolver.Has(s.defaults, path)

	return err == nil && found
}

// Map returns a deep, independent copy of the defaults overlaid with the user
// values: mapping nodes merge key by key, while sequences and scalars from
// the user values replace the corresponding default wholesale. Mutating the
// returned structure does not affect the store.
func (s *Store) Map() map[string]any {
	return mergeMappings(s.defaults, s.values)
}
