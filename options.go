package config

import "log/slog"

// Options holds construction settings for a Store.
type Options struct {
	Defaults     map[string]any
	DefaultsPath string
	Delimiter    string
	Logger       *slog.Logger
}

// Option defines a function type for applying Store construction options.
type Option func(*Options)

// WithDefaults supplies an in-memory defaults mapping. Defaults are consulted
// by Get and Has when a path is absent from the user values, and are never
// written to.
func WithDefaults(defaults map[string]any) Option {
	return func(opts *Options) {
		opts.Defaults = defaults
	}
}

// WithDefaultsFile supplies a defaults mapping loaded from a file at
// construction time. Takes precedence over WithDefaults when both are given.
func WithDefaultsFile(fpath string) Option {
	return func(opts *Options) {
		opts.DefaultsPath = fpath
	}
}

// WithDelimiter sets the path segment delimiter. Defaults to ".".
// Keys containing the delimiter character cannot be addressed; pick a
// delimiter that does not occur in any key.
func WithDelimiter(delimiter string) Option {
	return func(opts *Options) {
		opts.Delimiter = delimiter
	}
}

// WithLogger sets the logger used for debug-level access log lines.
// Defaults to slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}
