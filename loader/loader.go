package loader

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	jsondecoder "github.com/0xalexb/hjarta-config/loader/json"
	yamldecoder "github.com/0xalexb/hjarta-config/loader/yaml"
)

// ErrPathIsDirectory is returned when the path provided to Load points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// ErrUnsupportedFormat is returned when no decoder is registered for the file extension.
var ErrUnsupportedFormat = errors.New("unsupported configuration format")

// Decoder defines an interface for turning raw document bytes into a nested mapping.
type Decoder interface {
	Decode(data []byte) (map[string]any, error)
}

// Loader reads configuration files and decodes them into nested mappings,
// selecting the decoder by file extension.
type Loader struct {
	decoders map[string]Decoder
	log      *slog.Logger
}

// Option defines a function type for configuring a Loader.
type Option func(*Loader)

// WithDecoder registers a decoder for the given file extension (including the
// leading dot, e.g. ".toml"). Registering an extension again replaces the
// built-in decoder for it.
func WithDecoder(ext string, decoder Decoder) Option {
	return func(l *Loader) {
		l.decoders[strings.ToLower(ext)] = decoder
	}
}

// WithLogger sets the logger used for file-read log lines. Defaults to slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		l.log = logger
	}
}

// New creates a Loader with YAML (.yaml, .yml) and JSON (.json) decoders
// built in and the given options applied.
func New(opts ...Option) *Loader {
	yamlDec := yamldecoder.NewDecoder()

	loader := &Loader{
		decoders: map[string]Decoder{
			".yaml": yamlDec,
			".yml":  yamlDec,
			".json": jsondecoder.NewDecoder(),
		},
		log: slog.Default(),
	}

	for _, apply := range opts {
		apply(loader)
	}

	return loader
}

// Load reads the file at fpath and decodes it into a nested mapping.
// Returns an error if the file cannot be read, the path points to a
// directory, the extension has no registered decoder, or decoding fails.
func (l *Loader) Load(fpath string) (map[string]any, error) {
	cleanPath := filepath.Clean(fpath)

	stat, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
	}

	ext := strings.ToLower(filepath.Ext(cleanPath))

	decoder, registered := l.decoders[ext]
	if !registered {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
	}

	l.log.Info("reading configuration", slog.String("path", cleanPath), slog.String("format", ext))

	values, err := decoder.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", cleanPath, err)
	}

	return values, nil
}

// Load reads and decodes the file at fpath using a Loader with the built-in decoders.
func Load(fpath string) (map[string]any, error) {
	return New().Load(fpath)
}
