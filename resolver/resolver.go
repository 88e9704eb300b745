package resolver

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultDelimiter is the path segment separator used when no delimiter option is given.
const DefaultDelimiter = "."

// ErrInvalidPath is returned when a path string is empty or contains empty segments.
var ErrInvalidPath = errors.New("invalid path")

// ErrNotFound is returned when a key or index is absent at some segment of the path.
var ErrNotFound = errors.New("path not found")

// ErrTypeMismatch is returned when a segment's expected container kind does not match
// the actual node, or when a sequence segment is not a valid non-negative integer.
var ErrTypeMismatch = errors.New("type mismatch")

// Resolver navigates nested structures (string-keyed mappings, sequences, scalars)
// addressed by delimiter-separated path strings.
type Resolver struct {
	delimiter string
}

// Option defines a function type for configuring a Resolver.
type Option func(*Resolver)

// WithDelimiter sets the path segment delimiter. Defaults to ".".
func WithDelimiter(delimiter string) Option {
	return func(r *Resolver) {
		r.delimiter = delimiter
	}
}

// New creates a Resolver with the given options applied.
func New(opts ...Option) *Resolver {
	resolver := &Resolver{
		delimiter: DefaultDelimiter,
	}

	for _, apply := range opts {
		apply(resolver)
	}

	return resolver
}

// Split splits a path string into its segments.
// Returns ErrInvalidPath for an empty path or for leading, trailing,
// or consecutive delimiters.
func (r *Resolver) Split(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	segments := strings.Split(path, r.delimiter)

	for _, segment := range segments {
		if segment == "" {
			return nil, fmt.Errorf("%w: empty segment in %q", ErrInvalidPath, path)
		}
	}

	return segments, nil
}

// Get resolves the path inside root and returns the value found there.
// Absent keys or indices yield ErrNotFound; a scalar in the middle of the
// path or an invalid sequence index yields ErrTypeMismatch.
func (r *Resolver) Get(root any, path string) (any, error) {
	segments, err := r.Split(path)
	if err != nil {
		return nil, err
	}

	node := root

	for _, segment := range segments {
		node, err = descend(node, segment, path)
		if err != nil {
			return nil, err
		}
	}

	return node, nil
}

// GetOr behaves like Get but returns fallback when the path is absent.
// A container kind mismatch still returns ErrTypeMismatch: absence and type
// mismatch are distinct failure kinds, and only absence yields the fallback.
func (r *Resolver) GetOr(root any, path string, fallback any) (any, error) {
	value, err := r.Get(root, path)

	switch {
	case err == nil:
		return value, nil
	case errors.Is(err, ErrNotFound):
		return fallback, nil
	default:
		return nil, err
	}
}

// Set writes value at the path inside root, creating missing intermediate
// mappings along the way. Sequences are never auto-created: an intermediate
// segment addressing a sequence slot that does not exist yields ErrTypeMismatch.
// The structure is mutated in place and returned for chaining.
func (r *Resolver) Set(root any, path string, value any) (any, error) {
	segments, err := r.Split(path)
	if err != nil {
		return nil, err
	}

	node := root

	for _, segment := range segments[:len(segments)-1] {
		switch container := node.(type) {
		case map[string]any:
			if container == nil {
				return nil, fmt.Errorf("%w: cannot write into nil mapping at segment %q of %q", ErrTypeMismatch, segment, path)
			}

			child, exists := container[segment]
			if !exists {
				child = map[string]any{}
				container[segment] = child
			}

			node = child
		case []any:
			index, indexErr := sequenceIndex(segment, path)
			if indexErr != nil {
				return nil, indexErr
			}

			if index >= len(container) {
				return nil, fmt.Errorf("%w: sequence slot %d does not exist in %q", ErrTypeMismatch, index, path)
			}

			node = container[index]
		default:
			return nil, fmt.Errorf("%w: segment %q of %q addresses a scalar", ErrTypeMismatch, segment, path)
		}
	}

	last := segments[len(segments)-1]

	switch container := node.(type) {
	case map[string]any:
		if container == nil {
			return nil, fmt.Errorf("%w: cannot write into nil mapping at segment %q of %q", ErrTypeMismatch, last, path)
		}

		container[last] = value
	case []any:
		index, indexErr := sequenceIndex(last, path)
		if indexErr != nil {
			return nil, indexErr
		}

		if index >= len(container) {
			return nil, fmt.Errorf("%w: %q (index %d out of range)", ErrNotFound, path, index)
		}

		container[index] = value
	default:
		return nil, fmt.Errorf("%w: segment %q of %q addresses a scalar", ErrTypeMismatch, last, path)
	}

	return root, nil
}

// Has reports whether the path resolves inside root. Absence and container kind
// mismatches both report false; only a malformed path string returns an error.
func (r *Resolver) Has(root any, path string) (bool, error) {
	_, err := r.Get(root, path)

	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrTypeMismatch):
		return false, nil
	default:
		return false, err
	}
}

// Delete removes the key or index addressed by path and returns the structure.
// Removing a sequence element shifts subsequent indices down by one, so
// index-based paths are not stable across deletes. An absent parent or final
// segment yields ErrNotFound.
func (r *Resolver) Delete(root any, path string) (any, error) {
	segments, err := r.Split(path)
	if err != nil {
		return nil, err
	}

	return deleteAt(root, segments, path)
}

func deleteAt(node any, segments []string, path string) (any, error) {
	segment := segments[0]

	switch container := node.(type) {
	case map[string]any:
		child, exists := container[segment]
		if !exists {
			return nil, fmt.Errorf("%w: %q (segment %q)", ErrNotFound, path, segment)
		}

		if len(segments) == 1 {
			delete(container, segment)

			return container, nil
		}

		updated, err := deleteAt(child, segments[1:], path)
		if err != nil {
			return nil, err
		}

		container[segment] = updated

		return container, nil
	case []any:
		index, err := sequenceIndex(segment, path)
		if err != nil {
			return nil, err
		}

		if index >= len(container) {
			return nil, fmt.Errorf("%w: %q (index %d out of range)", ErrNotFound, path, index)
		}

		if len(segments) == 1 {
			return append(container[:index], container[index+1:]...), nil
		}

		updated, err := deleteAt(container[index], segments[1:], path)
		if err != nil {
			return nil, err
		}

		container[index] = updated

		return container, nil
	default:
		return nil, fmt.Errorf("%w: segment %q of %q addresses a scalar", ErrTypeMismatch, segment, path)
	}
}

// descend returns the child of node addressed by segment. A mapping node uses the
// segment as a key, even when it looks numeric; a sequence node requires the
// segment to parse as a non-negative integer index.
func descend(node any, segment, path string) (any, error) {
	switch container := node.(type) {
	case map[string]any:
		child, exists := container[segment]
		if !exists {
			return nil, fmt.Errorf("%w: %q (segment %q)", ErrNotFound, path, segment)
		}

		return child, nil
	case []any:
		index, err := sequenceIndex(segment, path)
		if err != nil {
			return nil, err
		}

		if index >= len(container) {
			return nil, fmt.Errorf("%w: %q (index %d out of range)", ErrNotFound, path, index)
		}

		return container[index], nil
	default:
		return nil, fmt.Errorf("%w: segment %q of %q addresses a scalar", ErrTypeMismatch, segment, path)
	}
}

func sequenceIndex(segment, path string) (int, error) {
	index, err := strconv.Atoi(segment)
	if err != nil || index < 0 {
		return 0, fmt.Errorf("%w: %q is not a valid sequence index in %q", ErrTypeMismatch, segment, path)
	}

	return index, nil
}
