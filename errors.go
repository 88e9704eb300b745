package config

import "errors"

// ErrKeyNotFound is returned by Get when a path resolves in neither the user
// values nor the defaults and no fallback was supplied.
var ErrKeyNotFound = errors.New("configuration key not found")

// ErrEmptyName is returned when an Fx module is created with an empty name.
var ErrEmptyName = errors.New("module name must not be empty")
