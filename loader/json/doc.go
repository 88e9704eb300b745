// Package json provides a JSON decoder implementation for the loader package.
//
// Documents decode into map[string]any trees via encoding/json, so numbers
// arrive as float64 per the standard library's interface decoding rules.
// A document whose root is not an object is rejected with ErrNotMapping.
package json
