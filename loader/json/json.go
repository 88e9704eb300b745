package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotMapping is returned when the document root is not an object.
var ErrNotMapping = errors.New("document root is not an object")

// Decoder implements loader.Decoder for JSON data.
type Decoder struct{}

// NewDecoder creates a new JSON decoder instance.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode parses JSON data into a nested mapping. An empty document yields an
// empty mapping; a document whose root is an array or scalar yields ErrNotMapping.
func (d *Decoder) Decode(data []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}

	var document any

	err := json.Unmarshal(data, &document)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	switch root := document.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return root, nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrNotMapping, document)
	}
}
