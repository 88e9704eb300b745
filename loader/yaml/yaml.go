package yaml

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// ErrNotMapping is returned when the document root is not a mapping.
var ErrNotMapping = errors.New("document root is not a mapping")

// Decoder implements loader.Decoder for YAML data.
type Decoder struct{}

// NewDecoder creates a new YAML decoder instance.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode parses YAML data into a nested mapping. An empty document yields an
// empty mapping; a document whose root is a sequence or scalar yields ErrNotMapping.
func (d *Decoder) Decode(data []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}

	var document any

	err := yaml.Unmarshal(data, &document)
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
