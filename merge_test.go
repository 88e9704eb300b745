package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeMappings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		defaults map[string]any
		values   map[string]any
		expected map[string]any
	}{
		{
			name:     "empty both",
			defaults: map[string]any{},
			values:   map[string]any{},
			expected: map[string]any{},
		},
		{
			name:     "values only",
			defaults: map[string]any{},
			values:   map[string]any{"a": 1},
			expected: map[string]any{"a": 1},
		},
		{
			name:     "defaults only",
			defaults: map[string]any{"a": 1},
			values:   map[string]any{},
			expected: map[string]any{"a": 1},
		},
		{
			name:     "scalar override",
			defaults: map[string]any{"a": 1},
			values:   map[string]any{"a": 2},
			expected: map[string]any{"a": 2},
		},
		{
			name: "nested mappings merge key by key",
			defaults: map[string]any{
				"db": map[string]any{"host": "example.com", "port": 5432},
			},
			values: map[string]any{
				"db": map[string]any{"host": "localhost"},
			},
			expected: map[string]any{
				"db": map[string]any{"host": "localhost", "port": 5432},
			},
		},
		{
			name:     "sequence replaces default sequence",
			defaults: map[string]any{"hosts": []any{"a", "b", "c"}},
			values:   map[string]any{"hosts": []any{"x"}},
			expected: map[string]any{"hosts": []any{"x"}},
		},
		{
			name:     "mapping value replaces scalar default",
			defaults: map[string]any{"db": "legacy"},
			values:   map[string]any{"db": map[string]any{"host": "localhost"}},
			expected: map[string]any{"db": map[string]any{"host": "localhost"}},
		},
		{
			name:     "scalar value replaces mapping default",
			defaults: map[string]any{"db": map[string]any{"host": "example.com"}},
			values:   map[string]any{"db": "disabled"},
			expected: map[string]any{"db": "disabled"},
		},
		{
			name:     "nil defaults",
			defaults: nil,
			values:   map[string]any{"a": 1},
			expected: map[string]any{"a": 1},
		},
	}

	for _, testInfo := range tests {
		testInfo := testInfo
		t.Run(testInfo.name, func(t *testing.T) {
			t.Parallel()

			merged := mergeMappings(testInfo.defaults, testInfo.values)

			assert.Equal(t, testInfo.expected, merged)
		})
	}
}

func TestMergeMappings_DoesNotAliasInputs(t *testing.T) {
	t.Parallel()

	defaults := map[string]any{
		"db": map[string]any{"port": 5432},
	}
	values := map[string]any{
		"db":      map[string]any{"host": "localhost"},
		"servers": []any{"alpha"},
	}

	merged := mergeMappings(defaults, values)

	mergedDB := merged["db"].(map[string]any)
	mergedDB["port"] = 0
	merged["servers"].([]any)[0] = "mutated"

	assert.Equal(t, map[string]any{"db": map[string]any{"port": 5432}}, defaults)
	assert.Equal(t, []any{"alpha"}, values["servers"])
}

func TestDeepCopy(t *testing.T) {
	t.Parallel()

	original := map[string]any{
		"nested": map[string]any{"key": "value"},
		"list":   []any{1, 2, 3},
		"scalar": "text",
	}

	copied, ok := deepCopy(original).(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, original, copied)

	copied["nested"].(map[string]any)["key"] = "mutated"
	copied["list"].([]any)[0] = 0

	assert.Equal(t, "value", original["nested"].(map[string]any)["key"])
	assert.Equal(t, 1, original["list"].([]any)[0])
}
