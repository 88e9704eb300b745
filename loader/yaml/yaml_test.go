package yaml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecoder_Decode(t *testing.T) {
	t.Parallel()

	decoder := NewDecoder()

	data := []byte(`
database:
  host: localhost
  port: 5432
servers:
  - alpha
  - beta
debug: true
`)

	values, err := decoder.Decode(data)
	require.NoError(t, err)

	database, ok := values["database"].(map[string]any)
	require.True(t, ok, "expected database to decode as map[string]any")
	assert.Equal(t, "localhost", database["host"])
	assert.EqualValues(t, 5432, database["port"])

	servers, ok := values["servers"].([]any)
	require.True(t, ok, "expected servers to decode as []any")
	assert.Equal(t, []any{"alpha", "beta"}, servers)

	assert.Equal(t, true, values["debug"])
}

func TestDecoder_Decode_EmptyDocument(t *testing.T) {
	t.Parallel()

	decoder := NewDecoder()

	tests := []struct {
		name string
		data []byte
	}{
		{
			name: "no bytes",
			data: []byte{},
		},
		{
			name: "whitespace only",
			data: []byte("\n  \n"),
		},
	}

	for _, testInfo := range tests {
		testInfo := testInfo
		t.Run(testInfo.name, func(t *testing.T) {
			t.Parallel()

			values, err := decoder.Decode(testInfo.data)

			require.NoError(t, err)
			assert.NotNil(t, values)
			assert.Empty(t, values)
		})
	}
}

func TestDecoder_Decode_NonMappingRoot(t *testing.T) {
	t.Parallel()

	decoder := NewDecoder()

	tests := []struct {
		name string
		data []byte
	}{
		{
			name: "sequence root",
			data: []byte("- one\n- two\n"),
		},
		{
			name: "scalar root",
			data: []byte("just a string\n"),
		},
	}

	for _, testInfo := range tests {
		testInfo := testInfo
		t.Run(testInfo.name, func(t *testing.T) {
			t.Parallel()

			values, err := decoder.Decode(testInfo.data)

			require.Error(t, err)
			require.ErrorIs(t, err, ErrNotMapping)
			assert.Nil(t, values)
		})
	}
}

func TestDecoder_Decode_InvalidYAML(t *testing.T) {
	t.Parallel()

	decoder := NewDecoder()

	data := []byte(`
invalid: yaml: content: [
`)

	values, err := decoder.Decode(data)

	require.Error(t, err)
	assert.Nil(t, values)
}
