package maputil

import (
	"reflect"
	"strings"
	"testing"

	"github.com/mitchellh/mapstructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRecord struct {
	Name     string   `json:"name"`
	Quantity int      `json:"quantity"`
	Colors   []string `json:"colors"`
}

func TestDecode_WeakTypesAndSlices(t *testing.T) {
	t.Parallel()

	got, err := Decode[sampleRecord](map[string]any{
		"name":     "Aquarium Lamp",
		"quantity": "12",
		"colors":   " Red, ,Blue ,",
		"unknown":  "ignored",
	})

	require.NoError(t, err)
	assert.Equal(t, "Aquarium Lamp", got.Name)
	assert.Equal(t, 12, got.Quantity)
	assert.Equal(t, []string{"Red", "Blue"}, got.Colors)
}

func TestDecode_EmptySliceSource(t *testing.T) {
	t.Parallel()

	got, err := Decode[sampleRecord](map[string]any{"colors": "   "})

	require.NoError(t, err)
	assert.Empty(t, got.Colors)
}

func TestDecode_WithoutTrimKeepsRawParts(t *testing.T) {
	t.Parallel()

	got, err := Decode[sampleRecord](map[string]any{"colors": "a, b"}, WithTrimSpace(false))

	require.NoError(t, err)
	assert.Equal(t, []string{"a", " b"}, got.Colors)
}

func TestDecode_ErrorUnused(t *testing.T) {
	t.Parallel()

	_, err := Decode[sampleRecord](map[string]any{"typo": 1}, WithErrorUnused(true))
	assert.ErrorContains(t, err, "typo")
}

func TestDecode_ExtraHookRunsFirst(t *testing.T) {
	t.Parallel()

	upper := mapstructure.DecodeHookFunc(func(f, t reflect.Type, data any) (any, error) {
		if f.Kind() == reflect.String && t.Kind() == reflect.String {
			return strings.ToUpper(data.(string)), nil
		}
		return data, nil
	})

	got, err := Decode[sampleRecord](map[string]any{"name": "lamp"}, WithDecodeHook(upper))

	require.NoError(t, err)
	assert.Equal(t, "LAMP", got.Name)
}

func TestDecodeTo_NilOutput(t *testing.T) {
	t.Parallel()

	var out *sampleRecord
	assert.Error(t, DecodeTo(map[string]any{}, out))
}
