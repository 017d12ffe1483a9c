package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePolyline(t *testing.T) {
	// Reference example from the encoded polyline format docs.
	line := DecodePolyline("_p~iF~ps|U_ulLnnqC_mqNvxq`@")
	require.Len(t, line, 3)

	assert.InDelta(t, -120.2, line[0][0], 1e-9)
	assert.InDelta(t, 38.5, line[0][1], 1e-9)
	assert.InDelta(t, -120.95, line[1][0], 1e-9)
	assert.InDelta(t, 40.7, line[1][1], 1e-9)
	assert.InDelta(t, -126.453, line[2][0], 1e-9)
	assert.InDelta(t, 43.252, line[2][1], 1e-9)
}

func TestDecodePolylineEmpty(t *testing.T) {
	assert.Empty(t, DecodePolyline(""))
}

func TestShortUUID(t *testing.T) {
	a := ShortUUID()
	b := ShortUUID()
	assert.Len(t, a, 22)
	assert.NotEqual(t, a, b)
}

func TestGenerateUUIDWithLength(t *testing.T) {
	id, err := GenerateUUIDWithLength(8)
	require.NoError(t, err)
	assert.Len(t, id, 8)

	_, err = GenerateUUIDWithLength(100)
	assert.Error(t, err)
}
