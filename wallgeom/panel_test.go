package wallgeom

import (
	"errors"
	"testing"

	"github.com/benoitkugler/speedwall/wallerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePanelID(t *testing.T) {
	for in, want := range map[string]PanelID{
		"SX1":  {Left, 1},
		"DX2":  {Right, 2},
		"DX10": {Right, 10},
	} {
		got, err := ParsePanelID(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
		assert.Equal(t, in, got.String())
	}

	for _, bad := range []string{"", "SX", "SX0", "SX11", "DX01", "XX1", "sx1", "DX1a", "DX+1"} {
		_, err := ParsePanelID(bad)
		assert.True(t, errors.Is(err, wallerr.ErrInvalidFormat), bad)
	}
}

func TestParseInsertPosition(t *testing.T) {
	for in, want := range map[string]InsertPosition{
		"F10": {"F", 10},
		"C1":  {"C", 1},
		"M9":  {"M", 9},
	} {
		got, err := ParseInsertPosition(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
		assert.Equal(t, in, got.String())
	}

	for _, bad := range []string{"", "F", "F0", "F11", "f1", "1F", "F-1", "FF1"} {
		_, err := ParseInsertPosition(bad)
		assert.True(t, errors.Is(err, wallerr.ErrInvalidFormat), bad)
	}
}

func TestParseSide(t *testing.T) {
	s, err := ParseSide("DX")
	require.NoError(t, err)
	assert.Equal(t, Right, s)
	_, err = ParseSide("RX")
	assert.True(t, errors.Is(err, wallerr.ErrInvalidFormat))
}
