package wallgeom

import (
	"errors"
	"testing"

	"github.com/benoitkugler/speedwall/wallcoord"
	"github.com/benoitkugler/speedwall/wallerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanelSize(t *testing.T) {
	assert.Equal(t, 1500., PanelWidth)
	assert.Equal(t, 1500., PanelHeight)
	assert.Equal(t, 3000., LaneWidth)
}

func TestColumnX(t *testing.T) {
	for _, tc := range []struct {
		column string
		side   Side
		lane   int
		want   float64
	}{
		{"A", Left, 0, 125},
		{"M", Left, 0, 1375},
		{"A", Right, 0, 1625},
		{"M", Right, 1, 5875},
		{"F", Left, 2, 6750},
	} {
		x, err := ColumnX(wallcoord.IFSC, tc.column, tc.side, tc.lane)
		require.NoError(t, err)
		assert.Equal(t, tc.want, x, "%s %s lane %d", tc.column, tc.side, tc.lane)
	}

	_, err := ColumnX(wallcoord.IFSC, "J", Left, 0)
	assert.True(t, errors.Is(err, wallerr.ErrInvalidColumn))

	x, err := ColumnX(wallcoord.Alpha, "J", Left, 0)
	require.NoError(t, err)
	assert.Equal(t, 1250., x)
}

func TestRowY(t *testing.T) {
	assert.Equal(t, 187.5, RowY(1, 1))
	assert.Equal(t, 1312.5, RowY(10, 1))
	assert.Equal(t, 2812.5, RowY(10, 2))
	assert.Equal(t, 13687.5, RowY(1, 10))
}

func TestInsertPoint(t *testing.T) {
	p, err := InsertPoint(wallcoord.IFSC, PanelID{Right, 2}, InsertPosition{"F", 10}, 0)
	require.NoError(t, err)
	assert.Equal(t, Point{2250, 2812.5}, p)

	p, err = InsertPoint(wallcoord.IFSC, PanelID{Left, 1}, InsertPosition{"C", 1}, 1)
	require.NoError(t, err)
	assert.Equal(t, Point{3375, 187.5}, p)
}

func TestWallDimensions(t *testing.T) {
	assert.Equal(t, Dimensions{Width: 6000, Height: 15000}, WallDimensions(2, 10))
	assert.Equal(t, Dimensions{}, WallDimensions(0, 0))
}

func TestPointArithmetic(t *testing.T) {
	p := Point{1.25, -3}
	q := Point{0.5, 7.5}
	assert.Equal(t, Point{1.75, 4.5}, p.Add(q))
	assert.Equal(t, Point{0.75, -10.5}, p.Sub(q))
}
