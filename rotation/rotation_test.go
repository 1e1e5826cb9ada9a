package rotation

import (
	"errors"
	"math"
	"testing"

	"github.com/benoitkugler/speedwall/wallcoord"
	"github.com/benoitkugler/speedwall/wallerr"
	"github.com/benoitkugler/speedwall/wallgeom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type restTable map[string]float64

func (r restTable) RestAngle(holdType string) (float64, error) {
	a, ok := r[holdType]
	if !ok {
		return 0, wallerr.New(wallerr.ErrUnknownHoldType, "%s", holdType)
	}
	return a, nil
}

var rests = restTable{"BIG": 90, "FOOT": 0, "SKEW": 45}

func TestAngle(t *testing.T) {
	o := wallgeom.Point{}
	for _, tc := range []struct {
		to   wallgeom.Point
		want float64
	}{
		{wallgeom.Point{X: 1}, 0},
		{wallgeom.Point{Y: 1}, 90},
		{wallgeom.Point{X: -1}, 180},
		{wallgeom.Point{Y: -1}, 270},
		{wallgeom.Point{X: 1, Y: 1}, 45},
		{wallgeom.Point{X: 1, Y: -1}, 315},
	} {
		assert.InDelta(t, tc.want, Angle(o, tc.to), 1e-12, "%v", tc.to)
	}
}

func TestAngleDegenerate(t *testing.T) {
	for _, p := range []wallgeom.Point{{}, {X: 12.5, Y: -3}, {X: 1e9, Y: 1e9}} {
		assert.Equal(t, 0., Angle(p, p))
	}
}

func TestAngleRange(t *testing.T) {
	for i := 0; i < 720; i++ {
		theta := float64(i) * math.Pi / 360
		a := Angle(wallgeom.Point{}, wallgeom.Point{X: math.Cos(theta), Y: math.Sin(theta)})
		assert.GreaterOrEqual(t, a, 0.)
		assert.Less(t, a, 360.)
	}
}

func TestAngleTranslationInvariant(t *testing.T) {
	from, to := wallgeom.Point{X: 125, Y: 187.5}, wallgeom.Point{X: 1625, Y: 437.5}
	ref := Angle(from, to)
	for _, d := range []wallgeom.Point{{X: 3000}, {Y: 1500}, {X: -42.25, Y: 17}} {
		assert.Equal(t, ref, Angle(from.Add(d), to.Add(d)))
	}
}

func TestRotationAtRest(t *testing.T) {
	panel := wallgeom.PanelID{Side: wallgeom.Left, Number: 1}
	// C2 is straight above C1: exactly the BIG rest direction.
	r, err := Rotation(wallcoord.IFSC, panel, wallgeom.InsertPosition{Column: "C", Row: 1},
		wallgeom.InsertPosition{Column: "C", Row: 2}, "BIG", 0, rests)
	require.NoError(t, err)
	assert.Equal(t, 0., r)
}

func TestHoldRotationNotNormalized(t *testing.T) {
	panel := wallgeom.PanelID{Side: wallgeom.Left, Number: 1}
	// pointing right (0°) with a rest angle of 90° gives -90, not 270.
	r, err := Rotation(wallcoord.IFSC, panel, wallgeom.InsertPosition{Column: "C", Row: 1},
		wallgeom.InsertPosition{Column: "D", Row: 1}, "BIG", 0, rests)
	require.NoError(t, err)
	assert.Equal(t, -90., r)

	// pointing down (270°) with a rest angle of 0° stays 270.
	r, err = Rotation(wallcoord.IFSC, panel, wallgeom.InsertPosition{Column: "C", Row: 5},
		wallgeom.InsertPosition{Column: "C", Row: 1}, "FOOT", 0, rests)
	require.NoError(t, err)
	assert.Equal(t, 270., r)
}

func TestHoldRotationCrossPanel(t *testing.T) {
	sx1 := wallgeom.PanelID{Side: wallgeom.Left, Number: 1}
	dx1 := wallgeom.PanelID{Side: wallgeom.Right, Number: 1}
	// M1 on SX1 to A1 on DX1: 250mm to the right.
	r, err := HoldRotation(wallcoord.IFSC, sx1, wallgeom.InsertPosition{Column: "M", Row: 1},
		dx1, wallgeom.InsertPosition{Column: "A", Row: 1}, "FOOT", 0, rests)
	require.NoError(t, err)
	assert.Equal(t, 0., r)
}

func TestHoldRotationLaneInvariant(t *testing.T) {
	sx2 := wallgeom.PanelID{Side: wallgeom.Left, Number: 2}
	dx3 := wallgeom.PanelID{Side: wallgeom.Right, Number: 3}
	pos := wallgeom.InsertPosition{Column: "B", Row: 7}
	orient := wallgeom.InsertPosition{Column: "H", Row: 2}
	ref, err := HoldRotation(wallcoord.IFSC, sx2, pos, dx3, orient, "SKEW", 0, rests)
	require.NoError(t, err)
	for lane := 1; lane < 5; lane++ {
		r, err := HoldRotation(wallcoord.IFSC, sx2, pos, dx3, orient, "SKEW", lane, rests)
		require.NoError(t, err)
		assert.Equal(t, ref, r, "lane %d", lane)
	}
}

func TestHoldRotationErrors(t *testing.T) {
	panel := wallgeom.PanelID{Side: wallgeom.Left, Number: 1}
	_, err := Rotation(wallcoord.IFSC, panel, wallgeom.InsertPosition{Column: "J", Row: 1},
		wallgeom.InsertPosition{Column: "C", Row: 2}, "BIG", 0, rests)
	assert.True(t, errors.Is(err, wallerr.ErrInvalidColumn))

	_, err = Rotation(wallcoord.IFSC, panel, wallgeom.InsertPosition{Column: "A", Row: 1},
		wallgeom.InsertPosition{Column: "C", Row: 2}, "NOPE", 0, rests)
	assert.True(t, errors.Is(err, wallerr.ErrUnknownHoldType))
}
