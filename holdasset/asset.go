// Provides parsing of the SVG drawings of climbing holds.
// A hold asset is reduced to what a wall renderer needs: the colored shape,
// the decoration around it, the point matching the bolt insert, the canvas
// size and the areas where a label may be written.
package holdasset

import (
	"math"

	"github.com/srwiley/rasterx"
)

// Bounds defines an axis aligned box, in canvas coordinates.
type Bounds struct{ X, Y, W, H float64 }

// Dimensions is the size of the asset canvas.
type Dimensions struct{ Width, Height float64 }

// Point is a position in canvas coordinates.
type Point struct{ X, Y float64 }

// Direction selects a label zone around the hold.
type Direction uint8

const (
	Top Direction = iota
	Right
	Bottom
	Left
)

func (d Direction) String() string {
	switch d {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	default:
		return "<unknown Direction>"
	}
}

// parseDirection is the inverse of String.
func parseDirection(s string) (Direction, bool) {
	for _, d := range [...]Direction{Top, Right, Bottom, Left} {
		if d.String() == s {
			return d, true
		}
	}
	return 0, false
}

// Element is a visual SVG element kept verbatim so that
// a renderer can emit it again.
type Element struct {
	Tag    string
	ID     string
	Markup string // the serialized element, its own transform included

	// Transform accumulates the transforms of the element's ancestors.
	Transform rasterx.Matrix2D

	full rasterx.Matrix2D // Transform followed by the element own transform
}

// Asset holds data from a parsed hold SVG.
type Asset struct {
	Shape      *Element  // nil when no element is tagged as the shape
	Auxiliary  []Element // in document order
	Anchor     Point     // center of the insert marker
	Canvas     Dimensions
	ViewBox    Bounds
	LabelZones map[Direction]Bounds

	// PreRotation is the rotation, in degrees, already applied
	// to the drawing of the shape.
	PreRotation float64
}

// Clone returns a deep copy of a.
func (a *Asset) Clone() *Asset {
	out := *a
	if a.Shape != nil {
		shape := *a.Shape
		out.Shape = &shape
	}
	out.Auxiliary = append([]Element(nil), a.Auxiliary...)
	out.LabelZones = make(map[Direction]Bounds, len(a.LabelZones))
	for d, b := range a.LabelZones {
		out.LabelZones[d] = b
	}
	return &out
}

// rotationOf returns the rotation angle of m, in degrees.
func rotationOf(m rasterx.Matrix2D) float64 {
	if m.B == 0 && m.A >= 0 {
		return 0
	}
	return math.Atan2(m.B, m.A) * 180 / math.Pi
}

// boundsOf returns the axis aligned box containing the rectangle
// (x, y, w, h) mapped through m.
func boundsOf(m rasterx.Matrix2D, x, y, w, h float64) Bounds {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range [4][2]float64{{x, y}, {x + w, y}, {x, y + h}, {x + w, y + h}} {
		px, py := m.Transform(c[0], c[1])
		minX, maxX = math.Min(minX, px), math.Max(maxX, px)
		minY, maxY = math.Min(minY, py), math.Max(maxY, py)
	}
	return Bounds{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
