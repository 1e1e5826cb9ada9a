// Package wallgeom converts panel insert slots into absolute wall coordinates.
//
// The wall is made of square panels, two per lane (left SX, right DX),
// stacked bottom to top. Each panel carries an 11 × 10 grid of inserts.
// X grows to the right and Y grows upward, in millimeters, from the bottom
// left corner of the first lane. No rounding is ever applied.
package wallgeom

import (
	"github.com/benoitkugler/speedwall/wallcoord"
	"github.com/benoitkugler/speedwall/wallerr"
)

const (
	ColumnPitch      = 125.
	RowPitch         = 125.
	HorizontalMargin = 125.
	VerticalMargin   = 187.5

	ColumnCount = wallcoord.Columns
	RowCount    = 10
	PanelCount  = 10

	PanelWidth  = ColumnPitch*(ColumnCount-1) + 2*HorizontalMargin
	PanelHeight = RowPitch*(RowCount-1) + 2*VerticalMargin
	LaneWidth   = 2 * PanelWidth
)

// Point is a position on the wall, in millimeters.
type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Dimensions is a width × height extent in millimeters.
type Dimensions struct {
	Width, Height float64
}

func sideOffset(side Side) float64 {
	if side == Right {
		return PanelWidth
	}
	return 0
}

// ColumnX returns the abscissa of column (in sys) on the given side,
// shifted by laneOffset lanes.
func ColumnX(sys *wallcoord.System, column string, side Side, laneOffset int) (float64, error) {
	index := sys.Index(column)
	if index < 0 {
		return 0, wallerr.New(wallerr.ErrInvalidColumn, "column %q not in system %s", column, sys)
	}
	return float64(laneOffset)*LaneWidth + sideOffset(side) + float64(index)*ColumnPitch + HorizontalMargin, nil
}

// RowY returns the ordinate of row on the panel with the given stacking number.
func RowY(row, panelNumber int) float64 {
	return float64(panelNumber-1)*PanelHeight + VerticalMargin + float64(row-1)*RowPitch
}

// InsertPoint returns the absolute position of an insert.
func InsertPoint(sys *wallcoord.System, panel PanelID, pos InsertPosition, laneOffset int) (Point, error) {
	x, err := ColumnX(sys, pos.Column, panel.Side, laneOffset)
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: RowY(pos.Row, panel.Number)}, nil
}

// WallDimensions returns the size of a wall of lanes lanes, panelsHeight panels high.
func WallDimensions(lanes, panelsHeight int) Dimensions {
	return Dimensions{Width: float64(lanes) * LaneWidth, Height: float64(panelsHeight) * PanelHeight}
}
