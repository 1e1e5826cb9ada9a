// Package rotation computes the angles used to orient holds on the wall.
//
// Angles are in degrees, counter-clockwise, 0° pointing toward increasing X
// and 90° toward increasing Y (upward on the wall).
package rotation

import (
	"math"

	"github.com/benoitkugler/speedwall/wallcoord"
	"github.com/benoitkugler/speedwall/wallgeom"
)

// RestAngles provides the direction a hold type points to when drawn
// without rotation.
type RestAngles interface {
	RestAngle(holdType string) (float64, error)
}

// Angle returns the direction from from to to, normalized to [0, 360).
// It is 0 when both points are equal.
func Angle(from, to wallgeom.Point) float64 {
	dx, dy := to.X-from.X, to.Y-from.Y
	if dx == 0 && dy == 0 {
		return 0
	}
	deg := math.Atan2(dy, dx) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 { // -tiny + 360 rounds to 360
		deg -= 360
	}
	return deg
}

// HoldRotation returns the rotation to apply to a hold of type holdType
// placed at pos so that it points toward orient, possibly on another panel.
// Both points share laneOffset, so the result does not depend on it.
//
// The result is the raw difference between the target angle and the rest
// angle: it is not normalized and may be negative or exceed 360.
func HoldRotation(sys *wallcoord.System, posPanel wallgeom.PanelID, pos wallgeom.InsertPosition,
	orientPanel wallgeom.PanelID, orient wallgeom.InsertPosition,
	holdType string, laneOffset int, rest RestAngles,
) (float64, error) {
	from, err := wallgeom.InsertPoint(sys, posPanel, pos, laneOffset)
	if err != nil {
		return 0, err
	}
	to, err := wallgeom.InsertPoint(sys, orientPanel, orient, laneOffset)
	if err != nil {
		return 0, err
	}
	restAngle, err := rest.RestAngle(holdType)
	if err != nil {
		return 0, err
	}
	return Angle(from, to) - restAngle, nil
}

// Rotation is HoldRotation with the orientation target on the same panel.
func Rotation(sys *wallcoord.System, panel wallgeom.PanelID, pos, orient wallgeom.InsertPosition,
	holdType string, laneOffset int, rest RestAngles,
) (float64, error) {
	return HoldRotation(sys, panel, pos, panel, orient, holdType, laneOffset, rest)
}
