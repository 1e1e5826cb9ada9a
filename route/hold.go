// Package route turns reference route descriptions into positioned holds.
//
// A reference route is a named list of compact hold strings such as
//
//	DX2 BIG F10 DX1:C1 @M5 0.5
//
// that is: panel, hold type, insert position, orientation target (optionally
// on another panel), then an optional label and an optional scale, in any
// order. Generated routes are built by chaining segments of reference routes,
// each optionally re-anchored, recolored or moved to another lane.
package route

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/benoitkugler/speedwall/wallcoord"
	"github.com/benoitkugler/speedwall/wallerr"
	"github.com/benoitkugler/speedwall/wallgeom"
)

// Hold is one hold of a reference route.
type Hold struct {
	Panel       wallgeom.PanelID
	Type        string
	Position    wallgeom.InsertPosition
	Orientation wallgeom.InsertPosition

	OrientationPanel *wallgeom.PanelID // nil for the hold's own panel
	Scale            *float64          // inline scale, always > 0
	Label            string
}

// TargetPanel returns the panel holding the orientation target.
func (h Hold) TargetPanel() wallgeom.PanelID {
	if h.OrientationPanel != nil {
		return *h.OrientationPanel
	}
	return h.Panel
}

// clone returns a copy of h sharing no pointer with it.
func (h Hold) clone() Hold {
	if h.OrientationPanel != nil {
		p := *h.OrientationPanel
		h.OrientationPanel = &p
	}
	if h.Scale != nil {
		s := *h.Scale
		h.Scale = &s
	}
	return h
}

var (
	typeRe  = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)
	scaleRe = regexp.MustCompile(`^(?:\d+(?:\.\d+)?|\.\d+)$`)
)

func parsePosition(token string, sys *wallcoord.System) (wallgeom.InsertPosition, error) {
	pos, err := wallgeom.ParseInsertPosition(token)
	if err != nil {
		return pos, err
	}
	if err := wallcoord.Validate(pos.Column, sys); err != nil {
		return pos, err
	}
	return pos, nil
}

// ParseHold parses one compact hold string, whose columns are letters of sys.
func ParseHold(s string, sys *wallcoord.System) (Hold, error) {
	fields := strings.Fields(s)
	if len(fields) < 4 || len(fields) > 6 {
		return Hold{}, wallerr.New(wallerr.ErrInvalidFormat, "hold %q: expected 4 to 6 tokens, got %d", s, len(fields))
	}
	var (
		h   Hold
		err error
	)
	if h.Panel, err = wallgeom.ParsePanelID(fields[0]); err != nil {
		return Hold{}, err
	}
	if !typeRe.MatchString(fields[1]) {
		return Hold{}, wallerr.New(wallerr.ErrInvalidFormat, "hold %q: invalid type %q", s, fields[1])
	}
	h.Type = fields[1]
	if h.Position, err = parsePosition(fields[2], sys); err != nil {
		return Hold{}, err
	}

	orientation := fields[3]
	if panel, target, ok := strings.Cut(orientation, ":"); ok {
		p, err := wallgeom.ParsePanelID(panel)
		if err != nil {
			return Hold{}, err
		}
		h.OrientationPanel = &p
		orientation = target
	}
	if h.Orientation, err = parsePosition(orientation, sys); err != nil {
		return Hold{}, err
	}

	var hasLabel bool
	for _, field := range fields[4:] {
		switch {
		case strings.HasPrefix(field, "@"):
			if hasLabel || len(field) == 1 {
				return Hold{}, wallerr.New(wallerr.ErrInvalidFormat, "hold %q: invalid label %q", s, field)
			}
			hasLabel = true
			h.Label = field[1:]
		case scaleRe.MatchString(field):
			scale, err := strconv.ParseFloat(field, 64)
			if err != nil || scale <= 0 || h.Scale != nil {
				return Hold{}, wallerr.New(wallerr.ErrInvalidFormat, "hold %q: invalid scale %q", s, field)
			}
			h.Scale = &scale
		default:
			return Hold{}, wallerr.New(wallerr.ErrInvalidFormat, "hold %q: unexpected token %q", s, field)
		}
	}
	return h, nil
}

// FormatHold is the inverse of ParseHold.
func FormatHold(h Hold) string {
	var b strings.Builder
	b.WriteString(h.Panel.String())
	b.WriteByte(' ')
	b.WriteString(h.Type)
	b.WriteByte(' ')
	b.WriteString(h.Position.String())
	b.WriteByte(' ')
	if h.OrientationPanel != nil {
		b.WriteString(h.OrientationPanel.String())
		b.WriteByte(':')
	}
	b.WriteString(h.Orientation.String())
	if h.Label != "" {
		b.WriteString(" @")
		b.WriteString(h.Label)
	}
	if h.Scale != nil {
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(*h.Scale, 'f', -1, 64))
	}
	return b.String()
}
