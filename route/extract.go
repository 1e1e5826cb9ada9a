package route

import (
	"github.com/benoitkugler/speedwall/wallcoord"
	"github.com/benoitkugler/speedwall/wallerr"
	"github.com/benoitkugler/speedwall/wallgeom"
)

// ComposedHold is a hold placed in a generated route.
type ComposedHold struct {
	Hold

	SourceRoute        string
	OriginalIndex      int // 1-based, in the source route
	ComposedHoldNumber int // 1-based, in the generated route; 0 until composed
	LaneOffset         int
	ResolvedScale      float64
	ResolvedColor      string // segment override, empty when unset

	// AnchorOffset is the translation applied to every hold
	// of an anchored segment, nil otherwise.
	AnchorOffset *wallgeom.Point

	Columns *wallcoord.System // letters used by Position and Orientation
}

// anchorPoint returns the physical position designated by a, at lane 0.
func anchorPoint(a Anchor, sys *wallcoord.System) (wallgeom.Point, error) {
	panel, err := wallgeom.ParsePanelID(a.Panel)
	if err != nil {
		return wallgeom.Point{}, err
	}
	if a.Row < 1 || a.Row > wallgeom.RowCount {
		return wallgeom.Point{}, wallerr.New(wallerr.ErrInvalidFormat, "anchor row %d out of 1..%d", a.Row, wallgeom.RowCount)
	}
	if err := wallcoord.Validate(a.Column, sys); err != nil {
		return wallgeom.Point{}, err
	}
	return wallgeom.InsertPoint(sys, panel, wallgeom.InsertPosition{Column: a.Column, Row: a.Row}, 0)
}

// ExtractHolds resolves segment against routes. The returned holds keep
// the reference order and have a zero ComposedHoldNumber.
func ExtractHolds(segment Segment, routes Catalog) ([]ComposedHold, error) {
	name := segment.Source // catalogs built in code may leave Name empty
	ref, err := routes.Lookup(name)
	if err != nil {
		return nil, err
	}
	if segment.LaneOffset < 0 {
		return nil, wallerr.New(wallerr.ErrInvalidFormat, "negative lane offset %d", segment.LaneOffset)
	}
	holds, err := ref.ParsedHolds()
	if err != nil {
		return nil, err
	}
	sys, err := ref.System()
	if err != nil {
		return nil, err
	}

	from, to := 1, len(holds)
	if !segment.FromHold.IsZero() {
		if from, err = segment.FromHold.resolve(holds, name); err != nil {
			return nil, err
		}
	}
	if !segment.ToHold.IsZero() {
		if to, err = segment.ToHold.resolve(holds, name); err != nil {
			return nil, err
		}
	}
	if from < 1 || from > to || to > len(holds) {
		return nil, wallerr.New(wallerr.ErrHoldRangeOutOfBounds, "holds %d to %d of route %s (%d holds)", from, to, name, len(holds))
	}

	var target *wallgeom.Point
	if segment.Anchor != nil {
		p, err := anchorPoint(*segment.Anchor, sys)
		if err != nil {
			return nil, err
		}
		target = &p
	}

	excluded := make(map[int]bool, len(segment.ExcludeHolds))
	for _, ex := range segment.ExcludeHolds {
		index, err := ex.resolve(holds, name)
		if err != nil {
			return nil, err
		}
		excluded[index] = true
	}

	var out []ComposedHold
	for index := from; index <= to; index++ {
		if excluded[index] {
			continue
		}
		h := holds[index-1].clone()
		scale := 1.
		if h.Scale != nil {
			scale = *h.Scale
		} else if s, ok := ref.scaleFor(h.Type); ok {
			scale = s
		}
		out = append(out, ComposedHold{
			Hold:          h,
			SourceRoute:   name,
			OriginalIndex: index,
			LaneOffset:    segment.LaneOffset,
			ResolvedScale: scale,
			ResolvedColor: segment.Color,
			Columns:       sys,
		})
	}

	if target != nil && len(out) != 0 {
		first, err := wallgeom.InsertPoint(sys, out[0].Panel, out[0].Position, 0)
		if err != nil {
			return nil, err
		}
		delta := target.Sub(first)
		for i := range out {
			offset := delta
			out[i].AnchorOffset = &offset
		}
	}
	return out, nil
}
