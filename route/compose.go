package route

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/benoitkugler/speedwall/rotation"
	"github.com/benoitkugler/speedwall/wallcoord"
	"github.com/benoitkugler/speedwall/wallgeom"
)

// Composer chains segments into generated routes.
type Composer struct {
	log *zap.Logger
}

// Option customizes a Composer.
type Option func(*Composer)

// WithLogger sets the logger tracing each composed segment.
func WithLogger(log *zap.Logger) Option { return func(c *Composer) { c.log = log } }

func NewComposer(opts ...Option) *Composer {
	c := &Composer{log: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ComposeRoute extracts every segment in order and numbers the
// resulting holds from 1. The first failing segment aborts the call.
func (c *Composer) ComposeRoute(segments []Segment, routes Catalog) ([]ComposedHold, error) {
	var out []ComposedHold
	for i, segment := range segments {
		holds, err := ExtractHolds(segment, routes)
		if err != nil {
			return nil, fmt.Errorf("segment %d (%s): %w", i+1, segment.Source, err)
		}
		c.log.Debug("extracted segment",
			zap.Int("segment", i+1),
			zap.String("source", segment.Source),
			zap.Int("holds", len(holds)),
			zap.Bool("anchored", segment.Anchor != nil))
		for _, h := range holds {
			h.ComposedHoldNumber = len(out) + 1
			out = append(out, h)
		}
	}
	return out, nil
}

// ComposeAllRoutes composes each generated route independently, numbering
// each from 1, and concatenates the results.
func (c *Composer) ComposeAllRoutes(generated []GeneratedRoute, routes Catalog) ([]ComposedHold, error) {
	var out []ComposedHold
	for i, g := range generated {
		holds, err := c.ComposeRoute(g.Segments, routes)
		if err != nil {
			name := g.Name
			if name == "" {
				name = fmt.Sprintf("#%d", i+1)
			}
			return nil, fmt.Errorf("generated route %s: %w", name, err)
		}
		c.log.Debug("composed route", zap.String("name", g.Name), zap.Int("holds", len(holds)))
		out = append(out, holds...)
	}
	return out, nil
}

var defaultComposer = NewComposer()

// ComposeRoute uses a composer without logging.
func ComposeRoute(segments []Segment, routes Catalog) ([]ComposedHold, error) {
	return defaultComposer.ComposeRoute(segments, routes)
}

// ComposeAllRoutes uses a composer without logging.
func ComposeAllRoutes(generated []GeneratedRoute, routes Catalog) ([]ComposedHold, error) {
	return defaultComposer.ComposeAllRoutes(generated, routes)
}

// Placement is where and how a renderer draws a composed hold.
type Placement struct {
	Point    wallgeom.Point // insert position, lane and anchor offsets applied
	Rotation float64        // degrees, not normalized
}

// Place computes the final position and rotation of h.
func Place(h ComposedHold, rest rotation.RestAngles) (Placement, error) {
	sys := h.Columns
	if sys == nil {
		sys = wallcoord.Builtin.Default()
	}
	p, err := wallgeom.InsertPoint(sys, h.Panel, h.Position, h.LaneOffset)
	if err != nil {
		return Placement{}, err
	}
	if h.AnchorOffset != nil {
		p = p.Add(*h.AnchorOffset)
	}
	rot, err := rotation.HoldRotation(sys, h.Panel, h.Position, h.TargetPanel(), h.Orientation,
		h.Type, h.LaneOffset, rest)
	if err != nil {
		return Placement{}, err
	}
	return Placement{Point: p, Rotation: rot}, nil
}
