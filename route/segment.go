package route

import (
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/benoitkugler/speedwall/wallerr"
)

type refKind uint8

const (
	refNone refKind = iota
	refIndex
	refLabel
)

// HoldRef designates a hold of a reference route, either by its
// 1-based index or by its label. The zero value designates nothing.
type HoldRef struct {
	kind  refKind
	index int
	label string
}

// At refers to the hold with the given 1-based index.
func At(index int) HoldRef { return HoldRef{kind: refIndex, index: index} }

// Labeled refers to the hold with the given label.
func Labeled(label string) HoldRef { return HoldRef{kind: refLabel, label: label} }

// IsZero reports whether r is unset.
func (r HoldRef) IsZero() bool { return r.kind == refNone }

func (r HoldRef) String() string {
	switch r.kind {
	case refIndex:
		return strconv.Itoa(r.index)
	case refLabel:
		return strconv.Quote(r.label)
	default:
		return "<none>"
	}
}

// resolve returns the 1-based index r designates in holds.
func (r HoldRef) resolve(holds []Hold, routeName string) (int, error) {
	switch r.kind {
	case refIndex:
		return r.index, nil
	case refLabel:
		for i, h := range holds {
			if h.Label == r.label {
				return i + 1, nil
			}
		}
		return 0, wallerr.New(wallerr.ErrHoldLabelNotFound, "no hold labelled %q in route %s", r.label, routeName)
	}
	return 0, wallerr.New(wallerr.ErrInvalidFormat, "empty hold reference")
}

// UnmarshalYAML accepts an integer index or a label string.
func (r *HoldRef) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return wallerr.New(wallerr.ErrInvalidFormat, "line %d: hold reference must be a number or a label", value.Line)
	}
	switch value.Tag {
	case "!!int":
		var i int
		if err := value.Decode(&i); err != nil {
			return err
		}
		*r = At(i)
		return nil
	case "!!str":
		if value.Value == "" {
			return wallerr.New(wallerr.ErrInvalidFormat, "line %d: empty hold label", value.Line)
		}
		*r = Labeled(value.Value)
		return nil
	}
	return wallerr.New(wallerr.ErrInvalidFormat, "line %d: invalid hold reference %q", value.Line, value.Value)
}

func (r HoldRef) MarshalYAML() (interface{}, error) {
	switch r.kind {
	case refIndex:
		return r.index, nil
	case refLabel:
		return r.label, nil
	}
	return nil, nil
}

// Anchor is the physical position the first hold of a segment is moved to.
type Anchor struct {
	Panel  string `yaml:"panel"` // such as DX2
	Column string `yaml:"column"`
	Row    int    `yaml:"row"`
}

// Segment selects a slice of a reference route.
type Segment struct {
	Source       string    `yaml:"source"`
	FromHold     HoldRef   `yaml:"fromHold,omitempty"` // defaults to the first hold
	ToHold       HoldRef   `yaml:"toHold,omitempty"`   // defaults to the last hold
	ExcludeHolds []HoldRef `yaml:"excludeHolds,omitempty"`
	Anchor       *Anchor   `yaml:"anchor,omitempty"`
	Color        string    `yaml:"color,omitempty"`
	LaneOffset   int       `yaml:"laneOffset,omitempty"`
}

// GeneratedRoute is a route made of chained segments.
type GeneratedRoute struct {
	Name     string    `yaml:"name,omitempty"`
	Segments []Segment `yaml:"segments"`
}

// DecodeGenerated reads a YAML (or JSON) list of generated routes.
func DecodeGenerated(r io.Reader) ([]GeneratedRoute, error) {
	var out []GeneratedRoute
	if err := yaml.NewDecoder(r).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to parse generated routes: %w", err)
	}
	for i, g := range out {
		for j, s := range g.Segments {
			if s.Source == "" {
				return nil, wallerr.New(wallerr.ErrInvalidFormat, "generated route %d, segment %d: missing source", i+1, j+1)
			}
		}
	}
	return out, nil
}
