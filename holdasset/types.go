package holdasset

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/benoitkugler/speedwall/wallerr"
)

// TypeConfig is the static description of a hold type.
type TypeConfig struct {
	Type   string  `yaml:"-"`
	Width  float64 `yaml:"width"`  // physical size, in mm
	Height float64 `yaml:"height"` // physical size, in mm

	// RestAngle is the direction, in degrees, the drawing points to
	// before any rotation.
	RestAngle float64 `yaml:"restAngle"`

	LabelMargin *float64 `yaml:"labelMargin,omitempty"` // nil means no label
	Arrow       bool     `yaml:"arrow,omitempty"`       // draw the orientation arrow
}

func margin(m float64) *float64 { return &m }

// Types is a read only table of hold type configurations.
type Types struct {
	configs map[string]TypeConfig
}

// normalizeType returns the key used for hold type lookups.
func normalizeType(holdType string) string {
	return strings.ToUpper(strings.TrimSpace(holdType))
}

// NewTypes returns a table with the given configurations.
func NewTypes(configs ...TypeConfig) *Types {
	t := &Types{configs: make(map[string]TypeConfig, len(configs))}
	for _, c := range configs {
		c.Type = normalizeType(c.Type)
		t.configs[c.Type] = c
	}
	return t
}

// BuiltinTypes describes the holds of the IFSC reference route.
var BuiltinTypes = NewTypes(
	TypeConfig{Type: "BIG", Width: 390, Height: 330, RestAngle: 90, LabelMargin: margin(20)},
	TypeConfig{Type: "FOOT", Width: 140, Height: 90, RestAngle: 90, LabelMargin: margin(10), Arrow: true},
	TypeConfig{Type: "STOP", Width: 250, Height: 250, RestAngle: 90},
)

// Lookup returns the configuration of holdType, case insensitive.
func (t *Types) Lookup(holdType string) (TypeConfig, error) {
	c, ok := t.configs[normalizeType(holdType)]
	if !ok {
		return TypeConfig{}, wallerr.New(wallerr.ErrUnknownHoldType, "%q", holdType)
	}
	return c, nil
}

// RestAngle implements rotation.RestAngles.
func (t *Types) RestAngle(holdType string) (float64, error) {
	c, err := t.Lookup(holdType)
	if err != nil {
		return 0, err
	}
	return c.RestAngle, nil
}

// Names returns the sorted known types.
func (t *Types) Names() []string {
	out := make([]string, 0, len(t.configs))
	for name := range t.configs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// DecodeTypes reads a YAML mapping from type tag to configuration.
func DecodeTypes(r io.Reader) (*Types, error) {
	var raw map[string]TypeConfig
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse hold types: %w", err)
	}
	configs := make([]TypeConfig, 0, len(raw))
	for name, c := range raw {
		if normalizeType(name) == "" {
			return nil, wallerr.New(wallerr.ErrInvalidFormat, "empty hold type name")
		}
		if c.Width <= 0 || c.Height <= 0 {
			return nil, wallerr.New(wallerr.ErrInvalidFormat, "hold type %s: width and height must be positive", name)
		}
		c.Type = name
		configs = append(configs, c)
	}
	return NewTypes(configs...), nil
}
