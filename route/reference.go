package route

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/benoitkugler/speedwall/wallcoord"
	"github.com/benoitkugler/speedwall/wallerr"
)

// ReferenceRoute is a named catalog of holds. Its fields must not be
// modified once the route is in use: parsed holds are memoized.
type ReferenceRoute struct {
	Name       string             `yaml:"-"`
	Color      string             `yaml:"color"`
	HoldScales map[string]float64 `yaml:"holdScales,omitempty"` // per hold type
	Columns    string             `yaml:"columns,omitempty"`    // system name or letters, empty for the default
	Holds      []string           `yaml:"holds"`

	once   sync.Once
	system *wallcoord.System
	parsed []Hold
	scales map[string]float64
	err    error
}

func (r *ReferenceRoute) parse() {
	r.system, r.err = wallcoord.Builtin.Resolve(r.Columns)
	if r.err != nil {
		r.err = fmt.Errorf("route %s: %w", r.Name, r.err)
		return
	}
	r.scales = make(map[string]float64, len(r.HoldScales))
	for holdType, scale := range r.HoldScales {
		if scale <= 0 {
			r.err = wallerr.New(wallerr.ErrInvalidFormat, "route %s: scale of %s must be positive, got %g", r.Name, holdType, scale)
			return
		}
		r.scales[strings.ToUpper(holdType)] = scale
	}
	r.parsed = make([]Hold, len(r.Holds))
	for i, s := range r.Holds {
		h, err := ParseHold(s, r.system)
		if err != nil {
			r.parsed, r.err = nil, fmt.Errorf("route %s, hold %d: %w", r.Name, i+1, err)
			return
		}
		r.parsed[i] = h
	}
}

// ParsedHolds returns the holds of the route, parsed once. The returned
// slice is shared and must not be modified.
func (r *ReferenceRoute) ParsedHolds() ([]Hold, error) {
	r.once.Do(r.parse)
	return r.parsed, r.err
}

// System returns the column system of the route.
func (r *ReferenceRoute) System() (*wallcoord.System, error) {
	r.once.Do(r.parse)
	if r.system == nil {
		return nil, r.err
	}
	return r.system, nil
}

// scaleFor returns the route level scale of holdType, if any.
func (r *ReferenceRoute) scaleFor(holdType string) (float64, bool) {
	s, ok := r.scales[holdType]
	return s, ok
}

// Catalog maps route names to reference routes.
type Catalog map[string]*ReferenceRoute

// Lookup returns the route named name.
func (c Catalog) Lookup(name string) (*ReferenceRoute, error) {
	r, ok := c[name]
	if !ok || r == nil {
		return nil, wallerr.New(wallerr.ErrUnknownRoute, "%q", name)
	}
	return r, nil
}

// Names returns the sorted route names.
func (c Catalog) Names() []string {
	out := make([]string, 0, len(c))
	for name := range c {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// DecodeCatalog reads a YAML (or JSON) mapping of route names to routes.
func DecodeCatalog(r io.Reader) (Catalog, error) {
	var c Catalog
	if err := yaml.NewDecoder(r).Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to parse route catalog: %w", err)
	}
	for name, route := range c {
		if route == nil {
			return nil, wallerr.New(wallerr.ErrInvalidFormat, "route %q is empty", name)
		}
		route.Name = name
	}
	return c, nil
}

//go:embed data/routes.yaml
var defaultRoutes []byte

var defaultCatalog = sync.OnceValues(func() (Catalog, error) {
	return DecodeCatalog(bytes.NewReader(defaultRoutes))
})

// DefaultCatalog returns the builtin reference routes: the official
// IFSC route ("ifsc") and a short "training" route.
// The catalog is loaded once and shared.
func DefaultCatalog() Catalog {
	c, err := defaultCatalog()
	if err != nil {
		panic(err) // embedded data is checked by tests
	}
	return c
}
