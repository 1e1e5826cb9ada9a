// Package wallcoord names the column letterings used on speed wall panels.
//
// Every panel has the same 11 physical insert columns. Different federations
// and manufacturers label them with different letters; a System is one such
// labelling, and conversions between systems go through the shared physical
// slot index.
package wallcoord

import (
	"sort"
	"strings"

	"github.com/benoitkugler/speedwall/wallerr"
)

// Columns is the number of physical insert columns on a panel.
const Columns = 11

// System is an ordered sequence of Columns distinct letters.
type System struct {
	Name    string
	letters string
}

// NewSystem validates letters and returns the corresponding system.
func NewSystem(name, letters string) (*System, error) {
	if len(letters) != Columns {
		return nil, wallerr.New(wallerr.ErrInvalidFormat, "column system %q needs %d letters, got %d", name, Columns, len(letters))
	}
	seen := map[byte]bool{}
	for i := 0; i < len(letters); i++ {
		l := letters[i]
		if l < 'A' || l > 'Z' {
			return nil, wallerr.New(wallerr.ErrInvalidFormat, "column system %q: %q is not an uppercase letter", name, l)
		}
		if seen[l] {
			return nil, wallerr.New(wallerr.ErrInvalidFormat, "column system %q: duplicate letter %q", name, l)
		}
		seen[l] = true
	}
	return &System{Name: name, letters: letters}, nil
}

func mustSystem(name, letters string) *System {
	s, err := NewSystem(name, letters)
	if err != nil {
		panic(err)
	}
	return s
}

// Letters returns the column letters, left to right.
func (s *System) Letters() string { return s.letters }

// Index returns the 0-based physical slot of column, or -1.
func (s *System) Index(column string) int {
	if len(column) != 1 {
		return -1
	}
	return strings.IndexByte(s.letters, column[0])
}

// Letter returns the column letter at the physical slot index.
func (s *System) Letter(index int) (string, error) {
	if index < 0 || index >= Columns {
		return "", wallerr.New(wallerr.ErrInvalidColumn, "slot %d out of range", index)
	}
	return s.letters[index : index+1], nil
}

func (s *System) String() string { return s.Name + "(" + s.letters + ")" }

// Validate fails with ErrInvalidColumn if column is not a letter of sys.
func Validate(column string, sys *System) error {
	if sys.Index(column) < 0 {
		return wallerr.New(wallerr.ErrInvalidColumn, "column %q not in system %s", column, sys)
	}
	return nil
}

// Convert maps column from one lettering to the other, keeping the physical slot.
func Convert(column string, from, to *System) (string, error) {
	i := from.Index(column)
	if i < 0 {
		return "", wallerr.New(wallerr.ErrInvalidColumn, "column %q not in system %s", column, from)
	}
	return to.letters[i : i+1], nil
}

var (
	// IFSC is the lettering of the IFSC reference panels (no J and K).
	IFSC = mustSystem("ifsc", "ABCDEFGHILM")
	// Alpha is the plain alphabetical lettering.
	Alpha = mustSystem("alpha", "ABCDEFGHIJK")
)

// Registry holds the known column systems by name.
type Registry struct {
	systems map[string]*System
	def     *System
}

// NewRegistry returns a registry with the given systems; the first one is the default.
func NewRegistry(systems ...*System) *Registry {
	r := &Registry{systems: make(map[string]*System, len(systems))}
	for _, s := range systems {
		r.systems[strings.ToLower(s.Name)] = s
	}
	if len(systems) != 0 {
		r.def = systems[0]
	}
	return r
}

// Builtin is the registry of the letterings shipped with the package.
var Builtin = NewRegistry(IFSC, Alpha)

// Default returns the system used when a route does not declare one.
func (r *Registry) Default() *System { return r.def }

// Lookup returns the system registered under name (case insensitive).
func (r *Registry) Lookup(name string) (*System, bool) {
	s, ok := r.systems[strings.ToLower(name)]
	return s, ok
}

// Names returns the sorted registered names.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.systems))
	for name := range r.systems {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Resolve accepts either a registered name or a literal sequence of
// Columns distinct letters. An empty nameOrLetters resolves to the default system.
func (r *Registry) Resolve(nameOrLetters string) (*System, error) {
	if nameOrLetters == "" {
		return r.def, nil
	}
	if s, ok := r.Lookup(nameOrLetters); ok {
		return s, nil
	}
	s, err := NewSystem(nameOrLetters, nameOrLetters)
	if err != nil {
		return nil, wallerr.New(wallerr.ErrInvalidFormat, "unknown column system %q", nameOrLetters)
	}
	return s, nil
}
