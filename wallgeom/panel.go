package wallgeom

import (
	"strconv"

	"github.com/benoitkugler/speedwall/wallerr"
)

// Side is the half of a lane a panel belongs to.
type Side uint8

const (
	Left  Side = iota // SX
	Right             // DX
)

func (s Side) String() string {
	switch s {
	case Left:
		return "SX"
	case Right:
		return "DX"
	default:
		return "<unknown Side>"
	}
}

// ParseSide accepts the two letter codes SX and DX.
func ParseSide(s string) (Side, error) {
	switch s {
	case "SX":
		return Left, nil
	case "DX":
		return Right, nil
	}
	return 0, wallerr.New(wallerr.ErrInvalidFormat, "invalid side %q", s)
}

// PanelID identifies one physical panel.
type PanelID struct {
	Side   Side
	Number int // 1 is the bottom panel
}

func (p PanelID) String() string { return p.Side.String() + strconv.Itoa(p.Number) }

// InsertPosition is a bolt hole slot of a panel. Column is a letter
// of the column system in use.
type InsertPosition struct {
	Column string
	Row    int
}

func (p InsertPosition) String() string { return p.Column + strconv.Itoa(p.Row) }

// parseIndex parses a 1..max decimal, with no sign nor leading zero.
func parseIndex(s string, max int) (int, bool) {
	if s == "" || s[0] == '0' || len(s) > 2 {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, _ := strconv.Atoi(s)
	if n < 1 || n > max {
		return 0, false
	}
	return n, true
}

// ParsePanelID parses tokens such as SX1 or DX10.
func ParsePanelID(s string) (PanelID, error) {
	if len(s) < 3 {
		return PanelID{}, wallerr.New(wallerr.ErrInvalidFormat, "invalid panel %q", s)
	}
	side, err := ParseSide(s[:2])
	if err != nil {
		return PanelID{}, wallerr.New(wallerr.ErrInvalidFormat, "invalid panel %q", s)
	}
	n, ok := parseIndex(s[2:], PanelCount)
	if !ok {
		return PanelID{}, wallerr.New(wallerr.ErrInvalidFormat, "invalid panel number in %q", s)
	}
	return PanelID{Side: side, Number: n}, nil
}

// ParseInsertPosition parses tokens such as F10 or C1. The column letter is
// only checked to be an uppercase letter; membership of a column system is
// the caller's concern (see wallcoord.Validate).
func ParseInsertPosition(s string) (InsertPosition, error) {
	if len(s) < 2 || s[0] < 'A' || s[0] > 'Z' {
		return InsertPosition{}, wallerr.New(wallerr.ErrInvalidFormat, "invalid insert position %q", s)
	}
	row, ok := parseIndex(s[1:], RowCount)
	if !ok {
		return InsertPosition{}, wallerr.New(wallerr.ErrInvalidFormat, "invalid row in %q", s)
	}
	return InsertPosition{Column: s[:1], Row: row}, nil
}
