package tree

import "fmt"

// Direction specifies the main axis along which siblings are arranged.
type Direction uint8

const (
	Horizontal Direction = iota // Siblings laid out left-to-right
	Vertical                    // Siblings laid out top-to-bottom
)

// Orthogonal returns the other axis.
func (d Direction) Orthogonal() Direction {
	if d == Horizontal {
		return Vertical
	}
	return Horizontal
}

// AtDepth returns the axis used by the sibling level at the given nesting
// depth when the root level uses d.
func (d Direction) AtDepth(depth int) Direction {
	if depth%2 == 0 {
		return d
	}
	return d.Orthogonal()
}

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Direction(%d)", d)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	switch d {
	case Horizontal, Vertical:
		return []byte(d.String()), nil
	default:
		return nil, fmt.Errorf("invalid direction %d", d)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts the
// flexbox spellings "row" and "column" as aliases.
func (d *Direction) UnmarshalText(text []byte) error {
	switch string(text) {
	case "horizontal", "row", "":
		*d = Horizontal
	case "vertical", "column":
		*d = Vertical
	default:
		return fmt.Errorf("invalid direction %q", text)
	}
	return nil
}
