package textgrid

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// Alignment controls horizontal placement of cell content within a column.
type Alignment int

const (
	// AlignAuto resolves from context: numeric body cells align right,
	// booleans center, everything else left. Header cells center.
	AlignAuto Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// Cell is the content of one row/column intersection. Create one with
// [NewCell] or [Cellf] and optionally override its alignment:
//
//	textgrid.NewCell(3.14).Left()
//
// The zero Cell is an empty, default-aligned cell.
type Cell struct {
	text     string
	explicit Alignment // set by Left/Right/Center
	inferred Alignment // default from the source value's kind
}

// NewCell converts a value to a Cell. Integers and floats get a right
// default alignment, booleans center, everything else left. A Cell passes
// through unchanged; a [fmt.Stringer] is rendered via its String method.
func NewCell(v any) Cell {
	switch x := v.(type) {
	case Cell:
		return x
	case nil:
		return Cell{}
	case string:
		return Cell{text: x, inferred: AlignLeft}
	case bool:
		return Cell{text: fmt.Sprintf("%v", x), inferred: AlignCenter}
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64:
		return Cell{text: fmt.Sprintf("%v", x), inferred: AlignRight}
	case fmt.Stringer:
		return Cell{text: x.String(), inferred: AlignLeft}
	default:
		return Cell{text: fmt.Sprintf("%v", x), inferred: AlignLeft}
	}
}

// Cellf builds a Cell via fmt.Sprintf. The result is left-aligned unless
// overridden.
func Cellf(format string, a ...any) Cell {
	return Cell{text: fmt.Sprintf(format, a...), inferred: AlignLeft}
}

// Left returns the cell with horizontal alignment set to the left.
func (c Cell) Left() Cell { c.explicit = AlignLeft; return c }

// Right returns the cell with horizontal alignment set to the right.
func (c Cell) Right() Cell { c.explicit = AlignRight; return c }

// Center returns the cell with horizontal alignment set to the center.
func (c Cell) Center() Cell { c.explicit = AlignCenter; return c }

// String returns the cell's text content.
func (c Cell) String() string { return c.text }

// bodyAlign resolves the alignment used for a body cell: an explicit
// override wins, then the kind default, then left.
func (c Cell) bodyAlign() Alignment {
	if c.explicit != AlignAuto {
		return c.explicit
	}
	if c.inferred != AlignAuto {
		return c.inferred
	}
	return AlignLeft
}

// headerAlign resolves the alignment used for a header cell. Headers
// center unless explicitly overridden.
func (c Cell) headerAlign() Alignment {
	if c.explicit != AlignAuto {
		return c.explicit
	}
	return AlignCenter
}

// displayWidth returns the number of terminal columns s occupies: wide
// runes count 2, combining and control runes 0, everything else 1.
func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}
