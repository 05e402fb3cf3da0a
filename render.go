package textgrid

import (
	"fmt"
	"io"
	"strings"
)

// span is one rendered region of a line: a single leaf column, or a group
// header stretched over the leaves below it.
type span struct {
	text   string
	align  Alignment
	width  int // content width; for group spans this includes inner separators
	leaves int
}

// Render finalizes the grid and writes the bordered table to w. Rendering
// is a pure read of finalized state: calling it again produces
// byte-identical output.
//
// Layout: one space of padding on each side of cell content, a literal "|"
// at every column boundary and at the end of every line. Schemas with
// nested column groups render one header line per nesting level, each
// followed by a "-" separator line; group headers span their children's
// total width.
func (g *Grid) Render(w io.Writer) error {
	g.Finalize()
	for t := 0; t < g.depthMax; t++ {
		spans := g.headerSpans(t)
		if err := g.writeLine(w, spans); err != nil {
			return err
		}
		below := g.allBoundaries()
		if t+1 < g.depthMax {
			below = boundaries(g.headerSpans(t + 1))
		}
		if err := g.writeSeparator(w, boundaries(spans), below); err != nil {
			return err
		}
	}
	all := g.allBoundaries()
	for _, row := range g.rows {
		if err := g.writeLine(w, g.bodySpans(row)); err != nil {
			return err
		}
		if row.sep {
			if err := g.writeSeparator(w, all, all); err != nil {
				return err
			}
		}
	}
	return nil
}

// headerSpans builds the spans of header line t. A column's header renders
// centered on the line matching its own nesting depth; positions owned by
// other depths render as blank spacers of equal width.
func (g *Grid) headerSpans(t int) []span {
	var out []span
	var walk func(id, depth int)
	walk = func(id, depth int) {
		n := &g.nodes[id]
		if n.kind == nodeLeaf {
			s := span{width: g.widths[id], leaves: 1}
			if depth == t && n.key.kind != keyContent {
				h := n.key.headerCell()
				s.text, s.align = h.text, h.headerAlign()
			}
			out = append(out, s)
			return
		}
		leaves := g.leavesUnder(id, nil)
		if len(leaves) == 0 {
			return
		}
		if depth == t {
			h := n.key.headerCell()
			out = append(out, span{
				text:   h.text,
				align:  h.headerAlign(),
				width:  g.spanWidth(leaves),
				leaves: len(leaves),
			})
			return
		}
		for _, c := range n.children {
			walk(c, depth+1)
		}
	}
	for _, c := range g.nodes[0].children {
		walk(c, 0)
	}
	return out
}

// bodySpans builds the spans of one body row: every leaf column in order,
// blank where the row did not declare the key.
func (g *Grid) bodySpans(row gridRow) []span {
	out := make([]span, 0, len(g.leaves))
	for _, id := range g.leaves {
		s := span{width: g.widths[id], leaves: 1}
		if c, ok := row.cells[id]; ok {
			s.text, s.align = c.text, c.align
		}
		out = append(out, s)
	}
	return out
}

// spanWidth returns the content width of a group spanning the given
// leaves: the sum of leaf widths plus three characters (padding, "|",
// padding) per internal boundary.
func (g *Grid) spanWidth(leaves []int) int {
	if len(leaves) == 0 {
		return 0
	}
	w := 3 * (len(leaves) - 1)
	for _, id := range leaves {
		w += g.widths[id]
	}
	return w
}

// expandGroups widens leaf columns so that every group's span is at least
// as wide as its header, distributing the deficit to the narrowest leaves
// first. Children are processed before parents so outer spans see final
// inner widths.
func (g *Grid) expandGroups(id int) {
	n := &g.nodes[id]
	if n.kind == nodeLeaf {
		return
	}
	for _, c := range n.children {
		g.expandGroups(c)
	}
	if id == 0 {
		return
	}
	leaves := g.leavesUnder(id, nil)
	if len(leaves) == 0 {
		return
	}
	hw := displayWidth(n.key.headerCell().text)
	for g.spanWidth(leaves) < hw {
		narrowest := leaves[0]
		for _, l := range leaves[1:] {
			if g.widths[l] < g.widths[narrowest] {
				narrowest = l
			}
		}
		g.widths[narrowest]++
	}
}

// boundaries returns the set of leaf positions after which a line of spans
// has a cell edge.
func boundaries(spans []span) map[int]bool {
	set := make(map[int]bool, len(spans))
	pos := 0
	for _, s := range spans {
		pos += s.leaves
		set[pos] = true
	}
	return set
}

func (g *Grid) allBoundaries() map[int]bool {
	set := make(map[int]bool, len(g.leaves))
	for i := range g.leaves {
		set[i+1] = true
	}
	return set
}

// writeLine writes one content line: " <cell> |" per span, no leading "|".
func (g *Grid) writeLine(w io.Writer, spans []span) error {
	var sb strings.Builder
	for _, s := range spans {
		sb.WriteString(" ")
		sb.WriteString(alignCell(s.text, s.width, s.align))
		sb.WriteString(" |")
	}
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

// writeSeparator writes a "-" line below a row. A column boundary shows
// "|" only where both the line above and the line below have a cell edge;
// where a spanning cell crosses the boundary it is filled with "-".
func (g *Grid) writeSeparator(w io.Writer, above, below map[int]bool) error {
	var sb strings.Builder
	for i, id := range g.leaves {
		sb.WriteString(strings.Repeat("-", g.widths[id]+2))
		b := i + 1
		if b == len(g.leaves) || (above[b] && below[b]) {
			sb.WriteString("|")
		} else {
			sb.WriteString("-")
		}
	}
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

// alignCell pads s with spaces to the given display width.
func alignCell(s string, width int, align Alignment) string {
	pad := width - displayWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
