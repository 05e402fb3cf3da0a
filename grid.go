package textgrid

import (
	"bytes"
	"errors"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	// ErrShapeConflict reports that a row reused a column key with an
	// incompatible shape. It signals a defect in the row-producing code,
	// not bad data; the offending push is aborted and the grid is left
	// unchanged.
	ErrShapeConflict = errors.New("column shape conflict")

	// ErrFinalized reports a push after the grid was rendered.
	ErrFinalized = errors.New("grid already finalized")

	// ErrRowSource reports input that cannot be converted into rows.
	ErrRowSource = errors.New("unsupported row source")
)

// Grid accumulates rows and their incrementally discovered column schema,
// and renders them as an aligned, bordered plain-text table.
//
// Rows are pushed one at a time; each push merges the row's declared keys
// into the schema tree, so rows of different shapes (for example different
// variants of a sum type) share one coherent column structure. The first
// render finalizes the grid: column widths are fixed and further pushes
// fail with [ErrFinalized].
//
// A Grid is not safe for concurrent pushes. Once finalized it is read-only
// and rendering from multiple goroutines is safe.
type Grid struct {
	nodes     []schemaNode // arena; nodes[0] is the root group
	rows      []gridRow
	finalized bool

	// layout, computed by Finalize
	leaves   []int
	widths   map[int]int
	depthMax int
}

type gridRow struct {
	cells map[int]*rowCell
	sep   bool // draw a separator line below this row
}

// New creates an empty grid.
func New() *Grid {
	return &Grid{nodes: []schemaNode{{kind: nodeGroup}}}
}

// Push appends one row. The row's FormatCells pass may extend the schema
// with trailing columns at any level; existing column order never changes.
// On a shape conflict the push is aborted, the schema is rolled back, and
// the returned error wraps [ErrShapeConflict] with the offending key and
// its position in the tree.
func (g *Grid) Push(row Cells) error {
	if g.finalized {
		return ErrFinalized
	}
	p := &pass{
		grid:    g,
		cells:   make(map[int]*rowCell),
		mark:    len(g.nodes),
		touched: make(map[int]int),
	}
	row.FormatCells(&Formatter{pass: p, node: 0})
	if p.err != nil {
		p.rollback()
		return p.err
	}
	g.rows = append(g.rows, gridRow{cells: p.cells})
	return nil
}

// PushSeparator draws a horizontal separator line below the last pushed
// row. It does nothing on an empty grid.
func (g *Grid) PushSeparator() {
	if !g.finalized && len(g.rows) > 0 {
		g.rows[len(g.rows)-1].sep = true
	}
}

// Finalize fixes the schema and computes column widths. It is implied by
// the first render; calling it earlier only makes the transition explicit.
// After Finalize the grid is read-only.
func (g *Grid) Finalize() {
	if g.finalized {
		return
	}
	g.finalized = true
	g.leaves = g.leavesUnder(0, nil)
	g.widths = make(map[int]int, len(g.leaves))
	for _, id := range g.leaves {
		w := displayWidth(g.nodes[id].key.headerCell().text)
		for _, row := range g.rows {
			if c, ok := row.cells[id]; ok {
				if cw := displayWidth(c.text); cw > w {
					w = cw
				}
			}
		}
		g.widths[id] = w
	}
	g.expandGroups(0)
	for _, c := range g.nodes[0].children {
		if d := g.headerDepth(c); d > g.depthMax {
			g.depthMax = d
		}
	}
}

// String renders the grid to a string, finalizing it first.
func (g *Grid) String() string {
	var sb strings.Builder
	_ = g.Render(&sb)
	return sb.String()
}

// Write renders rows as a bordered text table on w.
func Write[T Cells](w io.Writer, rows ...T) error {
	g := New()
	for _, r := range rows {
		if err := g.Push(r); err != nil {
			return err
		}
	}
	return g.Render(w)
}

// Marshal renders rows as a bordered text table and returns the bytes.
func Marshal[T Cells](rows ...T) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, rows...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
