package textgrid

import "fmt"

// Cells is implemented by row values that can describe their own columns.
// FormatCells declares the row's columns against f, one [Formatter.Column]
// or [Formatter.ColumnWith] call per column, in display order. Rows of
// different shapes may be pushed into the same [Grid]; columns merge by key
// and keys a row does not declare render blank for that row.
type Cells interface {
	FormatCells(f *Formatter)
}

// Formatter captures one row. It tracks the current position in the schema
// tree while a row's FormatCells pass runs, merging declared keys into the
// siblings at that position.
//
// A shape conflict (redeclaring a key as a plain value where it was a
// group, or the other way around) makes the pass fail: the error is
// reported from [Grid.Push] and every later call on the Formatter becomes a
// no-op.
type Formatter struct {
	pass *pass
	node int
	path string
}

// pass is the transient cursor state for a single row's formatting pass.
// Schema nodes appended by the pass are recorded so a failed pass can be
// rolled back, leaving the grid exactly as it was.
type pass struct {
	grid    *Grid
	cells   map[int]*rowCell
	mark    int         // arena length before the pass
	touched map[int]int // pre-existing parent id -> original children length
	err     error
}

// rowCell is one captured leaf cell: concatenated fragment text plus the
// alignment resolved from the first fragment.
type rowCell struct {
	text  string
	align Alignment
}

// Column declares (or reuses) the leaf column identified by key at the
// current nesting level and supplies this row's cell for it. The column
// header defaults to the key's text; see [Key.WithHeader]. Declaring the
// same leaf key again within one pass appends the new cell's text to the
// existing cell.
func (f *Formatter) Column(key Key, value Cell) {
	f.write(key, value)
}

// ColumnWith declares a nested column group at key and calls group with a
// formatter bound to that subtree. The group's header spans its children in
// the rendered output.
func (f *Formatter) ColumnWith(key Key, group func(f *Formatter)) {
	p := f.pass
	if p.err != nil {
		return
	}
	id, ok := p.grid.child(f.node, key)
	if ok {
		if p.grid.nodes[id].kind != nodeGroup {
			p.err = fmt.Errorf("%w: column %q declared as a group, previously a value", ErrShapeConflict, f.childPath(key))
			return
		}
	} else {
		id = f.add(key, nodeGroup)
	}
	group(&Formatter{pass: p, node: id, path: f.childPath(key)})
}

// Content appends a raw fragment to the current level's anonymous leaf
// column. All fragments written at one level concatenate into a single
// string; the first fragment decides the cell's alignment. The anonymous
// column has no header.
func (f *Formatter) Content(value Cell) {
	f.write(contentKey, value)
}

func (f *Formatter) write(key Key, value Cell) {
	p := f.pass
	if p.err != nil {
		return
	}
	id, ok := p.grid.child(f.node, key)
	if ok {
		if p.grid.nodes[id].kind != nodeLeaf {
			p.err = fmt.Errorf("%w: column %q declared as a value, previously a group", ErrShapeConflict, f.childPath(key))
			return
		}
	} else {
		id = f.add(key, nodeLeaf)
	}
	if c, ok := p.cells[id]; ok {
		c.text += value.text
		return
	}
	p.cells[id] = &rowCell{text: value.text, align: value.bodyAlign()}
}

func (f *Formatter) add(key Key, kind nodeKind) int {
	p := f.pass
	if f.node < p.mark {
		if _, ok := p.touched[f.node]; !ok {
			p.touched[f.node] = len(p.grid.nodes[f.node].children)
		}
	}
	return p.grid.addChild(f.node, key, kind)
}

// childPath is the dotted schema position of key below the current level,
// used in shape conflict errors.
func (f *Formatter) childPath(key Key) string {
	if f.path == "" {
		return key.String()
	}
	return f.path + "." + key.String()
}

// rollback removes every schema node the pass appended. Children are only
// ever appended at the tail of a sibling list, so truncating the recorded
// parents and the arena restores the pre-push schema.
func (p *pass) rollback() {
	g := p.grid
	for parent, n := range p.touched {
		g.nodes[parent].children = g.nodes[parent].children[:n]
	}
	g.nodes = g.nodes[:p.mark]
}
