// Package textgrid renders in-memory row data as aligned, bordered
// plain-text tables.
//
// The column schema is not declared up front: it is discovered row by row.
// Each pushed row describes its own columns, and rows of different shapes
// (for example different variants of a sum type) merge into one coherent
// column structure, keyed by field name or position, in first-seen order.
// Keys a row does not declare render blank for that row.
//
// # Describing rows
//
// A row type implements [Cells] by declaring its columns against a
// [Formatter]:
//
//	type Point struct {
//		X, Y int
//	}
//
//	func (p Point) FormatCells(f *textgrid.Formatter) {
//		f.Column(textgrid.Name("x"), textgrid.NewCell(p.X))
//		f.Column(textgrid.Name("y"), textgrid.NewCell(p.Y))
//	}
//
//	textgrid.Write(os.Stdout, Point{300, 1}, Point{2, 200})
//
// Output:
//
//	  x  |  y  |
//	-----|-----|
//	 300 |   1 |
//	   2 | 200 |
//
// [Formatter.ColumnWith] declares a nested column group, producing a
// multi-line header where the group header spans its children.
// [Formatter.Content] writes raw fragments that concatenate into a single
// anonymous column, useful for flattened tuple-style display.
//
// # Cells and alignment
//
// [NewCell] converts any value to a cell; numbers default to right
// alignment, booleans to center, everything else to the left. Headers
// center. Override with [Cell.Left], [Cell.Right], or [Cell.Center].
// Display widths follow terminal columns: wide characters count two
// columns, combining characters zero.
//
// # Grid lifecycle
//
// A [Grid] owns its rows and schema. Pushing is synchronous and not safe
// for concurrent use; the first render (or [Grid.Finalize]) freezes the
// schema, fixes column widths, and makes the grid a read-only value that
// can be rendered repeatedly, even concurrently, with byte-identical
// results. Pushing after that fails with [ErrFinalized].
//
// Reusing a key with an incompatible shape (a plain value where the key
// was a group, or a group where it was a value) is a contract violation
// in the row-producing code. The push reports [ErrShapeConflict] with the
// key's position in the schema tree and leaves the grid unchanged.
//
// # Other outputs and sources
//
// Beyond the bordered text layout, a grid renders as CSV
// ([Grid.RenderCSV]) or a Markdown table ([Grid.RenderMarkdown]), with
// nested groups flattened into dot-joined headers. [RowsFromYAML] turns a
// YAML sequence of mappings into pushable rows, mapping nested mappings to
// column groups.
package textgrid
