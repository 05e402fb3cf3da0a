package textgrid

import (
	"encoding/csv"
	"io"
)

// RenderCSV finalizes the grid and writes it as CSV. The header record
// holds one dot-joined header path per leaf column ("extra.x" for column x
// inside group extra); body records hold the leaf cell texts, empty where
// a row did not declare the key.
func (g *Grid) RenderCSV(w io.Writer) error {
	g.Finalize()
	cw := csv.NewWriter(w)
	if err := cw.Write(g.leafPaths()); err != nil {
		return err
	}
	rec := make([]string, len(g.leaves))
	for _, row := range g.rows {
		for i, id := range g.leaves {
			rec[i] = ""
			if c, ok := row.cells[id]; ok {
				rec[i] = c.text
			}
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSV renders rows as CSV on w.
func WriteCSV[T Cells](w io.Writer, rows ...T) error {
	g := New()
	for _, r := range rows {
		if err := g.Push(r); err != nil {
			return err
		}
	}
	return g.RenderCSV(w)
}
