package textgrid

import (
	"fmt"
	"io"
	"strings"
)

// RenderMarkdown finalizes the grid and writes it as a GitHub-flavored
// Markdown table. Nested column groups flatten into dot-joined headers;
// each column's alignment marker comes from its first non-blank cell.
func (g *Grid) RenderMarkdown(w io.Writer) error {
	g.Finalize()
	headers := g.leafPaths()

	// Markdown needs at least 3 characters per column for the alignment
	// markers, and the flattened headers can be wider than the grid ones.
	widths := make([]int, len(g.leaves))
	aligns := make([]Alignment, len(g.leaves))
	for i, id := range g.leaves {
		widths[i] = g.widths[id]
		if hw := displayWidth(headers[i]); hw > widths[i] {
			widths[i] = hw
		}
		if widths[i] < 3 {
			widths[i] = 3
		}
		for _, row := range g.rows {
			if c, ok := row.cells[id]; ok && c.text != "" {
				aligns[i] = c.align
				break
			}
		}
	}

	if err := writeMarkdownRow(w, headers, widths, aligns); err != nil {
		return err
	}
	sep := make([]string, len(widths))
	for i, width := range widths {
		switch aligns[i] {
		case AlignRight:
			sep[i] = strings.Repeat("-", width-1) + ":"
		case AlignCenter:
			sep[i] = ":" + strings.Repeat("-", width-2) + ":"
		default:
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}
	cells := make([]string, len(g.leaves))
	for _, row := range g.rows {
		for i, id := range g.leaves {
			cells[i] = ""
			if c, ok := row.cells[id]; ok {
				cells[i] = c.text
			}
		}
		if err := writeMarkdownRow(w, cells, widths, aligns); err != nil {
			return err
		}
	}
	return nil
}

// WriteMarkdown renders rows as a Markdown table on w.
func WriteMarkdown[T Cells](w io.Writer, rows ...T) error {
	g := New()
	for _, r := range rows {
		if err := g.Push(r); err != nil {
			return err
		}
	}
	return g.RenderMarkdown(w)
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int, aligns []Alignment) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = alignCell(cell, width, aligns[i])
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}
