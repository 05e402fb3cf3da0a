package textgrid

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// RowsFromYAML decodes a YAML document holding a sequence of mappings into
// pushable rows, preserving each mapping's key order. Nested mappings
// become column groups, sequences become position-keyed groups, and !!int
// and !!float scalars right-align. Documents with differing key sets merge
// into one schema the same way any heterogeneous rows do:
//
//	rows, err := textgrid.RowsFromYAML(data)
//	...
//	err = textgrid.Write(os.Stdout, rows...)
func RowsFromYAML(data []byte) ([]Cells, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: top-level YAML node must be a sequence", ErrRowSource)
	}
	rows := make([]Cells, 0, len(root.Content))
	for _, item := range root.Content {
		rows = append(rows, yamlRow{node: item})
	}
	return rows, nil
}

type yamlRow struct {
	node *yaml.Node
}

func (r yamlRow) FormatCells(f *Formatter) {
	yamlCells(f, r.node)
}

func yamlCells(f *Formatter, n *yaml.Node) {
	switch n.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			yamlColumn(f, Name(n.Content[i].Value), n.Content[i+1])
		}
	case yaml.SequenceNode:
		for i, v := range n.Content {
			yamlColumn(f, Index(i), v)
		}
	case yaml.AliasNode:
		yamlCells(f, n.Alias)
	default:
		f.Content(yamlScalar(n))
	}
}

func yamlColumn(f *Formatter, key Key, v *yaml.Node) {
	for v.Kind == yaml.AliasNode && v.Alias != nil {
		v = v.Alias
	}
	if v.Kind == yaml.ScalarNode {
		f.Column(key, yamlScalar(v))
		return
	}
	f.ColumnWith(key, func(f *Formatter) {
		yamlCells(f, v)
	})
}

func yamlScalar(n *yaml.Node) Cell {
	c := NewCell(n.Value)
	switch n.Tag {
	case "!!int", "!!float":
		return c.Right()
	}
	return c
}
