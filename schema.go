package textgrid

type nodeKind uint8

const (
	nodeLeaf nodeKind = iota
	nodeGroup
)

// schemaNode is one column in the discovered schema tree. Nodes live in the
// Grid's arena slice and reference children by arena index, so ownership
// runs strictly parent to child. Sibling order is first-seen order and is
// append-only.
type schemaNode struct {
	key      Key
	kind     nodeKind
	children []int
}

// child returns the arena index of parent's child with the given key.
func (g *Grid) child(parent int, key Key) (int, bool) {
	for _, id := range g.nodes[parent].children {
		if g.nodes[id].key.equal(key) {
			return id, true
		}
	}
	return 0, false
}

// addChild appends a new child node at the end of parent's sibling list.
func (g *Grid) addChild(parent int, key Key, kind nodeKind) int {
	id := len(g.nodes)
	g.nodes = append(g.nodes, schemaNode{key: key, kind: kind})
	g.nodes[parent].children = append(g.nodes[parent].children, id)
	return id
}

// leavesUnder appends the arena indexes of all leaf columns under id, in
// sibling order, to out.
func (g *Grid) leavesUnder(id int, out []int) []int {
	n := &g.nodes[id]
	if n.kind == nodeLeaf {
		return append(out, id)
	}
	for _, c := range n.children {
		out = g.leavesUnder(c, out)
	}
	return out
}

// headerDepth returns the number of header lines the subtree at id needs.
// Anonymous content leaves carry no header and need none.
func (g *Grid) headerDepth(id int) int {
	n := &g.nodes[id]
	if n.kind == nodeLeaf {
		if n.key.kind == keyContent {
			return 0
		}
		return 1
	}
	depth := 0
	for _, c := range n.children {
		if d := g.headerDepth(c); d > depth {
			depth = d
		}
	}
	return 1 + depth
}

// leafPaths returns one dot-joined header path per leaf column, in column
// order. An anonymous content leaf inherits its parent's path.
func (g *Grid) leafPaths() []string {
	var out []string
	var walk func(id int, prefix string)
	walk = func(id int, prefix string) {
		n := &g.nodes[id]
		name := n.key.headerCell().text
		path := prefix
		if n.key.kind != keyContent {
			if path == "" {
				path = name
			} else {
				path += "." + name
			}
		}
		if n.kind == nodeLeaf {
			out = append(out, path)
			return
		}
		for _, c := range n.children {
			walk(c, path)
		}
	}
	for _, c := range g.nodes[0].children {
		walk(c, "")
	}
	return out
}
