package textgrid

import "strconv"

type keyKind uint8

const (
	keyName keyKind = iota
	keyIndex
	keyContent
)

// Key identifies a column within its sibling group. Record and variant
// fields align by [Name]; tuple fields align by [Index]. Keys with equal
// identity merge into the same column across rows; the header attached via
// [Key.WithHeader] is display-only and does not affect identity.
type Key struct {
	kind   keyKind
	name   string
	index  int
	header *Cell
}

// Name returns a Key that aligns columns by field name.
func Name(s string) Key { return Key{kind: keyName, name: s} }

// Index returns a Key that aligns columns by position.
func Index(i int) Key { return Key{kind: keyIndex, index: i} }

// contentKey is the reserved sibling slot for raw fragments written with
// [Formatter.Content]. It has no header.
var contentKey = Key{kind: keyContent}

// WithHeader returns the key with its display header replaced by c. The
// first declaration of a column fixes its header; overrides on later
// declarations of the same key are ignored.
func (k Key) WithHeader(c Cell) Key {
	k.header = &c
	return k
}

// String returns the key's text: the name for named keys, the decimal
// position for indexed keys.
func (k Key) String() string {
	if k.kind == keyIndex {
		return strconv.Itoa(k.index)
	}
	return k.name
}

func (k Key) equal(o Key) bool {
	if k.kind != o.kind {
		return false
	}
	if k.kind == keyIndex {
		return k.index == o.index
	}
	return k.name == o.name
}

// headerCell returns the cell displayed in this key's header position.
func (k Key) headerCell() Cell {
	if k.header != nil {
		return *k.header
	}
	if k.kind == keyContent {
		return Cell{}
	}
	return NewCell(k.String())
}
