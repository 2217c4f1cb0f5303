package devcon

// AgeNull marks a cell/line as never having been written.
const AgeNull uint64 = 0

// Cell is the addressable unit of a Page: one stored character (base
// codepoint plus any combining marks), the age it was last touched at, its
// style attributes, and the cached display width of its base codepoint.
type Cell struct {
	Ch     Char
	Age    uint64
	Attr   Attr
	CWidth uint8
}

// blankCell returns a Cell with no character, the given attr and age --
// what erase/grow operations fill newly-available cells with.
func blankCell(attr Attr, age uint64) Cell {
	return Cell{Ch: Null, Age: age, Attr: attr, CWidth: 0}
}

// setChar replaces c's character, refreshing its cached width. Mirrors the
// source's cell_set: only the character and width change, attr/age are the
// caller's responsibility.
func (c *Cell) setChar(ch Char) {
	c.Ch = ch
	c.CWidth = uint8(Width(ch))
}
