package devcon

// Line is one row of a Page: a cell array of capacity n_cells (len(cells)),
// a visible width <= n_cells, a fill index marking the rightmost meaningful
// cell, and an age. Lines move wholesale between a Page and a History --
// there is no intrusive list link here (see DESIGN.md for why a Go slice
// ring replaces the source's linked list).
type Line struct {
	width int
	cells []Cell
	age   uint64
	fill  int
}

// newLine returns an empty 0-width line with no cells allocated.
func newLine() *Line {
	return &Line{}
}

// Width is the line's visible extent.
func (l *Line) Width() int { return l.width }

// Fill is the index one past the rightmost meaningful cell.
func (l *Line) Fill() int { return l.fill }

// NCells is the number of allocated cell slots (>= Width).
func (l *Line) NCells() int { return len(l.cells) }

// Cell returns the cell at x, or nil if out of the allocated range.
func (l *Line) Cell(x int) *Cell {
	if x < 0 || x >= len(l.cells) {
		return nil
	}
	return &l.cells[x]
}

// reserve ensures n_cells >= width; existing cells in
// [protectWidth, min(n_cells, width)) are cleared with attr/age, and any
// newly grown cells are initialized the same way. Never shrinks storage.
// fill is capped to protectWidth afterward, mirroring the source exactly.
func (l *Line) reserve(width int, attr Attr, age uint64, protectWidth int) {
	minWidth := width
	if len(l.cells) < minWidth {
		minWidth = len(l.cells)
	}
	if minWidth > protectWidth {
		for i := protectWidth; i < minWidth; i++ {
			l.cells[i] = blankCell(attr, age)
		}
	}

	if width > len(l.cells) {
		grown := make([]Cell, width)
		copy(grown, l.cells)
		for i := len(l.cells); i < width; i++ {
			grown[i] = blankCell(attr, age)
		}
		l.cells = grown
	}

	if l.fill > protectWidth {
		l.fill = protectWidth
	}
}

// setWidth changes the line's visible width, capped to n_cells. fill is
// capped to the new width. No cell contents are touched.
func (l *Line) setWidth(width int) {
	if width > len(l.cells) {
		width = len(l.cells)
	}
	l.width = width
	if l.fill > width {
		l.fill = width
	}
}

// place is the shared INSERT primitive behind write(insert_mode) and
// insert(): it inserts num cells at from, shifting existing cells right and
// discarding whatever falls off the right edge. The first inserted cell
// gets headCh/headCWidth, the rest are NULL.
func (l *Line) place(from, num int, headCh Char, headCWidth int, attr Attr, age uint64) {
	if from >= l.width {
		return
	}
	if from+num < from || from+num > l.width {
		num = l.width - from
	}
	if num == 0 {
		return
	}

	move := l.width - from - num
	rem := num
	if move < rem {
		rem = move
	}

	if rem > 0 {
		// knock off `rem` cells off the right edge, then shift the bulk right.
		copy(l.cells[from+num:from+num+move], l.cells[from:from+move])
		for i := 0; i < move; i++ {
			l.cells[from+num+i].Age = age
		}

		l.cells[from] = Cell{Attr: attr, Age: age}
		l.cells[from].setChar(headCh)
		l.cells[from].CWidth = uint8(headCWidth)
		for i := from + 1; i < from+num; i++ {
			l.cells[i] = blankCell(attr, age)
		}

		newFill := l.fill + num
		if from+num > newFill {
			newFill = from + num
		}
		if newFill > l.width {
			newFill = l.width
		}
		l.fill = newFill
	} else {
		l.cells[from] = Cell{Attr: attr, Age: age}
		l.cells[from].setChar(headCh)
		l.cells[from].CWidth = uint8(headCWidth)
		for i := from + 1; i < from+num; i++ {
			l.cells[i] = blankCell(attr, age)
		}
		l.fill = l.width
	}
}

// write writes a character run of max(1, cwidth) cells starting at pos_x.
// In insertMode, existing cells shift right; otherwise they are
// overwritten and trailing cells of the run are reset to NULL. A write at
// pos_x >= width is a no-op.
func (l *Line) write(posX int, ch Char, cwidth int, attr Attr, age uint64, insertMode bool) {
	if posX >= l.width {
		return
	}

	length := cwidth
	if length < 1 {
		length = 1
	}
	if posX+length < posX || posX+length > l.width {
		length = l.width - posX
	}
	if length == 0 {
		return
	}

	if insertMode {
		l.place(posX, length, ch, cwidth, attr, age)
		return
	}

	l.cells[posX] = Cell{Attr: attr, Age: age}
	l.cells[posX].setChar(ch)
	l.cells[posX].CWidth = uint8(cwidth)
	for i := posX + 1; i < posX+length; i++ {
		l.cells[i] = blankCell(attr, age)
	}

	newFill := l.fill
	if posX+length > newFill {
		newFill = posX + length
	}
	if newFill > l.width {
		newFill = l.width
	}
	l.fill = newFill
}

// insert inserts num empty cells at from, shifting cells right.
func (l *Line) insert(from, num int, attr Attr, age uint64) {
	l.place(from, num, Null, 0, attr, age)
}

// delete removes num cells at from, shifting cells in from the right and
// filling the vacated tail with NULL cells.
func (l *Line) delete(from, num int, attr Attr, age uint64) {
	if from >= l.width {
		return
	}
	if from+num < from || from+num > l.width {
		num = l.width - from
	}
	if num == 0 {
		return
	}

	move := l.width - from - num
	rem := num
	if move < rem {
		rem = move
	}

	if rem > 0 {
		copy(l.cells[from:from+move], l.cells[from+num:from+num+move])
		for i := 0; i < move; i++ {
			l.cells[from+i].Age = age
		}
		for i := l.width - rem; i < l.width; i++ {
			l.cells[i] = blankCell(attr, age)
		}
		if num > move {
			for i := from + move; i < from+num; i++ {
				l.cells[i] = blankCell(attr, age)
			}
		}
	} else {
		for i := from; i < from+num; i++ {
			l.cells[i] = blankCell(attr, age)
		}
	}

	if from+num < l.fill {
		l.fill -= num
	} else if from < l.fill {
		l.fill = from
	}
}

// append merges ucs4 as a combining mark into the cell at posX. No-op if
// out of bounds.
func (l *Line) append(posX int, ucs4 uint32, age uint64) {
	if posX >= l.width {
		return
	}
	c := &l.cells[posX]
	c.Ch = Merge(c.Ch, ucs4)
	c.Age = age
}

// erase sets num cells starting at from to NULL/attr. If keepProtected,
// cells whose Attr.Protect is set survive and the highest surviving
// protected index (within the current fill) bounds the new fill.
func (l *Line) erase(from, num int, attr Attr, age uint64, keepProtected bool) {
	if from >= l.width {
		return
	}
	if from+num < from || from+num > l.width {
		num = l.width - from
	}
	if num == 0 {
		return
	}

	lastProtected := 0
	for i := 0; i < num; i++ {
		cell := &l.cells[from+i]
		if keepProtected && cell.Attr.Protect {
			if from+i < l.fill {
				lastProtected = from + i
			}
			continue
		}
		cell.setChar(Null)
		cell.CWidth = 0
		cell.Attr = attr
		cell.Age = age
	}

	if from < l.fill && from+num >= l.fill {
		if from > lastProtected {
			l.fill = from
		} else {
			l.fill = lastProtected
		}
	}
}

// reset erases the whole line.
func (l *Line) reset(attr Attr, age uint64) {
	l.erase(0, l.width, attr, age, false)
}
