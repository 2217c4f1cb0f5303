package devcon

// Page is the visible grid: width x height cells backed by a slice of
// *Line, plus extra lines below height kept allocated (but not shown) so
// growing the terminal later doesn't need fresh allocation. A scroll
// region [scrollIdx, scrollIdx+scrollNum) bounds where scroll operations
// move lines; scrollFill counts how many of those lines hold real
// (non-blank) content, used by Resize to decide how many lines a height
// shrink pushes into history.
//
// The source keeps a persistent line_cache scratch buffer sized to avoid
// a malloc on every scroll. Go's allocator and GC make that optimization
// not worth the extra field: pageUp/pageDown allocate their scratch slice
// locally.
type Page struct {
	width, height int
	lines         []*Line
	scrollIdx     int
	scrollNum     int
	scrollFill    int
}

// NewPage returns a 0x0 page. Call Reserve then Resize to give it area.
func NewPage() *Page {
	return &Page{}
}

func lessBy(a, b int) int {
	if a > b {
		return a - b
	}
	return 0
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Width is the page's visible column count.
func (p *Page) Width() int { return p.width }

// Height is the page's visible row count.
func (p *Page) Height() int { return p.height }

// ScrollRegion returns the current scroll region as [idx, idx+num).
func (p *Page) ScrollRegion() (idx, num int) { return p.scrollIdx, p.scrollNum }

// ScrollFill is how many lines in the scroll region hold real content.
func (p *Page) ScrollFill() int { return p.scrollFill }

// GetCell returns the cell at x/y, or nil if outside the visible area.
func (p *Page) GetCell(x, y int) *Cell {
	if x < 0 || x >= p.width {
		return nil
	}
	if y < 0 || y >= p.height {
		return nil
	}
	if x >= p.lines[y].width {
		return nil
	}
	return p.lines[y].Cell(x)
}

// Reserve makes sure the page has at least cols x rows of backing storage
// without changing the visible width/height. This never shrinks memory
// already allocated. Call this before Resize whenever growing the page.
func (p *Page) Reserve(cols, rows int, attr Attr, age uint64) {
	minLines := minInt(len(p.lines), rows)
	for i := 0; i < minLines; i++ {
		if cols < p.width && i < p.height {
			continue
		}
		protectWidth := 0
		if i < p.height {
			protectWidth = p.width
		}
		p.lines[i].reserve(cols, attr, age, protectWidth)
	}

	for len(p.lines) < rows {
		line := newLine()
		line.reserve(cols, attr, age, 0)
		p.lines = append(p.lines, line)
	}
}

// Resize changes the visible dimensions to cols x rows. You must have
// called Reserve with at least these dimensions first. Shrinking the
// height emulates a scroll-up (moving scroll-region lines into history,
// reduced by however much of scrollFill indicates empty lines already);
// growing it emulates a scroll-down, pulling lines back out of history
// when available. Either way the lower margin (the rows below the scroll
// region) is preserved by shuffling it across the resized boundary.
func (p *Page) Resize(cols, rows int, attr Attr, age uint64, history *History) {
	oldHeight := p.height

	switch {
	case rows < oldHeight:
		num := oldHeight - rows
		empty := p.scrollNum - p.scrollFill
		if num > empty {
			p.pageUp(cols, num-empty, attr, age, history)
		}

		num = lessBy(oldHeight, p.scrollIdx+p.scrollNum)
		max := lessBy(rows, p.scrollIdx)
		num = minInt(num, max)
		if num > 0 {
			top := rows - num
			bottom := p.scrollIdx + p.scrollNum
			for i := 0; i < num; i++ {
				p.lines[top+i], p.lines[bottom+i] = p.lines[bottom+i], p.lines[top+i]
			}
		}

		p.height = rows
		p.scrollIdx = minInt(p.scrollIdx, rows)
		p.scrollNum -= minInt(p.scrollNum, oldHeight-rows)
		// scrollFill is already up-to-date, or 0 due to the scroll-up above.
	case rows > oldHeight:
		num := lessBy(oldHeight, p.scrollIdx+p.scrollNum)
		if num > 0 {
			top := p.scrollIdx + p.scrollNum
			bottom := top + (rows - oldHeight)
			for i := num - 1; i >= 0; i-- {
				p.lines[top+i], p.lines[bottom+i] = p.lines[bottom+i], p.lines[top+i]
			}
		}

		p.height = rows
		p.scrollNum = minInt(lessBy(rows, p.scrollIdx), p.scrollNum+(rows-oldHeight))

		num = 0
		if history != nil {
			num = history.Peek(rows-oldHeight, cols, attr, age)
		}
		if num > 0 {
			p.pageDown(cols, num, attr, age, history)
		}
	}

	p.width = cols
	for i := 0; i < p.height; i++ {
		p.lines[i].setWidth(cols)
	}
}

// Write writes a single character to posX/posY. A no-op if posY is beyond
// the visible area. Does not wrap to the next line.
func (p *Page) Write(posX, posY int, ch Char, cwidth int, attr Attr, age uint64, insertMode bool) {
	if posY >= p.height {
		return
	}
	p.lines[posY].write(posX, ch, cwidth, attr, age, insertMode)
}

// InsertCells inserts num blank cells into the line at fromY, starting at
// fromX, shifting the rest of the line right.
func (p *Page) InsertCells(fromX, fromY, num int, attr Attr, age uint64) {
	if fromY >= p.height {
		return
	}
	p.lines[fromY].insert(fromX, num, attr, age)
}

// DeleteCells removes num cells from the line at fromY, starting at fromX,
// shifting the rest of the line left.
func (p *Page) DeleteCells(fromX, fromY, num int, attr Attr, age uint64) {
	if fromY >= p.height {
		return
	}
	p.lines[fromY].delete(fromX, num, attr, age)
}

// Append merges ucs4 as a combining mark into the cell at posX/posY.
func (p *Page) Append(posX, posY int, ucs4 uint32, age uint64) {
	if posY >= p.height {
		return
	}
	p.lines[posY].append(posX, ucs4, age)
}

// Erase clears cells from fromX/fromY up to and including toX/toY,
// wrapping across line boundaries (lines strictly between the two rows
// are cleared entirely). Lines outside the visible area are untouched.
func (p *Page) Erase(fromX, fromY, toX, toY int, attr Attr, age uint64, keepProtected bool) {
	for i := fromY; i <= toY && i < p.height; i++ {
		from, to := 0, p.width
		if i == fromY {
			from = fromX
		}
		if i == toY {
			to = toX + 1
		}
		p.lines[i].erase(from, lessBy(to, from), attr, age, keepProtected)
	}
}

// Reset clears the entire visible page.
func (p *Page) Reset(attr Attr, age uint64) {
	p.Erase(0, 0, p.width-1, p.height-1, attr, age, false)
}

// SetScrollRegion restricts scroll operations to [idx, idx+num). The region
// is clipped to the current page extents: idx to at most height-1 and num
// to the rows left below idx; a page with no rows gets an empty region.
func (p *Page) SetScrollRegion(idx, num int) {
	if p.height < 1 {
		p.scrollIdx, p.scrollNum = 0, 0
		return
	}
	p.scrollIdx = minInt(idx, p.height-1)
	p.scrollNum = minInt(num, p.height-p.scrollIdx)
}

// ScrollUp scrolls the scroll region up by num lines: lines above drop
// off the top into history (if non-nil), blank lines appear at the
// bottom. A no-op if the scroll region is empty.
func (p *Page) ScrollUp(num int, attr Attr, age uint64, history *History) {
	p.pageUp(p.width, num, attr, age, history)
}

// ScrollDown scrolls the scroll region down by num lines: blank lines (or
// lines pulled back from history, if non-nil) appear at the top, lines at
// the bottom drop off. A no-op if the scroll region is empty.
func (p *Page) ScrollDown(num int, attr Attr, age uint64, history *History) {
	p.pageDown(p.width, num, attr, age, history)
}

// InsertLines inserts num blank lines at posY, pushing posY and everything
// below it (within the scroll region) down; lines pushed past the bottom
// of the scroll region are dropped. A no-op if posY is outside the
// visible area. Implemented by temporarily narrowing the scroll region to
// start at posY and reusing ScrollDown.
func (p *Page) InsertLines(posY, num int, attr Attr, age uint64) {
	if posY >= p.height {
		return
	}
	if num >= p.height {
		num = p.height
	}

	scrollIdx, scrollNum := p.scrollIdx, p.scrollNum

	p.scrollIdx = posY
	switch {
	case posY >= scrollIdx+scrollNum:
		p.scrollNum = 1
	case posY >= scrollIdx:
		p.scrollNum = scrollNum - (posY - scrollIdx)
	default:
		p.scrollNum = scrollNum + (scrollIdx - posY)
	}
	p.ScrollDown(num, attr, age, nil)

	p.scrollIdx, p.scrollNum = scrollIdx, scrollNum
}

// DeleteLines removes num lines at posY, pulling everything below it
// (within the scroll region) up; blank lines appear at the bottom of the
// region. A no-op if posY is outside the visible area. Implemented by
// temporarily narrowing the scroll region to start at posY and reusing
// ScrollUp.
func (p *Page) DeleteLines(posY, num int, attr Attr, age uint64) {
	if posY >= p.height {
		return
	}
	if num >= p.height {
		num = p.height
	}

	scrollIdx, scrollNum := p.scrollIdx, p.scrollNum

	p.scrollIdx = posY
	switch {
	case posY >= scrollIdx+scrollNum:
		p.scrollNum = 1
	case posY > scrollIdx:
		p.scrollNum = scrollNum - (posY - scrollIdx)
	default:
		p.scrollNum = scrollNum + (scrollIdx - posY)
	}
	p.ScrollUp(num, attr, age, nil)

	p.scrollIdx, p.scrollNum = scrollIdx, scrollNum
}

// pageUp is the scroll-up primitive behind ScrollUp and DeleteLines. New
// lines (width new_width, or page.width if greater) are cleared and moved
// in at the bottom of the scroll region; the num lines scrolled off the
// top are pushed into history when non-nil, otherwise reused in place.
func (p *Page) pageUp(newWidth, num int, attr Attr, age uint64, history *History) {
	if num > p.scrollNum {
		num = p.scrollNum
	}
	if num < 1 {
		return
	}
	if newWidth < p.width {
		newWidth = p.width
	}

	cache := make([]*Line, num)

	for i := 0; i < num; i++ {
		line := p.lines[p.scrollIdx+i]
		if history != nil {
			fresh := newLine()
			fresh.reserve(newWidth, attr, age, 0)
			fresh.setWidth(p.width)
			cache[i] = fresh
			history.Push(line)
		} else {
			cache[i] = line
			line.reset(attr, age)
		}
	}

	if num < p.scrollNum {
		copy(p.lines[p.scrollIdx:p.scrollIdx+p.scrollNum-num], p.lines[p.scrollIdx+num:p.scrollIdx+p.scrollNum])
		for i := 0; i < p.scrollNum-num; i++ {
			p.lines[p.scrollIdx+i].age = age
		}
	}

	copy(p.lines[p.scrollIdx+p.scrollNum-num:p.scrollIdx+p.scrollNum], cache)

	p.scrollFill -= minInt(p.scrollFill, num)
}

// pageDown is the scroll-down primitive behind ScrollDown and
// InsertLines. New lines at the top of the scroll region are pulled from
// history when non-nil and available, otherwise cleared in place; the num
// lines scrolled off the bottom are dropped.
//
// scrollFill is only incremented when it was already nonzero -- if the
// scroll region reads as entirely empty, lines pulled back from history
// are not counted as fill even though they carry real content. This
// underreports how much of the region is "real" after a history-backed
// scroll-down; it is reproduced here exactly as the source has it.
func (p *Page) pageDown(newWidth, num int, attr Attr, age uint64, history *History) {
	if num > p.scrollNum {
		num = p.scrollNum
	}
	if num < 1 {
		return
	}
	if newWidth < p.width {
		newWidth = p.width
	}

	cache := make([]*Line, num)
	lastIdx := p.scrollIdx + p.scrollNum - 1

	for i := 0; i < num; i++ {
		line := p.lines[lastIdx-i]

		var popped *Line
		if history != nil {
			popped = history.Pop(newWidth, attr, age)
		}

		if popped != nil {
			cache[num-1-i] = popped
		} else {
			cache[num-1-i] = line
			line.reset(attr, age)
		}
	}

	if num < p.scrollNum {
		copy(p.lines[p.scrollIdx+num:p.scrollIdx+p.scrollNum], p.lines[p.scrollIdx:p.scrollIdx+p.scrollNum-num])
		for i := 0; i < p.scrollNum-num; i++ {
			p.lines[p.scrollIdx+num+i].age = age
		}
	}

	copy(p.lines[p.scrollIdx:p.scrollIdx+num], cache)

	if p.scrollFill > 0 {
		p.scrollFill = minInt(p.scrollNum, p.scrollFill+num)
	}
}
