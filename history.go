package devcon

// defaultMaxLines is the scrollback cap a new History starts with.
const defaultMaxLines = 4096

// History is scrollback storage: lines pushed out of a Page's visible area
// wait here until popped back in, or aged out once MaxLines is exceeded.
// The source links devcon_line onto an intrusive list; since lines never
// need to live in two places at once, a plain slice-backed ring (oldest at
// index 0, newest at the end) gives the same push-at-tail/pop-from-tail/
// trim-from-head semantics without a list-head field on Line (see
// DESIGN.md).
type History struct {
	lines    []*Line
	maxLines int
}

// NewHistory returns an empty History with the default 4096-line cap.
func NewHistory() *History {
	return &History{maxLines: defaultMaxLines}
}

// Len is the number of lines currently retained.
func (h *History) Len() int { return len(h.lines) }

// MaxLines returns the current cap.
func (h *History) MaxLines() int { return h.maxLines }

// SetMaxLines changes the cap and immediately trims down to it.
func (h *History) SetMaxLines(max int) {
	h.maxLines = max
	h.Trim(max)
}

// Clear drops every retained line.
func (h *History) Clear() {
	h.Trim(0)
}

// Trim removes lines from the head (oldest first) until at most max remain.
func (h *History) Trim(max int) {
	if max < 0 {
		max = 0
	}
	if len(h.lines) <= max {
		return
	}
	drop := len(h.lines) - max
	h.lines = h.lines[drop:]
}

// Push appends line at the tail. If this would exceed MaxLines, the
// oldest (head) line is dropped instead of growing past the cap.
func (h *History) Push(line *Line) {
	h.lines = append(h.lines, line)
	if len(h.lines) > h.maxLines {
		h.lines = h.lines[1:]
	}
}

// Pop removes and returns the newest (tail) line, reserved and set to
// newWidth. Returns nil if history is empty -- callers must treat a nil
// return exactly like "no history available" (see devcon_page_down).
func (h *History) Pop(newWidth int, attr Attr, age uint64) *Line {
	n := len(h.lines)
	if n == 0 {
		return nil
	}
	line := h.lines[n-1]
	h.lines = h.lines[:n-1]
	line.reserve(newWidth, attr, age, line.width)
	line.setWidth(newWidth)
	return line
}

// Peek reserves reserveWidth cells on up to max of the newest lines
// (without removing them) and reports how many were touched. Go's
// reserve cannot fail the way the source's allocator could, so Peek
// always returns min(max, Len()) -- it exists to keep Pop's
// "peek-then-pop-that-many" calling convention intact for code ported
// from the source, not because reservation here can come up short.
func (h *History) Peek(max int, reserveWidth int, attr Attr, age uint64) int {
	n := len(h.lines)
	num := 0
	for i := n - 1; i >= 0 && num < max; i-- {
		h.lines[i].reserve(reserveWidth, attr, age, h.lines[i].width)
		num++
	}
	return num
}
