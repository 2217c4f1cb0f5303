package devcon

// CursorStyle determines how the cursor is rendered.
type CursorStyle int

const (
	CursorStyleBlinkingBlock CursorStyle = iota
	CursorStyleSteadyBlock
	CursorStyleBlinkingUnderline
	CursorStyleSteadyUnderline
	CursorStyleBlinkingBar
	CursorStyleSteadyBar
)

// Cursor tracks the current write position, pen, active charset slot, and
// rendering style (0-based coordinates).
type Cursor struct {
	X, Y    int
	Attr    Attr
	Style   CursorStyle
	Visible bool

	GL    int        // which of GSets is currently invoked into GL (G0-G3 index)
	GSets [4]Charset // SCS-designated charsets for G0-G3
}

// NewCursor creates a cursor at (0, 0) with blinking block style, visible,
// G0 invoked and designated to CharsetNone (ASCII).
func NewCursor() *Cursor {
	return &Cursor{Style: CursorStyleBlinkingBlock, Visible: true}
}

// SavedCursor stores cursor position, pen, origin mode, and charset state
// for DECSC/DECRC.
type SavedCursor struct {
	X, Y       int
	Attr       Attr
	OriginMode bool
	GL         int
	GSets      [4]Charset
}

// Save captures c's restorable state.
func (c *Cursor) Save(originMode bool) SavedCursor {
	return SavedCursor{
		X: c.X, Y: c.Y,
		Attr:       c.Attr,
		OriginMode: originMode,
		GL:         c.GL,
		GSets:      c.GSets,
	}
}

// Restore applies a previously saved state back onto c, returning the
// saved origin mode so the caller can restore it onto the Screen.
func (c *Cursor) Restore(s SavedCursor) (originMode bool) {
	c.X, c.Y = s.X, s.Y
	c.Attr = s.Attr
	c.GL = s.GL
	c.GSets = s.GSets
	return s.OriginMode
}
