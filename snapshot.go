package devcon

import "fmt"

// SnapshotDetail controls how much per-cell detail Snapshot includes.
type SnapshotDetail string

const (
	// SnapshotDetailText returns plain text only.
	SnapshotDetailText SnapshotDetail = "text"
	// SnapshotDetailStyled returns text with style segments per line.
	SnapshotDetailStyled SnapshotDetail = "styled"
	// SnapshotDetailFull returns full cell-by-cell data.
	SnapshotDetailFull SnapshotDetail = "full"
)

// Snapshot is a complete, serializable capture of a Screen's visible grid.
type Snapshot struct {
	Size   SnapshotSize   `json:"size"`
	Cursor SnapshotCursor `json:"cursor"`
	Lines  []SnapshotLine `json:"lines"`
}

// SnapshotSize holds screen dimensions.
type SnapshotSize struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// SnapshotCursor holds cursor state.
type SnapshotCursor struct {
	Row     int    `json:"row"`
	Col     int    `json:"col"`
	Visible bool   `json:"visible"`
	Style   string `json:"style"`
}

// SnapshotLine is a single captured line.
type SnapshotLine struct {
	Text     string            `json:"text"`
	Segments []SnapshotSegment `json:"segments,omitempty"`
	Cells    []SnapshotCell    `json:"cells,omitempty"`
}

// SnapshotSegment is a run of cells sharing the same attributes.
type SnapshotSegment struct {
	Text  string        `json:"text"`
	Attrs SnapshotAttrs `json:"attrs"`
}

// SnapshotCell is one cell with its full resolved codepoint run and attributes.
type SnapshotCell struct {
	Char  string        `json:"char"`
	Attrs SnapshotAttrs `json:"attrs"`
	Wide  bool          `json:"wide,omitempty"`
}

// SnapshotAttrs mirrors Attr in a form suitable for serialization.
type SnapshotAttrs struct {
	Fg        string `json:"fg"`
	Bg        string `json:"bg"`
	Bold      bool   `json:"bold,omitempty"`
	Italic    bool   `json:"italic,omitempty"`
	Underline bool   `json:"underline,omitempty"`
	Inverse   bool   `json:"inverse,omitempty"`
	Blink     bool   `json:"blink,omitempty"`
	Hidden    bool   `json:"hidden,omitempty"`
}

// Snapshot captures s's current visible grid at the requested detail level.
func (s *Screen) Snapshot(detail SnapshotDetail) *Snapshot {
	snap := &Snapshot{
		Size: SnapshotSize{Rows: s.Height(), Cols: s.Width()},
		Cursor: SnapshotCursor{
			Row:     s.cursor.Y,
			Col:     s.cursor.X,
			Visible: s.modes&ModeShowCursor != 0,
			Style:   cursorStyleToString(s.cursor.Style),
		},
		Lines: make([]SnapshotLine, s.Height()),
	}

	for row := 0; row < s.Height(); row++ {
		snap.Lines[row] = s.snapshotLine(row, detail)
	}
	return snap
}

func (s *Screen) snapshotLine(row int, detail SnapshotDetail) SnapshotLine {
	line := SnapshotLine{Text: s.lineText(row)}

	switch detail {
	case SnapshotDetailStyled:
		line.Segments = s.lineToSegments(row)
	case SnapshotDetailFull:
		line.Cells = s.lineToCells(row)
	}

	return line
}

func (s *Screen) lineText(row int) string {
	out := make([]rune, 0, s.Width())
	for col := 0; col < s.Width(); col++ {
		cell := s.page.GetCell(col, row)
		if cell == nil || cell.Ch.IsNull() {
			out = append(out, ' ')
			continue
		}
		cps := Resolve(cell.Ch)
		if len(cps) == 0 {
			out = append(out, ' ')
			continue
		}
		out = append(out, cps[0])
	}
	return string(out)
}

func (s *Screen) lineToSegments(row int) []SnapshotSegment {
	var segments []SnapshotSegment
	var current *SnapshotSegment
	var chars []rune

	flush := func() {
		if current != nil && len(chars) > 0 {
			current.Text = string(chars)
			segments = append(segments, *current)
		}
	}

	for col := 0; col < s.Width(); col++ {
		cell := s.page.GetCell(col, row)
		var attr Attr
		if cell != nil {
			attr = cell.Attr
		}
		attrs := attrToSnapshot(attr)

		if current == nil || current.Attrs != attrs {
			flush()
			current = &SnapshotSegment{Attrs: attrs}
			chars = nil
		}

		ch := ' '
		if cell != nil && !cell.Ch.IsNull() {
			if cps := Resolve(cell.Ch); len(cps) > 0 {
				ch = cps[0]
			}
		}
		chars = append(chars, ch)
	}
	flush()

	return segments
}

func (s *Screen) lineToCells(row int) []SnapshotCell {
	cells := make([]SnapshotCell, 0, s.Width())
	for col := 0; col < s.Width(); col++ {
		cell := s.page.GetCell(col, row)
		if cell == nil {
			cells = append(cells, SnapshotCell{Char: " ", Attrs: attrToSnapshot(Attr{})})
			continue
		}

		ch := " "
		if !cell.Ch.IsNull() {
			ch = string(Resolve(cell.Ch))
		}

		cells = append(cells, SnapshotCell{
			Char:  ch,
			Attrs: attrToSnapshot(cell.Attr),
			Wide:  cell.CWidth > 1,
		})
	}
	return cells
}

func attrToSnapshot(attr Attr) SnapshotAttrs {
	fg, bg := AttrToARGB32(attr)
	return SnapshotAttrs{
		Fg:        colorToHex(fg),
		Bg:        colorToHex(bg),
		Bold:      attr.Bold,
		Italic:    attr.Italic,
		Underline: attr.Underline,
		Inverse:   attr.Inverse,
		Blink:     attr.Blink,
		Hidden:    attr.Hidden,
	}
}

func colorToHex(argb uint32) string {
	return fmt.Sprintf("#%06x", argb&0xffffff)
}

func cursorStyleToString(style CursorStyle) string {
	switch style {
	case CursorStyleBlinkingBlock, CursorStyleSteadyBlock:
		return "block"
	case CursorStyleBlinkingUnderline, CursorStyleSteadyUnderline:
		return "underline"
	case CursorStyleBlinkingBar, CursorStyleSteadyBar:
		return "bar"
	default:
		return "block"
	}
}
