package devcon

import (
	"fmt"
	"log"

	"github.com/unilibs/uniwidth"
)

const (
	defaultCols = 80
	defaultRows = 24
	tabWidth    = 8
)

// Mode is a bitmask of the handful of terminal behaviors DECSET/DECRST and
// SM/RM can toggle that this façade actually observes.
type Mode uint32

const (
	ModeInsert Mode = 1 << iota
	ModeOrigin
	ModeAutoWrap
	ModeCursorKeys
	ModeShowCursor
)

// KeySym identifies a non-printable key FeedKeyboard encodes. Unlike the
// source's raw keysym array, this is the small closed set this façade
// actually turns into an escape sequence; anything else is passed as
// KeyNone with its ascii rune, which FeedKeyboard UTF-8 encodes.
type KeySym int

const (
	KeyNone KeySym = iota
	KeyUp
	KeyDown
	KeyRight
	KeyLeft
	KeyHome
	KeyEnd
)

// DrawFn receives one cell during Draw, in row-major order. ch is nil for
// a blank cell.
type DrawFn func(x, y int, attr Attr, ch []rune, cwidth int) error

// CommandHandler lets a host intercept a classified command before
// Screen's own dispatch runs. Returning true suppresses the built-in
// handling for that command. This plays the same interception role the
// source's devcon_screen_cmd_fn callback does, for the commands this
// façade chooses to resolve on its own.
type CommandHandler func(cmd Command, seq *Sequence) bool

// Screen ties a Parser's classified sequences to a Page, applying the
// subset of the VT100/xterm command set that has an observable effect on
// the grid. This is a consumer-facing convenience layer, not part of the
// character-storage/parsing core: a command the classifier resolves but
// this façade does not implement is logged at [DEBUG] and otherwise
// ignored, the same "deliver, don't reject" posture the rest of this
// module takes toward sequences it doesn't recognize.
type Screen struct {
	page    *Page
	history *History
	parser  *Parser
	decoder Decoder

	cursor      Cursor
	saved       *SavedCursor
	originMode  bool
	pendingWrap bool

	modes Mode

	answerback string
	response   ResponseProvider
	bell       BellProvider
	handler    CommandHandler
	log        *log.Logger

	age uint64

	// construction-only, consumed by NewScreen.
	initCols, initRows, historyLimit int
}

// NewScreen builds a Screen at the given (or default 80x24) size, applies
// opts, and performs a hard reset so the returned Screen is immediately
// usable.
func NewScreen(opts ...ScreenOption) *Screen {
	s := &Screen{
		page:         NewPage(),
		history:      NewHistory(),
		parser:       NewParser(),
		response:     NoopResponse{},
		bell:         NoopBell{},
		log:          newDiscardLogger(),
		initCols:     defaultCols,
		initRows:     defaultRows,
		historyLimit: -1,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.historyLimit >= 0 {
		s.history.SetMaxLines(s.historyLimit)
	}
	s.page.Reserve(s.initCols, s.initRows, Attr{}, s.age)
	s.page.Resize(s.initCols, s.initRows, Attr{}, s.age, s.history)
	s.HardReset()
	return s
}

// WithCommandHandler installs a host interception hook, consulted before
// Screen's built-in dispatch for every classified control, escape and CSI
// command.
func WithCommandHandler(h CommandHandler) ScreenOption {
	return func(s *Screen) { s.handler = h }
}

func (s *Screen) Width() int          { return s.page.Width() }
func (s *Screen) Height() int         { return s.page.Height() }
func (s *Screen) Age() uint64         { return s.age }
func (s *Screen) CursorState() Cursor { return s.cursor }

// SetAnswerback changes the string ENQ elicits.
func (s *Screen) SetAnswerback(answerback string) {
	s.answerback = answerback
}

// Resize changes the visible grid to cols x rows, clamping the cursor to
// stay inside the new bounds and resetting the scroll region to the full
// page (matching xterm: a resize drops any active scroll margins).
func (s *Screen) Resize(cols, rows int) error {
	if cols <= 0 || rows <= 0 {
		return fmt.Errorf("devcon: invalid screen size %dx%d", cols, rows)
	}
	s.age++
	s.page.Reserve(cols, rows, s.cursor.Attr, s.age)
	s.page.Resize(cols, rows, s.cursor.Attr, s.age, s.history)
	s.page.SetScrollRegion(0, s.page.Height())
	s.clampCursor()
	return nil
}

func (s *Screen) clampCursor() {
	if s.cursor.X >= s.page.Width() {
		s.cursor.X = s.page.Width() - 1
	}
	if s.cursor.X < 0 {
		s.cursor.X = 0
	}
	if s.cursor.Y >= s.page.Height() {
		s.cursor.Y = s.page.Height() - 1
	}
	if s.cursor.Y < 0 {
		s.cursor.Y = 0
	}
	s.pendingWrap = false
}

// SoftReset applies DECSTR: pen, scroll region, wrap state and modes
// return to their defaults, but the grid contents and cursor position are
// untouched.
func (s *Screen) SoftReset() {
	s.cursor.Attr = Attr{}
	s.cursor.GL = 0
	s.cursor.GSets = [4]Charset{}
	s.originMode = false
	s.pendingWrap = false
	s.modes = ModeAutoWrap | ModeShowCursor
	s.page.SetScrollRegion(0, s.page.Height())
	s.saved = nil
}

// HardReset applies RIS: the grid and scrollback are cleared, the parser
// returns to ground, and the cursor goes home.
func (s *Screen) HardReset() {
	s.age++
	s.page.Reset(Attr{}, s.age)
	s.page.SetScrollRegion(0, s.page.Height())
	s.history.Clear()
	s.parser = NewParser()
	s.cursor = *NewCursor()
	s.SoftReset()
}

// FeedText decodes in as UTF-8 and dispatches every resulting codepoint
// through the parser.
func (s *Screen) FeedText(in []byte) error {
	for _, b := range in {
		for _, r := range s.decoder.Decode(b) {
			s.feedRune(r)
		}
	}
	return nil
}

func (s *Screen) feedRune(r rune) {
	ev, seq := s.parser.Feed(r)
	switch ev {
	case EventGraphic:
		s.writeGraphic(r)
	case EventControl:
		s.applyCommand(seq.Command, seq)
	case EventEscape:
		s.applyCommand(seq.Command, seq)
	case EventCSI:
		s.applyCommand(seq.Command, seq)
	default:
		// EventNone/EventIgnore/EventDCS/EventOSC: DCS/OSC bodies are
		// intentionally not dispatched (see parser.go).
	}
}

// FeedKeyboard encodes a key press into the bytes a host should write back
// to the byte source the terminal is driving. ascii is the printable
// rune the key would normally produce (0 for pure function keys); sym
// names anything this façade recognizes as needing its own escape
// sequence.
func (s *Screen) FeedKeyboard(sym KeySym, ascii rune) []byte {
	if sym == KeyNone {
		if ascii == 0 {
			return nil
		}
		return Encode(uint32(ascii))
	}

	lead := byte('[')
	if s.modes&ModeCursorKeys != 0 {
		lead = 'O'
	}
	var final byte
	switch sym {
	case KeyUp:
		final = 'A'
	case KeyDown:
		final = 'B'
	case KeyRight:
		final = 'C'
	case KeyLeft:
		final = 'D'
	case KeyHome:
		final = 'H'
	case KeyEnd:
		final = 'F'
	default:
		return nil
	}
	return []byte{0x1b, lead, final}
}

// Draw walks every cell in the visible page in row-major order, reporting
// its position, attributes, resolved codepoints and cached width.
func (s *Screen) Draw(fn DrawFn) error {
	for y := 0; y < s.page.Height(); y++ {
		for x := 0; x < s.page.Width(); x++ {
			cell := s.page.GetCell(x, y)
			if cell == nil {
				continue
			}
			var ch []rune
			if !cell.Ch.IsNull() {
				ch = Resolve(cell.Ch)
			}
			if err := fn(x, y, cell.Attr, ch, int(cell.CWidth)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Screen) scrollRegion() (top, bottom int) {
	idx, num := s.page.ScrollRegion()
	if num <= 0 {
		return 0, s.page.Height() - 1
	}
	return idx, idx + num - 1
}

func (s *Screen) lineFeed() {
	top, bottom := s.scrollRegion()
	switch {
	case s.cursor.Y == bottom:
		s.age++
		s.page.ScrollUp(1, s.cursor.Attr, s.age, s.history)
	case s.cursor.Y < s.page.Height()-1:
		s.cursor.Y++
	default:
		_ = top
	}
}

func (s *Screen) reverseIndex() {
	top, bottom := s.scrollRegion()
	switch {
	case s.cursor.Y == top:
		s.age++
		s.page.ScrollDown(1, s.cursor.Attr, s.age, s.history)
	case s.cursor.Y > 0:
		s.cursor.Y--
	default:
		_ = bottom
	}
}

// writeGraphic places one printable codepoint, honoring deferred
// auto-wrap (the cursor parks on the last column until the next graphic
// character actually needs the wrap) and merging a zero-width codepoint
// onto the previously written cell as a combining mark instead of
// consuming a column of its own.
func (s *Screen) writeGraphic(r rune) {
	width := uniwidth.RuneWidth(r)
	if width <= 0 {
		if s.cursor.X > 0 {
			s.age++
			s.page.Append(s.cursor.X-1, s.cursor.Y, uint32(r), s.age)
		}
		return
	}

	if s.pendingWrap {
		s.cursor.X = 0
		s.lineFeed()
		s.pendingWrap = false
	}

	s.age++
	s.page.Write(s.cursor.X, s.cursor.Y, Set(Null, uint32(r)), width, s.cursor.Attr, s.age, s.modes&ModeInsert != 0)

	s.cursor.X += width
	if s.cursor.X >= s.page.Width() {
		s.cursor.X = s.page.Width() - 1
		if s.modes&ModeAutoWrap != 0 {
			s.pendingWrap = true
		}
	}
}

func gsetIndexFromFlags(f SeqFlag) int {
	switch {
	case f&SeqFlagPopen != 0:
		return 0
	case f&SeqFlagPclose != 0:
		return 1
	case f&SeqFlagMult != 0:
		return 2
	case f&SeqFlagPlus != 0:
		return 3
	case f&SeqFlagMinus != 0:
		return 1
	case f&SeqFlagDot != 0:
		return 2
	case f&SeqFlagSlash != 0:
		return 3
	default:
		return 0
	}
}

// applyCommand is the shared dispatch for control, escape and CSI
// commands: the three classifiers resolve onto the same Command space, so
// the handful of commands reachable from more than one form (IND, NEL,
// RI, HTS, DECID, SS2/SS3) only need one case here.
func (s *Screen) applyCommand(cmd Command, seq *Sequence) {
	if s.handler != nil && s.handler(cmd, seq) {
		return
	}

	switch cmd {
	case CmdNull, CmdSpa, CmdEpa, CmdSS2, CmdSS3, CmdHts, CmdST:
		// No observable grid effect; SS2/SS3 single-shifts and tab
		// stops are outside this façade's tracked state.
	case CmdBel:
		s.bell.Ring()
	case CmdBS:
		if s.cursor.X > 0 {
			s.cursor.X--
		}
		s.pendingWrap = false
	case CmdHT:
		next := ((s.cursor.X / tabWidth) + 1) * tabWidth
		if next >= s.page.Width() {
			next = s.page.Width() - 1
		}
		s.cursor.X = next
	case CmdLF, CmdVT, CmdFF, CmdInd:
		s.lineFeed()
	case CmdCR:
		s.cursor.X = 0
		s.pendingWrap = false
	case CmdNel:
		s.cursor.X = 0
		s.pendingWrap = false
		s.lineFeed()
	case CmdRI:
		s.reverseIndex()
	case CmdEnq:
		fmt.Fprint(s.response, s.answerback)
	case CmdDECID, CmdDA1:
		fmt.Fprint(s.response, "\x1b[?1;2c")
	case CmdDA2:
		fmt.Fprint(s.response, "\x1b[>0;0;0c")
	case CmdDA3:
		fmt.Fprint(s.response, "\x1bP!|00000000\x1b\\")

	case CmdSCS:
		s.cursor.GSets[gsetIndexFromFlags(seq.Flags)] = seq.Charset
	case CmdDECSC:
		saved := s.cursor.Save(s.originMode)
		s.saved = &saved
	case CmdDECRC, CmdRC:
		if s.saved != nil {
			s.originMode = s.cursor.Restore(*s.saved)
			s.clampCursor()
		}
	case CmdRIS:
		s.HardReset()
	case CmdDECSTR:
		s.SoftReset()

	case CmdCUU:
		s.cursor.Y -= int(max1(seq.Arg(0, 1)))
		s.clampCursor()
	case CmdCUD:
		s.cursor.Y += int(max1(seq.Arg(0, 1)))
		s.clampCursor()
	case CmdCUF, CmdHPR:
		s.cursor.X += int(max1(seq.Arg(0, 1)))
		s.clampCursor()
	case CmdCUB:
		s.cursor.X -= int(max1(seq.Arg(0, 1)))
		s.clampCursor()
	case CmdVPR:
		s.cursor.Y += int(max1(seq.Arg(0, 1)))
		s.clampCursor()
	case CmdCNL:
		s.cursor.X = 0
		s.cursor.Y += int(max1(seq.Arg(0, 1)))
		s.clampCursor()
	case CmdCPL:
		s.cursor.X = 0
		s.cursor.Y -= int(max1(seq.Arg(0, 1)))
		s.clampCursor()
	case CmdCHA, CmdHPA:
		s.cursor.X = int(max1(seq.Arg(0, 1))) - 1
		s.clampCursor()
	case CmdVPA:
		s.cursor.Y = int(max1(seq.Arg(0, 1))) - 1
		s.clampCursor()
	case CmdCUP, CmdHVP:
		s.cursor.Y = int(max1(seq.Arg(0, 1))) - 1
		s.cursor.X = int(max1(seq.Arg(1, 1))) - 1
		s.clampCursor()

	case CmdED, CmdDECSED:
		s.eraseDisplay(int(seq.Arg(0, 0)))
	case CmdEL, CmdDECSEL:
		s.eraseLine(int(seq.Arg(0, 0)))
	case CmdECH:
		n := int(max1(seq.Arg(0, 1)))
		s.age++
		to := minInt(s.cursor.X+n, s.page.Width()) - 1
		s.page.Erase(s.cursor.X, s.cursor.Y, to, s.cursor.Y, s.cursor.Attr, s.age, false)

	case CmdIL:
		s.age++
		s.page.InsertLines(s.cursor.Y, int(max1(seq.Arg(0, 1))), s.cursor.Attr, s.age)
	case CmdDL:
		s.age++
		s.page.DeleteLines(s.cursor.Y, int(max1(seq.Arg(0, 1))), s.cursor.Attr, s.age)
	case CmdICH:
		s.age++
		s.page.InsertCells(s.cursor.X, s.cursor.Y, int(max1(seq.Arg(0, 1))), s.cursor.Attr, s.age)
	case CmdDCH:
		s.age++
		s.page.DeleteCells(s.cursor.X, s.cursor.Y, int(max1(seq.Arg(0, 1))), s.cursor.Attr, s.age)

	case CmdSU:
		s.age++
		s.page.ScrollUp(int(max1(seq.Arg(0, 1))), s.cursor.Attr, s.age, s.history)
	case CmdSD:
		s.age++
		s.page.ScrollDown(int(max1(seq.Arg(0, 1))), s.cursor.Attr, s.age, s.history)
	case CmdDECSTBM:
		top := int(seq.Arg(0, 1)) - 1
		bottom := int(seq.Arg(1, int32(s.page.Height()))) - 1
		if bottom < top {
			logWarnf(s.log, "ignoring DECSTBM with bottom %d < top %d", bottom, top)
			break
		}
		s.page.SetScrollRegion(top, bottom-top+1)
		s.cursor.X, s.cursor.Y = 0, 0
		s.pendingWrap = false

	case CmdSGR:
		s.applySGR(seq)

	case CmdSMANSI, CmdSMDEC:
		s.setModes(seq, true)
	case CmdRMANSI, CmdRMDEC:
		s.setModes(seq, false)

	default:
		logDebugf(s.log, "unhandled command %d (terminator %q)", cmd, seq.Terminator)
	}
}

func max1(v int32) int32 {
	if v < 1 {
		return 1
	}
	return v
}

func (s *Screen) eraseDisplay(mode int) {
	s.age++
	switch mode {
	case 0:
		s.page.Erase(s.cursor.X, s.cursor.Y, s.page.Width()-1, s.page.Height()-1, s.cursor.Attr, s.age, false)
	case 1:
		s.page.Erase(0, 0, s.cursor.X, s.cursor.Y, s.cursor.Attr, s.age, false)
	case 2, 3:
		s.page.Erase(0, 0, s.page.Width()-1, s.page.Height()-1, s.cursor.Attr, s.age, false)
	}
}

func (s *Screen) eraseLine(mode int) {
	s.age++
	switch mode {
	case 0:
		s.page.Erase(s.cursor.X, s.cursor.Y, s.page.Width()-1, s.cursor.Y, s.cursor.Attr, s.age, false)
	case 1:
		s.page.Erase(0, s.cursor.Y, s.cursor.X, s.cursor.Y, s.cursor.Attr, s.age, false)
	case 2:
		s.page.Erase(0, s.cursor.Y, s.page.Width()-1, s.cursor.Y, s.cursor.Attr, s.age, false)
	}
}

// setModes applies the handful of SM/RM and DECSET/DECRST parameters this
// façade tracks; anything else is logged and otherwise a no-op, matching
// this module's general stance toward unimplemented command detail.
func (s *Screen) setModes(seq *Sequence, enable bool) {
	dec := seq.Flags&SeqFlagWhat != 0
	for i := 0; i < seq.NArgs; i++ {
		n := seq.Arg(i, -1)
		if n < 0 {
			continue
		}
		var bit Mode
		switch {
		case dec && n == 1:
			bit = ModeCursorKeys
		case dec && n == 6:
			bit = ModeOrigin
			s.originMode = enable
		case dec && n == 7:
			bit = ModeAutoWrap
		case dec && n == 25:
			bit = ModeShowCursor
		case !dec && n == 4:
			bit = ModeInsert
		default:
			logDebugf(s.log, "unhandled mode %d (dec=%v enable=%v)", n, dec, enable)
			continue
		}
		if enable {
			s.modes |= bit
		} else {
			s.modes &^= bit
		}
	}
}

// applySGR walks every parameter in a Select Graphic Rendition sequence,
// folding each onto the cursor's pen. An SGR with no arguments at all
// means "reset", same as an explicit 0.
func (s *Screen) applySGR(seq *Sequence) {
	if seq.NArgs == 0 {
		s.cursor.Attr = Attr{}
		return
	}
	i := 0
	for i < seq.NArgs {
		n := seq.Arg(i, 0)
		switch n {
		case 0:
			s.cursor.Attr = Attr{}
		case 1:
			s.cursor.Attr.Bold = true
		case 3:
			s.cursor.Attr.Italic = true
		case 4:
			s.cursor.Attr.Underline = true
		case 5:
			s.cursor.Attr.Blink = true
		case 7:
			s.cursor.Attr.Inverse = true
		case 8:
			s.cursor.Attr.Hidden = true
		case 22:
			s.cursor.Attr.Bold = false
		case 23:
			s.cursor.Attr.Italic = false
		case 24:
			s.cursor.Attr.Underline = false
		case 25:
			s.cursor.Attr.Blink = false
		case 27:
			s.cursor.Attr.Inverse = false
		case 28:
			s.cursor.Attr.Hidden = false
		case 39:
			s.cursor.Attr.Fg = Color{}
		case 49:
			s.cursor.Attr.Bg = Color{}
		case 38, 48:
			consumed := s.applyExtendedColor(seq, i, n == 38)
			i += consumed
			continue
		default:
			switch {
			case n >= 30 && n <= 37:
				s.cursor.Attr.Fg = Color{Kind: ColorNamed, Named: NamedCode(n - 30)}
			case n >= 40 && n <= 47:
				s.cursor.Attr.Bg = Color{Kind: ColorNamed, Named: NamedCode(n - 40)}
			case n >= 90 && n <= 97:
				s.cursor.Attr.Fg = Color{Kind: ColorNamed, Named: NamedCode(n - 90 + 8)}
			case n >= 100 && n <= 107:
				s.cursor.Attr.Bg = Color{Kind: ColorNamed, Named: NamedCode(n - 100 + 8)}
			default:
				logDebugf(s.log, "unhandled SGR parameter %d", n)
			}
		}
		i++
	}
}

// applyExtendedColor handles the ";"-separated 38/48 extended-color forms
// (256-color and direct RGB), returning how many arguments (starting at
// i, the 38/48 itself) it consumed.
func (s *Screen) applyExtendedColor(seq *Sequence, i int, isFg bool) int {
	kind := seq.Arg(i+1, -1)
	switch kind {
	case 5:
		idx := seq.Arg(i+2, 0)
		c := Color{Kind: ColorPalette256, Palette: uint8(idx)}
		if isFg {
			s.cursor.Attr.Fg = c
		} else {
			s.cursor.Attr.Bg = c
		}
		return 3
	case 2:
		r, g, b := seq.Arg(i+2, 0), seq.Arg(i+3, 0), seq.Arg(i+4, 0)
		c := Color{Kind: ColorRGB, R: uint8(r), G: uint8(g), B: uint8(b)}
		if isFg {
			s.cursor.Attr.Fg = c
		} else {
			s.cursor.Attr.Bg = c
		}
		return 5
	default:
		return 1
	}
}
