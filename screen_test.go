package devcon

import (
	"bytes"
	"testing"
)

type countingBell struct{ rings int }

func (b *countingBell) Ring() { b.rings++ }

func drawText(s *Screen) []string {
	grid := make([][]rune, s.Height())
	for y := range grid {
		grid[y] = make([]rune, s.Width())
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}
	s.Draw(func(x, y int, attr Attr, ch []rune, w int) error {
		if len(ch) > 0 {
			grid[y][x] = ch[0]
		}
		return nil
	})
	out := make([]string, len(grid))
	for y, row := range grid {
		out[y] = string(row)
	}
	return out
}

func TestNewScreenDefaultSize(t *testing.T) {
	s := NewScreen()
	if s.Width() != 80 || s.Height() != 24 {
		t.Errorf("default size = %dx%d, want 80x24", s.Width(), s.Height())
	}
}

func TestNewScreenCustomSize(t *testing.T) {
	s := NewScreen(WithSize(10, 4))
	if s.Width() != 10 || s.Height() != 4 {
		t.Errorf("size = %dx%d, want 10x4", s.Width(), s.Height())
	}
}

func TestFeedTextWritesGraphicCells(t *testing.T) {
	s := NewScreen(WithSize(10, 2))
	if err := s.FeedText([]byte("hi")); err != nil {
		t.Fatalf("FeedText() error = %v", err)
	}
	rows := drawText(s)
	if rows[0][:2] != "hi" {
		t.Errorf("row0 = %q, want it to start with %q", rows[0], "hi")
	}
	if s.CursorState().X != 2 || s.CursorState().Y != 0 {
		t.Errorf("cursor = (%d, %d), want (2, 0)", s.CursorState().X, s.CursorState().Y)
	}
}

func TestCarriageReturnLineFeed(t *testing.T) {
	s := NewScreen(WithSize(10, 3))
	s.FeedText([]byte("ab\r\ncd"))
	rows := drawText(s)
	if rows[0][:2] != "ab" {
		t.Errorf("row0 = %q, want %q", rows[0], "ab")
	}
	if rows[1][:2] != "cd" {
		t.Errorf("row1 = %q, want %q", rows[1], "cd")
	}
}

func TestDeferredAutoWrap(t *testing.T) {
	s := NewScreen(WithSize(3, 2))
	s.FeedText([]byte("abc")) // fills the last column, cursor parks there
	if s.CursorState().X != 2 || s.CursorState().Y != 0 {
		t.Fatalf("cursor after filling the line = (%d, %d), want (2, 0)", s.CursorState().X, s.CursorState().Y)
	}
	s.FeedText([]byte("d")) // forces the deferred wrap
	rows := drawText(s)
	if rows[0] != "abc" {
		t.Errorf("row0 = %q, want %q", rows[0], "abc")
	}
	if rows[1][:1] != "d" {
		t.Errorf("row1 = %q, want to start with %q", rows[1], "d")
	}
	if s.CursorState().Y != 1 || s.CursorState().X != 1 {
		t.Errorf("cursor after wrap = (%d, %d), want (1, 1)", s.CursorState().X, s.CursorState().Y)
	}
}

func TestCUPMovesCursor(t *testing.T) {
	s := NewScreen(WithSize(10, 10))
	s.FeedText([]byte("\x1b[3;4H"))
	if s.CursorState().Y != 2 || s.CursorState().X != 3 {
		t.Errorf("cursor after CUP 3;4 = (%d, %d), want (3, 2)", s.CursorState().X, s.CursorState().Y)
	}
}

func TestSGRSetsAttributes(t *testing.T) {
	s := NewScreen(WithSize(10, 1))
	s.FeedText([]byte("\x1b[1;31mX"))
	if !s.CursorState().Attr.Bold {
		t.Error("expected Bold to be set after SGR 1")
	}
	if s.CursorState().Attr.Fg.Kind != ColorNamed || s.CursorState().Attr.Fg.Named != NamedRed {
		t.Errorf("Fg = %+v, want NamedRed", s.CursorState().Attr.Fg)
	}
}

func TestSGRResetClearsAttributes(t *testing.T) {
	s := NewScreen(WithSize(10, 1))
	s.FeedText([]byte("\x1b[1;31m\x1b[0m"))
	if s.CursorState().Attr != (Attr{}) {
		t.Errorf("Attr after SGR 0 = %+v, want zero value", s.CursorState().Attr)
	}
}

func TestEraseDisplay(t *testing.T) {
	s := NewScreen(WithSize(5, 2))
	s.FeedText([]byte("abcde\r\nfghij"))
	s.FeedText([]byte("\x1b[H\x1b[2J")) // CUP home, then ED 2 (whole display)
	rows := drawText(s)
	if rows[0] != "     " || rows[1] != "     " {
		t.Errorf("rows after ED 2 = %q / %q, want both blank", rows[0], rows[1])
	}
}

func TestBellInvokesProvider(t *testing.T) {
	bell := &countingBell{}
	s := NewScreen(WithBell(bell))
	s.FeedText([]byte("\x07"))
	if bell.rings != 1 {
		t.Errorf("bell.rings = %d, want 1", bell.rings)
	}
}

func TestAnswerbackResponse(t *testing.T) {
	var buf bytes.Buffer
	s := NewScreen(WithAnswerback("hello"), WithResponse(&buf))
	s.FeedText([]byte("\x05")) // ENQ
	if buf.String() != "hello" {
		t.Errorf("response = %q, want %q", buf.String(), "hello")
	}
}

func TestDA1Response(t *testing.T) {
	var buf bytes.Buffer
	s := NewScreen(WithResponse(&buf))
	s.FeedText([]byte("\x1b[c"))
	if buf.Len() == 0 {
		t.Error("expected a DA1 response to be written")
	}
}

func TestFeedKeyboardArrowNormalMode(t *testing.T) {
	s := NewScreen()
	got := s.FeedKeyboard(KeyUp, 0)
	want := []byte{0x1b, '[', 'A'}
	if !bytes.Equal(got, want) {
		t.Errorf("FeedKeyboard(KeyUp) = %v, want %v", got, want)
	}
}

func TestFeedKeyboardArrowApplicationMode(t *testing.T) {
	s := NewScreen()
	s.FeedText([]byte("\x1b[?1h")) // DECSET 1: application cursor keys
	got := s.FeedKeyboard(KeyUp, 0)
	want := []byte{0x1b, 'O', 'A'}
	if !bytes.Equal(got, want) {
		t.Errorf("FeedKeyboard(KeyUp) in app mode = %v, want %v", got, want)
	}
}

func TestFeedKeyboardPlainAscii(t *testing.T) {
	s := NewScreen()
	got := s.FeedKeyboard(KeyNone, 'a')
	if string(got) != "a" {
		t.Errorf("FeedKeyboard(KeyNone, 'a') = %q, want %q", got, "a")
	}
}

func TestHardResetClearsGrid(t *testing.T) {
	s := NewScreen(WithSize(5, 2))
	s.FeedText([]byte("abcde"))
	s.HardReset()
	rows := drawText(s)
	if rows[0] != "     " {
		t.Errorf("row0 after HardReset = %q, want blank", rows[0])
	}
	if s.CursorState().X != 0 || s.CursorState().Y != 0 {
		t.Errorf("cursor after HardReset = (%d, %d), want (0, 0)", s.CursorState().X, s.CursorState().Y)
	}
}

func TestSoftResetPreservesGridContent(t *testing.T) {
	s := NewScreen(WithSize(5, 2))
	s.FeedText([]byte("\x1b[1mabcde"))
	s.FeedText([]byte("\x1b[!p")) // DECSTR
	rows := drawText(s)
	if rows[0] != "abcde" {
		t.Errorf("row0 after DECSTR = %q, want grid content preserved", rows[0])
	}
	if s.CursorState().Attr.Bold {
		t.Error("expected pen to reset to defaults after DECSTR")
	}
}

func TestSaveRestoreCursor(t *testing.T) {
	s := NewScreen(WithSize(10, 10))
	s.FeedText([]byte("\x1b[5;5H\x1b7")) // move, then DECSC
	s.FeedText([]byte("\x1b[1;1H"))      // move elsewhere
	s.FeedText([]byte("\x1b8"))          // DECRC
	if s.CursorState().X != 4 || s.CursorState().Y != 4 {
		t.Errorf("cursor after DECRC = (%d, %d), want (4, 4)", s.CursorState().X, s.CursorState().Y)
	}
}

func TestCommandHandlerIntercepts(t *testing.T) {
	var seen Command
	s := NewScreen(WithSize(5, 1), WithCommandHandler(func(cmd Command, seq *Sequence) bool {
		seen = cmd
		return cmd == CmdBel
	}))
	s.FeedText([]byte("\x07"))
	if seen != CmdBel {
		t.Errorf("handler saw %v, want CmdBel", seen)
	}
}

func TestResizeClampsToNewBounds(t *testing.T) {
	s := NewScreen(WithSize(10, 10))
	s.FeedText([]byte("\x1b[9;9H"))
	if err := s.Resize(5, 5); err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	if s.CursorState().X >= 5 || s.CursorState().Y >= 5 {
		t.Errorf("cursor after shrink = (%d, %d), want clamped inside 5x5", s.CursorState().X, s.CursorState().Y)
	}
}

func TestResizeRejectsNonPositive(t *testing.T) {
	s := NewScreen()
	if err := s.Resize(0, 5); err == nil {
		t.Error("expected an error resizing to a non-positive dimension")
	}
}
