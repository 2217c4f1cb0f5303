// Package devcon implements the character-storage and control-sequence
// core of a VT/DEC-compatible terminal emulator: UTF-8 decoding, combining
// marks, cell/line/page storage with scrollback, a full VT500-style parser
// state machine, and a command classifier covering the C0/C1, escape and
// CSI repertoires. A lightweight [Screen] façade ties these together for
// callers that just want to feed bytes in and read cells back out.
//
// # Quick Start
//
//	scr := devcon.NewScreen(devcon.WithSize(80, 24))
//	scr.FeedText([]byte("\x1b[31mHello \x1b[32mWorld\x1b[0m!"))
//	scr.Draw(func(x, y int, attr devcon.Attr, ch []rune, w int) error {
//	    // render ch at x,y with attr
//	    return nil
//	})
//
// # Architecture
//
// The package is organized bottom-up:
//
//   - [Char]: a packed character -- a base codepoint plus any combining marks
//   - [Cell]: one [Char] plus [Attr] and a write-age
//   - [Line] / [Page]: a row of cells, and the visible grid of rows
//   - [History]: scrollback storage for lines pushed off the page
//   - [Decoder]: a terminal-tolerant, byte-at-a-time UTF-8 decoder
//   - [Charset]: the G0-G3 SCS designator repertoire
//   - [Sequence] / [Command]: a parsed control sequence and what it means
//   - [Parser]: the state machine that turns a byte stream into [Sequence]s
//   - [Screen]: wires a [Parser] to a [Page] and dispatches [Command]s
//
// # Parsing without a Screen
//
// Everything below [Screen] is usable on its own. A caller that wants to
// classify sequences without maintaining a grid can drive [Parser]
// directly:
//
//	p := devcon.NewParser()
//	for _, r := range "\x1b[1;2H" {
//	    if ev, seq := p.Feed(r); ev == devcon.EventCSI {
//	        fmt.Println(seq.Command, seq.NArgs)
//	    }
//	}
//
// # Screen
//
// [Screen] owns a [Page], a [History], a [Parser] and the current [Cursor],
// and exposes the operations a host terminal needs: feeding bytes in,
// feeding key presses, resizing, soft/hard reset, walking the visible
// grid, and configuring the answerback string. It applies the subset of
// classified commands that have an observable effect on the grid --
// cursor movement, erase/insert/delete, scrolling, SGR, save/restore
// cursor, and the two reset forms -- and logs anything else at [DEBUG]
// rather than rejecting it. A [CommandHandler] can intercept any command
// before Screen's own dispatch runs, for hosts that want to extend or
// override specific sequences (OSC title/clipboard handling, mouse
// reporting, and similar host-owned concerns are intentionally left to
// that hook rather than built in).
//
// # Providers
//
// [ResponseProvider] and [BellProvider] are the two optional callouts
// Screen makes; both default to no-ops via [NoopResponse] and [NoopBell].
//
// # Non-goals
//
// This package does not implement glyph rendering, sixel/Kitty inline
// images, OSC payload dispatch (title, clipboard, hyperlinks), or mouse
// reporting. [Render] and [WritePNG] exist purely as debug tooling for
// tests, not a production display path.
package devcon
