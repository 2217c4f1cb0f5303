package devcon

// EventKind classifies what a single Parser.Feed call produced. Values
// mirror the source's devcon_seq_type enum order.
type EventKind int

const (
	EventNone    EventKind = iota // placeholder, no sequence parsed
	EventIgnore                   // no-op character
	EventGraphic                  // graphic character
	EventControl                  // control character
	EventEscape                   // escape sequence
	EventCSI                      // control sequence function
	EventDCS                      // device control string
	EventOSC                      // operating system control
)

// parserState is one of the Paul Williams VT500 parser states. The source
// also has a STATE_NONE used only before the very first byte is fed and
// as a "don't change state" sentinel inside transitions; stateGround
// serves both roles here since a zero Parser already starts in ground.
type parserState int

const (
	stateGround parserState = iota
	stateEsc
	stateEscInt
	stateCSIEntry
	stateCSIParam
	stateCSIInt
	stateCSIIgnore
	stateDCSEntry
	stateDCSParam
	stateDCSInt
	stateDCSPass
	stateDCSIgnore
	stateOSCString
	stateSTIgnore
)

// Parser recognizes control sequences out of a raw codepoint stream one
// rune at a time, with no lookahead or buffering beyond the sequence
// currently being collected. The zero value is ready to use.
type Parser struct {
	state parserState
	seq   Sequence
}

// NewParser returns a Parser ready to start feeding from stateGround.
func NewParser() *Parser {
	return &Parser{}
}

func inRange(r, lo, hi rune) bool {
	return r >= lo && r <= hi
}

// clear resets the in-progress sequence. Called on every CSI/DCS/OSC/ESC
// entry so a malformed or aborted sequence never leaks state into the
// next one.
func (p *Parser) clear() {
	p.seq = Sequence{}
	for i := range p.seq.Args {
		p.seq.Args[i] = -1
	}
}

func (p *Parser) ignore(raw rune) EventKind {
	p.clear()
	p.seq.Terminator = raw
	return EventIgnore
}

func (p *Parser) print(raw rune) EventKind {
	p.clear()
	p.seq.Terminator = raw
	return EventGraphic
}

// execute handles a bare C0/C1 control character. This clears the command
// straight to CmdNone before classifying it; the source instead sets it to
// "graphic" first and immediately overwrites that with the real
// classification, a pointless double-write this rewrite doesn't carry.
func (p *Parser) execute(raw rune) EventKind {
	p.clear()
	p.seq.Terminator = raw
	p.seq.Command = classifyControl(raw)
	return EventControl
}

// collect folds an intermediate byte (0x20-0x3f) into the sequence's flag
// bitmask. The state machine only ever calls this with bytes that are
// valid leading markers or trailing intermediates for whichever state is
// currently active, so there's no need to re-validate the range's meaning
// here, only that it fits the bitmask.
func (p *Parser) collect(raw rune) {
	if raw >= 0x20 && raw <= 0x3f {
		p.seq.Flags |= SeqFlag(1 << uint(raw-0x20))
	}
}

// param folds a digit into the current argument, or (on ';') advances to
// the next one. Sub-parameters (':') are never routed here -- every state
// that could see a ':' treats it as a parse error and aborts into an
// ignore state instead.
func (p *Parser) param(raw rune) {
	if raw == ';' {
		if p.seq.NArgs < maxArgs {
			p.seq.NArgs++
		}
		return
	}
	if p.seq.NArgs >= maxArgs {
		return
	}
	if raw >= '0' && raw <= '9' {
		n := p.seq.Args[p.seq.NArgs]
		if n < 0 {
			n = 0
		}
		n = n*10 + int32(raw-'0')
		if n > 0xffff {
			n = 0xffff
		}
		p.seq.Args[p.seq.NArgs] = n
	}
}

func (p *Parser) escDispatch(raw rune) EventKind {
	p.seq.Terminator = raw
	p.seq.Command = classifyEscape(&p.seq)
	return EventEscape
}

// csiDispatch finalizes the argument count (the last argument is only
// ever terminated by the dispatching byte itself, never a trailing ';')
// before classifying.
func (p *Parser) csiDispatch(raw rune) EventKind {
	if p.seq.NArgs < maxArgs {
		if p.seq.NArgs > 0 || p.seq.Args[p.seq.NArgs] >= 0 {
			p.seq.NArgs++
		}
	}
	p.seq.Terminator = raw
	p.seq.Command = classifyCSI(&p.seq)
	return EventCSI
}

// Feed advances the state machine by one rune and returns what it
// produced. EventNone means raw only moved internal state (e.g. collecting
// an intermediate or digit); anything else carries a freshly populated
// Sequence, valid only until the next Feed call.
//
// CAN, SUB, most C1 controls, ESC, SOS/PM/APC, DCS, OSC and CSI are
// special-cased here before falling through to the state table, exactly
// as the source's top-level dispatcher does: DEC treats GR codes as GL,
// which this parser doesn't special-case since it requires UTF-8 input,
// and C1 codes always cancel whatever sequence is in progress rather than
// being collected into it.
func (p *Parser) Feed(raw rune) (EventKind, *Sequence) {
	var ev EventKind

	switch {
	case raw == 0x18: // CAN
		p.state = stateGround
		ev = p.ignore(raw)
	case raw == 0x1a: // SUB
		p.state = stateGround
		ev = p.execute(raw)
	case inRange(raw, 0x80, 0x8f), inRange(raw, 0x91, 0x97), inRange(raw, 0x99, 0x9a):
		// C1 \ {DCS, SOS, CSI, ST, OSC, PM, APC}
		p.state = stateGround
		ev = p.execute(raw)
	case raw == 0x1b: // ESC
		p.state = stateEsc
		p.clear()
		ev = EventNone
	case raw == 0x98, raw == 0x9e, raw == 0x9f: // SOS, PM, APC
		p.state = stateSTIgnore
		ev = EventNone
	case raw == 0x90: // DCS
		p.state = stateDCSEntry
		p.clear()
		ev = EventNone
	case raw == 0x9d: // OSC
		p.state = stateOSCString
		p.clear()
		ev = EventNone
	case raw == 0x9b: // CSI
		p.state = stateCSIEntry
		p.clear()
		ev = EventNone
	default:
		ev = p.feedToState(raw)
	}

	if ev == EventNone {
		return ev, nil
	}
	return ev, &p.seq
}

func (p *Parser) feedToState(raw rune) EventKind {
	switch p.state {
	case stateGround:
		switch {
		case inRange(raw, 0x00, 0x1f), inRange(raw, 0x80, 0x9b), inRange(raw, 0x9d, 0x9f):
			return p.execute(raw)
		case raw == 0x9c: // ST
			return p.ignore(raw)
		default:
			return p.print(raw)
		}

	case stateEsc:
		switch {
		case inRange(raw, 0x00, 0x1f):
			return p.execute(raw)
		case inRange(raw, 0x20, 0x2f):
			p.state = stateEscInt
			p.collect(raw)
			return EventNone
		case raw == 0x50: // 'P'
			p.state = stateDCSEntry
			p.clear()
			return EventNone
		case raw == 0x5b: // '['
			p.state = stateCSIEntry
			p.clear()
			return EventNone
		case raw == 0x5d: // ']'
			p.state = stateOSCString
			p.clear()
			return EventNone
		case raw == 0x58, raw == 0x5e, raw == 0x5f: // 'X', '^', '_'
			p.state = stateSTIgnore
			return EventNone
		case raw == 0x7f: // DEL
			return p.ignore(raw)
		case raw == 0x9c: // ST
			p.state = stateGround
			return p.ignore(raw)
		case inRange(raw, 0x30, 0x4f), inRange(raw, 0x51, 0x57), inRange(raw, 0x59, 0x5a),
			raw == 0x5c, inRange(raw, 0x60, 0x7e):
			p.state = stateGround
			return p.escDispatch(raw)
		default:
			p.state = stateEscInt
			p.collect(raw)
			return EventNone
		}

	case stateEscInt:
		switch {
		case inRange(raw, 0x00, 0x1f):
			return p.execute(raw)
		case inRange(raw, 0x20, 0x2f):
			p.collect(raw)
			return EventNone
		case inRange(raw, 0x30, 0x7e):
			p.state = stateGround
			return p.escDispatch(raw)
		case raw == 0x7f:
			return p.ignore(raw)
		case raw == 0x9c:
			p.state = stateGround
			return p.ignore(raw)
		default:
			p.collect(raw)
			return EventNone
		}

	case stateCSIEntry:
		switch {
		case inRange(raw, 0x00, 0x1f):
			return p.execute(raw)
		case inRange(raw, 0x20, 0x2f):
			p.state = stateCSIInt
			p.collect(raw)
			return EventNone
		case raw == 0x3a: // ':'
			p.state = stateCSIIgnore
			return EventNone
		case inRange(raw, 0x30, 0x39), raw == 0x3b: // digit, ';'
			p.state = stateCSIParam
			p.param(raw)
			return EventNone
		case inRange(raw, 0x3c, 0x3f): // '<' - '?'
			p.state = stateCSIParam
			p.collect(raw)
			return EventNone
		case inRange(raw, 0x40, 0x7e):
			p.state = stateGround
			return p.csiDispatch(raw)
		case raw == 0x7f:
			return p.ignore(raw)
		case raw == 0x9c:
			p.state = stateGround
			return p.ignore(raw)
		default:
			p.state = stateCSIIgnore
			return EventNone
		}

	case stateCSIParam:
		switch {
		case inRange(raw, 0x00, 0x1f):
			return p.execute(raw)
		case inRange(raw, 0x20, 0x2f):
			p.state = stateCSIInt
			p.collect(raw)
			return EventNone
		case inRange(raw, 0x30, 0x39), raw == 0x3b:
			p.param(raw)
			return EventNone
		case raw == 0x3a, inRange(raw, 0x3c, 0x3f):
			p.state = stateCSIIgnore
			return EventNone
		case inRange(raw, 0x40, 0x7e):
			p.state = stateGround
			return p.csiDispatch(raw)
		case raw == 0x7f:
			return p.ignore(raw)
		case raw == 0x9c:
			p.state = stateGround
			return p.ignore(raw)
		default:
			p.state = stateCSIIgnore
			return EventNone
		}

	case stateCSIInt:
		switch {
		case inRange(raw, 0x00, 0x1f):
			return p.execute(raw)
		case inRange(raw, 0x20, 0x2f):
			p.collect(raw)
			return EventNone
		case inRange(raw, 0x30, 0x3f):
			p.state = stateCSIIgnore
			return EventNone
		case inRange(raw, 0x40, 0x7e):
			p.state = stateGround
			return p.csiDispatch(raw)
		case raw == 0x7f:
			return p.ignore(raw)
		case raw == 0x9c:
			p.state = stateGround
			return p.ignore(raw)
		default:
			p.state = stateCSIIgnore
			return EventNone
		}

	case stateCSIIgnore:
		switch {
		case inRange(raw, 0x00, 0x1f):
			return p.execute(raw)
		case inRange(raw, 0x20, 0x3f):
			return EventNone
		case inRange(raw, 0x40, 0x7e):
			p.state = stateGround
			return EventNone
		case raw == 0x7f:
			return p.ignore(raw)
		case raw == 0x9c:
			p.state = stateGround
			return p.ignore(raw)
		default:
			return EventNone
		}

	case stateDCSEntry:
		switch {
		case inRange(raw, 0x00, 0x1f):
			return p.ignore(raw)
		case inRange(raw, 0x20, 0x2f):
			p.state = stateDCSInt
			p.collect(raw)
			return EventNone
		case raw == 0x3a:
			p.state = stateDCSIgnore
			return EventNone
		case inRange(raw, 0x30, 0x39), raw == 0x3b:
			p.state = stateDCSParam
			p.param(raw)
			return EventNone
		case inRange(raw, 0x3c, 0x3f):
			p.state = stateDCSParam
			p.collect(raw)
			return EventNone
		case inRange(raw, 0x40, 0x7e):
			p.state = stateDCSPass
			return EventNone // ACTION_DCS_CONSUME: not implemented
		case raw == 0x7f:
			return p.ignore(raw)
		case raw == 0x9c:
			p.state = stateGround
			return p.ignore(raw)
		default:
			p.state = stateDCSPass
			return EventNone
		}

	case stateDCSParam:
		switch {
		case inRange(raw, 0x00, 0x1f):
			return p.ignore(raw)
		case inRange(raw, 0x20, 0x2f):
			p.state = stateDCSInt
			p.collect(raw)
			return EventNone
		case inRange(raw, 0x30, 0x39), raw == 0x3b:
			p.param(raw)
			return EventNone
		case raw == 0x3a, inRange(raw, 0x3c, 0x3f):
			p.state = stateDCSIgnore
			return EventNone
		case inRange(raw, 0x40, 0x7e):
			p.state = stateDCSPass
			return EventNone
		case raw == 0x7f:
			return p.ignore(raw)
		case raw == 0x9c:
			p.state = stateGround
			return p.ignore(raw)
		default:
			p.state = stateDCSPass
			return EventNone
		}

	case stateDCSInt:
		switch {
		case inRange(raw, 0x00, 0x1f):
			return p.ignore(raw)
		case inRange(raw, 0x20, 0x2f):
			p.collect(raw)
			return EventNone
		case inRange(raw, 0x30, 0x3f):
			p.state = stateDCSIgnore
			return EventNone
		case inRange(raw, 0x40, 0x7e):
			p.state = stateDCSPass
			return EventNone
		case raw == 0x7f:
			return p.ignore(raw)
		case raw == 0x9c:
			p.state = stateGround
			return p.ignore(raw)
		default:
			p.state = stateDCSPass
			return EventNone
		}

	case stateDCSPass:
		// The DCS payload itself (ACTION_DCS_COLLECT/_DISPATCH) is never
		// dispatched, only tracked well enough to resynchronize on ST --
		// payload handling is out of scope, matching the source, where
		// these actions are themselves stubs.
		switch {
		case inRange(raw, 0x00, 0x7e):
			return EventNone
		case raw == 0x7f:
			return p.ignore(raw)
		case raw == 0x9c:
			p.state = stateGround
			return EventNone
		default:
			return EventNone
		}

	case stateDCSIgnore:
		switch {
		case inRange(raw, 0x00, 0x7f):
			return p.ignore(raw)
		case raw == 0x9c:
			p.state = stateGround
			return EventNone
		default:
			return EventNone
		}

	case stateOSCString:
		switch {
		case inRange(raw, 0x00, 0x06), inRange(raw, 0x08, 0x1f):
			return p.ignore(raw)
		case raw == 0x07, raw == 0x9c:
			p.state = stateGround
			return EventNone // ACTION_OSC_DISPATCH: not implemented
		case inRange(raw, 0x20, 0x7f):
			return EventNone // ACTION_OSC_COLLECT: not implemented
		default:
			return EventNone
		}

	case stateSTIgnore:
		switch {
		case inRange(raw, 0x00, 0x7f):
			return p.ignore(raw)
		case raw == 0x9c:
			p.state = stateGround
			return p.ignore(raw)
		default:
			return EventNone
		}
	}

	return EventNone
}
