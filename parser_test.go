package devcon

import "testing"

func feedString(p *Parser, s string) (EventKind, *Sequence) {
	var ev EventKind
	var seq *Sequence
	for _, r := range s {
		ev, seq = p.Feed(r)
	}
	return ev, seq
}

func TestParserGraphicCharacter(t *testing.T) {
	p := NewParser()
	ev, seq := p.Feed('A')
	if ev != EventGraphic {
		t.Fatalf("Feed('A') = %v, want EventGraphic", ev)
	}
	if seq.Terminator != 'A' {
		t.Errorf("seq.Terminator = %q, want 'A'", seq.Terminator)
	}
}

func TestParserControlCharacter(t *testing.T) {
	p := NewParser()
	ev, seq := p.Feed('\n')
	if ev != EventControl {
		t.Fatalf("Feed('\\n') = %v, want EventControl", ev)
	}
	if seq.Command != CmdLF {
		t.Errorf("seq.Command = %v, want CmdLF", seq.Command)
	}
}

func TestParserCSISequence(t *testing.T) {
	p := NewParser()
	ev, seq := feedString(p, "\x1b[1;2H")
	if ev != EventCSI {
		t.Fatalf("Feed() on CSI sequence = %v, want EventCSI", ev)
	}
	if seq.Command != CmdCUP {
		t.Errorf("seq.Command = %v, want CmdCUP", seq.Command)
	}
	if seq.NArgs != 2 {
		t.Fatalf("seq.NArgs = %d, want 2", seq.NArgs)
	}
	if seq.Arg(0, -1) != 1 || seq.Arg(1, -1) != 2 {
		t.Errorf("args = %d, %d, want 1, 2", seq.Arg(0, -1), seq.Arg(1, -1))
	}
}

func TestParserCSIMissingArgIsSentinel(t *testing.T) {
	p := NewParser()
	_, seq := feedString(p, "\x1b[H") // CUP with no args at all
	if seq.Arg(0, 42) != 42 {
		t.Errorf("Arg(0, 42) = %d, want the default (42) for an omitted arg", seq.Arg(0, 42))
	}
}

func TestParserEscapeSequence(t *testing.T) {
	p := NewParser()
	ev, seq := feedString(p, "\x1b7") // DECSC
	if ev != EventEscape {
		t.Fatalf("Feed() on ESC 7 = %v, want EventEscape", ev)
	}
	if seq.Command != CmdDECSC {
		t.Errorf("seq.Command = %v, want CmdDECSC", seq.Command)
	}
}

func TestParserIntermediateBytesFoldIntoFlags(t *testing.T) {
	p := NewParser()
	_, seq := feedString(p, "\x1b#8") // DECALN
	if seq.Command != CmdDECALN {
		t.Errorf("seq.Command = %v, want CmdDECALN", seq.Command)
	}
}

func TestParserCANAbortsSequence(t *testing.T) {
	p := NewParser()
	feedString(p, "\x1b[1;2") // partial CSI, no terminator yet
	ev, _ := p.Feed(0x18)     // CAN
	if ev != EventIgnore {
		t.Fatalf("Feed(CAN) = %v, want EventIgnore", ev)
	}
	// the parser must be back in ground: a plain graphic character works again.
	ev, seq := p.Feed('x')
	if ev != EventGraphic || seq.Terminator != 'x' {
		t.Errorf("Feed('x') after CAN = %v/%q, want EventGraphic/'x'", ev, seq.Terminator)
	}
}

func TestParserSequentialCallsDontLeakState(t *testing.T) {
	p := NewParser()
	feedString(p, "\x1b[5m") // SGR with arg 5 (blink)
	_, seq := feedString(p, "\x1b[m")
	if seq.Command != CmdSGR {
		t.Fatalf("seq.Command = %v, want CmdSGR", seq.Command)
	}
	if seq.Arg(0, -1) != -1 {
		t.Errorf("Arg(0, -1) = %d, want -1 (no leaked arg from the previous sequence)", seq.Arg(0, -1))
	}
}

func TestParserSCSCarriesCharset(t *testing.T) {
	p := NewParser()
	ev, seq := feedString(p, "\x1b(0") // designate DEC Special Graphic into G0
	if ev != EventEscape || seq.Command != CmdSCS {
		t.Fatalf("Feed() on ESC ( 0 = %v/%v, want EventEscape/CmdSCS", ev, seq.Command)
	}
	if seq.Charset != CharsetDECSpecialGraphic {
		t.Errorf("seq.Charset = %v, want CharsetDECSpecialGraphic", seq.Charset)
	}
}

func TestParserOSCBodyNotDispatched(t *testing.T) {
	p := NewParser()
	var lastEv EventKind
	for _, r := range "\x1b]0;title\x07" {
		lastEv, _ = p.Feed(r)
	}
	if lastEv != EventNone {
		t.Errorf("final event for a terminated OSC = %v, want EventNone (no payload dispatch)", lastEv)
	}
}
