package devcon

import "testing"

func TestClassifyControl(t *testing.T) {
	tests := []struct {
		b    rune
		want Command
	}{
		{0x00, CmdNull},
		{0x07, CmdBel},
		{0x08, CmdBS},
		{0x0a, CmdLF},
		{0x0d, CmdCR},
		{0x84, CmdInd},
		{0x85, CmdNel},
		{0x8d, CmdRI},
		{0xff, CmdNone},
	}
	for _, tt := range tests {
		if got := classifyControl(tt.b); got != tt.want {
			t.Errorf("classifyControl(%#x) = %v, want %v", tt.b, got, tt.want)
		}
	}
}

func seqWith(terminator rune, flags SeqFlag, args ...int32) *Sequence {
	s := &Sequence{Terminator: terminator, Flags: flags}
	for i := range s.Args {
		s.Args[i] = -1
	}
	for i, a := range args {
		s.Args[i] = a
	}
	s.NArgs = len(args)
	return s
}

func TestClassifyEscape(t *testing.T) {
	tests := []struct {
		name       string
		terminator rune
		flags      SeqFlag
		want       Command
	}{
		{"IND", 'D', 0, CmdInd},
		{"NEL", 'E', 0, CmdNel},
		{"RI", 'M', 0, CmdRI},
		{"DECSC", '7', 0, CmdDECSC},
		{"DECRC", '8', 0, CmdDECRC},
		{"RIS", 'c', 0, CmdRIS},
		{"unknown", '#', 0, CmdNone},
	}
	for _, tt := range tests {
		seq := seqWith(tt.terminator, tt.flags)
		if got := classifyEscape(seq); got != tt.want {
			t.Errorf("%s: classifyEscape() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestClassifyEscapeSCS(t *testing.T) {
	// ESC ( 0 designates DEC Special Graphic into G0.
	seq := seqWith('0', SeqFlagPopen)
	got := classifyEscape(seq)
	if got != CmdSCS {
		t.Fatalf("classifyEscape() = %v, want CmdSCS", got)
	}
	if seq.Charset != CharsetDECSpecialGraphic {
		t.Errorf("seq.Charset = %v, want CharsetDECSpecialGraphic", seq.Charset)
	}
}

func TestClassifyCSIBasic(t *testing.T) {
	tests := []struct {
		name       string
		terminator rune
		flags      SeqFlag
		want       Command
	}{
		{"CUU", 'A', 0, CmdCUU},
		{"CUP", 'H', 0, CmdCUP},
		{"SGR", 'm', 0, CmdSGR},
		{"ED", 'J', 0, CmdED},
		{"DECSED", 'J', SeqFlagWhat, CmdDECSED},
		{"SM", 'h', 0, CmdSMANSI},
		{"DECSET", 'h', SeqFlagWhat, CmdSMDEC},
		{"DA1", 'c', 0, CmdDA1},
		{"DA2", 'c', SeqFlagGT, CmdDA2},
		{"DA3", 'c', SeqFlagEqual, CmdDA3},
	}
	for _, tt := range tests {
		seq := seqWith(tt.terminator, tt.flags)
		if got := classifyCSI(seq); got != tt.want {
			t.Errorf("%s: classifyCSI() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestClassifyCSIArgCountDisambiguation(t *testing.T) {
	few := seqWith('T', 0, 1)
	if got := classifyCSI(few); got != CmdSD {
		t.Errorf("CSI T with 1 arg = %v, want CmdSD", got)
	}

	many := seqWith('T', 0, 1, 2, 3, 4, 5)
	if got := classifyCSI(many); got != CmdXtermIHMT {
		t.Errorf("CSI T with 5 args = %v, want CmdXtermIHMT", got)
	}
}

func TestClassifyCSIUnknownReturnsNone(t *testing.T) {
	seq := seqWith('s', SeqFlagLT)
	if got := classifyCSI(seq); got != CmdNone {
		t.Errorf("classifyCSI() = %v, want CmdNone for an unhandled flag combination", got)
	}
}
