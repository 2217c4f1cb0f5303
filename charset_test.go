package devcon

import "testing"

func TestCharsetFromCmdPrimary(t *testing.T) {
	tests := []struct {
		name string
		raw  rune
		flag SeqFlag
		want Charset
	}{
		{"ASCII/British NRCS (A)", 'A', 0, CharsetISOLatin1Supplemental},
		{"DEC Special Graphic (0)", '0', 0, CharsetDECSpecialGraphic},
		{"DEC Supplemental (%5)", '5', SeqFlagPercent, CharsetDECSupplemental},
		{"German NRCS (K)", 'K', 0, CharsetGermanNRCS},
	}

	for _, tt := range tests {
		cs, ok := charsetFromCmd(tt.raw, uint32(tt.flag), false)
		if !ok {
			t.Errorf("%s: charsetFromCmd(%q, %v) not found", tt.name, tt.raw, tt.flag)
			continue
		}
		if cs != tt.want {
			t.Errorf("%s: charsetFromCmd() = %v, want %v", tt.name, cs, tt.want)
		}
	}
}

func TestCharsetFromCmdRequire96(t *testing.T) {
	// DECSpecialGraphic is 94-compat; with require96 it must not match.
	if _, ok := charsetFromCmd('0', 0, true); ok {
		t.Error("expected a 94-compat charset to be rejected when require96 is set")
	}
	// ISOLatin1Supplemental is 96-compat and should still match.
	if _, ok := charsetFromCmd('A', 0, true); !ok {
		t.Error("expected a 96-compat charset to match even with require96 set")
	}
}

func TestCharsetFromCmdUnknownFails(t *testing.T) {
	if _, ok := charsetFromCmd('!', 0, false); ok {
		t.Error("expected an unrecognized designator byte to fail")
	}
}

func TestCharsetFromCmdCollisionPrefersISO(t *testing.T) {
	// 'H' with no flags collides between the primary ISOHebrewSupplemental
	// and the secondary SwedishNRCS choice; the 96-compat ISO charset wins.
	cs, ok := charsetFromCmd('H', 0, false)
	if !ok {
		t.Fatal("expected 'H' to resolve")
	}
	if cs != CharsetISOHebrewSupplemental {
		t.Errorf("charsetFromCmd('H', 0) = %v, want CharsetISOHebrewSupplemental", cs)
	}
}

func TestCharsetAliasesShareValue(t *testing.T) {
	if CharsetBritishNRCS != CharsetISOLatin1Supplemental {
		t.Error("CharsetBritishNRCS should alias CharsetISOLatin1Supplemental")
	}
	if CharsetAmericanNRCS != CharsetISOLatin2Supplemental {
		t.Error("CharsetAmericanNRCS should alias CharsetISOLatin2Supplemental")
	}
}
