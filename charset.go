package devcon

// Charset identifies one of the 96-compat, 94-compat, and special
// character sets a terminal can designate into G0-G3 via SCS. This module
// only identifies which charset a designator names -- translating the
// bytes a charset remaps (e.g. DEC Special Graphics line-drawing) is left
// to the consumer, per spec.
type Charset uint8

// Values are assigned explicitly, not via iota, because several names
// below are aliases for others (e.g. CharsetBritishNRCS names the same
// value as CharsetISOLatin1Supplemental) -- mixing aliases into an iota
// sequence shifts every subsequent value, so the full enum is spelled out
// to mirror the source's layout exactly.
const (
	CharsetNone Charset = 0

	// 96-compat charsets.
	CharsetISOLatin1Supplemental Charset = 1
	CharsetISOLatin2Supplemental Charset = 2
	CharsetISOLatin5Supplemental Charset = 3
	CharsetISOGreekSupplemental  Charset = 4
	CharsetISOHebrewSupplemental Charset = 5
	CharsetISOLatinCyrillic      Charset = 6

	charset96N Charset = 7

	// 94-compat charsets.
	CharsetDECSpecialGraphic   Charset = 7
	CharsetDECSupplemental     Charset = 8
	CharsetDECTechnical        Charset = 9
	CharsetCyrillicDEC         Charset = 10
	CharsetDutchNRCS           Charset = 11
	CharsetFinnishNRCS         Charset = 12
	CharsetFrenchNRCS         Charset = 13
	CharsetFrenchCanadianNRCS Charset = 14
	CharsetGermanNRCS          Charset = 15
	CharsetGreekDEC            Charset = 16
	CharsetGreekNRCS           Charset = 17
	CharsetHebrewDEC           Charset = 18
	CharsetHebrewNRCS          Charset = 19
	CharsetItalianNRCS         Charset = 20
	CharsetNorwegianDanishNRCS Charset = 21
	CharsetPortugueseNRCS      Charset = 22
	CharsetRussianNRCS         Charset = 23
	CharsetSCSNRCS             Charset = 24
	CharsetSpanishNRCS         Charset = 25
	CharsetSwedishNRCS         Charset = 26
	CharsetSwissNRCS           Charset = 27
	CharsetTurkishDEC          Charset = 28
	CharsetTurkishNRCS         Charset = 29

	charset94N Charset = 30

	// Special charsets.
	CharsetUserprefSupplemental Charset = 30

	charsetN Charset = 31
)

// Aliases: these name the same value as another constant above, exactly
// as the source's enum does with '=' redefinitions.
const (
	CharsetBritishNRCS  = CharsetISOLatin1Supplemental
	CharsetAmericanNRCS = CharsetISOLatin2Supplemental
)

type charsetCmd struct {
	raw   rune
	flags uint32
}

// charsetCmds is indexed exactly like the source's table: [0, charsetN)
// holds primary designator bytes, [charsetN, 2*charsetN) secondary
// choices that share a byte with a primary, [2*charsetN, 3*charsetN)
// tertiary choices. Unused slots are the zero charsetCmd.
var charsetCmds = func() []charsetCmd {
	t := make([]charsetCmd, 3*int(charsetN))

	t[CharsetISOLatin1Supplemental] = charsetCmd{'A', 0}
	t[CharsetISOLatin2Supplemental] = charsetCmd{'B', 0}
	t[CharsetISOLatin5Supplemental] = charsetCmd{'M', 0}
	t[CharsetISOGreekSupplemental] = charsetCmd{'F', 0}
	t[CharsetISOHebrewSupplemental] = charsetCmd{'H', 0}
	t[CharsetISOLatinCyrillic] = charsetCmd{'L', 0}

	t[CharsetDECSpecialGraphic] = charsetCmd{'0', 0}
	t[CharsetDECSupplemental] = charsetCmd{'5', uint32(SeqFlagPercent)}
	t[CharsetDECTechnical] = charsetCmd{'>', 0}
	t[CharsetCyrillicDEC] = charsetCmd{'4', uint32(SeqFlagAnd)}
	t[CharsetDutchNRCS] = charsetCmd{'4', 0}
	t[CharsetFinnishNRCS] = charsetCmd{'5', 0}
	t[CharsetFrenchNRCS] = charsetCmd{'R', 0}
	t[CharsetFrenchCanadianNRCS] = charsetCmd{'9', 0}
	t[CharsetGermanNRCS] = charsetCmd{'K', 0}
	t[CharsetGreekDEC] = charsetCmd{'?', uint32(SeqFlagDquote)}
	t[CharsetGreekNRCS] = charsetCmd{'>', uint32(SeqFlagDquote)}
	t[CharsetHebrewDEC] = charsetCmd{'4', uint32(SeqFlagDquote)}
	t[CharsetHebrewNRCS] = charsetCmd{'=', uint32(SeqFlagPercent)}
	t[CharsetItalianNRCS] = charsetCmd{'Y', 0}
	t[CharsetNorwegianDanishNRCS] = charsetCmd{'`', 0}
	t[CharsetPortugueseNRCS] = charsetCmd{'6', uint32(SeqFlagPercent)}
	t[CharsetRussianNRCS] = charsetCmd{'5', uint32(SeqFlagAnd)}
	t[CharsetSCSNRCS] = charsetCmd{'3', uint32(SeqFlagPercent)}
	t[CharsetSpanishNRCS] = charsetCmd{'Z', 0}
	t[CharsetSwedishNRCS] = charsetCmd{'7', 0}
	t[CharsetSwissNRCS] = charsetCmd{'=', 0}
	t[CharsetTurkishDEC] = charsetCmd{'0', uint32(SeqFlagPercent)}
	t[CharsetTurkishNRCS] = charsetCmd{'2', uint32(SeqFlagPercent)}

	t[CharsetUserprefSupplemental] = charsetCmd{'<', 0}

	// secondary choices
	t[int(charsetN)+int(CharsetFinnishNRCS)] = charsetCmd{'C', 0}
	t[int(charsetN)+int(CharsetFrenchNRCS)] = charsetCmd{'f', 0}
	t[int(charsetN)+int(CharsetFrenchCanadianNRCS)] = charsetCmd{'Q', 0}
	t[int(charsetN)+int(CharsetNorwegianDanishNRCS)] = charsetCmd{'E', 0}
	// unused in practice: conflicts with ISOHebrewSupplemental, see
	// charsetFromCmd below.
	t[int(charsetN)+int(CharsetSwedishNRCS)] = charsetCmd{'H', 0}

	// tertiary choices
	t[2*int(charsetN)+int(CharsetNorwegianDanishNRCS)] = charsetCmd{'6', 0}

	return t
}()

// charsetFromCmd resolves a designator byte (raw) plus any accumulated
// intermediate flags to a Charset. require96 restricts the match to the
// 96-compat charsets and the special userpref set (used for the '-', '.'
// and '/' G1-G3 designators).
//
// The secondary choice for SwedishNRCS and the primary
// ISOHebrewSupplemental collide (raw=='H', flags==0); the 96-compat ISO
// charset always wins, matching VT510.
func charsetFromCmd(raw rune, flags uint32, require96 bool) (Charset, bool) {
	for i, cmd := range charsetCmds {
		if cmd.raw != raw || cmd.flags != flags {
			continue
		}
		cs := i
		for cs >= int(charsetN) {
			cs -= int(charsetN)
		}
		if !require96 || Charset(cs) < charset96N || Charset(cs) >= charset94N {
			return Charset(cs), true
		}
	}
	return CharsetNone, false
}
