package devcon

import "github.com/unilibs/uniwidth"

// ucs4Max is the highest valid Unicode scalar value.
const ucs4Max = 0x10ffff

// ucs4Mask keeps the low 21 bits of a codepoint (enough for any valid UCS-4 value).
const ucs4Mask = 0x1fffff

// ucs4Replacement is U+FFFD, substituted whenever a Char cannot hold what was asked of it.
const ucs4Replacement = 0xfffd

// combineSoftLimit bounds Merge: past this many combining marks, further merges are dropped.
const combineSoftLimit = 64

// Char is a packed character: either the NULL value, 1-3 codepoints packed
// inline, or a heap slice holding the whole codepoint run (base included). Unlike
// the C original there is no tag bit trick over a raw pointer -- Go cannot
// alias an integer and a pointer safely -- so the inline/heap distinction is
// carried by whether heap is nil, which plays the same role the LSB tag bit
// plays in the source. Char is a small value type: copy it freely, there is
// nothing to free (the garbage collector owns the heap slice).
type Char struct {
	packed uint64
	heap   []rune
}

// Null is the zero Char: an empty cell holds no character at all.
var Null = Char{}

// IsNull reports whether ch holds no codepoints at all.
func (ch Char) IsNull() bool {
	return ch.packed == 0 && ch.heap == nil
}

func packInline(v1, v2, v3 uint32) Char {
	var p uint64 = 1
	p |= (uint64(v1) & ucs4Mask) << 43
	p |= (uint64(v2) & ucs4Mask) << 22
	p |= (uint64(v3) & ucs4Mask) << 1
	return Char{packed: p}
}

func packInline1(v1 uint32) Char { return packInline(v1, ucs4Max+1, ucs4Max+1) }
func packInline2(v1, v2 uint32) Char {
	return packInline(v1, v2, ucs4Max+1)
}

// unpackInline extracts up to 3 codepoints from an inline-packed value,
// returning how many of them are actually in range (0-3).
func unpackInline(packed uint64) (v1, v2, v3 uint32, n int) {
	v1 = uint32((packed >> 43) & ucs4Mask)
	v2 = uint32((packed >> 22) & ucs4Mask)
	v3 = uint32((packed >> 1) & ucs4Mask)
	switch {
	case v1 > ucs4Max:
		n = 0
	case v2 > ucs4Max:
		n = 1
	case v3 > ucs4Max:
		n = 2
	default:
		n = 3
	}
	return
}

// build appends append to base, returning a fresh Char. Mirrors
// devcon_char_build: a NULL base becomes a 1-codepoint inline Char; an
// inline base with room grows in place (still inline); a full inline base
// or a heap base spills to (or grows) the heap slice. Invalid codepoints
// (out of UCS-4 range) are silently dropped, per spec.
func build(base Char, appendCP uint32) Char {
	if appendCP > ucs4Max {
		return base
	}

	if base.IsNull() {
		return packInline1(appendCP)
	}

	if base.heap == nil {
		v1, v2, v3, n := unpackInline(base.packed)
		switch n {
		case 0:
			return packInline1(appendCP)
		case 1:
			return packInline2(v1, appendCP)
		case 2:
			return packInline(v1, v2, appendCP)
		default:
			if n >= combineSoftLimit {
				return base
			}
			out := make([]rune, 0, n+1)
			out = append(out, rune(v1), rune(v2), rune(v3), rune(appendCP))
			return Char{heap: out}
		}
	}

	if len(base.heap) >= combineSoftLimit {
		return base
	}
	out := make([]rune, len(base.heap)+1)
	copy(out, base.heap)
	out[len(base.heap)] = rune(appendCP)
	return Char{heap: out}
}

// Set resets a cell's character to a single codepoint, discarding whatever
// previous combining sequence it held.
func Set(previous Char, cp uint32) Char {
	return build(Null, cp)
}

// Merge appends a combining codepoint to base and returns the result. base
// must not be used again by the caller -- the returned Char replaces it.
// An invalid codepoint, or hitting the soft combining-length limit, leaves
// base unchanged (use Same to tell whether Merge actually built something
// new).
func Merge(base Char, cp uint32) Char {
	return build(base, cp)
}

// Dup returns an independently-owned copy of ch. Go's slices already copy
// by growing a new backing array here, so Dup never fails the way the C
// allocator could -- the "return U+FFFD on allocation failure" degrade
// path has no reachable trigger in this port, but Dup keeps the same
// signature so callers written against the fallible contract still
// compile against a future arena-backed implementation.
func Dup(ch Char) Char {
	if ch.heap == nil {
		return ch
	}
	out := make([]rune, len(ch.heap))
	copy(out, ch.heap)
	return Char{heap: out}
}

// Resolve yields the codepoint run ch represents: nil/empty for Null, the
// 1-3 inline codepoints, or the heap slice. The returned slice must not be
// mutated by the caller.
func Resolve(ch Char) []rune {
	if ch.heap != nil {
		return ch.heap
	}
	if ch.packed == 0 {
		return nil
	}
	v1, v2, v3, n := unpackInline(ch.packed)
	switch n {
	case 0:
		return nil
	case 1:
		return []rune{rune(v1)}
	case 2:
		return []rune{rune(v1), rune(v2)}
	default:
		return []rune{rune(v1), rune(v2), rune(v3)}
	}
}

// Width returns the display width of ch's base codepoint: 0 for
// unprintable, 1 for narrow, 2 for wide. Combining marks never contribute.
func Width(ch Char) int {
	cps := Resolve(ch)
	if len(cps) == 0 {
		return 0
	}
	w := uniwidth.RuneWidth(cps[0])
	if w < 0 {
		return 0
	}
	return w
}

// Same reports bit-identity: true implies Equal, but Equal can hold without
// Same (two independently-built Chars with the same codepoints).
func Same(a, b Char) bool {
	if a.heap != nil || b.heap != nil {
		if len(a.heap) != len(b.heap) {
			return false
		}
		if a.heap == nil || b.heap == nil {
			return false
		}
		return &a.heap[0] == &b.heap[0]
	}
	return a.packed == b.packed
}

// Equal reports structural equality: both resolve to the same codepoint run.
func Equal(a, b Char) bool {
	ra, rb := Resolve(a), Resolve(b)
	if len(ra) != len(rb) {
		return false
	}
	for i := range ra {
		if ra[i] != rb[i] {
			return false
		}
	}
	return true
}
