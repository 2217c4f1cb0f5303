package devcon

import "testing"

func TestCharNull(t *testing.T) {
	if !Null.IsNull() {
		t.Error("expected Null to be null")
	}
	if Set(Null, 'A').IsNull() {
		t.Error("expected a built char to not be null")
	}
}

func TestSetReplacesCombiningMarks(t *testing.T) {
	ch := Set(Null, 'e')
	ch = Merge(ch, 0x0301) // combining acute accent
	ch = Set(ch, 'A')

	got := Resolve(ch)
	if len(got) != 1 || got[0] != 'A' {
		t.Errorf("Set(..., 'A') = %v, want [A]", got)
	}
}

func TestMergeAccumulatesInline(t *testing.T) {
	ch := Set(Null, 'e')
	ch = Merge(ch, 0x0301)
	ch = Merge(ch, 0x0302)

	got := Resolve(ch)
	want := []rune{'e', 0x0301, 0x0302}
	if len(got) != len(want) {
		t.Fatalf("Resolve() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Resolve()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMergeSpillsToHeap(t *testing.T) {
	ch := Set(Null, 'e')
	for i := rune(0x0300); i < 0x0300+5; i++ {
		ch = Merge(ch, uint32(i))
	}

	got := Resolve(ch)
	if len(got) != 6 {
		t.Fatalf("Resolve() len = %d, want 6", len(got))
	}
	if got[0] != 'e' {
		t.Errorf("Resolve()[0] = %q, want 'e'", got[0])
	}
}

func TestMergeStopsAtSoftLimit(t *testing.T) {
	ch := Set(Null, 'e')
	for i := 0; i < combineSoftLimit+10; i++ {
		ch = Merge(ch, uint32(0x0300+i%16))
	}

	got := Resolve(ch)
	if len(got) != combineSoftLimit {
		t.Errorf("Resolve() len = %d, want combineSoftLimit (%d)", len(got), combineSoftLimit)
	}
}

func TestBuildDropsInvalidCodepoint(t *testing.T) {
	ch := build(Null, ucs4Max+1)
	if !ch.IsNull() {
		t.Error("expected an out-of-range codepoint to be dropped, leaving Null")
	}
}

func TestDupIsIndependent(t *testing.T) {
	a := Set(Null, 'e')
	a = Merge(a, 0x0301)
	a = Merge(a, 0x0302)
	a = Merge(a, 0x0303)
	a = Merge(a, 0x0304) // forces heap storage

	b := Dup(a)
	if !Equal(a, b) {
		t.Fatal("expected Dup to be structurally equal")
	}
	if Same(a, b) {
		t.Error("expected Dup to not alias the original heap slice")
	}
}

func TestWidth(t *testing.T) {
	tests := []struct {
		name string
		ch   Char
		want int
	}{
		{"null", Null, 0},
		{"narrow", Set(Null, 'A'), 1},
		{"wide", Set(Null, '中'), 2},
	}

	for _, tt := range tests {
		if got := Width(tt.ch); got != tt.want {
			t.Errorf("%s: Width() = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestEqualVsSame(t *testing.T) {
	a := Set(Null, 'A')
	b := Set(Null, 'A')

	if !Equal(a, b) {
		t.Error("expected structurally identical chars to be Equal")
	}
	if !Same(a, b) {
		t.Error("expected two inline-packed chars with the same bits to be Same")
	}
}
