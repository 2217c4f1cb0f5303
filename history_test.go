package devcon

import "testing"

func TestHistoryPushPop(t *testing.T) {
	h := NewHistory()
	a := newTestLine(3)
	writeStr(a, 0, "abc", Attr{}, 1, false)
	h.Push(a)

	if h.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", h.Len())
	}

	got := h.Pop(3, Attr{}, 2)
	if got == nil {
		t.Fatal("Pop() = nil, want the pushed line")
	}
	if lineText(got) != "abc" {
		t.Errorf("Pop() text = %q, want %q", lineText(got), "abc")
	}
	if h.Len() != 0 {
		t.Errorf("Len() = %d, want 0 after Pop", h.Len())
	}
}

func TestHistoryPopEmptyReturnsNil(t *testing.T) {
	h := NewHistory()
	if got := h.Pop(5, Attr{}, 1); got != nil {
		t.Errorf("Pop() on empty history = %v, want nil", got)
	}
}

func TestHistoryPushEvictsOldestPastMax(t *testing.T) {
	h := NewHistory()
	h.SetMaxLines(2)

	for i := 0; i < 3; i++ {
		l := newTestLine(1)
		writeStr(l, 0, string(rune('a'+i)), Attr{}, 1, false)
		h.Push(l)
	}

	if h.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", h.Len())
	}
	// the oldest ("a") should have been evicted; "b" then "c" remain.
	first := h.Pop(1, Attr{}, 2)
	second := h.Pop(1, Attr{}, 2)
	if lineText(first) != "c" || lineText(second) != "b" {
		t.Errorf("got %q then %q, want c then b", lineText(first), lineText(second))
	}
}

func TestHistoryTrim(t *testing.T) {
	h := NewHistory()
	for i := 0; i < 5; i++ {
		h.Push(newTestLine(1))
	}
	h.Trim(2)
	if h.Len() != 2 {
		t.Errorf("Len() = %d, want 2", h.Len())
	}
}

func TestHistoryClear(t *testing.T) {
	h := NewHistory()
	h.Push(newTestLine(1))
	h.Push(newTestLine(1))
	h.Clear()
	if h.Len() != 0 {
		t.Errorf("Len() = %d, want 0", h.Len())
	}
}

func TestHistoryPeekReservesWithoutRemoving(t *testing.T) {
	h := NewHistory()
	h.Push(newTestLine(2))
	h.Push(newTestLine(2))

	got := h.Peek(5, 8, Attr{}, 3)
	if got != 2 {
		t.Errorf("Peek() = %d, want 2 (capped at Len())", got)
	}
	if h.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (Peek must not remove)", h.Len())
	}
}
