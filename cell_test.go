package devcon

import "testing"

func TestBlankCell(t *testing.T) {
	attr := Attr{Bold: true}
	c := blankCell(attr, 7)
	if !c.Ch.IsNull() {
		t.Error("expected blank cell to hold no character")
	}
	if c.Age != 7 {
		t.Errorf("Age = %d, want 7", c.Age)
	}
	if c.Attr != attr {
		t.Errorf("Attr = %+v, want %+v", c.Attr, attr)
	}
	if c.CWidth != 0 {
		t.Errorf("CWidth = %d, want 0", c.CWidth)
	}
}

func TestSetCharRefreshesWidth(t *testing.T) {
	var c Cell
	c.setChar(Set(Null, '中'))
	if c.CWidth != 2 {
		t.Errorf("CWidth = %d, want 2 for a wide rune", c.CWidth)
	}

	c.setChar(Set(Null, 'A'))
	if c.CWidth != 1 {
		t.Errorf("CWidth = %d, want 1 after overwriting with a narrow rune", c.CWidth)
	}
}
