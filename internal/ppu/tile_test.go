package ppu

import (
	"testing"
)

func TestNewTile(t *testing.T) {
	// the first row of the "A" in the Pan Docs tile example
	b := [16]uint8{0x3C, 0x7E}
	tile := NewTile(b)

	want := [8]uint8{0, 2, 3, 3, 3, 3, 2, 0}
	if tile[0] != want {
		t.Errorf("expected %v, got %v", want, tile[0])
	}
	if tile[1] != [8]uint8{} {
		t.Errorf("expected empty row, got %v", tile[1])
	}
}

func TestNewSprite(t *testing.T) {
	s := NewSprite([4]uint8{16, 8, 0x42, 0xF0})
	if s.Y != 16 || s.X != 8 || s.TileID != 0x42 {
		t.Errorf("unexpected position %d,%d tile 0x%02X", s.X, s.Y, s.TileID)
	}
	if !s.behindBackground || !s.flipY || !s.flipX || !s.useSecondPalette {
		t.Errorf("expected all attributes set, got %+v", s.spriteAttributes)
	}
	if !s.Visible() {
		t.Errorf("expected sprite to be visible")
	}
}
