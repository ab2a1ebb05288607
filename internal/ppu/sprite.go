package ppu

import (
	"github.com/thelolagemann/gbcore/internal/types"
)

// Sprite is a decoded entry of the sprite attribute table (OAM).
// Each of the 40 entries is 4 bytes long.
type Sprite struct {
	Y      uint8
	X      uint8
	TileID uint8
	spriteAttributes
}

// spriteAttributes represents the attributes of a sprite.
type spriteAttributes struct {
	// Bit 7 - OBJ-to-BG priority (0=OBJ Above BG, 1=OBJ Behind BG color 1-3)
	// (Used for both BG and Window. BG color 0 is always behind OBJ)
	behindBackground bool
	// Bit 6 - Y flip          (0=Normal, 1=Vertically mirrored)
	flipY bool
	// Bit 5 - X flip          (0=Normal, 1=Horizontally mirrored)
	flipX bool
	// Bit 4 - Palette number  (0=OBP0, 1=OBP1)
	useSecondPalette bool
}

// NewSprite decodes the 4 bytes of an OAM entry.
func NewSprite(b [4]uint8) Sprite {
	return Sprite{
		Y:      b[0],
		X:      b[1],
		TileID: b[2],
		spriteAttributes: spriteAttributes{
			behindBackground: b[3]&types.Bit7 != 0,
			flipY:            b[3]&types.Bit6 != 0,
			flipX:            b[3]&types.Bit5 != 0,
			useSecondPalette: b[3]&types.Bit4 != 0,
		},
	}
}

// readSprite decodes the i'th entry of the sprite attribute table.
func readSprite(bus types.Bus, i int) Sprite {
	address := types.OAM + uint16(i)*4
	return NewSprite([4]uint8{
		bus.Get(address),
		bus.Get(address + 1),
		bus.Get(address + 2),
		bus.Get(address + 3),
	})
}

// Visible reports whether the sprite lies at least partially
// within the drawable area. A Y of 0 or >= 160, or an X of 0 or
// >= 168, hides the sprite.
func (s Sprite) Visible() bool {
	return s.Y != 0 && s.Y < 160 && s.X != 0 && s.X < 168
}

// Layer returns the layer the sprite's pixels are drawn to.
func (s Sprite) Layer() Layer {
	if s.useSecondPalette {
		return LayerObject1
	}
	return LayerObject0
}

// pixels decodes the sprite's tiles from 0x8000, applying the flip
// attributes. Only the first height rows are valid.
func (s Sprite) pixels(bus types.Bus, height uint8) [16][8]uint8 {
	id := s.TileID
	if height == 16 {
		id &= 0xFE
	}
	var rows [16][8]uint8
	for half := uint8(0); half < height/8; half++ {
		tile := readTile(bus, types.VRAM+uint16(id+half)*16)
		for row := 0; row < 8; row++ {
			rows[int(half)*8+row] = tile[row]
		}
	}

	var out [16][8]uint8
	for row := uint8(0); row < height; row++ {
		src := row
		if s.flipY {
			src = height - 1 - row
		}
		for col := uint8(0); col < 8; col++ {
			srcCol := col
			if s.flipX {
				srcCol = 7 - col
			}
			out[row][col] = rows[src][srcCol]
		}
	}
	return out
}
