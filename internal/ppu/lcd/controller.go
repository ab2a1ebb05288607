// Package lcd decodes the LCD control and status registers.
package lcd

import (
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/utils"
)

// Controller is the decoded LCD control register (types.LCDC). It
// controls various aspects of the LCD, such as enabling the
// background and window display.
//
//	Bit 7 - LCD Enable                     (0=Off, 1=On)
//	Bit 6 - Window Tile Map Display Select (0=9800-9BFF, 1=9C00-9FFF)
//	Bit 5 - Window Display Enable          (0=Off, 1=On)
//	Bit 4 - BG & Window Tile Data Select   (0=8800-97FF, 1=8000-8FFF)
//	Bit 3 - BG Tile Map Display Select     (0=9800-9BFF, 1=9C00-9FFF)
//	Bit 2 - OBJ (Sprite) Size              (0=8x8, 1=8x16)
//	Bit 1 - OBJ (Sprite) Display Enable    (0=Off, 1=On)
//	Bit 0 - BG/Window Display/Priority     (0=Off, 1=On)
type Controller struct {
	// Enabled is the LCD Enable bit. When set, the LCD is enabled.
	Enabled bool
	// WindowTileMapAddress represents the Window Tile Map Display Select bit.
	// For convenience, this is stored as the start address of the tile map.
	//	(0=9800-9BFF)
	//	(1=9C00-9FFF)
	WindowTileMapAddress uint16
	// WindowEnabled is the Window Display Enable bit.
	WindowEnabled bool
	// TileDataAddress represents the BG & Window Tile Data Select bit. When
	// set, tiles are indexed unsigned from 0x8000. Otherwise, they are
	// indexed signed from 0x9000.
	//	(0=9000, signed)
	//	(1=8000, unsigned)
	TileDataAddress uint16
	// BackgroundTileMapAddress represents the BG Tile Map Display Select bit.
	//	(0=9800-9BFF)
	//	(1=9C00-9FFF)
	BackgroundTileMapAddress uint16
	// SpriteSize is the height of a sprite, 8 when the OBJ Size bit is
	// reset, and 16 when it is set.
	SpriteSize uint8
	// SpriteEnabled is the OBJ (Sprite) Display Enable bit.
	SpriteEnabled bool
	// BackgroundEnabled is the BG/Window Display/Priority bit.
	BackgroundEnabled bool
}

// NewController decodes the value of the LCD control register.
func NewController(value uint8) Controller {
	c := Controller{
		Enabled:                  utils.TestBit(value, 7),
		WindowTileMapAddress:     types.TileMap0,
		WindowEnabled:            utils.TestBit(value, 5),
		TileDataAddress:          0x9000,
		BackgroundTileMapAddress: types.TileMap0,
		SpriteSize:               8,
		SpriteEnabled:            utils.TestBit(value, 1),
		BackgroundEnabled:        utils.TestBit(value, 0),
	}
	if utils.TestBit(value, 6) {
		c.WindowTileMapAddress = types.TileMap1
	}
	if utils.TestBit(value, 4) {
		c.TileDataAddress = types.VRAM
	}
	if utils.TestBit(value, 3) {
		c.BackgroundTileMapAddress = types.TileMap1
	}
	if utils.TestBit(value, 2) {
		c.SpriteSize = 16
	}
	return c
}

// Value encodes the controller back into the register layout.
func (c Controller) Value() uint8 {
	var value uint8
	if c.Enabled {
		value |= types.Bit7
	}
	if c.WindowTileMapAddress == types.TileMap1 {
		value |= types.Bit6
	}
	if c.WindowEnabled {
		value |= types.Bit5
	}
	if c.TileDataAddress == types.VRAM {
		value |= types.Bit4
	}
	if c.BackgroundTileMapAddress == types.TileMap1 {
		value |= types.Bit3
	}
	if c.SpriteSize == 16 {
		value |= types.Bit2
	}
	if c.SpriteEnabled {
		value |= types.Bit1
	}
	if c.BackgroundEnabled {
		value |= types.Bit0
	}
	return value
}

// UsingSignedTileData returns true if tile indices are signed,
// relative to 0x9000.
func (c Controller) UsingSignedTileData() bool {
	return c.TileDataAddress == 0x9000
}

// TileAddress returns the address of the first byte of the tile
// with the given index, for the background and window.
func (c Controller) TileAddress(index uint8) uint16 {
	if c.UsingSignedTileData() {
		return uint16(int32(c.TileDataAddress) + int32(int8(index))*16)
	}
	return c.TileDataAddress + uint16(index)*16
}
