package ppu

import (
	"github.com/thelolagemann/gbcore/internal/types"
)

// Tile represents a tile. Each tile has a size of 8x8 pixels and a color
// depth of 4 colors/gray shades. Tiles can be displayed as sprites or as
// background/window tiles. Each entry holds the colour number (0-3) of
// the pixel, before it is mapped through a palette.
type Tile [8][8]uint8

// NewTile decodes the 16 bytes of a tile. Each row is stored as two
// bytes, the first holding the low bit of every pixel and the second
// the high bit, with the leftmost pixel in bit 7.
func NewTile(b [16]uint8) Tile {
	t := Tile{}
	for tileY := 0; tileY < 8; tileY++ {
		lo, hi := b[tileY*2], b[tileY*2+1]
		for tileX := 0; tileX < 8; tileX++ {
			t[tileY][tileX] = (lo>>(7-tileX))&1 | (hi>>(7-tileX)&1)<<1
		}
	}

	return t
}

// readTile decodes the tile stored at address.
func readTile(bus types.Bus, address uint16) Tile {
	var b [16]uint8
	for i := range b {
		b[i] = bus.Get(address + uint16(i))
	}
	return NewTile(b)
}

// drawTileMap draws the 32x32 tiles of the tile map at mapAddress
// into buf, with its top left corner at (x, y). Both coordinates
// wrap around the 256x256 buffer.
func drawTileMap(bus types.Bus, buf *Buffer, mapAddress uint16, tileAddress func(uint8) uint16, x, y uint8) {
	for i := uint16(0); i < 32*32; i++ {
		tile := readTile(bus, tileAddress(bus.Get(mapAddress+i)))
		tx, ty := uint8(i%32)*8, uint8(i/32)*8
		for row := uint8(0); row < 8; row++ {
			for col := uint8(0); col < 8; col++ {
				buf[y+ty+row][x+tx+col] = tile[row][col]
			}
		}
	}
}
