package lcd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestController(t *testing.T) {
	c := NewController(0x91)
	assert.True(t, c.Enabled)
	assert.True(t, c.BackgroundEnabled)
	assert.False(t, c.WindowEnabled)
	assert.False(t, c.SpriteEnabled)
	assert.Equal(t, uint16(0x8000), c.TileDataAddress)
	assert.Equal(t, uint16(0x9800), c.BackgroundTileMapAddress)
	assert.Equal(t, uint8(8), c.SpriteSize)
	assert.Equal(t, uint8(0x91), c.Value())

	for v := 0; v < 0x100; v++ {
		assert.Equal(t, uint8(v), NewController(uint8(v)).Value())
	}
}

func TestController_TileAddress(t *testing.T) {
	unsigned := NewController(0x10)
	assert.Equal(t, uint16(0x8000), unsigned.TileAddress(0))
	assert.Equal(t, uint16(0x8FF0), unsigned.TileAddress(0xFF))

	signed := NewController(0x00)
	assert.True(t, signed.UsingSignedTileData())
	assert.Equal(t, uint16(0x9000), signed.TileAddress(0))
	assert.Equal(t, uint16(0x97F0), signed.TileAddress(0x7F))
	assert.Equal(t, uint16(0x8800), signed.TileAddress(0x80))
	assert.Equal(t, uint16(0x8FF0), signed.TileAddress(0xFF))
}

func TestStatus(t *testing.T) {
	s := NewStatus(0x45)
	assert.True(t, s.CoincidenceInterrupt)
	assert.False(t, s.OAMInterrupt)
	assert.True(t, s.Coincidence)
	assert.Equal(t, VBlank, s.Mode)
	assert.Equal(t, uint8(0xC5), s.Value())

	assert.Equal(t, "VRAM", ModeName(VRAM))
}
