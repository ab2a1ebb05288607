package mmu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/gbcore/internal/cartridge"
	"github.com/thelolagemann/gbcore/internal/types"
)

func newTestMMU(t *testing.T, typ cartridge.Type, banks int, ramCode uint8) *MMU {
	t.Helper()
	rom := make([]byte, banks*0x4000)
	for i := 0; i < banks; i++ {
		rom[i*0x4000] = uint8(i)
	}
	rom[0x147] = uint8(typ)
	rom[0x149] = ramCode
	cart, err := cartridge.New(rom)
	require.NoError(t, err)
	return NewMMU(cart, nil)
}

func TestMMU_ROM(t *testing.T) {
	m := newTestMMU(t, cartridge.MBC1, 8, 0)

	assert.Equal(t, uint8(0), m.Read(0x0000))
	assert.Equal(t, uint8(1), m.Read(0x4000))

	m.Write(0x2000, 0x00)
	assert.Equal(t, uint8(1), m.Read(0x4000), "bank 0 selects bank 1")
	assert.Equal(t, uint16(1), m.Bank())

	m.Write(0x2000, 0x05)
	assert.Equal(t, uint8(5), m.Read(0x4000))
	assert.Equal(t, uint8(3), m.ReadWithBank(3, 0x4000))
	assert.Equal(t, uint8(5), m.Read(0x4000), "ReadWithBank has no side effects")

	// writes to ROM never modify it
	m.Write(0x0000, 0xFF)
	assert.Equal(t, uint8(0), m.Read(0x0000))
}

func TestMMU_ExternalRAM(t *testing.T) {
	m := newTestMMU(t, cartridge.MBC1RAM, 4, 0x02)

	// disabled, falls through to the flat array
	m.Write(0xA000, 0x11)
	assert.Equal(t, uint8(0x11), m.Get(0xA000))

	m.Write(0x0000, 0x0A)
	m.Write(0xA000, 0x42)
	assert.Equal(t, uint8(0x42), m.Read(0xA000))
	assert.Equal(t, uint8(0x42), m.MBC().RAM()[0])
	assert.Equal(t, uint8(0x11), m.Get(0xA000), "flat RAM untouched")
}

func TestMMU_Echo(t *testing.T) {
	m := newTestMMU(t, cartridge.ROM, 2, 0)

	m.Write(0xC123, 0x42)
	assert.Equal(t, uint8(0x42), m.Read(0xE123))

	m.Write(0xDDFF, 0x24)
	assert.Equal(t, uint8(0x24), m.Read(0xFDFF))

	// the last 512 bytes of work RAM are not mirrored
	m.Write(0xDE00, 0x99)
	assert.Equal(t, uint8(0x00), m.Read(0xFE00))
}

func TestMMU_DIV(t *testing.T) {
	m := newTestMMU(t, cartridge.ROM, 2, 0)
	m.Set(types.DIV, 0xAB)

	var handled []uint8
	m.OnWrite(types.DIV, func(v uint8) { handled = append(handled, v) })

	m.Write(types.DIV, 0x42)
	assert.Equal(t, uint8(0), m.Read(types.DIV))
	assert.Equal(t, []uint8{0}, handled)
}

func TestMMU_WriteHandlers(t *testing.T) {
	m := newTestMMU(t, cartridge.ROM, 2, 0)

	var seen uint8
	m.OnWrite(types.DMA, func(v uint8) { seen = v })

	m.Set(types.DMA, 0x11)
	assert.Equal(t, uint8(0), seen, "Set does not run handlers")

	m.Write(types.DMA, 0xC1)
	assert.Equal(t, uint8(0xC1), seen)
	assert.Equal(t, uint8(0xC1), m.Get(types.DMA))
}

func TestMMU_State(t *testing.T) {
	m := newTestMMU(t, cartridge.MBC1RAM, 4, 0x02)
	m.Write(0x0000, 0x0A)
	m.Write(0x2000, 0x03)
	m.Write(0xA000, 0x42)
	m.Write(0xC000, 0x24)

	s := types.NewState()
	m.Save(s)

	n := newTestMMU(t, cartridge.MBC1RAM, 4, 0x02)
	n.Load(types.StateFromBytes(s.Bytes()))
	assert.Equal(t, uint8(3), n.Read(0x4000))
	assert.Equal(t, uint8(0x42), n.Read(0xA000))
	assert.Equal(t, uint8(0x24), n.Read(0xC000))
}
