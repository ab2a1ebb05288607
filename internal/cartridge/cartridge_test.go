package cartridge

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testROM builds an image of the given number of 16kB banks, with
// the first byte of every bank holding its bank number.
func testROM(t Type, banks int, ramCode uint8) []byte {
	rom := make([]byte, banks*0x4000)
	for i := 0; i < banks; i++ {
		rom[i*0x4000] = uint8(i)
	}
	copy(rom[0x134:], "TESTROM")
	rom[0x147] = uint8(t)
	for code := uint8(0); code <= 8; code++ {
		if 0x8000<<code == len(rom) {
			rom[0x148] = code
		}
	}
	rom[0x149] = ramCode

	// header checksum
	var sum uint8
	for _, b := range rom[0x134:0x14D] {
		sum = sum - b - 1
	}
	rom[0x14D] = sum
	return rom
}

func TestNew(t *testing.T) {
	t.Run("malformed", func(t *testing.T) {
		_, err := New(make([]byte, 0x14F))
		var malformed *MalformedCartridgeError
		require.True(t, errors.As(err, &malformed))
		assert.Equal(t, 0x14F, malformed.Size)
	})
	t.Run("header", func(t *testing.T) {
		c, err := New(testROM(MBC1RAM, 4, 0x03))
		require.NoError(t, err)

		h := c.Header()
		assert.Equal(t, "TESTROM", c.Title())
		assert.Equal(t, MBC1RAM, h.CartridgeType)
		assert.Equal(t, "MBC1+RAM", h.CartridgeType.String())
		assert.Equal(t, uint(64*1024), h.ROMSize)
		assert.Equal(t, uint(32*1024), h.RAMSize)
		assert.True(t, h.ValidHeaderChecksum())
		assert.Equal(t, "DMG", h.Hardware())
	})
	t.Run("cgb flag", func(t *testing.T) {
		for flag, expected := range map[uint8]string{0x00: "DMG", 0x80: "CGB", 0xC0: "CGB"} {
			rom := testROM(ROM, 2, 0)
			rom[0x143] = flag
			c, err := New(rom)
			require.NoError(t, err)
			h := c.Header()
			assert.Equal(t, expected, h.Hardware(), "flag 0x%02X", flag)
			assert.Equal(t, flag != 0, h.GameboyColor())
		}
	})
	t.Run("irregular rom size", func(t *testing.T) {
		rom := testROM(ROM, 2, 0)
		rom[0x148] = 0x52
		c, err := New(rom)
		require.NoError(t, err)
		h := c.Header()
		assert.Equal(t, uint(72*0x4000), h.ROMSize)
		assert.False(t, h.ValidHeaderChecksum())
	})
}

func TestHeader_Battery(t *testing.T) {
	for typ, expected := range map[Type]bool{
		ROM:           false,
		MBC1RAM:       false,
		MBC1RAMBATT:   true,
		MBC3TIMERBATT: true,
		MBC3:          false,
		MBC5RAMBATT:   false,
	} {
		c, err := New(testROM(typ, 2, 0x02))
		require.NoError(t, err)
		h := c.Header()
		assert.Equal(t, expected, h.Battery(), typ.String())
	}
}

func TestNewMemoryBankController(t *testing.T) {
	for _, tt := range []struct {
		typ      Type
		expected interface{}
	}{
		{ROM, &MemoryBankedCartridge1{}},
		{MBC1RAMBATT, &MemoryBankedCartridge1{}},
		{MBC3TIMERBATT, &MemoryBankedCartridge3{}},
		{MBC3RAMBATT, &MemoryBankedCartridge3{}},
		{MBC5, &MemoryBankedCartridge1{}},
	} {
		c, err := New(testROM(tt.typ, 2, 0))
		require.NoError(t, err)
		assert.IsType(t, tt.expected, NewMemoryBankController(c, nil), tt.typ.String())
	}
}
