package cheats

import (
	"fmt"
	"strconv"
)

// A GameSharkCode writes a byte of RAM once per frame. It is written
// as eight hex digits, formatted as ABCDEFGH, where AB is the external
// RAM bank, CD is the new data, and GHEF is the memory address.
type GameSharkCode struct {
	ExternalRAMBank uint8
	NewData         uint8
	Address         uint16
}

// ParseGameShark parses a GameShark code.
func ParseGameShark(code string) (GameSharkCode, error) {
	var c GameSharkCode
	if len(code) != 8 {
		return c, fmt.Errorf("%w: gameshark %q", ErrInvalidCode, code)
	}

	v, err := strconv.ParseUint(code, 16, 32)
	if err != nil {
		return c, fmt.Errorf("%w: gameshark %q", ErrInvalidCode, code)
	}
	c.ExternalRAMBank = uint8(v >> 24)
	c.NewData = uint8(v >> 16)
	// GHEF is stored little endian
	c.Address = uint16(v&0xFF)<<8 | uint16(v>>8&0xFF)
	if c.Address < 0xA000 {
		return c, fmt.Errorf("%w: gameshark %q writes 0x%04X, outside of RAM", ErrInvalidCode, code, c.Address)
	}

	return c, nil
}
