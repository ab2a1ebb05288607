package cheats

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// A GameGenieCode patches a byte of cartridge ROM as it is read. It
// is written as nine hex digits, formatted as ABC-DEF-GHI, where AB
// is the new data, FCDE is the memory address XORed by 0xF000, GI is
// the old data XORed by 0xBA and rotated left by 2, and H is unused.
// The six digit form ABC-DEF patches the address unconditionally.
type GameGenieCode struct {
	NewData uint8
	Address uint16
	OldData uint8
	// Compare is set when the code carries old data, in which case
	// the patch only applies while the ROM holds OldData.
	Compare bool
}

// ParseGameGenie parses a Game Genie code.
func ParseGameGenie(code string) (GameGenieCode, error) {
	var c GameGenieCode

	digits := strings.ReplaceAll(code, "-", "")
	if len(digits) != 6 && len(digits) != 9 {
		return c, fmt.Errorf("%w: game genie %q", ErrInvalidCode, code)
	}

	// AB
	ab, err := strconv.ParseUint(digits[0:2], 16, 8)
	if err != nil {
		return c, fmt.Errorf("%w: game genie %q", ErrInvalidCode, code)
	}
	c.NewData = uint8(ab)

	// reorganize CDEF to FCDE
	fcde, err := strconv.ParseUint(digits[5:6]+digits[2:5], 16, 16)
	if err != nil {
		return c, fmt.Errorf("%w: game genie %q", ErrInvalidCode, code)
	}
	c.Address = uint16(fcde) ^ 0xF000
	if c.Address >= 0x8000 {
		return c, fmt.Errorf("%w: game genie %q patches 0x%04X, outside of ROM", ErrInvalidCode, code, c.Address)
	}

	if len(digits) == 9 {
		gi, err := strconv.ParseUint(digits[6:7]+digits[8:9], 16, 8)
		if err != nil {
			return c, fmt.Errorf("%w: game genie %q", ErrInvalidCode, code)
		}
		c.OldData = bits.RotateLeft8(uint8(gi), -2) ^ 0xBA
		c.Compare = true
	}

	return c, nil
}

// Patch returns the patched value of the ROM byte at address, or
// value if the code does not apply.
func (c GameGenieCode) Patch(address uint16, value uint8) (uint8, bool) {
	if c.Address != address || c.Compare && c.OldData != value {
		return value, false
	}
	return c.NewData, true
}
