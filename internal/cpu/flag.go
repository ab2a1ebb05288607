package cpu

// Flag is the bit position of a flag in the F register.
type Flag = uint8

const (
	// FlagZero is set when the result of an operation is zero.
	FlagZero Flag = 7
	// FlagSubtract is set when the last operation was a subtraction.
	FlagSubtract Flag = 6
	// FlagHalfCarry is set on a carry out of (or borrow into) bit 3.
	FlagHalfCarry Flag = 5
	// FlagCarry is set on a carry out of bit 7 (or bit 15).
	FlagCarry Flag = 4
)

// clearFlag clears a flag from the F register.
func (c *CPU) clearFlag(flag Flag) {
	c.F &^= 1 << flag
}

// setFlag sets a flag in the F register.
func (c *CPU) setFlag(flag Flag) {
	c.F |= 1 << flag
}

// isFlagSet returns true if the given flag is set.
func (c *CPU) isFlagSet(flag Flag) bool {
	return c.F&(1<<flag) != 0
}

// setFlags sets all four flags at once. The lower nibble of
// F is always cleared.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	c.F = 0
	if zero {
		c.setFlag(FlagZero)
	}
	if subtract {
		c.setFlag(FlagSubtract)
	}
	if halfCarry {
		c.setFlag(FlagHalfCarry)
	}
	if carry {
		c.setFlag(FlagCarry)
	}
}

// shouldZeroFlag sets FlagZero if the given value is 0,
// and clears it otherwise.
func (c *CPU) shouldZeroFlag(value uint8) {
	if value == 0 {
		c.setFlag(FlagZero)
	} else {
		c.clearFlag(FlagZero)
	}
}
