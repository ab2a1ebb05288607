package cpu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/types"
)

// increment the given value and set the flags accordingly.
//
//	INC n
//	n = 8-bit value
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(value uint8) uint8 {
	incremented := value + 0x01
	c.setFlags(incremented == 0, false, value&0xF == 0xF, c.isFlagSet(FlagCarry))
	return incremented
}

// decrement the given value and set the flags accordingly.
//
//	DEC n
//	n = 8-bit value
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(value uint8) uint8 {
	decremented := value - 0x01
	c.setFlags(decremented == 0, true, value&0xF == 0x0, c.isFlagSet(FlagCarry))
	return decremented
}

// addHLRR adds the given value to the HL RegisterPair.
//
//	ADD HL, rr
//	rr = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addHLRR(value uint16) {
	hl := c.HL.Uint16()
	sum := uint32(hl) + uint32(value)
	c.setFlags(c.isFlagSet(FlagZero), false, (hl&0xFFF)+(value&0xFFF) > 0xFFF, sum > 0xFFFF)
	c.HL.SetUint16(uint16(sum))
}

// addSPSigned returns SP plus the signed operand. The flags are
// computed on the lower byte, as an unsigned 8-bit addition.
//
// Used by:
//
//	ADD SP, r8
//	LD HL, SP+r8
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSPSigned(offset uint8) uint16 {
	result := uint16(int32(c.SP) + int32(int8(offset)))
	c.setFlags(
		false,
		false,
		(c.SP&0x0F)+uint16(offset&0x0F) > 0x0F,
		(c.SP&0xFF)+uint16(offset) > 0xFF,
	)
	return result
}

// decimalAdjust adjusts A to a binary coded decimal after an
// addition or subtraction of two BCD values.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set if the adjustment carried, unchanged after a subtraction.
func (c *CPU) decimalAdjust() {
	a := c.A
	carry := c.isFlagSet(FlagCarry)
	if !c.isFlagSet(FlagSubtract) {
		if carry || a > 0x99 {
			a += 0x60
			carry = true
		}
		if c.isFlagSet(FlagHalfCarry) || a&0x0F > 0x09 {
			a += 0x06
		}
	} else {
		if carry {
			a -= 0x60
		}
		if c.isFlagSet(FlagHalfCarry) {
			a -= 0x06
		}
	}
	c.setFlags(a == 0, c.isFlagSet(FlagSubtract), false, carry)
	c.A = a
}

func init() {
	for i := uint8(0); i < 8; i++ {
		index := i
		cycles := uint8(4)
		if index == hlIndex {
			cycles = 12
		}
		DefineInstruction(0x04+index<<3, fmt.Sprintf("INC %s", registerNames[index]), func(c *CPU, _ []byte) {
			c.writeIndex(index, c.increment(c.readIndex(index)))
		}, Cycles(cycles))
		DefineInstruction(0x05+index<<3, fmt.Sprintf("DEC %s", registerNames[index]), func(c *CPU, _ []byte) {
			c.writeIndex(index, c.decrement(c.readIndex(index)))
		}, Cycles(cycles))
	}

	pairs := []struct {
		name string
		pair func(*CPU) *types.RegisterPair
	}{
		{"BC", func(c *CPU) *types.RegisterPair { return c.BC }},
		{"DE", func(c *CPU) *types.RegisterPair { return c.DE }},
		{"HL", func(c *CPU) *types.RegisterPair { return c.HL }},
	}
	for i, p := range pairs {
		pair := p.pair
		opcode := uint8(i) << 4
		DefineInstruction(0x03+opcode, "INC "+p.name, func(c *CPU, _ []byte) {
			pair(c).SetUint16(pair(c).Uint16() + 1)
		}, Cycles(8))
		DefineInstruction(0x0B+opcode, "DEC "+p.name, func(c *CPU, _ []byte) {
			pair(c).SetUint16(pair(c).Uint16() - 1)
		}, Cycles(8))
		DefineInstruction(0x09+opcode, "ADD HL, "+p.name, func(c *CPU, _ []byte) {
			c.addHLRR(pair(c).Uint16())
		}, Cycles(8))
	}
	DefineInstruction(0x33, "INC SP", func(c *CPU, _ []byte) { c.SP++ }, Cycles(8))
	DefineInstruction(0x3B, "DEC SP", func(c *CPU, _ []byte) { c.SP-- }, Cycles(8))
	DefineInstruction(0x39, "ADD HL, SP", func(c *CPU, _ []byte) { c.addHLRR(c.SP) }, Cycles(8))
	DefineInstruction(0xE8, "ADD SP, r8", func(c *CPU, operands []byte) {
		c.SP = c.addSPSigned(operands[0])
	}, Cycles(16))

	DefineInstruction(0x27, "DAA", func(c *CPU, _ []byte) { c.decimalAdjust() })
	DefineInstruction(0x2F, "CPL", func(c *CPU, _ []byte) {
		c.A = 0xFF ^ c.A
		c.setFlag(FlagSubtract)
		c.setFlag(FlagHalfCarry)
	})
	DefineInstruction(0x37, "SCF", func(c *CPU, _ []byte) {
		c.setFlag(FlagCarry)
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
	})
	DefineInstruction(0x3F, "CCF", func(c *CPU, _ []byte) {
		if c.isFlagSet(FlagCarry) {
			c.clearFlag(FlagCarry)
		} else {
			c.setFlag(FlagCarry)
		}
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
	})
}
