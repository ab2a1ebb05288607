package cpu

import "fmt"

// add is a helper function for adding two bytes together and
// setting the flags accordingly.
//
// Used by:
//
//	ADD A, n
//	ADC A, n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(a, b uint8, shouldCarry bool) uint8 {
	carry := uint16(0)
	if shouldCarry && c.isFlagSet(FlagCarry) {
		carry = 1
	}
	sum := uint16(a) + uint16(b) + carry
	sumHalf := uint16(a&0xF) + uint16(b&0xF) + carry
	c.setFlags(uint8(sum) == 0, false, sumHalf > 0xF, sum > 0xFF)
	return uint8(sum)
}

// sub is a helper function for subtracting two bytes and
// setting the flags accordingly.
//
// Used by:
//
//	SUB n
//	SBC A, n
//	CP n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(a, b uint8, shouldCarry bool) uint8 {
	carry := int16(0)
	if shouldCarry && c.isFlagSet(FlagCarry) {
		carry = 1
	}
	diff := int16(a) - int16(b) - carry
	diffHalf := int16(a&0xF) - int16(b&0xF) - carry
	c.setFlags(uint8(diff) == 0, true, diffHalf < 0, diff < 0)
	return uint8(diff)
}

// and performs a bitwise AND operation on the two given values,
// and sets the flags accordingly.
//
//	AND n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(a, b uint8) uint8 {
	computed := a & b
	c.setFlags(computed == 0, false, true, false)
	return computed
}

// or performs a bitwise OR operation on the two given values,
// and sets the flags accordingly.
//
//	OR n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(a, b uint8) uint8 {
	computed := a | b
	c.setFlags(computed == 0, false, false, false)
	return computed
}

// xor performs a bitwise XOR operation on the two given values,
// and sets the flags accordingly.
//
//	XOR n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(a, b uint8) uint8 {
	computed := a ^ b
	c.setFlags(computed == 0, false, false, false)
	return computed
}

// aluOperations holds the 8 accumulator operations, in the order
// they are encoded in bits 3-5 of the opcode.
var aluOperations = [8]struct {
	name string
	fn   func(c *CPU, value uint8)
}{
	{"ADD A,", func(c *CPU, v uint8) { c.A = c.add(c.A, v, false) }},
	{"ADC A,", func(c *CPU, v uint8) { c.A = c.add(c.A, v, true) }},
	{"SUB", func(c *CPU, v uint8) { c.A = c.sub(c.A, v, false) }},
	{"SBC A,", func(c *CPU, v uint8) { c.A = c.sub(c.A, v, true) }},
	{"AND", func(c *CPU, v uint8) { c.A = c.and(c.A, v) }},
	{"XOR", func(c *CPU, v uint8) { c.A = c.xor(c.A, v) }},
	{"OR", func(c *CPU, v uint8) { c.A = c.or(c.A, v) }},
	{"CP", func(c *CPU, v uint8) { c.sub(c.A, v, false) }},
}

func init() {
	for op := uint8(0); op < 8; op++ {
		operation := aluOperations[op]

		// 0x80 - 0xBF - OP r
		for i := uint8(0); i < 8; i++ {
			index := i
			cycles := uint8(4)
			if index == hlIndex {
				cycles = 8
			}
			DefineInstruction(0x80+op<<3+index, fmt.Sprintf("%s %s", operation.name, registerNames[index]), func(c *CPU, _ []byte) {
				operation.fn(c, c.readIndex(index))
			}, Cycles(cycles))
		}

		// 0xC6, 0xCE ... 0xFE - OP d8
		DefineInstruction(0xC6+op<<3, operation.name+" d8", func(c *CPU, operands []byte) {
			operation.fn(c, operands[0])
		}, Cycles(8))
	}
}
