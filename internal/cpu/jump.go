package cpu

import (
	"encoding/binary"
	"fmt"
)

const (
	// jumpRelativeTaken is the extra cost of a taken JR cc.
	jumpRelativeTaken = 4
	// jumpAbsoluteTaken is the extra cost of a taken JP cc.
	jumpAbsoluteTaken = 4
	// callTaken is the extra cost of a taken CALL cc.
	callTaken = 12
	// retTaken is the extra cost of a taken RET cc.
	retTaken = 12
)

// pushStack pushes a 16 bit value onto the stack.
func (c *CPU) pushStack(value uint16) {
	c.SP--
	c.mmu.Write(c.SP, uint8(value>>8))
	c.SP--
	c.mmu.Write(c.SP, uint8(value&0xFF))
}

// popStack pops a 16 bit value off the stack.
func (c *CPU) popStack() uint16 {
	lower := uint16(c.mmu.Read(c.SP))
	upper := uint16(c.mmu.Read(c.SP+1)) << 8
	c.SP += 2
	return lower | upper
}

// call pushes the address of the next instruction onto the stack and jumps to
// the given address.
//
//	CALL nn
//	nn = 16-bit immediate value
func (c *CPU) call(address uint16) {
	c.pushStack(c.PC)
	c.PC = address
}

// callConditional pushes the address of the next instruction onto the stack and
// jumps to the given address if the given condition is true.
//
//	CALL cc, nn
//	cc = NZ, Z, NC, C
//	nn = 16-bit immediate value
func (c *CPU) callConditional(condition bool, address uint16) {
	if condition {
		c.call(address)
		c.branch = callTaken
	}
}

// jumpRelative jumps to the address relative to the next instruction.
//
//	JR e
//	e = 8-bit signed immediate value
func (c *CPU) jumpRelative(offset uint8) {
	c.PC = uint16(int32(c.PC) + int32(int8(offset)))
}

// jumpRelativeConditional jumps to the address relative to the next
// instruction if the given condition is true.
//
//	JR cc, e
//	cc = NZ, Z, NC, C
//	e = 8-bit signed immediate value
func (c *CPU) jumpRelativeConditional(condition bool, offset uint8) {
	if condition {
		c.jumpRelative(offset)
		c.branch = jumpRelativeTaken
	}
}

// jumpAbsoluteConditional jumps to the given address if the given condition is
// true.
//
//	JP cc, nn
//	cc = NZ, Z, NC, C
//	nn = 16-bit immediate value
func (c *CPU) jumpAbsoluteConditional(condition bool, address uint16) {
	if condition {
		c.PC = address
		c.branch = jumpAbsoluteTaken
	}
}

// ret pops the top two bytes off the stack and jumps to that address.
//
//	RET
func (c *CPU) ret() {
	c.PC = c.popStack()
}

// retConditional pops the top two bytes off the stack and jumps to that
// address if the given condition is true.
//
//	RET cc
//	cc = NZ, Z, NC, C
func (c *CPU) retConditional(condition bool) {
	if condition {
		c.ret()
		c.branch = retTaken
	}
}

// conditions holds the 4 branch conditions, in the order they are
// encoded in bits 3-4 of the opcode.
var conditions = [4]struct {
	name string
	test func(c *CPU) bool
}{
	{"NZ", func(c *CPU) bool { return !c.isFlagSet(FlagZero) }},
	{"Z", func(c *CPU) bool { return c.isFlagSet(FlagZero) }},
	{"NC", func(c *CPU) bool { return !c.isFlagSet(FlagCarry) }},
	{"C", func(c *CPU) bool { return c.isFlagSet(FlagCarry) }},
}

func init() {
	DefineInstruction(0x18, "JR r8", func(c *CPU, operands []byte) { c.jumpRelative(operands[0]) }, Cycles(12))
	DefineInstruction(0xC3, "JP a16", func(c *CPU, operands []byte) {
		c.PC = binary.LittleEndian.Uint16(operands)
	}, Cycles(16))
	DefineInstruction(0xE9, "JP (HL)", func(c *CPU, _ []byte) { c.PC = c.HL.Uint16() })
	DefineInstruction(0xCD, "CALL a16", func(c *CPU, operands []byte) {
		c.call(binary.LittleEndian.Uint16(operands))
	}, Cycles(24))
	DefineInstruction(0xC9, "RET", func(c *CPU, _ []byte) { c.ret() }, Cycles(16))
	DefineInstruction(0xD9, "RETI", func(c *CPU, _ []byte) {
		c.ret()
		c.ime = true
	}, Cycles(16))

	for i, cc := range conditions {
		test := cc.test
		opcode := uint8(i) << 3
		DefineInstruction(0x20+opcode, fmt.Sprintf("JR %s, r8", cc.name), func(c *CPU, operands []byte) {
			c.jumpRelativeConditional(test(c), operands[0])
		}, Cycles(8))
		DefineInstruction(0xC2+opcode, fmt.Sprintf("JP %s, a16", cc.name), func(c *CPU, operands []byte) {
			c.jumpAbsoluteConditional(test(c), binary.LittleEndian.Uint16(operands))
		}, Cycles(12))
		DefineInstruction(0xC4+opcode, fmt.Sprintf("CALL %s, a16", cc.name), func(c *CPU, operands []byte) {
			c.callConditional(test(c), binary.LittleEndian.Uint16(operands))
		}, Cycles(12))
		DefineInstruction(0xC0+opcode, fmt.Sprintf("RET %s", cc.name), func(c *CPU, _ []byte) {
			c.retConditional(test(c))
		}, Cycles(8))
	}

	// 0xC7, 0xCF ... 0xFF - RST n
	for i := uint8(0); i < 8; i++ {
		address := uint16(i) * 8
		DefineInstruction(0xC7+i<<3, fmt.Sprintf("RST $%02X", address), func(c *CPU, _ []byte) {
			c.call(address)
		}, Cycles(16))
	}
}
