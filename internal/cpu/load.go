package cpu

import (
	"encoding/binary"
	"fmt"

	"github.com/thelolagemann/gbcore/internal/types"
)

// loadRegisterToHardware loads the value of the given Register into the given
// hardware address.
//
//	LD (0xFF00 + n), A
//	n = C, 8 bit immediate value
func (c *CPU) loadRegisterToHardware(reg types.Register, address uint8) {
	c.mmu.Write(0xFF00+uint16(address), reg)
}

// loadHardwareToRegister loads the value at the given hardware address
// into the given Register.
//
//	LD A, (0xFF00 + n)
//	n = C, 8 bit immediate value
func (c *CPU) loadHardwareToRegister(reg *types.Register, address uint8) {
	*reg = c.mmu.Read(0xFF00 + uint16(address))
}

// loadRegisterPair loads the operands into the given Register pair.
//
//	LD nn, d16
//	nn = BC, DE, HL
//	d16 = 16-bit immediate value
func (c *CPU) loadRegisterPair(reg *types.RegisterPair, operands []byte) {
	reg.SetUint16(binary.LittleEndian.Uint16(operands))
}

// loadHLSPSigned loads SP plus the signed operand into HL.
//
//	LD HL, SP+r8
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) loadHLSPSigned(offset uint8) {
	c.HL.SetUint16(c.addSPSigned(offset))
}

func init() {
	// 0x40 - 0x7F - LD r, r' (0x76 is HALT)
	for opcode := 0x40; opcode < 0x80; opcode++ {
		if opcode == 0x76 {
			continue
		}
		dst, src := uint8(opcode>>3)&7, uint8(opcode)&7
		cycles := uint8(4)
		if dst == hlIndex || src == hlIndex {
			cycles = 8
		}
		DefineInstruction(uint8(opcode), fmt.Sprintf("LD %s, %s", registerNames[dst], registerNames[src]), func(c *CPU, _ []byte) {
			c.writeIndex(dst, c.readIndex(src))
		}, Cycles(cycles))
	}

	// 0x06, 0x0E ... 0x3E - LD r, d8
	for i := uint8(0); i < 8; i++ {
		index := i
		cycles := uint8(8)
		if index == hlIndex {
			cycles = 12
		}
		DefineInstruction(0x06+index<<3, fmt.Sprintf("LD %s, d8", registerNames[index]), func(c *CPU, operands []byte) {
			c.writeIndex(index, operands[0])
		}, Cycles(cycles))
	}

	DefineInstruction(0x01, "LD BC, d16", func(c *CPU, operands []byte) { c.loadRegisterPair(c.BC, operands) }, Cycles(12))
	DefineInstruction(0x11, "LD DE, d16", func(c *CPU, operands []byte) { c.loadRegisterPair(c.DE, operands) }, Cycles(12))
	DefineInstruction(0x21, "LD HL, d16", func(c *CPU, operands []byte) { c.loadRegisterPair(c.HL, operands) }, Cycles(12))
	DefineInstruction(0x31, "LD SP, d16", func(c *CPU, operands []byte) {
		c.SP = binary.LittleEndian.Uint16(operands)
	}, Cycles(12))

	DefineInstruction(0x02, "LD (BC), A", func(c *CPU, _ []byte) { c.mmu.Write(c.BC.Uint16(), c.A) }, Cycles(8))
	DefineInstruction(0x12, "LD (DE), A", func(c *CPU, _ []byte) { c.mmu.Write(c.DE.Uint16(), c.A) }, Cycles(8))
	DefineInstruction(0x22, "LD (HL+), A", func(c *CPU, _ []byte) {
		c.mmu.Write(c.HL.Uint16(), c.A)
		c.HL.SetUint16(c.HL.Uint16() + 1)
	}, Cycles(8))
	DefineInstruction(0x32, "LD (HL-), A", func(c *CPU, _ []byte) {
		c.mmu.Write(c.HL.Uint16(), c.A)
		c.HL.SetUint16(c.HL.Uint16() - 1)
	}, Cycles(8))
	DefineInstruction(0x0A, "LD A, (BC)", func(c *CPU, _ []byte) { c.A = c.mmu.Read(c.BC.Uint16()) }, Cycles(8))
	DefineInstruction(0x1A, "LD A, (DE)", func(c *CPU, _ []byte) { c.A = c.mmu.Read(c.DE.Uint16()) }, Cycles(8))
	DefineInstruction(0x2A, "LD A, (HL+)", func(c *CPU, _ []byte) {
		c.A = c.mmu.Read(c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() + 1)
	}, Cycles(8))
	DefineInstruction(0x3A, "LD A, (HL-)", func(c *CPU, _ []byte) {
		c.A = c.mmu.Read(c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() - 1)
	}, Cycles(8))

	DefineInstruction(0x08, "LD (a16), SP", func(c *CPU, operands []byte) {
		address := binary.LittleEndian.Uint16(operands)
		c.mmu.Write(address, uint8(c.SP&0xFF))
		c.mmu.Write(address+1, uint8(c.SP>>8))
	}, Cycles(20))

	DefineInstruction(0xE0, "LDH (a8), A", func(c *CPU, operands []byte) { c.loadRegisterToHardware(c.A, operands[0]) }, Cycles(12))
	DefineInstruction(0xF0, "LDH A, (a8)", func(c *CPU, operands []byte) { c.loadHardwareToRegister(&c.A, operands[0]) }, Cycles(12))
	DefineInstruction(0xE2, "LD (C), A", func(c *CPU, _ []byte) { c.loadRegisterToHardware(c.A, c.C) }, Cycles(8))
	DefineInstruction(0xF2, "LD A, (C)", func(c *CPU, _ []byte) { c.loadHardwareToRegister(&c.A, c.C) }, Cycles(8))
	DefineInstruction(0xEA, "LD (a16), A", func(c *CPU, operands []byte) {
		c.mmu.Write(binary.LittleEndian.Uint16(operands), c.A)
	}, Cycles(16))
	DefineInstruction(0xFA, "LD A, (a16)", func(c *CPU, operands []byte) {
		c.A = c.mmu.Read(binary.LittleEndian.Uint16(operands))
	}, Cycles(16))

	DefineInstruction(0xF8, "LD HL, SP+r8", func(c *CPU, operands []byte) { c.loadHLSPSigned(operands[0]) }, Cycles(12))
	DefineInstruction(0xF9, "LD SP, HL", func(c *CPU, _ []byte) { c.SP = c.HL.Uint16() }, Cycles(8))

	DefineInstruction(0xC1, "POP BC", func(c *CPU, _ []byte) { c.BC.SetUint16(c.popStack()) }, Cycles(12))
	DefineInstruction(0xD1, "POP DE", func(c *CPU, _ []byte) { c.DE.SetUint16(c.popStack()) }, Cycles(12))
	DefineInstruction(0xE1, "POP HL", func(c *CPU, _ []byte) { c.HL.SetUint16(c.popStack()) }, Cycles(12))
	DefineInstruction(0xF1, "POP AF", func(c *CPU, _ []byte) { c.AF.SetUint16(c.popStack()) }, Cycles(12))
	DefineInstruction(0xC5, "PUSH BC", func(c *CPU, _ []byte) { c.pushStack(c.BC.Uint16()) }, Cycles(16))
	DefineInstruction(0xD5, "PUSH DE", func(c *CPU, _ []byte) { c.pushStack(c.DE.Uint16()) }, Cycles(16))
	DefineInstruction(0xE5, "PUSH HL", func(c *CPU, _ []byte) { c.pushStack(c.HL.Uint16()) }, Cycles(16))
	DefineInstruction(0xF5, "PUSH AF", func(c *CPU, _ []byte) { c.pushStack(c.AF.Uint16()) }, Cycles(16))
}
