package cpu

import "fmt"

// cbOperations holds the rotate and shift operations of the first
// quarter of the CB table, in the order they are encoded in bits 3-5.
var cbOperations = [8]struct {
	name string
	fn   func(c *CPU, n uint8) uint8
}{
	{"RLC", (*CPU).rotateLeftCarry},
	{"RRC", (*CPU).rotateRightCarry},
	{"RL", (*CPU).rotateLeftThroughCarry},
	{"RR", (*CPU).rotateRightThroughCarry},
	{"SLA", (*CPU).shiftLeftArithmetic},
	{"SRA", (*CPU).shiftRightArithmetic},
	{"SWAP", (*CPU).swap},
	{"SRL", (*CPU).shiftRightLogical},
}

func init() {
	for i := 0; i < 256; i++ {
		opcode := uint8(i)
		index := opcode & 7
		operand := registerNames[index]

		// (HL) operands take 16 cycles, or 12 for BIT which only reads
		cycles := uint8(8)
		if index == hlIndex {
			cycles = 16
		}

		switch group, y := opcode>>6, opcode>>3&7; group {
		case 0: // rotates and shifts
			op := cbOperations[y]
			DefineInstructionCB(opcode, fmt.Sprintf("%s %s", op.name, operand), func(c *CPU) {
				c.writeIndex(index, op.fn(c, c.readIndex(index)))
			}, Cycles(cycles))
		case 1: // BIT y, r
			if index == hlIndex {
				cycles = 12
			}
			DefineInstructionCB(opcode, fmt.Sprintf("BIT %d, %s", y, operand), func(c *CPU) {
				c.testBit(c.readIndex(index), y)
			}, Cycles(cycles))
		case 2: // RES y, r
			DefineInstructionCB(opcode, fmt.Sprintf("RES %d, %s", y, operand), func(c *CPU) {
				c.writeIndex(index, c.readIndex(index)&^(1<<y))
			}, Cycles(cycles))
		case 3: // SET y, r
			DefineInstructionCB(opcode, fmt.Sprintf("SET %d, %s", y, operand), func(c *CPU) {
				c.writeIndex(index, c.readIndex(index)|1<<y)
			}, Cycles(cycles))
		}
	}
}
