package cpu

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Instruction is an entry of the dispatch tables. The name is a
// mnemonic template, in which the operand tokens d8, d16, a8, a16
// and r8 are replaced by the operand bytes when the instruction is
// traced.
type Instruction struct {
	name   string
	length uint8
	cycles uint8
	fn     func(*CPU, []byte)
}

// InstructionOption configures an Instruction as it is defined.
type InstructionOption func(*Instruction)

// Length sets the length of the instruction in bytes, including
// the opcode. By default it is derived from the operand tokens of
// the name.
func Length(n uint8) InstructionOption {
	return func(i *Instruction) {
		i.length = n
	}
}

// Cycles sets the number of clock cycles the instruction takes.
// Conditional branches are defined with their not taken cost.
func Cycles(n uint8) InstructionOption {
	return func(i *Instruction) {
		i.cycles = n
	}
}

var (
	// InstructionSet holds the 256 base instructions. The entries
	// of the 11 unused opcodes are left undefined.
	InstructionSet [256]Instruction
	// InstructionSetCB holds the 256 instructions prefixed by 0xCB.
	InstructionSetCB [256]Instruction
)

func newInstruction(name string, fn func(*CPU, []byte), opts ...InstructionOption) Instruction {
	instruction := Instruction{
		name:   name,
		length: templateLength(name),
		cycles: 4,
		fn:     fn,
	}
	for _, opt := range opts {
		opt(&instruction)
	}
	return instruction
}

// DefineInstruction defines the instruction in the InstructionSet,
// with the provided opcode.
func DefineInstruction(opcode uint8, name string, fn func(*CPU, []byte), opts ...InstructionOption) {
	InstructionSet[opcode] = newInstruction(name, fn, opts...)
}

// DefineInstructionCB defines the instruction in the InstructionSetCB,
// with the provided opcode. CB instructions are 2 bytes long, and
// take 8 cycles unless told otherwise.
func DefineInstructionCB(opcode uint8, name string, fn func(*CPU), opts ...InstructionOption) {
	opts = append([]InstructionOption{Length(2), Cycles(8)}, opts...)
	InstructionSetCB[opcode] = newInstruction(name, func(c *CPU, _ []byte) { fn(c) }, opts...)
}

// Name returns the mnemonic template of the instruction.
func (i Instruction) Name() string {
	return i.name
}

// Length returns the length of the instruction in bytes.
func (i Instruction) Length() uint8 {
	return i.length
}

// Cycles returns the number of clock cycles the instruction takes.
func (i Instruction) Cycles() uint8 {
	return i.cycles
}

// Defined reports whether the opcode has an instruction.
func (i Instruction) Defined() bool {
	return i.fn != nil
}

// Execute runs the instruction on the CPU with the given operands.
// PC is expected to already point past the instruction.
func (i Instruction) Execute(c *CPU, operands []byte) {
	i.fn(c, operands)
}

// Mnemonic returns the name of the instruction with the operand
// tokens replaced by the given operands.
func (i Instruction) Mnemonic(operands []byte) string {
	name := i.name
	switch {
	case len(operands) >= 2 && strings.Contains(name, "d16"):
		return strings.Replace(name, "d16", fmt.Sprintf("$%04X", binary.LittleEndian.Uint16(operands)), 1)
	case len(operands) >= 2 && strings.Contains(name, "a16"):
		return strings.Replace(name, "a16", fmt.Sprintf("$%04X", binary.LittleEndian.Uint16(operands)), 1)
	case len(operands) >= 1 && strings.Contains(name, "d8"):
		return strings.Replace(name, "d8", fmt.Sprintf("$%02X", operands[0]), 1)
	case len(operands) >= 1 && strings.Contains(name, "a8"):
		return strings.Replace(name, "a8", fmt.Sprintf("$FF%02X", operands[0]), 1)
	case len(operands) >= 1 && strings.Contains(name, "r8"):
		return strings.Replace(name, "r8", fmt.Sprintf("%+d", int8(operands[0])), 1)
	}
	return name
}

// templateLength returns the instruction length implied by the
// operand tokens of a mnemonic template.
func templateLength(name string) uint8 {
	switch {
	case strings.Contains(name, "d16"), strings.Contains(name, "a16"):
		return 3
	case strings.Contains(name, "d8"), strings.Contains(name, "a8"), strings.Contains(name, "r8"):
		return 2
	}
	return 1
}

// registerNames holds the operand names of the register index
// encoded in the opcodes.
var registerNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// hlIndex is the register index that addresses memory at HL.
const hlIndex = 6

func init() {
	DefineInstruction(0x00, "NOP", func(c *CPU, _ []byte) {})
	DefineInstruction(0x10, "STOP", func(c *CPU, _ []byte) {
		c.stopped = true
		c.log.Debugf("cpu: STOP at 0x%04X", c.PC-2)
	}, Length(2))
	DefineInstruction(0x76, "HALT", func(c *CPU, _ []byte) {
		c.halted = true
		c.log.Debugf("cpu: HALT at 0x%04X", c.PC-1)
	})
	DefineInstruction(0xF3, "DI", func(c *CPU, _ []byte) { c.ime = false })
	DefineInstruction(0xFB, "EI", func(c *CPU, _ []byte) { c.ime = true })
	DefineInstruction(0xCB, "PREFIX CB", func(c *CPU, _ []byte) {}, Length(2))
}
