package cpu

import "fmt"

// UnimplementedOpcodeError is returned by CPU.Step when the opcode
// at PC has no entry in the instruction set. The CPU is left in
// the state it was in before the step.
type UnimplementedOpcodeError struct {
	Opcode   uint8
	Operands [2]uint8
	PC       uint16
}

func (e *UnimplementedOpcodeError) Error() string {
	return fmt.Sprintf("cpu: unimplemented opcode 0x%02X at 0x%04X", e.Opcode, e.PC)
}
