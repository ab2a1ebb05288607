// Package cpu provides an implementation of the Sharp LR35902, the
// CPU of the Game Boy. Instructions are dispatched through two
// fixed tables, InstructionSet and InstructionSetCB, and are
// executed atomically, after which the serial port and the timer
// are advanced by the cycles the instruction took.
package cpu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/interrupts"
	"github.com/thelolagemann/gbcore/internal/mmu"
	"github.com/thelolagemann/gbcore/internal/serial"
	"github.com/thelolagemann/gbcore/internal/timer"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the CPU.
	ClockSpeed = 4194304
)

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	types.Registers

	ime     bool
	halted  bool
	stopped bool
	counter uint64

	// branch holds the extra cycles of a taken conditional branch,
	// reset before every instruction
	branch uint8

	mmu    *mmu.MMU
	irq    *interrupts.Service
	timer  *timer.Controller
	serial *serial.Controller

	trace *Trace
	log   log.Logger
}

// Opt is a function that configures the CPU.
type Opt func(*CPU)

// WithLogger sets the logger of the CPU.
func WithLogger(l log.Logger) Opt {
	return func(c *CPU) {
		c.log = l
	}
}

// WithTraceCapacity sets the number of entries kept by the trace.
func WithTraceCapacity(n int) Opt {
	return func(c *CPU) {
		c.trace = NewTrace(n)
	}
}

// NewCPU creates a new CPU instance with the given MMU. The timer and
// serial controllers are advanced after every instruction.
func NewCPU(m *mmu.MMU, irq *interrupts.Service, t *timer.Controller, s *serial.Controller, opts ...Opt) *CPU {
	c := &CPU{
		SP:     0xFFFE,
		mmu:    m,
		irq:    irq,
		timer:  t,
		serial: s,
	}
	c.Registers.Init()
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = log.NewNullLogger()
	}
	if c.trace == nil {
		c.trace = NewTrace(DefaultTraceCapacity)
	}

	return c
}

// registerIndex returns a Register pointer for the given index, as
// encoded in the lower 3 bits of most opcodes.
func (c *CPU) registerIndex(index uint8) *types.Register {
	switch index {
	case 0:
		return &c.B
	case 1:
		return &c.C
	case 2:
		return &c.D
	case 3:
		return &c.E
	case 4:
		return &c.H
	case 5:
		return &c.L
	case 7:
		return &c.A
	}
	panic(fmt.Sprintf("invalid register index: %d", index))
}

// readIndex returns the operand selected by the register index,
// reading memory at HL for hlIndex.
func (c *CPU) readIndex(index uint8) uint8 {
	if index == hlIndex {
		return c.mmu.Read(c.HL.Uint16())
	}
	return *c.registerIndex(index)
}

// writeIndex stores value in the operand selected by the register
// index, writing memory at HL for hlIndex.
func (c *CPU) writeIndex(index uint8, value uint8) {
	if index == hlIndex {
		c.mmu.Write(c.HL.Uint16(), value)
		return
	}
	*c.registerIndex(index) = value
}

// IME returns the interrupt master enable flag.
func (c *CPU) IME() bool {
	return c.ime
}

// Halted reports whether the CPU is waiting for an interrupt.
func (c *CPU) Halted() bool {
	return c.halted
}

// Stopped reports whether a STOP instruction has been executed.
func (c *CPU) Stopped() bool {
	return c.stopped
}

// Counter returns the number of steps executed.
func (c *CPU) Counter() uint64 {
	return c.counter
}

// Trace returns the trace of the most recently executed steps.
func (c *CPU) Trace() *Trace {
	return c.trace
}

// Step executes a single instruction, advances the serial port and
// the timer, and services any pending interrupt. It returns the
// number of cycles that have elapsed.
//
// A halted CPU executes nothing, and takes 4 cycles. An opcode that
// has no instruction returns an *UnimplementedOpcodeError, leaving
// the registers and the step counter untouched. The failed fetch is
// still recorded in the trace.
func (c *CPU) Step() (uint8, error) {
	var cycles uint8
	if c.halted {
		c.record(c.PC, "NOP")
		cycles = 4
	} else {
		var err error
		if cycles, err = c.execute(); err != nil {
			return 0, err
		}
	}

	c.counter++
	c.serial.Advance(uint16(cycles))
	c.timer.Advance(uint16(cycles))

	return cycles + c.serviceInterrupts(), nil
}

// execute decodes and runs the instruction at PC.
func (c *CPU) execute() (uint8, error) {
	pc := c.PC
	opcode := c.mmu.Read(pc)
	instruction := InstructionSet[opcode]
	if opcode == 0xCB {
		instruction = InstructionSetCB[c.mmu.Read(pc+1)]
	}

	operands := [2]uint8{c.mmu.Read(pc + 1), c.mmu.Read(pc + 2)}
	if !instruction.Defined() {
		c.record(pc, fmt.Sprintf("ILLEGAL $%02X", opcode))
		c.log.Debugf("cpu: unimplemented opcode 0x%02X at 0x%04X", opcode, pc)
		return 0, &UnimplementedOpcodeError{
			Opcode:   opcode,
			Operands: operands,
			PC:       pc,
		}
	}

	args := operands[:instruction.length-1]
	c.record(pc, instruction.Mnemonic(args))

	c.PC += uint16(instruction.length)
	c.branch = 0
	instruction.fn(c, args)

	return instruction.cycles + c.branch, nil
}

// serviceInterrupts dispatches the highest priority pending
// interrupt, if the IME is set. A pending interrupt always wakes
// a halted CPU, even when it is not serviced.
func (c *CPU) serviceInterrupts() uint8 {
	if !c.irq.HasInterrupts() {
		return 0
	}
	if !c.ime {
		if c.halted {
			c.log.Debugf("cpu: woken from HALT at 0x%04X", c.PC)
		}
		c.halted = false
		return 0
	}

	vector := c.irq.Vector()
	c.record(c.PC, "INTERRUPT "+interrupts.Name(vector))

	c.pushStack(c.PC)
	c.PC = vector
	c.ime = false
	c.halted = false

	return interrupts.Cycles
}

// record adds an entry to the trace, with the registers as they
// are before the instruction at pc executes. The entry is numbered
// with the step it belongs to.
func (c *CPU) record(pc uint16, mnemonic string) {
	c.trace.Add(TraceEntry{
		Counter:   c.counter + 1,
		Bank:      c.mmu.Bank(),
		PC:        pc,
		Mnemonic:  mnemonic,
		A:         c.A,
		B:         c.B,
		C:         c.C,
		D:         c.D,
		E:         c.E,
		F:         c.F,
		H:         c.H,
		L:         c.L,
		SP:        c.SP,
		Zero:      c.isFlagSet(FlagZero),
		Subtract:  c.isFlagSet(FlagSubtract),
		HalfCarry: c.isFlagSet(FlagHalfCarry),
		Carry:     c.isFlagSet(FlagCarry),
	})
}

var _ types.Stater = (*CPU)(nil)

// Load implements the types.Stater interface.
//
// The values are loaded in the following order:
//   - A, F, B, C, D, E, H, L (uint8)
//   - SP, PC (uint16)
//   - IME, halted, stopped (bool)
//   - counter (uint64)
func (c *CPU) Load(s *types.State) {
	c.A = s.Read8()
	c.F = s.Read8() & 0xF0
	c.B = s.Read8()
	c.C = s.Read8()
	c.D = s.Read8()
	c.E = s.Read8()
	c.H = s.Read8()
	c.L = s.Read8()
	c.SP = s.Read16()
	c.PC = s.Read16()
	c.ime = s.ReadBool()
	c.halted = s.ReadBool()
	c.stopped = s.ReadBool()
	c.counter = s.Read64()
}

// Save implements the types.Stater interface.
func (c *CPU) Save(s *types.State) {
	s.Write8(c.A)
	s.Write8(c.F)
	s.Write8(c.B)
	s.Write8(c.C)
	s.Write8(c.D)
	s.Write8(c.E)
	s.Write8(c.H)
	s.Write8(c.L)
	s.Write16(c.SP)
	s.Write16(c.PC)
	s.WriteBool(c.ime)
	s.WriteBool(c.halted)
	s.WriteBool(c.stopped)
	s.Write64(c.counter)
}
