package cpu

import (
	"testing"
)

func TestInstruction_ALU(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint8
		a, b   uint8
		carry  bool
		want   uint8
		flags  uint8
	}{
		{"ADD A, B", 0x80, 0x3A, 0xC6, false, 0x00, 0xB0},
		{"ADD A, B", 0x80, 0x0F, 0x01, false, 0x10, 0x20},
		{"ADD A, B", 0x80, 0xF0, 0x20, false, 0x10, 0x10},
		{"ADC A, B", 0x88, 0xE1, 0x0F, true, 0xF1, 0x20},
		{"ADC A, B", 0x88, 0xE1, 0x1E, true, 0x00, 0xB0},
		{"ADC A, B", 0x88, 0x0E, 0x01, true, 0x10, 0x20},
		{"SUB B", 0x90, 0x3E, 0x3E, false, 0x00, 0xC0},
		{"SUB B", 0x90, 0x3E, 0x0F, false, 0x2F, 0x60},
		{"SUB B", 0x90, 0x3E, 0x40, false, 0xFE, 0x50},
		{"SBC A, B", 0x98, 0x3B, 0x2A, true, 0x10, 0x40},
		{"SBC A, B", 0x98, 0x3B, 0x3A, true, 0x00, 0xC0},
		{"SBC A, B", 0x98, 0x3B, 0x4F, true, 0xEB, 0x70},
		{"AND B", 0xA0, 0x5A, 0x3F, false, 0x1A, 0x20},
		{"AND B", 0xA0, 0x5A, 0x00, true, 0x00, 0xA0},
		{"XOR B", 0xA8, 0xFF, 0xFF, true, 0x00, 0x80},
		{"XOR B", 0xA8, 0xFF, 0x0F, false, 0xF0, 0x00},
		{"OR B", 0xB0, 0x5A, 0x00, true, 0x5A, 0x00},
		{"OR B", 0xB0, 0x00, 0x00, false, 0x00, 0x80},
		{"CP B", 0xB8, 0x3C, 0x2F, false, 0x3C, 0x60},
		{"CP B", 0xB8, 0x3C, 0x3C, false, 0x3C, 0xC0},
		{"CP B", 0xB8, 0x3C, 0x40, false, 0x3C, 0x50},
	}
	for _, tt := range tests {
		testInstruction(t, tt.name, tt.opcode, func(t *testing.T, c *CPU, instr Instruction) {
			c.A, c.B = tt.a, tt.b
			if tt.carry {
				c.setFlag(FlagCarry)
			}

			instr.Execute(c, nil)

			if c.A != tt.want {
				t.Errorf("0x%02X, 0x%02X: expected A 0x%02X, got 0x%02X", tt.a, tt.b, tt.want, c.A)
			}
			if c.F != tt.flags {
				t.Errorf("0x%02X, 0x%02X: expected F 0x%02X, got 0x%02X", tt.a, tt.b, tt.flags, c.F)
			}
		})
	}
}

func TestInstruction_ALUImmediate(t *testing.T) {
	testInstruction(t, "ADD A, d8", 0xC6, func(t *testing.T, c *CPU, instr Instruction) {
		c.A = 0x3A
		instr.Execute(c, []byte{0xC6})
		if c.A != 0 || c.F != 0xB0 {
			t.Errorf("expected A 0x00 F 0xB0, got A 0x%02X F 0x%02X", c.A, c.F)
		}
	})
	testInstruction(t, "CP d8", 0xFE, func(t *testing.T, c *CPU, instr Instruction) {
		c.A = 0x3C
		instr.Execute(c, []byte{0x3C})
		if c.A != 0x3C || !flagsSet(c, FlagZero, FlagSubtract) {
			t.Errorf("expected A 0x3C with Z and N, got A 0x%02X F 0x%02X", c.A, c.F)
		}
	})
	testInstruction(t, "AND (HL)", 0xA6, func(t *testing.T, c *CPU, instr Instruction) {
		c.A = 0xF0
		c.HL.SetUint16(0xC100)
		c.mmu.Write(0xC100, 0x3C)
		instr.Execute(c, nil)
		if c.A != 0x30 {
			t.Errorf("expected A 0x30, got 0x%02X", c.A)
		}
	})
}

// referenceDAA computes the decimal adjustment as a single
// correction value.
func referenceDAA(a uint8, subtract, halfCarry, carry bool) (uint8, bool) {
	var correction uint8
	if halfCarry || !subtract && a&0x0F > 0x09 {
		correction |= 0x06
	}
	if carry || !subtract && a > 0x99 {
		correction |= 0x60
		carry = true
	}
	if subtract {
		return a - correction, carry
	}
	return a + correction, carry
}

func TestInstruction_DAA(t *testing.T) {
	testInstruction(t, "DAA", 0x27, func(t *testing.T, c *CPU, instr Instruction) {
		for a := 0; a < 0x100; a++ {
			for flags := uint8(0); flags < 8; flags++ {
				subtract, halfCarry, carry := flags&4 != 0, flags&2 != 0, flags&1 != 0

				c.A = uint8(a)
				c.setFlags(false, subtract, halfCarry, carry)
				instr.Execute(c, nil)

				want, wantCarry := referenceDAA(uint8(a), subtract, halfCarry, carry)
				if c.A != want {
					t.Fatalf("A 0x%02X N %t H %t C %t: expected 0x%02X, got 0x%02X", a, subtract, halfCarry, carry, want, c.A)
				}
				if c.isFlagSet(FlagCarry) != wantCarry {
					t.Fatalf("A 0x%02X N %t H %t C %t: expected carry %t", a, subtract, halfCarry, carry, wantCarry)
				}
				if c.isFlagSet(FlagZero) != (want == 0) || c.isFlagSet(FlagHalfCarry) || c.isFlagSet(FlagSubtract) != subtract {
					t.Fatalf("A 0x%02X N %t H %t C %t: unexpected flags 0x%02X", a, subtract, halfCarry, carry, c.F)
				}
			}
		}
	})

	// 0x15 + 0x27 = 0x42 in BCD
	c := newTestCPU(t)
	load(c, 0x3E, 0x15, 0xC6, 0x27, 0x27)
	for i := 0; i < 3; i++ {
		if _, err := c.Step(); err != nil {
			t.Fatal(err)
		}
	}
	if c.A != 0x42 {
		t.Errorf("expected BCD 0x42, got 0x%02X", c.A)
	}
}

func TestInstruction_IncrementDecrement(t *testing.T) {
	testInstruction(t, "INC A", 0x3C, func(t *testing.T, c *CPU, instr Instruction) {
		c.A = 0xFF
		c.setFlag(FlagCarry)
		instr.Execute(c, nil)

		if c.A != 0 {
			t.Errorf("expected A 0x00, got 0x%02X", c.A)
		}
		if !flagsSet(c, FlagZero, FlagHalfCarry, FlagCarry) || c.isFlagSet(FlagSubtract) {
			t.Errorf("expected Z H C to be set, got 0x%02X", c.F)
		}
	})
	testInstruction(t, "DEC B", 0x05, func(t *testing.T, c *CPU, instr Instruction) {
		c.B = 0x10
		instr.Execute(c, nil)

		if c.B != 0x0F {
			t.Errorf("expected B 0x0F, got 0x%02X", c.B)
		}
		if !flagsSet(c, FlagSubtract, FlagHalfCarry) || c.isFlagSet(FlagCarry) {
			t.Errorf("expected N H to be set and C preserved, got 0x%02X", c.F)
		}
	})
	testInstruction(t, "INC (HL)", 0x34, func(t *testing.T, c *CPU, instr Instruction) {
		c.HL.SetUint16(0xC123)
		c.mmu.Write(0xC123, 0x42)
		instr.Execute(c, nil)

		if got := c.mmu.Read(0xC123); got != 0x43 {
			t.Errorf("expected 0x43 at 0xC123, got 0x%02X", got)
		}
	})
	testInstruction(t, "DEC BC", 0x0B, func(t *testing.T, c *CPU, instr Instruction) {
		c.BC.SetUint16(0x0000)
		c.F = 0xF0
		instr.Execute(c, nil)

		if c.BC.Uint16() != 0xFFFF || c.F != 0xF0 {
			t.Errorf("expected BC 0xFFFF with flags untouched, got 0x%04X 0x%02X", c.BC.Uint16(), c.F)
		}
	})
}

func TestInstruction_16BitArithmetic(t *testing.T) {
	testInstruction(t, "ADD HL, BC", 0x09, func(t *testing.T, c *CPU, instr Instruction) {
		c.HL.SetUint16(0x8A23)
		c.BC.SetUint16(0x0605)
		c.setFlag(FlagZero)
		instr.Execute(c, nil)

		if c.HL.Uint16() != 0x9028 {
			t.Errorf("expected HL 0x9028, got 0x%04X", c.HL.Uint16())
		}
		if c.F != 0xA0 {
			t.Errorf("expected F 0xA0, got 0x%02X", c.F)
		}
	})
	testInstruction(t, "ADD HL, HL", 0x29, func(t *testing.T, c *CPU, instr Instruction) {
		c.HL.SetUint16(0x8A23)
		instr.Execute(c, nil)

		if c.HL.Uint16() != 0x1446 || c.F != 0x30 {
			t.Errorf("expected HL 0x1446 F 0x30, got 0x%04X 0x%02X", c.HL.Uint16(), c.F)
		}
	})
	testInstruction(t, "ADD SP, r8", 0xE8, func(t *testing.T, c *CPU, instr Instruction) {
		c.SP = 0xFFF8
		c.setFlag(FlagZero)
		instr.Execute(c, []byte{0x02})

		if c.SP != 0xFFFA || c.F != 0x00 {
			t.Errorf("expected SP 0xFFFA F 0x00, got 0x%04X 0x%02X", c.SP, c.F)
		}

		c.SP = 0x00FF
		instr.Execute(c, []byte{0xFF})
		if c.SP != 0x00FE || c.F != 0x30 {
			t.Errorf("expected SP 0x00FE F 0x30, got 0x%04X 0x%02X", c.SP, c.F)
		}
	})
	testInstruction(t, "LD HL, SP+r8", 0xF8, func(t *testing.T, c *CPU, instr Instruction) {
		c.SP = 0xFFF8
		instr.Execute(c, []byte{0x0A})

		if c.HL.Uint16() != 0x0002 || c.F != 0x30 {
			t.Errorf("expected HL 0x0002 F 0x30, got 0x%04X 0x%02X", c.HL.Uint16(), c.F)
		}
		if c.SP != 0xFFF8 {
			t.Errorf("expected SP to be unchanged, got 0x%04X", c.SP)
		}
	})
}

func TestInstruction_Control(t *testing.T) {
	testInstruction(t, "CPL", 0x2F, func(t *testing.T, c *CPU, instr Instruction) {
		c.A = 0x35
		instr.Execute(c, nil)
		if c.A != 0xCA || !flagsSet(c, FlagSubtract, FlagHalfCarry) {
			t.Errorf("expected A 0xCA with N H, got 0x%02X 0x%02X", c.A, c.F)
		}
	})
	testInstruction(t, "SCF", 0x37, func(t *testing.T, c *CPU, instr Instruction) {
		c.F = 0xE0
		instr.Execute(c, nil)
		if c.F != 0x90 {
			t.Errorf("expected F 0x90, got 0x%02X", c.F)
		}
	})
	testInstruction(t, "CCF", 0x3F, func(t *testing.T, c *CPU, instr Instruction) {
		c.F = 0xF0
		instr.Execute(c, nil)
		if c.F != 0x80 {
			t.Errorf("expected F 0x80, got 0x%02X", c.F)
		}
		instr.Execute(c, nil)
		if c.F != 0x90 {
			t.Errorf("expected F 0x90, got 0x%02X", c.F)
		}
	})
}

func TestFlag(t *testing.T) {
	c := newTestCPU(t)
	for _, flag := range []Flag{FlagZero, FlagSubtract, FlagHalfCarry, FlagCarry} {
		c.setFlag(flag)
		if !c.isFlagSet(flag) {
			t.Errorf("expected flag %d to be set, got unset", flag)
		}
		c.clearFlag(flag)
		if c.isFlagSet(flag) {
			t.Errorf("expected flag %d to be unset, got set", flag)
		}
	}

	c.setFlags(true, false, true, false)
	if c.F != 0xA0 || !flagsSet(c, FlagZero, FlagHalfCarry) || !flagsClear(c, FlagSubtract, FlagCarry) {
		t.Errorf("expected F 0xA0, got 0x%02X", c.F)
	}
}
