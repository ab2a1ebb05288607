package cartridge

import (
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// MemoryBankedCartridge1 represents a MemoryBankedCartridge1 cartridge. The
// ROM bank is selected by two registers, bank1 holding the lower 5 bits and
// bank2 the upper 2 bits, which double as the RAM bank in RAM banking mode.
type MemoryBankedCartridge1 struct {
	memoryBankedCartridge

	bank1   uint8
	bank2   uint8
	romBank uint16

	// ramBanking is the banking mode register (0x6000 - 0x7FFF)
	ramBanking bool
}

// NewMemoryBankedCartridge1 returns a new MemoryBankedCartridge1 cartridge.
func NewMemoryBankedCartridge1(c *Cartridge, l log.Logger) *MemoryBankedCartridge1 {
	return &MemoryBankedCartridge1{
		memoryBankedCartridge: newMemoryBankedCartridge(c, l),
		bank1:                 1,
		romBank:               1,
	}
}

// Bank returns the ROM bank currently mapped into 0x4000 - 0x7FFF.
func (m *MemoryBankedCartridge1) Bank() uint16 {
	return m.romBank
}

func (m *MemoryBankedCartridge1) updateROMBank() {
	m.romBank = m.normalizeBank(uint16(m.bank2)<<5 | uint16(m.bank1))
}

// ReadROM returns the value from the cartridges ROM, depending on the bank
// selected.
func (m *MemoryBankedCartridge1) ReadROM(address uint16) uint8 {
	if address < 0x4000 {
		if m.ramBanking {
			// in RAM banking mode bank2 also applies to the fixed bank
			return m.romByte(uint32(m.bank2)<<19 | uint32(address))
		}
		return m.romByte(uint32(address))
	}
	return m.readBank(m.romBank, address)
}

// WriteControl attempts to switch the ROM or RAM bank.
func (m *MemoryBankedCartridge1) WriteControl(address uint16, value uint8) {
	switch {
	case address < 0x2000:
		m.ramEnabled = value&0x0F == 0x0A
	case address < 0x4000:
		// ROM bank number (lower 5 bits)
		m.bank1 = value & 0x1F
		if m.bank1 == 0 {
			m.log.Debugf("%v: mbc1 bank 0x00 selected, using 0x01", ErrInvalidBankSelect)
			m.bank1 = 1
		}
		m.updateROMBank()
	case address < 0x6000:
		// upper ROM bank bits, or RAM bank
		m.bank2 = value & 0x03
		m.updateROMBank()
	case address < 0x8000:
		m.ramBanking = value&0x01 == 0x01
	}
}

func (m *MemoryBankedCartridge1) ramBank() uint8 {
	if m.ramBanking {
		return m.bank2
	}
	return 0
}

// ReadRAM returns the value from the external RAM bank, if RAM is enabled.
func (m *MemoryBankedCartridge1) ReadRAM(address uint16) (uint8, bool) {
	off, ok := m.ramOffset(m.ramBank(), address)
	if !ok {
		return 0, false
	}
	return m.ram[off], true
}

// WriteRAM writes to the selected RAM bank, if RAM is enabled.
func (m *MemoryBankedCartridge1) WriteRAM(address uint16, value uint8) bool {
	off, ok := m.ramOffset(m.ramBank(), address)
	if !ok {
		return false
	}
	m.ram[off] = value
	return true
}

var _ types.Stater = (*MemoryBankedCartridge1)(nil)

// Load implements the types.Stater interface.
func (m *MemoryBankedCartridge1) Load(s *types.State) {
	m.bank1 = s.Read8()
	m.bank2 = s.Read8()
	m.ramEnabled = s.ReadBool()
	m.ramBanking = s.ReadBool()
	s.ReadData(m.ram)
	m.updateROMBank()
}

// Save implements the types.Stater interface.
func (m *MemoryBankedCartridge1) Save(s *types.State) {
	s.Write8(m.bank1)
	s.Write8(m.bank2)
	s.WriteBool(m.ramEnabled)
	s.WriteBool(m.ramBanking)
	s.WriteData(m.ram)
}
