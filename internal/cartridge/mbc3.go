package cartridge

import (
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
	"github.com/thelolagemann/gbcore/pkg/utils"
)

// RTC holds the latched real time clock registers of an MBC3. The
// clock does not run, reads of a selected RTC register return this
// fixed snapshot.
type RTC struct {
	Seconds              uint8
	Minutes              uint8
	Hours                uint8
	DaysLower            uint8
	DaysHigherAndControl uint8
}

// Register returns the value of the RTC register selected by
// writing 0x08 - 0x0C to 0x4000 - 0x5FFF.
func (r *RTC) Register(reg uint8) uint8 {
	switch reg {
	case 0x08:
		return r.Seconds
	case 0x09:
		return r.Minutes
	case 0x0A:
		return r.Hours
	case 0x0B:
		return r.DaysLower
	case 0x0C:
		return r.DaysHigherAndControl
	}
	return 0xFF
}

// MemoryBankedCartridge3 represents a MemoryBankedCartridge3 cartridge. It
// switches between up to 128 ROM banks and 4 RAM banks, and maps the RTC
// registers over external RAM when one of them is selected.
type MemoryBankedCartridge3 struct {
	memoryBankedCartridge

	romBank uint16
	ramBank uint8

	// rtcRegister is the latched RTC register (0x08 - 0x0C), or 0
	// when a RAM bank is mapped instead
	rtcRegister uint8
	rtc         RTC
}

// NewMemoryBankedCartridge3 returns a new MemoryBankedCartridge3 cartridge.
func NewMemoryBankedCartridge3(c *Cartridge, l log.Logger) *MemoryBankedCartridge3 {
	return &MemoryBankedCartridge3{
		memoryBankedCartridge: newMemoryBankedCartridge(c, l),
		romBank:               1,
	}
}

// Bank returns the ROM bank currently mapped into 0x4000 - 0x7FFF.
func (m *MemoryBankedCartridge3) Bank() uint16 {
	return m.romBank
}

// ReadROM returns the value from the cartridges ROM, depending on the bank
// selected.
func (m *MemoryBankedCartridge3) ReadROM(address uint16) uint8 {
	return m.readBank(m.romBank, address)
}

// WriteControl attempts to switch the ROM or RAM bank, or latch an RTC register.
func (m *MemoryBankedCartridge3) WriteControl(address uint16, value uint8) {
	switch {
	case address < 0x2000:
		m.ramEnabled = value&0x0F == 0x0A
	case address < 0x4000:
		m.romBank = m.normalizeBank(utils.ZeroAdjust(uint16(value & 0x7F)))
	case address < 0x6000:
		switch {
		case value <= 0x03:
			m.ramBank = value
			m.rtcRegister = 0
		case value >= 0x08 && value <= 0x0C:
			m.rtcRegister = value
		default:
			m.log.Debugf("%v: mbc3 RAM bank 0x%02X, using 0x%02X", ErrInvalidBankSelect, value, value&0x03)
			m.ramBank = value & 0x03
			m.rtcRegister = 0
		}
	case address < 0x8000:
		// latch clock data, the clock does not run so there is nothing to latch
	}
}

// ReadRAM returns the latched RTC register if one is selected, otherwise
// the value from the selected RAM bank. Both are gated by the RAM enable
// register.
func (m *MemoryBankedCartridge3) ReadRAM(address uint16) (uint8, bool) {
	if !m.ramEnabled {
		return 0, false
	}
	if m.rtcRegister != 0 {
		return m.rtc.Register(m.rtcRegister), true
	}
	off, ok := m.ramOffset(m.ramBank, address)
	if !ok {
		return 0, false
	}
	return m.ram[off], true
}

// WriteRAM writes to the selected RAM bank, if RAM is enabled. Writes to
// RTC registers are accepted and dropped.
func (m *MemoryBankedCartridge3) WriteRAM(address uint16, value uint8) bool {
	if !m.ramEnabled {
		return false
	}
	if m.rtcRegister != 0 {
		return true
	}
	off, ok := m.ramOffset(m.ramBank, address)
	if !ok {
		return false
	}
	m.ram[off] = value
	return true
}

var _ types.Stater = (*MemoryBankedCartridge3)(nil)

// Load implements the types.Stater interface.
func (m *MemoryBankedCartridge3) Load(s *types.State) {
	m.romBank = s.Read16()
	m.ramBank = s.Read8()
	m.ramEnabled = s.ReadBool()
	m.rtcRegister = s.Read8()
	s.ReadData(m.ram)
}

// Save implements the types.Stater interface.
func (m *MemoryBankedCartridge3) Save(s *types.State) {
	s.Write16(m.romBank)
	s.Write8(m.ramBank)
	s.WriteBool(m.ramEnabled)
	s.Write8(m.rtcRegister)
	s.WriteData(m.ram)
}
