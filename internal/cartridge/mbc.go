package cartridge

import (
	"errors"

	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// ErrInvalidBankSelect is logged when a program selects a bank
// that does not exist (or bank 0 for the switchable window). The
// selection is normalized, it is never returned to the caller.
var ErrInvalidBankSelect = errors.New("cartridge: invalid bank select")

// MemoryBankController maps the cartridge ROM and external RAM
// into the address space. The address space owns the decode of the
// full 16-bit bus and hands the controller only the ranges it is
// responsible for.
type MemoryBankController interface {
	// ReadROM reads from 0x0000 - 0x7FFF.
	ReadROM(address uint16) uint8
	// ReadROMBank reads from 0x0000 - 0x7FFF as if the given bank
	// was mapped into the switchable window.
	ReadROMBank(bank uint16, address uint16) uint8
	// WriteControl handles a write to the control registers
	// mapped over 0x0000 - 0x7FFF.
	WriteControl(address uint16, value uint8)
	// ReadRAM reads from 0xA000 - 0xBFFF. ok is false when the
	// access should fall through to the flat memory array.
	ReadRAM(address uint16) (value uint8, ok bool)
	// WriteRAM writes to 0xA000 - 0xBFFF. It returns false when
	// the access should fall through to the flat memory array.
	WriteRAM(address uint16, value uint8) bool
	// Bank returns the ROM bank mapped into 0x4000 - 0x7FFF.
	Bank() uint16
	// RAM returns the external RAM.
	RAM() []byte

	types.Stater
}

// NewMemoryBankController returns the controller for the cartridge
// type. MBC3 variants get an MBC3, every other type (including ROM
// only images and unsupported controllers) falls back to an MBC1.
func NewMemoryBankController(c *Cartridge, l log.Logger) MemoryBankController {
	if l == nil {
		l = log.NewNullLogger()
	}
	switch c.header.CartridgeType {
	case MBC3TIMERBATT, MBC3TIMERRAMBATT, MBC3, MBC3RAM, MBC3RAMBATT:
		return NewMemoryBankedCartridge3(c, l)
	case ROM, MBC1, MBC1RAM, MBC1RAMBATT:
	default:
		l.Infof("cartridge: unsupported type %s, using MBC1", c.header.CartridgeType)
	}
	return NewMemoryBankedCartridge1(c, l)
}

// memoryBankedCartridge holds the state shared by the controllers.
type memoryBankedCartridge struct {
	rom []byte
	ram []byte

	ramEnabled bool

	log log.Logger
}

func newMemoryBankedCartridge(c *Cartridge, l log.Logger) memoryBankedCartridge {
	return memoryBankedCartridge{
		rom: c.rom,
		ram: make([]byte, c.header.RAMSize),
		log: l,
	}
}

// banks returns the number of 16kB ROM banks, at least 1.
func (m *memoryBankedCartridge) banks() uint16 {
	n := len(m.rom) / 0x4000
	if n == 0 {
		return 1
	}
	return uint16(n)
}

// normalizeBank reduces bank into the range of existing banks,
// mapping bank 0 to 1 when the switchable window cannot hold it.
func (m *memoryBankedCartridge) normalizeBank(bank uint16) uint16 {
	n := bank
	if n >= m.banks() {
		n %= m.banks()
	}
	if n == 0 && m.banks() > 1 {
		n = 1
	}
	if n != bank {
		m.log.Debugf("%v: bank 0x%02X normalized to 0x%02X", ErrInvalidBankSelect, bank, n)
	}
	return n
}

// romByte reads the byte at offset, wrapping around images that
// are smaller than the address space they are mapped into.
func (m *memoryBankedCartridge) romByte(offset uint32) uint8 {
	if len(m.rom) == 0 {
		return 0xFF
	}
	return m.rom[offset%uint32(len(m.rom))]
}

func (m *memoryBankedCartridge) readBank(bank uint16, address uint16) uint8 {
	if address < 0x4000 {
		return m.romByte(uint32(address))
	}
	return m.romByte(uint32(bank)*0x4000 + uint32(address-0x4000))
}

// ReadROMBank implements MemoryBankController.
func (m *memoryBankedCartridge) ReadROMBank(bank uint16, address uint16) uint8 {
	return m.readBank(bank, address)
}

// ramOffset returns the offset into external RAM for address in
// the given bank, or false if there is no RAM to access.
func (m *memoryBankedCartridge) ramOffset(bank uint8, address uint16) (int, bool) {
	if !m.ramEnabled || len(m.ram) == 0 {
		return 0, false
	}
	return (int(bank)*0x2000 + int(address-0xA000)) % len(m.ram), true
}

// RAM implements MemoryBankController.
func (m *memoryBankedCartridge) RAM() []byte {
	return m.ram
}
