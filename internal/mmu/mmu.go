// Package mmu provides the address space of the Game Boy. The MMU
// owns a flat 64kB memory array, and routes the cartridge ranges
// through the memory bank controller of the loaded cartridge. The
// hardware registers live in the flat array, peripherals observe
// writes to them through write handlers installed with OnWrite.
package mmu

import (
	"github.com/thelolagemann/gbcore/internal/cartridge"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// MMU is the memory management unit for the Game Boy. It handles all
// memory reads and writes to the Game Boy's 64kB of memory.
//
//	0x0000 - 0x7FFF	ROM, through the memory bank controller
//	0x8000 - 0x9FFF	Video RAM
//	0xA000 - 0xBFFF	External RAM if enabled, otherwise the flat array
//	0xC000 - 0xDDFF	Work RAM, writes are mirrored to 0xE000 - 0xFDFF
//	0xFE00 - 0xFE9F	Sprite attribute table (OAM)
//	0xFF00 - 0xFF7F	I/O registers
//	0xFF80 - 0xFFFE	High RAM
//	0xFFFF		Interrupt enable register
type MMU struct {
	raw [0x10000]uint8

	Cart *cartridge.Cartridge
	mbc  cartridge.MemoryBankController

	registers types.HardwareRegisters
	patcher   ROMPatcher

	Log log.Logger
}

// ROMPatcher rewrites bytes as they are read from cartridge ROM.
type ROMPatcher interface {
	PatchROM(address uint16, value uint8) uint8
}

var _ types.Bus = (*MMU)(nil)

// NewMMU returns a new MMU for the given cartridge.
func NewMMU(cart *cartridge.Cartridge, l log.Logger) *MMU {
	if l == nil {
		l = log.NewNullLogger()
	}
	return &MMU{
		Cart: cart,
		mbc:  cartridge.NewMemoryBankController(cart, l),
		Log:  l,
	}
}

// MBC returns the memory bank controller of the loaded cartridge.
func (m *MMU) MBC() cartridge.MemoryBankController {
	return m.mbc
}

// Bank returns the ROM bank currently mapped into 0x4000 - 0x7FFF.
func (m *MMU) Bank() uint16 {
	return m.mbc.Bank()
}

// SetPatcher installs p to patch ROM reads, a nil p removes it.
// Reads through ReadWithBank are not patched.
func (m *MMU) SetPatcher(p ROMPatcher) {
	m.patcher = p
}

// Read returns the value at the given address.
func (m *MMU) Read(address uint16) uint8 {
	switch {
	case address < 0x8000:
		v := m.mbc.ReadROM(address)
		if m.patcher != nil {
			v = m.patcher.PatchROM(address, v)
		}
		return v
	case address >= 0xA000 && address < 0xC000:
		if v, ok := m.mbc.ReadRAM(address); ok {
			return v
		}
	}
	return m.raw[address]
}

// ReadWithBank returns the value at the given address, as if bank
// was mapped into the switchable ROM window. It is intended for
// debugging tools, and has no side effects.
func (m *MMU) ReadWithBank(bank uint16, address uint16) uint8 {
	if address < 0x8000 {
		return m.mbc.ReadROMBank(bank, address)
	}
	return m.Read(address)
}

// Write writes the value to the given address.
func (m *MMU) Write(address uint16, value uint8) {
	switch {
	case address < 0x8000:
		m.mbc.WriteControl(address, value)
		return
	case address >= 0xA000 && address < 0xC000:
		if m.mbc.WriteRAM(address, value) {
			return
		}
	case address >= 0xC000 && address < 0xDE00:
		// echo RAM
		m.raw[address+0x2000] = value
	case address == types.DIV:
		// any write resets the divider
		value = 0
	}
	m.raw[address] = value

	m.registers.Handle(address, value)
}

// Get returns the byte stored in the flat memory array, bypassing
// the cartridge decode.
func (m *MMU) Get(address uint16) uint8 {
	return m.raw[address]
}

// Set stores a byte in the flat memory array, without running any
// write handler.
func (m *MMU) Set(address uint16, value uint8) {
	m.raw[address] = value
}

// OnWrite installs a handler that is called after every write to
// the given hardware register.
func (m *MMU) OnWrite(address types.HardwareAddress, handler types.WriteHandler) {
	m.registers.Register(address, handler)
}

var _ types.Stater = (*MMU)(nil)

// Load implements the types.Stater interface.
//
// The values are loaded in the following order:
//   - flat memory (64kB)
//   - memory bank controller
func (m *MMU) Load(s *types.State) {
	s.ReadData(m.raw[:])
	m.mbc.Load(s)
}

// Save implements the types.Stater interface.
func (m *MMU) Save(s *types.State) {
	s.WriteData(m.raw[:])
	m.mbc.Save(s)
}
