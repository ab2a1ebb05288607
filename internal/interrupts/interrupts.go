package interrupts

import (
	"github.com/thelolagemann/gbcore/internal/types"
)

const (
	// VBlankFlag is the VBlank interrupt flag (bit 0),
	// which is requested every time the PPU enters
	// VBlank mode (lcd.VBlank).
	VBlankFlag uint8 = types.Bit0
	// LCDFlag is the LCD interrupt flag (bit 1), which
	// is requested by the LCD STAT register (types.STAT),
	// when certain conditions are met.
	LCDFlag    uint8 = types.Bit1
	// TimerFlag is the Timer interrupt flag (bit 2),
	// which is requested when the timer overflows,
	// (types.TIMA > 0xFF).
	TimerFlag  uint8 = types.Bit2
	// SerialFlag is the Serial interrupt flag (bit 3),
	// which is requested when a serial transfer is
	// completed.
	SerialFlag uint8 = types.Bit3
	// JoypadFlag is the Joypad interrupt Flag (bit 4),
	// which is requested when a button changes state.
	JoypadFlag uint8 = types.Bit4
)

// Cycles is the number of cycles spent dispatching an interrupt.
const Cycles = 20

// Service is the interrupt service, used to request
// interrupts and to get the current interrupt vector.
//
// The request and enable masks are not held by the service,
// they live in memory at types.IF and types.IE so that any
// component (or program) writing those addresses is seen
// immediately. The IME is owned by the CPU.
type Service struct {
	bus types.Bus
}

// NewService returns a new Service over the given bus.
func NewService(bus types.Bus) *Service {
	return &Service{bus: bus}
}

// Flag returns the requested interrupts (types.IF).
func (s *Service) Flag() uint8 {
	return s.bus.Get(types.IF)
}

// Enable returns the enabled interrupts (types.IE).
func (s *Service) Enable() uint8 {
	return s.bus.Get(types.IE)
}

// Pending returns the interrupts that are both requested
// and enabled.
func (s *Service) Pending() uint8 {
	return s.Flag() & s.Enable() & 0x1F
}

// HasInterrupts returns true if there are any interrupts
// that are requested and enabled.
func (s *Service) HasInterrupts() bool {
	return s.Pending() != 0
}

// Request requests the specified interrupt, by setting
// the corresponding bit in the Flag register.
func (s *Service) Request(flag uint8) {
	s.bus.Set(types.IF, s.bus.Get(types.IF)|flag)
}

// Vector returns the vector of the highest priority pending
// interrupt, or 0 if none is pending. The corresponding bit
// in the Flag register is cleared, leaving all other requests
// untouched.
func (s *Service) Vector() uint16 {
	pending := s.Pending()
	if pending == 0 {
		return 0
	}
	for i := uint8(0); i < 5; i++ {
		flag := uint8(1 << i)
		if pending&flag != 0 {
			s.bus.Set(types.IF, s.bus.Get(types.IF)&^flag)
			return uint16(0x0040 + uint16(i)*8)
		}
	}

	return 0
}

// Name returns a human readable name for the given vector.
func Name(vector uint16) string {
	switch vector {
	case 0x40:
		return "V-Blank"
	case 0x48:
		return "LCD STAT"
	case 0x50:
		return "Timer"
	case 0x58:
		return "Serial"
	case 0x60:
		return "Joypad"
	}
	return "none"
}
