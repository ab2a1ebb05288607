// Package serial provides an implementation of the Game Boy
// serial port. Nothing is ever attached to the other end of
// the link cable, so the controller records the bytes that are
// shifted out, which is how most test ROMs report their
// results.
package serial

import (
	"io"

	"github.com/thelolagemann/gbcore/internal/interrupts"
	"github.com/thelolagemann/gbcore/internal/types"
)

// thresholds holds the number of cycles a transfer takes,
// indexed by the clock select bits of types.SC.
var thresholds = [4]uint16{512, 256, 16, 8}

// Controller is the serial controller. While a transfer is
// requested (types.SC bit 7) it counts cycles, and once the
// transfer has completed the byte in types.SB is appended to
// the current packet.
//
// A byte of 0xFF marks the end of a packet, and starts a new
// one. Both cases request a serial interrupt.
type Controller struct {
	counter uint16
	packets [][]byte

	bus types.Bus
	irq *interrupts.Service

	// w receives every byte that is transferred, may be nil
	w io.Writer
}

var _ types.Peripheral = (*Controller)(nil)

// NewController returns a new serial controller. Every
// transferred byte is also written to w, if it is not nil.
func NewController(bus types.Bus, irq *interrupts.Service, w io.Writer) *Controller {
	return &Controller{
		bus:     bus,
		irq:     irq,
		w:       w,
		packets: [][]byte{{}},
	}
}

// Transferring reports whether a transfer has been requested.
func (c *Controller) Transferring() bool {
	return c.bus.Get(types.SC)&types.Bit7 != 0
}

// Advance ticks the serial controller by the given number of cycles.
func (c *Controller) Advance(cycles uint16) {
	sc := c.bus.Get(types.SC)
	if sc&types.Bit7 == 0 {
		return
	}

	c.counter += cycles
	if c.counter < thresholds[sc&0b11] {
		return
	}
	c.counter = 0

	if sb := c.bus.Get(types.SB); sb != 0xFF {
		last := len(c.packets) - 1
		c.packets[last] = append(c.packets[last], sb)
		c.bus.Set(types.SC, sc&^types.Bit7)
		if c.w != nil {
			// write errors are ignored
			_, _ = c.w.Write([]byte{sb})
		}
	} else {
		c.packets = append(c.packets, []byte{})
	}
	c.irq.Request(interrupts.SerialFlag)
}

// Packets returns the packets that have been transferred. The
// last packet is the one currently being filled, and may be
// empty.
func (c *Controller) Packets() [][]byte {
	return c.packets
}

// Output returns every transferred byte, across all packets.
func (c *Controller) Output() []byte {
	var out []byte
	for _, p := range c.packets {
		out = append(out, p...)
	}
	return out
}

var _ types.Stater = (*Controller)(nil)

// Load implements the types.Stater interface.
//
// The values are loaded in the following order:
//   - counter (uint16)
//   - number of packets (uint32)
//   - each packet, as its length (uint32) and data
func (c *Controller) Load(s *types.State) {
	c.counter = s.Read16()
	n := s.Read32()
	c.packets = nil
	for i := uint32(0); i < n && s.Err() == nil; i++ {
		if p := s.ReadBytes(int(s.Read32())); p != nil {
			c.packets = append(c.packets, p)
		}
	}
	if len(c.packets) == 0 {
		c.packets = [][]byte{{}}
	}
}

// Save implements the types.Stater interface.
func (c *Controller) Save(s *types.State) {
	s.Write16(c.counter)
	s.Write32(uint32(len(c.packets)))
	for _, p := range c.packets {
		s.Write32(uint32(len(p)))
		s.WriteData(p)
	}
}
