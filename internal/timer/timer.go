// Package timer provides an implementation of the Game Boy
// timer. It is used to generate interrupts at a specific
// frequency. The frequency can be configured using the
// TimerControlRegister.
package timer

import (
	"github.com/thelolagemann/gbcore/internal/interrupts"
	"github.com/thelolagemann/gbcore/internal/types"
)

// thresholds holds the number of cycles per TIMA increment,
// indexed by the clock select bits of types.TAC.
var thresholds = [4]uint16{1024, 16, 64, 256}

// Controller is a timer controller. It is used to generate
// interrupts at a specific frequency. The frequency can be
// configured using the types.TAC register.
//
// DIV, TIMA, TMA and TAC live in memory; the controller only
// keeps the internal 16-bit divider (whose high byte is DIV)
// and the cycles accumulated towards the next TIMA increment.
type Controller struct {
	internalDiv uint16
	counter     uint16

	bus types.Bus
	irq *interrupts.Service
}

var _ types.Peripheral = (*Controller)(nil)

// NewController returns a new timer controller, and installs the
// DIV write handler on the bus.
func NewController(bus types.Bus, irq *interrupts.Service) *Controller {
	c := &Controller{
		bus: bus,
		irq: irq,
	}
	bus.OnWrite(types.DIV, func(uint8) {
		c.Reset()
	})

	return c
}

// Enabled reports whether TAC has the timer enabled.
func (c *Controller) Enabled() bool {
	return c.bus.Get(types.TAC)&types.Bit2 != 0
}

// Div returns the internal 16-bit divider.
func (c *Controller) Div() uint16 {
	return c.internalDiv
}

// Reset restarts the divider, as happens on any write to DIV and
// when the divider wraps around.
// An enabled timer restarts counting from a TIMA of 0.
func (c *Controller) Reset() {
	c.internalDiv = 0
	c.counter = 0
	c.bus.Set(types.DIV, 0)
	if c.Enabled() {
		c.bus.Set(types.TIMA, 0)
	}
}

// Advance ticks the timer controller by the given number of
// cycles, in steps of 4 cycles (1 M-Cycle).
func (c *Controller) Advance(cycles uint16) {
	for i := uint16(0); i < cycles; i += 4 {
		c.internalDiv += 4
		if c.internalDiv == 0 {
			// wraparound resets the divider like a write to DIV
			c.Reset()
			continue
		}
		c.bus.Set(types.DIV, uint8(c.internalDiv>>8))

		tac := c.bus.Get(types.TAC)
		if tac&types.Bit2 == 0 {
			continue
		}

		c.counter += 4
		if threshold := thresholds[tac&0b11]; c.counter >= threshold {
			c.counter -= threshold
			c.increment()
		}
	}
}

// increment increments TIMA, reloading it from TMA and requesting
// a timer interrupt when it overflows.
func (c *Controller) increment() {
	tima := c.bus.Get(types.TIMA) + 1
	if tima == 0 {
		tima = c.bus.Get(types.TMA)
		c.irq.Request(interrupts.TimerFlag)
	}
	c.bus.Set(types.TIMA, tima)
}

var _ types.Stater = (*Controller)(nil)

// Load loads the state of the controller.
func (c *Controller) Load(s *types.State) {
	c.internalDiv = s.Read16()
	c.counter = s.Read16()
}

// Save saves the state of the controller.
func (c *Controller) Save(s *types.State) {
	s.Write16(c.internalDiv)
	s.Write16(c.counter)
}
