// Package joypad provides an implementation of the Game Boy
// joypad. The joypad is used to read the state of the buttons
// and the direction keys.
package joypad

import (
	"github.com/thelolagemann/gbcore/internal/interrupts"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/utils"
)

// Button represents a physical button on the Game Boy.
type Button = uint8

const (
	// ButtonA is the A button.
	ButtonA Button = iota
	// ButtonB is the B button.
	ButtonB
	// ButtonSelect is the Select button.
	ButtonSelect
	// ButtonStart is the Start button.
	ButtonStart
	// ButtonRight is the Right button.
	ButtonRight
	// ButtonLeft is the Left button.
	ButtonLeft
	// ButtonUp is the Up button.
	ButtonUp
	// ButtonDown is the Down button.
	ButtonDown
)

var buttonNames = [8]string{"A", "B", "Select", "Start", "Right", "Left", "Up", "Down"}

// ButtonName returns the name of the button.
func ButtonName(b Button) string {
	if int(b) < len(buttonNames) {
		return buttonNames[b]
	}
	return "Unknown"
}

// State represents the state of the joypad. Select either
// action or direction buttons by writing to the register,
// and then read out bits 0-3 to get the state of the buttons.
//
//	Bit 7 - Not used
//	Bit 6 - Not used
//	Bit 5 - P15 Select Button Keys      (0=Select)
//	Bit 4 - P14 Select Direction Keys   (0=Select)
//	Bit 3 - P13 Input Down  or Start    (0=Pressed) (Read Only)
//	Bit 2 - P12 Input Up    or Select   (0=Pressed) (Read Only)
//	Bit 1 - P11 Input Left  or Button B (0=Pressed) (Read Only)
//	Bit 0 - P10 Input Right or Button A (0=Pressed) (Read Only)
type State struct {
	// State is the current state of the joypad. The lower 4
	// bits hold the action buttons, and the upper 4 bits the
	// direction buttons. A 1 indicates that the button is
	// pressed.
	State Button

	bus types.Bus
	irq *interrupts.Service
}

// New returns a new joypad state, and installs the P1 write
// handler on the bus.
func New(bus types.Bus, irq *interrupts.Service) *State {
	s := &State{
		bus: bus,
		irq: irq,
	}
	bus.OnWrite(types.P1, func(uint8) {
		s.update()
	})
	bus.Set(types.P1, 0xFF)

	return s
}

// update recomputes the lower nibble of types.P1 from the
// selected button groups, keeping the select bits.
func (s *State) update() {
	p1 := s.bus.Get(types.P1) & (types.Bit4 | types.Bit5)

	var pressed uint8
	if p1&types.Bit4 == 0 {
		pressed |= s.State >> 4 & 0x0F
	}
	if p1&types.Bit5 == 0 {
		pressed |= s.State & 0x0F
	}

	s.bus.Set(types.P1, 0xC0|p1|^pressed&0x0F)
}

// Pressed reports whether the button is held down.
func (s *State) Pressed(button Button) bool {
	return utils.TestBit(s.State, button)
}

// Press presses a button.
func (s *State) Press(button Button) {
	if s.Pressed(button) {
		return
	}
	s.State = utils.SetBit(s.State, button)
	s.update()
	s.irq.Request(interrupts.JoypadFlag)
}

// Release releases a button.
func (s *State) Release(button Button) {
	if !s.Pressed(button) {
		return
	}
	s.State = utils.ClearBit(s.State, button)
	s.update()
	s.irq.Request(interrupts.JoypadFlag)
}

var _ types.Stater = (*State)(nil)

// Load implements the types.Stater interface.
func (s *State) Load(st *types.State) {
	s.State = st.Read8()
}

// Save implements the types.Stater interface.
func (s *State) Save(st *types.State) {
	st.Write8(s.State)
}
