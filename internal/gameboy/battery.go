package gameboy

import (
	"errors"
	"fmt"
)

// ErrNoBattery is returned by LoadBatteryRAM for cartridges without
// battery backed RAM.
var ErrNoBattery = errors.New("gameboy: cartridge has no battery")

// BatteryRAM returns a copy of the external RAM of the cartridge, or
// nil if it is not battery backed.
func (g *GameBoy) BatteryRAM() []byte {
	header := g.MMU.Cart.Header()
	if !header.Battery() {
		return nil
	}
	return append([]byte(nil), g.MMU.MBC().RAM()...)
}

// LoadBatteryRAM restores the external RAM of the cartridge from a
// save made with BatteryRAM.
func (g *GameBoy) LoadBatteryRAM(b []byte) error {
	header := g.MMU.Cart.Header()
	if !header.Battery() {
		return ErrNoBattery
	}
	ram := g.MMU.MBC().RAM()
	if len(b) != len(ram) {
		return fmt.Errorf("gameboy: battery save is %d bytes, cartridge has %d", len(b), len(ram))
	}
	copy(ram, b)
	return nil
}
