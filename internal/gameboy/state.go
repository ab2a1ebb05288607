package gameboy

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cespare/xxhash"
	"github.com/thelolagemann/gbcore/internal/types"
)

// StateVersion is the version of the save state layout.
const StateVersion = 1

var (
	// ErrStateChecksum is returned when a save state does not match
	// its checksum.
	ErrStateChecksum = errors.New("gameboy: state checksum mismatch")
	// ErrStateVersion is returned when a save state was written with
	// an unsupported layout.
	ErrStateVersion = errors.New("gameboy: unsupported state version")
)

// SaveState serializes the emulator.
//
// The state is laid out as follows:
//   - version (uint8)
//   - CPU
//   - MMU (flat memory, memory bank controller)
//   - timer
//   - serial
//   - joypad
//   - PPU
//   - xxhash64 of the preceding bytes (uint64, little endian)
func (g *GameBoy) SaveState() []byte {
	s := types.NewState()
	s.Write8(StateVersion)
	g.Save(s)

	b := s.Bytes()
	return binary.LittleEndian.AppendUint64(b, xxhash.Sum64(b))
}

// LoadState restores the emulator from a state produced by SaveState.
// The state must have been saved with the same cartridge.
func (g *GameBoy) LoadState(b []byte) error {
	if len(b) < 9 {
		return fmt.Errorf("gameboy: %w", types.ErrShortState)
	}
	data, sum := b[:len(b)-8], binary.LittleEndian.Uint64(b[len(b)-8:])
	if xxhash.Sum64(data) != sum {
		return ErrStateChecksum
	}
	if data[0] != StateVersion {
		return fmt.Errorf("%w: %d", ErrStateVersion, data[0])
	}

	s := types.StateFromBytes(data[1:])
	g.Load(s)
	if err := s.Err(); err != nil {
		return fmt.Errorf("gameboy: %w", err)
	}
	return nil
}

var _ types.Stater = (*GameBoy)(nil)

// Load implements the types.Stater interface.
func (g *GameBoy) Load(s *types.State) {
	g.CPU.Load(s)
	g.MMU.Load(s)
	g.Timer.Load(s)
	g.Serial.Load(s)
	g.Joypad.Load(s)
	g.PPU.Load(s)
}

// Save implements the types.Stater interface.
func (g *GameBoy) Save(s *types.State) {
	g.CPU.Save(s)
	g.MMU.Save(s)
	g.Timer.Save(s)
	g.Serial.Save(s)
	g.Joypad.Save(s)
	g.PPU.Save(s)
}
