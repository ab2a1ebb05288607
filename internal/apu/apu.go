// Package apu captures the wave pattern memory of the Game Boy's
// audio processing unit. Sound is not synthesized, the 32 4-bit
// samples held in wave RAM are recorded once per frame so that they
// can be inspected or plotted by a front end.
package apu

import (
	"github.com/thelolagemann/gbcore/internal/types"
)

const (
	// WaveSamples is the number of 4-bit samples in wave RAM.
	WaveSamples = 32

	// DefaultCapacity is the number of samples retained by default,
	// a minute of frames.
	DefaultCapacity = WaveSamples * 60 * 60
)

// APU records the contents of wave RAM.
type APU struct {
	samples  []uint8
	capacity int

	bus types.Bus
}

// New returns a new APU retaining up to capacity samples. A capacity
// of 0 or less uses DefaultCapacity.
func New(bus types.Bus, capacity int) *APU {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &APU{
		bus:      bus,
		capacity: capacity,
	}
}

// Waveform returns the i'th 4-bit sample of wave RAM. Each byte holds
// two samples, the upper nibble being played first.
func (a *APU) Waveform(i int) uint8 {
	b := a.bus.Get(types.WaveRAM + uint16(i/2)%0x10)
	if i%2 == 0 {
		return b >> 4
	}
	return b & 0x0F
}

// Capture appends the 32 samples of wave RAM, dropping the oldest
// samples once the capacity is exceeded.
func (a *APU) Capture() {
	for i := 0; i < WaveSamples; i++ {
		a.samples = append(a.samples, a.Waveform(i))
	}
	if over := len(a.samples) - a.capacity; over > 0 {
		a.samples = append(a.samples[:0], a.samples[over:]...)
	}
}

// Samples returns the captured samples, oldest first.
func (a *APU) Samples() []uint8 {
	return a.samples
}

// Reset discards the captured samples.
func (a *APU) Reset() {
	a.samples = a.samples[:0]
}
