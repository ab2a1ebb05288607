// Package gameboy provides an emulation of a Nintendo Game Boy. It wires
// the components together and drives them in lockstep: every step
// executes one instruction, advances the serial port and timer, services
// interrupts, and then forwards the elapsed cycles to the PPU.
package gameboy

import (
	"context"
	"fmt"
	"io"

	"github.com/thelolagemann/gbcore/internal/apu"
	"github.com/thelolagemann/gbcore/internal/cartridge"
	"github.com/thelolagemann/gbcore/internal/cheats"
	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/internal/interrupts"
	"github.com/thelolagemann/gbcore/internal/joypad"
	"github.com/thelolagemann/gbcore/internal/mmu"
	"github.com/thelolagemann/gbcore/internal/ppu"
	"github.com/thelolagemann/gbcore/internal/serial"
	"github.com/thelolagemann/gbcore/internal/timer"
	"github.com/thelolagemann/gbcore/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the Game Boy.
	ClockSpeed = cpu.ClockSpeed
	// CyclesPerFrame is the number of clock cycles per frame.
	CyclesPerFrame = ppu.FrameDots * 4

	// EntryPoint is the address execution starts at, as left by
	// the boot ROM.
	EntryPoint = 0x0100

	// checkInterval is the number of steps between checks of the
	// context in the run loops.
	checkInterval = 1024
)

// GameBoy represents a Game Boy. It contains all the components of the Game Boy.
// It is the main entry point for the emulator.
type GameBoy struct {
	CPU        *cpu.CPU
	MMU        *mmu.MMU
	PPU        *ppu.PPU
	APU        *apu.APU
	Joypad     *joypad.State
	Interrupts *interrupts.Service
	Timer      *timer.Controller
	Serial     *serial.Controller
	Cheats     *cheats.Cheats

	log.Logger

	debug         bool
	traceCapacity int
	serialOut     io.Writer
	state         []byte
}

// NewGameBoy returns a new GameBoy for the given cartridge image, with
// execution starting at the cartridge entry point.
func NewGameBoy(rom []byte, opts ...Opt) (*GameBoy, error) {
	cart, err := cartridge.New(rom)
	if err != nil {
		return nil, fmt.Errorf("gameboy: %w", err)
	}

	g := &GameBoy{}
	for _, opt := range opts {
		opt(g)
	}
	if err := g.configureLogger(); err != nil {
		return nil, err
	}

	memBus := mmu.NewMMU(cart, g.Logger)
	interrupt := interrupts.NewService(memBus)
	timerCtl := timer.NewController(memBus, interrupt)
	serialCtl := serial.NewController(memBus, interrupt, g.serialOut)

	g.MMU = memBus
	g.Interrupts = interrupt
	g.Timer = timerCtl
	g.Serial = serialCtl
	g.Joypad = joypad.New(memBus, interrupt)
	g.PPU = ppu.New(memBus, interrupt)
	g.APU = apu.New(memBus, 0)
	g.CPU = cpu.NewCPU(memBus, interrupt, timerCtl, serialCtl,
		cpu.WithLogger(g.Logger),
		cpu.WithTraceCapacity(g.traceCapacity),
	)
	g.CPU.PC = EntryPoint
	if g.Cheats != nil {
		memBus.SetPatcher(g.Cheats)
	}

	header := cart.Header()
	g.Infof("gameboy: loaded %s", header.String())

	if g.state != nil {
		if err := g.LoadState(g.state); err != nil {
			return nil, err
		}
		g.state = nil
	}

	return g, nil
}

// Step executes a single instruction, and advances the PPU by the
// cycles it took. The wave RAM is captured and GameShark codes are
// applied whenever a frame completes.
func (g *GameBoy) Step() (uint8, error) {
	cycles, err := g.CPU.Step()
	if err != nil {
		return cycles, err
	}

	frames := g.PPU.Frames()
	g.PPU.Advance(uint16(cycles))
	if g.PPU.Frames() != frames {
		g.APU.Capture()
		if g.Cheats != nil {
			g.Cheats.Apply(g.MMU)
		}
	}

	return cycles, nil
}

// Run executes up to steps instructions, stopping early on an error or
// when ctx is cancelled.
func (g *GameBoy) Run(ctx context.Context, steps int) error {
	for i := 0; i < steps; i++ {
		if i%checkInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if _, err := g.Step(); err != nil {
			return err
		}
	}
	return nil
}

// RunUntil executes instructions until done returns true, stopping
// early on an error or when ctx is cancelled. done is checked before
// every step.
func (g *GameBoy) RunUntil(ctx context.Context, done func(*GameBoy) bool) error {
	for i := 0; !done(g); i++ {
		if i%checkInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if _, err := g.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Frame will step the emulation until the PPU has finished
// rendering the current frame.
func (g *GameBoy) Frame(ctx context.Context) error {
	frames := g.PPU.Frames()
	return g.RunUntil(ctx, func(g *GameBoy) bool {
		return g.PPU.Frames() != frames
	})
}

// Trace returns the execution trace of the CPU.
func (g *GameBoy) Trace() *cpu.Trace {
	return g.CPU.Trace()
}
