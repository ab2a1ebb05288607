package gameboy

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/thelolagemann/gbcore/internal/cheats"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// Opt is a function that modifies a GameBoy
// instance.
type Opt func(gb *GameBoy)

// Debug enables debug logging, which reports bank normalization,
// illegal opcodes and HALT/STOP transitions.
func Debug() Opt {
	return func(gb *GameBoy) {
		gb.debug = true
	}
}

// WithLogger sets the logger used by every component.
func WithLogger(log log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = log
	}
}

// WithTraceCapacity sets the number of instructions kept in the
// execution trace.
func WithTraceCapacity(n int) Opt {
	return func(gb *GameBoy) {
		gb.traceCapacity = n
	}
}

// WithSerialWriter copies every byte sent over the serial port to w,
// which is how test ROMs report their results.
func WithSerialWriter(w io.Writer) Opt {
	return func(gb *GameBoy) {
		gb.serialOut = w
	}
}

// WithState loads a state saved with SaveState once the GameBoy has
// been constructed.
func WithState(b []byte) Opt {
	return func(gb *GameBoy) {
		gb.state = b
	}
}

// WithCheats patches ROM reads with the enabled Game Genie codes, and
// applies the enabled GameShark codes at the end of every frame.
func WithCheats(c *cheats.Cheats) Opt {
	return func(gb *GameBoy) {
		gb.Cheats = c
	}
}

// configureLogger applies the logger options, defaulting to a
// logger at the info level.
func (g *GameBoy) configureLogger() error {
	if !g.debug {
		if g.Logger == nil {
			g.Logger = log.New()
		}
		return nil
	}

	if l, ok := g.Logger.(*logrus.Logger); ok {
		l.SetLevel(logrus.DebugLevel)
		return nil
	}
	if g.Logger == nil {
		l, err := log.NewWithLevel("debug")
		if err != nil {
			return err
		}
		g.Logger = l
	}
	return nil
}
