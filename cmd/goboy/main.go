// Command goboy runs a Game Boy ROM headlessly, for a number of
// instructions or frames, and reports on the result: a screenshot of
// the last frame, its digest, the serial output or the execution trace.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/thelolagemann/gbcore/internal/cheats"
	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/internal/gameboy"
	"github.com/thelolagemann/gbcore/internal/ppu/palette"
	"github.com/thelolagemann/gbcore/pkg/log"
	"github.com/thelolagemann/gbcore/pkg/saves"
	"github.com/thelolagemann/gbcore/pkg/utils"
)

// fatalTraceLength is the number of trace entries dumped after a fatal
// error, when -trace is not set.
const fatalTraceLength = 16

func main() {
	romFile := flag.String("rom", "", "The rom file to load (.gb, .zip, .7z or .gz)")
	steps := flag.Int("steps", 0, "The number of instructions to execute")
	frames := flag.Int("frames", 60, "The number of frames to run, after -steps")
	screenshot := flag.String("screenshot", "", "Save the last frame to this file (.png or .bmp)")
	scale := flag.Int("scale", 1, "The scale of the screenshot (1-8)")
	paletteName := flag.String("palette", "greyscale", "The screenshot palette: "+strings.Join(palette.Names(), ", "))
	digest := flag.Bool("digest", false, "Print the digest of the last frame")
	serialOut := flag.Bool("serial", false, "Copy serial output to stdout")
	traceLength := flag.Int("trace", 0, "Print the last N executed instructions")
	saveFile := flag.String("save", "", "Save the state to this file when done")
	loadFile := flag.String("load", "", "Load the state from this file before running")
	saveDir := flag.String("saves", "", "Load and store battery saves in this folder")
	cheatFile := flag.String("cheats", "", "Load Game Genie and GameShark codes from this file")
	logLevel := flag.String("log-level", "info", "The log level (debug, info, error)")
	flag.Parse()

	logger, err := log.NewWithLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "goboy: %v\n", err)
		os.Exit(2)
	}
	if *romFile == "" {
		flag.Usage()
		os.Exit(2)
	}

	pal, ok := palette.ByName(*paletteName)
	if !ok {
		logger.Errorf("goboy: unknown palette %q", *paletteName)
		os.Exit(2)
	}

	rom, err := utils.LoadFile(*romFile)
	if err != nil {
		logger.Errorf("goboy: %v", err)
		os.Exit(1)
	}

	opts := []gameboy.Opt{gameboy.WithLogger(logger)}
	if *traceLength > cpu.DefaultTraceCapacity {
		opts = append(opts, gameboy.WithTraceCapacity(*traceLength))
	}
	if *serialOut {
		opts = append(opts, gameboy.WithSerialWriter(os.Stdout))
	}
	if *loadFile != "" {
		state, err := os.ReadFile(*loadFile)
		if err != nil {
			logger.Errorf("goboy: %v", err)
			os.Exit(1)
		}
		opts = append(opts, gameboy.WithState(state))
	}
	if *cheatFile != "" {
		c, err := loadCheats(*cheatFile)
		if err != nil {
			logger.Errorf("goboy: %v", err)
			os.Exit(1)
		}
		opts = append(opts, gameboy.WithCheats(c))
	}

	gb, err := gameboy.NewGameBoy(rom, opts...)
	if err != nil {
		logger.Errorf("goboy: %v", err)
		os.Exit(1)
	}

	var store *saves.Store
	if *saveDir != "" && gb.BatteryRAM() != nil {
		store = saves.NewStore(*saveDir)
		if err := loadBattery(gb, store); err != nil {
			logger.Errorf("goboy: %v", err)
			os.Exit(1)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, gb, *steps, *frames); err != nil {
		var unimplemented *cpu.UnimplementedOpcodeError
		switch {
		case errors.As(err, &unimplemented):
			n := *traceLength
			if n <= 0 {
				n = fatalTraceLength
			}
			printTrace(os.Stderr, lastEntries(gb.Trace(), n), err)
			os.Exit(1)
		case errors.Is(err, context.Canceled):
			logger.Infof("goboy: interrupted after %d instructions", gb.CPU.Counter())
		default:
			logger.Errorf("goboy: %v", err)
			os.Exit(1)
		}
	}

	if *traceLength > 0 {
		printTrace(os.Stdout, lastEntries(gb.Trace(), *traceLength), nil)
	}
	if *digest {
		fmt.Printf("%016x\n", gb.PPU.Digest())
	}
	if *screenshot != "" {
		img := utils.ScaleImage(gb.PPU.Image(pal), utils.Clamp(1, *scale, 8))
		if err := utils.SaveImage(img, *screenshot); err != nil {
			logger.Errorf("goboy: %v", err)
			os.Exit(1)
		}
	}
	if store != nil {
		path, err := store.Write(gb.MMU.Cart.Title(), gb.BatteryRAM())
		if err != nil {
			logger.Errorf("goboy: %v", err)
			os.Exit(1)
		}
		logger.Infof("goboy: battery saved to %s", path)
	}
	if *saveFile != "" {
		if err := os.WriteFile(*saveFile, gb.SaveState(), 0644); err != nil {
			logger.Errorf("goboy: %v", err)
			os.Exit(1)
		}
	}
}

// run executes steps instructions, and then the given number of frames.
func run(ctx context.Context, gb *gameboy.GameBoy, steps, frames int) error {
	if err := gb.Run(ctx, steps); err != nil {
		return err
	}
	for i := 0; i < frames; i++ {
		if err := gb.Frame(ctx); err != nil {
			return err
		}
	}
	return nil
}

// loadBattery restores the newest battery save of the cartridge, if
// there is one.
func loadBattery(gb *gameboy.GameBoy, store *saves.Store) error {
	b, err := store.Latest(gb.MMU.Cart.Title())
	if errors.Is(err, saves.ErrNoSave) {
		return nil
	} else if err != nil {
		return err
	}
	return gb.LoadBatteryRAM(b)
}

// loadCheats parses the cheat file at path.
func loadCheats(path string) (*cheats.Cheats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c := cheats.New()
	if err := c.Parse(f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
