// Package cheats implements Game Genie and GameShark codes. Game Genie
// codes patch cartridge ROM as it is read, GameShark codes poke RAM
// once per frame.
package cheats

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/thelolagemann/gbcore/internal/types"
)

// ErrInvalidCode is returned when a code cannot be parsed.
var ErrInvalidCode = errors.New("cheats: invalid code")

// Cheat is a named group of codes that are enabled together.
type Cheat struct {
	Name    string
	Enabled bool

	genie []GameGenieCode
	shark []GameSharkCode
	codes []string
}

// Codes returns the codes of the cheat, as they were loaded.
func (c *Cheat) Codes() []string {
	return c.codes
}

// Cheats holds the loaded cheats.
type Cheats struct {
	cheats []*Cheat
}

// New returns an empty set of cheats.
func New() *Cheats {
	return &Cheats{}
}

// Load parses the codes, one per line, and adds them as an enabled
// cheat. 8 digit codes are GameShark codes, everything else is parsed
// as a Game Genie code.
func (c *Cheats) Load(name string, text string) error {
	if c.Get(name) != nil {
		return fmt.Errorf("cheats: %q already loaded", name)
	}

	cheat := &Cheat{Name: name, Enabled: true}
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := cheat.add(line); err != nil {
			return err
		}
	}
	if len(cheat.codes) == 0 {
		return fmt.Errorf("%w: %q has no codes", ErrInvalidCode, name)
	}

	c.cheats = append(c.cheats, cheat)
	return nil
}

func (c *Cheat) add(code string) error {
	if len(code) == 8 {
		s, err := ParseGameShark(code)
		if err != nil {
			return err
		}
		c.shark = append(c.shark, s)
	} else {
		g, err := ParseGameGenie(code)
		if err != nil {
			return err
		}
		c.genie = append(c.genie, g)
	}
	c.codes = append(c.codes, code)
	return nil
}

// Parse reads a cheat file. The file format is as follows:
//
//	# Cheat Name
//	01FF16D0
//	00A-17B-C49
//
// A file may have any number of cheats, each with any mix of Game
// Genie and GameShark codes.
func (c *Cheats) Parse(r io.Reader) error {
	var name string
	var codes []string
	flush := func() error {
		if name == "" && len(codes) == 0 {
			return nil
		}
		if name == "" {
			return fmt.Errorf("%w: codes without a name", ErrInvalidCode)
		}
		return c.Load(name, strings.Join(codes, "\n"))
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
		case line[0] == '#':
			if err := flush(); err != nil {
				return err
			}
			name, codes = strings.TrimSpace(line[1:]), nil
		default:
			codes = append(codes, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return flush()
}

// Save writes the cheats in the format read by Parse.
func (c *Cheats) Save(w io.Writer) error {
	for _, cheat := range c.cheats {
		if _, err := fmt.Fprintf(w, "# %s\n", cheat.Name); err != nil {
			return err
		}
		for _, code := range cheat.codes {
			if _, err := fmt.Fprintln(w, code); err != nil {
				return err
			}
		}
	}
	return nil
}

// Get returns the named cheat, or nil.
func (c *Cheats) Get(name string) *Cheat {
	for _, cheat := range c.cheats {
		if cheat.Name == name {
			return cheat
		}
	}
	return nil
}

// All returns the loaded cheats.
func (c *Cheats) All() []*Cheat {
	return c.cheats
}

// Enable enables the named cheat.
func (c *Cheats) Enable(name string) error {
	return c.set(name, true)
}

// Disable disables the named cheat.
func (c *Cheats) Disable(name string) error {
	return c.set(name, false)
}

func (c *Cheats) set(name string, enabled bool) error {
	cheat := c.Get(name)
	if cheat == nil {
		return fmt.Errorf("cheats: %q not found", name)
	}
	cheat.Enabled = enabled
	return nil
}

// PatchROM applies the enabled Game Genie codes to a byte read from
// cartridge ROM.
func (c *Cheats) PatchROM(address uint16, value uint8) uint8 {
	for _, cheat := range c.cheats {
		if !cheat.Enabled {
			continue
		}
		for _, code := range cheat.genie {
			if v, ok := code.Patch(address, value); ok {
				return v
			}
		}
	}
	return value
}

// Apply writes the enabled GameShark codes to the bus.
func (c *Cheats) Apply(bus types.Bus) {
	for _, cheat := range c.cheats {
		if !cheat.Enabled {
			continue
		}
		for _, code := range cheat.shark {
			bus.Write(code.Address, code.NewData)
		}
	}
}
