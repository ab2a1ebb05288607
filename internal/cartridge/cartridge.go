// Package cartridge provides the cartridge image, its header and
// the memory bank controllers that map it into the address space.
package cartridge

import "fmt"

// headerEnd is the first byte past the cartridge header.
const headerEnd = 0x150

// MalformedCartridgeError is returned when an image is too short
// to hold a cartridge header.
type MalformedCartridgeError struct {
	Size int
}

func (e *MalformedCartridgeError) Error() string {
	return fmt.Sprintf("cartridge: malformed image, %d bytes is shorter than the 0x%04X byte header region", e.Size, headerEnd)
}

// Cartridge represents a game cartridge image.
type Cartridge struct {
	rom    []byte
	header Header
}

// New parses the header of the given image and returns a Cartridge.
func New(rom []byte) (*Cartridge, error) {
	if len(rom) < headerEnd {
		return nil, &MalformedCartridgeError{Size: len(rom)}
	}

	return &Cartridge{
		rom:    rom,
		header: parseHeader(rom[0x100:headerEnd]),
	}, nil
}

// Header returns the parsed cartridge header.
func (c *Cartridge) Header() Header {
	return c.header
}

// Title returns an escaped string of the cartridge title.
func (c *Cartridge) Title() string {
	return c.header.Title
}

// ROM returns the raw cartridge image.
func (c *Cartridge) ROM() []byte {
	return c.rom
}
