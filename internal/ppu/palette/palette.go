// Package palette maps the shade indices produced by the PPU to
// RGBA colours, through the DMG palette registers.
package palette

import (
	"image/color"
	"sort"
	"strings"
)

const (
	// Greyscale is the default greyscale palette.
	Greyscale = iota
	// Green is the green palette which attempts to emulate
	// the original colour palette as it would have appeared
	// on the original Game Boy.
	Green
	// Red is a red palette.
	Red
	// Yellow is a yellow palette.
	Yellow
)

// Palette represents a palette. A palette is an array of 4 RGB values,
// one for each shade, from lightest to darkest.
type Palette struct {
	Colors [4][3]uint8
}

// Palettes is a list of all available palettes.
var Palettes = []Palette{
	// Greyscale
	{
		Colors: [4][3]uint8{
			{0xFF, 0xFF, 0xFF},
			{0xCC, 0xCC, 0xCC},
			{0x77, 0x77, 0x77},
			{0x00, 0x00, 0x00},
		},
	},
	// Green
	{
		Colors: [4][3]uint8{
			{0x9B, 0xBC, 0x0F},
			{0x8B, 0xAC, 0x0F},
			{0x30, 0x62, 0x30},
			{0x0F, 0x38, 0x0F},
		},
	},
	// Red
	{
		Colors: [4][3]uint8{
			{0xFF, 0x00, 0x00},
			{0xCC, 0x00, 0x00},
			{0x77, 0x00, 0x00},
			{0x00, 0x00, 0x00},
		},
	},
	// Yellow
	{
		Colors: [4][3]uint8{
			{0xFF, 0xFF, 0x00},
			{0xCC, 0xCC, 0x00},
			{0x77, 0x77, 0x00},
			{0x00, 0x00, 0x00},
		},
	},
}

var names = map[string]int{
	"greyscale": Greyscale,
	"green":     Green,
	"red":       Red,
	"yellow":    Yellow,
}

// ByName returns the palette with the given (case insensitive) name.
func ByName(name string) (Palette, bool) {
	i, ok := names[strings.ToLower(name)]
	if !ok {
		return Palette{}, false
	}
	return Palettes[i], true
}

// Names returns the names accepted by ByName, sorted.
func Names() []string {
	n := make([]string, 0, len(names))
	for name := range names {
		n = append(n, name)
	}
	sort.Strings(n)
	return n
}

// Shades decodes a palette register (BGP, OBP0 or OBP1) into the
// shade assigned to each colour number.
//
//	Bit 7-6 - Shade for Color Number 3
//	Bit 5-4 - Shade for Color Number 2
//	Bit 3-2 - Shade for Color Number 1
//	Bit 1-0 - Shade for Color Number 0
func Shades(register uint8) [4]uint8 {
	return [4]uint8{
		register & 0x03,
		register >> 2 & 0x03,
		register >> 4 & 0x03,
		register >> 6 & 0x03,
	}
}

// GetColour returns the colour of the given shade.
func (p Palette) GetColour(shade uint8) color.RGBA {
	rgb := p.Colors[shade&0x03]
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xFF}
}

// Map returns the colour of the colour number, after it has been
// mapped through the palette register.
func (p Palette) Map(register uint8, colour uint8) color.RGBA {
	return p.GetColour(Shades(register)[colour&0x03])
}
