// Package ppu implements the Game Boy's (P)ixel (P)rocessing (U)nit.
//
// The PPU steps through the LCD modes once per dot (4 cycles), keeping
// LY, STAT and the LCD interrupts in step with the CPU, and renders the
// whole frame at once when the frame completes. Rendering draws the
// background, window and sprite layers into their own 256x256 buffers,
// and composites the visible 160x144 region into Buffer.
//
// References:
//   - [Pan Docs](https://gbdev.io/pandocs/Graphics.html)
//   - [Hacktix GBEDG](https://hacktix.github.io/GBEDG/ppu/)
package ppu

import (
	"image"

	"github.com/cespare/xxhash"
	"github.com/thelolagemann/gbcore/internal/interrupts"
	"github.com/thelolagemann/gbcore/internal/ppu/lcd"
	"github.com/thelolagemann/gbcore/internal/ppu/palette"
	"github.com/thelolagemann/gbcore/internal/types"
)

const (
	// ScreenWidth is the width of the screen in pixels.
	ScreenWidth = 160
	// ScreenHeight is the height of the screen in pixels.
	ScreenHeight = 144
)

// Timings, in dots. A dot is 4 cycles.
const (
	oamDots    = 20
	vramDots   = 63
	hblankDots = 113
	lineDots   = 114

	// VBlankDot is the frame dot at which LY reaches 144.
	VBlankDot = ScreenHeight * lineDots
	// FrameDots is the number of dots in a frame, after which the
	// frame is rendered.
	FrameDots = 154 * lineDots
)

// Buffer is a 256x256 buffer of colour numbers, indexed [y][x].
type Buffer = [256][256]uint8

// Layer identifies the source of a composited pixel, which selects
// the palette register it is mapped through.
type Layer uint8

const (
	// LayerBackground is the background or window, mapped through BGP.
	LayerBackground Layer = iota
	// LayerObject0 is a sprite mapped through OBP0.
	LayerObject0
	// LayerObject1 is a sprite mapped through OBP1.
	LayerObject1
)

// PPU implements the Game Boy's (P)ixel (P)rocessing (U)nit.
type PPU struct {
	ly          uint8
	mode        lcd.Mode
	coincidence bool

	lineDot  uint16
	frameDot uint16
	frames   uint64

	buffer     Buffer
	background Buffer
	window     Buffer
	sprites    Buffer
	layers     [ScreenHeight][ScreenWidth]Layer

	dma *DMA
	bus types.Bus
	irq *interrupts.Service
}

var _ types.Peripheral = (*PPU)(nil)

// New returns a new PPU, and installs the write handlers for DMA,
// STAT and LY on the bus.
func New(bus types.Bus, irq *interrupts.Service) *PPU {
	p := &PPU{
		dma: NewDMA(bus),
		bus: bus,
		irq: irq,
	}

	// the mode and coincidence bits are read only
	bus.OnWrite(types.STAT, func(uint8) {
		p.writeStatus()
	})
	// LY is read only
	bus.OnWrite(types.LY, func(uint8) {
		bus.Set(types.LY, p.ly)
	})

	bus.Set(types.LY, 0)
	p.writeStatus()

	return p
}

// Advance steps the PPU by cycles/4 dots.
func (p *PPU) Advance(cycles uint16) {
	for i := uint16(0); i < cycles/4; i++ {
		p.dot()
	}
}

func (p *PPU) dot() {
	p.frameDot++
	p.lineDot++

	if p.ly < ScreenHeight {
		switch {
		case p.lineDot <= oamDots:
			p.setMode(lcd.OAM)
		case p.lineDot <= vramDots:
			p.setMode(lcd.VRAM)
		case p.lineDot <= hblankDots:
			p.setMode(lcd.HBlank)
		}
	}

	if p.frameDot >= FrameDots {
		p.Render()

		p.frameDot = 0
		p.lineDot = 0
		p.setLY(0)
		return
	}

	if p.lineDot >= lineDots {
		p.lineDot = 0
		p.setLY(p.ly + 1)

		if p.ly == ScreenHeight {
			p.irq.Request(interrupts.VBlankFlag)
			p.setMode(lcd.VBlank)
		}
	}
}

// setMode updates the mode reported in STAT, requesting an LCD
// interrupt when the new mode has its STAT interrupt enabled.
func (p *PPU) setMode(mode lcd.Mode) {
	if p.mode == mode {
		return
	}
	p.mode = mode

	status := lcd.NewStatus(p.bus.Get(types.STAT))
	switch {
	case mode == lcd.OAM && status.OAMInterrupt,
		mode == lcd.HBlank && status.HBlankInterrupt,
		mode == lcd.VBlank && status.VBlankInterrupt:
		p.irq.Request(interrupts.LCDFlag)
	}
	p.writeStatus()
}

// setLY updates LY and compares it against LYC.
func (p *PPU) setLY(ly uint8) {
	p.ly = ly
	p.bus.Set(types.LY, ly)

	p.coincidence = ly == p.bus.Get(types.LYC)
	if p.coincidence && lcd.NewStatus(p.bus.Get(types.STAT)).CoincidenceInterrupt {
		p.irq.Request(interrupts.LCDFlag)
	}
	p.writeStatus()
}

// writeStatus writes the mode and coincidence flag into STAT,
// keeping the interrupt enable bits.
func (p *PPU) writeStatus() {
	status := lcd.NewStatus(p.bus.Get(types.STAT))
	status.Mode = p.mode
	status.Coincidence = p.coincidence
	p.bus.Set(types.STAT, status.Value())
}

// Buffer returns the composited frame. Only the top left 160x144
// pixels are drawn.
func (p *PPU) Buffer() *Buffer {
	return &p.buffer
}

// Background returns the full 256x256 background.
func (p *PPU) Background() *Buffer {
	return &p.background
}

// Window returns the window, drawn at (WX-7, WY).
func (p *PPU) Window() *Buffer {
	return &p.window
}

// Sprites returns the sprite layer.
func (p *PPU) Sprites() *Buffer {
	return &p.sprites
}

// Layers returns the source layer of each composited pixel.
func (p *PPU) Layers() *[ScreenHeight][ScreenWidth]Layer {
	return &p.layers
}

// Scroll returns the background scroll registers.
func (p *PPU) Scroll() (scx, scy uint8) {
	return p.bus.Get(types.SCX), p.bus.Get(types.SCY)
}

// Mode returns the current mode of the LCD.
func (p *PPU) Mode() lcd.Mode {
	return p.mode
}

// LY returns the current scanline.
func (p *PPU) LY() uint8 {
	return p.ly
}

// Frames returns the number of frames rendered.
func (p *PPU) Frames() uint64 {
	return p.frames
}

// DMA returns the OAM DMA controller.
func (p *PPU) DMA() *DMA {
	return p.dma
}

// Digest returns a hash of the visible region of the frame, which
// identifies the frame independently of the palette.
func (p *PPU) Digest() uint64 {
	b := make([]byte, 0, ScreenWidth*ScreenHeight)
	for y := 0; y < ScreenHeight; y++ {
		b = append(b, p.buffer[y][:ScreenWidth]...)
	}
	return xxhash.Sum64(b)
}

// Image maps the visible region of the frame through the palette
// registers and pal.
func (p *PPU) Image(pal palette.Palette) *image.RGBA {
	registers := [3]uint8{
		LayerBackground: p.bus.Get(types.BGP),
		LayerObject0:    p.bus.Get(types.OBP0),
		LayerObject1:    p.bus.Get(types.OBP1),
	}

	img := image.NewRGBA(image.Rect(0, 0, ScreenWidth, ScreenHeight))
	for y := 0; y < ScreenHeight; y++ {
		for x := 0; x < ScreenWidth; x++ {
			img.SetRGBA(x, y, pal.Map(registers[p.layers[y][x]], p.buffer[y][x]))
		}
	}
	return img
}

var _ types.Stater = (*PPU)(nil)

// Load implements the types.Stater interface.
//
// The values are loaded in the following order:
//   - LY (uint8)
//   - mode (uint8)
//   - coincidence (bool)
//   - line dot (uint16)
//   - frame dot (uint16)
//   - frames (uint64)
//   - DMA
func (p *PPU) Load(s *types.State) {
	p.ly = s.Read8()
	p.mode = s.Read8()
	p.coincidence = s.ReadBool()
	p.lineDot = s.Read16()
	p.frameDot = s.Read16()
	p.frames = s.Read64()
	p.dma.Load(s)
}

// Save implements the types.Stater interface.
func (p *PPU) Save(s *types.State) {
	s.Write8(p.ly)
	s.Write8(p.mode)
	s.WriteBool(p.coincidence)
	s.Write16(p.lineDot)
	s.Write16(p.frameDot)
	s.Write64(p.frames)
	p.dma.Save(s)
}
