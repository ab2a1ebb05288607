package ppu

import (
	"github.com/thelolagemann/gbcore/internal/ppu/lcd"
	"github.com/thelolagemann/gbcore/internal/types"
)

// Render draws the frame from the current contents of VRAM, OAM and
// the LCD registers. It is called once per frame by Advance, after
// the last line of VBlank.
func (p *PPU) Render() {
	p.dma.transfer(p.bus)
	p.clear()

	lcdc := lcd.NewController(p.bus.Get(types.LCDC))
	drawTileMap(p.bus, &p.background, lcdc.BackgroundTileMapAddress, lcdc.TileAddress, 0, 0)

	display := lcdc.Enabled && lcdc.BackgroundEnabled
	if display {
		p.compositeBackground()
	}
	if lcdc.WindowEnabled {
		p.renderWindow(lcdc, display)
	}
	if lcdc.SpriteEnabled {
		p.renderSprites(lcdc)
	}

	p.frames++
}

func (p *PPU) clear() {
	p.buffer = Buffer{}
	p.background = Buffer{}
	p.window = Buffer{}
	p.sprites = Buffer{}
	p.layers = [ScreenHeight][ScreenWidth]Layer{}
}

// compositeBackground copies the visible region of the background
// into the frame, wrapping around the edges of the map.
func (p *PPU) compositeBackground() {
	scx, scy := p.Scroll()
	for y := uint8(0); y < ScreenHeight; y++ {
		for x := uint8(0); x < ScreenWidth; x++ {
			p.buffer[y][x] = p.background[scy+y][scx+x]
		}
	}
}

// renderWindow draws the window at (WX-7, WY), and overlays it onto
// the frame when display is set.
func (p *PPU) renderWindow(lcdc lcd.Controller, display bool) {
	wx, wy := p.bus.Get(types.WX), p.bus.Get(types.WY)
	drawTileMap(p.bus, &p.window, lcdc.WindowTileMapAddress, lcdc.TileAddress, wx-7, wy)
	if !display {
		return
	}

	left := int(wx) - 7
	for y := int(wy); y < ScreenHeight; y++ {
		for x := max(left, 0); x < ScreenWidth; x++ {
			p.buffer[y][x] = p.window[y][x]
		}
	}
}

// renderSprites draws the visible sprites. Lower OAM entries are
// drawn last, so they end up on top.
func (p *PPU) renderSprites(lcdc lcd.Controller) {
	var underneath [ScreenHeight][ScreenWidth]uint8
	for y := range underneath {
		copy(underneath[y][:], p.buffer[y][:ScreenWidth])
	}

	for i := 39; i >= 0; i-- {
		sprite := readSprite(p.bus, i)
		if !sprite.Visible() {
			continue
		}

		pixels := sprite.pixels(p.bus, lcdc.SpriteSize)
		for row := uint8(0); row < lcdc.SpriteSize; row++ {
			for col := uint8(0); col < 8; col++ {
				colour := pixels[row][col]
				if colour == 0 {
					continue
				}
				p.sprites[sprite.Y-16+row][sprite.X-8+col] = colour

				sy, sx := int(sprite.Y)-16+int(row), int(sprite.X)-8+int(col)
				if sy < 0 || sy >= ScreenHeight || sx < 0 || sx >= ScreenWidth {
					continue
				}
				if sprite.behindBackground && underneath[sy][sx] != 0 {
					continue
				}
				p.buffer[sy][sx] = colour
				p.layers[sy][sx] = sprite.Layer()
			}
		}
	}
}
