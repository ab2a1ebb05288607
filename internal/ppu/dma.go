package ppu

import (
	"github.com/thelolagemann/gbcore/internal/types"
)

// DMA copies 160 bytes into the sprite attribute table. A write to
// types.DMA latches the source, the copy itself is performed
// atomically at the start of the next render.
type DMA struct {
	pending bool
	source  uint16
}

// NewDMA returns a new DMA, and installs its write handler on the bus.
func NewDMA(bus types.Bus) *DMA {
	d := &DMA{}
	bus.OnWrite(types.DMA, func(v uint8) {
		d.source = uint16(v) << 8
		d.pending = true
	})
	return d
}

// Pending reports whether a transfer is waiting for the next render.
func (d *DMA) Pending() bool {
	return d.pending
}

// transfer performs the pending transfer, if any.
func (d *DMA) transfer(bus types.Bus) {
	if !d.pending {
		return
	}
	d.pending = false

	source := d.source
	// sources above echo RAM read from work RAM instead
	if source >= 0xE000 {
		source &^= 0x2000
	}
	for i := uint16(0); i < 0xA0; i++ {
		bus.Set(types.OAM+i, bus.Read(source+i))
	}
}

var _ types.Stater = (*DMA)(nil)

// Load implements the types.Stater interface.
func (d *DMA) Load(s *types.State) {
	d.pending = s.ReadBool()
	d.source = s.Read16()
}

// Save implements the types.Stater interface.
func (d *DMA) Save(s *types.State) {
	s.WriteBool(d.pending)
	s.Write16(d.source)
}
