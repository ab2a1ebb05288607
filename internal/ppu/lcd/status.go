package lcd

import (
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/utils"
)

// Status represents the LCD status register (types.STAT). It contains
// information about the current state of the LCD controller, and
// selects the conditions that request an LCD interrupt.
//
//	Bit 7 - Unused, always reads 1
//	Bit 6 - LYC=LY Coincidence Interrupt (1=Enable) (Read/Write)
//	Bit 5 - Mode 2 OAM Interrupt         (1=Enable) (Read/Write)
//	Bit 4 - Mode 1 V-Blank Interrupt     (1=Enable) (Read/Write)
//	Bit 3 - Mode 0 H-Blank Interrupt     (1=Enable) (Read/Write)
//	Bit 2 - Coincidence Flag  (0:LYC<>LY, 1:LYC=LY) (Read Only)
//	Bit 1-0 - Mode Flag       (Mode 0-3)            (Read Only)
type Status struct {
	// CoincidenceInterrupt is set when the LYC=LY coincidence interrupt is
	// enabled.
	CoincidenceInterrupt bool
	// OAMInterrupt is set when the OAM interrupt is enabled.
	OAMInterrupt bool
	// VBlankInterrupt is set when the V-Blank interrupt is enabled.
	VBlankInterrupt bool
	// HBlankInterrupt is set when the H-Blank interrupt is enabled.
	HBlankInterrupt bool
	// Coincidence is set when LY matched LYC at the last compare.
	Coincidence bool
	// Mode is the current mode of the LCD controller.
	Mode Mode
}

// NewStatus decodes the value of the status register.
func NewStatus(value uint8) Status {
	return Status{
		CoincidenceInterrupt: utils.TestBit(value, 6),
		OAMInterrupt:         utils.TestBit(value, 5),
		VBlankInterrupt:      utils.TestBit(value, 4),
		HBlankInterrupt:      utils.TestBit(value, 3),
		Coincidence:          utils.TestBit(value, 2),
		Mode:                 value & 0x03,
	}
}

// Value encodes the status back into the register layout.
func (s Status) Value() uint8 {
	var value uint8 = types.Bit7
	if s.CoincidenceInterrupt {
		value |= types.Bit6
	}
	if s.OAMInterrupt {
		value |= types.Bit5
	}
	if s.VBlankInterrupt {
		value |= types.Bit4
	}
	if s.HBlankInterrupt {
		value |= types.Bit3
	}
	if s.Coincidence {
		value |= types.Bit2
	}
	return value | s.Mode&0x03
}
