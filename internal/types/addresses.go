package types

// HardwareAddress represents the address of a hardware
// register of the Game Boy. The hardware registers are
// mapped to memory addresses 0xFF00 - 0xFF7F & 0xFFFF,
// and live in the flat memory array of the address space.
type HardwareAddress = uint16

const (
	// P1 selects which nibble of the joypad is visible in
	// the lower 4 bits (active low).
	//
	//  Bit 5: Select action buttons    (0=Select)
	//  Bit 4: Select direction buttons (0=Select)
	//  Bit 3: Down  or Start           (0=Pressed)
	//  Bit 2: Up    or Select          (0=Pressed)
	//  Bit 1: Left  or B               (0=Pressed)
	//  Bit 0: Right or A               (0=Pressed)
	P1 HardwareAddress = 0xFF00
	// SB holds the byte to be shifted out of the serial port.
	SB HardwareAddress = 0xFF01
	// SC controls the serial port.
	//
	//  Bit 7: Transfer enable (1=Transfer in progress)
	//  Bit 1-0: Clock select, indexes the transfer threshold
	SC HardwareAddress = 0xFF02
	// DIV is the high byte of the 16-bit divider, which counts
	// every CPU cycle. Writing any value to DIV resets it to 0.
	DIV HardwareAddress = 0xFF04
	// TIMA is incremented at the rate selected by TAC. When it
	// overflows it is reloaded from TMA and a timer interrupt is
	// requested.
	TIMA HardwareAddress = 0xFF05
	// TMA is loaded into TIMA when TIMA overflows.
	TMA HardwareAddress = 0xFF06
	// TAC controls the timer.
	//
	//  Bit 2: Timer enable
	//  Bit 1-0: Input clock select
	//           00: 1024 cycles
	//           01: 16 cycles
	//           10: 64 cycles
	//           11: 256 cycles
	TAC HardwareAddress = 0xFF07
	// IF requests interrupts. Setting a bit requests the
	// corresponding interrupt, clearing it cancels the request.
	//
	//  Bit 0: V-Blank Interrupt Request (INT 40h)  (1=Request)
	//  Bit 1: LCD STAT Interrupt Request (INT 48h) (1=Request)
	//  Bit 2: Timer Interrupt Request (INT 50h)    (1=Request)
	//  Bit 3: Serial Interrupt Request (INT 58h)   (1=Request)
	//  Bit 4: Joypad Interrupt Request (INT 60h)   (1=Request)
	IF HardwareAddress = 0xFF0F
	// WaveRAM is the first byte of the 16 byte wave pattern
	// memory, each byte holding two 4-bit samples.
	WaveRAM HardwareAddress = 0xFF30
	// LCDC controls the LCD.
	//
	//  Bit 7: LCD Enable                     (0=Off, 1=On)
	//  Bit 6: Window Tile Map Display Select (0=9800-9BFF, 1=9C00-9FFF)
	//  Bit 5: Window Display Enable          (0=Off, 1=On)
	//  Bit 4: BG & Window Tile Data Select   (0=8800-97FF, 1=8000-8FFF)
	//  Bit 3: BG Tile Map Display Select     (0=9800-9BFF, 1=9C00-9FFF)
	//  Bit 2: OBJ (Sprite) Size              (0=8x8, 1=8x16)
	//  Bit 1: OBJ (Sprite) Display Enable    (0=Off, 1=On)
	//  Bit 0: BG Display                     (0=Off, 1=On)
	LCDC HardwareAddress = 0xFF40
	// STAT reports the mode of the LCD and selects the
	// conditions which request an LCD interrupt.
	//
	//  Bit 6: LYC=LY Coincidence Interrupt (1=Enable)
	//  Bit 5: mode 2 OAM Interrupt         (1=Enable)
	//  Bit 4: mode 1 V-Blank Interrupt     (1=Enable)
	//  Bit 3: mode 0 H-Blank Interrupt     (1=Enable)
	//  Bit 2: Coincidence Flag  (0:LYC<>LY, 1:LYC=LY)
	//  Bit 1-0: mode Flag
	//           0: During H-Blank
	//           1: During V-Blank
	//           2: During Searching OAM-RAM
	//           3: During Transferring Data to LCD Driver
	STAT HardwareAddress = 0xFF41
	// SCY is the vertical scroll position of the background.
	SCY HardwareAddress = 0xFF42
	// SCX is the horizontal scroll position of the background.
	SCX HardwareAddress = 0xFF43
	// LY is the scanline currently being processed, 0-153.
	LY HardwareAddress = 0xFF44
	// LYC is compared against LY after every scanline.
	LYC HardwareAddress = 0xFF45
	// DMA starts a 160 byte transfer from (value << 8) into OAM.
	DMA HardwareAddress = 0xFF46
	// BGP is the background palette.
	//
	//  Bit 7-6 - Shade for Color Number 3
	//  Bit 5-4 - Shade for Color Number 2
	//  Bit 3-2 - Shade for Color Number 1
	//  Bit 1-0 - Shade for Color Number 0
	BGP HardwareAddress = 0xFF47
	// OBP0 is sprite palette 0. Color number 0 is transparent.
	OBP0 HardwareAddress = 0xFF48
	// OBP1 is sprite palette 1. Color number 0 is transparent.
	OBP1 HardwareAddress = 0xFF49
	// WY is the Y position of the window.
	WY HardwareAddress = 0xFF4A
	// WX is the X position of the window plus 7. WX=7 and
	// WY=0 places the window at the top left of the LCD.
	WX HardwareAddress = 0xFF4B
	// IE enables interrupts, using the same layout as IF.
	IE HardwareAddress = 0xFFFF
)

// Memory regions of the DMG address space.
const (
	ROMBank0    uint16 = 0x0000
	ROMBankN    uint16 = 0x4000
	VRAM        uint16 = 0x8000
	TileMap0    uint16 = 0x9800
	TileMap1    uint16 = 0x9C00
	ExternalRAM uint16 = 0xA000
	WRAM        uint16 = 0xC000
	EchoRAM     uint16 = 0xE000
	OAM         uint16 = 0xFE00
	IO          uint16 = 0xFF00
	HRAM        uint16 = 0xFF80
)
