package types

// Register represents a GB Register which is used to hold an 8-bit value.
// The CPU has 8 registers: A, B, C, D, E, H, L, and F. The F register is
// special in that it is used to hold the flags.
type Register = uint8

// RegisterPair represents a pair of GB Registers which is used to hold a 16-bit
// value. The CPU has 4 register pairs: AF, BC, DE, and HL.
type RegisterPair struct {
	High *Register
	Low  *Register

	// mask is applied to the low register on every read and write
	mask uint8
}

// NewRegisterPair returns a RegisterPair viewing the two given registers.
func NewRegisterPair(high, low *Register) *RegisterPair {
	return &RegisterPair{High: high, Low: low, mask: 0xFF}
}

// NewFlagPair returns the AF view, whose low nibble always reads as 0.
func NewFlagPair(high, low *Register) *RegisterPair {
	return &RegisterPair{High: high, Low: low, mask: 0xF0}
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low&r.mask)
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value) & r.mask
}

// Registers represents the GB CPU registers.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	F Register
	H Register
	L Register

	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
	AF *RegisterPair
}

// Init sets up the register pair views. It must be called on the
// Registers value in its final location, as the pairs hold pointers
// into it.
func (r *Registers) Init() {
	r.BC = NewRegisterPair(&r.B, &r.C)
	r.DE = NewRegisterPair(&r.D, &r.E)
	r.HL = NewRegisterPair(&r.H, &r.L)
	r.AF = NewFlagPair(&r.A, &r.F)
}
