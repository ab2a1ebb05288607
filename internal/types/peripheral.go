package types

// Peripheral is a hardware component that is advanced by the
// cycles the CPU spends executing, such as the timer, the serial
// port and the PPU. Advance is always called synchronously, after
// the instruction that consumed the cycles has completed.
type Peripheral interface {
	// Advance moves the peripheral forward by the given number
	// of CPU cycles (T-cycles).
	Advance(cycles uint16)
}
