package types

// Bus is the view of the address space handed to the hardware
// peripherals. Read and Write go through the full address decode,
// while Get and Set access the flat memory array directly so that
// a peripheral can update its own registers without triggering
// the write handlers installed on them.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)

	Get(address uint16) uint8
	Set(address uint16, value uint8)

	OnWrite(address HardwareAddress, handler WriteHandler)
}

// WriteHandler is called after a value has been written to a
// hardware register, with the value that was written.
type WriteHandler func(v uint8)

// HardwareRegisters is a table of write handlers, indexed by the
// address of the hardware register ANDed with 0x007F. The IE
// register (0xFFFF) lands at index 0x7F, which is otherwise the
// unused 0xFF7F.
type HardwareRegisters [0x80]WriteHandler

// IsHardware reports whether address lies in the hardware
// register range.
func IsHardware(address uint16) bool {
	return address >= 0xFF00 && address < 0xFF80 || address == IE
}

// Register installs handler for address. Installing a second
// handler for the same address chains it after the first.
func (h *HardwareRegisters) Register(address HardwareAddress, handler WriteHandler) {
	if !IsHardware(address) {
		panic("hardware: not a hardware register address")
	}
	i := address & 0x007F
	if prev := h[i]; prev != nil {
		h[i] = func(v uint8) {
			prev(v)
			handler(v)
		}
		return
	}
	h[i] = handler
}

// Handle runs the handler installed for address, if any.
func (h *HardwareRegisters) Handle(address uint16, value uint8) {
	if !IsHardware(address) || address == 0xFF7F {
		return
	}
	if fn := h[address&0x007F]; fn != nil {
		fn(value)
	}
}
