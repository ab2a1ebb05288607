package cpu

import "fmt"

// DefaultTraceCapacity is the number of entries kept by a Trace
// created with a capacity of 0.
const DefaultTraceCapacity = 0x1000

// TraceEntry is a snapshot of the CPU taken as an instruction is
// dispatched, before it executes.
type TraceEntry struct {
	Counter  uint64
	Bank     uint16
	PC       uint16
	Mnemonic string

	A, B, C, D, E, F, H, L uint8
	SP                     uint16

	Zero, Subtract, HalfCarry, Carry bool
}

// Flags formats the flags as ZNHC, with a dash for a cleared flag.
func (e TraceEntry) Flags() string {
	b := []byte("----")
	for i, set := range [4]bool{e.Zero, e.Subtract, e.HalfCarry, e.Carry} {
		if set {
			b[i] = "ZNHC"[i]
		}
	}
	return string(b)
}

func (e TraceEntry) String() string {
	return fmt.Sprintf("%08d %02X:%04X %-16s A:%02X F:%02X B:%02X C:%02X D:%02X E:%02X H:%02X L:%02X SP:%04X %s",
		e.Counter, e.Bank, e.PC, e.Mnemonic,
		e.A, e.F, e.B, e.C, e.D, e.E, e.H, e.L, e.SP, e.Flags())
}

// Trace is a fixed size ring buffer of the most recent TraceEntry
// values. Once full, every new entry overwrites the oldest.
type Trace struct {
	entries []TraceEntry
	next    int
	full    bool
}

// NewTrace returns a Trace holding up to capacity entries.
func NewTrace(capacity int) *Trace {
	if capacity <= 0 {
		capacity = DefaultTraceCapacity
	}
	return &Trace{entries: make([]TraceEntry, capacity)}
}

// Add appends an entry, evicting the oldest when the trace is full.
func (t *Trace) Add(e TraceEntry) {
	t.entries[t.next] = e
	t.next++
	if t.next == len(t.entries) {
		t.next = 0
		t.full = true
	}
}

// Len returns the number of entries held.
func (t *Trace) Len() int {
	if t.full {
		return len(t.entries)
	}
	return t.next
}

// Capacity returns the maximum number of entries held.
func (t *Trace) Capacity() int {
	return len(t.entries)
}

// Entries returns a copy of the entries, oldest first.
func (t *Trace) Entries() []TraceEntry {
	if !t.full {
		return append([]TraceEntry(nil), t.entries[:t.next]...)
	}
	out := make([]TraceEntry, 0, len(t.entries))
	out = append(out, t.entries[t.next:]...)
	return append(out, t.entries[:t.next]...)
}

// Last returns the newest entry, or false if the trace is empty.
func (t *Trace) Last() (TraceEntry, bool) {
	if t.Len() == 0 {
		return TraceEntry{}, false
	}
	i := t.next - 1
	if i < 0 {
		i = len(t.entries) - 1
	}
	return t.entries[i], true
}

// Reset discards every entry.
func (t *Trace) Reset() {
	t.next = 0
	t.full = false
}
