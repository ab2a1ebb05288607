package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/gbcore/internal/cpu"
)

func TestLastEntries(t *testing.T) {
	trace := cpu.NewTrace(8)
	for i := uint64(1); i <= 5; i++ {
		trace.Add(cpu.TraceEntry{Counter: i})
	}

	entries := lastEntries(trace, 2)
	require.Len(t, entries, 2)
	assert.Equal(t, uint64(4), entries[0].Counter)
	assert.Equal(t, uint64(5), entries[1].Counter)

	assert.Len(t, lastEntries(trace, 10), 5)
}

func TestPrintTrace(t *testing.T) {
	var buf bytes.Buffer
	printTrace(&buf, []cpu.TraceEntry{
		{Counter: 1, Bank: 1, PC: 0x0100, Mnemonic: "LD A, $42", SP: 0xFFFE},
		{Counter: 2, Bank: 1, PC: 0x0102, Mnemonic: "JP $0100", A: 0x42, Zero: true, Carry: true},
	}, errors.New("cpu: unimplemented opcode 0xD3 at 0x0150"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "00000001 01:0100")
	assert.Contains(t, lines[0], "LD A, $42")
	assert.Contains(t, lines[0], "SP:FFFE")
	assert.Contains(t, lines[1], "A:42")
	assert.Contains(t, lines[1], "Z--C")
	assert.Contains(t, lines[2], "unimplemented opcode")
}
