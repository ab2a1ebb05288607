package cheats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/gbcore/internal/cartridge"
	"github.com/thelolagemann/gbcore/internal/mmu"
)

func TestParseGameGenie(t *testing.T) {
	tests := []struct {
		code     string
		expected GameGenieCode
	}{
		{"3E1-50F-E0A", GameGenieCode{NewData: 0x3E, Address: 0x0150, OldData: 0x00, Compare: true}},
		{"99101F", GameGenieCode{NewData: 0x99, Address: 0x0101}},
		{"991-01F", GameGenieCode{NewData: 0x99, Address: 0x0101}},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			c, err := ParseGameGenie(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c)
		})
	}
}

func TestParseGameGenie_Invalid(t *testing.T) {
	for _, code := range []string{"", "3E1-50F-E0", "ZZ1-50F", "001-507"} {
		_, err := ParseGameGenie(code)
		assert.ErrorIs(t, err, ErrInvalidCode, code)
	}
}

func TestGameGenieCode_Patch(t *testing.T) {
	c := GameGenieCode{NewData: 0x3E, Address: 0x0150, OldData: 0x12, Compare: true}

	v, ok := c.Patch(0x0150, 0x12)
	assert.True(t, ok)
	assert.Equal(t, uint8(0x3E), v)

	v, ok = c.Patch(0x0150, 0x13)
	assert.False(t, ok, "old data should not match")
	assert.Equal(t, uint8(0x13), v)

	_, ok = c.Patch(0x0151, 0x12)
	assert.False(t, ok)
}

func TestParseGameShark(t *testing.T) {
	c, err := ParseGameShark("01FF16D0")
	require.NoError(t, err)
	assert.Equal(t, GameSharkCode{ExternalRAMBank: 0x01, NewData: 0xFF, Address: 0xD016}, c)

	for _, code := range []string{"01FF16", "01FF16DX", "01FF0040"} {
		_, err := ParseGameShark(code)
		assert.ErrorIs(t, err, ErrInvalidCode, code)
	}
}

func TestCheats_Load(t *testing.T) {
	c := New()
	require.NoError(t, c.Load("Infinite Lives", "01FF16D0\n\n991-01F\n"))
	assert.Error(t, c.Load("Infinite Lives", "01FF16D0"), "duplicate names")
	assert.ErrorIs(t, c.Load("Empty", "\n"), ErrInvalidCode)
	assert.ErrorIs(t, c.Load("Broken", "nope"), ErrInvalidCode)

	cheat := c.Get("Infinite Lives")
	require.NotNil(t, cheat)
	assert.True(t, cheat.Enabled)
	assert.Equal(t, []string{"01FF16D0", "991-01F"}, cheat.Codes())
	assert.Len(t, c.All(), 1)
}

func TestCheats_ParseSave(t *testing.T) {
	file := `# Infinite Lives
01FF16D0

# Start on Level 5
991-01F
3E1-50F-E0A
`
	c := New()
	require.NoError(t, c.Parse(strings.NewReader(file)))
	require.Len(t, c.All(), 2)
	assert.Equal(t, "Start on Level 5", c.All()[1].Name)
	assert.Len(t, c.All()[1].Codes(), 2)

	var buf bytes.Buffer
	require.NoError(t, c.Save(&buf))
	assert.Equal(t, "# Infinite Lives\n01FF16D0\n# Start on Level 5\n991-01F\n3E1-50F-E0A\n", buf.String())

	assert.ErrorIs(t, New().Parse(strings.NewReader("01FF16D0\n")), ErrInvalidCode, "codes without a name")
}

func TestCheats_PatchROM(t *testing.T) {
	c := New()
	require.NoError(t, c.Load("Level", "991-01F"))

	assert.Equal(t, uint8(0x99), c.PatchROM(0x0101, 0x42))
	assert.Equal(t, uint8(0x42), c.PatchROM(0x0102, 0x42))

	require.NoError(t, c.Disable("Level"))
	assert.Equal(t, uint8(0x42), c.PatchROM(0x0101, 0x42))
	require.NoError(t, c.Enable("Level"))
	assert.Equal(t, uint8(0x99), c.PatchROM(0x0101, 0x42))

	assert.Error(t, c.Enable("Missing"))
}

func TestCheats_Apply(t *testing.T) {
	rom := make([]byte, 0x8000)
	rom[0x0101] = 0x42
	cart, err := cartridge.New(rom)
	require.NoError(t, err)
	bus := mmu.NewMMU(cart, nil)

	c := New()
	require.NoError(t, c.Load("Lives", "01FF16D0\n991-01F"))
	bus.SetPatcher(c)

	c.Apply(bus)
	assert.Equal(t, uint8(0xFF), bus.Read(0xD016))
	assert.Equal(t, uint8(0xFF), bus.Read(0xF016), "echo RAM")
	assert.Equal(t, uint8(0x99), bus.Read(0x0101))

	require.NoError(t, c.Disable("Lives"))
	bus.Write(0xD016, 0x03)
	c.Apply(bus)
	assert.Equal(t, uint8(0x03), bus.Read(0xD016))
	assert.Equal(t, uint8(0x42), bus.Read(0x0101))
}
