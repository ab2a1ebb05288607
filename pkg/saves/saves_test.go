package saves

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *time.Time) {
	t.Helper()
	s := NewStore(t.TempDir())
	now := time.Unix(1700000000, 0)
	s.now = func() time.Time { return now }
	return s, &now
}

func TestStore_Latest(t *testing.T) {
	s, now := newTestStore(t)

	_, err := s.Latest("POKEMON RED")
	assert.ErrorIs(t, err, ErrNoSave)

	path, err := s.Write("POKEMON RED", []byte{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.dir, "POKEMON RED", "1700000000.sav"), path)

	*now = now.Add(time.Minute)
	_, err = s.Write("POKEMON RED", []byte{4, 5, 6})
	require.NoError(t, err)

	b, err := s.Latest("POKEMON RED")
	require.NoError(t, err)
	assert.Equal(t, []byte{4, 5, 6}, b)

	saves, err := s.List("POKEMON RED")
	require.NoError(t, err)
	require.Len(t, saves, 2)
	assert.Equal(t, int64(1700000060), saves[0].Time.Unix())
	assert.Equal(t, int64(1700000000), saves[1].Time.Unix())
}

func TestStore_List(t *testing.T) {
	s, _ := newTestStore(t)

	saves, err := s.List("MISSING")
	require.NoError(t, err)
	assert.Empty(t, saves)

	_, err = s.Write("TETRIS", nil)
	require.NoError(t, err)
	// leftover temporary files and other files are ignored
	require.NoError(t, os.WriteFile(filepath.Join(s.dir, "TETRIS", "1.sav.1234"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(s.dir, "TETRIS", "notes.txt"), nil, 0644))

	saves, err = s.List("TETRIS")
	require.NoError(t, err)
	assert.Len(t, saves, 1)
}

func TestStore_folder(t *testing.T) {
	s := NewStore("saves")
	assert.Equal(t, filepath.Join("saves", "A_B"), s.folder("A/B"))
	assert.Equal(t, filepath.Join("saves", "untitled"), s.folder("  "))
	assert.Equal(t, filepath.Join("saves", "untitled"), s.folder(".."))
}

func TestParseTimestamp(t *testing.T) {
	assert.Equal(t, int64(1700000000), parseTimestamp("1700000000.sav"))
	assert.Equal(t, int64(42), parseTimestamp("game.42.sav"))
	assert.Equal(t, int64(0), parseTimestamp("game.sav"))
}
