// Package saves persists the battery backed RAM of cartridges. Each
// cartridge gets its own folder in the store, named after its title,
// holding one file per save:
//
//	<dir>/<title>/<unix timestamp>.sav
//
// The newest save is the one loaded.
package saves

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ErrNoSave is returned by Latest when a cartridge has no saves.
var ErrNoSave = errors.New("saves: no save")

// Save describes a save file.
type Save struct {
	Path string
	Time time.Time
}

// Store is a folder of save files.
type Store struct {
	dir string
	now func() time.Time
}

// NewStore returns a store rooted at dir. The folder is created when
// the first save is written.
func NewStore(dir string) *Store {
	return &Store{dir: dir, now: time.Now}
}

// folder returns the save folder for the cartridge title.
func (s *Store) folder(title string) string {
	title = strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == os.PathSeparator {
			return '_'
		}
		return r
	}, strings.TrimSpace(title))
	if title == "" || title == "." || title == ".." {
		title = "untitled"
	}
	return filepath.Join(s.dir, title)
}

// List returns the saves of the cartridge title, newest first.
func (s *Store) List(title string) ([]Save, error) {
	files, err := os.ReadDir(s.folder(title))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	var saves []Save
	for _, file := range files {
		if file.IsDir() || !isSaveFile(file.Name()) {
			continue
		}
		saves = append(saves, Save{
			Path: filepath.Join(s.folder(title), file.Name()),
			Time: time.Unix(parseTimestamp(file.Name()), 0),
		})
	}
	sort.Slice(saves, func(i, j int) bool {
		return saves[i].Time.After(saves[j].Time)
	})

	return saves, nil
}

// Latest returns the contents of the newest save of the cartridge
// title, or ErrNoSave.
func (s *Store) Latest(title string) ([]byte, error) {
	saves, err := s.List(title)
	if err != nil {
		return nil, err
	}
	if len(saves) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoSave, title)
	}
	return os.ReadFile(saves[0].Path)
}

// Write writes ram as a new save of the cartridge title, and returns
// its path. The data is written to a temporary file which is renamed
// once complete, so a crash never leaves a truncated save behind.
func (s *Store) Write(title string, ram []byte) (string, error) {
	folder := s.folder(title)
	if err := os.MkdirAll(folder, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(folder, fmt.Sprintf("%d.sav", s.now().Unix()))
	f, err := os.CreateTemp(folder, filepath.Base(path)+".*")
	if err != nil {
		return "", err
	}
	if _, err := f.Write(ram); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}

	return path, os.Rename(f.Name(), path)
}

// parseTimestamp parses the timestamp from a filename in the format
// "<...>.<timestamp>.sav", returning 0 if there is none.
func parseTimestamp(filename string) int64 {
	filename = strings.TrimSuffix(filename, filepath.Ext(filename))

	parts := strings.Split(filename, ".")
	n, err := strconv.ParseInt(parts[len(parts)-1], 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func isSaveFile(filename string) bool {
	return strings.HasSuffix(filename, ".sav")
}
