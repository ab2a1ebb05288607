package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
)

// LoadFile loads the given file and performs decompression if necessary.
// Archives (.zip, .7z) yield their first .gb entry, or their first
// entry if none has that extension.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	// try to assert the compression type from the file extension
	var decoder io.ReadCloser
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".gz":
		decoder, err = gzip.NewReader(bytes.NewReader(data))
	case ".zip":
		zipReader, zerr := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if zerr != nil {
			return nil, zerr
		}
		if len(zipReader.File) == 0 {
			return nil, fmt.Errorf("utils: %s: empty archive", filename)
		}
		decoder, err = pickZip(zipReader.File).Open()
	case ".7z":
		r, serr := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
		if serr != nil {
			return nil, serr
		}
		if len(r.File) == 0 {
			return nil, fmt.Errorf("utils: %s: empty archive", filename)
		}
		decoder, err = pickSevenZip(r.File).Open()
	default:
		// return the data as is
		return data, nil
	}
	if err != nil {
		return nil, err
	}
	defer decoder.Close()

	return io.ReadAll(decoder)
}

func isROMName(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".gb" || ext == ".gbc"
}

func pickZip(files []*zip.File) *zip.File {
	for _, f := range files {
		if isROMName(f.Name) {
			return f
		}
	}
	return files[0]
}

func pickSevenZip(files []*sevenzip.File) *sevenzip.File {
	for _, f := range files {
		if isROMName(f.Name) {
			return f
		}
	}
	return files[0]
}
