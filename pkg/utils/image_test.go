package utils

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestScaleImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(1, 1, color.RGBA{R: 0xFF, A: 0xFF})

	scaled := ScaleImage(img, 3)
	if b := scaled.Bounds(); b.Dx() != 6 || b.Dy() != 6 {
		t.Fatalf("expected 6x6, got %dx%d", b.Dx(), b.Dy())
	}
	if r, _, _, _ := scaled.At(5, 5).RGBA(); r != 0xFFFF {
		t.Errorf("expected a red pixel at (5,5), got %v", scaled.At(5, 5))
	}
	if r, _, _, _ := scaled.At(2, 2).RGBA(); r != 0 {
		t.Errorf("expected a blank pixel at (2,2), got %v", scaled.At(2, 2))
	}
}

func TestSaveImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	dir := t.TempDir()

	for _, name := range []string{"shot.png", "shot.bmp"} {
		path := filepath.Join(dir, name)
		if err := SaveImage(img, path); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if info, err := os.Stat(path); err != nil || info.Size() == 0 {
			t.Errorf("%s: expected a non-empty file", name)
		}
	}

	if err := SaveImage(img, filepath.Join(dir, "shot.gif")); err == nil {
		t.Errorf("expected an error for an unsupported format")
	}
}
