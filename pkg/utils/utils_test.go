package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	want := []byte{0x31, 0xFE, 0xFF, 0xAF}

	raw := filepath.Join(dir, "boot.bin")
	if err := os.WriteFile(raw, want, 0o644); err != nil {
		t.Fatal(err)
	}

	var gz bytes.Buffer
	w := gzip.NewWriter(&gz)
	w.Write(want)
	w.Close()
	gzPath := filepath.Join(dir, "boot.bin.gz")
	if err := os.WriteFile(gzPath, gz.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	var z bytes.Buffer
	zw := zip.NewWriter(&z)
	f, _ := zw.Create("boot.bin")
	f.Write(want)
	zw.Close()
	zipPath := filepath.Join(dir, "boot.zip")
	if err := os.WriteFile(zipPath, z.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{raw, gzPath, zipPath} {
		got, err := LoadFile(path)
		if err != nil {
			t.Fatalf("%s: %v", path, err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("%s: expected %x, got %x", path, want, got)
		}
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.bin")); err == nil {
		t.Errorf("expected an error for a missing file")
	}
	corrupt := filepath.Join(dir, "corrupt.gz")
	os.WriteFile(corrupt, []byte("not gzip"), 0o644)
	if _, err := LoadFile(corrupt); err == nil {
		t.Errorf("expected an error for a corrupt archive")
	}
}

func TestFrameImage(t *testing.T) {
	pixels := []uint32{0xFFFFFF, 0x000000, 0xCCCCCC, 0x123456}

	img := FrameImage(pixels, 2, 2, 1)
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Fatalf("expected 2x2 image, got %v", img.Bounds())
	}
	if got := img.RGBAAt(1, 1); got != (color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xFF}) {
		t.Errorf("unexpected colour %v", got)
	}

	scaled := FrameImage(pixels, 2, 2, 3)
	if scaled.Bounds().Dx() != 6 || scaled.Bounds().Dy() != 6 {
		t.Fatalf("expected 6x6 image, got %v", scaled.Bounds())
	}
	for _, p := range [][2]int{{0, 0}, {2, 2}} {
		if got := scaled.RGBAAt(p[0], p[1]); got != (color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}) {
			t.Errorf("%v: expected white, got %v", p, got)
		}
	}
	if got := scaled.RGBAAt(5, 5); got != (color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xFF}) {
		t.Errorf("expected scaled corner to keep its colour, got %v", got)
	}

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := SavePNG(path, scaled); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Bounds() != scaled.Bounds() {
		t.Errorf("expected %v, got %v", scaled.Bounds(), decoded.Bounds())
	}
}

func TestClamp(t *testing.T) {
	if Clamp(1, 0, 16) != 1 || Clamp(1, 20, 16) != 16 || Clamp(1, 4, 16) != 4 {
		t.Errorf("unexpected clamp result")
	}
}
