package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// createInMemoryImage creates an in-memory test image
func createInMemoryImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createPatternImage creates an image with different colors in each quadrant
func createPatternImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			if x < width/2 && y < height/2 {
				c = color.RGBA{255, 0, 0, 255} // Red top-left
			} else if x >= width/2 && y < height/2 {
				c = color.RGBA{0, 255, 0, 255} // Green top-right
			} else if x < width/2 && y >= height/2 {
				c = color.RGBA{0, 0, 255, 255} // Blue bottom-left
			} else {
				c = color.RGBA{255, 255, 255, 255} // White bottom-right
			}
			img.Set(x, y, c)
		}
	}
	return img
}

// createTestImage writes a solid PNG into a temp dir and returns its path.
func createTestImage(t *testing.T, width, height int, c color.Color) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test-image.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, createInMemoryImage(width, height, c)); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

func sameRGB(a, b color.Color) bool {
	ar, ag, ab, _ := a.RGBA()
	br, bg, bb, _ := b.RGBA()
	return ar>>8 == br>>8 && ag>>8 == bg>>8 && ab>>8 == bb>>8
}

func allLibraries(t *testing.T) []Library {
	t.Helper()
	var libs []Library
	for _, name := range Backends() {
		lib, err := NewLibrary(name)
		if err != nil {
			t.Fatalf("NewLibrary(%q) failed: %v", name, err)
		}
		libs = append(libs, lib)
	}
	return libs
}

func TestNewLibrary(t *testing.T) {
	tests := []struct {
		name     string
		wantName string
		wantErr  bool
	}{
		{"", "imaging", false},
		{"imaging", "imaging", false},
		{"bild", "bild", false},
		{" BILD ", "bild", false},
		{"vips", "", true},
	}

	for _, tt := range tests {
		lib, err := NewLibrary(tt.name)
		if tt.wantErr {
			if err == nil {
				t.Errorf("NewLibrary(%q) should fail", tt.name)
			}
			continue
		}
		if err != nil {
			t.Fatalf("NewLibrary(%q) failed: %v", tt.name, err)
		}
		if lib.Name() != tt.wantName {
			t.Errorf("NewLibrary(%q).Name(): got %s, want %s", tt.name, lib.Name(), tt.wantName)
		}
	}

	if got := Backends(); !reflect.DeepEqual(got, []string{"bild", "imaging"}) {
		t.Errorf("Backends: got %v", got)
	}
}

func TestLibrary_Crop(t *testing.T) {
	img := createPatternImage(100, 100)

	for _, lib := range allLibraries(t) {
		t.Run(lib.Name(), func(t *testing.T) {
			got := lib.Crop(img, image.Rect(50, 0, 100, 50))
			b := got.Bounds()
			if b.Min != (image.Point{}) {
				t.Errorf("bounds should start at origin, got %v", b.Min)
			}
			if b.Dx() != 50 || b.Dy() != 50 {
				t.Errorf("dimensions: got %dx%d, want 50x50", b.Dx(), b.Dy())
			}
			if c := got.At(10, 10); !sameRGB(c, color.RGBA{0, 255, 0, 255}) {
				t.Errorf("pixel: got %v, want green", c)
			}
		})

		t.Run(lib.Name()+"/clamped", func(t *testing.T) {
			got := lib.Crop(img, image.Rect(80, 90, 200, 200))
			if w, h := Size(got); w != 20 || h != 10 {
				t.Errorf("dimensions: got %dx%d, want 20x10", w, h)
			}
		})
	}
}

func TestLibrary_Resize(t *testing.T) {
	img := createPatternImage(100, 40)

	for _, lib := range allLibraries(t) {
		t.Run(lib.Name(), func(t *testing.T) {
			got := lib.Resize(img, 30, 70)
			if w, h := Size(got); w != 30 || h != 70 {
				t.Errorf("dimensions: got %dx%d, want 30x70", w, h)
			}
		})
	}
}

func TestLibrary_NewAndPaste(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}

	for _, lib := range allLibraries(t) {
		t.Run(lib.Name(), func(t *testing.T) {
			canvas := lib.New(20, 10, red)
			if w, h := Size(canvas); w != 20 || h != 10 {
				t.Fatalf("canvas: got %dx%d, want 20x10", w, h)
			}

			out := lib.Paste(canvas, createInMemoryImage(5, 5, blue), image.Pt(10, 2))

			checks := []struct {
				x, y int
				want color.Color
			}{
				{0, 0, red},
				{9, 2, red},
				{10, 2, blue},
				{14, 6, blue},
				{15, 6, red},
				{14, 7, red},
			}
			for _, c := range checks {
				if got := out.At(c.x, c.y); !sameRGB(got, c.want) {
					t.Errorf("pixel (%d,%d): got %v, want %v", c.x, c.y, got, c.want)
				}
			}
		})
	}
}

func TestLibrary_PasteClipsAtEdge(t *testing.T) {
	for _, lib := range allLibraries(t) {
		t.Run(lib.Name(), func(t *testing.T) {
			canvas := lib.New(10, 10, color.Black)
			out := lib.Paste(canvas, createInMemoryImage(8, 8, color.White), image.Pt(6, 6))
			if w, h := Size(out); w != 10 || h != 10 {
				t.Errorf("dimensions changed: %dx%d", w, h)
			}
			if !sameRGB(out.At(9, 9), color.White) {
				t.Errorf("corner: got %v, want white", out.At(9, 9))
			}
		})
	}
}

func TestLibrary_PasteBlendsOver(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	transparent := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	half := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			half.Set(x, y, color.NRGBA{0, 0, 255, 128})
		}
	}

	for _, lib := range allLibraries(t) {
		t.Run(lib.Name(), func(t *testing.T) {
			canvas := lib.New(10, 10, red)
			out := lib.Paste(canvas, transparent, image.Pt(1, 1))
			out = lib.Paste(out, half, image.Pt(5, 5))

			got := out.At(2, 2)
			if _, _, _, a := got.RGBA(); !sameRGB(got, red) || a>>8 != 255 {
				t.Errorf("transparent tile: got %v, want opaque red", got)
			}

			r, g, b, a := out.At(6, 6).RGBA()
			if a>>8 != 255 {
				t.Errorf("half transparent tile: alpha %d, want 255", a>>8)
			}
			if r>>8 < 100 || r>>8 > 160 || g>>8 != 0 || b>>8 < 100 || b>>8 > 160 {
				t.Errorf("half transparent tile: got %d,%d,%d, want a red/blue mix", r>>8, g>>8, b>>8)
			}
		})
	}
}

func TestLibrary_PasteInPlace(t *testing.T) {
	for _, lib := range allLibraries(t) {
		t.Run(lib.Name(), func(t *testing.T) {
			canvas := lib.New(10, 10, color.Black)
			out := lib.Paste(canvas, createInMemoryImage(2, 2, color.White), image.Pt(3, 3))
			if out != canvas {
				t.Error("pasting onto a canvas from New should not copy it")
			}
			if !sameRGB(canvas.At(3, 3), color.White) {
				t.Errorf("canvas (3,3): got %v, want white", canvas.At(3, 3))
			}
		})
	}
}

func TestLibrary_SaveOpen(t *testing.T) {
	img := createPatternImage(16, 12)

	for _, lib := range allLibraries(t) {
		for _, ext := range []string{".png", ".jpg", ".gif", ".bmp", ".tiff"} {
			t.Run(lib.Name()+ext, func(t *testing.T) {
				path := filepath.Join(t.TempDir(), "out"+ext)
				if err := lib.Save(img, path); err != nil {
					t.Fatalf("Save failed: %v", err)
				}
				got, err := lib.Open(path)
				if err != nil {
					t.Fatalf("Open failed: %v", err)
				}
				if w, h := Size(got); w != 16 || h != 12 {
					t.Errorf("dimensions: got %dx%d, want 16x12", w, h)
				}
			})
		}
	}
}

func TestLibrary_Errors(t *testing.T) {
	dir := t.TempDir()

	for _, lib := range allLibraries(t) {
		t.Run(lib.Name(), func(t *testing.T) {
			if _, err := lib.Open(filepath.Join(dir, "missing.png")); err == nil {
				t.Error("Open should fail for missing file")
			}
			if err := lib.Save(createInMemoryImage(2, 2, color.White), filepath.Join(dir, "out.xyz")); err == nil {
				t.Error("Save should fail for unknown extension")
			}
			if err := lib.Save(createInMemoryImage(2, 2, color.White), filepath.Join(dir, "no", "such", "dir.png")); err == nil {
				t.Error("Save should fail for missing directory")
			}
		})
	}
}
