package mosaic

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ironsheep/mosaic/internal/imaging"
)

// createSolidImage writes a width x height PNG filled with c into dir and
// returns its path.
func createSolidImage(t *testing.T, dir, name string, width, height int, c color.Color) string {
	t.Helper()
	return writePNG(t, filepath.Join(dir, name), solidRGBA(width, height, c))
}

func solidRGBA(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createPatternImage writes a PNG with different colors in each quadrant:
// red top-left, green top-right, blue bottom-left, white bottom-right.
func createPatternImage(t *testing.T, dir, name string, width, height int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			if x < width/2 && y < height/2 {
				c = color.RGBA{255, 0, 0, 255}
			} else if x >= width/2 && y < height/2 {
				c = color.RGBA{0, 255, 0, 255}
			} else if x < width/2 && y >= height/2 {
				c = color.RGBA{0, 0, 255, 255}
			} else {
				c = color.RGBA{255, 255, 255, 255}
			}
			img.Set(x, y, c)
		}
	}
	return writePNG(t, filepath.Join(dir, name), img)
}

func writePNG(t *testing.T, path string, img image.Image) string {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode %s: %v", path, err)
	}
	return path
}

// imageSize decodes only the header of path.
func imageSize(t *testing.T, path string) (int, int) {
	t.Helper()
	dim, err := imaging.Dimensions(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return dim.Width, dim.Height
}

func openImage(t *testing.T, lib imaging.Library, path string) image.Image {
	t.Helper()
	img, err := lib.Open(path)
	if err != nil {
		t.Fatalf("failed to open %s: %v", path, err)
	}
	return img
}

// testLibraries returns every registered backend so behavior is checked
// against each of them.
func testLibraries(t *testing.T) []imaging.Library {
	t.Helper()
	var libs []imaging.Library
	for _, name := range imaging.Backends() {
		lib, err := imaging.NewLibrary(name)
		if err != nil {
			t.Fatalf("NewLibrary(%q) failed: %v", name, err)
		}
		libs = append(libs, lib)
	}
	return libs
}

func sameRGB(a, b color.Color) bool {
	ar, ag, ab, _ := a.RGBA()
	br, bg, bb, _ := b.RGBA()
	return ar>>8 == br>>8 && ag>>8 == bg>>8 && ab>>8 == bb>>8
}

// requireKind fails unless err carries kind and its message contains want.
func requireKind(t *testing.T, err, kind error, want string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", kind)
	}
	if !errors.Is(err, kind) {
		t.Fatalf("expected %v error, got %v", kind, err)
	}
	if want != "" && !strings.Contains(err.Error(), want) {
		t.Errorf("error %q should mention %q", err.Error(), want)
	}
}
