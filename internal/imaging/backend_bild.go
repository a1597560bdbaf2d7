package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/tiff"
)

// BildLibrary implements Library on top of github.com/anthonynsimon/bild.
//
// Paste blends into dst in place when dst is already an *image.RGBA (which is
// what New returns).
type BildLibrary struct {
	// Filter is the resampling filter used by Resize.
	Filter transform.ResampleFilter

	// JPEGQuality is used when saving .jpg/.jpeg files.
	JPEGQuality int
}

// NewBildLibrary returns a BildLibrary resampling with Lanczos.
func NewBildLibrary() *BildLibrary {
	return &BildLibrary{Filter: transform.Lanczos, JPEGQuality: 95}
}

// Name implements Library.
func (l *BildLibrary) Name() string { return "bild" }

// Open implements Library.
func (l *BildLibrary) Open(path string) (image.Image, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	return img, nil
}

// Save implements Library.
func (l *BildLibrary) Save(img image.Image, path string) error {
	enc, err := l.encoderFor(path)
	if err != nil {
		return err
	}
	if err := imgio.Save(path, img, enc); err != nil {
		return fmt.Errorf("failed to save image %s: %w", path, err)
	}
	return nil
}

func (l *BildLibrary) encoderFor(path string) (imgio.Encoder, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return imgio.PNGEncoder(), nil
	case ".jpg", ".jpeg":
		return imgio.JPEGEncoder(l.JPEGQuality), nil
	case ".bmp":
		return imgio.BMPEncoder(), nil
	case ".gif":
		return func(w io.Writer, img image.Image) error {
			return gif.Encode(w, img, nil)
		}, nil
	case ".tif", ".tiff":
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		}, nil
	default:
		return nil, fmt.Errorf("unsupported output format for %s", path)
	}
}

// Crop implements Library.
func (l *BildLibrary) Crop(img image.Image, rect image.Rectangle) image.Image {
	return rebase(transform.Crop(img, rect))
}

// Resize implements Library.
func (l *BildLibrary) Resize(img image.Image, width, height int) image.Image {
	return transform.Resize(img, width, height, l.Filter)
}

// New implements Library.
func (l *BildLibrary) New(width, height int, fill color.Color) image.Image {
	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: fill}, image.Point{}, draw.Src)
	return canvas
}

// Paste implements Library.
func (l *BildLibrary) Paste(dst, src image.Image, pt image.Point) image.Image {
	canvas, ok := dst.(*image.RGBA)
	if !ok {
		canvas = rebase(clone.AsRGBA(dst))
	}
	sb := src.Bounds()
	r := image.Rectangle{Min: pt, Max: pt.Add(sb.Size())}
	draw.Draw(canvas, r, src, sb.Min, draw.Over)
	return canvas
}

// rebase moves img so its bounds start at (0,0). bild keeps the source
// offset after cropping a sub-image.
func rebase(img *image.RGBA) *image.RGBA {
	b := img.Bounds()
	if b.Min == (image.Point{}) {
		return img
	}
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}
