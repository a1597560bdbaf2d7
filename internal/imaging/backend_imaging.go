package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
)

// ImagingLibrary implements Library on top of github.com/disintegration/imaging.
type ImagingLibrary struct {
	// Filter is the resampling filter used by Resize.
	Filter imaging.ResampleFilter
}

// NewImagingLibrary returns an ImagingLibrary resampling with Lanczos.
func NewImagingLibrary() *ImagingLibrary {
	return &ImagingLibrary{Filter: imaging.Lanczos}
}

// Name implements Library.
func (l *ImagingLibrary) Name() string { return "imaging" }

// Open implements Library.
func (l *ImagingLibrary) Open(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	return img, nil
}

// Save implements Library.
func (l *ImagingLibrary) Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image %s: %w", path, err)
	}
	return nil
}

// Crop implements Library.
func (l *ImagingLibrary) Crop(img image.Image, rect image.Rectangle) image.Image {
	return imaging.Crop(img, rect)
}

// Resize implements Library.
func (l *ImagingLibrary) Resize(img image.Image, width, height int) image.Image {
	return imaging.Resize(img, width, height, l.Filter)
}

// New implements Library.
func (l *ImagingLibrary) New(width, height int, fill color.Color) image.Image {
	return imaging.New(width, height, fill)
}

// Paste implements Library. src is blended over dst. When dst is an
// *image.NRGBA (what New returns) it is drawn into in place; any other dst
// is copied once by imaging.Overlay.
func (l *ImagingLibrary) Paste(dst, src image.Image, pt image.Point) image.Image {
	canvas, ok := dst.(*image.NRGBA)
	if !ok || canvas.Bounds().Min != (image.Point{}) {
		return imaging.Overlay(dst, src, pt, 1.0)
	}
	sb := src.Bounds()
	r := image.Rectangle{Min: pt, Max: pt.Add(sb.Size())}
	draw.Draw(canvas, r, src, sb.Min, draw.Over)
	return canvas
}
