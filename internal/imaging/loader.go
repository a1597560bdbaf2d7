package imaging

import (
	"fmt"
	"image"
	"os"
)

// DimensionsResult contains the width and height of an image.
type DimensionsResult struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the decoder name reported by the image package ("png", "jpeg", ...).
	Format string `json:"format"`
}

// Dimensions reads only the image header at path and returns its size.
//
// This is much cheaper than Library.Open for large files, because no pixel
// data is decoded. It is used to plan a layout before committing to a full
// stitch.
//
// # Errors
//
//   - Returns an error wrapping os.ErrNotExist if the file does not exist
//   - Returns an error if the header is not a registered image format
func Dimensions(path string) (*DimensionsResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read image header %s: %w", path, err)
	}

	return &DimensionsResult{
		Width:  cfg.Width,
		Height: cfg.Height,
		Format: format,
	}, nil
}

// Size returns the width and height of img.
func Size(img image.Image) (int, int) {
	b := img.Bounds()
	return b.Dx(), b.Dy()
}
