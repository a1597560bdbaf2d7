package imaging

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"sort"
	"strings"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Library is the set of primitives mosaic needs from an image library.
//
// Implementations must return images whose bounds start at (0,0). Crop clamps
// the requested rectangle to the source bounds, so the result may be smaller
// than asked for. Paste may draw into dst in place or return a new image; the
// caller always continues with the returned value.
type Library interface {
	// Name identifies the backend ("imaging" or "bild").
	Name() string

	// Open decodes the image stored at path.
	Open(path string) (image.Image, error)

	// Save encodes img to path. The format is taken from the extension.
	Save(img image.Image, path string) error

	// Crop extracts rect from img.
	Crop(img image.Image, rect image.Rectangle) image.Image

	// Resize stretches img to exactly width x height, ignoring aspect ratio.
	Resize(img image.Image, width, height int) image.Image

	// New creates a width x height canvas filled with fill.
	New(width, height int, fill color.Color) image.Image

	// Paste blends src over dst with src's top-left corner at pt. Transparent
	// src pixels leave dst showing through.
	Paste(dst, src image.Image, pt image.Point) image.Image
}

// DefaultBackend is the backend used when none is configured.
const DefaultBackend = "imaging"

var backends = map[string]func() Library{
	"imaging": func() Library { return NewImagingLibrary() },
	"bild":    func() Library { return NewBildLibrary() },
}

// NewLibrary returns the backend registered under name. An empty name selects
// DefaultBackend.
func NewLibrary(name string) (Library, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultBackend
	}
	ctor, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown image backend %q (available: %s)", name, strings.Join(Backends(), ", "))
	}
	return ctor(), nil
}

// Backends lists the registered backend names in sorted order.
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
