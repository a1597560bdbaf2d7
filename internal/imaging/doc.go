// Package imaging is the image library boundary for mosaic.
//
// Every pixel operation performed by the slicer and the stitcher goes through
// the Library interface defined here: decoding a file, cropping, resizing,
// creating a filled canvas, pasting one image onto another and encoding the
// result back to disk. Two backends are provided:
//
//   - "imaging": github.com/disintegration/imaging (the default)
//   - "bild":    github.com/anthonynsimon/bild
//
// Both backends return images whose bounds start at (0,0), so callers can
// reason about sizes with Bounds().Dx() and Bounds().Dy() alone.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner:
//   - X increases rightward
//   - Y increases downward
//   - Rectangles are half-open: Min is inclusive, Max is exclusive
//
// # Formats
//
// Decoders for PNG, JPEG, GIF, BMP, TIFF and WebP are registered on import.
// Encoding is chosen from the output file extension; WebP cannot be written.
//
// # Colors
//
// ParseColor accepts the short "#RGB" and long "#RRGGBB" hex forms only.
// Alpha is always fully opaque.
package imaging
