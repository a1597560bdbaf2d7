package mosaic

import (
	"image"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/allape/gogger"
	"go.uber.org/multierr"

	"github.com/ironsheep/mosaic/internal/imaging"
)

var sliceLog = gogger.New("mosaic.slice")

// Filename mask placeholders.
const (
	PlaceholderName      = "{name}"
	PlaceholderWidth     = "{width}"
	PlaceholderHeight    = "{height}"
	PlaceholderExtension = "{extension}"
)

// DefaultMask names tiles like "photo-2-3.png".
const DefaultMask = PlaceholderName + "-" + PlaceholderWidth + "-" + PlaceholderHeight + "." + PlaceholderExtension

// SliceOptions configures Slicer.Slice.
type SliceOptions struct {
	// Source is the image to cut.
	Source string

	// Columns (horizontal blocks) and Rows (vertical blocks).
	Columns int
	Rows    int

	// OutputDir receives the tiles. Empty means the working directory.
	OutputDir string

	// Mask is the tile filename template. Empty means DefaultMask.
	Mask string
}

// Validate checks the options that can be checked against a source of
// width x height pixels, reporting every problem at once.
func (o SliceOptions) Validate(width, height int) error {
	var err error
	if o.Columns < 1 || o.Columns > width {
		err = multierr.Append(err, invalidParameter("invalid width value %d: must be between 1 and %d", o.Columns, width))
	}
	if o.Rows < 1 || o.Rows > height {
		err = multierr.Append(err, invalidParameter("invalid height value %d: must be between 1 and %d", o.Rows, height))
	}
	if o.OutputDir != "" {
		if st, sErr := os.Stat(o.OutputDir); sErr != nil || !st.IsDir() {
			err = multierr.Append(err, invalidParameter("invalid output directory %s", o.OutputDir))
		}
	}
	if o.Mask != "" && strings.TrimSpace(o.Mask) == "" {
		err = multierr.Append(err, invalidParameter("invalid mask %q", o.Mask))
	}
	return err
}

// SliceResult describes the tiles written by Slicer.Slice.
type SliceResult struct {
	// Grid holds tile names relative to the output directory.
	Grid Grid `json:"map"`

	// Files holds the paths the tiles were written to, row-major.
	Files []string `json:"files"`

	TileWidth  int `json:"tile_width"`
	TileHeight int `json:"tile_height"`
}

// Slicer cuts one image into a grid of equally sized tiles.
type Slicer struct {
	lib imaging.Library
}

// NewSlicer returns a Slicer using lib for decoding, cropping and encoding.
func NewSlicer(lib imaging.Library) *Slicer {
	return &Slicer{lib: lib}
}

// Slice cuts o.Source into o.Columns x o.Rows tiles and saves each one.
//
// Tiles are floor(width/Columns) x floor(height/Rows) pixels; remainder
// pixels on the right and bottom edges are dropped.
func (s *Slicer) Slice(o SliceOptions) (*SliceResult, error) {
	if _, err := os.Stat(o.Source); err != nil {
		return nil, fileNotFound("file %s not found", o.Source)
	}
	src, err := s.lib.Open(o.Source)
	if err != nil {
		return nil, ioFailure(err, "failed to open %s", o.Source)
	}
	w, h := imaging.Size(src)
	if err := o.Validate(w, h); err != nil {
		return nil, err
	}

	mask := o.Mask
	if mask == "" {
		mask = DefaultMask
	}
	blockWidth := w / o.Columns
	blockHeight := h / o.Rows
	sliceLog.Verbose().Println("slicing", o.Source, w, "x", h, "into", o.Columns, "x", o.Rows, "tiles of", blockWidth, "x", blockHeight)

	res := &SliceResult{
		Grid:       make(Grid, o.Rows),
		Files:      make([]string, 0, o.Columns*o.Rows),
		TileWidth:  blockWidth,
		TileHeight: blockHeight,
	}
	for yy := 0; yy < o.Rows; yy++ {
		res.Grid[yy] = make([]string, o.Columns)
		for xx := 0; xx < o.Columns; xx++ {
			name := TileName(mask, o.Source, xx+1, yy+1)
			out := name
			if o.OutputDir != "" {
				out = filepath.Join(o.OutputDir, name)
			}
			rect := image.Rect(xx*blockWidth, yy*blockHeight, (xx+1)*blockWidth, (yy+1)*blockHeight)
			if err := s.lib.Save(s.lib.Crop(src, rect), out); err != nil {
				return nil, ioFailure(err, "failed to write tile %s", out)
			}
			sliceLog.Verbose().Println("wrote", out)
			res.Grid[yy][xx] = name
			res.Files = append(res.Files, out)
		}
	}
	return res, nil
}

// Preview checks o like Slice does and returns the source with the cut lines
// drawn in lineColor, labelling each tile with its column and row. No tile is
// written; o.Mask is ignored.
func (s *Slicer) Preview(o SliceOptions, lineColor string, labels bool) (image.Image, error) {
	c, err := imaging.ParseColor(lineColor)
	if err != nil {
		return nil, invalidParameter("invalid line color %s", lineColor)
	}
	if _, err := os.Stat(o.Source); err != nil {
		return nil, fileNotFound("file %s not found", o.Source)
	}
	src, err := s.lib.Open(o.Source)
	if err != nil {
		return nil, ioFailure(err, "failed to open %s", o.Source)
	}
	w, h := imaging.Size(src)
	o.Mask = ""
	if err := o.Validate(w, h); err != nil {
		return nil, err
	}
	return imaging.SliceOverlay(src, o.Columns, o.Rows, c, labels), nil
}

// TileName expands mask for the tile at 1-based column col and row row of
// source. {name} is the base name without extension, {extension} is what
// follows the last dot.
func TileName(mask, source string, col, row int) string {
	base := filepath.Base(source)
	name, ext := base, ""
	if i := strings.LastIndex(base, "."); i >= 0 {
		name, ext = base[:i], base[i+1:]
	}
	r := strings.NewReplacer(
		PlaceholderName, name,
		PlaceholderWidth, strconv.Itoa(col),
		PlaceholderHeight, strconv.Itoa(row),
		PlaceholderExtension, ext,
	)
	return r.Replace(mask)
}

// WriteSliceMap writes g as DefaultMapName into dir (the working directory
// when dir is empty) and returns the map path.
func WriteSliceMap(g Grid, dir string) (string, error) {
	path := filepath.Join(dir, DefaultMapName)
	if err := WriteMap(path, g); err != nil {
		return "", err
	}
	return path, nil
}
