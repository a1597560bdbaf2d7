package mosaic

import (
	"image"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/allape/gogger"
	"go.uber.org/multierr"

	"github.com/ironsheep/mosaic/internal/imaging"
)

var stitchLog = gogger.New("mosaic.stitch")

// FitStrategy decides how a tile whose size differs from the cell is made to
// fit. The numeric values are the codes accepted on the command line.
type FitStrategy int

const (
	// FitCrop keeps the top-left cell-sized region of the tile.
	FitCrop FitStrategy = 1

	// FitResize stretches the tile to the cell size, ignoring aspect ratio.
	FitResize FitStrategy = 2
)

// DefaultFitStrategy is used when no strategy is given.
const DefaultFitStrategy = FitResize

func (f FitStrategy) String() string {
	switch f {
	case FitCrop:
		return "crop"
	case FitResize:
		return "resize"
	}
	return "FitStrategy(" + strconv.Itoa(int(f)) + ")"
}

// Valid reports whether f is FitCrop or FitResize.
func (f FitStrategy) Valid() bool {
	return f == FitCrop || f == FitResize
}

// ParseFitStrategy accepts a numeric code ("1", "2") or a name ("crop",
// "resize").
func ParseFitStrategy(s string) (FitStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "crop":
		return FitCrop, nil
	case "2", "resize":
		return FitResize, nil
	}
	return 0, invalidParameter("invalid fitting strategy %s", s)
}

// StitchOptions configures Stitcher.Stitch. Zero values of Background,
// BorderColor and Strategy take their defaults.
type StitchOptions struct {
	// Output is the image file to write; its extension selects the format.
	Output string

	HorizontalGap int
	VerticalGap   int

	// Background fills the canvas, the gaps and the padding around small tiles.
	Background string

	BorderColor string
	BorderWidth int

	Strategy FitStrategy

	// CellWidth and CellHeight override the derived cell size when > 0.
	CellWidth  int
	CellHeight int
}

func (o StitchOptions) withDefaults() StitchOptions {
	if o.Background == "" {
		o.Background = imaging.White
	}
	if o.BorderColor == "" {
		o.BorderColor = imaging.White
	}
	if o.Strategy == 0 {
		o.Strategy = DefaultFitStrategy
	}
	return o
}

// Validate reports every problem with o at once. Defaults are applied first.
func (o StitchOptions) Validate() error {
	var err error
	if o.Output == "" {
		err = invalidParameter("invalid output file %q", o.Output)
	}
	return multierr.Append(err, o.validateLayout())
}

// validateLayout checks everything but the output path.
func (o StitchOptions) validateLayout() error {
	o = o.withDefaults()
	var err error
	if o.HorizontalGap < 0 {
		err = multierr.Append(err, invalidParameter("invalid horizontal gap %d", o.HorizontalGap))
	}
	if o.VerticalGap < 0 {
		err = multierr.Append(err, invalidParameter("invalid vertical gap %d", o.VerticalGap))
	}
	if !imaging.IsValidColor(o.Background) {
		err = multierr.Append(err, invalidParameter("invalid background color %s", o.Background))
	}
	if !imaging.IsValidColor(o.BorderColor) {
		err = multierr.Append(err, invalidParameter("invalid border color %s", o.BorderColor))
	}
	if o.BorderWidth < 0 {
		err = multierr.Append(err, invalidParameter("invalid border width %d", o.BorderWidth))
	}
	if !o.Strategy.Valid() {
		err = multierr.Append(err, invalidParameter("invalid fitting strategy %d", int(o.Strategy)))
	}
	if o.CellWidth < 0 {
		err = multierr.Append(err, invalidParameter("invalid cell width %d", o.CellWidth))
	}
	if o.CellHeight < 0 {
		err = multierr.Append(err, invalidParameter("invalid cell height %d", o.CellHeight))
	}
	return err
}

// layout builds the geometry for g with the largest tile size maxW x maxH.
func (o StitchOptions) layout(g Grid, maxW, maxH int) Layout {
	l := Layout{
		Columns:       g.Columns(),
		Rows:          g.Rows(),
		CellWidth:     maxW,
		CellHeight:    maxH,
		BorderWidth:   o.BorderWidth,
		HorizontalGap: o.HorizontalGap,
		VerticalGap:   o.VerticalGap,
	}
	if o.CellWidth > 0 {
		l.CellWidth = o.CellWidth
	}
	if o.CellHeight > 0 {
		l.CellHeight = o.CellHeight
	}
	return l
}

// StitchResult describes the image written by Stitcher.Stitch.
type StitchResult struct {
	Output string `json:"output"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Layout Layout `json:"layout"`
}

// Stitcher composites a grid of tiles into one image.
type Stitcher struct {
	lib imaging.Library
}

// NewStitcher returns a Stitcher using lib for every pixel operation.
func NewStitcher(lib imaging.Library) *Stitcher {
	return &Stitcher{lib: lib}
}

// check validates the options (optErr) and the grid shape, then makes sure
// every tile exists.
func (s *Stitcher) check(g Grid, optErr error) error {
	if err := multierr.Combine(optErr, g.Validate()); err != nil {
		return err
	}
	var err error
	for _, row := range g {
		for _, item := range row {
			if _, sErr := os.Stat(item); sErr != nil {
				err = multierr.Append(err, fileNotFound("file %s not found", item))
			}
		}
	}
	return err
}

// Plan validates g and o and computes the layout from image headers only.
// Nothing is decoded in full and nothing is written, so o.Output may be empty.
func (s *Stitcher) Plan(g Grid, o StitchOptions) (*Layout, error) {
	o = o.withDefaults()
	if err := s.check(g, o.validateLayout()); err != nil {
		return nil, err
	}
	maxW, maxH := 0, 0
	for _, row := range g {
		for _, item := range row {
			dim, err := imaging.Dimensions(item)
			if err != nil {
				return nil, ioFailure(err, "failed to read %s", item)
			}
			maxW = max(maxW, dim.Width)
			maxH = max(maxH, dim.Height)
		}
	}
	l := o.layout(g, maxW, maxH)
	return &l, nil
}

// Stitch decodes every tile of g, fits each one into a uniform cell and
// writes the composite to o.Output.
//
// The cell is as wide as the widest tile and as tall as the tallest tile
// unless o overrides it. Each cell is optionally framed by a border, and
// cells are separated by the horizontal and vertical gaps.
func (s *Stitcher) Stitch(g Grid, o StitchOptions) (*StitchResult, error) {
	o = o.withDefaults()
	if err := s.check(g, o.Validate()); err != nil {
		return nil, err
	}
	bg, err := imaging.ParseColor(o.Background)
	if err != nil {
		return nil, invalidParameter("invalid background color %s", o.Background)
	}
	border, err := imaging.ParseColor(o.BorderColor)
	if err != nil {
		return nil, invalidParameter("invalid border color %s", o.BorderColor)
	}

	tiles := make([][]image.Image, len(g))
	maxW, maxH := 0, 0
	for y, row := range g {
		tiles[y] = make([]image.Image, len(row))
		for x, item := range row {
			img, err := s.lib.Open(item)
			if err != nil {
				return nil, ioFailure(err, "failed to open %s", item)
			}
			w, h := imaging.Size(img)
			maxW = max(maxW, w)
			maxH = max(maxH, h)
			tiles[y][x] = img
		}
	}

	l := o.layout(g, maxW, maxH)
	width, height := l.CanvasSize()
	totalW, totalH := l.TotalCellSize()
	stitchLog.Verbose().Println("canvas", width, "x", height, "cell", l.CellWidth, "x", l.CellHeight, "strategy", o.Strategy)

	canvas := s.lib.New(width, height, bg)
	for yy := 0; yy < l.Rows; yy++ {
		for xx := 0; xx < l.Columns; xx++ {
			block := FitTile(s.lib, tiles[yy][xx], l.CellWidth, l.CellHeight, o.Strategy, bg)
			if l.BorderWidth > 0 {
				framed := s.lib.New(totalW, totalH, border)
				block = s.lib.Paste(framed, block, image.Pt(l.BorderWidth, l.BorderWidth))
			}
			canvas = s.lib.Paste(canvas, block, l.CellOrigin(xx, yy))
		}
	}

	if err := s.lib.Save(canvas, o.Output); err != nil {
		return nil, ioFailure(err, "failed to write %s", o.Output)
	}
	stitchLog.Verbose().Println("wrote", o.Output)

	return &StitchResult{
		Output: o.Output,
		Width:  width,
		Height: height,
		Layout: l,
	}, nil
}

// FitTile reconciles tile with a cellW x cellH cell.
//
// A tile whose size differs from the cell along either axis goes through the
// strategy first: FitResize stretches it to exactly the cell, FitCrop keeps
// the top-left cell-sized region (clamped to the tile). Smaller tiles are
// stretched too under FitResize, not only centered. A zero strategy means
// DefaultFitStrategy; an unknown one leaves the tile as is. If the result is
// then smaller than the cell along either axis it is centered on a bg patch
// of the cell size, the odd pixel going to the bottom/right. The result is
// not clamped again, so a dimension left larger than the cell stays larger.
func FitTile(lib imaging.Library, tile image.Image, cellW, cellH int, strategy FitStrategy, bg color.Color) image.Image {
	if strategy == 0 {
		strategy = DefaultFitStrategy
	}
	w, h := imaging.Size(tile)
	if w != cellW || h != cellH {
		switch strategy {
		case FitResize:
			tile = lib.Resize(tile, cellW, cellH)
		case FitCrop:
			min := tile.Bounds().Min
			tile = lib.Crop(tile, image.Rectangle{Min: min, Max: min.Add(image.Pt(cellW, cellH))})
		default:
			stitchLog.Warn().Println("unknown fit strategy", int(strategy), "leaving tile unchanged")
		}
	}

	w, h = imaging.Size(tile)
	sx, sy := cellW-w, cellH-h
	if sx > 0 || sy > 0 {
		patch := lib.New(cellW, cellH, bg)
		tile = lib.Paste(patch, tile, image.Pt(sx>>1, sy>>1))
	}
	return tile
}
