package imaging

import (
	"image"
	"image/color"
	"image/draw"
	"strconv"
)

// SliceOverlay returns a copy of img with the cut lines of a cols x rows
// slice drawn in lineColor.
//
// Lines sit on the first pixel of every tile after the first along each axis,
// using the same floor(size/count) block size the slicer uses. The dropped
// remainder on the right and bottom edges is shaded. When labels is true each
// tile is tagged with its 1-based "column,row", which is also what ends up in
// the {width} and {height} placeholders of its file name.
func SliceOverlay(img image.Image, cols, rows int, lineColor color.Color, labels bool) *image.RGBA {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()

	result := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(result, result.Bounds(), img, b.Min, draw.Src)

	if cols < 1 || rows < 1 {
		return result
	}
	bw, bh := width/cols, height/rows
	if bw < 1 || bh < 1 {
		return result
	}

	// Remainder strips
	shade := image.NewUniform(color.RGBA{0, 0, 0, 128})
	if rx := bw * cols; rx < width {
		draw.Draw(result, image.Rect(rx, 0, width, height), shade, image.Point{}, draw.Over)
	}
	if ry := bh * rows; ry < height {
		draw.Draw(result, image.Rect(0, ry, bw*cols, height), shade, image.Point{}, draw.Over)
	}

	// Vertical lines
	for xx := 1; xx < cols; xx++ {
		x := xx * bw
		for y := 0; y < bh*rows; y++ {
			result.Set(x, y, lineColor)
		}
	}

	// Horizontal lines
	for yy := 1; yy < rows; yy++ {
		y := yy * bh
		for x := 0; x < bw*cols; x++ {
			result.Set(x, y, lineColor)
		}
	}

	if labels {
		fg := color.RGBA{255, 255, 255, 255}
		bg := color.RGBA{0, 0, 0, 180}
		for yy := 0; yy < rows; yy++ {
			for xx := 0; xx < cols; xx++ {
				label := strconv.Itoa(xx+1) + "," + strconv.Itoa(yy+1)
				if labelWidth(label) >= bw || labelHeight >= bh {
					continue
				}
				drawLabel(result, xx*bw+2, yy*bh+2, label, fg, bg)
			}
		}
	}

	return result
}

const (
	charWidth   = 4
	labelHeight = 7
)

func labelWidth(text string) int {
	return len(text) * charWidth
}

// drawLabel draws text with a 3x5 pixel font for digits and comma.
func drawLabel(img *image.RGBA, x, y int, text string, fg, bg color.RGBA) {
	glyphs := map[rune][]string{
		'0': {"111", "101", "101", "101", "111"},
		'1': {"010", "110", "010", "010", "111"},
		'2': {"111", "001", "111", "100", "111"},
		'3': {"111", "001", "111", "001", "111"},
		'4': {"101", "101", "111", "001", "001"},
		'5': {"111", "100", "111", "001", "111"},
		'6': {"111", "100", "111", "101", "111"},
		'7': {"111", "001", "001", "001", "001"},
		'8': {"111", "101", "111", "101", "111"},
		'9': {"111", "101", "111", "001", "111"},
		',': {"000", "000", "000", "010", "010"},
	}

	bounds := img.Bounds()
	inside := func(px, py int) bool {
		return image.Pt(px, py).In(bounds)
	}

	for dy := -1; dy < labelHeight; dy++ {
		for dx := -1; dx < labelWidth(text); dx++ {
			if px, py := x+dx, y+dy; inside(px, py) {
				img.Set(px, py, bg)
			}
		}
	}

	cx := x
	for _, ch := range text {
		glyph, ok := glyphs[ch]
		if !ok {
			cx += charWidth
			continue
		}
		for row, line := range glyph {
			for col, pixel := range line {
				if pixel != '1' {
					continue
				}
				if px, py := cx+col, y+row; inside(px, py) {
					img.Set(px, py, fg)
				}
			}
		}
		cx += charWidth
	}
}
