package mosaic

import "image"

// Layout is the geometry of a stitched mosaic.
type Layout struct {
	Columns       int `json:"columns"`
	Rows          int `json:"rows"`
	CellWidth     int `json:"cell_width"`
	CellHeight    int `json:"cell_height"`
	BorderWidth   int `json:"border_width"`
	HorizontalGap int `json:"horizontal_gap"`
	VerticalGap   int `json:"vertical_gap"`
}

// TotalCellSize is the cell size including the border on both sides.
func (l Layout) TotalCellSize() (int, int) {
	return l.CellWidth + 2*l.BorderWidth, l.CellHeight + 2*l.BorderWidth
}

// CanvasSize is the size of the output image.
func (l Layout) CanvasSize() (int, int) {
	tw, th := l.TotalCellSize()
	return span(l.Columns, tw, l.HorizontalGap), span(l.Rows, th, l.VerticalGap)
}

// CellOrigin is the top-left corner of cell (col, row) on the canvas,
// border included.
func (l Layout) CellOrigin(col, row int) image.Point {
	tw, th := l.TotalCellSize()
	return image.Pt(col*(tw+l.HorizontalGap), row*(th+l.VerticalGap))
}

// span is the extent of n cells of size cell separated by gap.
func span(n, cell, gap int) int {
	if n > 1 {
		return (n-1)*(cell+gap) + cell
	}
	return cell
}
