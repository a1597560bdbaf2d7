package mosaic

import (
	"image"
	"testing"
)

func TestLayoutCanvasSize(t *testing.T) {
	tests := []struct {
		name          string
		layout        Layout
		width, height int
	}{
		{
			name:   "uniform 2x2 no gap no border",
			layout: Layout{Columns: 2, Rows: 2, CellWidth: 10, CellHeight: 10},
			width:  20, height: 20,
		},
		{
			name:   "2x2 gap 5 border 2",
			layout: Layout{Columns: 2, Rows: 2, CellWidth: 10, CellHeight: 10, BorderWidth: 2, HorizontalGap: 5, VerticalGap: 5},
			width:  33, height: 33,
		},
		{
			name:   "single cell ignores gaps",
			layout: Layout{Columns: 1, Rows: 1, CellWidth: 7, CellHeight: 3, HorizontalGap: 100, VerticalGap: 100},
			width:  7, height: 3,
		},
		{
			name:   "3x1 with gap",
			layout: Layout{Columns: 3, Rows: 1, CellWidth: 10, CellHeight: 20, HorizontalGap: 1, VerticalGap: 9},
			width:  32, height: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := tt.layout.CanvasSize()
			if w != tt.width || h != tt.height {
				t.Errorf("got %dx%d, want %dx%d", w, h, tt.width, tt.height)
			}
		})
	}
}

func TestLayoutCellOrigin(t *testing.T) {
	l := Layout{Columns: 3, Rows: 2, CellWidth: 10, CellHeight: 8, BorderWidth: 1, HorizontalGap: 4, VerticalGap: 2}

	tests := []struct {
		col, row int
		want     image.Point
	}{
		{0, 0, image.Pt(0, 0)},
		{1, 0, image.Pt(16, 0)},
		{2, 1, image.Pt(32, 12)},
	}
	for _, tt := range tests {
		if got := l.CellOrigin(tt.col, tt.row); got != tt.want {
			t.Errorf("CellOrigin(%d,%d): got %v, want %v", tt.col, tt.row, got, tt.want)
		}
	}

	tw, th := l.TotalCellSize()
	if tw != 12 || th != 10 {
		t.Errorf("TotalCellSize: got %dx%d, want 12x10", tw, th)
	}
}
