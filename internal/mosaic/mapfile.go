package mosaic

import (
	"path/filepath"

	"github.com/allape/gogger"
	"go.uber.org/multierr"
)

var mapLog = gogger.New("mosaic.map")

// MapOptions configures BuildMap.
type MapOptions struct {
	// Pattern is a filepath.Match glob, e.g. "tiles/*.png".
	Pattern string

	// Columns and Rows bound the grid. At most Columns*Rows files are used.
	Columns int
	Rows    int

	// Output is the map file to write.
	Output string
}

// Validate reports every problem with o at once.
func (o MapOptions) Validate() error {
	var err error
	if o.Pattern == "" {
		err = multierr.Append(err, invalidParameter("file mask is required"))
	} else if _, mErr := filepath.Match(o.Pattern, ""); mErr != nil {
		err = multierr.Append(err, invalidParameter("invalid file mask %s: %v", o.Pattern, mErr))
	}
	if o.Columns < 1 {
		err = multierr.Append(err, invalidParameter("invalid width value %d", o.Columns))
	}
	if o.Rows < 1 {
		err = multierr.Append(err, invalidParameter("invalid height value %d", o.Rows))
	}
	if o.Output == "" {
		err = multierr.Append(err, invalidParameter("output map file is required"))
	}
	return err
}

// GridFromFiles lays files out row-major into at most rows rows of cols
// columns, keeping only each file's base name. Extra files are ignored; the
// last row is short when files run out.
func GridFromFiles(files []string, cols, rows int) Grid {
	g := Grid{}
	for i, file := range files {
		y := i / cols
		if y == rows {
			break
		}
		if i%cols == 0 {
			g = append(g, make([]string, 0, cols))
		}
		g[y] = append(g[y], filepath.Base(file))
	}
	return g
}

// GlobGrid lists files matching pattern (in lexical order) into a grid.
func GlobGrid(pattern string, cols, rows int) (Grid, error) {
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, invalidParameter("invalid file mask %s: %v", pattern, err)
	}
	if len(files) > cols*rows {
		mapLog.Verbose().Println("ignoring", len(files)-cols*rows, "files beyond", cols, "x", rows)
	}
	return GridFromFiles(files, cols, rows), nil
}

// BuildMap globs o.Pattern into a grid and writes it to o.Output.
func BuildMap(o MapOptions) (Grid, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	g, err := GlobGrid(o.Pattern, o.Columns, o.Rows)
	if err != nil {
		return nil, err
	}
	if len(g) == 0 {
		mapLog.Warn().Println("no files match", o.Pattern)
	}
	if err := WriteMap(o.Output, g); err != nil {
		return nil, err
	}
	return g, nil
}
