package mosaic

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultMapName is the map file written next to sliced tiles.
const DefaultMapName = "map.json"

// Grid is a row-major arrangement of tile identifiers: Grid[row][col], row 0
// at the top, column 0 at the left.
type Grid [][]string

// Rows returns the number of rows (vertical blocks).
func (g Grid) Rows() int {
	return len(g)
}

// Columns returns the number of columns (horizontal blocks) of the first row.
func (g Grid) Columns() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Validate checks the grid shape: at least one row, no empty row, and every
// row as long as the first. Rows are numbered from 1 in messages.
func (g Grid) Validate() error {
	if len(g) == 0 {
		return invalidParameter("mosaic must have at least 1 row")
	}
	cols := len(g[0])
	for i, row := range g {
		if len(row) == 0 {
			return invalidParameter("mosaic cannot have an empty row (row %d)", i+1)
		}
		if len(row) != cols {
			return invalidParameter("invalid column count at row %d", i+1)
		}
	}
	return nil
}

// Resolve returns a copy of g with every relative entry joined to dir.
// Absolute entries are kept as they are.
func (g Grid) Resolve(dir string) Grid {
	out := make(Grid, len(g))
	for y, row := range g {
		out[y] = make([]string, len(row))
		for x, item := range row {
			if filepath.IsAbs(item) {
				out[y][x] = item
			} else {
				out[y][x] = filepath.Join(dir, item)
			}
		}
	}
	return out
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// ReadMap loads a map file. Files ending in .yaml or .yml are parsed as YAML,
// everything else as JSON nested arrays. The grid is returned as stored; call
// Resolve to make entries relative to the map file's directory.
func ReadMap(path string) (Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fileNotFound("map file %s not found", path)
		}
		return nil, ioFailure(err, "failed to read map file %s", path)
	}

	var g Grid
	if isYAML(path) {
		err = yaml.Unmarshal(data, &g)
	} else {
		err = json.Unmarshal(data, &g)
	}
	if err != nil {
		return nil, invalidParameter("map file %s is not a list of rows: %v", path, err)
	}
	return g, nil
}

// WriteMap stores g at path, as YAML for .yaml/.yml and JSON otherwise.
func WriteMap(path string, g Grid) error {
	var (
		data []byte
		err  error
	)
	if g == nil {
		g = Grid{}
	}
	if isYAML(path) {
		data, err = yaml.Marshal(g)
	} else {
		data, err = json.Marshal(g)
	}
	if err != nil {
		return ioFailure(err, "failed to encode map")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return ioFailure(err, "failed to write map file %s", path)
	}
	return nil
}

// LoadMap reads the map at path and resolves its entries against the map
// file's directory.
func LoadMap(path string) (Grid, error) {
	g, err := ReadMap(path)
	if err != nil {
		return nil, err
	}
	return g.Resolve(filepath.Dir(path)), nil
}
