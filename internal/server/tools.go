package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// stitchProperties are shared by mosaic_stitch and mosaic_plan.
func stitchProperties() map[string]interface{} {
	return map[string]interface{}{
		"map": map[string]interface{}{
			"type":        "string",
			"description": "Path to a JSON or YAML map file. Relative entries are resolved against the map file's directory.",
		},
		"grid": map[string]interface{}{
			"type": "array",
			"items": map[string]interface{}{
				"type":  "array",
				"items": map[string]interface{}{"type": "string"},
			},
			"description": "Inline grid of image paths (rows of columns), used when no map file is given",
		},
		"base_dir": map[string]interface{}{
			"type":        "string",
			"description": "Directory relative grid entries are resolved against (inline grid only)",
		},
		"output": map[string]interface{}{
			"type":        "string",
			"description": "Output image path; the extension selects the format",
		},
		"spacex": map[string]interface{}{
			"type":        "integer",
			"description": "Horizontal gap between cells in pixels (default 0)",
			"default":     0,
		},
		"spacey": map[string]interface{}{
			"type":        "integer",
			"description": "Vertical gap between cells in pixels (default 0)",
			"default":     0,
		},
		"bgcolor": map[string]interface{}{
			"type":        "string",
			"description": "Background color as #RGB or #RRGGBB (default #FFFFFF)",
			"default":     "#FFFFFF",
		},
		"bordercolor": map[string]interface{}{
			"type":        "string",
			"description": "Border color as #RGB or #RRGGBB (default #FFFFFF)",
			"default":     "#FFFFFF",
		},
		"borderwidth": map[string]interface{}{
			"type":        "integer",
			"description": "Border width around every cell in pixels (default 0)",
			"default":     0,
		},
		"fitstrategy": map[string]interface{}{
			"type":        "integer",
			"enum":        []int{1, 2},
			"description": "How tiles that differ from the cell size are fitted: 1 = crop, 2 = resize (default)",
			"default":     2,
		},
		"cellwidth": map[string]interface{}{
			"type":        "integer",
			"description": "Override the cell width (default: widest tile)",
		},
		"cellheight": map[string]interface{}{
			"type":        "integer",
			"description": "Override the cell height (default: tallest tile)",
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "mosaic_dimensions",
			Description: "Get the width, height and format of an image file without decoding its pixels.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "mosaic_map",
			Description: "List files matching a glob pattern into a grid (row-major, at most columns x rows entries) and write it as a map file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"pattern": map[string]interface{}{
						"type":        "string",
						"description": "Glob pattern, e.g. /tiles/*.png",
					},
					"columns": map[string]interface{}{
						"type":        "integer",
						"description": "Number of columns",
					},
					"rows": map[string]interface{}{
						"type":        "integer",
						"description": "Number of rows",
					},
					"output": map[string]interface{}{
						"type":        "string",
						"description": "Map file to write (.json, .yaml or .yml)",
					},
				},
				"required": []string{"pattern", "columns", "rows", "output"},
			},
		},
		{
			Name:        "mosaic_slice",
			Description: "Cut an image into columns x rows equally sized tiles. Remainder pixels on the right and bottom edges are dropped. Writes map.json next to the tiles.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the source image",
					},
					"columns": map[string]interface{}{
						"type":        "integer",
						"description": "Horizontal block count (1 to image width)",
					},
					"rows": map[string]interface{}{
						"type":        "integer",
						"description": "Vertical block count (1 to image height)",
					},
					"output_dir": map[string]interface{}{
						"type":        "string",
						"description": "Existing directory for the tiles (default: working directory)",
					},
					"mask": map[string]interface{}{
						"type":        "string",
						"description": "Tile name template with {name}, {width}, {height}, {extension}",
						"default":     "{name}-{width}-{height}.{extension}",
					},
					"write_map": map[string]interface{}{
						"type":        "boolean",
						"description": "Write map.json into the output directory (default true)",
						"default":     true,
					},
				},
				"required": []string{"path", "columns", "rows"},
			},
		},
		{
			Name:        "mosaic_slice_preview",
			Description: "Return the source image with the slice cut lines drawn, as base64-encoded PNG. Nothing is written to disk.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the source image",
					},
					"columns": map[string]interface{}{
						"type":        "integer",
						"description": "Horizontal block count",
					},
					"rows": map[string]interface{}{
						"type":        "integer",
						"description": "Vertical block count",
					},
					"line_color": map[string]interface{}{
						"type":        "string",
						"description": "Cut line color as #RGB or #RRGGBB (default #FF0000)",
						"default":     "#FF0000",
					},
					"labels": map[string]interface{}{
						"type":        "boolean",
						"description": "Tag every tile with its column,row (default true)",
						"default":     true,
					},
					"max_size": map[string]interface{}{
						"type":        "integer",
						"description": "Longest side of the returned preview in pixels (default 1024, 0 = full size)",
						"default":     1024,
					},
				},
				"required": []string{"path", "columns", "rows"},
			},
		},
		{
			Name:        "mosaic_stitch",
			Description: "Composite a grid of images into one image. Every cell is as large as the largest tile; smaller tiles are fitted by crop or resize and centered on the background.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": stitchProperties(),
				"required":   []string{"output"},
			},
		},
		{
			Name:        "mosaic_plan",
			Description: "Validate a stitch and compute its layout (cell size, canvas size) from image headers only, without writing anything.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": stitchProperties(),
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
