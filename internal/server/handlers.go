package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/mosaic/internal/imaging"
	"github.com/ironsheep/mosaic/internal/mosaic"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "mosaic_slice", "mosaic_stitch").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		l.Warn().Println(params.Name, "failed:", err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "mosaic_dimensions":
		return s.handleDimensions(args)
	case "mosaic_map":
		return s.handleMap(args)
	case "mosaic_slice":
		return s.handleSlice(args)
	case "mosaic_slice_preview":
		return s.handleSlicePreview(args)
	case "mosaic_stitch":
		return s.handleStitch(args)
	case "mosaic_plan":
		return s.handlePlan(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// unmarshalArgs decodes tool arguments, treating a missing object as empty.
func unmarshalArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		return nil
	}
	return json.Unmarshal(args, v)
}

type pathArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleDimensions(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	return imaging.Dimensions(a.Path)
}

type mapArgs struct {
	Pattern string `json:"pattern"`
	Columns int    `json:"columns"`
	Rows    int    `json:"rows"`
	Output  string `json:"output"`
}

type mapResult struct {
	Output string      `json:"output"`
	Map    mosaic.Grid `json:"map"`
}

func (s *Server) handleMap(args json.RawMessage) (interface{}, error) {
	var a mapArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	g, err := mosaic.BuildMap(mosaic.MapOptions{
		Pattern: a.Pattern,
		Columns: a.Columns,
		Rows:    a.Rows,
		Output:  a.Output,
	})
	if err != nil {
		return nil, err
	}
	return &mapResult{Output: a.Output, Map: g}, nil
}

type sliceArgs struct {
	Path      string `json:"path"`
	Columns   int    `json:"columns"`
	Rows      int    `json:"rows"`
	OutputDir string `json:"output_dir"`
	Mask      string `json:"mask"`
	WriteMap  *bool  `json:"write_map"`
}

type sliceResult struct {
	*mosaic.SliceResult
	MapFile string `json:"map_file,omitempty"`
}

func (s *Server) handleSlice(args json.RawMessage) (interface{}, error) {
	var a sliceArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	res, err := s.slicer.Slice(mosaic.SliceOptions{
		Source:    a.Path,
		Columns:   a.Columns,
		Rows:      a.Rows,
		OutputDir: a.OutputDir,
		Mask:      a.Mask,
	})
	if err != nil {
		return nil, err
	}

	out := &sliceResult{SliceResult: res}
	if a.WriteMap == nil || *a.WriteMap {
		if out.MapFile, err = mosaic.WriteSliceMap(res.Grid, a.OutputDir); err != nil {
			return nil, err
		}
	}
	return out, nil
}

type slicePreviewArgs struct {
	Path      string `json:"path"`
	Columns   int    `json:"columns"`
	Rows      int    `json:"rows"`
	LineColor string `json:"line_color"`
	Labels    *bool  `json:"labels"`
	MaxSize   *int   `json:"max_size"`
}

func (s *Server) handleSlicePreview(args json.RawMessage) (interface{}, error) {
	var a slicePreviewArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.LineColor == "" {
		a.LineColor = "#FF0000"
	}
	labels := a.Labels == nil || *a.Labels
	maxSize := 1024
	if a.MaxSize != nil {
		maxSize = *a.MaxSize
	}

	img, err := s.slicer.Preview(mosaic.SliceOptions{Source: a.Path, Columns: a.Columns, Rows: a.Rows}, a.LineColor, labels)
	if err != nil {
		return nil, err
	}
	return imaging.EncodePNG(imaging.Thumbnail(img, maxSize))
}

type stitchArgs struct {
	Map         string      `json:"map"`
	Grid        mosaic.Grid `json:"grid"`
	BaseDir     string      `json:"base_dir"`
	Output      string      `json:"output"`
	SpaceX      int         `json:"spacex"`
	SpaceY      int         `json:"spacey"`
	BgColor     string      `json:"bgcolor"`
	BorderColor string      `json:"bordercolor"`
	BorderWidth int         `json:"borderwidth"`
	FitStrategy int         `json:"fitstrategy"`
	CellWidth   int         `json:"cellwidth"`
	CellHeight  int         `json:"cellheight"`
}

// grid returns the map file's grid when one is named, else the inline grid.
func (a *stitchArgs) grid() (mosaic.Grid, error) {
	if a.Map != "" {
		return mosaic.LoadMap(a.Map)
	}
	if a.BaseDir != "" {
		return a.Grid.Resolve(a.BaseDir), nil
	}
	return a.Grid, nil
}

func (a *stitchArgs) options() mosaic.StitchOptions {
	return mosaic.StitchOptions{
		Output:        a.Output,
		HorizontalGap: a.SpaceX,
		VerticalGap:   a.SpaceY,
		Background:    a.BgColor,
		BorderColor:   a.BorderColor,
		BorderWidth:   a.BorderWidth,
		Strategy:      mosaic.FitStrategy(a.FitStrategy),
		CellWidth:     a.CellWidth,
		CellHeight:    a.CellHeight,
	}
}

func (s *Server) handleStitch(args json.RawMessage) (interface{}, error) {
	var a stitchArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	g, err := a.grid()
	if err != nil {
		return nil, err
	}
	return s.stitcher.Stitch(g, a.options())
}

type planResult struct {
	mosaic.Layout
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s *Server) handlePlan(args json.RawMessage) (interface{}, error) {
	var a stitchArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	g, err := a.grid()
	if err != nil {
		return nil, err
	}
	layout, err := s.stitcher.Plan(g, a.options())
	if err != nil {
		return nil, err
	}
	w, h := layout.CanvasSize()
	return &planResult{Layout: *layout, Width: w, Height: h}, nil
}
