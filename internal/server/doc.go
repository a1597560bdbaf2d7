// Package server implements the MCP (Model Context Protocol) server for mosaic.
//
// This package provides a JSON-RPC 2.0 server that exposes the slice, stitch
// and map operations as tools, so an MCP client can cut images into tiles and
// assemble tiles back into one image without going through the command line.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// Requests are handled one at a time, in the order they arrive.
//
// # Available Tools
//
//   - mosaic_dimensions: Get width, height and format from the image header
//   - mosaic_map: Glob files into a grid and write a map file
//   - mosaic_slice: Cut an image into tiles and write map.json
//   - mosaic_slice_preview: Draw the cut lines of a slice, returned as base64 PNG
//   - mosaic_stitch: Composite a map file or inline grid into one image
//   - mosaic_plan: Validate a stitch and report its layout without writing
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string; validation failures list every problem found
//
// # Usage
//
//	lib, _ := imaging.NewLibrary("imaging")
//	srv := server.New(lib)
//	if err := srv.Serve(os.Stdin, os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
package server
