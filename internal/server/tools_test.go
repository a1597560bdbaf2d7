package server

import (
	"encoding/json"
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	expected := []string{
		"mosaic_dimensions",
		"mosaic_map",
		"mosaic_slice",
		"mosaic_slice_preview",
		"mosaic_stitch",
		"mosaic_plan",
	}

	if len(tools) != len(expected) {
		t.Fatalf("got %d tools, want %d", len(tools), len(expected))
	}

	for i, name := range expected {
		if tools[i].Name != name {
			t.Errorf("tool %d: got %s, want %s", i, tools[i].Name, name)
		}
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("missing description")
			}
			if tool.InputSchema["type"] != "object" {
				t.Errorf("schema type: got %v, want object", tool.InputSchema["type"])
			}
			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok || len(props) == 0 {
				t.Fatal("schema has no properties")
			}
			if required, ok := tool.InputSchema["required"].([]string); ok {
				for _, r := range required {
					if _, ok := props[r]; !ok {
						t.Errorf("required %q is not a property", r)
					}
				}
			}
		})
	}
}

func TestToolDefinitions_StitchFlagsMatchCLI(t *testing.T) {
	want := []string{"map", "output", "spacex", "spacey", "bgcolor", "bordercolor", "borderwidth", "fitstrategy", "cellwidth", "cellheight"}

	for _, tool := range GetToolDefinitions() {
		if tool.Name != "mosaic_stitch" && tool.Name != "mosaic_plan" {
			continue
		}
		props := tool.InputSchema["properties"].(map[string]interface{})
		for _, p := range want {
			if _, ok := props[p]; !ok {
				t.Errorf("%s: missing property %s", tool.Name, p)
			}
		}
	}
}

func TestHandleToolsList(t *testing.T) {
	s := newTestServer(t)

	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "tools/list"})
	if resp == nil || resp.Error != nil {
		t.Fatalf("unexpected response: %+v", resp)
	}

	data, err := json.Marshal(resp.Result)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}
	var result struct {
		Tools []Tool `json:"tools"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if len(result.Tools) != len(GetToolDefinitions()) {
		t.Errorf("got %d tools", len(result.Tools))
	}
}
