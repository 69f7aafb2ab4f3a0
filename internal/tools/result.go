package tools

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// fetch GETs path, decodes the body into out and returns the raw body as a
// map for structured content.
func (t *toolset) fetch(ctx context.Context, path string, params map[string]string, out any) (map[string]any, error) {
	var raw json.RawMessage
	if err := t.api.Get(ctx, path, params, &raw); err != nil {
		return nil, err
	}
	return decodeBoth(raw, out)
}

// send POSTs body to path and decodes the answer like fetch.
func (t *toolset) send(ctx context.Context, path string, body map[string]string, out any) (map[string]any, error) {
	var raw json.RawMessage
	if err := t.api.Post(ctx, path, body, &raw); err != nil {
		return nil, err
	}
	return decodeBoth(raw, out)
}

func decodeBoth(raw json.RawMessage, out any) (map[string]any, error) {
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return nil, err
		}
	}
	payload := map[string]any{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		// Non-object bodies still get a typed result.
		payload = map[string]any{}
	}
	return payload, nil
}

// structuredResult returns text for the model and {type: kind, ...payload}
// for the app view. Keys in payload win over kind.
func structuredResult(kind, text string, payload map[string]any) *mcp.CallToolResult {
	structured := map[string]any{"type": kind}
	for k, v := range payload {
		structured[k] = v
	}
	return &mcp.CallToolResult{
		Content:           []mcp.Content{mcp.NewTextContent(text)},
		StructuredContent: structured,
	}
}

// toolError reports a failed call to the model and to the app view.
func toolError(err error) *mcp.CallToolResult {
	msg := err.Error()
	return &mcp.CallToolResult{
		Content:           []mcp.Content{mcp.NewTextContent("Error: " + msg)},
		StructuredContent: map[string]any{"type": "_error", "message": msg},
		IsError:           true,
	}
}
