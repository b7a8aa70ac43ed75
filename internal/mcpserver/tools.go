package mcpserver

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/joestump/harnessd/internal/envelope"
)

// --- Tool Definitions ---

func helpTool() mcp.Tool {
	return mcp.NewToolWithRawSchema(
		"help",
		"Describe available commands. With no topic, lists categories. With a category, lists its commands. With a command name, gives that command's full parameter reference.",
		json.RawMessage(`{
			"type": "object",
			"properties": {
				"topic": {
					"type": "string",
					"description": "category name or dotted command name; omit for the category list"
				}
			}
		}`),
	)
}

func getTool() mcp.Tool {
	return mcp.NewToolWithRawSchema(
		"get",
		"Invoke a read-only command by name. Mutations must go through do() instead.",
		json.RawMessage(`{
			"type": "object",
			"properties": {
				"command": {
					"type": "string",
					"description": "dotted command name, e.g. 'window.list'"
				},
				"params": {
					"type": "object",
					"description": "command parameters"
				}
			},
			"required": ["command"]
		}`),
	)
}

func doTool() mcp.Tool {
	return mcp.NewToolWithRawSchema(
		"do",
		"Invoke a mutating command by name. Read-only commands must go through get() instead.",
		json.RawMessage(`{
			"type": "object",
			"properties": {
				"command": {
					"type": "string",
					"description": "dotted command name, e.g. 'mouse.click'"
				},
				"params": {
					"type": "object",
					"description": "command parameters"
				}
			},
			"required": ["command"]
		}`),
	)
}

// --- Tool Handlers ---

// envelopeResult marshals an envelope as the tool's text content. help, get,
// and do never raise a protocol-level error: failures surface as an
// ok:false envelope, not as an MCP tool error.
func envelopeResult(e envelope.Envelope) (*mcp.CallToolResult, error) {
	text, err := envelope.Marshal(e)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}

// argMap normalizes a tool request's arguments, whose static type varies
// across mcp-go versions (any vs map[string]any), to a concrete map.
func argMap(raw any) map[string]any {
	m, _ := raw.(map[string]any)
	return m
}

func stringArg(args map[string]any, key string) string {
	v, ok := args[key]
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// paramsArg re-encodes the "params" argument as a JSON string for
// Dispatcher.Get/Do, which parse parameters from a JSON document rather
// than a pre-decoded map.
func paramsArg(args map[string]any) string {
	v, ok := args["params"]
	if !ok || v == nil {
		return ""
	}
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}

func (s *Server) handleHelp(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return envelopeResult(s.dispatcher.Help(stringArg(argMap(req.Params.Arguments), "topic")))
}

func (s *Server) handleGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := argMap(req.Params.Arguments)
	return envelopeResult(s.dispatcher.Get(ctx, stringArg(args, "command"), paramsArg(args)))
}

func (s *Server) handleDo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := argMap(req.Params.Arguments)
	return envelopeResult(s.dispatcher.Do(ctx, stringArg(args, "command"), paramsArg(args)))
}
