package mcpserver

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/joestump/harnessd/internal/command"
	"github.com/joestump/harnessd/internal/envelope"
)

func testRegistry() *command.Registry {
	r := command.NewRegistry()
	r.Register(command.Descriptor{
		Name: "window.list", Category: "window", Description: "List open windows.",
		Handler: func(_ context.Context, _ map[string]any) envelope.Envelope {
			return envelope.Items([]string{"Finder"}, 1, nil)
		},
	})
	r.Register(command.Descriptor{
		Name: "window.close", Category: "window", Description: "Close a window.",
		IsMutation: true,
		Parameters: []command.Param{{Name: "handle", Type: command.TypeString, Required: true}},
		Handler: func(_ context.Context, args map[string]any) envelope.Envelope {
			handle, _ := args["handle"].(string)
			if handle == "" {
				return envelope.Error(envelope.CodeInvalidParameter, "missing handle", nil)
			}
			return envelope.Ok(map[string]any{"closed": handle}, nil)
		},
	})
	return r
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: name, Arguments: args},
	}
}

func resultEnvelope(t *testing.T, result *mcp.CallToolResult) envelope.Envelope {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("result has no content")
	}
	tc, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("result content is %T, not TextContent", result.Content[0])
	}
	var e envelope.Envelope
	if err := json.Unmarshal([]byte(tc.Text), &e); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	return e
}

func TestHandleHelp_NoTopic(t *testing.T) {
	s := NewServer(command.NewDispatcher(testRegistry()))
	result, err := s.handleHelp(context.Background(), callRequest("help", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e := resultEnvelope(t, result)
	if !e.OK {
		t.Fatalf("expected ok envelope, got %+v", e)
	}
}

func TestHandleHelp_Command(t *testing.T) {
	s := NewServer(command.NewDispatcher(testRegistry()))
	result, err := s.handleHelp(context.Background(), callRequest("help", map[string]any{"topic": "window.list"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e := resultEnvelope(t, result)
	if !e.OK {
		t.Fatalf("expected ok envelope, got %+v", e)
	}
}

func TestHandleGet_Success(t *testing.T) {
	s := NewServer(command.NewDispatcher(testRegistry()))
	result, err := s.handleGet(context.Background(), callRequest("get", map[string]any{"command": "window.list"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e := resultEnvelope(t, result)
	if !e.OK {
		t.Fatalf("expected ok envelope, got %+v", e)
	}
}

func TestHandleGet_WrongVerb(t *testing.T) {
	s := NewServer(command.NewDispatcher(testRegistry()))
	result, err := s.handleGet(context.Background(), callRequest("get", map[string]any{"command": "window.close", "params": map[string]any{"handle": "main"}}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e := resultEnvelope(t, result)
	if e.OK {
		t.Fatal("expected wrong_verb error for a mutation dispatched via get")
	}
	if e.Error.Code != envelope.CodeWrongVerb {
		t.Errorf("expected wrong_verb, got %s", e.Error.Code)
	}
}

func TestHandleDo_Success(t *testing.T) {
	s := NewServer(command.NewDispatcher(testRegistry()))
	result, err := s.handleDo(context.Background(), callRequest("do", map[string]any{
		"command": "window.close",
		"params":  map[string]any{"handle": "main"},
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e := resultEnvelope(t, result)
	if !e.OK {
		t.Fatalf("expected ok envelope, got %+v", e)
	}
}

func TestHandleDo_MissingParam(t *testing.T) {
	s := NewServer(command.NewDispatcher(testRegistry()))
	result, err := s.handleDo(context.Background(), callRequest("do", map[string]any{"command": "window.close"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e := resultEnvelope(t, result)
	if e.OK {
		t.Fatal("expected invalid_parameter error for missing required handle")
	}
	if e.Error.Code != envelope.CodeInvalidParameter {
		t.Errorf("expected invalid_parameter, got %s", e.Error.Code)
	}
}

func TestHandleGet_UnknownCommand(t *testing.T) {
	s := NewServer(command.NewDispatcher(testRegistry()))
	result, err := s.handleGet(context.Background(), callRequest("get", map[string]any{"command": "window.does_not_exist"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e := resultEnvelope(t, result)
	if e.OK {
		t.Fatal("expected not_found error for unknown command")
	}
	if e.Error.Code != envelope.CodeNotFound {
		t.Errorf("expected not_found, got %s", e.Error.Code)
	}
}
