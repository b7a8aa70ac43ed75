package command

import (
	"context"
	"testing"

	"github.com/joestump/harnessd/internal/envelope"
)

func echoHandler(ctx context.Context, args map[string]any) envelope.Envelope {
	return envelope.Ok(args, nil)
}

func newTestDispatcher() *Dispatcher {
	r := NewRegistry()
	r.Register(Descriptor{
		Name: "window.list", Category: "window", Description: "List windows", IsMutation: false, Handler: echoHandler,
	})
	r.Register(Descriptor{
		Name: "window.close", Category: "window", Description: "Close a window", IsMutation: true,
		Parameters: []Param{{Name: "handle", Type: TypeString, Required: true, Description: "window handle"}},
		Handler:    echoHandler,
	})
	return NewDispatcher(r)
}

func TestDispatchGetOnMutationReturnsWrongVerb(t *testing.T) {
	d := newTestDispatcher()
	e := d.Get(context.Background(), "window.close", `{"handle":"win-1"}`)
	if e.OK || e.Error.Code != envelope.CodeWrongVerb {
		t.Fatalf("expected wrong_verb, got %+v", e)
	}
}

func TestDispatchDoOnReadOnlyReturnsWrongVerb(t *testing.T) {
	d := newTestDispatcher()
	e := d.Do(context.Background(), "window.list", "")
	if e.OK || e.Error.Code != envelope.CodeWrongVerb {
		t.Fatalf("expected wrong_verb, got %+v", e)
	}
}

func TestDispatchUnknownCommandIsNotFound(t *testing.T) {
	d := newTestDispatcher()
	e := d.Get(context.Background(), "nope.nope", "")
	if e.OK || e.Error.Code != envelope.CodeNotFound {
		t.Fatalf("expected not_found, got %+v", e)
	}
}

func TestDispatchEmptyCommandIsInvalidParameter(t *testing.T) {
	d := newTestDispatcher()
	e := d.Get(context.Background(), "  ", "")
	if e.OK || e.Error.Code != envelope.CodeInvalidParameter {
		t.Fatalf("expected invalid_parameter, got %+v", e)
	}
}

func TestDispatchMalformedJSONIsInvalidParameter(t *testing.T) {
	d := newTestDispatcher()
	e := d.Do(context.Background(), "window.close", `{not json`)
	if e.OK || e.Error.Code != envelope.CodeInvalidParameter {
		t.Fatalf("expected invalid_parameter, got %+v", e)
	}
}

func TestDispatchMissingRequiredParamIsInvalidParameter(t *testing.T) {
	d := newTestDispatcher()
	e := d.Do(context.Background(), "window.close", `{}`)
	if e.OK || e.Error.Code != envelope.CodeInvalidParameter {
		t.Fatalf("expected invalid_parameter, got %+v", e)
	}
}

func TestDispatchSuccessfulExecution(t *testing.T) {
	d := newTestDispatcher()
	e := d.Do(context.Background(), "window.close", `{"handle":"win-1"}`)
	if !e.OK {
		t.Fatalf("expected success, got %+v", e)
	}
}

func TestHelpEmptyTopicReturnsCategoryList(t *testing.T) {
	d := newTestDispatcher()
	e := d.Help("")
	if !e.OK {
		t.Fatalf("help must always succeed, got %+v", e)
	}
}

func TestHelpWithDotLooksUpCommand(t *testing.T) {
	d := newTestDispatcher()
	e := d.Help("window.list")
	if !e.OK {
		t.Fatalf("expected help for known command to succeed, got %+v", e)
	}
}

func TestHelpUnknownTopicReturnsNotFoundButNeverPanics(t *testing.T) {
	d := newTestDispatcher()
	e := d.Help("does.not.exist")
	if e.OK || e.Error.Code != envelope.CodeNotFound {
		t.Fatalf("expected not_found, got %+v", e)
	}
}

func TestHelpCategoryNameWithoutDot(t *testing.T) {
	d := newTestDispatcher()
	e := d.Help("window")
	if !e.OK {
		t.Fatalf("expected category help to succeed, got %+v", e)
	}
}
