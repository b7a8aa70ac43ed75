package command

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/joestump/harnessd/internal/envelope"
)

// Dispatcher exposes the three verbs (help, get, do) over a Registry.
type Dispatcher struct {
	registry *Registry
}

func NewDispatcher(r *Registry) *Dispatcher {
	return &Dispatcher{registry: r}
}

// Help is pure and never panics. An unknown category or command topic
// yields a not_found error envelope.
func (d *Dispatcher) Help(topic string) envelope.Envelope {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return envelope.Content(d.registry.FormatCategoryList(), envelope.FormatText, nil)
	}
	if strings.Contains(topic, ".") {
		return d.formatCommandEnvelope(topic)
	}
	if text, ok := d.registry.FormatCategory(topic); ok {
		return envelope.Content(text, envelope.FormatText, nil)
	}
	return d.formatCommandEnvelope(topic)
}

func (d *Dispatcher) formatCommandEnvelope(name string) envelope.Envelope {
	text, ok := d.registry.FormatCommand(name)
	if !ok {
		return envelope.Error(envelope.CodeNotFound, "No such command or category: '"+name+"'. Use help() to discover commands.", nil)
	}
	return envelope.Content(text, envelope.FormatText, nil)
}

// Get dispatches a read-only command.
func (d *Dispatcher) Get(ctx context.Context, commandName, paramsJSON string) envelope.Envelope {
	return d.execute(ctx, commandName, paramsJSON, false)
}

// Do dispatches a mutation command.
func (d *Dispatcher) Do(ctx context.Context, commandName, paramsJSON string) envelope.Envelope {
	return d.execute(ctx, commandName, paramsJSON, true)
}

func (d *Dispatcher) execute(ctx context.Context, commandName, paramsJSON string, wantMutation bool) envelope.Envelope {
	commandName = strings.TrimSpace(commandName)
	if commandName == "" {
		return envelope.Error(envelope.CodeInvalidParameter, "Missing required parameter: 'command'", nil)
	}

	desc, ok := d.registry.Find(commandName)
	if !ok {
		return envelope.Error(envelope.CodeNotFound, "No such command: '"+commandName+"'. Use help() to discover commands.", nil)
	}

	if desc.IsMutation != wantMutation {
		if desc.IsMutation {
			return envelope.Error(envelope.CodeWrongVerb, "'"+commandName+"' is a mutation; use do(\""+commandName+"\", ...) instead.", nil)
		}
		return envelope.Error(envelope.CodeWrongVerb, "'"+commandName+"' is read-only; use get(\""+commandName+"\", ...) instead.", nil)
	}

	var raw map[string]any
	if strings.TrimSpace(paramsJSON) != "" {
		if err := json.Unmarshal([]byte(paramsJSON), &raw); err != nil {
			return envelope.Error(envelope.CodeInvalidParameter, "Malformed JSON parameters: "+err.Error(), nil)
		}
	}

	args, err := Bind(desc.Parameters, raw)
	if err != nil {
		return envelope.Error(envelope.CodeInvalidParameter, err.Error(), nil)
	}

	return desc.Handler(ctx, args)
}
