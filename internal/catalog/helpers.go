package catalog

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/joestump/harnessd/internal/command"
	"github.com/joestump/harnessd/internal/envelope"
)

// result is what a category handler body returns before it's wrapped into
// an envelope: either a success payload or an error to translate.
type result struct {
	payload any
	err     error
}

func ok(payload any) result     { return result{payload: payload} }
func fail(err error) result     { return result{err: err} }

// fn is the shape every catalog handler body implements.
type fn func(ctx context.Context, args map[string]any) result

// mutation wraps fn as a command.Handler that records to the Action Log on
// every completion, per §3's invariant, except validation failures: per §7
// Policy, handlers validate inputs before performing side effects, and a
// validation failure produces an envelope without touching the Action Log.
func mutation(d *Deps, name string, body fn) command.Handler {
	return func(ctx context.Context, args map[string]any) envelope.Envelope {
		start := time.Now()
		r := body(ctx, args)
		ms := envelope.MsSince(start)
		if r.err != nil {
			if isCallerError(r.err) {
				return mapError(r.err, ms)
			}
			d.Log.Record(name, args, time.Since(start).Milliseconds(), false)
			return mapError(r.err, ms)
		}
		d.Log.Record(name, args, time.Since(start).Milliseconds(), true)
		if d.Caps != nil {
			if rec, isRec := d.Caps.ActionRecorder.(interface {
				Record(tool string, params map[string]any, atMillis int64)
			}); isRec {
				rec.Record(name, args, time.Now().UnixMilli())
			}
		}
		return toEnvelope(r.payload, ms)
	}
}

// isCallerError reports whether err is a validation failure that should
// never reach the Action Log: a malformed or out-of-range argument caught
// before any side effect was attempted, as opposed to a failure from the
// facade while actually performing the mutation.
func isCallerError(err error) bool {
	ce, ok := err.(*catalogError)
	if !ok {
		return false
	}
	switch ce.code {
	case envelope.CodeInvalidParameter, envelope.CodeInvalidDimensions, envelope.CodeInvalidTimeout,
		envelope.CodeInvalidKey, envelope.CodeInvalidExpectType, envelope.CodeMissingWindow, envelope.CodeEmptyMenuPath:
		return true
	}
	return false
}

// readOnly wraps fn as a command.Handler with no Action Log side effect.
func readOnly(body fn) command.Handler {
	return func(ctx context.Context, args map[string]any) envelope.Envelope {
		start := time.Now()
		r := body(ctx, args)
		ms := envelope.MsSince(start)
		if r.err != nil {
			return mapError(r.err, ms)
		}
		return toEnvelope(r.payload, ms)
	}
}

// toEnvelope chooses the right envelope helper for a success payload based
// on its shape: a pre-built envelope.Envelope is returned unchanged (for
// handlers that need content/confirm/check shapes), an itemsPayload becomes
// items(), everything else becomes ok().
func toEnvelope(payload any, ms *int64) envelope.Envelope {
	switch p := payload.(type) {
	case envelope.Envelope:
		p.Meta.Ms = ms
		return p
	case itemsPayload:
		return envelope.Items(p.items, p.count, ms)
	default:
		return envelope.Ok(payload, ms)
	}
}

type itemsPayload struct {
	items any
	count int
}

func items(list any, count int) itemsPayload { return itemsPayload{items: list, count: count} }

func content(text string, format envelope.ContentFormat) envelope.Envelope {
	return envelope.Content(text, format, nil)
}

func check(result bool, detail string) envelope.Envelope {
	return envelope.Check(result, detail, nil)
}

func confirmMsg(message string) envelope.Envelope {
	return envelope.Confirm(message, nil)
}

// catalogError carries an explicit error code, bypassing string-sniffing.
type catalogError struct {
	code    envelope.ErrorCode
	message string
}

func (e *catalogError) Error() string { return e.message }

func errWithCode(code envelope.ErrorCode, message string) error {
	return &catalogError{code: code, message: message}
}

// mapError classifies a handler error into the closed error-code
// vocabulary. Errors constructed via errWithCode carry their code
// explicitly; everything else (mostly facade-fake errors) is classified by
// message prefix, matching the "not found" phrasing those fakes use.
func mapError(err error, ms *int64) envelope.Envelope {
	if ce, ok := err.(*catalogError); ok {
		return envelope.Error(ce.code, ce.message, ms)
	}
	msg := err.Error()
	code := envelope.CodeNotFound
	switch {
	case strings.HasPrefix(msg, "window not found"):
		code = envelope.CodeWindowNotFound
	case strings.HasPrefix(msg, "process not found"):
		code = envelope.CodeProcessNotFound
	case strings.HasPrefix(msg, "element not found"):
		code = envelope.CodeElementNotFound
	case strings.HasPrefix(msg, "file not found"):
		code = envelope.CodeFileNotFound
	case strings.HasPrefix(msg, "bookmark not found"):
		code = envelope.CodeBookmarkNotFound
	case strings.HasPrefix(msg, "document not found"), strings.HasPrefix(msg, "sheet not found"), strings.HasPrefix(msg, "slide not found"):
		code = envelope.CodeNotFound
	case strings.HasPrefix(msg, "empty menu path"):
		code = envelope.CodeEmptyMenuPath
	case strings.HasPrefix(msg, "monitor not found"):
		code = envelope.CodeMonitorNotFound
	}
	return envelope.Error(code, msg, ms)
}

func reqString(args map[string]any, name string) (string, error) {
	v, _ := args[name].(string)
	if strings.TrimSpace(v) == "" {
		return "", errWithCode(envelope.CodeInvalidParameter, "Parameter '"+name+"' must not be empty")
	}
	return v, nil
}

func optString(args map[string]any, name string) string {
	v, _ := args[name].(string)
	return v
}

func reqInt(args map[string]any, name string) int {
	switch v := args[name].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func reqInt64(args map[string]any, name string) int64 {
	switch v := args[name].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	}
	return 0
}

func reqFloat(args map[string]any, name string) float64 {
	switch v := args[name].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	}
	return 0
}

func reqBool(args map[string]any, name string) bool {
	v, _ := args[name].(bool)
	return v
}

// reqStringSlice decodes a compound-typed array parameter (re-encoded as a
// JSON string by the binder) back into a string slice.
func reqStringSlice(args map[string]any, name string) ([]string, error) {
	raw, _ := args[name].(string)
	var out []string
	if raw == "" {
		return out, nil
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, errWithCode(envelope.CodeInvalidParameter, "Parameter '"+name+"' must be an array of strings")
	}
	return out, nil
}

// optStringMap decodes a compound-typed object parameter (re-encoded as a
// JSON string by the binder) back into a string map, treating an absent or
// empty value as no entries.
func optStringMap(args map[string]any, name string) (map[string]string, error) {
	raw, _ := args[name].(string)
	if raw == "" {
		return nil, nil
	}
	var out map[string]string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, errWithCode(envelope.CodeInvalidParameter, "Parameter '"+name+"' must be an object of string values")
	}
	return out, nil
}

// validDimensions checks a width/height pair is positive, returning the
// invalid_dimensions error code on failure.
func validDimensions(w, h int) error {
	if w <= 0 || h <= 0 {
		return errWithCode(envelope.CodeInvalidDimensions, "width and height must be positive")
	}
	return nil
}

// validTimeout checks a millisecond timeout is non-negative.
func validTimeout(ms int) error {
	if ms < 0 {
		return errWithCode(envelope.CodeInvalidTimeout, "timeoutMs must be non-negative")
	}
	return nil
}
