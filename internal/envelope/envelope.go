// Package envelope implements the uniform response shape returned by every
// dispatch verb (help, get, do). All helpers are pure: they never touch the
// action log, the registry, or any other process-wide state.
package envelope

import (
	"bytes"
	"encoding/json"
	"time"
)

// ErrorCode is a closed vocabulary of caller-facing failure codes. Handlers
// and the dispatcher MUST only ever construct an Envelope with one of these.
type ErrorCode string

const (
	CodeBookmarkNotFound      ErrorCode = "bookmark_not_found"
	CodeElementNotFound       ErrorCode = "element_not_found"
	CodeEmptyMenuPath         ErrorCode = "empty_menu_path"
	CodeFileNotFound          ErrorCode = "file_not_found"
	CodeFilenameFieldNotFound ErrorCode = "filename_field_not_found"
	CodeImageNotFound         ErrorCode = "image_not_found"
	CodeInvalidDimensions     ErrorCode = "invalid_dimensions"
	CodeInvalidExpectType     ErrorCode = "invalid_expect_type"
	CodeInvalidKey            ErrorCode = "invalid_key"
	CodeInvalidParameter      ErrorCode = "invalid_parameter"
	CodeInvalidTimeout        ErrorCode = "invalid_timeout"
	CodeMenuItemNotFound      ErrorCode = "menu_item_not_found"
	CodeMissingWindow         ErrorCode = "missing_window"
	CodeMonitorNotFound       ErrorCode = "monitor_not_found"
	CodeNotFound              ErrorCode = "not_found"
	CodeNotSet                ErrorCode = "not_set"
	CodeOccurrenceOutOfRange  ErrorCode = "occurrence_out_of_range"
	CodeProcessNotFound       ErrorCode = "process_not_found"
	CodeTextNotFound          ErrorCode = "text_not_found"
	CodeUpdateFailed          ErrorCode = "update_failed"
	CodeWindowNotFound        ErrorCode = "window_not_found"
	CodeWrongVerb             ErrorCode = "wrong_verb"
)

// Meta carries invocation timing. Ts is always present; Ms is serialized
// as null when the caller didn't measure elapsed time.
type Meta struct {
	Ms *int64 `json:"ms"`
	Ts string `json:"ts"`
}

// Envelope is the single JSON shape returned by help, get, and do.
type Envelope struct {
	OK    bool           `json:"ok"`
	Data  any            `json:"data,omitempty"`
	Error *envelopeError `json:"error,omitempty"`
	Meta  Meta           `json:"meta"`
}

type envelopeError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// Content payload shapes, as documented in §4.1.
type ContentFormat string

const (
	FormatText     ContentFormat = "text"
	FormatMarkdown ContentFormat = "markdown"
	FormatHTML     ContentFormat = "html"
)

func meta(ms *int64) Meta {
	return Meta{Ms: ms, Ts: time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00")}
}

// Ok wraps an arbitrary success payload.
func Ok(payload any, ms *int64) Envelope {
	return Envelope{OK: true, Data: payload, Meta: meta(ms)}
}

// Items wraps a slice payload with a count.
func Items(items any, count int, ms *int64) Envelope {
	return Envelope{OK: true, Data: map[string]any{"count": count, "items": items}, Meta: meta(ms)}
}

// Content wraps free text with a declared format.
func Content(text string, format ContentFormat, ms *int64) Envelope {
	if format == "" {
		format = FormatText
	}
	return Envelope{OK: true, Data: map[string]any{"content": text, "format": format}, Meta: meta(ms)}
}

// Confirm wraps a human-readable confirmation message.
func Confirm(message string, ms *int64) Envelope {
	return Envelope{OK: true, Data: map[string]any{"message": message}, Meta: meta(ms)}
}

// Check wraps a boolean result with an optional explanatory detail.
func Check(result bool, detail string, ms *int64) Envelope {
	data := map[string]any{"result": result}
	if detail != "" {
		data["detail"] = detail
	}
	return Envelope{OK: true, Data: data, Meta: meta(ms)}
}

// Error wraps a caller-facing failure. No data field is emitted.
func Error(code ErrorCode, message string, ms *int64) Envelope {
	return Envelope{OK: false, Error: &envelopeError{Code: code, Message: message}, Meta: meta(ms)}
}

// Marshal serializes e without HTML-escaping, so CJK, emoji, and literal
// angle brackets round-trip unchanged rather than becoming \uXXXX escapes.
func Marshal(e Envelope) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(e); err != nil {
		return "", err
	}
	// json.Encoder.Encode appends a trailing newline; callers expect a bare string.
	out := buf.Bytes()
	if n := len(out); n > 0 && out[n-1] == '\n' {
		out = out[:n-1]
	}
	return string(out), nil
}

// MustMarshal is Marshal without an error return, for call sites where the
// payload is known to be JSON-serializable (all envelope payloads are).
func MustMarshal(e Envelope) string {
	s, err := Marshal(e)
	if err != nil {
		// Envelope payloads are always built from JSON-safe Go values;
		// a marshal failure here indicates a handler bug, not caller input.
		panic(err)
	}
	return s
}

// MsSince returns a pointer to the elapsed milliseconds since start, for
// passing to the helpers above.
func MsSince(start time.Time) *int64 {
	ms := time.Since(start).Milliseconds()
	return &ms
}
