package envelope

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestOk_RoundTrip(t *testing.T) {
	e := Ok(map[string]any{"message": "Clicked (100, 200) with left button."}, nil)
	s := MustMarshal(e)

	var decoded map[string]any
	if err := json.Unmarshal([]byte(s), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["ok"] != true {
		t.Errorf("expected ok=true, got %v", decoded["ok"])
	}
	data, ok := decoded["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %T", decoded["data"])
	}
	if data["message"] != "Clicked (100, 200) with left button." {
		t.Errorf("unexpected message: %v", data["message"])
	}
}

func TestMarshal_NonASCIINotEscaped(t *testing.T) {
	e := Content("한글 테스트 😀", FormatText, nil)
	s := MustMarshal(e)
	if strings.Contains(s, `\u`) {
		t.Errorf("expected literal non-ASCII characters, got escaped output: %s", s)
	}
	if !strings.Contains(s, "한글") {
		t.Errorf("expected literal CJK text in output: %s", s)
	}
}

func TestError_NoDataField(t *testing.T) {
	e := Error(CodeNotFound, "command not found", nil)
	s := MustMarshal(e)
	if strings.Contains(s, `"data"`) {
		t.Errorf("error envelope must not emit a data field: %s", s)
	}
	if !strings.Contains(s, `"code":"not_found"`) {
		t.Errorf("expected error code in output: %s", s)
	}
}

func TestMeta_TsAlwaysPresent(t *testing.T) {
	e := Ok(map[string]any{}, nil)
	if e.Meta.Ts == "" {
		t.Error("expected meta.ts to be set")
	}
	if e.Meta.Ms != nil {
		t.Error("expected meta.ms to be nil when not measured")
	}
}

func TestItems_ShapesCountAndItems(t *testing.T) {
	e := Items([]string{"a", "b"}, 2, nil)
	data, ok := e.Data.(map[string]any)
	if !ok {
		t.Fatalf("expected map data, got %T", e.Data)
	}
	if data["count"] != 2 {
		t.Errorf("expected count=2, got %v", data["count"])
	}
}
