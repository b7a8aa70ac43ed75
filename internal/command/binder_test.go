package command

import "testing"

func TestBindRequiredMissingReturnsError(t *testing.T) {
	_, err := Bind([]Param{{Name: "path", Type: TypeString, Required: true}}, map[string]any{})
	if err == nil {
		t.Fatal("expected error for missing required parameter")
	}
}

func TestBindUsesDefaultWhenAbsent(t *testing.T) {
	args, err := Bind([]Param{{Name: "timeoutMs", Type: TypeInt, Required: false, DefaultValue: "5000"}}, map[string]any{})
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if args["timeoutMs"] != 5000 {
		t.Fatalf("expected default 5000, got %v", args["timeoutMs"])
	}
}

func TestBindStrictTypeCoercionRejectsNumberForString(t *testing.T) {
	_, err := Bind([]Param{{Name: "name", Type: TypeString, Required: true}}, map[string]any{"name": 42.0})
	if err == nil {
		t.Fatal("expected error binding a number into a string parameter")
	}
}

func TestBindAcceptsNullForNullableType(t *testing.T) {
	args, err := Bind([]Param{{Name: "region", Type: TypeNullableString, Required: false}}, map[string]any{"region": nil})
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if args["region"] != nil {
		t.Fatalf("expected nil, got %v", args["region"])
	}
}

func TestBindRejectsNullForNonNullableType(t *testing.T) {
	_, err := Bind([]Param{{Name: "name", Type: TypeString, Required: true}}, map[string]any{"name": nil})
	if err == nil {
		t.Fatal("expected error binding null into a non-nullable string parameter")
	}
}

func TestBindCompoundTypeReencodesRawJSON(t *testing.T) {
	args, err := Bind([]Param{{Name: "env", Type: ParamType("map"), Required: true}}, map[string]any{"env": map[string]any{"A": "1"}})
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if args["env"] != `{"A":"1"}` {
		t.Fatalf("expected re-encoded JSON string, got %v", args["env"])
	}
}
