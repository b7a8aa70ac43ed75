package command

import (
	"encoding/json"
	"fmt"
)

// BindError reports a parameter binding failure; the dispatcher turns it
// into an invalid_parameter envelope.
type BindError struct {
	Message string
}

func (e *BindError) Error() string { return e.Message }

// Bind converts a parsed JSON object (possibly nil) into a typed argument
// map keyed by parameter name, per each descriptor parameter.
func Bind(params []Param, raw map[string]any) (map[string]any, error) {
	args := make(map[string]any, len(params))
	for _, p := range params {
		value, present := raw[p.Name]
		if !present {
			if p.Required {
				return nil, &BindError{Message: fmt.Sprintf("Missing required parameter: '%s'", p.Name)}
			}
			dv, err := coerceDefault(p)
			if err != nil {
				return nil, err
			}
			args[p.Name] = dv
			continue
		}

		if value == nil {
			if !p.Type.IsNullable() {
				return nil, &BindError{Message: fmt.Sprintf("Parameter '%s' cannot be null", p.Name)}
			}
			args[p.Name] = nil
			continue
		}

		coerced, err := coerceValue(p, value)
		if err != nil {
			return nil, err
		}
		args[p.Name] = coerced
	}
	return args, nil
}

func coerceDefault(p Param) (any, error) {
	if p.DefaultValue == "null" || p.DefaultValue == "" {
		return nil, nil
	}
	var raw any
	if err := json.Unmarshal([]byte(p.DefaultValue), &raw); err != nil {
		// Fall back to treating the default as a literal string.
		return p.DefaultValue, nil
	}
	return coerceValue(p, raw)
}

func coerceValue(p Param, value any) (any, error) {
	switch p.Type {
	case TypeString, TypeNullableString:
		s, ok := value.(string)
		if !ok {
			return nil, typeMismatch(p, "string")
		}
		return s, nil
	case TypeBool, TypeNullableBool:
		b, ok := value.(bool)
		if !ok {
			return nil, typeMismatch(p, "bool")
		}
		return b, nil
	case TypeInt, TypeNullableInt:
		n, ok := value.(float64)
		if !ok {
			return nil, typeMismatch(p, "int")
		}
		return int(n), nil
	case TypeLong, TypeNullableLong:
		n, ok := value.(float64)
		if !ok {
			return nil, typeMismatch(p, "long")
		}
		return int64(n), nil
	case TypeFloat, TypeNullableFloat:
		n, ok := value.(float64)
		if !ok {
			return nil, typeMismatch(p, "float")
		}
		return float32(n), nil
	case TypeDouble, TypeNullableDouble:
		n, ok := value.(float64)
		if !ok {
			return nil, typeMismatch(p, "double")
		}
		return n, nil
	default:
		// Compound/unknown type: re-serialize the raw JSON value for the
		// handler to interpret.
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, &BindError{Message: fmt.Sprintf("Parameter '%s' could not be re-encoded: %v", p.Name, err)}
		}
		return string(encoded), nil
	}
}

func typeMismatch(p Param, want string) error {
	return &BindError{Message: fmt.Sprintf("Parameter '%s' must be a %s", p.Name, want)}
}
