// Package command implements the command descriptor model, registry,
// parameter binder, and help/get/do dispatch verbs (C10-C13).
package command

import (
	"context"

	"github.com/joestump/harnessd/internal/envelope"
)

// ParamType enumerates the JSON-coercible parameter types a descriptor can
// declare.
type ParamType string

const (
	TypeString  ParamType = "string"
	TypeInt     ParamType = "int"
	TypeLong    ParamType = "long"
	TypeDouble  ParamType = "double"
	TypeFloat   ParamType = "float"
	TypeBool    ParamType = "bool"
	TypeNullableString ParamType = "string?"
	TypeNullableInt    ParamType = "int?"
	TypeNullableLong   ParamType = "long?"
	TypeNullableDouble ParamType = "double?"
	TypeNullableFloat  ParamType = "float?"
	TypeNullableBool   ParamType = "bool?"
)

// IsNullable reports whether t accepts a JSON null.
func (t ParamType) IsNullable() bool {
	switch t {
	case TypeNullableString, TypeNullableInt, TypeNullableLong, TypeNullableDouble, TypeNullableFloat, TypeNullableBool:
		return true
	}
	return false
}

// Param describes one bindable handler parameter.
type Param struct {
	Name         string
	Type         ParamType
	Description  string
	Required     bool
	DefaultValue string // string form of the default; "null" when optional and unset
}

// Handler is the function a descriptor dispatches to. args holds the bound
// parameter values keyed by name; ctx carries the caller's cancellation
// signal.
type Handler func(ctx context.Context, args map[string]any) envelope.Envelope

// Descriptor is an immutable record for one registered operation.
type Descriptor struct {
	Name        string
	Category    string
	Description string
	IsMutation  bool
	Parameters  []Param
	Handler     Handler
}
