// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package button

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/taibuivan/uibutton/internal/core/shared"
	"github.com/taibuivan/uibutton/internal/platform/validate"
)

// # Button Type

// Raw button type values, matching the HTML button "type" attribute.
const (
	TypeButton = "button"
	TypeSubmit = "submit"
	TypeReset  = "reset"
)

var validButtonTypes = []string{TypeButton, TypeSubmit, TypeReset}

// ButtonType is the validated HTML type of a button.
//
// The zero value is not a valid type; obtain one through [ParseButtonType].
type ButtonType struct {
	value shared.ValueObject[string]
}

// ParseButtonType validates raw and wraps it.
//
// It fails with VALIDATION_ERROR when raw is empty or not one of
// "button", "submit", "reset".
func ParseButtonType(raw string) (ButtonType, error) {
	if raw == "" {
		return ButtonType{}, validate.FieldErr(FieldButtonType, "Button type must be a non-empty string")
	}

	for _, valid := range validButtonTypes {
		if raw == valid {
			return ButtonType{value: shared.NewValueObject(raw)}, nil
		}
	}

	return ButtonType{}, validate.FieldErr(FieldButtonType,
		fmt.Sprintf("Invalid button type: %s. Must be one of: %s", raw, strings.Join(validButtonTypes, ", ")))
}

// MustButtonType is [ParseButtonType] for compile-time constants. It panics on invalid input.
func MustButtonType(raw string) ButtonType {
	buttonType, err := ParseButtonType(raw)
	if err != nil {
		panic(err)
	}
	return buttonType
}

// Value returns the raw type string.
func (t ButtonType) Value() string { return t.value.Value() }

// String returns the raw type string.
func (t ButtonType) String() string { return t.value.Value() }

// Equals reports whether both types hold the same value.
func (t ButtonType) Equals(other ButtonType) bool { return t.value.Equals(other.value) }

func (t ButtonType) IsSubmit() bool { return t.Value() == TypeSubmit }
func (t ButtonType) IsReset() bool  { return t.Value() == TypeReset }
func (t ButtonType) IsButton() bool { return t.Value() == TypeButton }

// DefaultFormMethod is the form method a button of this type implies.
func (t ButtonType) DefaultFormMethod() string {
	if t.IsSubmit() {
		return "post"
	}
	return "get"
}

// SemanticRole classifies the action the button performs.
func (t ButtonType) SemanticRole() string {
	switch t.Value() {
	case TypeSubmit:
		return "primary-action"
	case TypeReset:
		return "secondary-action"
	default:
		return "neutral-action"
	}
}

// MarshalJSON renders the type as its raw string.
func (t ButtonType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Value())
}
