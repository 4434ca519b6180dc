// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contract

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/taibuivan/uibutton/internal/core/shared"
	"github.com/taibuivan/uibutton/internal/platform/validate"
)

// # Field Identifiers

const (
	FieldID            = "id"
	FieldName          = "name"
	FieldVariants      = "variants"
	FieldVariantType   = "type"
	FieldVariantValues = "values"
	FieldProps         = "props"
	FieldAccessibility = "accessibility"
)

// MaxNameLength bounds contract names.
const MaxNameLength = 100

// # Name

// Name is a validated contract identifier such as "primary-btn".
type Name struct {
	value shared.ValueObject[string]
}

// ParseName validates raw against the identifier format.
func ParseName(raw string) (Name, error) {
	if strings.TrimSpace(raw) == "" {
		return Name{}, validate.FieldErr(FieldName, "Contract name must be a non-empty string")
	}
	if utf8.RuneCountInString(raw) > MaxNameLength {
		return Name{}, validate.FieldErr(FieldName, fmt.Sprintf("Contract name must be at most %d characters", MaxNameLength))
	}
	if !validate.IsIdentifier(raw) {
		return Name{}, validate.FieldErr(FieldName,
			"Contract name must start with a lowercase letter and contain only lowercase letters, digits, and dashes")
	}
	return Name{value: shared.NewValueObject(raw)}, nil
}

func (n Name) String() string { return n.value.Value() }

// Equals compares the underlying identifiers.
func (n Name) Equals(other Name) bool { return n.value.Equals(other.value) }

// # Props

// PropType is the declared type of a component property.
type PropType string

const (
	PropString  PropType = "string"
	PropNumber  PropType = "number"
	PropBoolean PropType = "boolean"
	PropArray   PropType = "array"
	PropObject  PropType = "object"
)

// PropTypes lists the allowed property types.
var PropTypes = []PropType{PropString, PropNumber, PropBoolean, PropArray, PropObject}

// IsValid reports whether t is an allowed property type.
func (t PropType) IsValid() bool {
	for _, known := range PropTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Prop is one entry of a contract's property schema.
//
// Default holds any JSON value; nil means no default. A nil Enum means the
// prop is unconstrained, while an empty Enum admits no value at all.
type Prop struct {
	Name        string   `json:"name"                  yaml:"name"`
	Type        PropType `json:"type"                  yaml:"type"`
	Required    bool     `json:"required"              yaml:"required"`
	Default     any      `json:"default,omitempty"     yaml:"default,omitempty"`
	Enum        []string `json:"enum,omitzero"        yaml:"enum,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// HasEnumValue reports whether value appears in the enum.
func (p Prop) HasEnumValue(value string) bool {
	for _, candidate := range p.Enum {
		if candidate == value {
			return true
		}
	}
	return false
}

func (p Prop) clone() Prop {
	if p.Enum != nil {
		p.Enum = append([]string{}, p.Enum...)
	}
	p.Default = copyValue(p.Default)
	return p
}

// copyValue deep-copies the JSON containers (objects and arrays) of a decoded
// value. Scalars are returned as they are.
func copyValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		copied := make(map[string]any, len(typed))
		for key, item := range typed {
			copied[key] = copyValue(item)
		}
		return copied
	case []any:
		copied := make([]any, len(typed))
		for i, item := range typed {
			copied[i] = copyValue(item)
		}
		return copied
	case []string:
		return append([]string{}, typed...)
	default:
		return value
	}
}

// # Accessibility

// Accessibility is the rule set a button component must satisfy.
type Accessibility struct {
	Role      string   `json:"role"            yaml:"role"`
	Keyboard  []string `json:"keyboard"        yaml:"keyboard"`
	Focusable bool     `json:"focusable"       yaml:"focusable"`
	Label     bool     `json:"label,omitempty" yaml:"label,omitempty"`
}

// DefaultAccessibility is applied when a contract declares none.
func DefaultAccessibility() Accessibility {
	return Accessibility{Role: "button", Keyboard: []string{"Enter", "Space"}, Focusable: true}
}

// SupportsKey reports whether key is listed.
func (a Accessibility) SupportsKey(key string) bool {
	for _, candidate := range a.Keyboard {
		if candidate == key {
			return true
		}
	}
	return false
}

func (a Accessibility) clone() Accessibility {
	a.Keyboard = append([]string{}, a.Keyboard...)
	return a
}
