// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package button

import (
	"strings"

	"github.com/taibuivan/uibutton/internal/platform/validate"
)

// # State

// State is the interaction state of a button.
type State string

const (
	StateIdle     State = "idle"
	StateHovered  State = "hovered"
	StatePressed  State = "pressed"
	StateFocused  State = "focused"
	StateDisabled State = "disabled"
	StateLoading  State = "loading"
)

// States lists every state in declaration order.
var States = []State{StateIdle, StateHovered, StatePressed, StateFocused, StateDisabled, StateLoading}

// IsValid reports whether s is a known state.
func (s State) IsValid() bool { return contains(States, s) }

func (s State) String() string { return string(s) }

// ParseState converts raw into a [State].
func ParseState(raw string) (State, error) {
	state := State(raw)
	if !state.IsValid() {
		return "", validate.FieldErr(FieldState, "Invalid state. Must be one of: "+join(States))
	}
	return state, nil
}

// # Emphasis

// Emphasis is the visual weight of a button, driving contrast requirements.
type Emphasis string

const (
	EmphasisLow    Emphasis = "low"
	EmphasisMedium Emphasis = "medium"
	EmphasisHigh   Emphasis = "high"
)

// Emphases lists every emphasis level from lowest to highest.
var Emphases = []Emphasis{EmphasisLow, EmphasisMedium, EmphasisHigh}

// IsValid reports whether e is a known emphasis.
func (e Emphasis) IsValid() bool { return contains(Emphases, e) }

func (e Emphasis) String() string { return string(e) }

// ParseEmphasis converts raw into an [Emphasis].
func ParseEmphasis(raw string) (Emphasis, error) {
	emphasis := Emphasis(raw)
	if !emphasis.IsValid() {
		return "", validate.FieldErr(FieldEmphasis, "Invalid emphasis. Must be one of: "+join(Emphases))
	}
	return emphasis, nil
}

// # Icon Position

// IconPosition places the icon before or after the label.
type IconPosition string

const (
	IconStart IconPosition = "start"
	IconEnd   IconPosition = "end"
)

// IconPositions lists the allowed icon positions.
var IconPositions = []IconPosition{IconStart, IconEnd}

// IsValid reports whether p is start or end.
func (p IconPosition) IsValid() bool { return contains(IconPositions, p) }

func (p IconPosition) String() string { return string(p) }

// ParseIconPosition converts raw into an [IconPosition].
func ParseIconPosition(raw string) (IconPosition, error) {
	position := IconPosition(raw)
	if !position.IsValid() {
		return "", validate.FieldErr(FieldIconPosition, `Icon position must be either "start" or "end"`)
	}
	return position, nil
}

// # Click Type

// ClickType is the input that triggered a click.
type ClickType string

const (
	ClickPrimary   ClickType = "primary"
	ClickSecondary ClickType = "secondary"
	ClickKeyboard  ClickType = "keyboard"
)

// ClickTypes lists the allowed click types.
var ClickTypes = []ClickType{ClickPrimary, ClickSecondary, ClickKeyboard}

// IsValid reports whether c is a known click type.
func (c ClickType) IsValid() bool { return contains(ClickTypes, c) }

func (c ClickType) String() string { return string(c) }

// # Helpers

func contains[T ~string](set []T, value T) bool {
	for _, candidate := range set {
		if candidate == value {
			return true
		}
	}
	return false
}

func join[T ~string](set []T) string {
	parts := make([]string, len(set))
	for i, value := range set {
		parts[i] = string(value)
	}
	return strings.Join(parts, ", ")
}
