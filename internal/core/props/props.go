// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package props fills the gaps in a partial button props object.

A renderer receives whatever subset of props the caller supplied. [Resolve]
turns that subset into a complete object: every string attribute is present,
the variant falls back per axis to the default variant, and the state flags
default to false. Accessibility attributes are copied without defaults.
*/
package props

import (
	"github.com/taibuivan/uibutton/internal/core/button"
	"github.com/taibuivan/uibutton/internal/platform/validate"
	"github.com/taibuivan/uibutton/pkg/pointer"
)

// # Defaults

// DefaultType is the button type used when none is supplied.
const DefaultType = button.TypeButton

// DefaultVariant is the variant each unset axis falls back to.
var DefaultVariant = Variant{
	Size:     "md",
	Intent:   "primary",
	Tone:     "solid",
	Emphasis: "medium",
}

// # Partial Props

// Props is a partial button props object. Nil fields are unset.
type Props struct {
	ID      *string         `json:"id,omitempty"`
	Name    *string         `json:"name,omitempty"`
	Type    *string         `json:"type,omitempty"`
	Href    *string         `json:"href,omitempty"`
	Target  *string         `json:"target,omitempty"`
	Rel     *string         `json:"rel,omitempty"`
	Variant *PartialVariant `json:"variant,omitempty"`
	State   *PartialState   `json:"state,omitempty"`
	A11y    *A11y           `json:"a11y,omitempty"`
}

// PartialVariant overrides individual variant axes.
type PartialVariant struct {
	Size     *string `json:"size,omitempty"`
	Intent   *string `json:"intent,omitempty"`
	Tone     *string `json:"tone,omitempty"`
	Emphasis *string `json:"emphasis,omitempty"`
}

// PartialState overrides individual state flags.
type PartialState struct {
	Disabled *bool `json:"disabled,omitempty"`
	Loading  *bool `json:"loading,omitempty"`
}

// A11y holds the ARIA attributes of a button. Unset attributes stay unset.
type A11y struct {
	Role            string `json:"role,omitempty"`
	AriaLabel       string `json:"ariaLabel,omitempty"`
	AriaLabelledBy  string `json:"ariaLabelledBy,omitempty"`
	AriaDescribedBy string `json:"ariaDescribedBy,omitempty"`
	AriaHidden      *bool  `json:"ariaHidden,omitempty"`
	AriaPressed     *bool  `json:"ariaPressed,omitempty"`
	AriaExpanded    *bool  `json:"ariaExpanded,omitempty"`
	TabIndex        *int   `json:"tabIndex,omitempty"`
}

// # Resolved Props

// Resolved is a complete props object.
type Resolved struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Type    string  `json:"type"`
	Href    string  `json:"href"`
	Target  string  `json:"target"`
	Rel     string  `json:"rel"`
	Variant Variant `json:"variant"`
	State   State   `json:"state"`
	A11y    A11y    `json:"a11y"`
}

// Variant is a fully specified variant.
type Variant struct {
	Size     string `json:"size"`
	Intent   string `json:"intent"`
	Tone     string `json:"tone"`
	Emphasis string `json:"emphasis"`
}

// State is a fully specified state.
type State struct {
	Disabled bool `json:"disabled"`
	Loading  bool `json:"loading"`
}

// # Resolution

// Resolve completes props. It never fails and does not check values; use
// [Validate] first when the input is untrusted.
func Resolve(props Props) Resolved {
	return Resolved{
		ID:      pointer.Val(props.ID),
		Name:    pointer.Val(props.Name),
		Type:    pointer.Fallback(props.Type, DefaultType),
		Href:    pointer.Val(props.Href),
		Target:  pointer.Val(props.Target),
		Rel:     pointer.Val(props.Rel),
		Variant: resolveVariant(props.Variant),
		State:   resolveState(props.State),
		A11y:    copyA11y(props.A11y),
	}
}

// Validate checks the supplied type, the only attribute with a closed vocabulary.
func Validate(props Props) error {
	v := &validate.Validator{}

	if props.Type != nil {
		v.OneOf("type", *props.Type, button.TypeButton, button.TypeSubmit, button.TypeReset)
	}

	return v.Err()
}

func resolveVariant(partial *PartialVariant) Variant {
	if partial == nil {
		return DefaultVariant
	}
	return Variant{
		Size:     pointer.Fallback(partial.Size, DefaultVariant.Size),
		Intent:   pointer.Fallback(partial.Intent, DefaultVariant.Intent),
		Tone:     pointer.Fallback(partial.Tone, DefaultVariant.Tone),
		Emphasis: pointer.Fallback(partial.Emphasis, DefaultVariant.Emphasis),
	}
}

func resolveState(partial *PartialState) State {
	if partial == nil {
		return State{}
	}
	return State{
		Disabled: pointer.Val(partial.Disabled),
		Loading:  pointer.Val(partial.Loading),
	}
}

func copyA11y(source *A11y) A11y {
	if source == nil {
		return A11y{}
	}

	copied := *source
	if source.AriaHidden != nil {
		copied.AriaHidden = pointer.To(*source.AriaHidden)
	}
	if source.AriaPressed != nil {
		copied.AriaPressed = pointer.To(*source.AriaPressed)
	}
	if source.AriaExpanded != nil {
		copied.AriaExpanded = pointer.To(*source.AriaExpanded)
	}
	if source.TabIndex != nil {
		copied.TabIndex = pointer.To(*source.TabIndex)
	}
	return copied
}
