// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package button

import "github.com/taibuivan/uibutton/internal/core/shared"

// # Event Types

const (
	EventCreated                = "ButtonCreated"
	EventClicked                = "ButtonClicked"
	EventStateChanged           = "ButtonStateChanged"
	EventAccessibilityValidated = "ButtonAccessibilityValidated"
)

// CreatedEvent is recorded once when a button is constructed.
type CreatedEvent struct {
	shared.EventHeader
	ButtonType string `json:"button_type"`
	HasIcon    bool   `json:"has_icon"`
}

// ClickedEvent is recorded on every accepted click.
type ClickedEvent struct {
	shared.EventHeader
	ClickType ClickType `json:"click_type"`
}

// StateChangedEvent is recorded on every accepted state transition.
type StateChangedEvent struct {
	shared.EventHeader
	PreviousState State `json:"previous_state"`
	NewState      State `json:"new_state"`
}

// AccessibilityValidatedEvent is recorded after each accessibility recomputation.
type AccessibilityValidatedEvent struct {
	shared.EventHeader
	IsAccessible bool     `json:"is_accessible"`
	Violations   []string `json:"violations"`
}
