// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contract

import "github.com/taibuivan/uibutton/internal/core/shared"

// # Event Types

const (
	EventCreated                = "ButtonContractCreated"
	EventVariantAdded           = "ButtonContractVariantAdded"
	EventAccessibilityValidated = "ButtonContractAccessibilityValidated"
)

// CreatedEvent is recorded once when a contract is constructed.
type CreatedEvent struct {
	shared.EventHeader
	Name string `json:"name"`
}

// VariantAddedEvent is recorded when a variant is appended after construction.
type VariantAddedEvent struct {
	shared.EventHeader
	Variant Variant `json:"variant"`
}

// AccessibilityValidatedEvent is recorded after each accessibility check.
type AccessibilityValidatedEvent struct {
	shared.EventHeader
	IsAccessible bool     `json:"is_accessible"`
	Violations   []string `json:"violations"`
}
