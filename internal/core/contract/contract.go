// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package contract models the declarative schema a button component must satisfy.

A [Contract] aggregates variant axes ([Variant]), a property schema ([Prop]),
and accessibility rules ([Accessibility]) under a unique [Name].

# Core Responsibility

  - Invariants: valid name, known variant types, no duplicate variant type,
    known property types.
  - Rules: [ContractValidator] reports structural errors and recommendations.
  - Orchestration: [CreateContractUseCase] turns construction failures into data.
  - Persistence: [Repository] with in-memory and PostgreSQL implementations.
*/
package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/taibuivan/uibutton/internal/core/shared"
	"github.com/taibuivan/uibutton/internal/platform/apperr"
	"github.com/taibuivan/uibutton/internal/platform/validate"
)

// ErrDuplicateVariant is returned by [Contract.AddVariant] for an equal variant.
var ErrDuplicateVariant = apperr.InvalidOperation("Variant already exists in this contract")

// # Entity

// Contract is a named button component schema.
//
// # Concurrency
//
// Contract is not safe for concurrent use. Repositories hand out independent copies.
type Contract struct {
	shared.Entity

	name          Name
	variants      []Variant
	props         []Prop
	accessibility Accessibility
	notes         []string
}

// CreateParams holds the inputs of [New].
type CreateParams struct {
	// ID is generated (UUIDv7) when empty.
	ID       string
	Name     string
	Variants []Variant
	Props    []Prop
	// Accessibility defaults to [DefaultAccessibility] when nil.
	Accessibility *Accessibility
	Clock         shared.Clock
}

/*
New creates a contract and records a [CreatedEvent].

Returns VALIDATION_ERROR when the name is malformed, when two variants share a
type, or when a prop has no name or an unknown type. A contract that declares
variants but lacks size or intent is accepted; the gap is surfaced by [Contract.Notes].
*/
func New(params CreateParams) (*Contract, error) {
	name, err := ParseName(params.Name)
	if err != nil {
		return nil, err
	}

	validator := &validate.Validator{}

	seen := make(map[VariantType]bool, len(params.Variants))
	for _, variant := range params.Variants {
		validator.Custom(FieldVariants, seen[variant.Type()], fmt.Sprintf("Duplicate variant type: %s", variant.Type()))
		seen[variant.Type()] = true
	}

	for index, prop := range params.Props {
		field := fmt.Sprintf("%s[%d]", FieldProps, index)
		validator.Custom(field, strings.TrimSpace(prop.Name) == "", "Prop name must be a non-empty string")
		validator.Custom(field, !prop.Type.IsValid(), fmt.Sprintf(
			"Invalid prop type for '%s': %s. Must be one of: string, number, boolean, array, object", prop.Name, prop.Type))
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	accessibility := DefaultAccessibility()
	if params.Accessibility != nil {
		accessibility = params.Accessibility.clone()
	}

	contract := &Contract{
		Entity:        shared.NewEntity(params.ID, params.Clock),
		name:          name,
		variants:      append([]Variant(nil), params.Variants...),
		props:         cloneProps(params.Props),
		accessibility: accessibility,
	}
	contract.notes = contract.businessNotes()

	contract.Record(CreatedEvent{
		EventHeader: shared.NewEventHeader(EventCreated, contract.ID(), contract.Now()),
		Name:        name.String(),
	})

	return contract, nil
}

// RestoreParams rebuilds a persisted contract.
type RestoreParams struct {
	ID            string
	Name          string
	Variants      []Variant
	Props         []Prop
	Accessibility Accessibility
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Clock         shared.Clock
}

// Restore rebuilds a contract from storage without recording events.
// Only the name is re-validated; everything else is trusted.
func Restore(params RestoreParams) (*Contract, error) {
	name, err := ParseName(params.Name)
	if err != nil {
		return nil, err
	}

	contract := &Contract{
		Entity:        shared.RestoreEntity(params.ID, params.CreatedAt, params.UpdatedAt, params.Clock),
		name:          name,
		variants:      append([]Variant(nil), params.Variants...),
		props:         cloneProps(params.Props),
		accessibility: params.Accessibility.clone(),
	}
	contract.notes = contract.businessNotes()

	return contract, nil
}

// # Behaviour

/*
AddVariant appends a variant after construction.

Fails with INVALID_OPERATION when an equal variant exists ([ErrDuplicateVariant])
or when another variant already declares the same type.
*/
func (c *Contract) AddVariant(variant Variant) error {
	for _, existing := range c.variants {
		if existing.Equals(variant) {
			return ErrDuplicateVariant
		}
	}

	if _, exists := c.VariantByType(variant.Type()); exists {
		return apperr.InvalidOperation(fmt.Sprintf("Variant type '%s' already exists in this contract", variant.Type()))
	}

	c.variants = append(c.variants, variant)
	c.Touch()
	c.notes = c.businessNotes()

	c.Record(VariantAddedEvent{
		EventHeader: shared.NewEventHeader(EventVariantAdded, c.ID(), c.Now()),
		Variant:     variant,
	})

	return nil
}

// ValidateAccessibility checks that a role and keyboard support are declared.
// The report is returned and recorded as an event; nothing else changes.
func (c *Contract) ValidateAccessibility() shared.AccessibilityReport {
	violations := []string{}

	if strings.TrimSpace(c.accessibility.Role) == "" {
		violations = append(violations, "Button must have an ARIA role")
	}
	if len(c.accessibility.Keyboard) == 0 {
		violations = append(violations, "Button must have keyboard support")
	}

	isAccessible := len(violations) == 0
	c.Record(AccessibilityValidatedEvent{
		EventHeader:  shared.NewEventHeader(EventAccessibilityValidated, c.ID(), c.Now()),
		IsAccessible: isAccessible,
		Violations:   violations,
	})

	return shared.AccessibilityReport{IsAccessible: isAccessible, Violations: append([]string{}, violations...)}
}

// businessNotes lists non-fatal observations about the variant set.
func (c *Contract) businessNotes() []string {
	if len(c.variants) == 0 {
		return nil
	}

	_, hasSize := c.VariantByType(VariantSize)
	_, hasIntent := c.VariantByType(VariantIntent)
	if hasSize && hasIntent {
		return nil
	}

	return []string{"Button contracts usually declare both size and intent variants"}
}

// # Queries

// VariantByType returns the first variant of the given type.
func (c *Contract) VariantByType(variantType VariantType) (Variant, bool) {
	for _, variant := range c.variants {
		if variant.Type() == variantType {
			return variant, true
		}
	}
	return Variant{}, false
}

// PropByName returns the first prop with the given name.
func (c *Contract) PropByName(name string) (Prop, bool) {
	for _, prop := range c.props {
		if prop.Name == name {
			return prop.clone(), true
		}
	}
	return Prop{}, false
}

// HasProp reports whether a prop with the given name is declared.
func (c *Contract) HasProp(name string) bool {
	_, ok := c.PropByName(name)
	return ok
}

// Name returns the contract identifier.
func (c *Contract) Name() Name { return c.name }

// Variants returns a copy of the variants in declaration order.
func (c *Contract) Variants() []Variant { return append([]Variant(nil), c.variants...) }

// Props returns a copy of the property schema.
func (c *Contract) Props() []Prop { return cloneProps(c.props) }

// Accessibility returns a copy of the accessibility rules.
func (c *Contract) Accessibility() Accessibility { return c.accessibility.clone() }

// Notes returns the non-fatal business observations.
func (c *Contract) Notes() []string { return append([]string{}, c.notes...) }

// # Presentation

// Snapshot is a read-only, JSON-friendly view of a contract.
type Snapshot struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Variants      []Variant     `json:"variants"`
	Props         []Prop        `json:"props"`
	Accessibility Accessibility `json:"accessibility"`
	Notes         []string      `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// Snapshot captures the current attributes.
func (c *Contract) Snapshot() Snapshot {
	variants := c.Variants()
	if variants == nil {
		variants = []Variant{}
	}
	return Snapshot{
		ID:            c.ID(),
		Name:          c.name.String(),
		Variants:      variants,
		Props:         c.Props(),
		Accessibility: c.Accessibility(),
		Notes:         c.notes,
		CreatedAt:     c.CreatedAt(),
		UpdatedAt:     c.UpdatedAt(),
	}
}

func cloneProps(props []Prop) []Prop {
	cloned := make([]Prop, len(props))
	for i, prop := range props {
		cloned[i] = prop.clone()
	}
	return cloned
}
