// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contract

import (
	"context"
	"time"

	"github.com/taibuivan/uibutton/internal/core/shared"
	"github.com/taibuivan/uibutton/internal/platform/apperr"
)

// ResourceName labels contracts in NOT_FOUND and CONFLICT messages.
const ResourceName = "Button contract"

// ErrNotFound is returned when no contract matches a lookup.
var ErrNotFound = apperr.NotFound(ResourceName)

// ErrNameTaken builds the CONFLICT returned when another contract owns name.
func ErrNameTaken(name string) *apperr.AppError {
	return apperr.Conflict("Button contract name '" + name + "' is already taken")
}

// # Contract Data Access

// Filter narrows [Repository.List].
type Filter struct {
	// VariantTypes keeps contracts that declare every listed type.
	VariantTypes []VariantType
}

// Repository defines the data access contract for button contracts.
//
// Implementations are safe for concurrent use and never share a *Contract
// between callers: every read returns an independent copy.
type Repository interface {

	/*
		Save inserts or replaces the contract with the same ID.

		Returns:
		  - error: CONFLICT if another contract already uses the name
	*/
	Save(ctx context.Context, contract *Contract) error

	// FindByID returns [ErrNotFound] when the ID is unknown.
	FindByID(ctx context.Context, id string) (*Contract, error)

	// FindByName returns [ErrNotFound] when the name is unknown.
	FindByName(ctx context.Context, name string) (*Contract, error)

	// FindAll returns every contract ordered by name.
	FindAll(ctx context.Context) ([]*Contract, error)

	/*
		List returns a filtered page of contracts ordered by name, and the
		total count matching the filter.
	*/
	List(ctx context.Context, filter Filter, limit, offset int) ([]*Contract, int, error)

	// FindByVariantType returns the contracts declaring variantType.
	FindByVariantType(ctx context.Context, variantType VariantType) ([]*Contract, error)

	// Delete removes the contract. It returns [ErrNotFound] when the ID is unknown.
	Delete(ctx context.Context, id string) error

	// Exists reports whether the ID is stored.
	Exists(ctx context.Context, id string) (bool, error)

	// Count returns the number of stored contracts.
	Count(ctx context.Context) (int, error)
}

// # Persistence Record

// record is the storage form shared by every repository implementation.
type record struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Variants      []VariantInput `json:"variants"`
	Props         []Prop         `json:"props"`
	Accessibility Accessibility  `json:"accessibility"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func toRecord(contract *Contract) record {
	variants := make([]VariantInput, 0, len(contract.variants))
	for _, variant := range contract.variants {
		variants = append(variants, VariantInput{Type: string(variant.Type()), Values: variant.Values()})
	}

	return record{
		ID:            contract.ID(),
		Name:          contract.name.String(),
		Variants:      variants,
		Props:         contract.Props(),
		Accessibility: contract.Accessibility(),
		CreatedAt:     contract.CreatedAt(),
		UpdatedAt:     contract.UpdatedAt(),
	}
}

func (r record) restore(clock shared.Clock) (*Contract, error) {
	variants := make([]Variant, 0, len(r.Variants))
	for _, input := range r.Variants {
		variant, err := NewVariant(input.Type, input.Values)
		if err != nil {
			return nil, err
		}
		variants = append(variants, variant)
	}

	return Restore(RestoreParams{
		ID:            r.ID,
		Name:          r.Name,
		Variants:      variants,
		Props:         r.Props,
		Accessibility: r.Accessibility,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
		Clock:         clock,
	})
}

func (r record) declares(variantType VariantType) bool {
	for _, variant := range r.Variants {
		if variant.Type == string(variantType) {
			return true
		}
	}
	return false
}

func (r record) matches(filter Filter) bool {
	for _, variantType := range filter.VariantTypes {
		if !r.declares(variantType) {
			return false
		}
	}
	return true
}
