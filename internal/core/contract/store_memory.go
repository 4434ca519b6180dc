// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contract

import (
	"context"
	"sort"
	"sync"

	"github.com/taibuivan/uibutton/internal/core/shared"
)

// MemoryRepository is an in-process [Repository] keyed by ID with a unique name index.
type MemoryRepository struct {
	mu     sync.RWMutex
	byID   map[string]record
	byName map[string]string
	clock  shared.Clock
}

// NewMemoryRepository creates an empty store. Restored contracts use clock.
func NewMemoryRepository(clock shared.Clock) *MemoryRepository {
	return &MemoryRepository{
		byID:   make(map[string]record),
		byName: make(map[string]string),
		clock:  clock,
	}
}

// Save implements [Repository].
func (repository *MemoryRepository) Save(ctx context.Context, contract *Contract) error {
	stored := toRecord(contract)

	repository.mu.Lock()
	defer repository.mu.Unlock()

	if owner, taken := repository.byName[stored.Name]; taken && owner != stored.ID {
		return ErrNameTaken(stored.Name)
	}

	// A rename releases the previous name
	if previous, exists := repository.byID[stored.ID]; exists && previous.Name != stored.Name {
		delete(repository.byName, previous.Name)
	}

	repository.byID[stored.ID] = stored
	repository.byName[stored.Name] = stored.ID
	return nil
}

// FindByID implements [Repository].
func (repository *MemoryRepository) FindByID(ctx context.Context, id string) (*Contract, error) {
	repository.mu.RLock()
	stored, ok := repository.byID[id]
	repository.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	return stored.restore(repository.clock)
}

// FindByName implements [Repository].
func (repository *MemoryRepository) FindByName(ctx context.Context, name string) (*Contract, error) {
	repository.mu.RLock()
	id, ok := repository.byName[name]
	repository.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	return repository.FindByID(ctx, id)
}

// FindAll implements [Repository].
func (repository *MemoryRepository) FindAll(ctx context.Context) ([]*Contract, error) {
	return repository.collect(func(record) bool { return true })
}

// List implements [Repository].
func (repository *MemoryRepository) List(ctx context.Context, filter Filter, limit, offset int) ([]*Contract, int, error) {
	matching, err := repository.collect(func(stored record) bool { return stored.matches(filter) })
	if err != nil {
		return nil, 0, err
	}

	total := len(matching)
	if offset >= total {
		return []*Contract{}, total, nil
	}

	end := total
	if limit > 0 && offset+limit < total {
		end = offset + limit
	}

	return matching[offset:end], total, nil
}

// FindByVariantType implements [Repository].
func (repository *MemoryRepository) FindByVariantType(ctx context.Context, variantType VariantType) ([]*Contract, error) {
	return repository.collect(func(stored record) bool { return stored.declares(variantType) })
}

// Delete implements [Repository].
func (repository *MemoryRepository) Delete(ctx context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	stored, ok := repository.byID[id]
	if !ok {
		return ErrNotFound
	}

	delete(repository.byID, id)
	delete(repository.byName, stored.Name)
	return nil
}

// Exists implements [Repository].
func (repository *MemoryRepository) Exists(ctx context.Context, id string) (bool, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	_, ok := repository.byID[id]
	return ok, nil
}

// Count implements [Repository].
func (repository *MemoryRepository) Count(ctx context.Context) (int, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	return len(repository.byID), nil
}

// Clear removes every contract.
func (repository *MemoryRepository) Clear() {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.byID = make(map[string]record)
	repository.byName = make(map[string]string)
}

// AccessibleContracts returns the contracts whose own accessibility check passes.
// The check runs on copies, so no events leak into stored state.
func (repository *MemoryRepository) AccessibleContracts(ctx context.Context) ([]*Contract, error) {
	all, err := repository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	accessible := make([]*Contract, 0, len(all))
	for _, contract := range all {
		if contract.ValidateAccessibility().IsAccessible {
			contract.DomainEvents()
			accessible = append(accessible, contract)
		}
	}
	return accessible, nil
}

// collect restores the matching records ordered by name.
func (repository *MemoryRepository) collect(keep func(record) bool) ([]*Contract, error) {
	repository.mu.RLock()
	selected := make([]record, 0, len(repository.byID))
	for _, stored := range repository.byID {
		if keep(stored) {
			selected = append(selected, stored)
		}
	}
	repository.mu.RUnlock()

	sort.Slice(selected, func(i, j int) bool { return selected[i].Name < selected[j].Name })

	contracts := make([]*Contract, 0, len(selected))
	for _, stored := range selected {
		contract, err := stored.restore(repository.clock)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, contract)
	}
	return contracts, nil
}
