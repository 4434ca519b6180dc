// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contract

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/uibutton/internal/core/shared"
	"github.com/taibuivan/uibutton/internal/platform/ctxutil"
	"github.com/taibuivan/uibutton/pkg/slice"
)

// # Service Layer

// Service coordinates contract creation, storage, and validation.
type Service struct {
	repository Repository
	useCase    *CreateContractUseCase
	validators []shared.Validator[*Contract]
	publisher  shared.Publisher
}

// NewService constructs a contract [Service]. Stored contracts are checked
// against validators on demand by [Service.Validate].
func NewService(repository Repository, useCase *CreateContractUseCase, publisher shared.Publisher, validators ...shared.Validator[*Contract]) *Service {
	return &Service{
		repository: repository,
		useCase:    useCase,
		validators: validators,
		publisher:  publisher,
	}
}

// ValidationReport is the outcome of validating a stored contract.
type ValidationReport struct {
	ContractID string                   `json:"contract_id"`
	Name       string                   `json:"name"`
	IsValid    bool                     `json:"is_valid"`
	Validators []shared.ValidatorResult `json:"validators"`
	Combined   shared.Result            `json:"combined"`
}

// SeedSummary counts what [Service.Seed] did.
type SeedSummary struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

// # Commands

/*
Create builds a contract from request and stores it.

Description: The use case envelope is returned as is. A storage failure
turns a successful envelope into a failed one, and events are only
published once the contract is stored.

Parameters:
  - ctx: context.Context
  - request: CreateContractRequest

Returns:
  - *CreateContractResponse: Never nil; Err is set when Success is false
*/
func (service *Service) Create(ctx context.Context, request CreateContractRequest) *CreateContractResponse {
	response := service.useCase.Execute(ctx, request)
	if !response.Success {
		return response
	}

	if err := service.repository.Save(ctx, response.Contract); err != nil {
		return failure(err, "")
	}

	service.publish(ctx, response.DomainEvents)

	ctxutil.GetLogger(ctx).InfoContext(ctx, "contract_created",
		slog.String("contract_id", response.Contract.ID()),
		slog.String("name", response.Contract.Name().String()),
		slog.Bool("is_accessible", response.Accessibility.IsAccessible),
		slog.String("actor", ctxutil.Actor(ctx)),
	)

	return response
}

// CreateStandard stores the canonical contract under name.
func (service *Service) CreateStandard(ctx context.Context, name string) (*Contract, error) {
	contract, err := service.useCase.CreateStandardContract(name)
	if err != nil {
		return nil, err
	}

	if err := service.repository.Save(ctx, contract); err != nil {
		return nil, err
	}

	service.publish(ctx, contract.DomainEvents())

	ctxutil.GetLogger(ctx).InfoContext(ctx, "contract_created",
		slog.String("contract_id", contract.ID()),
		slog.String("name", name),
		slog.Bool("standard", true),
		slog.String("actor", ctxutil.Actor(ctx)),
	)

	return contract, nil
}

/*
AddVariant declares a new variant on a stored contract.

Returns:
  - *Contract: The updated contract
  - error: NOT_FOUND, VALIDATION_ERROR for a malformed variant, INVALID_OPERATION
    when the variant or its type is already declared
*/
func (service *Service) AddVariant(ctx context.Context, id string, input VariantInput) (*Contract, error) {
	variant, err := NewVariant(input.Type, input.Values)
	if err != nil {
		return nil, err
	}

	contract, err := service.repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := contract.AddVariant(variant); err != nil {
		return nil, err
	}

	if err := service.repository.Save(ctx, contract); err != nil {
		return nil, err
	}

	service.publish(ctx, contract.DomainEvents())

	ctxutil.GetLogger(ctx).InfoContext(ctx, "contract_variant_added",
		slog.String("contract_id", id),
		slog.String("variant_type", string(variant.Type())),
		slog.String("actor", ctxutil.Actor(ctx)),
	)

	return contract, nil
}

// Delete removes a contract by ID.
func (service *Service) Delete(ctx context.Context, id string) error {
	if err := service.repository.Delete(ctx, id); err != nil {
		return err
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "contract_deleted",
		slog.String("contract_id", id),
		slog.String("actor", ctxutil.Actor(ctx)),
	)
	return nil
}

/*
Seed stores every contract of file whose name is not taken yet.

Description: Existing names are skipped so restarts are idempotent. The
first entry that fails to build or store aborts the run.
*/
func (service *Service) Seed(ctx context.Context, file *SeedFile) (SeedSummary, error) {
	var summary SeedSummary

	for _, entry := range file.Contracts {
		if _, err := service.repository.FindByName(ctx, entry.Name); err == nil {
			summary.Skipped++
			continue
		}

		response := service.Create(ctx, entry.Request())
		if !response.Success {
			return summary, fmt.Errorf("seed: contract %q: %w", entry.Name, response.Err)
		}
		summary.Created++
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "contracts_seeded",
		slog.Int("created", summary.Created),
		slog.Int("skipped", summary.Skipped),
	)

	return summary, nil
}

// # Queries

// Get returns the contract with the given ID.
func (service *Service) Get(ctx context.Context, id string) (*Contract, error) {
	return service.repository.FindByID(ctx, id)
}

// GetByName returns the contract with the given name.
func (service *Service) GetByName(ctx context.Context, name string) (*Contract, error) {
	return service.repository.FindByName(ctx, name)
}

// List returns one page of contracts and the total matching filter.
func (service *Service) List(ctx context.Context, filter Filter, limit, offset int) ([]*Contract, int, error) {
	return service.repository.List(ctx, filter, limit, offset)
}

// ListByVariantType returns every contract declaring variantType.
func (service *Service) ListByVariantType(ctx context.Context, variantType VariantType) ([]*Contract, error) {
	return service.repository.FindByVariantType(ctx, variantType)
}

/*
Validate runs the registered validators against a stored contract.

Description: Validators run in priority order. A validator that fails or
panics becomes a failed entry and the remaining validators still run.
*/
func (service *Service) Validate(ctx context.Context, id string) (*ValidationReport, error) {
	contract, err := service.repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	results := shared.Run(ctx, service.validators, contract)
	combined := shared.NewResult(shared.Merge(results))

	ctxutil.GetLogger(ctx).DebugContext(ctx, "contract_validated",
		slog.String("contract_id", id),
		slog.Bool("is_valid", combined.IsValid),
		slog.Any("validators", slice.Map(results, func(result shared.ValidatorResult) string { return result.Validator })),
	)

	return &ValidationReport{
		ContractID: contract.ID(),
		Name:       contract.Name().String(),
		IsValid:    combined.IsValid,
		Validators: results,
		Combined:   combined,
	}, nil
}

// # Helpers

func (service *Service) publish(ctx context.Context, events []shared.Event) {
	if err := service.publisher.Publish(ctx, events...); err != nil {
		ctxutil.GetLogger(ctx).WarnContext(ctx, "contract_events_publish_failed", slog.Any("error", err))
	}
}
