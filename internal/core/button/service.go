// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package button

import (
	"context"
	"log/slog"

	"github.com/taibuivan/uibutton/internal/core/shared"
	"github.com/taibuivan/uibutton/internal/platform/ctxutil"
)

// # Service Layer

// Service exposes button evaluation to the transport layer.
// Buttons are not persisted: each request builds, evaluates, and discards one.
type Service struct {
	useCase   *CreateButtonUseCase
	publisher shared.Publisher
}

// NewService constructs a [Service] around a configured use case.
func NewService(useCase *CreateButtonUseCase, publisher shared.Publisher) *Service {
	return &Service{useCase: useCase, publisher: publisher}
}

// ValidatorInfo describes one registered validator.
type ValidatorInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

/*
Create runs the use case and ships the drained events.

Description: A publish failure is logged and does not fail the request;
the evaluation itself already succeeded.

Parameters:
  - ctx: context.Context
  - input: CreateButtonInput

Returns:
  - *CreateButtonOutput: The evaluated button and its report
  - error: VALIDATION_ERROR on bad input
*/
func (service *Service) Create(ctx context.Context, input CreateButtonInput) (*CreateButtonOutput, error) {
	output, err := service.useCase.Execute(ctx, input)
	if err != nil {
		return nil, err
	}

	logger := ctxutil.GetLogger(ctx)
	if err := service.publisher.Publish(ctx, output.DomainEvents...); err != nil {
		logger.WarnContext(ctx, "button_events_publish_failed", slog.Any("error", err))
	}

	logger.InfoContext(ctx, "button_created",
		slog.String("button_id", output.Button.ID()),
		slog.String("button_type", output.Button.ButtonType().String()),
		slog.Bool("is_valid", output.IsValid),
		slog.Bool("is_accessible", output.ValidationResults.Accessibility.IsAccessible),
	)

	return output, nil
}

// CreatePreset evaluates one of the named presets.
func (service *Service) CreatePreset(ctx context.Context, preset string, options PresetOptions) (*CreateButtonOutput, error) {
	input, err := PresetInput(preset, options)
	if err != nil {
		return nil, err
	}
	return service.Create(ctx, input)
}

// Validators lists the registered validators.
func (service *Service) Validators() []ValidatorInfo {
	names := service.useCase.AvailableValidators()
	infos := make([]ValidatorInfo, 0, len(names))
	for _, name := range names {
		description, _ := service.useCase.ValidatorDescription(name)
		infos = append(infos, ValidatorInfo{Name: name, Description: description})
	}
	return infos
}
