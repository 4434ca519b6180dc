// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package button

import (
	"github.com/taibuivan/uibutton/internal/platform/apperr"
)

// # Presets

// Preset names accepted by [PresetInput].
const (
	PresetSubmit    = "submit"
	PresetCancel    = "cancel"
	PresetPrimary   = "primary"
	PresetSecondary = "secondary"
)

// PresetOptions tweaks a preset. Zero values keep the preset defaults.
type PresetOptions struct {
	ID           string
	Emphasis     Emphasis
	HasIcon      bool
	IconPosition IconPosition
}

// StandardSubmitButton describes a form submit button, high emphasis by default.
func StandardSubmitButton(options PresetOptions) CreateButtonInput {
	return CreateButtonInput{
		ID:         options.ID,
		ButtonType: TypeSubmit,
		Emphasis:   string(orEmphasis(options.Emphasis, EmphasisHigh)),
		HasIcon:    options.HasIcon,
	}
}

// StandardCancelButton describes a dismiss action, low emphasis by default.
func StandardCancelButton(options PresetOptions) CreateButtonInput {
	return CreateButtonInput{
		ID:         options.ID,
		ButtonType: TypeButton,
		Emphasis:   string(orEmphasis(options.Emphasis, EmphasisLow)),
		HasIcon:    options.HasIcon,
	}
}

// StandardPrimaryButton describes the main call to action. Emphasis is always high.
func StandardPrimaryButton(options PresetOptions) CreateButtonInput {
	return CreateButtonInput{
		ID:           options.ID,
		ButtonType:   TypeButton,
		Emphasis:     string(EmphasisHigh),
		HasIcon:      options.HasIcon,
		IconPosition: string(orIconPosition(options.IconPosition)),
	}
}

// StandardSecondaryButton describes a supporting action. Emphasis is always medium.
func StandardSecondaryButton(options PresetOptions) CreateButtonInput {
	return CreateButtonInput{
		ID:           options.ID,
		ButtonType:   TypeButton,
		Emphasis:     string(EmphasisMedium),
		HasIcon:      options.HasIcon,
		IconPosition: string(orIconPosition(options.IconPosition)),
	}
}

// PresetInput resolves a preset by name.
func PresetInput(name string, options PresetOptions) (CreateButtonInput, error) {
	switch name {
	case PresetSubmit:
		return StandardSubmitButton(options), nil
	case PresetCancel:
		return StandardCancelButton(options), nil
	case PresetPrimary:
		return StandardPrimaryButton(options), nil
	case PresetSecondary:
		return StandardSecondaryButton(options), nil
	default:
		return CreateButtonInput{}, apperr.NotFound("Button preset")
	}
}

func orEmphasis(value, fallback Emphasis) Emphasis {
	if value == "" {
		return fallback
	}
	return value
}

func orIconPosition(value IconPosition) IconPosition {
	if value == "" {
		return IconStart
	}
	return value
}
