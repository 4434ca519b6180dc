// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package button

import (
	"context"

	"github.com/taibuivan/uibutton/internal/core/shared"
)

// AccessibilityValidatorName identifies [AccessibilityValidator] in reports.
const AccessibilityValidatorName = "accessibility-validator"

var accessibilityTags = map[string]struct{}{
	"accessibility": {},
	"wcag":          {},
	"keyboard":      {},
	"screen-reader": {},
	"focus":         {},
	"semantic":      {},
}

// AccessibilityValidator checks a [Button] against WCAG-oriented rules.
// It performs no I/O.
type AccessibilityValidator struct{}

// NewAccessibilityValidator creates an [AccessibilityValidator].
func NewAccessibilityValidator() *AccessibilityValidator {
	return &AccessibilityValidator{}
}

// Name implements [shared.Validator].
func (v *AccessibilityValidator) Name() string { return AccessibilityValidatorName }

// Description implements [shared.Validator].
func (v *AccessibilityValidator) Description() string {
	return "Validates button accessibility compliance with WCAG guidelines"
}

// Priority implements [shared.Validator].
func (v *AccessibilityValidator) Priority() int { return 100 }

// SupportsValidationType implements [shared.Validator].
func (v *AccessibilityValidator) SupportsValidationType(tag string) bool {
	_, ok := accessibilityTags[tag]
	return ok
}

// Validate implements [shared.Validator].
func (v *AccessibilityValidator) Validate(ctx context.Context, button *Button) (shared.Result, error) {
	if err := ctx.Err(); err != nil {
		return shared.Result{}, err
	}

	var findings findings
	findings.keyboardNavigation(button)
	findings.screenReader(button)
	findings.colorContrast(button)
	findings.focusManagement(button)
	findings.semantics(button)

	return shared.NewResult(findings.errors, findings.warnings), nil
}

// findings accumulates the output of each rule group.
type findings struct {
	errors   []string
	warnings []string
}

func (f *findings) fail(message string) { f.errors = append(f.errors, message) }
func (f *findings) warn(message string) { f.warnings = append(f.warnings, message) }

func (f *findings) keyboardNavigation(b *Button) {
	if b.IsDisabled() {
		f.warn("Disabled buttons should be removed from tab order")
	}
	if b.IsLoading() {
		f.warn("Loading buttons should prevent multiple rapid clicks")
	}
	if b.IsHighEmphasis() && !b.IsAccessible() {
		f.fail("High emphasis buttons must be keyboard accessible")
	}
}

func (f *findings) screenReader(b *Button) {
	if b.HasIcon() && !b.IsAccessible() {
		f.fail("Buttons with icons must have accessible labels for screen readers")
	}
	if b.ButtonType().IsSubmit() {
		f.warn("Submit buttons should have clear purpose indication for screen readers")
	}
	if b.ButtonType().IsReset() {
		f.warn("Reset buttons should warn users about data loss for screen readers")
	}
}

// colorContrast applies the contrast tier of each emphasis: 4.5:1, 3:1, 1.5:1.
func (f *findings) colorContrast(b *Button) {
	switch b.Emphasis() {
	case EmphasisHigh:
		if !b.IsAccessible() {
			f.fail("High emphasis buttons must meet 4.5:1 contrast ratio")
		}
	case EmphasisMedium:
		f.warn("Medium emphasis buttons should meet 3:1 contrast ratio")
	case EmphasisLow:
		f.warn("Low emphasis buttons should meet minimum 1.5:1 contrast ratio")
	}
}

// focusManagement never fires its second rule today: a button holds one
// state, so it cannot be disabled and focused at once.
func (f *findings) focusManagement(b *Button) {
	if b.State() == StateFocused && !b.IsAccessible() {
		f.fail("Focused buttons must have visible focus indicators")
	}
	if b.IsDisabled() && b.State() == StateFocused {
		f.fail("Disabled buttons should not receive focus")
	}
}

func (f *findings) semantics(b *Button) {
	if b.ButtonType().IsSubmit() && b.Emphasis() == EmphasisLow {
		f.warn("Submit buttons should not have low visual emphasis")
	}
	if b.HasIcon() && b.IconPosition() == IconStart {
		f.warn("Start-positioned icons should not change button meaning")
	}
	if b.IsLoading() {
		f.warn("Loading state should be communicated to assistive technologies")
	}
}
