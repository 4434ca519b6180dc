// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contract

import (
	"context"
	"fmt"
	"strings"

	"github.com/taibuivan/uibutton/internal/core/shared"
)

// ContractValidatorName identifies [ContractValidator] in reports.
const ContractValidatorName = "button-contract-validator"

// Thresholds above which a contract is considered hard to implement.
const (
	maxRecommendedVariants = 6
	maxRecommendedProps    = 10
	minPrimarySizes        = 3
)

var (
	requiredVariants    = []VariantType{VariantSize, VariantIntent}
	recommendedVariants = []VariantType{VariantTone, VariantEmphasis}
	requiredKeys        = []string{"Enter", "Space"}

	// AllowedKeys is the keyboard vocabulary a contract may list.
	AllowedKeys = []string{
		"Enter", "Space", "Escape", "ArrowUp", "ArrowDown",
		"ArrowLeft", "ArrowRight", "Home", "End", "PageUp",
		"PageDown", "Tab", "Shift+Tab",
	}

	contractTags = map[string]struct{}{
		"button":         {},
		"accessibility":  {},
		"variants":       {},
		"props":          {},
		"combinations":   {},
		"business-rules": {},
	}
)

// ContractValidator checks a [Contract] against button-specific structure and
// accessibility rules. It performs no I/O.
type ContractValidator struct{}

// NewContractValidator creates a [ContractValidator].
func NewContractValidator() *ContractValidator {
	return &ContractValidator{}
}

// Name implements [shared.Validator].
func (v *ContractValidator) Name() string { return ContractValidatorName }

// Description implements [shared.Validator].
func (v *ContractValidator) Description() string {
	return "Validates button contract definitions against button-specific business rules and accessibility standards"
}

// Priority implements [shared.Validator].
func (v *ContractValidator) Priority() int { return 100 }

// SupportsValidationType implements [shared.Validator].
func (v *ContractValidator) SupportsValidationType(tag string) bool {
	_, ok := contractTags[tag]
	return ok
}

// Validate implements [shared.Validator].
func (v *ContractValidator) Validate(ctx context.Context, contract *Contract) (shared.Result, error) {
	if err := ctx.Err(); err != nil {
		return shared.Result{}, err
	}

	report := &report{}
	report.requiredVariants(contract)
	report.props(contract)
	report.accessibility(contract.Accessibility())
	report.combinations(contract)
	report.businessRules(contract)

	return shared.NewResult(report.errors, report.warnings), nil
}

type report struct {
	errors   []string
	warnings []string
}

func (r *report) fail(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func (r *report) warn(format string, args ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}

func (r *report) requiredVariants(contract *Contract) {
	for _, variantType := range requiredVariants {
		if _, ok := contract.VariantByType(variantType); !ok {
			r.fail("Button contracts must have '%s' variant", variantType)
		}
	}
	for _, variantType := range recommendedVariants {
		if _, ok := contract.VariantByType(variantType); !ok {
			r.warn("Button contracts typically include '%s' variant", variantType)
		}
	}
}

func (r *report) props(contract *Contract) {
	if !contract.HasProp("label") {
		r.fail("Button contracts must have a label prop")
	}

	if disabled, ok := contract.PropByName("disabled"); ok {
		if disabled.Type != PropBoolean {
			r.fail("Disabled prop must be of type boolean")
		}
		if disabled.Default != false {
			r.warn("Disabled prop should default to false")
		}
	} else {
		r.warn("Button contracts typically include disabled state")
	}

	if loading, ok := contract.PropByName("loading"); ok && loading.Type != PropBoolean {
		r.fail("Loading prop must be of type boolean")
	}

	// Only a declared enum that admits neither position is rejected, empty included.
	position, hasPosition := contract.PropByName("iconPosition")
	if contract.HasProp("icon") && hasPosition && position.Enum != nil &&
		!position.HasEnumValue("start") && !position.HasEnumValue("end") {
		r.fail(`Icon position should allow "start" and "end" values`)
	}
}

func (r *report) accessibility(rules Accessibility) {
	if rules.Role != "button" {
		r.fail(`Button contracts must have role "button"`)
	}

	for _, key := range requiredKeys {
		if !rules.SupportsKey(key) {
			r.fail(`Button contracts must support "%s" keyboard action`, key)
		}
	}

	if !rules.Focusable {
		r.fail("Button contracts must be focusable")
	}

	if !rules.Label {
		r.warn("Button contracts should require labels for accessibility")
	}

	var invalid []string
	for _, key := range rules.Keyboard {
		if !isAllowedKey(key) {
			invalid = append(invalid, key)
		}
	}
	if len(invalid) > 0 {
		r.fail("Invalid keyboard actions: %s", strings.Join(invalid, ", "))
	}
}

func (r *report) combinations(contract *Contract) {
	size, hasSize := contract.VariantByType(VariantSize)
	intent, hasIntent := contract.VariantByType(VariantIntent)
	if hasSize && hasIntent && intent.HasValue("primary") && len(size.Values()) < minPrimarySizes {
		r.warn("Primary intent should support multiple sizes (xs, sm, md, lg, xl)")
	}

	seen := make(map[VariantType]bool)
	for _, variant := range contract.Variants() {
		if seen[variant.Type()] {
			r.fail("Duplicate variant type: %s", variant.Type())
		}
		seen[variant.Type()] = true
	}
}

func (r *report) businessRules(contract *Contract) {
	if len(contract.Variants()) > maxRecommendedVariants {
		r.warn("Button contracts with many variants may be complex to implement")
	}
	if len(contract.Props()) > maxRecommendedProps {
		r.warn("Button contracts with many props may violate single responsibility principle")
	}
	if contract.HasProp("icon") && !contract.HasProp("ariaLabel") {
		r.warn("Icon buttons should have aria-label prop for accessibility")
	}
	if contract.HasProp("loading") && !contract.HasProp("disabled") {
		r.warn("Buttons with loading state should also support disabled state")
	}
}

func isAllowedKey(key string) bool {
	for _, allowed := range AllowedKeys {
		if key == allowed {
			return true
		}
	}
	return false
}
