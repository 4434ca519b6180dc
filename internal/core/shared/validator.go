// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package shared

import (
	"context"
	"fmt"
	"sort"
)

// Validator is a rule engine over a subject of type T.
//
// Validate takes a context so I/O-backed validators can be substituted
// without changing the signature. Errors block validity, warnings never do.
// A returned error means the validator itself failed, not the subject.
type Validator[T any] interface {
	Name() string
	Description() string
	// Priority orders execution; higher runs first.
	Priority() int
	SupportsValidationType(tag string) bool
	Validate(ctx context.Context, subject T) (Result, error)
}

// Result is the outcome of one validator run.
type Result struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// NewResult derives validity from errors and normalizes nil lists to empty.
func NewResult(errors, warnings []string) Result {
	if errors == nil {
		errors = []string{}
	}
	if warnings == nil {
		warnings = []string{}
	}
	return Result{IsValid: len(errors) == 0, Errors: errors, Warnings: warnings}
}

// ValidatorResult is a Result attributed to the validator that produced it.
type ValidatorResult struct {
	Validator string `json:"validator"`
	Result
}

// SortByPriority returns a copy of validators ordered highest priority first.
// Equal priorities keep registration order.
func SortByPriority[T any](validators []Validator[T]) []Validator[T] {
	sorted := make([]Validator[T], len(validators))
	copy(sorted, validators)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() > sorted[j].Priority()
	})
	return sorted
}

// AccessibilityReport is the outcome of an aggregate's own accessibility check.
type AccessibilityReport struct {
	IsAccessible bool     `json:"is_accessible"`
	Violations   []string `json:"violations"`
}

// # Execution

// Run executes validators sequentially in priority order against subject.
//
// A validator that returns an error or panics produces a failed entry carrying
// the failure message; the remaining validators still run.
func Run[T any](ctx context.Context, validators []Validator[T], subject T) []ValidatorResult {
	results := make([]ValidatorResult, 0, len(validators))
	for _, validator := range SortByPriority(validators) {
		results = append(results, runOne(ctx, validator, subject))
	}
	return results
}

// Merge flattens the errors and warnings of every result, in order.
func Merge(results []ValidatorResult) (errors, warnings []string) {
	errors, warnings = []string{}, []string{}
	for _, result := range results {
		errors = append(errors, result.Errors...)
		warnings = append(warnings, result.Warnings...)
	}
	return errors, warnings
}

func runOne[T any](ctx context.Context, validator Validator[T], subject T) (entry ValidatorResult) {
	entry.Validator = validator.Name()

	defer func() {
		if recovered := recover(); recovered != nil {
			entry.Result = NewResult([]string{fmt.Sprintf("Validation failed: %v", recovered)}, nil)
		}
	}()

	result, err := validator.Validate(ctx, subject)
	if err != nil {
		entry.Result = NewResult([]string{err.Error()}, nil)
		return entry
	}

	entry.Result = NewResult(result.Errors, result.Warnings)
	return entry
}
