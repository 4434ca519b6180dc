// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// # Architecture
//
// Entities and use cases build one Validator per construction call and return
// its Err() as the construction failure. Handlers never validate on their own.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/taibuivan/uibutton/internal/platform/apperr"
)

var (
	// identifierRegex matches component identifiers: a lowercase letter followed by
	// lowercase letters, digits, or dashes.
	identifierRegex = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")
)

// IsIdentifier reports whether s matches the component identifier format.
func IsIdentifier(s string) bool {
	return identifierRegex.MatchString(s)
}

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every operation.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, "This field is required")
	}
	return v
}

// MaxLen fails if the Unicode character count exceeds max.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.add(field, fmt.Sprintf("Maximum %d characters", max))
	}
	return v
}

// Identifier fails if the value is not a valid component identifier.
//
// # Format
//
// Identifiers start with a lowercase ASCII letter followed by zero or more
// lowercase letters, digits, or dashes ("primary-btn", "x", "cta-2").
func (v *Validator) Identifier(field, value string) *Validator {
	if !IsIdentifier(value) {
		v.add(field, "Must be lowercase with only alphanumeric characters and dashes, starting with a letter")
	}
	return v
}

// OneOf fails if the value is not in the allowed set of strings.
func (v *Validator) OneOf(field, value string, allowed ...string) *Validator {
	for _, a := range allowed {
		if value == a {
			return v
		}
	}
	v.add(field, fmt.Sprintf("Must be one of: %s", strings.Join(allowed, ", ")))
	return v
}

// NonEmpty fails if the slice has no elements.
func (v *Validator) NonEmpty(field string, values []string) *Validator {
	if len(values) == 0 {
		v.add(field, "Must contain at least one value")
	}
	return v
}

// EachNonBlank fails once if any element is empty after trimming.
func (v *Validator) EachNonBlank(field string, values []string) *Validator {
	for _, value := range values {
		if strings.TrimSpace(value) == "" {
			v.add(field, "Values must be non-empty strings")
			return v
		}
	}
	return v
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("emphasis", isSubmit && emphasis == "low", "Submit buttons should not have low emphasis")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// Err returns a [apperr.AppError] (VALIDATION_ERROR) if any rules failed,
// or nil if all rules passed.
//
// The top-level message is the first field message, so callers that only
// surface Error() still see the most relevant cause.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError(v.errs[0].Message, v.errs...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// add appends a [apperr.FieldError] to the internal slice.
func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}

// FieldErr is a shortcut to create a single-field validation error.
func FieldErr(field, message string) *apperr.AppError {
	return apperr.ValidationError(message, apperr.FieldError{
		Field:   field,
		Message: message,
	})
}
