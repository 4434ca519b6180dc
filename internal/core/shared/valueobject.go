// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package shared

import (
	"encoding/json"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// DeepEqual reports whether a and b are structurally equal.
//
// Sequences compare element-wise and are order-sensitive, maps compare by key
// set and recursive value equality, scalars by ==. A nil sequence equals an
// empty one.
func DeepEqual[T any](a, b T) bool {
	return cmp.Equal(a, b, cmpopts.EquateEmpty())
}

// ValueObject is an immutable holder whose identity is its payload.
//
// Two value objects are comparable only when they share the payload type T,
// which stands in for "same concrete variant".
type ValueObject[T any] struct {
	value T
}

// NewValueObject wraps v. Callers validate before wrapping.
func NewValueObject[T any](v T) ValueObject[T] {
	return ValueObject[T]{value: v}
}

// Value returns the wrapped payload.
func (o ValueObject[T]) Value() T {
	return o.value
}

// Equals reports deep structural equality of the two payloads.
func (o ValueObject[T]) Equals(other ValueObject[T]) bool {
	return DeepEqual(o.value, other.value)
}

// String renders the payload as JSON.
func (o ValueObject[T]) String() string {
	raw, err := json.Marshal(o.value)
	if err != nil {
		return ""
	}
	return string(raw)
}
