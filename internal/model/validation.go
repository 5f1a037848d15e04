// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines domain types shared between the service packages
// and the HTTP handlers.
package model

import "fmt"

// ValidationKind classifies why a field was rejected.
type ValidationKind int

// Validation kinds.
const (
	MissingField ValidationKind = iota + 1
	OutOfRange
)

// String returns the kind name.
func (k ValidationKind) String() string {
	switch k {
	case MissingField:
		return "missing field"
	case OutOfRange:
		return "out of range"
	default:
		return "invalid"
	}
}

// ValidationError reports a single rejected input field.
// Match it with errors.As.
type ValidationError struct {
	Field string
	Kind  ValidationKind
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Kind)
}

// Missing returns a MissingField error for field.
func Missing(field string) *ValidationError {
	return &ValidationError{Field: field, Kind: MissingField}
}

// OutOfRangeField returns an OutOfRange error for field.
func OutOfRangeField(field string) *ValidationError {
	return &ValidationError{Field: field, Kind: OutOfRange}
}
