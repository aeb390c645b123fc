package unit

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind represents different categories of unit errors.
type ErrorKind string

const (
	KindExponentRange     ErrorKind = "exponent_range"
	KindUnitMismatch      ErrorKind = "unit_mismatch"
	KindDimensionMismatch ErrorKind = "dimension_mismatch"
	KindSystem            ErrorKind = "system"
)

// Stable error codes.
const (
	ErrCodeExponentRange     = "ERR_EXPONENT_RANGE"
	ErrCodeUnitMismatch      = "ERR_UNIT_MISMATCH"
	ErrCodeDimensionMismatch = "ERR_DIMENSION_MISMATCH"
	ErrCodeSystemMismatch    = "ERR_SYSTEM_MISMATCH"
	ErrCodeInvalidSystem     = "ERR_INVALID_SYSTEM"
	ErrCodeUnknownDimension  = "ERR_UNKNOWN_DIMENSION"
)

// Error is a structured error produced by tag construction and
// quantity operations. Kind and Code identify the failure class; the
// remaining fields carry the evidence needed to diagnose it.
type Error struct {
	Kind      ErrorKind
	Code      string
	Message   string
	Component string // dimension name or "scale" for range failures
	Attempted int    // the exponent value that left the range
	Left      Vector // mismatched vectors, when applicable
	Right     Vector
}

// Error implements the error interface.
func (e *Error) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	parts = append(parts, e.Message)

	if e.Component != "" {
		parts = append(parts, fmt.Sprintf("component:%s attempted:%d", e.Component, e.Attempted))
	}

	if len(e.Left.comps) > 0 || len(e.Right.comps) > 0 {
		parts = append(parts, fmt.Sprintf("left:%s right:%s", e.Left, e.Right))
	}

	return strings.Join(parts, " ")
}

// Is matches errors by Kind and Code so callers can compare against
// the package sentinels without caring about the attached evidence.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind && e.Code == t.Code
	}

	return false
}

// Sentinels for errors.Is comparisons.
var (
	ErrExponentRange     = &Error{Kind: KindExponentRange, Code: ErrCodeExponentRange}
	ErrUnitMismatch      = &Error{Kind: KindUnitMismatch, Code: ErrCodeUnitMismatch}
	ErrDimensionMismatch = &Error{Kind: KindDimensionMismatch, Code: ErrCodeDimensionMismatch}
)

// newExponentRangeError reports a component that would leave [Low, High].
func newExponentRangeError(component string, attempted int, bounds Bounds) *Error {
	return &Error{
		Kind:      KindExponentRange,
		Code:      ErrCodeExponentRange,
		Message:   fmt.Sprintf("exponent range exceeded: %d outside [%d, %d]", attempted, bounds.Low, bounds.High),
		Component: component,
		Attempted: attempted,
	}
}

// newUnitMismatchError reports an add/sub between incompatible tags.
func newUnitMismatchError(left, right Vector) *Error {
	return &Error{
		Kind:    KindUnitMismatch,
		Code:    ErrCodeUnitMismatch,
		Message: "unit mismatch: tags are not compatible",
		Left:    left,
		Right:   right,
	}
}

// newDimensionMismatchError reports a conversion between different
// physical dimensions. Distinct from unit mismatch: conversion exists
// to bridge scale differences, but never dimension differences.
func newDimensionMismatchError(left, right Vector) *Error {
	return &Error{
		Kind:    KindDimensionMismatch,
		Code:    ErrCodeDimensionMismatch,
		Message: "dimension mismatch: tags describe different physical dimensions",
		Left:    left,
		Right:   right,
	}
}

// newSystemError reports generator misuse (bad definition, unknown
// dimension, tags from different systems).
func newSystemError(code, message string) *Error {
	return &Error{
		Kind:    KindSystem,
		Code:    code,
		Message: message,
	}
}

// IsExponentRange checks whether err is an exponent range failure.
func IsExponentRange(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == KindExponentRange
	}

	return false
}

// IsUnitMismatch checks whether err is an add/sub compatibility failure.
func IsUnitMismatch(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == KindUnitMismatch
	}

	return false
}

// IsDimensionMismatch checks whether err is a conversion dimension failure.
func IsDimensionMismatch(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == KindDimensionMismatch
	}

	return false
}
