// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate turns input checks into a single [apperr.AppError].
//
// DTOs and filters implement ozzo-validation's Validatable and go through
// [Struct], which flattens ozzo's per-field errors into [apperr.FieldError]s.
// Checks on a single query or path value use [RequiredError].
package validate

import (
	"errors"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/taibuivan/inkwell/internal/platform/apperr"
)

// ErrInvalidJSON is returned when the request body cannot be decoded.
var ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")

// # Struct validation

// Struct runs v.Validate and converts ozzo errors into a VALIDATION_ERROR.
// Internal rule failures (ozzo.InternalError) become a 500.
func Struct(v validation.Validatable) error {
	err := v.Validate()
	if err == nil {
		return nil
	}

	var internal validation.InternalError
	if errors.As(err, &internal) {
		return apperr.Internal(err)
	}

	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return apperr.ValidationError(err.Error())
	}

	details := make([]apperr.FieldError, 0, len(fieldErrs))
	for field, fieldErr := range fieldErrs {
		details = append(details, apperr.FieldError{Field: field, Message: fieldErr.Error()})
	}

	// Map iteration order is random; keep responses stable.
	sort.Slice(details, func(i, j int) bool { return details[i].Field < details[j].Field })

	return apperr.ValidationError("Validation failed", details...)
}

// # Single-field errors

// RequiredError is a shortcut to create a single-field validation error.
func RequiredError(field, message string) *apperr.AppError {
	return apperr.ValidationError("Validation failed", apperr.FieldError{
		Field:   field,
		Message: message,
	})
}
