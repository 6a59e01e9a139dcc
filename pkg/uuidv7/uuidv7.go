// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package uuidv7 wraps google/uuid to generate time-ordered identifiers.
//
// Request correlation ids use it so that log lines of one request sort next
// to each other and roughly in arrival order.
package uuidv7

import "github.com/google/uuid"

// New returns a UUIDv7 string. If the clock sequence cannot be read it falls
// back to a random v4 value, which is still unique.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Valid reports whether s parses as a UUID of any version.
func Valid(s string) bool {
	return uuid.Validate(s) == nil
}
