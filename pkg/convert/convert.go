// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package convert provides fault-tolerant conversions for query and path parameters.
package convert

import (
	"strconv"
	"strings"
)

// ToIntD converts s to an int, returning def if s is empty or malformed.
func ToIntD(s string, def int) int {
	if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return v
	}
	return def
}

// ToInt64 converts s to an int64. ok is false when s is empty or malformed.
func ToInt64(s string) (v int64, ok bool) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
