// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/inkwell/pkg/convert"
)

/*
TestToIntD falls back to the default on empty or malformed input.
*/
func TestToIntD(t *testing.T) {
	assert.Equal(t, 5, convert.ToIntD("5", 1))
	assert.Equal(t, 1, convert.ToIntD("", 1))
	assert.Equal(t, 1, convert.ToIntD("five", 1))
}

/*
TestToInt64 trims and reports malformed input.
*/
func TestToInt64(t *testing.T) {
	v, ok := convert.ToInt64(" 9007199254740993 ")
	assert.True(t, ok)
	assert.Equal(t, int64(9007199254740993), v)

	_, ok = convert.ToInt64("")
	assert.False(t, ok)

	_, ok = convert.ToInt64("12a")
	assert.False(t, ok)
}
