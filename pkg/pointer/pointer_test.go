// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pointer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/inkwell/pkg/pointer"
)

func TestPointer(t *testing.T) {
	p := pointer.To(42)
	assert.Equal(t, 42, *p)
	assert.Equal(t, 42, pointer.Val(p))
	assert.Equal(t, 0, pointer.Val[int](nil))
	assert.Equal(t, 7, pointer.Fallback(nil, 7))
	assert.Equal(t, 42, pointer.Fallback(p, 7))
}
