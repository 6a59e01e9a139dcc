// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package uuidv7_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkwell/pkg/uuidv7"
)

/*
TestNew produces distinct version 7 ids that sort by creation.
*/
func TestNew(t *testing.T) {
	first := uuidv7.New()
	second := uuidv7.New()

	parsed, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.NotEqual(t, first, second)
	assert.LessOrEqual(t, first[:13], second[:13])
}

/*
TestValid accepts any UUID and rejects free text.
*/
func TestValid(t *testing.T) {
	assert.True(t, uuidv7.Valid(uuidv7.New()))
	assert.True(t, uuidv7.Valid("6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
	assert.False(t, uuidv7.Valid("req-42"))
	assert.False(t, uuidv7.Valid(""))
}
