// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/validate"
)

type draft struct {
	Name  string
	Score int
}

func (d draft) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.Required),
		validation.Field(&d.Score, validation.Min(0), validation.Max(10)),
	)
}

/*
TestStruct flattens ozzo field errors into sorted details.
*/
func TestStruct(t *testing.T) {
	assert.NoError(t, validate.Struct(draft{Name: "ok", Score: 5}))

	ae := apperr.As(validate.Struct(draft{Score: 11}))
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeValidation, ae.Code)
	require.Len(t, ae.Details, 2)
	assert.Equal(t, "Name", ae.Details[0].Field)
	assert.Equal(t, "Score", ae.Details[1].Field)
}
