// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/postgres/pgtest"
	"github.com/taibuivan/inkwell/internal/users/account"
)

/*
TestRepository_EnsureKeepsEdits never overwrites an existing mirror row.
*/
func TestRepository_EnsureKeepsEdits(t *testing.T) {
	pool := pgtest.Pool(t)
	repo := account.NewRepository(pool)
	ctx := context.Background()

	_, err := repo.FindByID(ctx, "user_fox")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	user, err := repo.Ensure(ctx, account.User{ID: "user_fox", NickName: "Fox"})
	require.NoError(t, err)
	assert.False(t, user.CreateTime.IsZero())

	user.NickName = "Ink Fox"
	require.NoError(t, repo.Update(ctx, user))

	require.NoError(t, account.EnsureUser(ctx, pool, account.User{ID: "user_fox", NickName: "Fox again"}))

	stored, err := repo.FindByID(ctx, "user_fox")
	require.NoError(t, err)
	assert.Equal(t, "Ink Fox", stored.NickName)
}
