// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package feedback_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkwell/internal/core/feedback"
	"github.com/taibuivan/inkwell/internal/platform/postgres/pgtest"
)

/*
TestRepository_CreateAndList stores messages from unknown users and pages them newest first.
*/
func TestRepository_CreateAndList(t *testing.T) {
	pool := pgtest.Pool(t)
	repo := feedback.NewRepository(pool)
	ctx := context.Background()

	items, total, err := repo.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, items)

	for _, content := range []string{"first", "second", "third"} {
		item := &feedback.Feedback{UserID: "user_never_mirrored", Content: content}
		require.NoError(t, repo.Create(ctx, item))
		assert.NotZero(t, item.ID)
	}

	items, total, err = repo.List(ctx, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, items, 2)
	assert.Equal(t, "third", items[0].Content)
	assert.Equal(t, "second", items[1].Content)

	items, _, err = repo.List(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "first", items[0].Content)
}
