// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkwell/internal/core/comment"
	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/postgres/pgtest"
	"github.com/taibuivan/inkwell/internal/users/account"
)

func commentCount(t *testing.T, pool *pgxpool.Pool, bookID int64) int {
	t.Helper()

	var count int
	err := pool.QueryRow(context.Background(), `SELECT comment_count FROM book_info WHERE id = $1`, bookID).Scan(&count)
	require.NoError(t, err)
	return count
}

/*
TestRepository_CommentLifecycle mirrors the author and keeps comment_count in step.
*/
func TestRepository_CommentLifecycle(t *testing.T) {
	pool := pgtest.Pool(t)
	repo := comment.NewRepository(pool)
	ctx := context.Background()

	authorID := pgtest.SeedAuthor(t, pool, "user_fox", "Ink Fox")
	bookID := pgtest.SeedBook(t, pool, authorID, pgtest.BookFixture{Name: "Tides of Ember"})

	owl := account.User{ID: "user_owl", NickName: "Quill Owl", UserPhoto: "https://cdn.inkwell.app/owl.png"}
	first := &comment.Comment{BookID: bookID, CommentContent: "Chapter three wrecked me"}
	require.NoError(t, repo.Create(ctx, owl, first))
	second := &comment.Comment{BookID: bookID, CommentContent: "Waiting for more"}
	require.NoError(t, repo.Create(ctx, owl, second))
	assert.Equal(t, 2, commentCount(t, pool, bookID))

	stored, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Quill Owl", stored.CommentUser)
	assert.Equal(t, "https://cdn.inkwell.app/owl.png", stored.CommentUserPhoto)
	assert.False(t, stored.CommentTime.IsZero())

	listed, total, err := repo.ListByBook(ctx, bookID, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, listed, 1)
	assert.Equal(t, second.ID, listed[0].ID)

	mine, total, err := repo.ListByUser(ctx, "user_owl", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, mine, 2)

	require.NoError(t, repo.Delete(ctx, first.ID))
	assert.Equal(t, 1, commentCount(t, pool, bookID))

	err = repo.Delete(ctx, first.ID)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
	assert.Equal(t, 1, commentCount(t, pool, bookID))
}

/*
TestRepository_CreateMissingBook rolls back the user mirror with the failed insert.
*/
func TestRepository_CreateMissingBook(t *testing.T) {
	pool := pgtest.Pool(t)
	repo := comment.NewRepository(pool)
	ctx := context.Background()

	err := repo.Create(ctx, account.User{ID: "user_ghost"}, &comment.Comment{BookID: 999999, CommentContent: "Hello?"})
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	_, err = account.NewRepository(pool).FindByID(ctx, "user_ghost")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

/*
TestRepository_UpdateContent rewrites the text and bumps update_time.
*/
func TestRepository_UpdateContent(t *testing.T) {
	pool := pgtest.Pool(t)
	repo := comment.NewRepository(pool)
	ctx := context.Background()

	authorID := pgtest.SeedAuthor(t, pool, "user_fox", "Ink Fox")
	bookID := pgtest.SeedBook(t, pool, authorID, pgtest.BookFixture{Name: "Quill and Ash"})

	created := &comment.Comment{BookID: bookID, CommentContent: "Typo"}
	require.NoError(t, repo.Create(ctx, account.User{ID: "user_owl"}, created))

	created.CommentContent = "Fixed the typo"
	require.NoError(t, repo.Update(ctx, created))

	stored, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fixed the typo", stored.CommentContent)
	assert.False(t, stored.UpdateTime.Before(stored.CommentTime))

	missing := &comment.Comment{ID: 999999, CommentContent: "Nobody home"}
	assert.True(t, apperr.HasCode(repo.Update(ctx, missing), apperr.CodeNotFound))
}
