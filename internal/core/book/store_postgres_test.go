// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkwell/internal/core/author"
	"github.com/taibuivan/inkwell/internal/core/book"
	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/postgres/pgtest"
	"github.com/taibuivan/inkwell/pkg/pointer"
)

/*
TestRepository_SearchWordCountRange returns only the books inside the range,
with a total that counts the filtered set.
*/
func TestRepository_SearchWordCountRange(t *testing.T) {
	pool := pgtest.Pool(t)
	authorID := pgtest.SeedAuthor(t, pool, "user_fox", "Ink Fox")

	for i, words := range []int{100000, 350000, 450000, 600000} {
		pgtest.SeedBook(t, pool, authorID, pgtest.BookFixture{
			Name:      []string{"Short", "Middle", "Long", "Epic"}[i],
			WordCount: words,
		})
	}

	service := book.NewService(book.NewRepository(pool), nil, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	page, err := service.Search(context.Background(), book.SearchRequest{
		Filter: book.Filter{
			WorkDirection: pointer.To(book.DirectionMale),
			WordCountMin:  pointer.To(300000),
			WordCountMax:  pointer.To(500000),
		},
		PageNum:  1,
		PageSize: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2), page.Total)
	require.Len(t, page.List, 2)
	for _, found := range page.List {
		assert.GreaterOrEqual(t, found.WordCount, 300000)
		assert.LessOrEqual(t, found.WordCount, 500000)
	}
}

/*
TestRepository_SearchPagesPartition walks every page and sees each match once.
*/
func TestRepository_SearchPagesPartition(t *testing.T) {
	pool := pgtest.Pool(t)
	authorID := pgtest.SeedAuthor(t, pool, "user_fox", "Ink Fox")

	// Equal visit counts force the id tie-break.
	seeded := map[int64]bool{}
	for _, name := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		seeded[pgtest.SeedBook(t, pool, authorID, pgtest.BookFixture{Name: name, VisitCount: 3})] = true
	}

	repo := book.NewRepository(pool)
	service := book.NewService(repo, nil, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	seen := map[int64]bool{}
	for pageNum := 1; pageNum <= 3; pageNum++ {
		page, err := service.Search(context.Background(), book.SearchRequest{
			Filter:   book.Filter{Sort: book.SortVisitCount},
			PageNum:  pageNum,
			PageSize: 3,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(len(seeded)), page.Total)

		for _, found := range page.List {
			assert.False(t, seen[found.ID], "book %d returned twice", found.ID)
			seen[found.ID] = true
		}
	}

	assert.Equal(t, seeded, seen)
}

/*
TestRepository_Keyword matches book or author names case-insensitively.
*/
func TestRepository_Keyword(t *testing.T) {
	pool := pgtest.Pool(t)
	fox := pgtest.SeedAuthor(t, pool, "user_fox", "Ink Fox")
	owl := pgtest.SeedAuthor(t, pool, "user_owl", "Quill Owl")

	pgtest.SeedBook(t, pool, fox, pgtest.BookFixture{Name: "Tides of Ember", AuthorName: "Ink Fox"})
	pgtest.SeedBook(t, pool, owl, pgtest.BookFixture{Name: "Night Market", AuthorName: "Quill Owl"})
	pgtest.SeedBook(t, pool, owl, pgtest.BookFixture{Name: "100% Ember", AuthorName: "Quill Owl"})

	service := book.NewService(book.NewRepository(pool), nil, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	tests := []struct {
		keyword string
		total   int64
	}{
		{"ember", 2},
		{"quill", 2},
		{"100%", 1},
		{"%", 1},
		{"nothing here", 0},
	}

	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			page, err := service.Search(context.Background(), book.SearchRequest{Filter: book.Filter{Keyword: tt.keyword}})
			require.NoError(t, err)
			assert.Equal(t, tt.total, page.Total)
			assert.Len(t, page.List, int(tt.total))
		})
	}
}

/*
TestRepository_PublishAndDelete round-trips an author's book through the store.
*/
func TestRepository_PublishAndDelete(t *testing.T) {
	pool := pgtest.Pool(t)
	ctx := context.Background()

	authors := author.NewService(author.NewRepository(pool), slog.New(slog.NewTextHandler(io.Discard, nil)))
	_, err := authors.Register(ctx, "user_fox", author.Registration{PenName: "Ink Fox"})
	require.NoError(t, err)
	_, err = authors.Register(ctx, "user_owl", author.Registration{PenName: "Quill Owl"})
	require.NoError(t, err)

	service := book.NewService(book.NewRepository(pool), authors, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	created, err := service.Publish(ctx, "user_fox", book.Draft{WorkDirection: book.DirectionMale, CategoryID: 1, BookName: "Tides of Ember"})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	found, err := service.Detail(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ink Fox", found.AuthorName)
	assert.Nil(t, found.LastChapterID)

	counted, err := service.AddVisit(ctx, created.ID, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, counted)

	err = service.Delete(ctx, "user_owl", created.ID)
	assert.True(t, apperr.HasCode(err, apperr.CodeForbidden))

	require.NoError(t, service.Delete(ctx, "user_fox", created.ID))

	_, err = service.Detail(ctx, created.ID)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

/*
TestRepository_Discovery covers categories, ranks, recommendations and home slots.
*/
func TestRepository_Discovery(t *testing.T) {
	pool := pgtest.Pool(t)
	repo := book.NewRepository(pool)
	ctx := context.Background()
	authorID := pgtest.SeedAuthor(t, pool, "user_fox", "Ink Fox")

	male, err := repo.ListCategories(ctx, 0)
	require.NoError(t, err)
	require.Len(t, male, 6)
	assert.Equal(t, "Fantasy", male[0].Name)

	female, err := repo.ListCategories(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, female, 4)

	seed := func(name string, categoryID int64, visits int64) int64 {
		return pgtest.SeedBook(t, pool, authorID, pgtest.BookFixture{Name: name, CategoryID: categoryID, VisitCount: visits})
	}
	quiet := seed("Quiet Ember", 1, 5)
	loud := seed("Loud Ember", 1, 50)
	middle := seed("Middle Ember", 1, 20)
	seed("Iron Fist", 2, 999)

	base, err := repo.FindByID(ctx, quiet)
	require.NoError(t, err)
	recommended, err := repo.ListRecommended(ctx, base, 10)
	require.NoError(t, err)
	require.Len(t, recommended, 2)
	assert.Equal(t, loud, recommended[0].ID)
	assert.Equal(t, middle, recommended[1].ID)

	ranked, err := repo.Rank(ctx, book.RankVisit, 0, 2)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "Iron Fist", ranked[0].BookName)
	assert.Equal(t, loud, ranked[1].ID)

	_, err = pool.Exec(ctx, `INSERT INTO home_book (type, sort, book_id) VALUES (1, 10, $1), (0, 20, $2), (0, 10, $3)`,
		quiet, loud, middle)
	require.NoError(t, err)

	slots, err := repo.ListHomeBooks(ctx)
	require.NoError(t, err)
	require.Len(t, slots, 3)
	assert.Equal(t, []int64{middle, loud, quiet}, []int64{slots[0].ID, slots[1].ID, slots[2].ID})
	assert.Equal(t, book.SlotTopList, slots[2].Type)
}
