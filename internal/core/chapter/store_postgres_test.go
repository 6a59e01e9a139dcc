// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package chapter_test

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkwell/internal/core/chapter"
	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/postgres/pgtest"
)

type bookRow struct {
	lastChapterID   *int64
	lastChapterName *string
	wordCount       int
}

func loadBook(t *testing.T, pool *pgxpool.Pool, bookID int64) bookRow {
	t.Helper()

	var row bookRow
	err := pool.QueryRow(context.Background(),
		`SELECT last_chapter_id, last_chapter_name, word_count FROM book_info WHERE id = $1`, bookID,
	).Scan(&row.lastChapterID, &row.lastChapterName, &row.wordCount)
	require.NoError(t, err)
	return row
}

func seedBook(t *testing.T, pool *pgxpool.Pool) (repo chapter.Repository, authorID, bookID int64) {
	t.Helper()

	authorID = pgtest.SeedAuthor(t, pool, "user_fox", "Ink Fox")
	bookID = pgtest.SeedBook(t, pool, authorID, pgtest.BookFixture{Name: "Tides of Ember", AuthorName: "Ink Fox"})
	return chapter.NewRepository(pool), authorID, bookID
}

func createChapter(t *testing.T, repo chapter.Repository, authorID, bookID int64, name string, words int) *chapter.Chapter {
	t.Helper()

	created := &chapter.Chapter{BookID: bookID, ChapterName: name, ChapterWordCount: words}
	require.NoError(t, repo.Create(context.Background(), authorID, created, body(words)))
	return created
}

/*
TestRepository_CreateMovesLastChapter appends Ch4 after three chapters and
points the book at it.
*/
func TestRepository_CreateMovesLastChapter(t *testing.T) {
	pool := pgtest.Pool(t)
	repo, authorID, bookID := seedBook(t, pool)

	for _, name := range []string{"Ch1", "Ch2", "Ch3"} {
		createChapter(t, repo, authorID, bookID, name, 60)
	}

	ch4 := createChapter(t, repo, authorID, bookID, "Ch4", 80)
	assert.Equal(t, 4, ch4.ChapterNum)

	book := loadBook(t, pool, bookID)
	require.NotNil(t, book.lastChapterID)
	assert.Equal(t, ch4.ID, *book.lastChapterID)
	require.NotNil(t, book.lastChapterName)
	assert.Equal(t, "Ch4", *book.lastChapterName)
	assert.Equal(t, 3*60+80, book.wordCount)

	reading, err := repo.Reading(context.Background(), ch4.ID)
	require.NoError(t, err)
	assert.Equal(t, body(80), reading.BookContent)
	assert.Equal(t, "Tides of Ember", reading.BookInfo.BookName)
}

/*
TestRepository_CreateOwnership refuses other authors and missing books.
*/
func TestRepository_CreateOwnership(t *testing.T) {
	pool := pgtest.Pool(t)
	repo, _, bookID := seedBook(t, pool)
	intruder := pgtest.SeedAuthor(t, pool, "user_owl", "Quill Owl")
	ctx := context.Background()

	err := repo.Create(ctx, intruder, &chapter.Chapter{BookID: bookID, ChapterName: "Ch1"}, body(60))
	assert.True(t, apperr.HasCode(err, apperr.CodeForbidden))

	err = repo.Create(ctx, intruder, &chapter.Chapter{BookID: bookID + 1000, ChapterName: "Ch1"}, body(60))
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	assert.Nil(t, loadBook(t, pool, bookID).lastChapterID)
}

/*
TestRepository_ConcurrentCreates numbers parallel chapters 1..n without gaps.
*/
func TestRepository_ConcurrentCreates(t *testing.T) {
	pool := pgtest.Pool(t)
	repo, authorID, bookID := seedBook(t, pool)

	const writers = 8

	var wg sync.WaitGroup
	errs := make([]error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			created := &chapter.Chapter{BookID: bookID, ChapterName: fmt.Sprintf("Part %d", i), ChapterWordCount: 10}
			errs[i] = repo.Create(context.Background(), authorID, created, body(60))
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	catalog, err := repo.Catalog(context.Background(), bookID)
	require.NoError(t, err)
	require.Len(t, catalog, writers)

	numbers := make([]int, 0, writers)
	for _, found := range catalog {
		numbers = append(numbers, found.ChapterNum)
	}
	sort.Ints(numbers)
	for i, number := range numbers {
		assert.Equal(t, i+1, number)
	}

	assert.Equal(t, writers*10, loadBook(t, pool, bookID).wordCount)
}

/*
TestRepository_UpdateMissingChapter fails with NOT_FOUND and changes nothing.
*/
func TestRepository_UpdateMissingChapter(t *testing.T) {
	pool := pgtest.Pool(t)
	repo, authorID, bookID := seedBook(t, pool)
	createChapter(t, repo, authorID, bookID, "Ch1", 60)
	before := loadBook(t, pool, bookID)

	err := repo.Update(context.Background(), authorID, &chapter.Chapter{ID: 999999, ChapterName: "Ghost"}, body(60))
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	assert.Equal(t, before, loadBook(t, pool, bookID))
}

/*
TestRepository_UpdateLastChapter moves the word count by the delta and renames
the book's last chapter.
*/
func TestRepository_UpdateLastChapter(t *testing.T) {
	pool := pgtest.Pool(t)
	repo, authorID, bookID := seedBook(t, pool)
	ch1 := createChapter(t, repo, authorID, bookID, "Ch1", 60)
	ch2 := createChapter(t, repo, authorID, bookID, "Ch2", 60)
	ctx := context.Background()

	// Not the last chapter: the pointer keeps Ch2.
	require.NoError(t, repo.Update(ctx, authorID, &chapter.Chapter{ID: ch1.ID, ChapterName: "Ch1 revised", ChapterWordCount: 40}, body(40)))
	book := loadBook(t, pool, bookID)
	assert.Equal(t, "Ch2", *book.lastChapterName)
	assert.Equal(t, 100, book.wordCount)

	require.NoError(t, repo.Update(ctx, authorID, &chapter.Chapter{ID: ch2.ID, ChapterName: "Ch2 revised", ChapterWordCount: 90}, body(90)))
	book = loadBook(t, pool, bookID)
	assert.Equal(t, ch2.ID, *book.lastChapterID)
	assert.Equal(t, "Ch2 revised", *book.lastChapterName)
	assert.Equal(t, 130, book.wordCount)

	edit, err := repo.Get(ctx, ch2.ID)
	require.NoError(t, err)
	assert.Equal(t, body(90), edit.Content)
	assert.Equal(t, 2, edit.ChapterNum)
}

/*
TestRepository_LongChapterName keeps names at the validation limit on both the
chapter and the book's last-chapter pointer.
*/
func TestRepository_LongChapterName(t *testing.T) {
	pool := pgtest.Pool(t)
	repo, authorID, bookID := seedBook(t, pool)
	ctx := context.Background()

	longName := strings.Repeat("潮", 51)
	created := createChapter(t, repo, authorID, bookID, longName, 60)
	assert.Equal(t, longName, *loadBook(t, pool, bookID).lastChapterName)

	maxName := strings.Repeat("章", chapter.MaxNameLength)
	require.NoError(t, repo.Update(ctx, authorID, &chapter.Chapter{ID: created.ID, ChapterName: maxName, ChapterWordCount: 60}, body(60)))

	book := loadBook(t, pool, bookID)
	assert.Equal(t, maxName, *book.lastChapterName)

	stored, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, maxName, stored.ChapterName)
}

/*
TestRepository_Delete removes content and chapter and recomputes the pointer.
*/
func TestRepository_Delete(t *testing.T) {
	pool := pgtest.Pool(t)
	repo, authorID, bookID := seedBook(t, pool)
	ch1 := createChapter(t, repo, authorID, bookID, "Ch1", 60)
	ch2 := createChapter(t, repo, authorID, bookID, "Ch2", 70)
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, authorID, ch2.ID))

	_, err := repo.Reading(ctx, ch2.ID)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	book := loadBook(t, pool, bookID)
	require.NotNil(t, book.lastChapterID)
	assert.Equal(t, ch1.ID, *book.lastChapterID)
	assert.Equal(t, "Ch1", *book.lastChapterName)
	assert.Equal(t, 60, book.wordCount)

	err = repo.Delete(ctx, authorID, ch2.ID)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	require.NoError(t, repo.Delete(ctx, authorID, ch1.ID))
	book = loadBook(t, pool, bookID)
	assert.Nil(t, book.lastChapterID)
	assert.Nil(t, book.lastChapterName)
	assert.Equal(t, 0, book.wordCount)

	// Numbering continues from the highest remaining chapter.
	ch3 := createChapter(t, repo, authorID, bookID, "Ch3", 60)
	assert.Equal(t, 1, ch3.ChapterNum)
}

/*
TestRepository_ReadingWithoutContent reports the integrity fault as NOT_FOUND.
*/
func TestRepository_ReadingWithoutContent(t *testing.T) {
	pool := pgtest.Pool(t)
	repo, authorID, bookID := seedBook(t, pool)
	ch1 := createChapter(t, repo, authorID, bookID, "Ch1", 60)

	_, err := pool.Exec(context.Background(), `DELETE FROM book_content WHERE chapter_id = $1`, ch1.ID)
	require.NoError(t, err)

	_, err = repo.Reading(context.Background(), ch1.ID)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
	assert.ErrorIs(t, err, chapter.ErrContentMissing)
}

/*
TestRepository_Reads covers the paged list, the about panel and neighbours.
*/
func TestRepository_Reads(t *testing.T) {
	pool := pgtest.Pool(t)
	repo, authorID, bookID := seedBook(t, pool)
	ctx := context.Background()

	var ids []int64
	for i := 1; i <= 7; i++ {
		ids = append(ids, createChapter(t, repo, authorID, bookID, fmt.Sprintf("Ch%d", i), 60).ID)
	}

	page, total, err := repo.List(ctx, bookID, 3, 6)
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
	require.Len(t, page, 1)
	assert.Equal(t, 7, page[0].ChapterNum)

	about, err := repo.About(ctx, bookID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), about.BookInfo.ChapterTotal)
	require.Len(t, about.LatestChapters, chapter.LatestLimit)
	assert.Equal(t, 7, about.LatestChapters[0].ChapterNum)
	assert.Equal(t, body(60)[:30], about.ContentSummary)

	neighbours, err := repo.Neighbours(ctx, ids[3])
	require.NoError(t, err)
	assert.Equal(t, ids[2], *neighbours.Prev)
	assert.Equal(t, ids[4], *neighbours.Next)

	_, err = repo.Neighbours(ctx, 999999)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	empty := pgtest.SeedBook(t, pool, authorID, pgtest.BookFixture{Name: "Blank Pages"})
	about, err = repo.About(ctx, empty)
	require.NoError(t, err)
	assert.Zero(t, about.BookInfo.ChapterTotal)
	assert.Empty(t, about.LatestChapters)
	assert.Empty(t, about.ContentSummary)
}
