// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
PostgreSQL implementation of the chapter store.

Every write follows the same order inside one transaction:

 1. Lock the parent book row (SELECT ... FOR UPDATE) and check its owner.
 2. Change book_chapter and book_content.
 3. Move the book's denormalized fields (last chapter pointer, word count).

Holding the book row for the whole transaction serializes chapter writes on a
book, so chapter numbers are assigned without gaps or duplicates. The
UNIQUE (book_id, chapter_num) constraint backs this up.
*/
package chapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/database/schema"
	"github.com/taibuivan/inkwell/internal/platform/dberr"
	"github.com/taibuivan/inkwell/internal/platform/postgres"
)

// summaryLength is the number of characters of the last chapter shown on the about panel.
const summaryLength = 30

// # PostgreSQL Repository

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed chapter store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

// chapterColumns lists the selected chapter columns, qualified by alias when set.
// The order matches [scanChapter].
func chapterColumns(alias string) string {
	table := schema.BookChapter
	columns := []string{
		table.ID, table.BookID, table.ChapterNum, table.ChapterName,
		table.WordCount, table.IsVip, table.CreateTime, table.UpdateTime,
	}

	if alias != "" {
		for i, column := range columns {
			columns[i] = alias + "." + column
		}
	}
	return strings.Join(columns, ", ")
}

func scanChapter(row pgx.Row, chapter *Chapter, extra ...any) error {
	targets := []any{
		&chapter.ID,
		&chapter.BookID,
		&chapter.ChapterNum,
		&chapter.ChapterName,
		&chapter.ChapterWordCount,
		&chapter.IsVip,
		&chapter.CreateTime,
		&chapter.ChapterUpdateTime,
	}
	return row.Scan(append(targets, extra...)...)
}

func collectChapters(rows pgx.Rows) ([]*Chapter, error) {
	defer rows.Close()

	chapters := []*Chapter{}
	for rows.Next() {
		var chapter Chapter
		if err := scanChapter(rows, &chapter); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan chapter: %w", err)
		}
		chapters = append(chapters, &chapter)
	}
	return chapters, rows.Err()
}

// # Reads

func (repository *repository) List(context context.Context, bookID int64, limit, offset int) ([]*Chapter, int64, error) {
	table := schema.BookChapter

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = $1`, table.Table, table.BookID)
	if err := repository.pool.QueryRow(context, countQuery, bookID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "Chapter")
	}

	if total == 0 {
		return []*Chapter{}, 0, nil
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s
		LIMIT $2 OFFSET $3`,
		chapterColumns(""),
		table.Table,
		table.BookID,
		table.ChapterNum,
	)

	rows, err := repository.pool.Query(context, query, bookID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "Chapter")
	}

	chapters, err := collectChapters(rows)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "Chapter")
	}
	return chapters, total, nil
}

func (repository *repository) Catalog(context context.Context, bookID int64) ([]*Chapter, error) {
	table := schema.BookChapter
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s`,
		chapterColumns(""), table.Table, table.BookID, table.ChapterNum)

	rows, err := repository.pool.Query(context, query, bookID)
	if err != nil {
		return nil, dberr.Wrap(err, "Chapter")
	}

	chapters, err := collectChapters(rows)
	return chapters, dberr.Wrap(err, "Chapter")
}

/*
About assembles the about panel of a book.

Description: The head counts chapters through a LEFT JOIN so a book without
chapters reports zero. The summary is the first characters of the chapter the
book's last-chapter pointer names, or empty when there is none.
*/
func (repository *repository) About(context context.Context, bookID int64) (*About, error) {
	book := schema.BookInfo
	chapter := schema.BookChapter
	content := schema.BookContent

	headQuery := fmt.Sprintf(`
		SELECT b.%s, b.%s, b.%s, b.%s, b.%s, b.%s, b.%s,
		       COUNT(c.%s),
		       COALESCE((SELECT LEFT(t.%s, %d) FROM %s t WHERE t.%s = b.%s), '')
		FROM %s b
		LEFT JOIN %s c ON c.%s = b.%s
		WHERE b.%s = $1
		GROUP BY b.%s`,
		book.ID, book.BookName, book.LastChapterID, book.LastChapterName,
		book.LastChapterUpdateTime, book.WordCount, book.BookStatus,
		chapter.ID,
		content.Content, summaryLength, content.Table, content.ChapterID, book.LastChapterID,
		book.Table,
		chapter.Table, chapter.BookID, book.ID,
		book.ID,
		book.ID,
	)

	var about About
	head := &about.BookInfo
	err := repository.pool.QueryRow(context, headQuery, bookID).Scan(
		&head.ID,
		&head.BookName,
		&head.LastChapterID,
		&head.LastChapterName,
		&head.LastChapterUpdateTime,
		&head.WordCount,
		&head.BookStatus,
		&head.ChapterTotal,
		&about.ContentSummary,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "Book")
	}

	latestQuery := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s DESC LIMIT $2`,
		chapterColumns(""), chapter.Table, chapter.BookID, chapter.ChapterNum)

	rows, err := repository.pool.Query(context, latestQuery, bookID, LatestLimit)
	if err != nil {
		return nil, dberr.Wrap(err, "Chapter")
	}

	about.LatestChapters, err = collectChapters(rows)
	if err != nil {
		return nil, dberr.Wrap(err, "Chapter")
	}
	return &about, nil
}

func (repository *repository) Reading(context context.Context, chapterID int64) (*Reading, error) {
	book := schema.BookInfo
	content := schema.BookContent

	query := fmt.Sprintf(`
		SELECT %s, b.%s, b.%s, b.%s, b.%s, t.%s
		FROM %s c
		JOIN %s b ON b.%s = c.%s
		LEFT JOIN %s t ON t.%s = c.%s
		WHERE c.%s = $1`,
		chapterColumns("c"), book.ID, book.BookName, book.CategoryName, book.AuthorName, content.Content,
		schema.BookChapter.Table,
		book.Table, book.ID, schema.BookChapter.BookID,
		content.Table, content.ChapterID, schema.BookChapter.ID,
		schema.BookChapter.ID,
	)

	var reading Reading
	var body *string
	err := scanChapter(repository.pool.QueryRow(context, query, chapterID), &reading.ChapterInfo,
		&reading.BookInfo.ID,
		&reading.BookInfo.BookName,
		&reading.BookInfo.CategoryName,
		&reading.BookInfo.AuthorName,
		&body,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "Chapter")
	}

	if body == nil {
		return nil, apperr.NotFound("Chapter").WithCause(ErrContentMissing)
	}

	reading.BookContent = *body
	return &reading, nil
}

func (repository *repository) Neighbours(context context.Context, chapterID int64) (*Neighbours, error) {
	table := schema.BookChapter
	query := fmt.Sprintf(`
		SELECT
			(SELECT p.%[1]s FROM %[2]s p WHERE p.%[3]s = c.%[3]s AND p.%[4]s < c.%[4]s ORDER BY p.%[4]s DESC LIMIT 1),
			(SELECT n.%[1]s FROM %[2]s n WHERE n.%[3]s = c.%[3]s AND n.%[4]s > c.%[4]s ORDER BY n.%[4]s ASC LIMIT 1)
		FROM %[2]s c
		WHERE c.%[1]s = $1`,
		table.ID, table.Table, table.BookID, table.ChapterNum,
	)

	var neighbours Neighbours
	if err := repository.pool.QueryRow(context, query, chapterID).Scan(&neighbours.Prev, &neighbours.Next); err != nil {
		return nil, dberr.Wrap(err, "Chapter")
	}
	return &neighbours, nil
}

func (repository *repository) Get(context context.Context, chapterID int64) (*Edit, error) {
	content := schema.BookContent
	query := fmt.Sprintf(`
		SELECT %s, COALESCE(t.%s, '')
		FROM %s c
		LEFT JOIN %s t ON t.%s = c.%s
		WHERE c.%s = $1`,
		chapterColumns("c"), content.Content,
		schema.BookChapter.Table,
		content.Table, content.ChapterID, schema.BookChapter.ID,
		schema.BookChapter.ID,
	)

	var edit Edit
	if err := scanChapter(repository.pool.QueryRow(context, query, chapterID), &edit.Chapter, &edit.Content); err != nil {
		return nil, dberr.Wrap(err, "Chapter")
	}
	return &edit, nil
}

func (repository *repository) BookAuthorID(context context.Context, bookID int64) (int64, error) {
	table := schema.BookInfo
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, table.AuthorID, table.Table, table.ID)

	var authorID int64
	if err := repository.pool.QueryRow(context, query, bookID).Scan(&authorID); err != nil {
		return 0, dberr.Wrap(err, "Book")
	}
	return authorID, nil
}

func (repository *repository) ChapterAuthorID(context context.Context, chapterID int64) (int64, error) {
	book := schema.BookInfo
	chapter := schema.BookChapter
	query := fmt.Sprintf(`SELECT b.%s FROM %s c JOIN %s b ON b.%s = c.%s WHERE c.%s = $1`,
		book.AuthorID, chapter.Table, book.Table, book.ID, chapter.BookID, chapter.ID)

	var authorID int64
	if err := repository.pool.QueryRow(context, query, chapterID).Scan(&authorID); err != nil {
		return 0, dberr.Wrap(err, "Chapter")
	}
	return authorID, nil
}

// # Transactional Writes

// lockBook locks the book row for the rest of tx and checks its owner.
func lockBook(context context.Context, tx pgx.Tx, bookID, authorID int64) error {
	table := schema.BookInfo
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 FOR UPDATE`, table.AuthorID, table.Table, table.ID)

	var ownerID int64
	if err := tx.QueryRow(context, query, bookID).Scan(&ownerID); err != nil {
		return dberr.Wrap(err, "Book")
	}
	if ownerID != authorID {
		return apperr.Forbidden("You are not the author of this book")
	}
	return nil
}

// chapterBook returns the book a chapter belongs to.
func chapterBook(context context.Context, tx pgx.Tx, chapterID int64) (int64, error) {
	table := schema.BookChapter
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, table.BookID, table.Table, table.ID)

	var bookID int64
	if err := tx.QueryRow(context, query, chapterID).Scan(&bookID); err != nil {
		return 0, dberr.Wrap(err, "Chapter")
	}
	return bookID, nil
}

/*
Create appends a chapter to a book.

Description: Assigns chapter number max+1 under the book row lock, inserts
the chapter and its content, then points the book at the new chapter and adds
its words to the book total.

Returns:
  - error: NOT_FOUND (book), FORBIDDEN (not the owner), CONFLICT (number taken)
*/
func (repository *repository) Create(context context.Context, authorID int64, chapter *Chapter, content string) error {
	table := schema.BookChapter
	book := schema.BookInfo

	return postgres.InTx(context, repository.pool, func(tx pgx.Tx) error {
		if err := lockBook(context, tx, chapter.BookID, authorID); err != nil {
			return err
		}

		// 1. Next chapter number
		maxQuery := fmt.Sprintf(`SELECT COALESCE(MAX(%s), 0) FROM %s WHERE %s = $1`,
			table.ChapterNum, table.Table, table.BookID)

		var maxNum int
		if err := tx.QueryRow(context, maxQuery, chapter.BookID).Scan(&maxNum); err != nil {
			return dberr.Wrap(err, "Chapter")
		}
		chapter.ChapterNum = maxNum + 1

		// 2. Chapter row
		insertChapter := fmt.Sprintf(`
			INSERT INTO %s (%s, %s, %s, %s, %s)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING %s, %s, %s`,
			table.Table,
			table.BookID, table.ChapterNum, table.ChapterName, table.WordCount, table.IsVip,
			table.ID, table.CreateTime, table.UpdateTime,
		)

		err := tx.QueryRow(context, insertChapter,
			chapter.BookID,
			chapter.ChapterNum,
			chapter.ChapterName,
			chapter.ChapterWordCount,
			chapter.IsVip,
		).Scan(&chapter.ID, &chapter.CreateTime, &chapter.ChapterUpdateTime)
		if err != nil {
			return dberr.Wrap(err, "Chapter")
		}

		// 3. Content row
		insertContent := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`,
			schema.BookContent.Table, schema.BookContent.ChapterID, schema.BookContent.Content)

		if _, err := tx.Exec(context, insertContent, chapter.ID, content); err != nil {
			return dberr.Wrap(err, "Chapter content")
		}

		// 4. Book pointer and totals
		updateBook := fmt.Sprintf(`
			UPDATE %s
			SET %s = $1, %s = $2, %s = $3, %s = %s + $4, %s = now()
			WHERE %s = $5`,
			book.Table,
			book.LastChapterID, book.LastChapterName, book.LastChapterUpdateTime,
			book.WordCount, book.WordCount, book.UpdateTime,
			book.ID,
		)

		_, err = tx.Exec(context, updateBook,
			chapter.ID,
			chapter.ChapterName,
			chapter.ChapterUpdateTime,
			chapter.ChapterWordCount,
			chapter.BookID,
		)
		return dberr.Wrap(err, "Book")
	})
}

/*
Update rewrites a chapter and its content.

Description: The chapter row is updated first; when it no longer exists the
transaction stops with NOT_FOUND before the content is touched. The book word
count moves by the difference, and when the chapter is the book's last chapter
the denormalized name and time follow.
*/
func (repository *repository) Update(context context.Context, authorID int64, chapter *Chapter, content string) error {
	table := schema.BookChapter
	book := schema.BookInfo

	return postgres.InTx(context, repository.pool, func(tx pgx.Tx) error {
		bookID, err := chapterBook(context, tx, chapter.ID)
		if err != nil {
			return err
		}
		if err := lockBook(context, tx, bookID, authorID); err != nil {
			return err
		}

		// 1. Previous size, read under the book lock
		var oldWordCount int
		sizeQuery := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, table.WordCount, table.Table, table.ID)
		if err := tx.QueryRow(context, sizeQuery, chapter.ID).Scan(&oldWordCount); err != nil {
			return dberr.Wrap(err, "Chapter")
		}

		// 2. Chapter row
		updateChapter := fmt.Sprintf(`
			UPDATE %s
			SET %s = $1, %s = $2, %s = $3, %s = now()
			WHERE %s = $4
			RETURNING %s`,
			table.Table,
			table.ChapterName, table.WordCount, table.IsVip, table.UpdateTime,
			table.ID,
			chapterColumns(""),
		)

		row := tx.QueryRow(context, updateChapter,
			chapter.ChapterName,
			chapter.ChapterWordCount,
			chapter.IsVip,
			chapter.ID,
		)
		if err := scanChapter(row, chapter); err != nil {
			return dberr.Wrap(err, "Chapter")
		}

		// 3. Content row
		upsertContent := fmt.Sprintf(`
			INSERT INTO %[1]s (%[2]s, %[3]s) VALUES ($1, $2)
			ON CONFLICT (%[2]s) DO UPDATE SET %[3]s = EXCLUDED.%[3]s, %[4]s = now()`,
			schema.BookContent.Table, schema.BookContent.ChapterID,
			schema.BookContent.Content, schema.BookContent.UpdateTime,
		)

		if _, err := tx.Exec(context, upsertContent, chapter.ID, content); err != nil {
			return dberr.Wrap(err, "Chapter content")
		}

		// 4. Book totals and, for the last chapter, its denormalized fields
		updateBook := fmt.Sprintf(`
			UPDATE %[1]s
			SET %[2]s = GREATEST(%[2]s + $1, 0),
			    %[3]s = CASE WHEN %[4]s = $2 THEN $3 ELSE %[3]s END,
			    %[5]s = CASE WHEN %[4]s = $2 THEN $4 ELSE %[5]s END,
			    %[6]s = now()
			WHERE %[7]s = $5`,
			book.Table,
			book.WordCount,
			book.LastChapterName,
			book.LastChapterID,
			book.LastChapterUpdateTime,
			book.UpdateTime,
			book.ID,
		)

		_, err = tx.Exec(context, updateBook,
			chapter.ChapterWordCount-oldWordCount,
			chapter.ID,
			chapter.ChapterName,
			chapter.ChapterUpdateTime,
			bookID,
		)
		return dberr.Wrap(err, "Book")
	})
}

/*
Delete removes a chapter and its content.

Description: Content goes first, then the chapter; a chapter that is already
gone yields NOT_FOUND and the transaction restores the content. The book's
last-chapter pointer is recomputed from the remaining chapters (NULL when none
remain) and the chapter's words are subtracted. Remaining chapters keep their
numbers.
*/
func (repository *repository) Delete(context context.Context, authorID, chapterID int64) error {
	table := schema.BookChapter
	book := schema.BookInfo

	return postgres.InTx(context, repository.pool, func(tx pgx.Tx) error {
		bookID, err := chapterBook(context, tx, chapterID)
		if err != nil {
			return err
		}
		if err := lockBook(context, tx, bookID, authorID); err != nil {
			return err
		}

		// 1. Content (zero or one row)
		deleteContent := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
			schema.BookContent.Table, schema.BookContent.ChapterID)
		if _, err := tx.Exec(context, deleteContent, chapterID); err != nil {
			return dberr.Wrap(err, "Chapter content")
		}

		// 2. Chapter
		deleteChapter := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 RETURNING %s`,
			table.Table, table.ID, table.WordCount)

		var wordCount int
		if err := tx.QueryRow(context, deleteChapter, chapterID).Scan(&wordCount); err != nil {
			return dberr.Wrap(err, "Chapter")
		}

		// 3. Book pointer from what remains
		updateBook := fmt.Sprintf(`
			UPDATE %[1]s b
			SET (%[2]s, %[3]s, %[4]s) = (
			        SELECT c.%[5]s, c.%[6]s, c.%[7]s
			        FROM %[8]s c
			        WHERE c.%[9]s = b.%[10]s
			        ORDER BY c.%[11]s DESC
			        LIMIT 1),
			    %[12]s = GREATEST(b.%[12]s - $1, 0),
			    %[13]s = now()
			WHERE b.%[10]s = $2`,
			book.Table,
			book.LastChapterID, book.LastChapterName, book.LastChapterUpdateTime,
			table.ID, table.ChapterName, table.UpdateTime,
			table.Table,
			table.BookID, book.ID,
			table.ChapterNum,
			book.WordCount,
			book.UpdateTime,
		)

		_, err = tx.Exec(context, updateBook, wordCount, bookID)
		return dberr.Wrap(err, "Book")
	})
}
