// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
PostgreSQL implementation of the catalogue store.

Searches run the two statements produced by [BuildSearch]. Writes by authors
lock the book row first (SELECT ... FOR UPDATE) so that ownership is checked
against the row that is about to change, the same order the chapter workflow
uses.
*/
package book

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/database/schema"
	"github.com/taibuivan/inkwell/internal/platform/dberr"
	"github.com/taibuivan/inkwell/internal/platform/postgres"
)

// # PostgreSQL Repository

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed catalogue store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

// scanBook reads the columns listed by [bookColumns], in order.
func scanBook(row pgx.Row, book *Book, extra ...any) error {
	targets := []any{
		&book.ID,
		&book.WorkDirection,
		&book.CategoryID,
		&book.CategoryName,
		&book.PicURL,
		&book.BookName,
		&book.AuthorID,
		&book.AuthorName,
		&book.BookDesc,
		&book.Score,
		&book.BookStatus,
		&book.VisitCount,
		&book.WordCount,
		&book.CommentCount,
		&book.LastChapterID,
		&book.LastChapterName,
		&book.LastChapterUpdateTime,
		&book.IsVip,
		&book.CreateTime,
		&book.UpdateTime,
	}
	return row.Scan(append(targets, extra...)...)
}

func collectBooks(rows pgx.Rows) ([]*Book, error) {
	defer rows.Close()

	books := []*Book{}
	for rows.Next() {
		var book Book
		if err := scanBook(rows, &book); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan book: %w", err)
		}
		books = append(books, &book)
	}
	return books, rows.Err()
}

// # Categories

func (repository *repository) ListCategories(context context.Context, workDirection int) ([]*Category, error) {
	table := schema.BookCategory
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s, %s`,
		table.ID, table.WorkDirection, table.Name, table.Sort,
		table.Table,
		table.WorkDirection,
		table.Sort, table.ID,
	)

	rows, err := repository.pool.Query(context, query, workDirection)
	if err != nil {
		return nil, dberr.Wrap(err, "Category")
	}
	defer rows.Close()

	categories := []*Category{}
	for rows.Next() {
		var category Category
		if err := rows.Scan(&category.ID, &category.WorkDirection, &category.Name, &category.Sort); err != nil {
			return nil, dberr.Wrap(err, "Category")
		}
		categories = append(categories, &category)
	}

	return categories, dberr.Wrap(rows.Err(), "Category")
}

func (repository *repository) FindCategory(context context.Context, id int64) (*Category, error) {
	table := schema.BookCategory
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = $1`,
		table.ID, table.WorkDirection, table.Name, table.Sort, table.Table, table.ID)

	var category Category
	err := repository.pool.QueryRow(context, query, id).Scan(
		&category.ID, &category.WorkDirection, &category.Name, &category.Sort,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "Category")
	}
	return &category, nil
}

// # Discovery

/*
Search executes a [SearchQuery].

Returns:
  - []*Book: the requested page
  - int64: size of the whole filtered set, from the count statement
*/
func (repository *repository) Search(context context.Context, query SearchQuery) ([]*Book, int64, error) {
	var total int64
	if err := repository.pool.QueryRow(context, query.CountSQL, query.CountArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "Book")
	}

	// Nothing matched; skip the page query.
	if total == 0 {
		return []*Book{}, 0, nil
	}

	rows, err := repository.pool.Query(context, query.ListSQL, query.ListArgs...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "Book")
	}

	books, err := collectBooks(rows)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "Book")
	}
	return books, total, nil
}

var rankColumns = map[RankType]string{
	RankVisit:  schema.BookInfo.VisitCount,
	RankNewest: schema.BookInfo.CreateTime,
	RankUpdate: schema.BookInfo.UpdateTime,
}

func (repository *repository) Rank(context context.Context, rank RankType, workDirection int, limit int) ([]*Book, error) {
	column, ok := rankColumns[rank]
	if !ok {
		return nil, apperr.ValidationError("Unknown rank type")
	}

	table := schema.BookInfo
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s DESC, %s DESC
		LIMIT $2`,
		bookColumns(""),
		table.Table,
		table.WorkDirection,
		column, table.ID,
	)

	rows, err := repository.pool.Query(context, query, workDirection, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "Book")
	}

	books, err := collectBooks(rows)
	return books, dberr.Wrap(err, "Book")
}

func (repository *repository) ListHomeBooks(context context.Context) ([]*HomeBook, error) {
	home := schema.HomeBook
	query := fmt.Sprintf(`
		SELECT %s, h.%s
		FROM %s h
		JOIN %s b ON b.%s = h.%s
		ORDER BY h.%s, h.%s`,
		bookColumns("b"), home.Type,
		home.Table,
		schema.BookInfo.Table, schema.BookInfo.ID, home.BookID,
		home.Type, home.Sort,
	)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "Book")
	}
	defer rows.Close()

	slots := []*HomeBook{}
	for rows.Next() {
		var slot HomeBook
		if err := scanBook(rows, &slot.Book, &slot.Type); err != nil {
			return nil, dberr.Wrap(err, "Book")
		}
		slots = append(slots, &slot)
	}

	return slots, dberr.Wrap(rows.Err(), "Book")
}

func (repository *repository) FindByID(context context.Context, id int64) (*Book, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		bookColumns(""), schema.BookInfo.Table, schema.BookInfo.ID)

	var book Book
	if err := scanBook(repository.pool.QueryRow(context, query, id), &book); err != nil {
		return nil, dberr.Wrap(err, "Book")
	}
	return &book, nil
}

// ListRecommended returns the most visited books of the same category, excluding book itself.
func (repository *repository) ListRecommended(context context.Context, book *Book, limit int) ([]*Book, error) {
	table := schema.BookInfo
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s <> $2
		ORDER BY %s DESC, %s DESC
		LIMIT $3`,
		bookColumns(""),
		table.Table,
		table.CategoryID, table.ID,
		table.VisitCount, table.ID,
	)

	rows, err := repository.pool.Query(context, query, book.CategoryID, book.ID, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "Book")
	}

	books, err := collectBooks(rows)
	return books, dberr.Wrap(err, "Book")
}

// ListByAuthor pages through an author's books, most recently updated first.
func (repository *repository) ListByAuthor(context context.Context, authorID int64, limit, offset int) ([]*Book, int64, error) {
	table := schema.BookInfo

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = $1`, table.Table, table.AuthorID)
	if err := repository.pool.QueryRow(context, countQuery, authorID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "Book")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s DESC, %s DESC
		LIMIT $2 OFFSET $3`,
		bookColumns(""),
		table.Table,
		table.AuthorID,
		table.UpdateTime, table.ID,
	)

	rows, err := repository.pool.Query(context, query, authorID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "Book")
	}

	books, err := collectBooks(rows)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "Book")
	}
	return books, total, nil
}

// # Writes

func (repository *repository) IncrementVisit(context context.Context, id int64) error {
	table := schema.BookInfo
	query := fmt.Sprintf(`UPDATE %s SET %s = %s + 1 WHERE %s = $1`,
		table.Table, table.VisitCount, table.VisitCount, table.ID)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "Book")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Book")
	}
	return nil
}

// Create inserts a book; category and author names are already denormalized onto it.
func (repository *repository) Create(context context.Context, book *Book) error {
	table := schema.BookInfo
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING %s, %s, %s`,
		table.Table,
		table.WorkDirection, table.CategoryID, table.CategoryName, table.PicURL, table.BookName,
		table.AuthorID, table.AuthorName, table.BookDesc, table.BookStatus, table.IsVip,
		table.ID, table.CreateTime, table.UpdateTime,
	)

	err := repository.pool.QueryRow(context, query,
		book.WorkDirection,
		book.CategoryID,
		book.CategoryName,
		book.PicURL,
		book.BookName,
		book.AuthorID,
		book.AuthorName,
		book.BookDesc,
		book.BookStatus,
		book.IsVip,
	).Scan(&book.ID, &book.CreateTime, &book.UpdateTime)

	return dberr.Wrap(err, "Book")
}

// lockOwned locks a book row for the rest of tx and checks its owner.
func lockOwned(context context.Context, tx pgx.Tx, id, authorID int64) error {
	table := schema.BookInfo
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 FOR UPDATE`, table.AuthorID, table.Table, table.ID)

	var ownerID int64
	if err := tx.QueryRow(context, query, id).Scan(&ownerID); err != nil {
		return dberr.Wrap(err, "Book")
	}
	if ownerID != authorID {
		return apperr.Forbidden("You are not the author of this book")
	}
	return nil
}

// Update rewrites the editable fields of a book owned by book.AuthorID.
func (repository *repository) Update(context context.Context, book *Book) error {
	table := schema.BookInfo

	return postgres.InTx(context, repository.pool, func(tx pgx.Tx) error {
		if err := lockOwned(context, tx, book.ID, book.AuthorID); err != nil {
			return err
		}

		query := fmt.Sprintf(`
			UPDATE %s
			SET %s = $1, %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = now()
			WHERE %s = $9
			RETURNING %s`,
			table.Table,
			table.WorkDirection, table.CategoryID, table.CategoryName, table.PicURL, table.BookName,
			table.BookDesc, table.BookStatus, table.IsVip, table.UpdateTime,
			table.ID,
			bookColumns(""),
		)

		row := tx.QueryRow(context, query,
			book.WorkDirection,
			book.CategoryID,
			book.CategoryName,
			book.PicURL,
			book.BookName,
			book.BookDesc,
			book.BookStatus,
			book.IsVip,
			book.ID,
		)
		return dberr.Wrap(scanBook(row, book), "Book")
	})
}

/*
Delete removes a book with everything that hangs off it.

Description: Runs in one transaction: contents, chapters, comments and home
slots go first, then the book row. Any failure leaves the book untouched.
*/
func (repository *repository) Delete(context context.Context, id, authorID int64) error {
	chapter := schema.BookChapter
	content := schema.BookContent

	return postgres.InTx(context, repository.pool, func(tx pgx.Tx) error {
		if err := lockOwned(context, tx, id, authorID); err != nil {
			return err
		}

		statements := []string{
			fmt.Sprintf(`DELETE FROM %s WHERE %s IN (SELECT %s FROM %s WHERE %s = $1)`,
				content.Table, content.ChapterID, chapter.ID, chapter.Table, chapter.BookID),
			fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, chapter.Table, chapter.BookID),
			fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.BookComment.Table, schema.BookComment.BookID),
			fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.HomeBook.Table, schema.HomeBook.BookID),
			fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.BookInfo.Table, schema.BookInfo.ID),
		}

		for _, statement := range statements {
			if _, err := tx.Exec(context, statement, id); err != nil {
				return dberr.Wrap(err, "Book")
			}
		}
		return nil
	})
}
