// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pgtest

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

// BookFixture describes a book row to insert. Zero values get sensible defaults.
type BookFixture struct {
	Name          string
	AuthorName    string
	WorkDirection int
	CategoryID    int64
	BookStatus    int
	WordCount     int
	VisitCount    int64
}

// SeedUser inserts a user mirror row.
func SeedUser(t *testing.T, pool *pgxpool.Pool, userID, nickName string) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO user_info (id, nick_name) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`,
		userID, nickName)
	if err != nil {
		t.Fatalf("pgtest: seed user: %v", err)
	}
}

// SeedAuthor inserts an author profile and returns its id.
func SeedAuthor(t *testing.T, pool *pgxpool.Pool, userID, penName string) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO author_info (user_id, pen_name) VALUES ($1, $2) RETURNING id`,
		userID, penName).Scan(&id)
	if err != nil {
		t.Fatalf("pgtest: seed author: %v", err)
	}
	return id
}

// SeedBook inserts a book owned by authorID and returns its id.
func SeedBook(t *testing.T, pool *pgxpool.Pool, authorID int64, book BookFixture) int64 {
	t.Helper()

	if book.CategoryID == 0 {
		book.CategoryID = 1
	}
	if book.AuthorName == "" {
		book.AuthorName = "Anonymous"
	}

	var id int64
	err := pool.QueryRow(context.Background(), `
		INSERT INTO book_info (work_direction, category_id, category_name, book_name,
		                       author_id, author_name, book_status, word_count, visit_count)
		VALUES ($1, $2, (SELECT name FROM book_category WHERE id = $2), $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		book.WorkDirection, book.CategoryID, book.Name, authorID, book.AuthorName,
		book.BookStatus, book.WordCount, book.VisitCount,
	).Scan(&id)
	if err != nil {
		t.Fatalf("pgtest: seed book %q: %v", book.Name, err)
	}
	return id
}
