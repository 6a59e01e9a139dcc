// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/database/schema"
	"github.com/taibuivan/inkwell/internal/platform/dberr"
	"github.com/taibuivan/inkwell/internal/platform/postgres"
	"github.com/taibuivan/inkwell/internal/users/account"
)

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed comment store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

// selectComments is the comment projection; the mirror row may be missing.
func selectComments() string {
	c := schema.BookComment
	u := schema.UserInfo
	return fmt.Sprintf(`
		SELECT c.%s, c.%s, c.%s, COALESCE(u.%s, ''), COALESCE(u.%s, ''),
		       c.%s, c.%s, c.%s, c.%s, c.%s
		FROM %s c
		LEFT JOIN %s u ON u.%s = c.%s`,
		c.ID, c.BookID, c.UserID, u.NickName, u.UserPhoto,
		c.CommentContent, c.ReplyCount, c.AuditStatus, c.CreateTime, c.UpdateTime,
		c.Table,
		u.Table, u.ID, c.UserID,
	)
}

func scanComment(row pgx.Row, comment *Comment) error {
	return row.Scan(
		&comment.ID,
		&comment.BookID,
		&comment.CommentUserID,
		&comment.CommentUser,
		&comment.CommentUserPhoto,
		&comment.CommentContent,
		&comment.ReplyCount,
		&comment.AuditStatus,
		&comment.CommentTime,
		&comment.UpdateTime,
	)
}

// page runs a count and a newest-first page over comments where column = value.
func (repository *repository) page(context context.Context, column string, value any, limit, offset int) ([]*Comment, int64, error) {
	table := schema.BookComment

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = $1`, table.Table, column)
	if err := repository.pool.QueryRow(context, countQuery, value).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "Comment")
	}

	comments := []*Comment{}
	if total == 0 {
		return comments, 0, nil
	}

	query := fmt.Sprintf(`%s
		WHERE c.%s = $1
		ORDER BY c.%s DESC, c.%s DESC
		LIMIT $2 OFFSET $3`,
		selectComments(),
		column,
		table.CreateTime, table.ID,
	)

	rows, err := repository.pool.Query(context, query, value, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "Comment")
	}
	defer rows.Close()

	for rows.Next() {
		var comment Comment
		if err := scanComment(rows, &comment); err != nil {
			return nil, 0, dberr.Wrap(err, "Comment")
		}
		comments = append(comments, &comment)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "Comment")
	}

	return comments, total, nil
}

func (repository *repository) ListByBook(context context.Context, bookID int64, limit, offset int) ([]*Comment, int64, error) {
	return repository.page(context, schema.BookComment.BookID, bookID, limit, offset)
}

func (repository *repository) ListByUser(context context.Context, userID string, limit, offset int) ([]*Comment, int64, error) {
	return repository.page(context, schema.BookComment.UserID, userID, limit, offset)
}

func (repository *repository) FindByID(context context.Context, id int64) (*Comment, error) {
	query := fmt.Sprintf(`%s WHERE c.%s = $1`, selectComments(), schema.BookComment.ID)

	var comment Comment
	if err := scanComment(repository.pool.QueryRow(context, query, id), &comment); err != nil {
		return nil, dberr.Wrap(err, "Comment")
	}
	return &comment, nil
}

/*
Create posts a comment.

Description: One transaction mirrors the author, bumps the book's
comment_count (NOT_FOUND when the book does not exist) and inserts the row.
*/
func (repository *repository) Create(context context.Context, author account.User, comment *Comment) error {
	table := schema.BookComment
	book := schema.BookInfo

	return postgres.InTx(context, repository.pool, func(tx pgx.Tx) error {
		if err := account.EnsureUser(context, tx, author); err != nil {
			return err
		}

		bump := fmt.Sprintf(`UPDATE %s SET %s = %s + 1 WHERE %s = $1`,
			book.Table, book.CommentCount, book.CommentCount, book.ID)

		tag, err := tx.Exec(context, bump, comment.BookID)
		if err != nil {
			return dberr.Wrap(err, "Book")
		}
		if tag.RowsAffected() == 0 {
			return apperr.NotFound("Book")
		}

		insert := fmt.Sprintf(`
			INSERT INTO %s (%s, %s, %s)
			VALUES ($1, $2, $3)
			RETURNING %s, %s, %s, %s, %s`,
			table.Table,
			table.BookID, table.UserID, table.CommentContent,
			table.ID, table.ReplyCount, table.AuditStatus, table.CreateTime, table.UpdateTime,
		)

		err = tx.QueryRow(context, insert, comment.BookID, author.ID, comment.CommentContent).Scan(
			&comment.ID,
			&comment.ReplyCount,
			&comment.AuditStatus,
			&comment.CommentTime,
			&comment.UpdateTime,
		)
		if err != nil {
			return dberr.Wrap(err, "Comment")
		}

		comment.CommentUserID = author.ID
		return nil
	})
}

func (repository *repository) Update(context context.Context, comment *Comment) error {
	table := schema.BookComment
	query := fmt.Sprintf(`UPDATE %s SET %s = $1, %s = now() WHERE %s = $2 RETURNING %s`,
		table.Table, table.CommentContent, table.UpdateTime, table.ID, table.UpdateTime)

	err := repository.pool.QueryRow(context, query, comment.CommentContent, comment.ID).Scan(&comment.UpdateTime)
	return dberr.Wrap(err, "Comment")
}

func (repository *repository) Delete(context context.Context, id int64) error {
	table := schema.BookComment
	book := schema.BookInfo

	return postgres.InTx(context, repository.pool, func(tx pgx.Tx) error {
		var bookID int64
		remove := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 RETURNING %s`, table.Table, table.ID, table.BookID)
		if err := tx.QueryRow(context, remove, id).Scan(&bookID); err != nil {
			return dberr.Wrap(err, "Comment")
		}

		decrement := fmt.Sprintf(`UPDATE %s SET %s = GREATEST(%s - 1, 0) WHERE %s = $1`,
			book.Table, book.CommentCount, book.CommentCount, book.ID)
		_, err := tx.Exec(context, decrement, bookID)
		return dberr.Wrap(err, "Book")
	})
}
