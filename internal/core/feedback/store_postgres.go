// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package feedback

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/inkwell/internal/platform/database/schema"
	"github.com/taibuivan/inkwell/internal/platform/dberr"
)

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed feedback store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (repository *repository) Create(context context.Context, feedback *Feedback) error {
	table := schema.UserFeedback
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2)
		RETURNING %s, %s`,
		table.Table, table.UserID, table.Content,
		table.ID, table.CreateTime,
	)

	err := repository.pool.QueryRow(context, query, feedback.UserID, feedback.Content).
		Scan(&feedback.ID, &feedback.CreateTime)
	return dberr.Wrap(err, "Feedback")
}

func (repository *repository) List(context context.Context, limit, offset int) ([]*Feedback, int64, error) {
	table := schema.UserFeedback

	var total int64
	count := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, table.Table)
	if err := repository.pool.QueryRow(context, count).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "Feedback")
	}

	items := []*Feedback{}
	if total == 0 {
		return items, 0, nil
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		ORDER BY %s DESC, %s DESC
		LIMIT $1 OFFSET $2`,
		table.ID, table.UserID, table.Content, table.CreateTime,
		table.Table,
		table.CreateTime, table.ID,
	)

	rows, err := repository.pool.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "Feedback")
	}
	defer rows.Close()

	for rows.Next() {
		var item Feedback
		if err := rows.Scan(&item.ID, &item.UserID, &item.Content, &item.CreateTime); err != nil {
			return nil, 0, dberr.Wrap(err, "Feedback")
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "Feedback")
	}

	return items, total, nil
}
