// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/database/schema"
	"github.com/taibuivan/inkwell/internal/platform/dberr"
)

// # PostgreSQL Repository

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed profile store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

/*
FindByUserID loads the profile registered by an identity subject.

Returns:
  - *Profile: the profile
  - error: apperr.NotFound when the user never registered
*/
func (repository *repository) FindByUserID(context context.Context, userID string) (*Profile, error) {
	table := schema.AuthorInfo
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1`,
		table.ID, table.UserID, table.PenName, table.TelPhone, table.ChatAccount,
		table.Email, table.WorkDirection, table.Status, table.CreateTime,
		table.Table,
		table.UserID,
	)

	var profile Profile
	err := repository.pool.QueryRow(context, query, userID).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.PenName,
		&profile.TelPhone,
		&profile.ChatAccount,
		&profile.Email,
		&profile.WorkDirection,
		&profile.Status,
		&profile.CreateTime,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "Author profile")
	}

	return &profile, nil
}

/*
Create inserts a new profile and fills its generated fields.

A second registration by the same user, or a taken pen name, hits a unique
constraint and surfaces as apperr.Conflict.
*/
func (repository *repository) Create(context context.Context, profile *Profile) error {
	table := schema.AuthorInfo
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s, %s`,
		table.Table,
		table.UserID, table.PenName, table.TelPhone, table.ChatAccount, table.Email,
		table.WorkDirection, table.Status,
		table.ID, table.CreateTime,
	)

	err := repository.pool.QueryRow(context, query,
		profile.UserID,
		profile.PenName,
		profile.TelPhone,
		profile.ChatAccount,
		profile.Email,
		profile.WorkDirection,
		profile.Status,
	).Scan(&profile.ID, &profile.CreateTime)
	if dberr.IsUniqueViolation(err) {
		return apperr.Conflict("Author profile or pen name already exists").WithCause(err)
	}

	return dberr.Wrap(err, "Author profile")
}
