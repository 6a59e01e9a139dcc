// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/inkwell/internal/platform/database/schema"
	"github.com/taibuivan/inkwell/internal/platform/dberr"
	"github.com/taibuivan/inkwell/internal/platform/postgres"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates the Postgres implementation of the user mirror.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
EnsureUser inserts the mirror row for user unless one exists.

Description: An existing row is left untouched, so edits made through
PUT /front/user survive later sign-ins. db may be a pool or a transaction.
*/
func EnsureUser(context context.Context, db postgres.Executor, user User) error {
	table := schema.UserInfo
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		ON CONFLICT (%s) DO NOTHING`,
		table.Table, table.ID, table.NickName, table.UserPhoto,
		table.ID,
	)

	_, err := db.Exec(context, query, user.ID, user.NickName, user.UserPhoto)
	return dberr.Wrap(err, "User")
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*User, error) {
	table := schema.UserInfo
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		table.ID, table.NickName, table.UserPhoto, table.CreateTime, table.UpdateTime,
		table.Table, table.ID,
	)

	user := &User{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&user.ID,
		&user.NickName,
		&user.UserPhoto,
		&user.CreateTime,
		&user.UpdateTime,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "User")
	}
	return user, nil
}

func (repository *PostgresRepository) Ensure(context context.Context, user User) (*User, error) {
	if err := EnsureUser(context, repository.pool, user); err != nil {
		return nil, err
	}
	return repository.FindByID(context, user.ID)
}

func (repository *PostgresRepository) Update(context context.Context, user *User) error {
	table := schema.UserInfo
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = now()
		WHERE %s = $1
		RETURNING %s`,
		table.Table,
		table.NickName, table.UserPhoto, table.UpdateTime,
		table.ID,
		table.UpdateTime,
	)

	err := repository.pool.QueryRow(context, query, user.ID, user.NickName, user.UserPhoto).Scan(&user.UpdateTime)
	return dberr.Wrap(err, "User")
}
