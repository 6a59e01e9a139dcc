// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pgtest gives integration tests a migrated, emptied database.
//
// Tests are skipped when TEST_DATABASE_URL is unset or unreachable. Packages
// run in parallel processes, so each test holds an advisory lock for its whole
// lifetime to keep fixtures from different packages apart.
package pgtest

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/inkwell/internal/platform/migration"
)

// EnvDatabaseURL names the variable holding the test database URL.
const EnvDatabaseURL = "TEST_DATABASE_URL"

const lockKey = 7_246_513

// Tables emptied before every test, children first. book_category keeps its seed rows.
var tables = []string{
	"user_feedback", "home_book", "book_comment", "book_content",
	"book_chapter", "book_info", "author_info", "user_info",
}

// Pool returns a pool on a freshly truncated test database.
func Pool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv(EnvDatabaseURL)
	if dsn == "" {
		t.Skipf("skipping integration test: %s not set", EnvDatabaseURL)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	lockConn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		t.Skipf("skipping integration test: DB not available: %v", err)
	}
	if _, err := lockConn.Exec(ctx, "SELECT pg_advisory_lock($1)", lockKey); err != nil {
		_ = lockConn.Close(ctx)
		t.Fatalf("pgtest: advisory lock: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := migration.RunUp(dsn, logger); err != nil {
		_ = lockConn.Close(ctx)
		t.Fatalf("pgtest: migrate: %v", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		_ = lockConn.Close(ctx)
		t.Fatalf("pgtest: pool: %v", err)
	}

	truncate := "TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE"
	if _, err := pool.Exec(ctx, truncate); err != nil {
		pool.Close()
		_ = lockConn.Close(ctx)
		t.Fatalf("pgtest: truncate: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		// Closing the session releases the advisory lock.
		_ = lockConn.Close(context.Background())
	})

	return pool
}
