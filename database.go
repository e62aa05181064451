package main

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
)

var db *sql.DB

// normalizeDatabaseURL rewrites postgresql:// to postgres:// and adds
// sslmode=disable when no sslmode is given.
func normalizeDatabaseURL(databaseURL string) string {
	if strings.HasPrefix(databaseURL, "postgresql://") {
		databaseURL = "postgres://" + strings.TrimPrefix(databaseURL, "postgresql://")
	}
	if !strings.Contains(databaseURL, "sslmode=") {
		separator := "?"
		if strings.Contains(databaseURL, "?") {
			separator = "&"
		}
		databaseURL = databaseURL + separator + "sslmode=disable"
	}
	return databaseURL
}

func openDatabase(databaseURL string) (*sql.DB, error) {
	config, err := pgx.ParseConfig(normalizeDatabaseURL(databaseURL))
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}
	return stdlib.OpenDB(*config), nil
}

// initDB opens the parse history database, waiting for it to accept
// connections.
func initDB(databaseURL string) error {
	maxRetries := 10
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		conn, err := openDatabase(databaseURL)
		if err != nil {
			return err
		}
		if err := conn.Ping(); err != nil {
			conn.Close()
			if i < maxRetries-1 {
				log.Warn().Err(err).Msgf("Database not ready, retrying in %v... (attempt %d/%d)", retryDelay, i+1, maxRetries)
				time.Sleep(retryDelay)
				continue
			}
			return fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
		}
		db = conn
		break
	}

	log.Info().Msg("Database connection established")
	return nil
}

func insertParseRun(ctx context.Context, run ParseRun) error {
	_, err := db.ExecContext(ctx, insertParseRunSQL,
		run.ID, run.FileName, run.DocumentSHA256, run.TransactionCount,
		run.GrandTotal, run.Granularity, run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert parse run: %w", err)
	}
	return nil
}

func listParseRuns(ctx context.Context, limit int) ([]ParseRun, error) {
	rows, err := db.QueryContext(ctx, listParseRunsSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("query parse runs: %w", err)
	}
	defer rows.Close()

	// ensure empty array ([]) instead of null when no rows
	runs := make([]ParseRun, 0)

	for rows.Next() {
		var r ParseRun
		err := rows.Scan(
			&r.ID, &r.FileName, &r.DocumentSHA256, &r.TransactionCount,
			&r.GrandTotal, &r.Granularity, &r.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan parse run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
