package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// SavePage persists the extracted page text under token. created_at is set
// once here and never updated.
func (d *Database) SavePage(ctx context.Context, token string, html string) error {
	return d.insertPage(ctx, token, html, time.Now().UTC())
}

func (d *Database) insertPage(
	ctx context.Context,
	token string,
	html string,
	createdAt time.Time,
) error {
	query := "insert into pages (token, html, created_at) values (?, ?, ?)"

	if _, err := d.db.ExecContext(ctx, query, token, html, createdAt); err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// GetPage returns the stored text for token. Rows older than retention are
// treated as absent even before the sweeper removes them.
func (d *Database) GetPage(
	ctx context.Context,
	token string,
	retention time.Duration,
) (string, error) {
	cutoff := time.Now().UTC().Add(-retention)

	query := "select html from pages where token = ? and created_at > ?"

	var html string
	if err := d.db.QueryRowContext(ctx, query, token, cutoff).Scan(&html); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}

		return "", fmt.Errorf("failed to execute query: %w", err)
	}

	return html, nil
}

// DeleteExpired removes every row older than retention and reports how many
// were deleted. Calling it again without newly expired rows deletes nothing.
func (d *Database) DeleteExpired(
	ctx context.Context,
	retention time.Duration,
) (int64, error) {
	cutoff := time.Now().UTC().Add(-retention)

	query := "delete from pages where created_at <= ?"

	result, err := d.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to execute query: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count affected rows: %w", err)
	}

	return deleted, nil
}
