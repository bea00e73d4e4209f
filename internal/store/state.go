package store

import (
	"context"
	"database/sql"
	"errors"
)

// The engine keeps all persisted user state (preferences, saved job ids,
// digests by date) in one string-keyed table with JSON values. Typed
// stores sit on top and own the get-or-default behavior: a value that
// fails to parse reads as absent, never as an error.

func Migrate(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}
	if v >= 1 {
		return tx.Commit()
	}

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS state (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`PRAGMA user_version = 1;`); err != nil {
		return err
	}

	return tx.Commit()
}

func (d *DB) getRaw(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := d.Pool.QueryRowContext(ctx, `SELECT value FROM state WHERE key = ?;`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (d *DB) putRaw(ctx context.Context, key, value string) error {
	_, err := d.Pool.ExecContext(ctx, `
INSERT INTO state(key, value) VALUES(?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value;`, key, value)
	return err
}

func (d *DB) deleteRaw(ctx context.Context, key string) error {
	_, err := d.Pool.ExecContext(ctx, `DELETE FROM state WHERE key = ?;`, key)
	return err
}
