// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddNamedMigrationContext("00002_username_index.go", upUsernameIndex, downUsernameIndex)
}

// upUsernameIndex adds the unique username index unless the file already
// holds duplicate usernames, which older versions of the app allowed. Such a
// file opens without the index; the account repository still refuses new
// duplicates.
func upUsernameIndex(ctx context.Context, tx *sql.Tx) error {
	var duplicates int
	err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM (SELECT username FROM users GROUP BY username HAVING COUNT(*) > 1)`,
	).Scan(&duplicates)
	if err != nil {
		return fmt.Errorf("error counting duplicate usernames: %w", err)
	}
	if duplicates > 0 {
		return nil
	}

	if _, err = tx.ExecContext(ctx, `CREATE UNIQUE INDEX IF NOT EXISTS users_username_uindex ON users (username)`); err != nil {
		return fmt.Errorf("error creating username index: %w", err)
	}
	return nil
}

func downUsernameIndex(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP INDEX IF EXISTS users_username_uindex`)
	return err
}
