package db

import (
	"context"
	"database/sql"
)

// EnsureSchema creates the submissions table if it does not exist
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, Schema)
	return err
}

// ExecStatement runs a literal SQL statement and returns the number of affected rows
func ExecStatement(ctx context.Context, db *sql.DB, statement string) (int64, error) {
	res, err := db.ExecContext(ctx, statement)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
