package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/alexanderramin/engage/internal/db"
)

// FailOnExecUoW is a UnitOfWork whose transaction fails the first
// ExecContext call whose query contains Match. Reads pass through, so
// rollback paths of multi-write operations can be exercised precisely.
type FailOnExecUoW struct {
	DB    *sql.DB
	Match string
	Err   error
}

func (u *FailOnExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	wrapped := &failOnExec{DBTX: tx, match: u.Match, err: u.Err}
	if fnErr := fn(ctx, wrapped); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

type failOnExec struct {
	db.DBTX
	match string
	err   error
}

func (f *failOnExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.match != "" && strings.Contains(query, f.match) {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
