package sql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iyhunko/treko-inventory/internal/repository"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

const (
	pqUniqueViolationErrCode = "23505" // PostgreSQL unique violation error code. See https://www.postgresql.org/docs/14/errcodes-appendix.html
)

// dbExecutor is an interface that represents either *sql.DB or *sql.Tx.
type dbExecutor interface {
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// uniqueViolation converts a unique violation reported by either Postgres driver
// into a *repository.UniqueConstraintError. Other errors yield nil.
func uniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pqUniqueViolationErrCode {
		return &repository.UniqueConstraintError{Detail: pgErr.Detail}
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolationErrCode {
		return &repository.UniqueConstraintError{Detail: pqErr.Detail}
	}
	return nil
}
