package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SscSPs/truck_invoice_app/internal/apperrors"
	driver "github.com/go-sql-driver/mysql"
)

const (
	mysqlDuplicateEntry     = 1062
	mysqlNoReferencedRow    = 1452
	mysqlNoReferencedRowAlt = 1216
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	DB *sql.DB
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (*sql.Tx, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, apperrors.NewStoreError("failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(tx *sql.Tx) error {
	if err := tx.Commit(); err != nil {
		return apperrors.NewStoreError("failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(tx *sql.Tx) error {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return apperrors.NewStoreError("failed to rollback transaction", err)
	}
	return nil
}

// storeError maps driver errors onto the application error kinds.
func storeError(err error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)

	var myErr *driver.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlDuplicateEntry:
			return apperrors.NewDuplicateError("%s: already exists", msg)
		case mysqlNoReferencedRow, mysqlNoReferencedRowAlt:
			return apperrors.NewNotFoundError("%s: referenced record does not exist", msg)
		}
	}
	return apperrors.NewStoreError(msg, err)
}

func rowsAffected(res sql.Result, notFound func() error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return apperrors.NewStoreError("failed to read affected rows", err)
	}
	if n == 0 {
		return notFound()
	}
	return nil
}
