package sql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/iyhunko/treko-inventory/internal/repository"
)

// TransactionalRepository runs product and outbox writes in a single transaction.
type TransactionalRepository struct {
	db *sql.DB
}

// NewTransactionalRepository creates a new TransactionalRepository
func NewTransactionalRepository(db *sql.DB) *TransactionalRepository {
	return &TransactionalRepository{db: db}
}

// WithinTransaction executes fn with repositories bound to one transaction.
func (tr *TransactionalRepository) WithinTransaction(ctx context.Context, fn func(products repository.ProductRepository, events repository.EventRepository) error) error {
	tx, err := tr.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	productRepo := &ProductRepository{db: tr.db, txn: tx}
	eventRepo := &EventRepository{db: tr.db, txn: tx}

	if err := fn(productRepo, eventRepo); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("failed to rollback transaction: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

var (
	_ repository.ProductRepository  = (*ProductRepository)(nil)
	_ repository.EmployeeRepository = (*EmployeeRepository)(nil)
	_ repository.EventRepository    = (*EventRepository)(nil)
	_ repository.Transactor         = (*TransactionalRepository)(nil)
)
