package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iyhunko/treko-inventory/internal/model"
	"github.com/iyhunko/treko-inventory/internal/repository"
)

// EmployeeRepository implements repository.EmployeeRepository on Postgres.
type EmployeeRepository struct {
	db *sql.DB
}

// NewEmployeeRepository creates a new EmployeeRepository instance.
func NewEmployeeRepository(db *sql.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Create inserts a new employee. A duplicate code yields *repository.UniqueConstraintError.
func (r *EmployeeRepository) Create(ctx context.Context, employee *model.Employee) (*model.Employee, error) {
	employee.InitMeta()

	query := `INSERT INTO employees (id, code, name, password_hash, created_at)
	          VALUES ($1, $2, $3, $4, $5)`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare insert statement: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, employee.ID, employee.Code, employee.Name, employee.PasswordHash, employee.CreatedAt)
	if err != nil {
		if uerr := uniqueViolation(err); uerr != nil {
			return nil, uerr
		}
		return nil, fmt.Errorf("failed to insert employee: %w", err)
	}

	return employee, nil
}

// FindByCode retrieves an employee by badge code.
func (r *EmployeeRepository) FindByCode(ctx context.Context, code string) (*model.Employee, error) {
	query := `SELECT id, code, name, password_hash, created_at FROM employees WHERE code = $1`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare select statement: %w", err)
	}
	defer stmt.Close()

	var result model.Employee
	err = stmt.QueryRowContext(ctx, code).Scan(&result.ID, &result.Code, &result.Name, &result.PasswordHash, &result.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("employee %q: %w", code, repository.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query employee: %w", err)
	}

	return &result, nil
}
