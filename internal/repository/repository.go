package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/iyhunko/treko-inventory/internal/model"
)

var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("resource not found")
)

// ProductRepository manages catalog products.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	List(ctx context.Context) ([]*model.Product, error)
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	Update(ctx context.Context, product *model.Product) (*model.Product, error)
	DeleteByID(ctx context.Context, id int64) error
}

// EmployeeRepository manages the employees allowed to log in.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *model.Employee) (*model.Employee, error)
	FindByCode(ctx context.Context, code string) (*model.Employee, error)
}

// EventRepository manages outbox events.
type EventRepository interface {
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	ListPending(ctx context.Context, limit int) ([]*model.Event, error)
	UpdateStatus(ctx context.Context, eventID uuid.UUID, status model.EventStatus) error
}

// Transactor runs fn with product and event repositories bound to one transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(products ProductRepository, events EventRepository) error) error
}

// UniqueConstraintError represents a database unique constraint violation error.
type UniqueConstraintError struct {
	Detail string
}

func (u *UniqueConstraintError) Error() string {
	return "resource must be unique: " + u.Detail
}
