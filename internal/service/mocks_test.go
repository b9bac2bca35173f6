package service_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/iyhunko/treko-inventory/internal/model"
	"github.com/iyhunko/treko-inventory/internal/repository"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repository.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	args := m.Called(ctx, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context) ([]*model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Product), args.Error(1)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, product *model.Product) (*model.Product, error) {
	args := m.Called(ctx, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEventRepository is a mock implementation of repository.EventRepository
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	args := m.Called(ctx, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventRepository) ListPending(ctx context.Context, limit int) ([]*model.Event, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Event), args.Error(1)
}

func (m *MockEventRepository) UpdateStatus(ctx context.Context, eventID uuid.UUID, status model.EventStatus) error {
	args := m.Called(ctx, eventID, status)
	return args.Error(0)
}

// fakeTransactor runs the callback directly against the given mocks.
type fakeTransactor struct {
	products repository.ProductRepository
	events   repository.EventRepository
	calls    int
}

func (f *fakeTransactor) WithinTransaction(_ context.Context, fn func(repository.ProductRepository, repository.EventRepository) error) error {
	f.calls++
	return fn(f.products, f.events)
}

// MockEmployeeRepository is a mock implementation of repository.EmployeeRepository
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) Create(ctx context.Context, employee *model.Employee) (*model.Employee, error) {
	args := m.Called(ctx, employee)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindByCode(ctx context.Context, code string) (*model.Employee, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Employee), args.Error(1)
}

// MockPublisher is a mock implementation of service.EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishRaw(ctx context.Context, body string) error {
	args := m.Called(ctx, body)
	return args.Error(0)
}
