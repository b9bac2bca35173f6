package controller_test

import (
	"context"

	"github.com/iyhunko/treko-inventory/internal/model"
	"github.com/iyhunko/treko-inventory/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) ListProducts(ctx context.Context) ([]*model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Product), args.Error(1)
}

func (m *MockProductService) CreateProduct(ctx context.Context, name, description string, price float64) (*model.Product, error) {
	args := m.Called(ctx, name, description, price)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) UpdateProduct(ctx context.Context, id int64, name, description string, price float64) (*model.Product, error) {
	args := m.Called(ctx, id, name, description, price)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) DeleteProduct(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Login(ctx context.Context, code, name, password string) (*service.Session, error) {
	args := m.Called(ctx, code, name, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Session), args.Error(1)
}
