package panel_test

import (
	"context"

	"github.com/iyhunko/treko-inventory/internal/store"
	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Login(ctx context.Context, creds store.Credentials) (*store.LoginResult, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.LoginResult), args.Error(1)
}

func (m *MockStore) ListProducts(ctx context.Context) ([]store.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.Product), args.Error(1)
}

func (m *MockStore) CreateProduct(ctx context.Context, in store.ProductInput) (store.Product, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(store.Product), args.Error(1)
}

func (m *MockStore) UpdateProduct(ctx context.Context, id int64, in store.ProductInput) (store.Product, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(store.Product), args.Error(1)
}

func (m *MockStore) DeleteProduct(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type recordingSink struct {
	tokens []string
}

func (r *recordingSink) SetToken(token string) {
	r.tokens = append(r.tokens, token)
}
