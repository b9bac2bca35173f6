package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/iyhunko/treko-inventory/internal/metrics"
	"github.com/iyhunko/treko-inventory/internal/model"
	"github.com/iyhunko/treko-inventory/internal/repository"
	reposql "github.com/iyhunko/treko-inventory/internal/repository/sql"
	"github.com/iyhunko/treko-inventory/internal/sqs"
)

var (
	// ErrInvalidProduct is returned when a product has a blank name or a non-positive price.
	ErrInvalidProduct = errors.New("nome e preço (maior que zero) são obrigatórios")
)

// ProductService manages catalog products. Every mutation writes an outbox
// event in the same transaction as the product row.
type ProductService struct {
	products repository.ProductRepository
	tx       repository.Transactor
}

func NewProductService(products repository.ProductRepository, tx repository.Transactor) *ProductService {
	return &ProductService{
		products: products,
		tx:       tx,
	}
}

func validateProduct(name string, price float64) error {
	if strings.TrimSpace(name) == "" || !(price > 0) {
		return ErrInvalidProduct
	}
	return nil
}

// ListProducts returns the whole catalog, newest first.
func (ps *ProductService) ListProducts(ctx context.Context) ([]*model.Product, error) {
	return ps.products.List(ctx)
}

func (ps *ProductService) CreateProduct(ctx context.Context, name, description string, price float64) (*model.Product, error) {
	if err := validateProduct(name, price); err != nil {
		return nil, err
	}

	product := &model.Product{
		Name:        strings.TrimSpace(name),
		Description: description,
		Price:       price,
	}

	var created *model.Product
	err := ps.tx.WithinTransaction(ctx, func(products repository.ProductRepository, events repository.EventRepository) error {
		var err error
		created, err = products.Create(ctx, product)
		if err != nil {
			return err
		}
		return recordEvent(ctx, events, model.EventProductCreated, sqs.ActionCreated, created)
	})
	if err != nil {
		return nil, err
	}

	metrics.ProductsCreated.Inc()
	slog.Info("product created", slog.Int64("product_id", created.ID))
	return created, nil
}

func (ps *ProductService) UpdateProduct(ctx context.Context, id int64, name, description string, price float64) (*model.Product, error) {
	if err := validateProduct(name, price); err != nil {
		return nil, err
	}

	product := &model.Product{
		ID:          id,
		Name:        strings.TrimSpace(name),
		Description: description,
		Price:       price,
	}

	var updated *model.Product
	err := ps.tx.WithinTransaction(ctx, func(products repository.ProductRepository, events repository.EventRepository) error {
		var err error
		updated, err = products.Update(ctx, product)
		if err != nil {
			return err
		}
		return recordEvent(ctx, events, model.EventProductUpdated, sqs.ActionUpdated, updated)
	})
	if err != nil {
		return nil, err
	}

	metrics.ProductsUpdated.Inc()
	slog.Info("product updated", slog.Int64("product_id", updated.ID))
	return updated, nil
}

func (ps *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	err := ps.tx.WithinTransaction(ctx, func(products repository.ProductRepository, events repository.EventRepository) error {
		// Find the product first to get its details for the message
		product, err := products.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := products.DeleteByID(ctx, id); err != nil {
			return err
		}
		return recordEvent(ctx, events, model.EventProductDeleted, sqs.ActionDeleted, product)
	})
	if err != nil {
		return err
	}

	metrics.ProductsDeleted.Inc()
	slog.Info("product deleted", slog.Int64("product_id", id))
	return nil
}

func recordEvent(ctx context.Context, events repository.EventRepository, eventType, action string, product *model.Product) error {
	event, err := reposql.NewEvent(eventType, sqs.ProductMessage{
		Action:    action,
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
	})
	if err != nil {
		return err
	}
	if _, err := events.Create(ctx, event); err != nil {
		return fmt.Errorf("failed to record %s event: %w", eventType, err)
	}
	return nil
}
