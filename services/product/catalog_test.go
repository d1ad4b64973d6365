package product

import (
	"context"
	"errors"
	"testing"
	"time"

	"camerastore/database"
	"camerastore/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProductsNewestFirst(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := &mockProductRepo{getAllFn: func(ctx context.Context) ([]models.Product, error) {
		return []models.Product{
			{ID: "old", CreatedAt: base},
			{ID: "undated-1"},
			{ID: "new", CreatedAt: base.Add(48 * time.Hour), Price: 100, Discount: ptr(10)},
			{ID: "undated-2"},
			{ID: "mid", CreatedAt: base.Add(24 * time.Hour)},
		}, nil
	}}
	svc := NewProductService(repo, nil, nil, NewPricing(3.7, "ILS"))

	items, err := svc.ListProducts(context.Background())
	require.NoError(t, err)

	var ids []string
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []string{"new", "mid", "old", "undated-1", "undated-2"}, ids)
	require.NotNil(t, items[0].Quote.DiscountedPrice)
	assert.Equal(t, 90.0, *items[0].Quote.DiscountedPrice)
}

func TestListProductsEmptyIsNotAnError(t *testing.T) {
	repo := &mockProductRepo{getAllFn: func(ctx context.Context) ([]models.Product, error) {
		return []models.Product{}, nil
	}}
	svc := NewProductService(repo, nil, nil, NewPricing(3.7, "ILS"))

	items, err := svc.ListProducts(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestListProductsStoreFailure(t *testing.T) {
	repo := &mockProductRepo{getAllFn: func(ctx context.Context) ([]models.Product, error) {
		return nil, errors.New("connection refused")
	}}
	svc := NewProductService(repo, nil, nil, NewPricing(3.7, "ILS"))

	_, err := svc.ListProducts(context.Background())
	assert.ErrorIs(t, err, ErrStoreFailure)
}

func TestGetProductNotFound(t *testing.T) {
	repo := &mockProductRepo{getByIDFn: func(ctx context.Context, id string) (*models.Product, error) {
		return nil, database.ErrNotFound
	}}
	svc := NewProductService(repo, nil, nil, NewPricing(3.7, "ILS"))

	_, err := svc.GetProduct(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrProductNotFound)
}
