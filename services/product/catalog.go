package product

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"camerastore/database"
	"camerastore/models"
)

// ListProducts returns the whole catalog, newest first. Products without
// a creation time keep their store order after the dated ones.
func (s *DefaultProductService) ListProducts(ctx context.Context) ([]models.CatalogItem, error) {
	products, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	SortNewestFirst(products)

	items := make([]models.CatalogItem, 0, len(products))
	for _, p := range products {
		items = append(items, s.item(p))
	}
	return items, nil
}

func (s *DefaultProductService) GetProduct(ctx context.Context, id string) (*models.CatalogItem, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	item := s.item(*p)
	return &item, nil
}

func (s *DefaultProductService) item(p models.Product) models.CatalogItem {
	return models.CatalogItem{Product: p, Quote: s.Pricing.Quote(p.Price, p.Discount)}
}

// SortNewestFirst orders products by createdAt descending, stable.
func SortNewestFirst(products []models.Product) {
	sort.SliceStable(products, func(i, j int) bool {
		a, b := products[i].CreatedAt, products[j].CreatedAt
		if a.IsZero() || b.IsZero() {
			return !a.IsZero() && b.IsZero()
		}
		return a.After(b)
	})
}
