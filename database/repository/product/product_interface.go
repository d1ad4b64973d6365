package productRepo

import (
	"context"

	"camerastore/models"
)

// ProductRepository defines methods for product data access.
type ProductRepository interface {
	// GetAll retrieves every product in store order.
	GetAll(ctx context.Context) ([]models.Product, error)
	// GetByID retrieves a product by its ID.
	GetByID(ctx context.Context, id string) (*models.Product, error)
	// Create inserts a new product document.
	Create(ctx context.Context, product *models.Product) error
	// Replace overwrites the whole document with the given ID.
	Replace(ctx context.Context, product *models.Product) error
	// Delete removes a product document by its ID.
	Delete(ctx context.Context, id string) error
}
