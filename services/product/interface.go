package product

import (
	"context"
	"time"

	productRepo "camerastore/database/repository/product"
	"camerastore/models"
	"camerastore/services/storage"
)

// ImageUploader is the subset of storage.StorageService product writes need.
type ImageUploader interface {
	UploadImage(ctx context.Context, file *storage.StagedFile) (*storage.Upload, error)
}

// CleanupScheduler queues deletion of uploads that never made it into a document.
type CleanupScheduler interface {
	ScheduleImageDeletion(ctx context.Context, publicID string) error
}

type ProductService interface {
	// Catalog
	ListProducts(ctx context.Context) ([]models.CatalogItem, error)
	GetProduct(ctx context.Context, id string) (*models.CatalogItem, error)
	Quote(price float64, discount *float64) models.PriceQuote

	// Admin writes
	CreateProduct(ctx context.Context, input models.ProductInput, image *storage.StagedFile) (*models.Product, error)
	UpdateProduct(ctx context.Context, id string, input models.ProductInput, image *storage.StagedFile) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// DefaultProductService is the production implementation.
type DefaultProductService struct {
	Repo         productRepo.ProductRepository
	Uploader     ImageUploader
	Cleanup      CleanupScheduler
	Pricing      Pricing
	// ImageBaseURL is the delivery prefix a direct-upload imageUrl must carry.
	// Empty disables direct-upload URLs.
	ImageBaseURL string
	now          func() time.Time
}

func NewProductService(repo productRepo.ProductRepository, uploader ImageUploader, cleanup CleanupScheduler, pricing Pricing) *DefaultProductService {
	return &DefaultProductService{
		Repo:     repo,
		Uploader: uploader,
		Cleanup:  cleanup,
		Pricing:  pricing,
		now:      time.Now,
	}
}
