package product

import (
	"context"

	"camerastore/models"
	"camerastore/services/storage"
)

type mockProductRepo struct {
	getAllFn  func(ctx context.Context) ([]models.Product, error)
	getByIDFn func(ctx context.Context, id string) (*models.Product, error)
	createFn  func(ctx context.Context, p *models.Product) error
	replaceFn func(ctx context.Context, p *models.Product) error
	deleteFn  func(ctx context.Context, id string) error

	creates  int
	replaces int
}

func (m *mockProductRepo) GetAll(ctx context.Context) ([]models.Product, error) {
	return m.getAllFn(ctx)
}
func (m *mockProductRepo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	return m.getByIDFn(ctx, id)
}
func (m *mockProductRepo) Create(ctx context.Context, p *models.Product) error {
	m.creates++
	if m.createFn != nil {
		return m.createFn(ctx, p)
	}
	p.ID = "generated-id"
	return nil
}
func (m *mockProductRepo) Replace(ctx context.Context, p *models.Product) error {
	m.replaces++
	if m.replaceFn != nil {
		return m.replaceFn(ctx, p)
	}
	return nil
}
func (m *mockProductRepo) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

type mockUploader struct {
	uploadFn func(ctx context.Context, f *storage.StagedFile) (*storage.Upload, error)
	calls    int
}

func (m *mockUploader) UploadImage(ctx context.Context, f *storage.StagedFile) (*storage.Upload, error) {
	m.calls++
	if m.uploadFn != nil {
		return m.uploadFn(ctx, f)
	}
	return &storage.Upload{URL: "https://res.cloudinary.com/demo/image/upload/p1.png", PublicID: "p1"}, nil
}

type mockCleanup struct {
	scheduled []string
}

func (m *mockCleanup) ScheduleImageDeletion(ctx context.Context, publicID string) error {
	m.scheduled = append(m.scheduled, publicID)
	return nil
}
