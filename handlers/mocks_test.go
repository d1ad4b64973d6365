package handlers

import (
	"context"

	"camerastore/models"
	"camerastore/services/booking"
	"camerastore/services/storage"
)

type mockProductService struct {
	ListProductsFunc  func(ctx context.Context) ([]models.CatalogItem, error)
	GetProductFunc    func(ctx context.Context, id string) (*models.CatalogItem, error)
	CreateProductFunc func(ctx context.Context, input models.ProductInput, image *storage.StagedFile) (*models.Product, error)
	UpdateProductFunc func(ctx context.Context, id string, input models.ProductInput, image *storage.StagedFile) (*models.Product, error)
	DeleteProductFunc func(ctx context.Context, id string) error
}

func (m *mockProductService) ListProducts(ctx context.Context) ([]models.CatalogItem, error) {
	return m.ListProductsFunc(ctx)
}

func (m *mockProductService) GetProduct(ctx context.Context, id string) (*models.CatalogItem, error) {
	return m.GetProductFunc(ctx, id)
}

func (m *mockProductService) Quote(price float64, discount *float64) models.PriceQuote {
	return models.PriceQuote{Price: price, EffectivePrice: price}
}

func (m *mockProductService) CreateProduct(ctx context.Context, input models.ProductInput, image *storage.StagedFile) (*models.Product, error) {
	return m.CreateProductFunc(ctx, input, image)
}

func (m *mockProductService) UpdateProduct(ctx context.Context, id string, input models.ProductInput, image *storage.StagedFile) (*models.Product, error) {
	return m.UpdateProductFunc(ctx, id, input, image)
}

func (m *mockProductService) DeleteProduct(ctx context.Context, id string) error {
	return m.DeleteProductFunc(ctx, id)
}

type mockBookingService struct {
	FormFunc      func(ctx context.Context, cameraID string) (*booking.FormView, error)
	SubmitFunc    func(ctx context.Context, form models.BookingForm) (*booking.SubmitResult, error)
	ListFunc      func(ctx context.Context, filter booking.ListFilter) ([]models.Booking, error)
	SetStatusFunc func(ctx context.Context, id string, status models.BookingStatus) error
	DeleteFunc    func(ctx context.Context, id string) error
}

func (m *mockBookingService) Form(ctx context.Context, cameraID string) (*booking.FormView, error) {
	return m.FormFunc(ctx, cameraID)
}

func (m *mockBookingService) Submit(ctx context.Context, form models.BookingForm) (*booking.SubmitResult, error) {
	return m.SubmitFunc(ctx, form)
}

func (m *mockBookingService) List(ctx context.Context, filter booking.ListFilter) ([]models.Booking, error) {
	return m.ListFunc(ctx, filter)
}

func (m *mockBookingService) SetStatus(ctx context.Context, id string, status models.BookingStatus) error {
	return m.SetStatusFunc(ctx, id, status)
}

func (m *mockBookingService) Delete(ctx context.Context, id string) error {
	return m.DeleteFunc(ctx, id)
}

type mockUserService struct {
	LoginFunc      func(ctx context.Context, email, password string) (*models.LoginResponse, error)
	LogoutFunc     func(ctx context.Context, token string) error
	GetUserFunc    func(ctx context.Context, id string) (*models.User, error)
	ListUsersFunc  func(ctx context.Context) ([]models.User, error)
	CreateUserFunc func(ctx context.Context, input models.UserInput) (*models.User, error)
	DeleteUserFunc func(ctx context.Context, current *models.Session, id string) error
}

func (m *mockUserService) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	return m.LoginFunc(ctx, email, password)
}

func (m *mockUserService) Logout(ctx context.Context, token string) error {
	return m.LogoutFunc(ctx, token)
}

func (m *mockUserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return m.GetUserFunc(ctx, id)
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.ListUsersFunc(ctx)
}

func (m *mockUserService) CreateUser(ctx context.Context, input models.UserInput) (*models.User, error) {
	return m.CreateUserFunc(ctx, input)
}

func (m *mockUserService) CreateAdmin(ctx context.Context, input models.UserInput) (*models.User, error) {
	return m.CreateUserFunc(ctx, input)
}

func (m *mockUserService) DeleteUser(ctx context.Context, current *models.Session, id string) error {
	return m.DeleteUserFunc(ctx, current, id)
}

type mockAdminService struct {
	DashboardFunc func(ctx context.Context) *models.Dashboard
}

func (m *mockAdminService) Dashboard(ctx context.Context) *models.Dashboard {
	return m.DashboardFunc(ctx)
}
