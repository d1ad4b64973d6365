package product

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/url"
	"strings"

	"camerastore/database"
	"camerastore/models"
	"camerastore/services/storage"
	"camerastore/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Upper bounds for numeric product fields.
var (
	maxPrice      = decimal.NewFromInt(1_000_000_000)
	maxMegapixels = decimal.NewFromInt(1000)
)

// parsedInput holds the numeric form of a validated ProductInput.
type parsedInput struct {
	price      float64
	megapixels float64
	rating     float64
	discount   *float64
	imageURL   string
}

// CreateProduct validates, uploads the image, then writes the new document.
// image may be nil when input.ImageURL points at an already hosted image.
func (s *DefaultProductService) CreateProduct(ctx context.Context, input models.ProductInput, image *storage.StagedFile) (*models.Product, error) {
	parsed, err := parseInput(input, image != nil, s.ImageBaseURL)
	if err != nil {
		return nil, err
	}
	if image == nil && parsed.imageURL == "" {
		return nil, utils.NewValidationError("image is required", "image")
	}

	upload, err := s.upload(ctx, image)
	if err != nil {
		return nil, err
	}
	if upload != nil {
		parsed.imageURL = upload.URL
	}

	p := buildProduct(input, parsed)
	p.CreatedAt = s.now().UTC()

	if err := s.Repo.Create(ctx, &p); err != nil {
		s.orphaned(ctx, upload)
		utils.GetLogger().Error("failed to create product", zap.String("name", p.Name), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	return &p, nil
}

// UpdateProduct overwrites the whole document, keeping its creation time.
// Without a new file the current image is kept.
func (s *DefaultProductService) UpdateProduct(ctx context.Context, id string, input models.ProductInput, image *storage.StagedFile) (*models.Product, error) {
	parsed, err := parseInput(input, image != nil, s.ImageBaseURL)
	if err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}

	upload, err := s.upload(ctx, image)
	if err != nil {
		return nil, err
	}
	switch {
	case upload != nil:
		parsed.imageURL = upload.URL
	case parsed.imageURL == "":
		parsed.imageURL = existing.ImageURL
	}

	p := buildProduct(input, parsed)
	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt
	now := s.now().UTC()
	p.UpdatedAt = &now

	if err := s.Repo.Replace(ctx, &p); err != nil {
		s.orphaned(ctx, upload)
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		utils.GetLogger().Error("failed to update product", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	return &p, nil
}

// DeleteProduct removes the document. Its image stays hosted because
// booking snapshots may still point at it.
func (s *DefaultProductService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	return nil
}

func (s *DefaultProductService) upload(ctx context.Context, image *storage.StagedFile) (*storage.Upload, error) {
	if image == nil {
		return nil, nil
	}
	upload, err := s.Uploader.UploadImage(ctx, image)
	if err != nil {
		utils.GetLogger().Error("image upload failed", zap.String("file", image.Name()), zap.Error(err))
		if errors.Is(err, storage.ErrUploadFailed) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", storage.ErrUploadFailed, err)
	}
	return upload, nil
}

func (s *DefaultProductService) orphaned(ctx context.Context, upload *storage.Upload) {
	if upload == nil || s.Cleanup == nil {
		return
	}
	if err := s.Cleanup.ScheduleImageDeletion(context.WithoutCancel(ctx), upload.PublicID); err != nil {
		utils.GetLogger().Warn("failed to schedule orphaned image cleanup",
			zap.String("publicId", upload.PublicID), zap.Error(err))
	}
}

func buildProduct(input models.ProductInput, parsed parsedInput) models.Product {
	typeHebrew := strings.TrimSpace(input.TypeHebrew)
	if typeHebrew == "" {
		typeHebrew = strings.TrimSpace(input.Type)
	}
	return models.Product{
		Name:        strings.TrimSpace(input.Name),
		Type:        strings.TrimSpace(input.Type),
		TypeHebrew:  typeHebrew,
		Price:       parsed.price,
		Megapixels:  parsed.megapixels,
		Rating:      parsed.rating,
		Features:    CleanFeatures(input.Features),
		Description: strings.TrimSpace(input.Description),
		ImageURL:    parsed.imageURL,
		Discount:    parsed.discount,
	}
}

// CleanFeatures drops blank lines and keeps at most models.MaxFeatures.
func CleanFeatures(features []string) []string {
	out := make([]string, 0, models.MaxFeatures)
	for _, f := range features {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		out = append(out, f)
		if len(out) == models.MaxFeatures {
			break
		}
	}
	return out
}

// parseInput checks every field before any network call and reports all
// failing fields at once.
// A hosted imageUrl is only accepted under imageBase.
func parseInput(input models.ProductInput, hasFile bool, imageBase string) (parsedInput, error) {
	var (
		parsed  parsedInput
		missing []string
		invalid []string
	)

	required := []struct{ field, value string }{
		{"name", input.Name},
		{"price", input.Price},
		{"type", input.Type},
		{"description", input.Description},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.field)
		}
	}

	if v := strings.TrimSpace(input.Price); v != "" {
		d, err := decimal.NewFromString(v)
		if f, ok := boundedFloat(d, err, maxPrice); ok {
			parsed.price = f
		} else {
			invalid = append(invalid, "price")
		}
	}

	if v := strings.TrimSpace(input.Megapixels); v != "" {
		d, err := decimal.NewFromString(v)
		if f, ok := boundedFloat(d, err, maxMegapixels); ok {
			parsed.megapixels = f
		} else {
			invalid = append(invalid, "megapixels")
		}
	}

	parsed.rating = 5.0
	if v := strings.TrimSpace(input.Rating); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil || d.LessThan(decimal.NewFromInt(1)) || d.GreaterThan(decimal.NewFromInt(5)) {
			invalid = append(invalid, "rating")
		} else {
			parsed.rating = d.InexactFloat64()
		}
	}

	if v := strings.TrimSpace(input.Discount); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil || d.IsNegative() || d.GreaterThan(hundred) {
			invalid = append(invalid, "discount")
		} else {
			f := d.InexactFloat64()
			parsed.discount = &f
		}
	}

	if v := strings.TrimSpace(input.ImageURL); v != "" && !hasFile {
		u, err := url.Parse(v)
		if err != nil || u.Scheme != "https" || u.Host == "" || imageBase == "" || !strings.HasPrefix(v, imageBase) {
			invalid = append(invalid, "imageUrl")
		} else {
			parsed.imageURL = v
		}
	}

	if len(missing) > 0 {
		return parsed, utils.NewValidationError("required fields are missing", append(missing, invalid...)...)
	}
	if len(invalid) > 0 {
		return parsed, utils.NewValidationError("invalid numeric or url fields", invalid...)
	}
	return parsed, nil
}

// boundedFloat converts a parsed decimal in [0, max] to a finite float64.
func boundedFloat(d decimal.Decimal, parseErr error, max decimal.Decimal) (float64, bool) {
	if parseErr != nil || d.IsNegative() || d.GreaterThan(max) {
		return 0, false
	}
	f := d.InexactFloat64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}
