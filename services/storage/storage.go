package storage

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"camerastore/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// NewStorageService creates a Cloudinary-backed StorageService from AppConfig.
func NewStorageService(cld *cloudinary.Cloudinary) *CloudinaryStorage {
	return &CloudinaryStorage{
		cld:          cld,
		cloudName:    config.AppConfig.CloudinaryCloudName,
		apiKey:       config.AppConfig.CloudinaryAPIKey,
		apiSecret:    config.AppConfig.CloudinaryAPISecret,
		uploadPreset: config.AppConfig.CloudinaryUploadPreset,
		folder:       config.AppConfig.CloudinaryFolder,
		now:          time.Now,
	}
}

// UploadImage sends the staged file to the image host and returns its secure URL.
func (s *CloudinaryStorage) UploadImage(ctx context.Context, file *StagedFile) (*Upload, error) {
	if file == nil || file.Path() == "" {
		return nil, fmt.Errorf("%w: no staged file", ErrUploadFailed)
	}

	params := uploader.UploadParams{
		Folder:       s.folder,
		UploadPreset: s.uploadPreset,
	}
	result, err := s.cld.Upload.Upload(ctx, file.Path(), params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if result.Error.Message != "" {
		return nil, fmt.Errorf("%w: %s", ErrUploadFailed, result.Error.Message)
	}
	if result.SecureURL == "" {
		return nil, fmt.Errorf("%w: no secure url returned", ErrUploadFailed)
	}
	return &Upload{URL: result.SecureURL, PublicID: result.PublicID}, nil
}

// DeleteImage deletes an asset given its public ID.
func (s *CloudinaryStorage) DeleteImage(ctx context.Context, publicID string) error {
	res, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("failed to delete image %s: %w", publicID, err)
	}
	if res.Error.Message != "" {
		return fmt.Errorf("failed to delete image %s: %s", publicID, res.Error.Message)
	}
	return nil
}

// SignUpload signs folder and timestamp with the API secret. An empty folder
// means the configured product folder; other folders must live beneath it.
func (s *CloudinaryStorage) SignUpload(folder string) (*UploadTicket, error) {
	if folder == "" {
		folder = s.folder
	}
	if s.folder != "" && folder != s.folder && !strings.HasPrefix(folder, s.folder+"/") {
		return nil, fmt.Errorf("folder %q is outside %q", folder, s.folder)
	}

	now := s.now()
	params := url.Values{}
	params.Set("folder", folder)
	params.Set("timestamp", strconv.FormatInt(now.Unix(), 10))

	signature, err := api.SignParameters(params, s.apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign upload: %w", err)
	}

	return &UploadTicket{
		UploadURL: fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", s.cloudName),
		CloudName: s.cloudName,
		APIKey:    s.apiKey,
		Folder:    folder,
		Timestamp: now.Unix(),
		Signature: signature,
		ExpiresAt: now.Add(TicketTTL).Unix(),
	}, nil
}
