package storage

import (
	"context"
	"errors"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
)

var (
	// ErrNotImage is returned when a staged file does not sniff as image/*.
	ErrNotImage = errors.New("file is not an image")
	// ErrFileTooLarge is returned when a staged file exceeds the configured limit.
	ErrFileTooLarge = errors.New("file exceeds upload limit")
	// ErrUploadFailed wraps every non-success answer from the image host.
	ErrUploadFailed = errors.New("image upload failed")
)

// StorageService is the image host as seen by product writes and the cleanup worker.
type StorageService interface {
	UploadImage(ctx context.Context, file *StagedFile) (*Upload, error)
	DeleteImage(ctx context.Context, publicID string) error
	SignUpload(folder string) (*UploadTicket, error)
}

// Upload is the result of a successful one-shot upload.
type Upload struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// UploadTicket lets an admin browser upload directly with a server-side signature.
type UploadTicket struct {
	UploadURL string `json:"uploadUrl"`
	CloudName string `json:"cloudName"`
	APIKey    string `json:"apiKey"`
	Folder    string `json:"folder"`
	Timestamp int64  `json:"timestamp"`
	Signature string `json:"signature"`
	ExpiresAt int64  `json:"expiresAt"`
}

// TicketTTL bounds how long a signed ticket is honored by the host.
const TicketTTL = time.Hour

// CloudinaryStorage implements StorageService on top of the Cloudinary SDK.
type CloudinaryStorage struct {
	cld          *cloudinary.Cloudinary
	cloudName    string
	apiKey       string
	apiSecret    string
	uploadPreset string
	folder       string
	now          func() time.Time
}

// DeliveryBaseURL is the https prefix of every image hosted under cloudName.
func DeliveryBaseURL(cloudName string) string {
	if cloudName == "" {
		return ""
	}
	return "https://res.cloudinary.com/" + cloudName + "/"
}
