package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage() *CloudinaryStorage {
	return &CloudinaryStorage{
		cloudName: "demo",
		apiKey:    "key",
		apiSecret: "secret",
		folder:    "camerastore/products",
		now:       func() time.Time { return time.Unix(1700000000, 0) },
	}
}

func TestSignUploadDefaultsFolder(t *testing.T) {
	s := newTestStorage()

	ticket, err := s.SignUpload("")
	require.NoError(t, err)

	assert.Equal(t, "camerastore/products", ticket.Folder)
	assert.Equal(t, int64(1700000000), ticket.Timestamp)
	assert.Equal(t, int64(1700000000)+int64(TicketTTL/time.Second), ticket.ExpiresAt)
	assert.Equal(t, "https://api.cloudinary.com/v1_1/demo/image/upload", ticket.UploadURL)
	assert.Equal(t, "key", ticket.APIKey)
	assert.NotEmpty(t, ticket.Signature)
}

func TestSignUploadDependsOnFolder(t *testing.T) {
	s := newTestStorage()

	a, err := s.SignUpload("camerastore/products")
	require.NoError(t, err)
	b, err := s.SignUpload("camerastore/products/lenses")
	require.NoError(t, err)

	assert.NotEqual(t, a.Signature, b.Signature)
}

func TestSignUploadRejectsForeignFolder(t *testing.T) {
	s := newTestStorage()

	_, err := s.SignUpload("other/place")
	assert.Error(t, err)
	_, err = s.SignUpload("camerastore/productsX")
	assert.Error(t, err)
}

func TestUploadImageWithoutFile(t *testing.T) {
	s := newTestStorage()

	_, err := s.UploadImage(context.Background(), nil)
	assert.ErrorIs(t, err, ErrUploadFailed)
}

func TestDeliveryBaseURL(t *testing.T) {
	assert.Equal(t, "https://res.cloudinary.com/demo/", DeliveryBaseURL("demo"))
	assert.Empty(t, DeliveryBaseURL(""))
}
