package storage

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smallest valid PNG header is enough for sniffing
var pngBytes = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 32)...)

func TestStageReaderAcceptsImage(t *testing.T) {
	f, err := StageReader(bytes.NewReader(pngBytes), "camera.png", 1024)
	require.NoError(t, err)
	defer f.Release()

	assert.Equal(t, "image/png", f.MIMEType())
	assert.Equal(t, "camera.png", f.Name())
	assert.EqualValues(t, len(pngBytes), f.Size())
	_, statErr := os.Stat(f.Path())
	assert.NoError(t, statErr)
}

func TestStageReaderRejectsNonImage(t *testing.T) {
	f, err := StageReader(bytes.NewReader([]byte("just some text, not a picture")), "notes.txt", 1024)
	assert.Nil(t, f)
	assert.True(t, errors.Is(err, ErrNotImage))
}

func TestStageReaderRejectsOversized(t *testing.T) {
	f, err := StageReader(bytes.NewReader(pngBytes), "big.png", 8)
	assert.Nil(t, f)
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestReleaseIsIdempotent(t *testing.T) {
	f, err := StageReader(bytes.NewReader(pngBytes), "camera.png", 0)
	require.NoError(t, err)

	f.Release()
	f.Release()

	_, statErr := os.Stat(f.Path())
	assert.True(t, os.IsNotExist(statErr))

	var nilFile *StagedFile
	assert.NotPanics(t, func() { nilFile.Release() })
}

func TestSlotReleasesReplacedFile(t *testing.T) {
	first, err := StageReader(bytes.NewReader(pngBytes), "a.png", 0)
	require.NoError(t, err)
	second, err := StageReader(bytes.NewReader(pngBytes), "b.png", 0)
	require.NoError(t, err)

	var slot Slot
	slot.Put(first)
	slot.Put(second)

	_, statErr := os.Stat(first.Path())
	assert.True(t, os.IsNotExist(statErr), "replaced file should be removed")
	assert.Same(t, second, slot.File())

	slot.Release()
	_, statErr = os.Stat(second.Path())
	assert.True(t, os.IsNotExist(statErr))
	assert.Nil(t, slot.File())
}
