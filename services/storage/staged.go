package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"
)

// StagedFile is an uploaded file copied to a private temp path.
// Release removes it and may be called any number of times.
type StagedFile struct {
	path string
	name string
	mime string
	size int64
	once sync.Once
}

func (f *StagedFile) Path() string {
	if f == nil {
		return ""
	}
	return f.path
}

func (f *StagedFile) Name() string     { return f.name }
func (f *StagedFile) MIMEType() string { return f.mime }
func (f *StagedFile) Size() int64      { return f.size }

// Release deletes the temp file.
func (f *StagedFile) Release() {
	if f == nil {
		return
	}
	f.once.Do(func() {
		_ = os.Remove(f.path)
	})
}

// StageMultipart copies a multipart file to disk and checks it is an image.
func StageMultipart(fh *multipart.FileHeader, maxBytes int64) (*StagedFile, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()
	return StageReader(src, fh.Filename, maxBytes)
}

// StageReader is StageMultipart for an arbitrary reader.
func StageReader(r io.Reader, name string, maxBytes int64) (*StagedFile, error) {
	tmp, err := os.CreateTemp("", "upload-*"+filepath.Ext(name))
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	staged := &StagedFile{path: tmp.Name(), name: filepath.Base(name)}

	limit := maxBytes
	if limit <= 0 {
		limit = 1<<63 - 2
	}
	n, err := io.Copy(tmp, io.LimitReader(r, limit+1))
	closeErr := tmp.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		staged.Release()
		return nil, fmt.Errorf("failed to stage upload: %w", err)
	}
	if n > limit {
		staged.Release()
		return nil, ErrFileTooLarge
	}
	staged.size = n

	mtype, err := mimetype.DetectFile(staged.path)
	if err != nil {
		staged.Release()
		return nil, fmt.Errorf("failed to detect file type: %w", err)
	}
	if !strings.HasPrefix(mtype.String(), "image/") {
		staged.Release()
		return nil, fmt.Errorf("%w: %s", ErrNotImage, mtype.String())
	}
	staged.mime = mtype.String()
	return staged, nil
}

// Slot holds at most one staged file. Putting a new file releases the old one.
type Slot struct {
	mu   sync.Mutex
	file *StagedFile
}

func (s *Slot) Put(f *StagedFile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file != nil && s.file != f {
		s.file.Release()
	}
	s.file = f
}

func (s *Slot) File() *StagedFile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file
}

// Release frees the held file, if any.
func (s *Slot) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.file.Release()
	s.file = nil
}
