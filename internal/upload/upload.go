package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// ErrUnsupportedFileType is returned for uploads that are not PDF, JPEG or PNG.
var ErrUnsupportedFileType = errors.New("only PDF, JPG and PNG files are allowed")

var allowedTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
}

// StoredFile describes an upload persisted to local disk.
type StoredFile struct {
	Path         string
	OriginalName string
}

// Saver writes uploaded files under a fixed directory.
type Saver struct {
	dir string
}

// NewSaver creates the upload directory if needed and returns a Saver for it.
func NewSaver(dir string) (*Saver, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}

	return &Saver{dir: dir}, nil
}

// Save persists the uploaded file under a unique name and returns where it
// landed. The field name prefixes the stored name so resumes and proofs are
// distinguishable on disk.
func (s *Saver) Save(field string, header *multipart.FileHeader) (*StoredFile, error) {
	if !allowedTypes[header.Header.Get("Content-Type")] {
		return nil, ErrUnsupportedFileType
	}

	src, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	name := fmt.Sprintf("%s-%d-%s%s",
		field,
		time.Now().UnixMilli(),
		uuid.NewString()[:8],
		filepath.Ext(header.Filename),
	)
	path := filepath.Join(s.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return nil, err
	}

	return &StoredFile{Path: path, OriginalName: header.Filename}, nil
}
