package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

// ItfStorage stores uploaded media files on the local filesystem under a
// single uploads directory, served statically by the HTTP layer.
type ItfStorage interface {
	SaveFile(file *multipart.FileHeader, filename string) error
	DeleteFile(filename string) error
	FilePath(filename string) string
	Dir() string
}

type localStorage struct {
	dir string
}

func New() (ItfStorage, error) {
	dir := os.Getenv("UPLOADS_DIR")
	if dir == "" {
		dir = "uploads"
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}

	return &localStorage{dir: dir}, nil
}

func NewWithDir(dir string) (ItfStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &localStorage{dir: dir}, nil
}

func (s *localStorage) SaveFile(file *multipart.FileHeader, filename string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer func(src multipart.File) {
		if err := src.Close(); err != nil {
			fmt.Println("Failed to close uploaded file")
		}
	}(src)

	dst, err := os.Create(filepath.Join(s.dir, filepath.Base(filename)))
	if err != nil {
		return err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return err
	}

	return dst.Sync()
}

// DeleteFile removes the named file from the uploads directory. A file that
// is already gone is not an error; the caller still owns the database record.
func (s *localStorage) DeleteFile(filename string) error {
	path := filepath.Join(s.dir, filepath.Base(filename))
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return nil
}

func (s *localStorage) FilePath(filename string) string {
	return filepath.Join(s.dir, filepath.Base(filename))
}

func (s *localStorage) Dir() string {
	return s.dir
}
