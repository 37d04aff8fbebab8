package utils

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

const MaxUploadSize = 50 * 1024 * 1024

// SupportedFormats is used verbatim in rejection messages.
const SupportedFormats = "JPEG, PNG, GIF, WEBP, SVG, TIFF, BMP, ICO, MP4, WEBM, OGG, MOV, AVI, WMV, FLV, MKV"

var allowedExtensions = map[string]bool{
	".jpeg": true, ".jpg": true, ".png": true, ".gif": true,
	".webp": true, ".svg": true, ".tiff": true, ".tif": true,
	".bmp": true, ".ico": true,
	".mp4": true, ".webm": true, ".ogg": true, ".mov": true,
	".avi": true, ".wmv": true, ".flv": true, ".mkv": true,
}

var allowedMimeTypes = map[string]bool{
	"image/jpeg":               true,
	"image/png":                true,
	"image/gif":                true,
	"image/webp":               true,
	"image/svg+xml":            true,
	"image/tiff":               true,
	"image/bmp":                true,
	"image/x-icon":             true,
	"image/vnd.microsoft.icon": true,
	"video/mp4":                true,
	"video/webm":               true,
	"video/ogg":                true,
	"application/ogg":          true,
	"video/quicktime":          true,
	"video/x-msvideo":          true,
	"video/x-ms-wmv":           true,
	"video/x-flv":              true,
	"video/x-matroska":         true,
}

var (
	ErrNoFile              = errors.New("no file uploaded")
	ErrFileTooLarge        = fmt.Errorf("file size exceeds the %d MB limit", MaxUploadSize/(1024*1024))
	ErrUnsupportedFileType = fmt.Errorf("unsupported file format, supported formats: %s", SupportedFormats)
)

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	ValidateMediaFile(file *multipart.FileHeader) error
	GenerateUploadFilename(originalName string) string
}

type utils struct {
	maxFileSize int64
}

func New() IUtils {
	return &utils{
		maxFileSize: MaxUploadSize,
	}
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

// ValidateMediaFile checks the upload against the fixed allow-list. Both the
// file extension and the declared Content-Type must pass.
func (u *utils) ValidateMediaFile(file *multipart.FileHeader) error {
	if file == nil {
		return ErrNoFile
	}

	if file.Size > u.maxFileSize {
		return ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return ErrUnsupportedFileType
	}

	contentType := file.Header.Get("Content-Type")
	if !allowedMimeTypes[strings.ToLower(contentType)] {
		return ErrUnsupportedFileType
	}

	return nil
}

// GenerateUploadFilename combines the current unix-millisecond timestamp with
// a random nine-digit suffix and the original extension. Collisions are
// negligible; the suffix is not a security measure.
func (u *utils) GenerateUploadFilename(originalName string) string {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000_000))
	suffix := int64(0)
	if err == nil {
		suffix = n.Int64()
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), suffix, ext)
}
