package utils

import (
	"errors"
	"mime/multipart"
	"net/textproto"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"
)

func fileHeader(name, contentType string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: name,
		Size:     size,
		Header: textproto.MIMEHeader{
			"Content-Type": []string{contentType},
		},
	}
}

func TestValidateMediaFile(t *testing.T) {
	u := New()

	tests := []struct {
		name    string
		file    *multipart.FileHeader
		wantErr error
	}{
		{"nil file", nil, ErrNoFile},
		{"valid jpeg", fileHeader("photo.jpg", "image/jpeg", 1024), nil},
		{"valid png uppercase ext", fileHeader("PHOTO.PNG", "image/png", 1024), nil},
		{"valid mp4", fileHeader("clip.mp4", "video/mp4", 2048), nil},
		{"valid svg", fileHeader("diagram.svg", "image/svg+xml", 512), nil},
		{"valid quicktime", fileHeader("pan.mov", "video/quicktime", 4096), nil},
		{"too large", fileHeader("huge.jpg", "image/jpeg", MaxUploadSize+1), ErrFileTooLarge},
		{"at size limit", fileHeader("big.jpg", "image/jpeg", MaxUploadSize), nil},
		{"executable extension", fileHeader("malware.exe", "image/jpeg", 100), ErrUnsupportedFileType},
		{"no extension", fileHeader("README", "image/jpeg", 100), ErrUnsupportedFileType},
		{"mime mismatch", fileHeader("photo.jpg", "application/pdf", 100), ErrUnsupportedFileType},
		{"empty mime", fileHeader("photo.jpg", "", 100), ErrUnsupportedFileType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := u.ValidateMediaFile(tt.file)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateMediaFile() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGenerateUploadFilename(t *testing.T) {
	u := New()
	pattern := regexp.MustCompile(`^\d{13,}-\d+\.jpg$`)

	before := time.Now().UnixMilli()
	name := u.GenerateUploadFilename("Engine Bay Photo.JPG")
	after := time.Now().UnixMilli()

	if !pattern.MatchString(name) {
		t.Fatalf("unexpected filename shape: %q", name)
	}

	tsPart := name[:strings.Index(name, "-")]
	ts, err := strconv.ParseInt(tsPart, 10, 64)
	if err != nil {
		t.Fatalf("timestamp part not numeric: %q", tsPart)
	}
	if ts < before || ts > after {
		t.Errorf("timestamp %d outside [%d, %d]", ts, before, after)
	}

	if !strings.HasSuffix(name, ".jpg") {
		t.Errorf("extension not lowercased: %q", name)
	}
}

func TestGenerateUploadFilenameDistinct(t *testing.T) {
	u := New()
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		name := u.GenerateUploadFilename("a.png")
		if seen[name] {
			t.Fatalf("duplicate generated filename %q", name)
		}
		seen[name] = true
	}
}

func TestNewULIDFromTimestamp(t *testing.T) {
	u := New()

	id, err := u.NewULIDFromTimestamp(time.Now())
	if err != nil {
		t.Fatalf("NewULIDFromTimestamp() error = %v", err)
	}
	if len(id) != 26 {
		t.Errorf("ULID length = %d, want 26", len(id))
	}

	other, err := u.NewULIDFromTimestamp(time.Now())
	if err != nil {
		t.Fatalf("NewULIDFromTimestamp() error = %v", err)
	}
	if id == other {
		t.Errorf("two generated IDs are identical: %s", id)
	}
}
