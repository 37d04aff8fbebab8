package mediaService

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"

	"RecyclePress/database/sqlite"
	"RecyclePress/internal/api/media"
	mediaRepository "RecyclePress/internal/api/media/repository"
	"RecyclePress/pkg/storage"
	"RecyclePress/pkg/utils"
)

func newTestService(t *testing.T) (IMediaService, string) {
	t.Helper()
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "test.db"))

	db, err := sqlite.New()
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	uploadsDir := t.TempDir()
	store, err := storage.NewWithDir(uploadsDir)
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	svc := NewMediaService(logger, mediaRepository.New(db, logger), store, utils.New())
	return svc, uploadsDir
}

func makeFileHeader(t *testing.T, filename, contentType, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatalf("failed to create part: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("failed to write part: %v", err)
	}
	w.Close()

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("failed to read form: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })

	return form.File["file"][0]
}

func TestUploadMedia(t *testing.T) {
	svc, uploadsDir := newTestService(t)
	ctx := context.Background()

	header := makeFileHeader(t, "crusher photo.JPG", "image/jpeg", "jpeg bytes")
	resp, err := svc.UploadMedia(ctx, header)
	if err != nil {
		t.Fatalf("UploadMedia() error = %v", err)
	}

	if resp.ID == "" {
		t.Error("uploaded media has empty ID")
	}
	if resp.OriginalName != "crusher photo.JPG" {
		t.Errorf("original name = %q", resp.OriginalName)
	}
	if resp.MimeType != "image/jpeg" {
		t.Errorf("mime type = %q", resp.MimeType)
	}
	if resp.URL != "/uploads/"+resp.Filename {
		t.Errorf("URL = %q, filename = %q", resp.URL, resp.Filename)
	}

	data, err := os.ReadFile(filepath.Join(uploadsDir, resp.Filename))
	if err != nil {
		t.Fatalf("uploaded file not on disk: %v", err)
	}
	if string(data) != "jpeg bytes" {
		t.Errorf("file content = %q", data)
	}

	got, err := svc.GetMediaByID(ctx, resp.ID)
	if err != nil {
		t.Fatalf("GetMediaByID() error = %v", err)
	}
	if got.Filename != resp.Filename || got.Size != resp.Size {
		t.Errorf("stored record mismatch: %+v", got)
	}
}

func TestUploadMediaRejectsUnsupportedType(t *testing.T) {
	svc, _ := newTestService(t)

	header := makeFileHeader(t, "script.sh", "text/x-shellscript", "#!/bin/sh")
	_, err := svc.UploadMedia(context.Background(), header)
	if !errors.Is(err, media.ErrInvalidFileType) {
		t.Errorf("UploadMedia() error = %v, want ErrInvalidFileType", err)
	}
}

func TestUploadMediaRejectsMimeMismatch(t *testing.T) {
	svc, _ := newTestService(t)

	header := makeFileHeader(t, "disguised.jpg", "application/octet-stream", "not an image")
	_, err := svc.UploadMedia(context.Background(), header)
	if !errors.Is(err, media.ErrInvalidFileType) {
		t.Errorf("UploadMedia() error = %v, want ErrInvalidFileType", err)
	}
}

func TestUploadMediaNilFile(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UploadMedia(context.Background(), nil)
	if !errors.Is(err, media.ErrNoFileUploaded) {
		t.Errorf("UploadMedia() error = %v, want ErrNoFileUploaded", err)
	}
}

func TestGetAllMedia(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, name := range []string{"one.png", "two.png"} {
		header := makeFileHeader(t, name, "image/png", "png bytes")
		if _, err := svc.UploadMedia(ctx, header); err != nil {
			t.Fatalf("UploadMedia(%s) error = %v", name, err)
		}
	}

	list, err := svc.GetAllMedia(ctx)
	if err != nil {
		t.Fatalf("GetAllMedia() error = %v", err)
	}
	if list.Total != 2 || len(list.Media) != 2 {
		t.Errorf("GetAllMedia() total = %d, len = %d", list.Total, len(list.Media))
	}
}

func TestUpdateMedia(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	header := makeFileHeader(t, "yard.png", "image/png", "png bytes")
	uploaded, err := svc.UploadMedia(ctx, header)
	if err != nil {
		t.Fatalf("UploadMedia() error = %v", err)
	}

	ref, err := svc.UpdateMedia(ctx, uploaded.ID, media.UpdateMediaRequest{
		OriginalName: "renamed.png",
		AltText:      "salvage yard overview",
		Description:  "Aerial shot of the east yard.",
	})
	if err != nil {
		t.Fatalf("UpdateMedia() error = %v", err)
	}
	if ref.AltText != "salvage yard overview" {
		t.Errorf("UpdateMedia() ref = %+v", ref)
	}

	got, err := svc.GetMediaByID(ctx, uploaded.ID)
	if err != nil {
		t.Fatalf("GetMediaByID() error = %v", err)
	}
	if got.OriginalName != "renamed.png" || got.Description != "Aerial shot of the east yard." {
		t.Errorf("update not persisted: %+v", got)
	}
}

func TestUpdateMediaNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UpdateMedia(context.Background(), "missing", media.UpdateMediaRequest{
		OriginalName: "x",
	})
	if !errors.Is(err, media.ErrMediaNotFound) {
		t.Errorf("UpdateMedia() error = %v, want ErrMediaNotFound", err)
	}
}

func TestDeleteMedia(t *testing.T) {
	svc, uploadsDir := newTestService(t)
	ctx := context.Background()

	header := makeFileHeader(t, "gone.png", "image/png", "png bytes")
	uploaded, err := svc.UploadMedia(ctx, header)
	if err != nil {
		t.Fatalf("UploadMedia() error = %v", err)
	}

	if err := svc.DeleteMedia(ctx, uploaded.ID); err != nil {
		t.Fatalf("DeleteMedia() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(uploadsDir, uploaded.Filename)); !os.IsNotExist(err) {
		t.Error("file still on disk after delete")
	}

	_, err = svc.GetMediaByID(ctx, uploaded.ID)
	if !errors.Is(err, media.ErrMediaNotFound) {
		t.Errorf("GetMediaByID() after delete = %v, want ErrMediaNotFound", err)
	}
}

func TestDeleteMediaNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.DeleteMedia(context.Background(), "missing")
	if !errors.Is(err, media.ErrMediaNotFound) {
		t.Errorf("DeleteMedia() error = %v, want ErrMediaNotFound", err)
	}
}
