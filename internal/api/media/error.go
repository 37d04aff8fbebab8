package media

import (
	"RecyclePress/pkg/response"
	"RecyclePress/pkg/utils"
)

var (
	ErrMediaNotFound   = response.NewError(404, "media not found")
	ErrNoFileUploaded  = response.NewError(400, "no file uploaded")
	ErrInvalidFileType = response.NewError(400, "unsupported file format, supported formats: "+utils.SupportedFormats)
	ErrFileTooLarge    = response.NewError(400, "file too large, maximum size is 50MB")
	ErrFailedToUpload  = response.NewError(500, "failed to upload file")
	ErrDeleteMedia     = response.NewError(500, "failed to delete media")
	ErrUpdateMedia     = response.NewError(500, "failed to update media")
)
