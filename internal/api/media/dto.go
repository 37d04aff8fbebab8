package media

import "time"

type UpdateMediaRequest struct {
	OriginalName string `json:"original_name" validate:"omitempty,max=256"`
	AltText      string `json:"alt_text" validate:"omitempty,max=512"`
	Description  string `json:"description" validate:"omitempty"`
}

type MediaResponse struct {
	ID           string    `json:"id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"original_name"`
	MimeType     string    `json:"mimetype"`
	Size         int64     `json:"size"`
	URL          string    `json:"url"`
	AltText      string    `json:"alt_text,omitempty"`
	Description  string    `json:"description,omitempty"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

type MediaListResponse struct {
	Media []MediaResponse `json:"media"`
	Total int             `json:"total"`
}

// UpdateMediaRef echoes the editable fields back after an update.
type UpdateMediaRef struct {
	ID           string `json:"id"`
	OriginalName string `json:"original_name"`
	AltText      string `json:"alt_text"`
	Description  string `json:"description"`
}
