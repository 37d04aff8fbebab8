package entity

import "time"

type Media struct {
	ID           string    `db:"id"`
	Filename     string    `db:"filename"`
	OriginalName string    `db:"original_name"`
	MimeType     string    `db:"mimetype"`
	Size         int64     `db:"size"`
	URL          string    `db:"url"`
	AltText      string    `db:"alt_text"`
	Description  string    `db:"description"`
	UploadedAt   time.Time `db:"uploaded_at"`
}
