package models

import "time"

// Document is the metadata record for a PDF stored in blob storage.
// StorageKey is the object key under clients/{id}/documents/.
type Document struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	ClientID string `gorm:"size:36;index;not null" json:"client_id"`
	Client   Client `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	Name       string `gorm:"size:255;not null" json:"name"`
	StorageKey string `gorm:"size:512;not null" json:"-"`
	MimeType   string `gorm:"size:100" json:"mime_type"`
	SizeBytes  int64  `json:"size_bytes"`

	UploadedAt time.Time `json:"uploaded_at"`
}
