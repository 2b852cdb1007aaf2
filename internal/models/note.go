package models

import "time"

// Note is a free-text journal entry on a client. Author fields are a
// snapshot taken at creation time, not a live reference to the user row.
type Note struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	ClientID string `gorm:"size:36;index;not null" json:"client_id"`
	Client   Client `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	Text string `gorm:"type:text;not null" json:"text"`

	// PerformedAt is when the real-world event happened, as opposed to
	// CreatedAt which is when the note was written down.
	PerformedAt time.Time `json:"performed_at"`
	CreatedAt   time.Time `json:"created_at"`

	AuthorID    string `gorm:"size:36;not null" json:"author_id"`
	AuthorName  string `gorm:"size:100" json:"author_name"`
	AuthorEmail string `gorm:"size:100" json:"author_email"`
}
