package models

import "time"

type User struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	DisplayName  string `gorm:"size:100" json:"display_name"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
