package models

import "time"

type Link struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	ClientID string `gorm:"size:36;index;not null" json:"client_id"`
	Client   Client `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	Name string `gorm:"size:100;not null" json:"name"`
	URL  string `gorm:"size:2048;not null" json:"url"`
	Date string `gorm:"size:10" json:"date"`

	AddedAt time.Time `json:"added_at"`
}
