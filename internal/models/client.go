package models

import "time"

// Cliente final do negócio, sem login próprio.
type Client struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	BusinessID uint `gorm:"index" json:"business_id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	WhatsApp string `gorm:"size:20" json:"whatsapp"`
	Email    string `gorm:"size:100" json:"email"`
	Notes    string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
