package models

import "time"

type Appointment struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	PublicID string `gorm:"size:36;uniqueIndex" json:"public_id"`

	BusinessID uint     `gorm:"index" json:"business_id"`
	Business   Business `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ClientID *uint   `json:"client_id"`
	Client   *Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client,omitempty"`

	ServiceID *uint    `json:"service_id"`
	Service   *Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service,omitempty"`

	ClientName     string `gorm:"size:100;not null" json:"client_name"`
	ClientWhatsApp string `gorm:"size:20" json:"client_whatsapp"`

	Date string `gorm:"size:10;index" json:"date"` // YYYY-MM-DD
	Time string `gorm:"size:5" json:"time"`       // HH:MM

	Status string `gorm:"size:20;default:'pending'" json:"status"`
	Notes  string `gorm:"size:255" json:"notes"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
