package models

import "time"

const (
	ServiceStatusActive   = "active"
	ServiceStatusInactive = "inactive"
)

type Service struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	BusinessID uint `gorm:"index" json:"business_id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	Duration    int     `json:"duration"` // minutos, informativo (não bloqueia slots)
	Price       float64 `json:"price"`
	Status      string  `gorm:"size:20;default:'active'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
