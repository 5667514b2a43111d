package models

import "time"

// Perfil público do negócio (salão, barbearia, pet shop). Um por usuário.
type Business struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name string `gorm:"size:100;not null" json:"business_name"`
	// Slug persistido e único; registros legados podem ter slug vazio e
	// são resolvidos derivando do nome (com backfill no primeiro acesso).
	Slug string `gorm:"size:100;uniqueIndex" json:"slug"`

	OwnerName   string `gorm:"size:100" json:"owner_name"`
	Email       string `gorm:"size:100" json:"email"`
	Phone       string `gorm:"size:20" json:"phone"`
	WhatsApp    string `gorm:"size:20" json:"whatsapp"`
	Instagram   string `gorm:"size:100" json:"instagram"`
	Address     string `gorm:"size:255" json:"address"`
	Description string `gorm:"size:500" json:"description"`
	LogoURL     string `gorm:"size:255" json:"logo_url"`

	Timezone string `gorm:"size:50" json:"timezone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
