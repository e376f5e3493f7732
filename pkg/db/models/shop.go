package models

import (
	"time"

	"github.com/google/uuid"
)

// Shop identifies a merchant storefront on the commerce platform.
type Shop struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Domain        string    `gorm:"column:domain;not null;uniqueIndex"`
	Name          string    `gorm:"column:name;not null"`
	StorefrontURL string    `gorm:"column:storefront_url;not null"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
