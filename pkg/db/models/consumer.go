package models

import (
	"time"

	"github.com/google/uuid"
)

// Consumer is a shopper identity scoped to a shop, upserted by (shop, email).
type Consumer struct {
	ID                 uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ShopID             uuid.UUID `gorm:"column:shop_id;type:uuid;not null;uniqueIndex:idx_consumers_shop_email"`
	Email              string    `gorm:"column:email;not null;uniqueIndex:idx_consumers_shop_email"`
	Phone              *string   `gorm:"column:phone"`
	PostalCode         *string   `gorm:"column:postal_code"`
	PlatformCustomerID *string   `gorm:"column:platform_customer_id"`
	Consent            bool      `gorm:"column:consent;not null;default:false"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
