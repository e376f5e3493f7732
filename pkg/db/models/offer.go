package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/c-e-daly/prophet-sub001/pkg/enums"
)

// Offer is a shopper-proposed price for a Cart. A resubmission creates a new
// Offer against the same Cart; rows are never re-evaluated once they leave
// pending_review.
type Offer struct {
	ID              uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ShopID          uuid.UUID         `gorm:"column:shop_id;type:uuid;not null;index"`
	CartID          uuid.UUID         `gorm:"column:cart_id;type:uuid;not null;index"`
	ConsumerID      uuid.UUID         `gorm:"column:consumer_id;type:uuid;not null"`
	ProgramID       uuid.UUID         `gorm:"column:program_id;type:uuid;not null"`
	OfferPriceCents int               `gorm:"column:offer_price_cents;not null"`
	CartTotalCents  int               `gorm:"column:cart_total_cents;not null"`
	Status          enums.OfferStatus `gorm:"column:status;type:offer_status;not null"`
	ExpiryMinutes   int               `gorm:"column:expiry_minutes;not null;default:0"`
	ExpiresAt       *time.Time        `gorm:"column:expires_at;index"`
	CreatedAt       time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
