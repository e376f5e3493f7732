package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/c-e-daly/prophet-sub001/pkg/enums"
)

// Discount is the platform-facing artifact created once an Offer auto-accepts.
// At most one row exists per Offer; the raw platform response is recorded on
// the row whether issuance succeeded or failed.
type Discount struct {
	ID                 uuid.UUID            `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OfferID            uuid.UUID            `gorm:"column:offer_id;type:uuid;not null;uniqueIndex"`
	ShopID             uuid.UUID            `gorm:"column:shop_id;type:uuid;not null;index"`
	Code               string               `gorm:"column:code;not null"`
	Title              string               `gorm:"column:title;not null"`
	ValueCents         int                  `gorm:"column:value_cents;not null;default:0"`
	Status             enums.DiscountStatus `gorm:"column:status;type:discount_status;not null;default:'pending'"`
	PlatformDiscountID *string              `gorm:"column:platform_discount_id"`
	PlatformResponse   json.RawMessage      `gorm:"column:platform_response;type:jsonb"`
	IssuedAt           *time.Time           `gorm:"column:issued_at"`
	CreatedAt          time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time            `gorm:"column:updated_at;autoUpdateTime"`
}
