package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/c-e-daly/prophet-sub001/pkg/enums"
)

// Cart snapshots a shopper's negotiated cart, upserted by (shop, cart token).
type Cart struct {
	ID            uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ShopID        uuid.UUID        `gorm:"column:shop_id;type:uuid;not null;uniqueIndex:idx_carts_shop_token"`
	CartToken     string           `gorm:"column:cart_token;not null;uniqueIndex:idx_carts_shop_token"`
	ConsumerID    *uuid.UUID       `gorm:"column:consumer_id;type:uuid"`
	TotalCents    int              `gorm:"column:total_cents;not null;default:0"`
	ShippingCents int              `gorm:"column:shipping_cents;not null;default:0"`
	ItemCount     int              `gorm:"column:item_count;not null;default:0"`
	Currency      enums.Currency   `gorm:"column:currency;not null;default:'USD'"`
	Status        enums.CartStatus `gorm:"column:status;type:cart_status;not null;default:'offered'"`
	Items         []CartItem       `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
