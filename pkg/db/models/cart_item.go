package models

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is a line-level snapshot tied to a Cart, keyed by (cart, variant).
// Items are written once per submission and never mutated afterwards.
type CartItem struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CartID         uuid.UUID `gorm:"column:cart_id;type:uuid;not null;uniqueIndex:idx_cart_items_cart_variant"`
	ProductID      string    `gorm:"column:product_id;not null"`
	VariantID      string    `gorm:"column:variant_id;not null;uniqueIndex:idx_cart_items_cart_variant"`
	SKU            string    `gorm:"column:sku"`
	Name           string    `gorm:"column:name"`
	Quantity       int       `gorm:"column:quantity;not null"`
	UnitPriceCents int       `gorm:"column:unit_price_cents;not null"`
	UnitCostCents  int       `gorm:"column:unit_cost_cents;not null;default:0"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
}
