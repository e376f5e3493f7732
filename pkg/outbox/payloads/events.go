// Package payloads defines the typed event bodies carried by outbox rows.
// Fields are additive only; breaking changes require a new envelope version.
package payloads

import (
	"time"

	"github.com/google/uuid"

	"github.com/c-e-daly/prophet-sub001/pkg/enums"
)

// OfferEvaluatedEvent fires after the pipeline decides an offer.
type OfferEvaluatedEvent struct {
	OfferID         uuid.UUID         `json:"offer_id"`
	ShopID          uuid.UUID         `json:"shop_id"`
	CartID          uuid.UUID         `json:"cart_id"`
	ConsumerID      uuid.UUID         `json:"consumer_id"`
	ProgramID       uuid.UUID         `json:"program_id"`
	Status          enums.OfferStatus `json:"status"`
	OfferPriceCents int               `json:"offer_price_cents"`
	CartTotalCents  int               `json:"cart_total_cents"`

	// Margin rollups at the offered price, allocated across cart lines.
	TotalAllowanceCents int     `json:"total_allowance_cents"`
	NORSalesCents       int     `json:"nor_sales_cents"`
	GrossMarginPct      float64 `json:"gross_margin_pct"`
}

// OfferExpiredEvent fires when the expiry sweep times an offer out.
type OfferExpiredEvent struct {
	OfferID   uuid.UUID `json:"offer_id"`
	ShopID    uuid.UUID `json:"shop_id"`
	CartID    uuid.UUID `json:"cart_id"`
	ExpiredAt time.Time `json:"expired_at"`
}

// DiscountIssuedEvent fires once the platform confirms the discount code.
type DiscountIssuedEvent struct {
	DiscountID         uuid.UUID `json:"discount_id"`
	OfferID            uuid.UUID `json:"offer_id"`
	ShopID             uuid.UUID `json:"shop_id"`
	Code               string    `json:"code"`
	ValueCents         int       `json:"value_cents"`
	PlatformDiscountID string    `json:"platform_discount_id,omitempty"`
}

// DiscountFailedEvent fires when platform issuance fails after the offer
// auto-accepted. Operators alert on these rows.
type DiscountFailedEvent struct {
	DiscountID uuid.UUID `json:"discount_id"`
	OfferID    uuid.UUID `json:"offer_id"`
	ShopID     uuid.UUID `json:"shop_id"`
	Reason     string    `json:"reason"`
}

// CounterRecordedEvent fires when a reviewer persists a counter-offer.
type CounterRecordedEvent struct {
	CounterOfferID uuid.UUID                `json:"counter_offer_id"`
	OfferID        uuid.UUID                `json:"offer_id"`
	ShopID         uuid.UUID                `json:"shop_id"`
	Type           enums.CounterType        `json:"type"`
	Recommendation enums.RecommendationTier `json:"recommendation"`
}
