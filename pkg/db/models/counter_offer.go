package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/c-e-daly/prophet-sub001/pkg/enums"
	"github.com/c-e-daly/prophet-sub001/pkg/types"
)

// CounterOffer records a merchant-proposed alternative to an Offer together
// with the forecast captured at creation time for audit.
type CounterOffer struct {
	ID      uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OfferID uuid.UUID           `gorm:"column:offer_id;type:uuid;not null;index"`
	ShopID  uuid.UUID           `gorm:"column:shop_id;type:uuid;not null;index"`
	Type    enums.CounterType   `gorm:"column:type;type:counter_type;not null"`
	Config  types.CounterConfig `gorm:"column:config;type:jsonb;serializer:json"`

	OriginalMarginCents  int                      `gorm:"column:original_margin_cents;not null"`
	OriginalMarginPct    float64                  `gorm:"column:original_margin_pct;not null"`
	EstimatedMarginCents int                      `gorm:"column:estimated_margin_cents;not null"`
	EstimatedMarginPct   float64                  `gorm:"column:estimated_margin_pct;not null"`
	MarginImpactCents    int                      `gorm:"column:margin_impact_cents;not null"`
	Probability          float64                  `gorm:"column:probability;not null"`
	Confidence           float64                  `gorm:"column:confidence;not null"`
	ExpectedRevenueCents int                      `gorm:"column:expected_revenue_cents;not null"`
	ExpectedMarginCents  int                      `gorm:"column:expected_margin_cents;not null"`
	Score                float64                  `gorm:"column:score;not null"`
	Recommendation       enums.RecommendationTier `gorm:"column:recommendation;type:recommendation_tier;not null"`
	Rationale            string                   `gorm:"column:rationale"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
