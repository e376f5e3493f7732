package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/c-e-daly/prophet-sub001/pkg/enums"
)

// Program holds a shop's acceptance and decline thresholds. Rates are basis
// points of cart total: an offer at or above AcceptRateBps auto-accepts, one
// below DeclineRateBps auto-declines, anything between holds for review.
// Programs are read-only input to evaluation.
type Program struct {
	ID             uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ShopID         uuid.UUID           `gorm:"column:shop_id;type:uuid;not null;index"`
	Name           string              `gorm:"column:name;not null"`
	Status         enums.ProgramStatus `gorm:"column:status;type:program_status;not null;default:'active'"`
	AcceptRateBps  int                 `gorm:"column:accept_rate_bps;not null"`
	DeclineRateBps int                 `gorm:"column:decline_rate_bps;not null"`
	ExpiryMinutes  int                 `gorm:"column:expiry_minutes;not null;default:2880"`
	CombinesWith   pq.StringArray      `gorm:"column:combines_with;type:text[]"`
	StartsAt       *time.Time          `gorm:"column:starts_at"`
	EndsAt         *time.Time          `gorm:"column:ends_at"`
	CreatedAt      time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
