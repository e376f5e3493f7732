package offers

import (
	"github.com/google/uuid"

	"github.com/c-e-daly/prophet-sub001/internal/forecast"
	"github.com/c-e-daly/prophet-sub001/pkg/db/models"
	"github.com/c-e-daly/prophet-sub001/pkg/enums"
	"github.com/c-e-daly/prophet-sub001/pkg/pagination"
	"github.com/c-e-daly/prophet-sub001/pkg/types"
)

// SubmissionItem is one cart line as the storefront script reports it.
type SubmissionItem struct {
	ProductID      string
	VariantID      string
	SKU            string
	Name           string
	Quantity       int
	UnitPriceCents int
	UnitCostCents  int
}

// Submission is the raw cart+offer payload entering the pipeline.
type Submission struct {
	ShopID          uuid.UUID
	CartToken       string
	Currency        enums.Currency
	Email           string
	Phone           *string
	PostalCode      *string
	Consent         bool
	OfferPriceCents int
	CartTotalCents  int
	ShippingCents   int
	Items           []SubmissionItem
}

// PipelineResult is what the shopper-facing caller receives. The shape is the
// same for every outcome; fields that do not apply stay nil.
type PipelineResult struct {
	OfferID         uuid.UUID         `json:"offer_id"`
	Status          enums.OfferStatus `json:"status"`
	OfferPriceCents int               `json:"offer_price_cents"`
	DiscountCode    *string           `json:"discount_code"`
	ExpiryMinutes   *int              `json:"expiry_minutes"`
	CheckoutURL     *string           `json:"checkout_url"`
}

// OfferDetail aggregates everything a reviewer needs to act on an offer.
type OfferDetail struct {
	Offer    models.Offer
	Cart     models.Cart
	Consumer models.Consumer
	Counters []models.CounterOffer
	Discount *models.Discount
}

// OfferListQuery scopes a reviewer's offer listing. Cursor and Limit follow
// the created_at+id keyset convention from pkg/pagination.
type OfferListQuery struct {
	ShopID uuid.UUID
	Status *enums.OfferStatus
	Cursor *pagination.Cursor
	Limit  int
}

// ListInput carries the raw listing parameters from the API layer.
type ListInput struct {
	ShopID uuid.UUID
	Status *enums.OfferStatus
	Params pagination.Params
}

// OfferPage is one page of offers plus the cursor for the next page, empty
// when this page is the last.
type OfferPage struct {
	Offers     []models.Offer
	NextCursor string
}

// TransitionInput moves an offer through the review state machine. The target
// status says who acted: reviewed_* for merchants, consumer_* for shoppers.
type TransitionInput struct {
	OfferID    uuid.UUID
	ShopID     uuid.UUID
	NextStatus enums.OfferStatus
}

// CounterInput describes a candidate counter-offer. Segment and History feed
// the forecast; ShippingCostCents is the merchant's carrier estimate for the
// cart and defaults to zero when unknown.
type CounterInput struct {
	OfferID           uuid.UUID
	ShopID            uuid.UUID
	Type              enums.CounterType
	Config            *types.CounterConfig
	Segment           enums.PortfolioSegment
	History           forecast.CustomerHistory
	ShippingCostCents int
}
