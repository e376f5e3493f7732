package offers

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/c-e-daly/prophet-sub001/internal/forecast"
	internaloffers "github.com/c-e-daly/prophet-sub001/internal/offers"
	"github.com/c-e-daly/prophet-sub001/pkg/db/models"
	"github.com/c-e-daly/prophet-sub001/pkg/enums"
	"github.com/c-e-daly/prophet-sub001/pkg/types"
)

type offerResponse struct {
	ID              uuid.UUID         `json:"id"`
	ShopID          uuid.UUID         `json:"shop_id"`
	CartID          uuid.UUID         `json:"cart_id"`
	ConsumerID      uuid.UUID         `json:"consumer_id"`
	ProgramID       uuid.UUID         `json:"program_id"`
	OfferPriceCents int               `json:"offer_price_cents"`
	CartTotalCents  int               `json:"cart_total_cents"`
	Status          enums.OfferStatus `json:"status"`
	ExpiryMinutes   int               `json:"expiry_minutes"`
	ExpiresAt       *time.Time        `json:"expires_at"`
	CreatedAt       time.Time         `json:"created_at"`
}

type cartItemResponse struct {
	ProductID      string `json:"product_id"`
	VariantID      string `json:"variant_id"`
	SKU            string `json:"sku,omitempty"`
	Name           string `json:"name,omitempty"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int    `json:"unit_price_cents"`
	UnitCostCents  int    `json:"unit_cost_cents"`
}

type cartResponse struct {
	ID            uuid.UUID          `json:"id"`
	CartToken     string             `json:"cart_token"`
	TotalCents    int                `json:"total_cents"`
	ShippingCents int                `json:"shipping_cents"`
	ItemCount     int                `json:"item_count"`
	Currency      enums.Currency     `json:"currency"`
	Status        enums.CartStatus   `json:"status"`
	Items         []cartItemResponse `json:"items"`
}

type consumerResponse struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	Phone      *string   `json:"phone,omitempty"`
	PostalCode *string   `json:"postal_code,omitempty"`
	Consent    bool      `json:"consent"`
}

type discountResponse struct {
	ID                 uuid.UUID            `json:"id"`
	Code               string               `json:"code"`
	Title              string               `json:"title"`
	ValueCents         int                  `json:"value_cents"`
	Status             enums.DiscountStatus `json:"status"`
	PlatformDiscountID *string              `json:"platform_discount_id,omitempty"`
	PlatformResponse   json.RawMessage      `json:"platform_response,omitempty"`
	IssuedAt           *time.Time           `json:"issued_at,omitempty"`
}

type counterOfferResponse struct {
	ID                   uuid.UUID                `json:"id"`
	OfferID              uuid.UUID                `json:"offer_id"`
	Type                 enums.CounterType        `json:"type"`
	Config               types.CounterConfig      `json:"config"`
	OriginalMarginCents  int                      `json:"original_margin_cents"`
	OriginalMarginPct    float64                  `json:"original_margin_pct"`
	EstimatedMarginCents int                      `json:"estimated_margin_cents"`
	EstimatedMarginPct   float64                  `json:"estimated_margin_pct"`
	MarginImpactCents    int                      `json:"margin_impact_cents"`
	Probability          float64                  `json:"probability"`
	Confidence           float64                  `json:"confidence"`
	ExpectedRevenueCents int                      `json:"expected_revenue_cents"`
	ExpectedMarginCents  int                      `json:"expected_margin_cents"`
	Score                float64                  `json:"score"`
	Recommendation       enums.RecommendationTier `json:"recommendation"`
	Rationale            string                   `json:"rationale,omitempty"`
	CreatedAt            time.Time                `json:"created_at"`
}

type offerPageResponse struct {
	Offers     []offerResponse `json:"offers"`
	NextCursor string          `json:"next_cursor,omitempty"`
}

type offerDetailResponse struct {
	Offer    offerResponse          `json:"offer"`
	Cart     cartResponse           `json:"cart"`
	Consumer consumerResponse       `json:"consumer"`
	Counters []counterOfferResponse `json:"counters"`
	Discount *discountResponse      `json:"discount,omitempty"`
}

type marginResponse struct {
	DiscountCents        int     `json:"discount_cents"`
	OriginalMarginCents  int     `json:"original_margin_cents"`
	OriginalMarginPct    float64 `json:"original_margin_pct"`
	EstimatedMarginCents int     `json:"estimated_margin_cents"`
	EstimatedMarginPct   float64 `json:"estimated_margin_pct"`
	MarginImpactCents    int     `json:"margin_impact_cents"`
	FinalOrderValueCents int     `json:"final_order_value_cents"`
}

type probabilityResponse struct {
	Probability float64                       `json:"probability"`
	Confidence  float64                       `json:"confidence"`
	Factors     []forecast.FactorContribution `json:"factors"`
}

type evaluationResponse struct {
	Margin               marginResponse           `json:"margin"`
	Probability          probabilityResponse      `json:"probability"`
	ExpectedRevenueCents int                      `json:"expected_revenue_cents"`
	ExpectedMarginCents  int                      `json:"expected_margin_cents"`
	Score                float64                  `json:"score"`
	Recommendation       enums.RecommendationTier `json:"recommendation"`
	Rationale            string                   `json:"rationale"`
}

func toOfferPageResponse(page internaloffers.OfferPage) offerPageResponse {
	out := offerPageResponse{
		Offers:     make([]offerResponse, 0, len(page.Offers)),
		NextCursor: page.NextCursor,
	}
	for _, offer := range page.Offers {
		out.Offers = append(out.Offers, toOfferResponse(offer))
	}
	return out
}

func toOfferResponse(offer models.Offer) offerResponse {
	return offerResponse{
		ID:              offer.ID,
		ShopID:          offer.ShopID,
		CartID:          offer.CartID,
		ConsumerID:      offer.ConsumerID,
		ProgramID:       offer.ProgramID,
		OfferPriceCents: offer.OfferPriceCents,
		CartTotalCents:  offer.CartTotalCents,
		Status:          offer.Status,
		ExpiryMinutes:   offer.ExpiryMinutes,
		ExpiresAt:       offer.ExpiresAt,
		CreatedAt:       offer.CreatedAt,
	}
}

func toCounterOfferResponse(counter models.CounterOffer) counterOfferResponse {
	return counterOfferResponse{
		ID:                   counter.ID,
		OfferID:              counter.OfferID,
		Type:                 counter.Type,
		Config:               counter.Config,
		OriginalMarginCents:  counter.OriginalMarginCents,
		OriginalMarginPct:    counter.OriginalMarginPct,
		EstimatedMarginCents: counter.EstimatedMarginCents,
		EstimatedMarginPct:   counter.EstimatedMarginPct,
		MarginImpactCents:    counter.MarginImpactCents,
		Probability:          counter.Probability,
		Confidence:           counter.Confidence,
		ExpectedRevenueCents: counter.ExpectedRevenueCents,
		ExpectedMarginCents:  counter.ExpectedMarginCents,
		Score:                counter.Score,
		Recommendation:       counter.Recommendation,
		Rationale:            counter.Rationale,
		CreatedAt:            counter.CreatedAt,
	}
}

func toOfferDetailResponse(detail internaloffers.OfferDetail) offerDetailResponse {
	items := make([]cartItemResponse, 0, len(detail.Cart.Items))
	for _, item := range detail.Cart.Items {
		items = append(items, cartItemResponse{
			ProductID:      item.ProductID,
			VariantID:      item.VariantID,
			SKU:            item.SKU,
			Name:           item.Name,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
			UnitCostCents:  item.UnitCostCents,
		})
	}
	counters := make([]counterOfferResponse, 0, len(detail.Counters))
	for _, counter := range detail.Counters {
		counters = append(counters, toCounterOfferResponse(counter))
	}
	out := offerDetailResponse{
		Offer: toOfferResponse(detail.Offer),
		Cart: cartResponse{
			ID:            detail.Cart.ID,
			CartToken:     detail.Cart.CartToken,
			TotalCents:    detail.Cart.TotalCents,
			ShippingCents: detail.Cart.ShippingCents,
			ItemCount:     detail.Cart.ItemCount,
			Currency:      detail.Cart.Currency,
			Status:        detail.Cart.Status,
			Items:         items,
		},
		Consumer: consumerResponse{
			ID:         detail.Consumer.ID,
			Email:      detail.Consumer.Email,
			Phone:      detail.Consumer.Phone,
			PostalCode: detail.Consumer.PostalCode,
			Consent:    detail.Consumer.Consent,
		},
		Counters: counters,
	}
	if detail.Discount != nil {
		out.Discount = &discountResponse{
			ID:                 detail.Discount.ID,
			Code:               detail.Discount.Code,
			Title:              detail.Discount.Title,
			ValueCents:         detail.Discount.ValueCents,
			Status:             detail.Discount.Status,
			PlatformDiscountID: detail.Discount.PlatformDiscountID,
			PlatformResponse:   detail.Discount.PlatformResponse,
			IssuedAt:           detail.Discount.IssuedAt,
		}
	}
	return out
}

func toEvaluationResponse(eval forecast.Evaluation) evaluationResponse {
	return evaluationResponse{
		Margin: marginResponse{
			DiscountCents:        eval.Margin.DiscountCents,
			OriginalMarginCents:  eval.Margin.OriginalMarginCents,
			OriginalMarginPct:    eval.Margin.OriginalMarginPct,
			EstimatedMarginCents: eval.Margin.EstimatedMarginCents,
			EstimatedMarginPct:   eval.Margin.EstimatedMarginPct,
			MarginImpactCents:    eval.Margin.MarginImpactCents,
			FinalOrderValueCents: eval.Margin.FinalOrderValueCents,
		},
		Probability: probabilityResponse{
			Probability: eval.Probability.Probability,
			Confidence:  eval.Probability.Confidence,
			Factors:     eval.Probability.Factors,
		},
		ExpectedRevenueCents: eval.ExpectedRevenueCents,
		ExpectedMarginCents:  eval.ExpectedMarginCents,
		Score:                eval.Score,
		Recommendation:       eval.Recommendation,
		Rationale:            eval.Rationale,
	}
}
