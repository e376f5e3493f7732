package offers

import (
	"github.com/google/uuid"

	"github.com/c-e-daly/prophet-sub001/internal/forecast"
	internaloffers "github.com/c-e-daly/prophet-sub001/internal/offers"
	"github.com/c-e-daly/prophet-sub001/pkg/enums"
	pkgerrors "github.com/c-e-daly/prophet-sub001/pkg/errors"
	"github.com/c-e-daly/prophet-sub001/pkg/money"
	"github.com/c-e-daly/prophet-sub001/pkg/types"
)

// Monetary fields arrive as decimal strings in major currency units
// ("95.00") and convert to integer cents on ingestion.
type submitItemRequest struct {
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id" validate:"required"`
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	UnitPrice string `json:"unit_price" validate:"required"`
	UnitCost  string `json:"unit_cost"`
}

type submitRequest struct {
	ShopID           string              `json:"shop_id" validate:"required,uuid"`
	CartToken        string              `json:"cart_token" validate:"required"`
	Currency         string              `json:"currency"`
	Email            string              `json:"email" validate:"required,email"`
	Phone            *string             `json:"phone"`
	PostalCode       *string             `json:"postal_code"`
	Consent          bool                `json:"consent"`
	OfferPrice       string              `json:"offer_price" validate:"required"`
	CartTotal        string              `json:"cart_total" validate:"required"`
	Shipping         string              `json:"shipping"`
	AttributionToken string              `json:"attribution_token"`
	Items            []submitItemRequest `json:"items" validate:"required,min=1,dive"`
}

func parseMoneyField(field, value string) (int, error) {
	cents, err := money.ParseMajorUnits(value)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid "+field)
	}
	if cents < 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, field+" must not be negative")
	}
	return cents, nil
}

func (req submitRequest) toSubmission() (internaloffers.Submission, error) {
	shopID, err := uuid.Parse(req.ShopID)
	if err != nil {
		return internaloffers.Submission{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid shop id")
	}
	offerPriceCents, err := parseMoneyField("offer_price", req.OfferPrice)
	if err != nil {
		return internaloffers.Submission{}, err
	}
	if offerPriceCents == 0 {
		return internaloffers.Submission{}, pkgerrors.New(pkgerrors.CodeValidation, "offer_price must be positive")
	}
	cartTotalCents, err := parseMoneyField("cart_total", req.CartTotal)
	if err != nil {
		return internaloffers.Submission{}, err
	}
	if cartTotalCents == 0 {
		return internaloffers.Submission{}, pkgerrors.New(pkgerrors.CodeValidation, "cart_total must be positive")
	}
	shippingCents := 0
	if req.Shipping != "" {
		if shippingCents, err = parseMoneyField("shipping", req.Shipping); err != nil {
			return internaloffers.Submission{}, err
		}
	}
	items := make([]internaloffers.SubmissionItem, 0, len(req.Items))
	for _, item := range req.Items {
		unitPriceCents, err := parseMoneyField("unit_price", item.UnitPrice)
		if err != nil {
			return internaloffers.Submission{}, err
		}
		unitCostCents := 0
		if item.UnitCost != "" {
			if unitCostCents, err = parseMoneyField("unit_cost", item.UnitCost); err != nil {
				return internaloffers.Submission{}, err
			}
		}
		items = append(items, internaloffers.SubmissionItem{
			ProductID:      item.ProductID,
			VariantID:      item.VariantID,
			SKU:            item.SKU,
			Name:           item.Name,
			Quantity:       item.Quantity,
			UnitPriceCents: unitPriceCents,
			UnitCostCents:  unitCostCents,
		})
	}
	return internaloffers.Submission{
		ShopID:          shopID,
		CartToken:       req.CartToken,
		Currency:        enums.Currency(req.Currency),
		Email:           req.Email,
		Phone:           req.Phone,
		PostalCode:      req.PostalCode,
		Consent:         req.Consent,
		OfferPriceCents: offerPriceCents,
		CartTotalCents:  cartTotalCents,
		ShippingCents:   shippingCents,
		Items:           items,
	}, nil
}

type transitionRequest struct {
	ShopID string `json:"shop_id" validate:"required,uuid"`
	Status string `json:"status" validate:"required"`
}

type counterHistoryRequest struct {
	LifetimeOrders          int      `json:"lifetime_orders" validate:"min=0"`
	DaysSinceLastOrder      int      `json:"days_since_last_order" validate:"min=0"`
	HistoricalAcceptRate    *float64 `json:"historical_accept_rate"`
	SimilarCountersOffered  int      `json:"similar_counters_offered" validate:"min=0"`
	SimilarCountersAccepted int      `json:"similar_counters_accepted" validate:"min=0"`
}

type counterRequest struct {
	ShopID       string                `json:"shop_id" validate:"required,uuid"`
	Type         string                `json:"type" validate:"required"`
	Config       *types.CounterConfig  `json:"config"`
	Segment      string                `json:"segment"`
	History      counterHistoryRequest `json:"history"`
	ShippingCost string                `json:"shipping_cost"`
}

func (req counterRequest) toInput(offerID uuid.UUID) (internaloffers.CounterInput, error) {
	shopID, err := uuid.Parse(req.ShopID)
	if err != nil {
		return internaloffers.CounterInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid shop id")
	}
	shippingCostCents := 0
	if req.ShippingCost != "" {
		if shippingCostCents, err = parseMoneyField("shipping_cost", req.ShippingCost); err != nil {
			return internaloffers.CounterInput{}, err
		}
	}
	return internaloffers.CounterInput{
		OfferID: offerID,
		ShopID:  shopID,
		Type:    enums.CounterType(req.Type),
		Config:  req.Config,
		Segment: enums.PortfolioSegment(req.Segment),
		History: forecast.CustomerHistory{
			LifetimeOrders:          req.History.LifetimeOrders,
			DaysSinceLastOrder:      req.History.DaysSinceLastOrder,
			HistoricalAcceptRate:    req.History.HistoricalAcceptRate,
			SimilarCountersOffered:  req.History.SimilarCountersOffered,
			SimilarCountersAccepted: req.History.SimilarCountersAccepted,
		},
		ShippingCostCents: shippingCostCents,
	}, nil
}
