package offers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/c-e-daly/prophet-sub001/api/responses"
	"github.com/c-e-daly/prophet-sub001/api/validators"
	internaloffers "github.com/c-e-daly/prophet-sub001/internal/offers"
	"github.com/c-e-daly/prophet-sub001/pkg/enums"
	pkgerrors "github.com/c-e-daly/prophet-sub001/pkg/errors"
	"github.com/c-e-daly/prophet-sub001/pkg/logger"
	"github.com/c-e-daly/prophet-sub001/pkg/pagination"
)

const attributionHeader = "X-Attribution-Token"

// Submit runs a cart and proposed price through the evaluation pipeline and
// returns the decided outcome in one round trip.
func Submit(svc internaloffers.Service, tokens validators.AttributionTokenValidator, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req submitRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		token := strings.TrimSpace(req.AttributionToken)
		if token == "" {
			token = strings.TrimSpace(r.Header.Get(attributionHeader))
		}
		if token != "" && tokens != nil && !tokens.Validate(token) {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "invalid attribution token"))
			return
		}

		submission, err := req.toSubmission()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.SubmitOffer(r.Context(), submission)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

// Detail returns the offer with its cart, consumer, counters, and discount
// for the reviewing merchant.
func Detail(svc internaloffers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offerID, err := parseOfferID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		shopID, err := parseShopIDQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		detail, err := svc.GetOffer(r.Context(), shopID, offerID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, toOfferDetailResponse(*detail))
	}
}

// List pages a shop's offers newest first. Status filters when present;
// limit and cursor follow the keyset convention from pkg/pagination.
func List(svc internaloffers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shopID, err := parseShopIDQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := internaloffers.ListInput{
			ShopID: shopID,
			Params: pagination.Params{
				Cursor: strings.TrimSpace(r.URL.Query().Get("cursor")),
			},
		}
		if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
			limit, err := strconv.Atoi(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid limit"))
				return
			}
			input.Params.Limit = limit
		}
		if raw := strings.TrimSpace(r.URL.Query().Get("status")); raw != "" {
			status := enums.OfferStatus(raw)
			if !status.IsValid() {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeValidation, "unknown offer status").WithDetails(map[string]string{"status": raw}))
				return
			}
			input.Status = &status
		}

		page, err := svc.ListOffers(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, toOfferPageResponse(*page))
	}
}

// Transition applies a reviewer or consumer decision to an offer.
func Transition(svc internaloffers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offerID, err := parseOfferID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var req transitionRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		shopID, err := uuid.Parse(req.ShopID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid shop id"))
			return
		}
		status := enums.OfferStatus(req.Status)
		if !status.IsValid() {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "unknown offer status").WithDetails(map[string]string{"status": req.Status}))
			return
		}

		offer, err := svc.TransitionOffer(r.Context(), internaloffers.TransitionInput{
			OfferID:    offerID,
			ShopID:     shopID,
			NextStatus: status,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, toOfferResponse(*offer))
	}
}

// Forecast evaluates a candidate counter-offer without persisting anything.
func Forecast(svc internaloffers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, ok := decodeCounterInput(w, r, logg)
		if !ok {
			return
		}
		eval, err := svc.ForecastCounter(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, toEvaluationResponse(*eval))
	}
}

// CreateCounter persists a counter-offer with its captured forecast and moves
// the offer to reviewed_countered.
func CreateCounter(svc internaloffers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, ok := decodeCounterInput(w, r, logg)
		if !ok {
			return
		}
		counter, err := svc.CreateCounterOffer(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, toCounterOfferResponse(*counter))
	}
}

func decodeCounterInput(w http.ResponseWriter, r *http.Request, logg *logger.Logger) (internaloffers.CounterInput, bool) {
	offerID, err := parseOfferID(r)
	if err != nil {
		responses.WriteError(r.Context(), logg, w, err)
		return internaloffers.CounterInput{}, false
	}
	var req counterRequest
	if err := validators.DecodeJSONBody(r, &req); err != nil {
		responses.WriteError(r.Context(), logg, w, err)
		return internaloffers.CounterInput{}, false
	}
	input, err := req.toInput(offerID)
	if err != nil {
		responses.WriteError(r.Context(), logg, w, err)
		return internaloffers.CounterInput{}, false
	}
	return input, true
}

func parseOfferID(r *http.Request) (uuid.UUID, error) {
	raw := strings.TrimSpace(chi.URLParam(r, "offerID"))
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "offer id is required")
	}
	offerID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid offer id")
	}
	return offerID, nil
}

func parseShopIDQuery(r *http.Request) (uuid.UUID, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("shop_id"))
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "shop_id query parameter is required")
	}
	shopID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid shop id")
	}
	return shopID, nil
}
