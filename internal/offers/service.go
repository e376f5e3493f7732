package offers

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/c-e-daly/prophet-sub001/internal/allocation"
	"github.com/c-e-daly/prophet-sub001/internal/counters"
	"github.com/c-e-daly/prophet-sub001/internal/forecast"
	"github.com/c-e-daly/prophet-sub001/pkg/config"
	"github.com/c-e-daly/prophet-sub001/pkg/db/models"
	"github.com/c-e-daly/prophet-sub001/pkg/enums"
	pkgerrors "github.com/c-e-daly/prophet-sub001/pkg/errors"
	"github.com/c-e-daly/prophet-sub001/pkg/logger"
	"github.com/c-e-daly/prophet-sub001/pkg/metrics"
	"github.com/c-e-daly/prophet-sub001/pkg/outbox"
	"github.com/c-e-daly/prophet-sub001/pkg/outbox/payloads"
	"github.com/c-e-daly/prophet-sub001/pkg/pagination"
	"github.com/c-e-daly/prophet-sub001/pkg/shopify"
	"github.com/c-e-daly/prophet-sub001/pkg/types"
)

const eventSource = "offers"

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type outboxPublisher interface {
	Emit(ctx context.Context, tx *gorm.DB, event outbox.DomainEvent) error
}

type replayGuard interface {
	AcquireSubmission(ctx context.Context, shopID, cartToken string, offerPriceCents int, ttl time.Duration) (bool, error)
}

type platformClient interface {
	CreateDiscount(ctx context.Context, shopDomain string, req shopify.DiscountRequest) (*shopify.DiscountResult, error)
}

// Service owns the offer evaluation pipeline and the reviewer-facing
// counter-offer operations.
type Service interface {
	SubmitOffer(ctx context.Context, submission Submission) (*PipelineResult, error)
	GetOffer(ctx context.Context, shopID, offerID uuid.UUID) (*OfferDetail, error)
	ListOffers(ctx context.Context, input ListInput) (*OfferPage, error)
	TransitionOffer(ctx context.Context, input TransitionInput) (*models.Offer, error)
	ForecastCounter(ctx context.Context, input CounterInput) (*forecast.Evaluation, error)
	CreateCounterOffer(ctx context.Context, input CounterInput) (*models.CounterOffer, error)
}

type service struct {
	repo     Repository
	tx       txRunner
	outbox   outboxPublisher
	guard    replayGuard
	platform platformClient
	logg     *logger.Logger
	metrics  *metrics.PipelineMetrics
	cfg      config.OffersConfig
	now      func() time.Time
}

// NewService wires the offers service. The metrics handle may be nil.
func NewService(
	repo Repository,
	tx txRunner,
	outboxSvc outboxPublisher,
	guard replayGuard,
	platform platformClient,
	logg *logger.Logger,
	pipelineMetrics *metrics.PipelineMetrics,
	cfg config.OffersConfig,
) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("offers service requires a repository")
	}
	if tx == nil {
		return nil, fmt.Errorf("offers service requires a transaction runner")
	}
	if outboxSvc == nil {
		return nil, fmt.Errorf("offers service requires an outbox publisher")
	}
	if guard == nil {
		return nil, fmt.Errorf("offers service requires a replay guard")
	}
	if platform == nil {
		return nil, fmt.Errorf("offers service requires a platform client")
	}
	if logg == nil {
		return nil, fmt.Errorf("offers service requires a logger")
	}
	return &service{
		repo:     repo,
		tx:       tx,
		outbox:   outboxSvc,
		guard:    guard,
		platform: platform,
		logg:     logg,
		metrics:  pipelineMetrics,
		cfg:      cfg,
		now:      time.Now,
	}, nil
}

// SubmitOffer runs the evaluation pipeline end to end. Each stage commits on
// its own so a retry after partial failure resumes via idempotent upserts.
func (s *service) SubmitOffer(ctx context.Context, submission Submission) (*PipelineResult, error) {
	if err := validateSubmission(submission); err != nil {
		return nil, err
	}
	ctx = s.logg.WithShopID(ctx, submission.ShopID.String())

	acquired, err := s.guard.AcquireSubmission(ctx, submission.ShopID.String(), submission.CartToken, submission.OfferPriceCents, s.cfg.ReplayGuardTTL)
	if err != nil {
		// The guard is advisory; a cache outage must not block submissions.
		s.logg.Warn(ctx, "replay guard unavailable, continuing without it")
	} else if !acquired {
		return nil, pkgerrors.New(pkgerrors.CodeReplay, "identical submission already being processed")
	}

	shop, err := s.repo.FindShop(ctx, submission.ShopID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "shop not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load shop")
	}

	var consumer *models.Consumer
	err = s.runStage(ctx, enums.StageUpsertConsumer, func(ctx context.Context) error {
		var stageErr error
		consumer, stageErr = s.repo.UpsertConsumer(ctx, &models.Consumer{
			ShopID:     submission.ShopID,
			Email:      strings.ToLower(strings.TrimSpace(submission.Email)),
			Phone:      submission.Phone,
			PostalCode: submission.PostalCode,
			Consent:    submission.Consent,
		})
		return stageErr
	})
	if err != nil {
		return nil, err
	}

	var cart *models.Cart
	err = s.runStage(ctx, enums.StageUpsertCart, func(ctx context.Context) error {
		currency := submission.Currency
		if currency == "" {
			currency = enums.CurrencyUSD
		}
		var stageErr error
		cart, stageErr = s.repo.UpsertCart(ctx, &models.Cart{
			ShopID:        submission.ShopID,
			CartToken:     submission.CartToken,
			ConsumerID:    &consumer.ID,
			TotalCents:    submission.CartTotalCents,
			ShippingCents: submission.ShippingCents,
			ItemCount:     len(submission.Items),
			Currency:      currency,
			Status:        enums.CartStatusOffered,
		})
		if stageErr != nil {
			return stageErr
		}
		// The upsert leaves closed carts untouched, so a terminal status
		// here means the token belongs to a finished negotiation.
		if cart.Status.IsTerminal() {
			return pkgerrors.New(pkgerrors.CodeStateConflict, "cart is closed")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = s.runStage(ctx, enums.StageUpsertCartItems, func(ctx context.Context) error {
		items := make([]models.CartItem, 0, len(submission.Items))
		for _, item := range submission.Items {
			items = append(items, models.CartItem{
				CartID:         cart.ID,
				ProductID:      item.ProductID,
				VariantID:      item.VariantID,
				SKU:            item.SKU,
				Name:           item.Name,
				Quantity:       item.Quantity,
				UnitPriceCents: item.UnitPriceCents,
				UnitCostCents:  item.UnitCostCents,
			})
		}
		return s.repo.UpsertCartItems(ctx, items)
	})
	if err != nil {
		return nil, err
	}

	// Program rules belong to evaluation, but the offer row references the
	// program, so the lookup happens before the row is created. A missing
	// program is a configuration failure, never a decline.
	program, err := s.repo.FindActiveProgram(ctx, submission.ShopID, s.now())
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			err = pkgerrors.New(pkgerrors.CodeDependency, "no active program for shop")
		}
		s.failStage(ctx, enums.StageEvaluateOffer, err)
		return nil, stageErr(enums.StageEvaluateOffer, err)
	}

	expiryMinutes := program.ExpiryMinutes
	if expiryMinutes <= 0 {
		expiryMinutes = s.cfg.DefaultExpiryMinutes
	}

	var offer *models.Offer
	err = s.runStage(ctx, enums.StageCreateOffer, func(ctx context.Context) error {
		expiresAt := s.now().Add(time.Duration(expiryMinutes) * time.Minute)
		var stageErr error
		offer, stageErr = s.repo.CreateOffer(ctx, &models.Offer{
			ShopID:          submission.ShopID,
			CartID:          cart.ID,
			ConsumerID:      consumer.ID,
			ProgramID:       program.ID,
			OfferPriceCents: submission.OfferPriceCents,
			CartTotalCents:  submission.CartTotalCents,
			Status:          enums.OfferStatusPendingReview,
			ExpiryMinutes:   expiryMinutes,
			ExpiresAt:       &expiresAt,
		})
		return stageErr
	})
	if err != nil {
		return nil, err
	}
	ctx = s.logg.WithOfferID(ctx, offer.ID.String())

	decision := decide(program, submission.OfferPriceCents, submission.CartTotalCents)
	rollup := allocation.Allocate(allocationLines(submission.Items), submission.CartTotalCents, submission.OfferPriceCents)
	err = s.runStage(ctx, enums.StageEvaluateOffer, func(ctx context.Context) error {
		return s.tx.WithTx(ctx, func(tx *gorm.DB) error {
			if err := s.repo.WithTx(tx).UpdateOfferStatus(ctx, offer.ID, decision); err != nil {
				return err
			}
			return s.outbox.Emit(ctx, tx, outbox.DomainEvent{
				EventType:     enums.EventOfferEvaluated,
				AggregateType: enums.AggregateOffer,
				AggregateID:   offer.ID,
				Source:        eventSource,
				Data: payloads.OfferEvaluatedEvent{
					OfferID:         offer.ID,
					ShopID:          offer.ShopID,
					CartID:          offer.CartID,
					ConsumerID:      offer.ConsumerID,
					ProgramID:       offer.ProgramID,
					Status:          decision,
					OfferPriceCents: offer.OfferPriceCents,
					CartTotalCents:  offer.CartTotalCents,

					TotalAllowanceCents: rollup.TotalAllowanceCents,
					NORSalesCents:       rollup.NORSalesCents,
					GrossMarginPct:      rollup.GrossMarginPct,
				},
			})
		})
	})
	if err != nil {
		return nil, err
	}
	offer.Status = decision
	evalCtx := s.logg.WithFields(ctx, map[string]any{
		"nor_sales_cents":  rollup.NORSalesCents,
		"gross_margin_pct": rollup.GrossMarginPct,
	})
	s.logg.Info(evalCtx, fmt.Sprintf("offer evaluated as %s", decision))
	if s.metrics != nil {
		s.metrics.IncOutcome(decision.String())
	}

	result := &PipelineResult{
		OfferID:         offer.ID,
		Status:          decision,
		OfferPriceCents: offer.OfferPriceCents,
	}
	if decision == enums.OfferStatusPendingReview {
		result.ExpiryMinutes = &expiryMinutes
	}
	if decision != enums.OfferStatusAutoAccepted {
		return result, nil
	}

	var discount *models.Discount
	err = s.runStage(ctx, enums.StageCreateDiscount, func(ctx context.Context) error {
		var stageErr error
		discount, stageErr = s.repo.UpsertDiscount(ctx, &models.Discount{
			OfferID:    offer.ID,
			ShopID:     offer.ShopID,
			Code:       DiscountCode(offer.ID),
			Title:      fmt.Sprintf("Accepted offer %s", offer.ID),
			ValueCents: offer.CartTotalCents - offer.OfferPriceCents,
			Status:     enums.DiscountStatusPending,
		})
		return stageErr
	})
	if err != nil {
		return nil, err
	}

	var request shopify.DiscountRequest
	err = s.runStage(ctx, enums.StageBuildRequest, func(ctx context.Context) error {
		if discount.ValueCents <= 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "discount value must be positive")
		}
		request = shopify.DiscountRequest{
			Title:           discount.Title,
			Code:            discount.Code,
			ValueCents:      discount.ValueCents,
			OncePerCustomer: true,
			CombinesWith:    program.CombinesWith,
			StartsAt:        s.now().UTC(),
			EndsAt:          offer.ExpiresAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	platformResult, callErr := s.platform.CreateDiscount(ctx, shop.Domain, request)
	if callErr != nil {
		s.failStage(ctx, enums.StageCallPlatform, callErr)
	}

	// The platform outcome is recorded whether the call worked or not, so an
	// auto-accepted offer with no usable code stays queryable.
	recordErr := s.runStage(ctx, enums.StageRecordResponse, func(ctx context.Context) error {
		return s.recordPlatformOutcome(ctx, discount, platformResult, callErr)
	})
	if recordErr != nil {
		return nil, recordErr
	}
	if callErr != nil {
		return nil, stageErr(enums.StageCallPlatform, callErr)
	}

	code := platformResult.Code
	if code == "" {
		code = discount.Code
	}
	checkoutURL := CheckoutURL(shop.StorefrontURL, code)
	result.DiscountCode = &code
	result.ExpiryMinutes = &expiryMinutes
	result.CheckoutURL = &checkoutURL
	s.logg.Info(ctx, "discount issued")
	return result, nil
}

func (s *service) GetOffer(ctx context.Context, shopID, offerID uuid.UUID) (*OfferDetail, error) {
	detail, err := s.repo.FindOfferDetail(ctx, shopID, offerID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "offer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load offer detail")
	}
	return detail, nil
}

// ListOffers pages a shop's offers for the reviewing surface, newest first.
func (s *service) ListOffers(ctx context.Context, input ListInput) (*OfferPage, error) {
	cursor, err := pagination.ParseCursor(input.Params.Cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}
	limit := pagination.NormalizeLimit(input.Params.Limit)
	offers, err := s.repo.ListOffers(ctx, OfferListQuery{
		ShopID: input.ShopID,
		Status: input.Status,
		Cursor: cursor,
		Limit:  pagination.LimitWithBuffer(input.Params.Limit),
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list offers")
	}
	page := &OfferPage{Offers: offers}
	if len(offers) > limit {
		page.Offers = offers[:limit]
		last := page.Offers[limit-1]
		page.NextCursor = pagination.EncodeCursor(pagination.Cursor{
			CreatedAt: last.CreatedAt,
			ID:        last.ID,
		})
	}
	return page, nil
}

// TransitionOffer applies a reviewer or consumer action to an offer.
// Terminal offers never move again.
func (s *service) TransitionOffer(ctx context.Context, input TransitionInput) (*models.Offer, error) {
	offer, err := s.repo.FindOffer(ctx, input.ShopID, input.OfferID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "offer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load offer")
	}
	if !enums.ValidOfferTransition(offer.Status, input.NextStatus) {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
			fmt.Sprintf("cannot move offer from %s to %s", offer.Status, input.NextStatus))
	}
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).UpdateOfferStatus(ctx, offer.ID, input.NextStatus)
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update offer status")
	}
	offer.Status = input.NextStatus
	return offer, nil
}

// ForecastCounter evaluates a candidate counter-offer without persisting
// anything. Reviewers call this repeatedly while comparing shapes.
func (s *service) ForecastCounter(ctx context.Context, input CounterInput) (*forecast.Evaluation, error) {
	_, evaluation, err := s.forecastFor(ctx, input)
	if err != nil {
		return nil, err
	}
	return evaluation, nil
}

// CreateCounterOffer persists the chosen counter together with the forecast
// captured at decision time and moves the offer to reviewed_countered.
func (s *service) CreateCounterOffer(ctx context.Context, input CounterInput) (*models.CounterOffer, error) {
	detail, evaluation, err := s.forecastFor(ctx, input)
	if err != nil {
		return nil, err
	}
	if !enums.ValidOfferTransition(detail.Offer.Status, enums.OfferStatusReviewedCountered) {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
			fmt.Sprintf("cannot counter an offer in status %s", detail.Offer.Status))
	}

	cfg := counterConfig(input)
	counter := &models.CounterOffer{
		OfferID:              detail.Offer.ID,
		ShopID:               input.ShopID,
		Type:                 input.Type,
		Config:               cfg,
		OriginalMarginCents:  evaluation.Margin.OriginalMarginCents,
		OriginalMarginPct:    evaluation.Margin.OriginalMarginPct,
		EstimatedMarginCents: evaluation.Margin.EstimatedMarginCents,
		EstimatedMarginPct:   evaluation.Margin.EstimatedMarginPct,
		MarginImpactCents:    evaluation.Margin.MarginImpactCents,
		Probability:          evaluation.Probability.Probability,
		Confidence:           evaluation.Probability.Confidence,
		ExpectedRevenueCents: evaluation.ExpectedRevenueCents,
		ExpectedMarginCents:  evaluation.ExpectedMarginCents,
		Score:                evaluation.Score,
		Recommendation:       evaluation.Recommendation,
		Rationale:            evaluation.Rationale,
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if _, err := repo.CreateCounterOffer(ctx, counter); err != nil {
			return err
		}
		if err := repo.UpdateOfferStatus(ctx, detail.Offer.ID, enums.OfferStatusReviewedCountered); err != nil {
			return err
		}
		return s.outbox.Emit(ctx, tx, outbox.DomainEvent{
			EventType:     enums.EventCounterRecorded,
			AggregateType: enums.AggregateOffer,
			AggregateID:   detail.Offer.ID,
			Source:        eventSource,
			Data: payloads.CounterRecordedEvent{
				CounterOfferID: counter.ID,
				OfferID:        detail.Offer.ID,
				ShopID:         input.ShopID,
				Type:           input.Type,
				Recommendation: counter.Recommendation,
			},
		})
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persist counter offer")
	}
	return counter, nil
}

func (s *service) forecastFor(ctx context.Context, input CounterInput) (*OfferDetail, *forecast.Evaluation, error) {
	if !input.Type.IsValid() {
		return nil, nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown counter type")
	}
	detail, err := s.GetOffer(ctx, input.ShopID, input.OfferID)
	if err != nil {
		return nil, nil, err
	}

	cogs := 0
	for _, item := range detail.Cart.Items {
		cogs += item.UnitCostCents * item.Quantity
	}
	segment := input.Segment
	if segment == "" {
		segment = enums.PortfolioNew
	}

	evaluation := forecast.Evaluate(forecast.Input{
		Totals: forecast.CartTotals{
			CartTotalCents:       detail.Offer.CartTotalCents,
			COGSCents:            cogs,
			ShippingRevenueCents: detail.Cart.ShippingCents,
			ShippingCostCents:    input.ShippingCostCents,
		},
		Type:    input.Type,
		Config:  counterConfig(input),
		Segment: segment,
		History: input.History,
	})
	return detail, &evaluation, nil
}

// recordPlatformOutcome writes the raw platform response and final status on
// the discount row and emits the matching event, all in one transaction.
func (s *service) recordPlatformOutcome(ctx context.Context, discount *models.Discount, result *shopify.DiscountResult, callErr error) error {
	updates := map[string]any{}
	event := outbox.DomainEvent{
		AggregateType: enums.AggregateDiscount,
		AggregateID:   discount.ID,
		Source:        eventSource,
	}

	if result != nil && len(result.Raw) > 0 {
		updates["platform_response"] = result.Raw
	}

	if callErr != nil {
		updates["status"] = enums.DiscountStatusFailed
		event.EventType = enums.EventDiscountFailed
		event.Data = payloads.DiscountFailedEvent{
			DiscountID: discount.ID,
			OfferID:    discount.OfferID,
			ShopID:     discount.ShopID,
			Reason:     callErr.Error(),
		}
	} else {
		issuedAt := s.now().UTC()
		platformID := fmt.Sprintf("%d", result.DiscountID)
		updates["status"] = enums.DiscountStatusIssued
		updates["platform_discount_id"] = platformID
		updates["issued_at"] = issuedAt
		// The platform may normalize the code; the persisted value and
		// the event must both carry whatever it settled on.
		issuedCode := discount.Code
		if result.Code != "" {
			updates["code"] = result.Code
			issuedCode = result.Code
		}
		event.EventType = enums.EventDiscountIssued
		event.Data = payloads.DiscountIssuedEvent{
			DiscountID:         discount.ID,
			OfferID:            discount.OfferID,
			ShopID:             discount.ShopID,
			Code:               issuedCode,
			ValueCents:         discount.ValueCents,
			PlatformDiscountID: platformID,
		}
	}

	return s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).UpdateDiscount(ctx, discount.ID, updates); err != nil {
			return err
		}
		return s.outbox.Emit(ctx, tx, event)
	})
}

func (s *service) runStage(ctx context.Context, stage enums.PipelineStage, fn func(ctx context.Context) error) error {
	ctx = s.logg.WithStage(ctx, stage.String())
	start := time.Now()
	err := fn(ctx)
	if s.metrics != nil {
		s.metrics.ObserveStage(stage.String(), time.Since(start))
	}
	if err != nil {
		s.failStage(ctx, stage, err)
		return stageErr(stage, err)
	}
	return nil
}

func (s *service) failStage(ctx context.Context, stage enums.PipelineStage, err error) {
	if s.metrics != nil {
		s.metrics.IncStageFailure(stage.String())
	}
	s.logg.Error(ctx, fmt.Sprintf("pipeline stage %s failed", stage), err)
}

// decide applies the program thresholds to the offer ratio. Rates are basis
// points of cart total.
func decide(program *models.Program, offerPriceCents, cartTotalCents int) enums.OfferStatus {
	ratioBps := int(int64(offerPriceCents) * 10000 / int64(cartTotalCents))
	switch {
	case ratioBps >= program.AcceptRateBps:
		return enums.OfferStatusAutoAccepted
	case ratioBps < program.DeclineRateBps:
		return enums.OfferStatusAutoDeclined
	default:
		return enums.OfferStatusPendingReview
	}
}

func allocationLines(items []SubmissionItem) []allocation.Line {
	lines := make([]allocation.Line, 0, len(items))
	for _, item := range items {
		lines = append(lines, allocation.Line{
			UnitSellCents: item.UnitPriceCents,
			UnitCostCents: item.UnitCostCents,
			Quantity:      item.Quantity,
		})
	}
	return lines
}

// DiscountCode derives the code deterministically from the offer id so a
// retry regenerates the same code.
func DiscountCode(offerID uuid.UUID) string {
	compact := strings.ReplaceAll(offerID.String(), "-", "")
	return "PROPHET-" + strings.ToUpper(compact[:12])
}

// CheckoutURL appends the discount code to the shop's storefront cart URL.
func CheckoutURL(storefrontURL, code string) string {
	return strings.TrimRight(storefrontURL, "/") + "/cart?discount=" + url.QueryEscape(code)
}

func counterConfig(input CounterInput) types.CounterConfig {
	if input.Config != nil {
		return *input.Config
	}
	return counters.DefaultConfig(input.Type)
}

func validateSubmission(submission Submission) error {
	switch {
	case submission.ShopID == uuid.Nil:
		return pkgerrors.New(pkgerrors.CodeValidation, "shop id is required")
	case strings.TrimSpace(submission.CartToken) == "":
		return pkgerrors.New(pkgerrors.CodeValidation, "cart token is required")
	case strings.TrimSpace(submission.Email) == "":
		return pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	case submission.CartTotalCents <= 0:
		return pkgerrors.New(pkgerrors.CodeValidation, "cart total must be positive")
	case submission.OfferPriceCents <= 0:
		return pkgerrors.New(pkgerrors.CodeValidation, "offer price must be positive")
	case submission.OfferPriceCents > submission.CartTotalCents:
		return pkgerrors.New(pkgerrors.CodeValidation, "offer price cannot exceed cart total")
	case len(submission.Items) == 0:
		return pkgerrors.New(pkgerrors.CodeValidation, "cart items are required")
	}
	for _, item := range submission.Items {
		if strings.TrimSpace(item.VariantID) == "" {
			return pkgerrors.New(pkgerrors.CodeValidation, "cart item variant id is required")
		}
		if item.Quantity <= 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "cart item quantity must be positive")
		}
	}
	return nil
}
