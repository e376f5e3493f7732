package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"gorm.io/gorm"

	"github.com/c-e-daly/prophet-sub001/internal/offers"
	"github.com/c-e-daly/prophet-sub001/pkg/db/models"
	"github.com/c-e-daly/prophet-sub001/pkg/enums"
	"github.com/c-e-daly/prophet-sub001/pkg/logger"
	"github.com/c-e-daly/prophet-sub001/pkg/outbox"
	"github.com/c-e-daly/prophet-sub001/pkg/outbox/payloads"
)

const defaultExpiryBatchSize = 200

// OfferExpiryJobParams configure the stale offer sweep.
type OfferExpiryJobParams struct {
	Logger        *logger.Logger
	DB            txRunner
	ExpiredReader expiredOfferReader
	Outbox        outboxEmitter
	BatchSize     int
	RepoFactory   offerRepoFactory
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type outboxEmitter interface {
	EmitIfNotExists(ctx context.Context, tx *gorm.DB, event outbox.DomainEvent) error
}

type expiredOfferReader interface {
	FindExpiredPendingOffers(ctx context.Context, cutoff time.Time, limit int) ([]models.Offer, error)
}

type transactionalOfferRepo interface {
	FindOffer(ctx context.Context, shopID, offerID uuid.UUID) (*models.Offer, error)
	UpdateOfferStatus(ctx context.Context, offerID uuid.UUID, status enums.OfferStatus) error
	UpdateCartStatus(ctx context.Context, cartID uuid.UUID, status enums.CartStatus) error
}

type offerRepoFactory func(tx *gorm.DB) transactionalOfferRepo

func defaultOfferRepo(tx *gorm.DB) transactionalOfferRepo {
	return offers.NewRepository(tx)
}

// NewOfferExpiryJob builds the cron job that times out offers left in review.
func NewOfferExpiryJob(params OfferExpiryJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.DB == nil {
		return nil, fmt.Errorf("db runner required")
	}
	if params.ExpiredReader == nil {
		return nil, fmt.Errorf("expired offers reader required")
	}
	if params.Outbox == nil {
		return nil, fmt.Errorf("outbox service required")
	}
	batchSize := params.BatchSize
	if batchSize <= 0 {
		batchSize = defaultExpiryBatchSize
	}
	repoFactory := params.RepoFactory
	if repoFactory == nil {
		repoFactory = defaultOfferRepo
	}
	return &offerExpiryJob{
		logg:        params.Logger,
		db:          params.DB,
		reader:      params.ExpiredReader,
		outbox:      params.Outbox,
		batchSize:   batchSize,
		repoFactory: repoFactory,
		now:         time.Now,
	}, nil
}

type offerExpiryJob struct {
	logg        *logger.Logger
	db          txRunner
	reader      expiredOfferReader
	outbox      outboxEmitter
	batchSize   int
	repoFactory offerRepoFactory
	now         func() time.Time
}

func (j *offerExpiryJob) Name() string { return "offer-expiry" }

func (j *offerExpiryJob) Run(ctx context.Context) error {
	cutoff := j.now().UTC()
	stale, err := j.reader.FindExpiredPendingOffers(ctx, cutoff, j.batchSize)
	if err != nil {
		return fmt.Errorf("query expired offers: %w", err)
	}
	var errs []error
	expired := 0
	for _, offer := range stale {
		if err := j.expireOffer(ctx, offer); err != nil {
			errs = append(errs, fmt.Errorf("expire offer %s: %w", offer.ID, err))
			continue
		}
		expired++
	}
	logCtx := j.logg.WithFields(ctx, map[string]any{
		"candidates": len(stale),
		"expired":    expired,
		"failed":     len(errs),
	})
	j.logg.Info(logCtx, "offer expiry sweep complete")
	return multierr.Combine(errs...)
}

func (j *offerExpiryJob) expireOffer(ctx context.Context, offer models.Offer) error {
	return j.db.WithTx(ctx, func(tx *gorm.DB) error {
		repo := j.repoFactory(tx)
		current, err := repo.FindOffer(ctx, offer.ShopID, offer.ID)
		if err != nil {
			return err
		}
		// A reviewer may have decided the offer between the sweep query
		// and this transaction.
		if current.Status != enums.OfferStatusPendingReview {
			return nil
		}
		if err := repo.UpdateOfferStatus(ctx, offer.ID, enums.OfferStatusExpired); err != nil {
			return err
		}
		if err := repo.UpdateCartStatus(ctx, offer.CartID, enums.CartStatusExpired); err != nil {
			return err
		}
		now := j.now().UTC()
		event := outbox.DomainEvent{
			EventType:     enums.EventOfferExpired,
			AggregateType: enums.AggregateOffer,
			AggregateID:   offer.ID,
			Version:       1,
			OccurredAt:    now,
			Data: payloads.OfferExpiredEvent{
				OfferID:   offer.ID,
				ShopID:    offer.ShopID,
				CartID:    offer.CartID,
				ExpiredAt: now,
			},
		}
		return j.outbox.EmitIfNotExists(ctx, tx, event)
	})
}
