package cron

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/c-e-daly/prophet-sub001/pkg/db/models"
	"github.com/c-e-daly/prophet-sub001/pkg/enums"
	"github.com/c-e-daly/prophet-sub001/pkg/outbox"
	"github.com/c-e-daly/prophet-sub001/pkg/outbox/payloads"
)

type fakeTxRunner struct{}

func (fakeTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

type fakeOutboxService struct {
	events []outbox.DomainEvent
}

func (f *fakeOutboxService) EmitIfNotExists(ctx context.Context, tx *gorm.DB, event outbox.DomainEvent) error {
	f.events = append(f.events, event)
	return nil
}

type fakeExpiredReader struct {
	offers []models.Offer
	limit  int
}

func (f *fakeExpiredReader) FindExpiredPendingOffers(ctx context.Context, cutoff time.Time, limit int) ([]models.Offer, error) {
	f.limit = limit
	return f.offers, nil
}

type offerStatusUpdate struct {
	offerID uuid.UUID
	status  enums.OfferStatus
}

type cartStatusUpdate struct {
	cartID uuid.UUID
	status enums.CartStatus
}

type fakeOfferRepo struct {
	currentStatus   map[uuid.UUID]enums.OfferStatus
	failOfferUpdate map[uuid.UUID]error
	offerUpdates    []offerStatusUpdate
	cartUpdates     []cartStatusUpdate
	lookedUp        []uuid.UUID
	offersByID      map[uuid.UUID]models.Offer
}

func (f *fakeOfferRepo) FindOffer(ctx context.Context, shopID, offerID uuid.UUID) (*models.Offer, error) {
	f.lookedUp = append(f.lookedUp, offerID)
	offer, ok := f.offersByID[offerID]
	if !ok {
		return nil, fmt.Errorf("offer not found: %s", offerID)
	}
	if status, ok := f.currentStatus[offerID]; ok {
		offer.Status = status
	}
	return &offer, nil
}

func (f *fakeOfferRepo) UpdateOfferStatus(ctx context.Context, offerID uuid.UUID, status enums.OfferStatus) error {
	if err := f.failOfferUpdate[offerID]; err != nil {
		return err
	}
	f.offerUpdates = append(f.offerUpdates, offerStatusUpdate{offerID: offerID, status: status})
	return nil
}

func (f *fakeOfferRepo) UpdateCartStatus(ctx context.Context, cartID uuid.UUID, status enums.CartStatus) error {
	f.cartUpdates = append(f.cartUpdates, cartStatusUpdate{cartID: cartID, status: status})
	return nil
}

func stalePendingOffer() models.Offer {
	expires := time.Now().UTC().Add(-time.Hour)
	return models.Offer{
		ID:              uuid.New(),
		ShopID:          uuid.New(),
		CartID:          uuid.New(),
		ConsumerID:      uuid.New(),
		ProgramID:       uuid.New(),
		OfferPriceCents: 8000,
		CartTotalCents:  10000,
		Status:          enums.OfferStatusPendingReview,
		ExpiresAt:       &expires,
	}
}

func newOfferExpiryJobTest(t *testing.T, reader *fakeExpiredReader, repo *fakeOfferRepo) (*offerExpiryJob, *fakeOutboxService) {
	t.Helper()
	outboxSvc := &fakeOutboxService{}
	jobIface, err := NewOfferExpiryJob(OfferExpiryJobParams{
		Logger:        cronTestLogger(),
		DB:            fakeTxRunner{},
		ExpiredReader: reader,
		Outbox:        outboxSvc,
		BatchSize:     50,
		RepoFactory: func(tx *gorm.DB) transactionalOfferRepo {
			return repo
		},
	})
	if err != nil {
		t.Fatalf("NewOfferExpiryJob: %v", err)
	}
	job, ok := jobIface.(*offerExpiryJob)
	if !ok {
		t.Fatalf("expected offerExpiryJob, got %T", jobIface)
	}
	return job, outboxSvc
}

func TestOfferExpiryJobExpiresStaleOffers(t *testing.T) {
	offer := stalePendingOffer()
	reader := &fakeExpiredReader{offers: []models.Offer{offer}}
	repo := &fakeOfferRepo{offersByID: map[uuid.UUID]models.Offer{offer.ID: offer}}
	job, outboxSvc := newOfferExpiryJobTest(t, reader, repo)

	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if reader.limit != 50 {
		t.Fatalf("expected batch size 50, got %d", reader.limit)
	}
	if len(repo.offerUpdates) != 1 || repo.offerUpdates[0].status != enums.OfferStatusExpired {
		t.Fatalf("unexpected offer updates: %+v", repo.offerUpdates)
	}
	if len(repo.cartUpdates) != 1 || repo.cartUpdates[0].status != enums.CartStatusExpired {
		t.Fatalf("unexpected cart updates: %+v", repo.cartUpdates)
	}
	if repo.cartUpdates[0].cartID != offer.CartID {
		t.Fatalf("expected cart %s, got %s", offer.CartID, repo.cartUpdates[0].cartID)
	}
	if len(outboxSvc.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(outboxSvc.events))
	}
	event := outboxSvc.events[0]
	if event.EventType != enums.EventOfferExpired {
		t.Fatalf("unexpected event type: %s", event.EventType)
	}
	if event.AggregateID != offer.ID {
		t.Fatalf("unexpected aggregate id: %s", event.AggregateID)
	}
	payload, ok := event.Data.(payloads.OfferExpiredEvent)
	if !ok {
		t.Fatalf("expected offer expired payload, got %T", event.Data)
	}
	if payload.OfferID != offer.ID || payload.CartID != offer.CartID {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if payload.ExpiredAt.IsZero() {
		t.Fatal("expected expired timestamp to be set")
	}
}

func TestOfferExpiryJobSkipsOffersDecidedMeanwhile(t *testing.T) {
	offer := stalePendingOffer()
	reader := &fakeExpiredReader{offers: []models.Offer{offer}}
	repo := &fakeOfferRepo{
		offersByID:    map[uuid.UUID]models.Offer{offer.ID: offer},
		currentStatus: map[uuid.UUID]enums.OfferStatus{offer.ID: enums.OfferStatusReviewedAccepted},
	}
	job, outboxSvc := newOfferExpiryJobTest(t, reader, repo)

	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(repo.offerUpdates) != 0 {
		t.Fatalf("expected no offer updates, got %+v", repo.offerUpdates)
	}
	if len(repo.cartUpdates) != 0 {
		t.Fatalf("expected no cart updates, got %+v", repo.cartUpdates)
	}
	if len(outboxSvc.events) != 0 {
		t.Fatalf("expected no events, got %d", len(outboxSvc.events))
	}
}

func TestOfferExpiryJobContinuesAfterFailure(t *testing.T) {
	broken := stalePendingOffer()
	healthy := stalePendingOffer()
	reader := &fakeExpiredReader{offers: []models.Offer{broken, healthy}}
	repo := &fakeOfferRepo{
		offersByID: map[uuid.UUID]models.Offer{
			broken.ID:  broken,
			healthy.ID: healthy,
		},
		failOfferUpdate: map[uuid.UUID]error{broken.ID: fmt.Errorf("write refused")},
	}
	job, outboxSvc := newOfferExpiryJobTest(t, reader, repo)

	err := job.Run(context.Background())
	if err == nil {
		t.Fatal("expected aggregated error")
	}
	if len(repo.offerUpdates) != 1 || repo.offerUpdates[0].offerID != healthy.ID {
		t.Fatalf("expected only healthy offer expired, got %+v", repo.offerUpdates)
	}
	if len(outboxSvc.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(outboxSvc.events))
	}
	if outboxSvc.events[0].AggregateID != healthy.ID {
		t.Fatalf("unexpected event aggregate: %s", outboxSvc.events[0].AggregateID)
	}
}
