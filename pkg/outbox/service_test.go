package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/c-e-daly/prophet-sub001/pkg/db/models"
	"github.com/c-e-daly/prophet-sub001/pkg/enums"
	"github.com/c-e-daly/prophet-sub001/pkg/outbox/payloads"
)

func setupOutboxTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	events := `
CREATE TABLE IF NOT EXISTS outbox_events (
  id TEXT PRIMARY KEY,
  event_type TEXT NOT NULL,
  aggregate_type TEXT NOT NULL,
  aggregate_id TEXT NOT NULL,
  payload TEXT NOT NULL,
  created_at DATETIME,
  published_at DATETIME,
  attempt_count INTEGER NOT NULL DEFAULT 0,
  last_error TEXT
);`
	dlq := `
CREATE TABLE IF NOT EXISTS outbox_dlqs (
  id TEXT PRIMARY KEY,
  event_id TEXT NOT NULL,
  event_type TEXT NOT NULL,
  aggregate_type TEXT NOT NULL,
  aggregate_id TEXT NOT NULL,
  payload_json TEXT NOT NULL,
  error_reason TEXT NOT NULL,
  error_message TEXT,
  attempt_count INTEGER NOT NULL DEFAULT 0,
  failed_at DATETIME,
  created_at DATETIME
);`
	require.NoError(t, db.Exec(events).Error)
	require.NoError(t, db.Exec(dlq).Error)
	return db
}

func insertEvent(t *testing.T, db *gorm.DB, svc *Service, event DomainEvent) {
	t.Helper()
	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		return svc.Emit(context.Background(), tx, event)
	}))
}

func TestEmitWrapsPayloadInEnvelope(t *testing.T) {
	db := setupOutboxTestDB(t)
	svc := NewService(NewRepository(db), nil)

	offerID := uuid.New()
	insertEvent(t, db, svc, DomainEvent{
		EventType:     enums.EventOfferEvaluated,
		AggregateType: enums.AggregateOffer,
		AggregateID:   offerID,
		Source:        "pipeline",
		Data: payloads.OfferEvaluatedEvent{
			OfferID: offerID,
			Status:  enums.OfferStatusAutoAccepted,
		},
	})

	var row models.OutboxEvent
	require.NoError(t, db.First(&row).Error)
	assert.Equal(t, enums.EventOfferEvaluated, row.EventType)
	assert.Equal(t, offerID, row.AggregateID)
	assert.Nil(t, row.PublishedAt)

	var envelope PayloadEnvelope
	require.NoError(t, json.Unmarshal(row.Payload, &envelope))
	assert.Equal(t, 1, envelope.Version)
	assert.Equal(t, "pipeline", envelope.Source)
	assert.NotEmpty(t, envelope.EventID)

	var data payloads.OfferEvaluatedEvent
	require.NoError(t, json.Unmarshal(envelope.Data, &data))
	assert.Equal(t, offerID, data.OfferID)
	assert.Equal(t, enums.OfferStatusAutoAccepted, data.Status)
}

func TestEmitIfNotExistsSkipsDuplicates(t *testing.T) {
	db := setupOutboxTestDB(t)
	svc := NewService(NewRepository(db), nil)

	offerID := uuid.New()
	event := DomainEvent{
		EventType:     enums.EventOfferExpired,
		AggregateType: enums.AggregateOffer,
		AggregateID:   offerID,
		Data:          payloads.OfferExpiredEvent{OfferID: offerID},
	}

	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		return svc.EmitIfNotExists(context.Background(), tx, event)
	}))
	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		return svc.EmitIfNotExists(context.Background(), tx, event)
	}))

	var count int64
	require.NoError(t, db.Model(&models.OutboxEvent{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestFetchUnpublishedForPublishSkipsExhaustedRows(t *testing.T) {
	db := setupOutboxTestDB(t)
	repo := NewRepository(db)
	svc := NewService(repo, nil)

	insertEvent(t, db, svc, DomainEvent{
		EventType:     enums.EventDiscountIssued,
		AggregateType: enums.AggregateDiscount,
		AggregateID:   uuid.New(),
		Data:          payloads.DiscountIssuedEvent{Code: "A"},
	})
	insertEvent(t, db, svc, DomainEvent{
		EventType:     enums.EventDiscountFailed,
		AggregateType: enums.AggregateDiscount,
		AggregateID:   uuid.New(),
		Data:          payloads.DiscountFailedEvent{Reason: "boom"},
	})

	var rows []models.OutboxEvent
	require.NoError(t, db.Order("created_at ASC").Find(&rows).Error)
	require.Len(t, rows, 2)

	// Exhaust the second row's attempts.
	require.NoError(t, db.Model(&models.OutboxEvent{}).
		Where("id = ?", rows[1].ID).
		Update("attempt_count", 10).Error)

	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		fetched, err := repo.FetchUnpublishedForPublish(tx, 50, 10)
		if err != nil {
			return err
		}
		require.Len(t, fetched, 1)
		assert.Equal(t, rows[0].ID, fetched[0].ID)
		return nil
	}))
}

func TestMarkFailedIncrementsAttempts(t *testing.T) {
	db := setupOutboxTestDB(t)
	repo := NewRepository(db)
	svc := NewService(repo, nil)

	insertEvent(t, db, svc, DomainEvent{
		EventType:     enums.EventOfferEvaluated,
		AggregateType: enums.AggregateOffer,
		AggregateID:   uuid.New(),
		Data:          payloads.OfferEvaluatedEvent{},
	})

	var row models.OutboxEvent
	require.NoError(t, db.First(&row).Error)

	require.NoError(t, repo.MarkFailed(row.ID, errors.New("publish timeout")))
	require.NoError(t, db.First(&row).Error)
	assert.Equal(t, 1, row.AttemptCount)
	require.NotNil(t, row.LastError)
	assert.Equal(t, "publish timeout", *row.LastError)
	assert.Nil(t, row.PublishedAt)

	require.NoError(t, repo.MarkPublished(row.ID))
	require.NoError(t, db.First(&row).Error)
	assert.NotNil(t, row.PublishedAt)
}

func TestMarkTerminalParksRow(t *testing.T) {
	db := setupOutboxTestDB(t)
	repo := NewRepository(db)
	dlq := NewDLQRepository(db)
	svc := NewService(repo, nil)

	insertEvent(t, db, svc, DomainEvent{
		EventType:     enums.EventOfferEvaluated,
		AggregateType: enums.AggregateOffer,
		AggregateID:   uuid.New(),
		Data:          payloads.OfferEvaluatedEvent{},
	})

	var row models.OutboxEvent
	require.NoError(t, db.First(&row).Error)

	cause := errors.New("decoder not registered")
	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		msg := cause.Error()
		if err := dlq.InsertTx(tx, models.OutboxDLQ{
			ID:            uuid.New(),
			EventID:       row.ID,
			EventType:     row.EventType,
			AggregateType: row.AggregateType,
			AggregateID:   row.AggregateID,
			Payload:       row.Payload,
			ErrorReason:   enums.OutboxDLQReasonNonRetryable,
			ErrorMessage:  &msg,
		}); err != nil {
			return err
		}
		return repo.MarkTerminalTx(tx, row.ID, cause, 10)
	}))

	require.NoError(t, db.First(&row).Error)
	assert.NotNil(t, row.PublishedAt)
	assert.Equal(t, 10, row.AttemptCount)

	entry, err := dlq.FindByEventID(context.Background(), row.ID)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, enums.OutboxDLQReasonNonRetryable, entry.ErrorReason)
}
