package offers

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/c-e-daly/prophet-sub001/pkg/db/models"
	"github.com/c-e-daly/prophet-sub001/pkg/enums"
)

// Repository defines persistence operations for the offer pipeline tables.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	UpsertConsumer(ctx context.Context, consumer *models.Consumer) (*models.Consumer, error)
	UpsertCart(ctx context.Context, cart *models.Cart) (*models.Cart, error)
	UpsertCartItems(ctx context.Context, items []models.CartItem) error
	CreateOffer(ctx context.Context, offer *models.Offer) (*models.Offer, error)
	FindShop(ctx context.Context, shopID uuid.UUID) (*models.Shop, error)
	FindActiveProgram(ctx context.Context, shopID uuid.UUID, at time.Time) (*models.Program, error)
	FindOffer(ctx context.Context, shopID, offerID uuid.UUID) (*models.Offer, error)
	FindExpiredPendingOffers(ctx context.Context, cutoff time.Time, limit int) ([]models.Offer, error)
	FindOfferDetail(ctx context.Context, shopID, offerID uuid.UUID) (*OfferDetail, error)
	ListOffers(ctx context.Context, query OfferListQuery) ([]models.Offer, error)
	UpdateOfferStatus(ctx context.Context, offerID uuid.UUID, status enums.OfferStatus) error
	UpdateCartStatus(ctx context.Context, cartID uuid.UUID, status enums.CartStatus) error
	UpsertDiscount(ctx context.Context, discount *models.Discount) (*models.Discount, error)
	UpdateDiscount(ctx context.Context, discountID uuid.UUID, updates map[string]any) error
	CreateCounterOffer(ctx context.Context, counter *models.CounterOffer) (*models.CounterOffer, error)
	ListCounterOffers(ctx context.Context, offerID uuid.UUID) ([]models.CounterOffer, error)
}
