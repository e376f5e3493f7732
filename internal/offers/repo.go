package offers

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/c-e-daly/prophet-sub001/internal/repo"
	"github.com/c-e-daly/prophet-sub001/pkg/db/models"
	"github.com/c-e-daly/prophet-sub001/pkg/enums"
)

type repository struct {
	repo.Base
}

// NewRepository builds an offers repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{Base: repo.NewBase(tx)}
}

// UpsertConsumer inserts or refreshes the consumer row keyed by (shop, email)
// and returns the canonical row. IDs are assigned client-side so the insert
// behaves the same on every backend.
func (r *repository) UpsertConsumer(ctx context.Context, consumer *models.Consumer) (*models.Consumer, error) {
	if consumer.ID == uuid.Nil {
		consumer.ID = uuid.New()
	}
	err := r.DB(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "shop_id"}, {Name: "email"}},
			DoUpdates: clause.Assignments(map[string]any{
				"phone":       consumer.Phone,
				"postal_code": consumer.PostalCode,
				"consent":     consumer.Consent,
				"updated_at":  time.Now().UTC(),
			}),
		}).
		Create(consumer).Error
	if err != nil {
		return nil, err
	}
	var out models.Consumer
	err = r.DB(ctx).
		Where("shop_id = ? AND email = ?", consumer.ShopID, consumer.Email).
		First(&out).Error
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpsertCart inserts or refreshes the cart snapshot keyed by (shop, token).
// Carts in a terminal status are left untouched; callers get the stored row
// back and decide whether a closed cart is acceptable.
func (r *repository) UpsertCart(ctx context.Context, cart *models.Cart) (*models.Cart, error) {
	if cart.ID == uuid.Nil {
		cart.ID = uuid.New()
	}
	err := r.DB(ctx).
		Omit("Items").
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "shop_id"}, {Name: "cart_token"}},
			Where: clause.Where{Exprs: []clause.Expression{
				clause.Expr{SQL: "carts.status NOT IN ?", Vars: []any{[]enums.CartStatus{
					enums.CartStatusClosedWon, enums.CartStatusClosedLost, enums.CartStatusArchived,
				}}},
			}},
			DoUpdates: clause.Assignments(map[string]any{
				"consumer_id":    cart.ConsumerID,
				"total_cents":    cart.TotalCents,
				"shipping_cents": cart.ShippingCents,
				"item_count":     cart.ItemCount,
				"currency":       cart.Currency,
				"status":         cart.Status,
				"updated_at":     time.Now().UTC(),
			}),
		}).
		Create(cart).Error
	if err != nil {
		return nil, err
	}
	var out models.Cart
	err = r.DB(ctx).
		Where("shop_id = ? AND cart_token = ?", cart.ShopID, cart.CartToken).
		First(&out).Error
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpsertCartItems writes line snapshots keyed by (cart, variant). Replays
// update quantity and prices in place rather than adding rows.
func (r *repository) UpsertCartItems(ctx context.Context, items []models.CartItem) error {
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
	}
	return r.DB(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cart_id"}, {Name: "variant_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"product_id", "sku", "name", "quantity", "unit_price_cents", "unit_cost_cents",
			}),
		}).
		Create(&items).Error
}

func (r *repository) CreateOffer(ctx context.Context, offer *models.Offer) (*models.Offer, error) {
	if offer.ID == uuid.Nil {
		offer.ID = uuid.New()
	}
	if err := r.DB(ctx).Create(offer).Error; err != nil {
		return nil, err
	}
	return offer, nil
}

func (r *repository) FindShop(ctx context.Context, shopID uuid.UUID) (*models.Shop, error) {
	var shop models.Shop
	err := r.DB(ctx).Where("id = ?", shopID).First(&shop).Error
	if err != nil {
		return nil, err
	}
	return &shop, nil
}

// FindActiveProgram returns the newest active program whose window covers the
// given instant. Programs with null bounds are open-ended on that side.
func (r *repository) FindActiveProgram(ctx context.Context, shopID uuid.UUID, at time.Time) (*models.Program, error) {
	var program models.Program
	err := r.DB(ctx).
		Where("shop_id = ? AND status = ?", shopID, enums.ProgramStatusActive).
		Where("starts_at IS NULL OR starts_at <= ?", at).
		Where("ends_at IS NULL OR ends_at > ?", at).
		Order("created_at DESC").
		First(&program).Error
	if err != nil {
		return nil, err
	}
	return &program, nil
}

func (r *repository) FindOffer(ctx context.Context, shopID, offerID uuid.UUID) (*models.Offer, error) {
	var offer models.Offer
	err := r.DB(ctx).
		Where("id = ? AND shop_id = ?", offerID, shopID).
		First(&offer).Error
	if err != nil {
		return nil, err
	}
	return &offer, nil
}

// FindExpiredPendingOffers returns offers still in review whose expiry window
// has passed, oldest first, bounded by limit.
func (r *repository) FindExpiredPendingOffers(ctx context.Context, cutoff time.Time, limit int) ([]models.Offer, error) {
	var offers []models.Offer
	query := r.DB(ctx).
		Where("status = ? AND expires_at IS NOT NULL AND expires_at < ?", enums.OfferStatusPendingReview, cutoff).
		Order("expires_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&offers).Error; err != nil {
		return nil, err
	}
	return offers, nil
}

// ListOffers pages a shop's offers newest first using a created_at+id keyset.
// The caller passes the buffered limit and trims the extra row itself.
func (r *repository) ListOffers(ctx context.Context, query OfferListQuery) ([]models.Offer, error) {
	var offers []models.Offer
	q := r.DB(ctx).
		Where("shop_id = ?", query.ShopID).
		Order("created_at DESC, id DESC")
	if query.Status != nil {
		q = q.Where("status = ?", *query.Status)
	}
	if query.Cursor != nil {
		q = q.Where("(created_at, id) < (?, ?)", query.Cursor.CreatedAt, query.Cursor.ID)
	}
	if query.Limit > 0 {
		q = q.Limit(query.Limit)
	}
	if err := q.Find(&offers).Error; err != nil {
		return nil, err
	}
	return offers, nil
}

func (r *repository) FindOfferDetail(ctx context.Context, shopID, offerID uuid.UUID) (*OfferDetail, error) {
	offer, err := r.FindOffer(ctx, shopID, offerID)
	if err != nil {
		return nil, err
	}

	var cart models.Cart
	err = r.DB(ctx).
		Preload("Items").
		Where("id = ?", offer.CartID).
		First(&cart).Error
	if err != nil {
		return nil, err
	}

	var consumer models.Consumer
	err = r.DB(ctx).Where("id = ?", offer.ConsumerID).First(&consumer).Error
	if err != nil {
		return nil, err
	}

	counters, err := r.ListCounterOffers(ctx, offer.ID)
	if err != nil {
		return nil, err
	}

	detail := &OfferDetail{
		Offer:    *offer,
		Cart:     cart,
		Consumer: consumer,
		Counters: counters,
	}

	var discount models.Discount
	err = r.DB(ctx).Where("offer_id = ?", offer.ID).First(&discount).Error
	switch {
	case err == nil:
		detail.Discount = &discount
	case err != gorm.ErrRecordNotFound:
		return nil, err
	}

	return detail, nil
}

func (r *repository) UpdateOfferStatus(ctx context.Context, offerID uuid.UUID, status enums.OfferStatus) error {
	return r.DB(ctx).
		Model(&models.Offer{}).
		Where("id = ?", offerID).
		Updates(map[string]any{
			"status":     status,
			"updated_at": time.Now().UTC(),
		}).Error
}

func (r *repository) UpdateCartStatus(ctx context.Context, cartID uuid.UUID, status enums.CartStatus) error {
	return r.DB(ctx).
		Model(&models.Cart{}).
		Where("id = ?", cartID).
		Updates(map[string]any{
			"status":     status,
			"updated_at": time.Now().UTC(),
		}).Error
}

// UpsertDiscount creates the discount row for an offer, or returns the row a
// previous attempt already created. At most one row exists per offer.
func (r *repository) UpsertDiscount(ctx context.Context, discount *models.Discount) (*models.Discount, error) {
	if discount.ID == uuid.Nil {
		discount.ID = uuid.New()
	}
	err := r.DB(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "offer_id"}},
			DoNothing: true,
		}).
		Create(discount).Error
	if err != nil {
		return nil, err
	}
	var out models.Discount
	err = r.DB(ctx).Where("offer_id = ?", discount.OfferID).First(&out).Error
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *repository) UpdateDiscount(ctx context.Context, discountID uuid.UUID, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now().UTC()
	return r.DB(ctx).
		Model(&models.Discount{}).
		Where("id = ?", discountID).
		Updates(updates).Error
}

func (r *repository) CreateCounterOffer(ctx context.Context, counter *models.CounterOffer) (*models.CounterOffer, error) {
	if counter.ID == uuid.Nil {
		counter.ID = uuid.New()
	}
	if err := r.DB(ctx).Create(counter).Error; err != nil {
		return nil, err
	}
	return counter, nil
}

func (r *repository) ListCounterOffers(ctx context.Context, offerID uuid.UUID) ([]models.CounterOffer, error) {
	var counters []models.CounterOffer
	err := r.DB(ctx).
		Where("offer_id = ?", offerID).
		Order("created_at ASC").
		Find(&counters).Error
	if err != nil {
		return nil, err
	}
	return counters, nil
}
