package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/shell-market/internal/models"
)

// PurchaseRepository records listing ownership.
type PurchaseRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPurchaseRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PurchaseRepository {
	return &PurchaseRepository{db: db, txGetter: txGetter}
}

// Create inserts a purchase. A second purchase of the same listing by the same
// buyer yields models.ErrAlreadyExists.
func (r *PurchaseRepository) Create(ctx context.Context, purchase *models.PurchaseDB) error {
	query := `
		INSERT INTO purchases (id, buyer_id, listing_id, price, delivered, delivered_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING created_at
	`
	args := []any{purchase.ID, purchase.BuyerID, purchase.ListingID, purchase.Price, purchase.Delivered, purchase.DeliveredAt}

	err := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...).Scan(&purchase.CreatedAt)

	logQuery(query, args, purchase.ID, err)

	if hasPgCode(err, pgUniqueViolation) {
		return models.ErrAlreadyExists
	}
	return err
}

// Exists reports whether buyer already owns listing.
func (r *PurchaseRepository) Exists(ctx context.Context, buyerID, listingID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM purchases WHERE buyer_id = $1 AND listing_id = $2)`

	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &exists, query, buyerID, listingID)

	logQuery(query, []any{buyerID, listingID}, exists, err)

	return exists, err
}
