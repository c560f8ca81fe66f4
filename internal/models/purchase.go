package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/shell-market/internal/money"
)

// PurchaseDB records that a buyer owns a listing.
type PurchaseDB struct {
	ID          uuid.UUID    `json:"id" db:"id"`
	BuyerID     uuid.UUID    `json:"buyer_id" db:"buyer_id"`
	ListingID   uuid.UUID    `json:"listing_id" db:"listing_id"`
	Price       money.Amount `json:"price" db:"price"`
	Delivered   bool         `json:"delivered" db:"delivered"`
	DeliveredAt *time.Time   `json:"delivered_at,omitempty" db:"delivered_at"`
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`
}
