package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/shell-market/internal/models"
	"github.com/sbilibin2017/shell-market/internal/money"
	"github.com/sbilibin2017/shell-market/internal/services"
)

//go:generate mockgen -source=purchase.go -destination=purchase_mock.go -package=handlers

// Purchaser buys listings.
type Purchaser interface {
	Purchase(ctx context.Context, buyerID, listingID uuid.UUID) (*services.PurchaseResult, error)
}

// PurchaseResponse represents a completed purchase
// swagger:model PurchaseResponse
type PurchaseResponse struct {
	Purchase models.PurchaseDB `json:"purchase"`

	// Buyer balance after the purchase
	NewBalance money.Amount `json:"newBalance" swaggertype:"number"`

	// Transaction hash shared by the purchase, sale and fee rows
	// default: 0x9f...
	TxHash string `json:"txHash"`

	// Platform fee
	Fee money.Amount `json:"fee" swaggertype:"number"`

	// Amount credited to the seller
	SellerReceives money.Amount `json:"sellerReceives" swaggertype:"number"`
}

// NewPurchaseHandler returns an HTTP handler that buys a listing.
// @Summary Buy listing
// @Description Debit the buyer, credit the seller minus the platform fee and record the purchase
// @Tags listings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Success 200 {object} handlers.PurchaseResponse
// @Failure 400 {object} handlers.ErrorResponse "Own listing, already purchased, inactive or insufficient balance"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 404 {object} handlers.ErrorResponse "Listing not found"
// @Failure 409 {object} handlers.ErrorResponse "Concurrent update, retry"
// @Failure 429 {object} handlers.ErrorResponse "Too many requests"
// @Router /listings/{id}/buy [post]
func NewPurchaseHandler(svc Purchaser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}
		id, ok := idParam(w, r, "id")
		if !ok {
			return
		}

		res, err := svc.Purchase(r.Context(), p.AccountID, id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, PurchaseResponse{
			Purchase:       res.Purchase,
			NewBalance:     res.NewBalance,
			TxHash:         res.Reference,
			Fee:            res.Fee,
			SellerReceives: res.SellerReceives,
		})
	}
}
