package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/shell-market/internal/models"
)

//go:generate mockgen -source=admin.go -destination=admin_mock.go -package=handlers

// DepositSettler confirms or rejects pending external deposits.
type DepositSettler interface {
	SettleDeposit(ctx context.Context, reference string, outcome models.DepositOutcome) (*models.TransactionDB, error)
}

// Reconciler compares a stored balance with the ledger.
type Reconciler interface {
	Reconcile(ctx context.Context, accountID uuid.UUID) (*models.Reconciliation, error)
}

// SettleDepositRequest represents the JSON body for a manual deposit settlement
// swagger:model SettleDepositRequest
type SettleDepositRequest struct {
	// Credit the deposit when true, fail it otherwise
	// required: true
	Success bool `json:"success"`

	ChargeID string `json:"chargeId"`

	FailureReason string `json:"failureReason" validate:"max=500"`
}

// TransactionResponse wraps a ledger transaction
// swagger:model TransactionResponse
type TransactionResponse struct {
	Transaction *models.TransactionDB `json:"transaction"`
}

// NewSettleDepositHandler returns an HTTP handler that settles a pending
// deposit by its external reference.
// @Summary Settle deposit
// @Description Confirm or reject a pending card or crypto deposit. Settling an already final deposit is a no-op.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param reference path string true "Payment intent or crypto payment ID"
// @Param settleDepositRequest body handlers.SettleDepositRequest true "Outcome"
// @Success 200 {object} handlers.TransactionResponse
// @Failure 403 {object} handlers.ErrorResponse "Admin only"
// @Failure 404 {object} handlers.ErrorResponse "Deposit not found"
// @Router /admin/deposits/{reference}/settle [post]
func NewSettleDepositHandler(svc DepositSettler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reference := chi.URLParam(r, "reference")
		if reference == "" {
			writeError(w, http.StatusNotFound, "Not found")
			return
		}

		var req SettleDepositRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		t, err := svc.SettleDeposit(r.Context(), reference, models.DepositOutcome{
			Success:       req.Success,
			ChargeID:      req.ChargeID,
			FailureReason: req.FailureReason,
		})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, TransactionResponse{Transaction: t})
	}
}

// NewReconcileHandler returns an HTTP handler that checks an account balance
// against the sum of its ledger effects.
// @Summary Reconcile account
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Success 200 {object} models.Reconciliation
// @Failure 403 {object} handlers.ErrorResponse "Admin only"
// @Failure 404 {object} handlers.ErrorResponse "Account not found"
// @Router /admin/accounts/{id}/reconcile [get]
func NewReconcileHandler(svc Reconciler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r, "id")
		if !ok {
			return
		}

		rec, err := svc.Reconcile(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, rec)
	}
}
