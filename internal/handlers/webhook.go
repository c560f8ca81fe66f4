package handlers

import (
	"context"
	"io"
	"net/http"
)

//go:generate mockgen -source=webhook.go -destination=webhook_mock.go -package=handlers

// maxWebhookBytes bounds provider webhook payloads.
const maxWebhookBytes = 64 << 10

// WebhookProcessor verifies and applies payment provider events.
type WebhookProcessor interface {
	HandleProviderWebhook(ctx context.Context, payload []byte, signature string) error
}

// WebhookResponse acknowledges a webhook delivery
// swagger:model WebhookResponse
type WebhookResponse struct {
	// default: true
	Received bool `json:"received"`
}

// NewStripeWebhookHandler returns an HTTP handler for Stripe events.
// @Summary Stripe webhook
// @Description Verify the event signature and finalize the matching deposit
// @Tags webhooks
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Event signature"
// @Success 200 {object} handlers.WebhookResponse
// @Failure 400 {object} handlers.ErrorResponse "Missing or invalid signature"
// @Failure 503 {object} handlers.ErrorResponse "Payment provider not configured"
// @Router /webhooks/stripe [post]
func NewStripeWebhookHandler(svc WebhookProcessor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		signature := r.Header.Get("Stripe-Signature")
		if signature == "" {
			writeError(w, http.StatusBadRequest, "Missing signature")
			return
		}

		payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBytes))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := svc.HandleProviderWebhook(r.Context(), payload, signature); err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, WebhookResponse{Received: true})
	}
}
