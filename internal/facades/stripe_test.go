package facades

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/shell-market/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
)

const testWebhookSecret = "whsec_test_secret"

func signPayload(payload []byte, secret string, ts time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(fmt.Sprintf("%d.%s", ts.Unix(), payload)))
	return fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func newTestStripe(t *testing.T, handler http.HandlerFunc) *StripeFacade {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		HTTPClient:        srv.Client(),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	return NewStripeFacade("sk_test_123", testWebhookSecret, &stripe.Backends{API: backend, Connect: backend, Uploads: backend})
}

func TestStripeFacade_CreatePaymentIntent(t *testing.T) {
	txID := uuid.New()

	f := newTestStripe(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		assert.Equal(t, "2500", r.PostForm.Get("amount"))
		assert.Equal(t, "usd", r.PostForm.Get("currency"))
		assert.Equal(t, txID.String(), r.PostForm.Get("metadata[transactionId]"))
		assert.Equal(t, txID.String(), r.Header.Get("Idempotency-Key"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"pi_123","object":"payment_intent","amount":2500,"currency":"usd","client_secret":"pi_123_secret_abc","status":"requires_payment_method"}`)
	})

	pi, err := f.CreatePaymentIntent(context.Background(), models.PaymentIntentRequest{
		TransactionID: txID,
		AccountID:     uuid.New(),
		AccountName:   "alice",
		AmountCents:   2500,
		Currency:      "USD",
		Description:   "SHELL deposit",
	})

	require.NoError(t, err)
	assert.Equal(t, "pi_123", pi.ID)
	assert.Equal(t, "pi_123_secret_abc", pi.ClientSecret)
	assert.Equal(t, int64(2500), pi.AmountCents)
}

func TestStripeFacade_CreatePaymentIntent_ProviderError(t *testing.T) {
	f := newTestStripe(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		fmt.Fprint(w, `{"error":{"type":"card_error","message":"Your card was declined."}}`)
	})

	_, err := f.CreatePaymentIntent(context.Background(), models.PaymentIntentRequest{TransactionID: uuid.New(), AmountCents: 500, Currency: "USD"})
	assert.ErrorIs(t, err, models.ErrProvider)
}

func TestStripeFacade_ParseWebhook(t *testing.T) {
	f := NewStripeFacade("sk_test_123", testWebhookSecret, nil)

	succeeded := []byte(`{"id":"evt_1","object":"event","type":"payment_intent.succeeded","data":{"object":{"id":"pi_1","object":"payment_intent","amount":2500,"latest_charge":"ch_1","metadata":{"transactionId":"abc"}}}}`)
	failed := []byte(`{"id":"evt_2","object":"event","type":"payment_intent.payment_failed","data":{"object":{"id":"pi_2","object":"payment_intent","amount":900,"last_payment_error":{"message":"Your card has insufficient funds."}}}}`)
	other := []byte(`{"id":"evt_3","object":"event","type":"customer.created","data":{"object":{"id":"cus_1","object":"customer"}}}`)
	malformed := []byte(`{"id":"evt_4","object":"event","type":"payment_intent.succeeded","data":{"object":{"id":"pi_4","object":"payment_intent","amount":"lots"}}}`)

	t.Run("succeeded", func(t *testing.T) {
		ev, err := f.ParseWebhook(succeeded, signPayload(succeeded, testWebhookSecret, time.Now()))
		require.NoError(t, err)
		assert.Equal(t, models.EventPaymentSucceeded, ev.Type)
		assert.Equal(t, "pi_1", ev.PaymentIntentID)
		assert.Equal(t, "ch_1", ev.ChargeID)
		assert.Equal(t, int64(2500), ev.AmountCents)
		assert.Equal(t, "abc", ev.Metadata["transactionId"])
	})

	t.Run("failed", func(t *testing.T) {
		ev, err := f.ParseWebhook(failed, signPayload(failed, testWebhookSecret, time.Now()))
		require.NoError(t, err)
		assert.Equal(t, models.EventPaymentFailed, ev.Type)
		assert.Equal(t, "pi_2", ev.PaymentIntentID)
		assert.Equal(t, "Your card has insufficient funds.", ev.FailureReason)
	})

	t.Run("other events pass through", func(t *testing.T) {
		ev, err := f.ParseWebhook(other, signPayload(other, testWebhookSecret, time.Now()))
		require.NoError(t, err)
		assert.Equal(t, "customer.created", ev.Type)
		assert.Empty(t, ev.PaymentIntentID)
	})

	t.Run("signed but undecodable payment intent", func(t *testing.T) {
		_, err := f.ParseWebhook(malformed, signPayload(malformed, testWebhookSecret, time.Now()))
		assert.ErrorIs(t, err, models.ErrMalformedEvent)
		assert.NotErrorIs(t, err, models.ErrInvalidSignature)
	})

	t.Run("bad signature", func(t *testing.T) {
		_, err := f.ParseWebhook(succeeded, signPayload(succeeded, "whsec_wrong", time.Now()))
		assert.ErrorIs(t, err, models.ErrInvalidSignature)
	})

	t.Run("stale timestamp", func(t *testing.T) {
		_, err := f.ParseWebhook(succeeded, signPayload(succeeded, testWebhookSecret, time.Now().Add(-time.Hour)))
		assert.ErrorIs(t, err, models.ErrInvalidSignature)
	})

	t.Run("tampered payload", func(t *testing.T) {
		sig := signPayload(succeeded, testWebhookSecret, time.Now())
		_, err := f.ParseWebhook(failed, sig)
		assert.ErrorIs(t, err, models.ErrInvalidSignature)
	})
}
