package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/shell-market/internal/models"
	"github.com/sbilibin2017/shell-market/internal/money"
	"github.com/sbilibin2017/shell-market/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestStripeWebhookHandler(t *testing.T) {
	payload := `{"id":"evt_1","type":"payment_intent.succeeded"}`

	tests := []struct {
		name         string
		signature    string
		mockSetup    func(m *MockWebhookProcessor)
		expectedCode int
		expectedBody string
	}{
		{
			name:      "accepted",
			signature: "t=1,v1=abc",
			mockSetup: func(m *MockWebhookProcessor) {
				m.EXPECT().HandleProviderWebhook(gomock.Any(), []byte(payload), "t=1,v1=abc").Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"received":true}`,
		},
		{
			name:         "missing signature",
			mockSetup:    func(m *MockWebhookProcessor) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Missing signature"}`,
		},
		{
			name:      "bad signature",
			signature: "t=1,v1=forged",
			mockSetup: func(m *MockWebhookProcessor) {
				m.EXPECT().
					HandleProviderWebhook(gomock.Any(), gomock.Any(), "t=1,v1=forged").
					Return(errors.Join(models.ErrInvalidSignature, errors.New("no valid signature")))
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid signature"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := NewMockWebhookProcessor(ctrl)
			tt.mockSetup(svc)

			req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", strings.NewReader(payload))
			if tt.signature != "" {
				req.Header.Set("Stripe-Signature", tt.signature)
			}
			rr := httptest.NewRecorder()
			NewStripeWebhookHandler(svc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestSettleDepositHandler(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		outcome      models.DepositOutcome
		err          error
		expectedCode int
	}{
		{
			name:         "confirmed",
			body:         `{"success":true,"chargeId":"tx_onchain"}`,
			outcome:      models.DepositOutcome{Success: true, ChargeID: "tx_onchain"},
			expectedCode: http.StatusOK,
		},
		{
			name:         "rejected",
			body:         `{"success":false,"failureReason":"never paid"}`,
			outcome:      models.DepositOutcome{FailureReason: "never paid"},
			expectedCode: http.StatusOK,
		},
		{
			name:         "unknown reference",
			body:         `{"success":true}`,
			outcome:      models.DepositOutcome{Success: true},
			err:          services.ErrDepositNotFound,
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := NewMockDepositSettler(ctrl)
			call := svc.EXPECT().SettleDeposit(gomock.Any(), "crypto_1", tt.outcome)
			if tt.err != nil {
				call.Return(nil, tt.err)
			} else {
				call.Return(&models.TransactionDB{Type: models.TxDeposit, Status: models.TxCompleted}, nil)
			}

			rr := httptest.NewRecorder()
			req := newRequest(http.MethodPost, "/admin/deposits/crypto_1/settle", tt.body, nil, map[string]string{"reference": "crypto_1"})
			NewSettleDepositHandler(svc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestReconcileHandler(t *testing.T) {
	id := uuid.New()

	ctrl := gomock.NewController(t)
	svc := NewMockReconciler(ctrl)
	svc.EXPECT().
		Reconcile(gomock.Any(), id).
		Return(&models.Reconciliation{AccountID: id, Actual: money.FromUnits(85), Expected: money.FromUnits(85)}, nil)

	rr := httptest.NewRecorder()
	NewReconcileHandler(svc).ServeHTTP(rr, newRequest(http.MethodGet, "/admin/accounts/"+id.String()+"/reconcile", "", nil, map[string]string{"id": id.String()}))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"account_id":"`+id.String()+`","actual":85,"expected":85,"drift":0}`, rr.Body.String())
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name         string
		pingErr      error
		expectedCode int
		expectedBody string
	}{
		{"healthy", nil, http.StatusOK, `{"status":"ok"}`},
		{"database down", errors.New("connection refused"), http.StatusServiceUnavailable, `{"status":"unavailable"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			db := NewMockPinger(ctrl)
			db.EXPECT().PingContext(gomock.Any()).Return(tt.pingErr)

			rr := httptest.NewRecorder()
			NewHealthHandler(db).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
