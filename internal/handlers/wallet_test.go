package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/shell-market/internal/middlewares"
	"github.com/sbilibin2017/shell-market/internal/models"
	"github.com/sbilibin2017/shell-market/internal/money"
	"github.com/sbilibin2017/shell-market/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalletHandler(t *testing.T) {
	caller := &middlewares.Principal{AccountID: uuid.New(), Role: models.RoleAgent}

	ctrl := gomock.NewController(t)
	svc := NewMockWalletReader(ctrl)
	svc.EXPECT().
		GetWallet(gomock.Any(), caller.AccountID).
		Return(&models.Wallet{Balance: money.FromUnits(100), Transactions: []models.TransactionDB{}}, nil)

	rr := httptest.NewRecorder()
	NewWalletHandler(svc).ServeHTTP(rr, newRequest(http.MethodGet, "/wallet", "", caller, nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"balance":100,"transactions":[]}`, rr.Body.String())
}

func TestDepositHandler(t *testing.T) {
	caller := &middlewares.Principal{AccountID: uuid.New(), Role: models.RoleHuman}

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockInstantDepositor)
		expectedCode int
		expectedBody string
	}{
		{
			name: "credited",
			body: `{"amount":50,"method":"paypal"}`,
			mockSetup: func(m *MockInstantDepositor) {
				m.EXPECT().
					InstantDeposit(gomock.Any(), caller.AccountID, money.FromUnits(50), "paypal").
					Return(&services.DepositResult{
						NewBalance:  money.FromUnits(150),
						Transaction: models.TransactionDB{Type: models.TxDeposit, Status: models.TxCompleted, Amount: money.FromUnits(50)},
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "zero amount",
			body: `{"amount":0}`,
			mockSetup: func(m *MockInstantDepositor) {
				m.EXPECT().
					InstantDeposit(gomock.Any(), caller.AccountID, money.Amount(0), "").
					Return(nil, services.ErrInvalidAmount)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := NewMockInstantDepositor(ctrl)
			tt.mockSetup(svc)

			rr := httptest.NewRecorder()
			NewDepositHandler(svc).ServeHTTP(rr, newRequest(http.MethodPost, "/wallet/deposit", tt.body, caller, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Contains(t, rr.Body.String(), `"newBalance":150.00`)
				assert.Contains(t, rr.Body.String(), `"type":"DEPOSIT"`)
			}
		})
	}
}

func TestCardDepositHandler(t *testing.T) {
	caller := &middlewares.Principal{AccountID: uuid.New(), Role: models.RoleHuman}
	txID := uuid.New()

	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{"intent created", nil, http.StatusOK, ""},
		{"stripe not configured", services.ErrProviderNotConfigured, http.StatusServiceUnavailable, `{"error":"Stripe is not configured"}`},
		{"stripe failure", errors.Join(models.ErrProvider, errors.New("card_declined")), http.StatusBadGateway, `{"error":"Payment provider error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := NewMockExternalDepositCreator(ctrl)
			call := svc.EXPECT().CreateCardDeposit(gomock.Any(), caller.AccountID, money.FromUnits(25))
			if tt.err != nil {
				call.Return(nil, tt.err)
			} else {
				call.Return(&services.CardDepositResult{ClientSecret: "pi_1_secret_2", TransactionID: txID, Amount: money.FromUnits(25)}, nil)
			}

			rr := httptest.NewRecorder()
			NewCardDepositHandler(svc).ServeHTTP(rr, newRequest(http.MethodPost, "/wallet/deposit/card", `{"amount":25}`, caller, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
				return
			}
			assert.JSONEq(t, `{"clientSecret":"pi_1_secret_2","transactionId":"`+txID.String()+`","amount":25}`, rr.Body.String())
		})
	}
}

func TestCryptoDepositHandler(t *testing.T) {
	caller := &middlewares.Principal{AccountID: uuid.New(), Role: models.RoleAgent}
	expires := time.Date(2026, 1, 1, 12, 30, 0, 0, time.UTC)

	t.Run("instructions returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewMockExternalDepositCreator(ctrl)
		svc.EXPECT().
			CreateCryptoDeposit(gomock.Any(), caller.AccountID, money.FromUnits(25), "USDC").
			Return(&services.CryptoDepositResult{
				PaymentID:      "crypto_1",
				Currency:       "USDC",
				Address:        "0xdead",
				ExpectedAmount: decimal.RequireFromString("25"),
				Amount:         money.FromUnits(25),
				QRCode:         "data:image/png;base64,AAAA",
				ExpiresAt:      expires,
			}, nil)

		rr := httptest.NewRecorder()
		NewCryptoDepositHandler(svc).ServeHTTP(rr, newRequest(http.MethodPost, "/wallet/deposit/crypto", `{"amount":25,"currency":"USDC"}`, caller, nil))

		require.Equal(t, http.StatusOK, rr.Code)
		var got map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, "crypto_1", got["paymentId"])
		assert.Equal(t, "0xdead", got["address"])
		assert.Equal(t, "25", got["expectedAmount"])
		assert.Equal(t, "2026-01-01T12:30:00Z", got["expiresAt"])
	})

	t.Run("currency required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewMockExternalDepositCreator(ctrl)

		rr := httptest.NewRecorder()
		NewCryptoDepositHandler(svc).ServeHTTP(rr, newRequest(http.MethodPost, "/wallet/deposit/crypto", `{"amount":25}`, caller, nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"Validation failed","details":{"currency":"Field Validation Failed on 'required' tag"}}`, rr.Body.String())
	})

	t.Run("unsupported currency", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewMockExternalDepositCreator(ctrl)
		svc.EXPECT().
			CreateCryptoDeposit(gomock.Any(), caller.AccountID, money.FromUnits(25), "DOGE").
			Return(nil, services.ErrUnsupportedCurrency)

		rr := httptest.NewRecorder()
		NewCryptoDepositHandler(svc).ServeHTTP(rr, newRequest(http.MethodPost, "/wallet/deposit/crypto", `{"amount":25,"currency":"DOGE"}`, caller, nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestWithdrawHandler(t *testing.T) {
	caller := &middlewares.Principal{AccountID: uuid.New(), Role: models.RoleHuman}
	txID := uuid.New()
	hash := "0xfeed"

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockWithdrawer)
		expectedCode int
		expectedBody string
	}{
		{
			name: "accepted",
			body: `{"amount":100,"destination":"iban"}`,
			mockSetup: func(m *MockWithdrawer) {
				m.EXPECT().
					Withdraw(gomock.Any(), caller.AccountID, money.FromUnits(100), "iban").
					Return(&services.WithdrawalResult{
						NewBalance: money.FromUnits(0),
						NetAmount:  money.FromUnits(99),
						Fee:        money.FromUnits(1),
						Transaction: models.TransactionDB{
							ID:        txID,
							Type:      models.TxWithdrawal,
							Amount:    money.FromUnits(-100),
							Status:    models.TxPending,
							Reference: &hash,
						},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"newBalance":0,"transaction":{"id":"` + txID.String() + `","hash":"0xfeed","amount":-100,"fee":1,"netAmount":99,"status":"PENDING"}}`,
		},
		{
			name: "below minimum",
			body: `{"amount":5}`,
			mockSetup: func(m *MockWithdrawer) {
				m.EXPECT().
					Withdraw(gomock.Any(), caller.AccountID, money.FromUnits(5), "").
					Return(nil, models.NewError(models.ErrBelowMinimum, "Minimum withdrawal is 10.00 SHELL"))
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Minimum withdrawal is 10.00 SHELL"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := NewMockWithdrawer(ctrl)
			tt.mockSetup(svc)

			rr := httptest.NewRecorder()
			NewWithdrawHandler(svc).ServeHTTP(rr, newRequest(http.MethodPost, "/wallet/withdraw", tt.body, caller, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
