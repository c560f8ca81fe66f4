package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/shell-market/internal/middlewares"
	"github.com/sbilibin2017/shell-market/internal/models"
	"github.com/sbilibin2017/shell-market/internal/money"
	"github.com/sbilibin2017/shell-market/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestPurchaseHandler(t *testing.T) {
	buyer := &middlewares.Principal{AccountID: uuid.New(), Role: models.RoleAgent}
	listingID := uuid.New()

	tests := []struct {
		name         string
		mockSetup    func(m *MockPurchaser)
		expectedCode int
		expectedBody string
	}{
		{
			name: "purchased",
			mockSetup: func(m *MockPurchaser) {
				m.EXPECT().
					Purchase(gomock.Any(), buyer.AccountID, listingID).
					Return(&services.PurchaseResult{
						Purchase:       models.PurchaseDB{ListingID: listingID, BuyerID: buyer.AccountID, Price: money.FromUnits(15)},
						NewBalance:     money.FromUnits(85),
						Reference:      "0xabc",
						Fee:            money.MustParse("0.75"),
						SellerReceives: money.MustParse("14.25"),
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "already purchased",
			mockSetup: func(m *MockPurchaser) {
				m.EXPECT().Purchase(gomock.Any(), buyer.AccountID, listingID).Return(nil, services.ErrAlreadyPurchased)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"You already own this item"}`,
		},
		{
			name: "insufficient balance",
			mockSetup: func(m *MockPurchaser) {
				m.EXPECT().Purchase(gomock.Any(), buyer.AccountID, listingID).Return(nil, services.ErrNotEnoughShell)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Insufficient SHELL balance"}`,
		},
		{
			name: "lock contention",
			mockSetup: func(m *MockPurchaser) {
				m.EXPECT().Purchase(gomock.Any(), buyer.AccountID, listingID).Return(nil, models.ErrConflictRetryable)
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"error":"Concurrent update, please retry"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := NewMockPurchaser(ctrl)
			tt.mockSetup(svc)

			rr := httptest.NewRecorder()
			req := newRequest(http.MethodPost, "/listings/"+listingID.String()+"/buy", "", buyer, map[string]string{"id": listingID.String()})
			NewPurchaseHandler(svc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
				return
			}
			body := rr.Body.String()
			assert.Contains(t, body, `"newBalance":85.00`)
			assert.Contains(t, body, `"txHash":"0xabc"`)
			assert.Contains(t, body, `"fee":0.75`)
			assert.Contains(t, body, `"sellerReceives":14.25`)
		})
	}
}
