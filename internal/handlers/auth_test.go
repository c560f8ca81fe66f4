package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/shell-market/internal/jwt"
	"github.com/sbilibin2017/shell-market/internal/middlewares"
	"github.com/sbilibin2017/shell-market/internal/models"
	"github.com/sbilibin2017/shell-market/internal/money"
	"github.com/sbilibin2017/shell-market/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRequest builds a request carrying the caller and chi path parameters.
func newRequest(method, target, body string, caller *middlewares.Principal, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := req.Context()
	if caller != nil {
		ctx = middlewares.WithPrincipal(ctx, *caller)
	}
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}

func sessionCookie(rr *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == jwt.SessionCookie {
			return c
		}
	}
	return nil
}

func TestRegisterHandler(t *testing.T) {
	accountID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	account := &models.AccountDB{
		ID:      accountID,
		Name:    "trader_bot",
		Role:    models.RoleAgent,
		Balance: money.FromUnits(100),
	}

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedBody string
		expectCookie bool
	}{
		{
			name: "agent registered",
			body: `{"name":"trader_bot"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), services.RegisterInput{Name: "trader_bot"}).
					Return(&services.Session{Account: account, Token: "JWT_TOKEN", APIKey: "ocm_key"}, nil)
			},
			expectedCode: http.StatusCreated,
			expectCookie: true,
		},
		{
			name:         "invalid JSON",
			body:         `{invalid json}`,
			mockSetup:    func(m *MockRegisterer) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"invalid request body"}`,
		},
		{
			name:         "missing name",
			body:         `{"role":"HUMAN"}`,
			mockSetup:    func(m *MockRegisterer) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Validation failed","details":{"name":"Field Validation Failed on 'required' tag"}}`,
		},
		{
			name: "name taken",
			body: `{"name":"trader_bot","role":"HUMAN","password":"secret123"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), services.RegisterInput{Name: "trader_bot", Role: models.RoleHuman, Password: "secret123"}).
					Return(nil, services.ErrNameTaken)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Name already taken"}`,
		},
		{
			name: "internal error",
			body: `{"name":"trader_bot"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := NewMockRegisterer(ctrl)
			tt.mockSetup(svc)

			rr := httptest.NewRecorder()
			NewRegisterHandler(svc, time.Hour).ServeHTTP(rr, newRequest(http.MethodPost, "/auth/register", tt.body, nil, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
			if tt.expectCookie {
				c := sessionCookie(rr)
				require.NotNil(t, c)
				assert.Equal(t, "JWT_TOKEN", c.Value)
				assert.True(t, c.HttpOnly)
				assert.Equal(t, 3600, c.MaxAge)
				assert.Contains(t, rr.Body.String(), `"apiKey":"ocm_key"`)
				assert.Contains(t, rr.Body.String(), `"token":"JWT_TOKEN"`)
				assert.NotContains(t, rr.Body.String(), "password_hash")
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	account := &models.AccountDB{ID: uuid.New(), Name: "alice", Role: models.RoleHuman}

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockLoginer)
		expectedCode int
		expectedBody string
	}{
		{
			name: "password login",
			body: `{"name":"alice","password":"secret123"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "alice", "secret123", "").
					Return(&services.Session{Account: account, Token: "JWT_TOKEN"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "api key login",
			body: `{"name":"alice","apiKey":"ocm_key"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "alice", "", "ocm_key").
					Return(&services.Session{Account: account, Token: "JWT_TOKEN"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "wrong credentials",
			body: `{"name":"alice","password":"wrongpass"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "alice", "wrongpass", "").
					Return(nil, services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"error":"Invalid credentials"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := NewMockLoginer(ctrl)
			tt.mockSetup(svc)

			rr := httptest.NewRecorder()
			NewLoginHandler(svc, time.Hour).ServeHTTP(rr, newRequest(http.MethodPost, "/auth/login", tt.body, nil, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
				assert.Nil(t, sessionCookie(rr))
				return
			}
			assert.Contains(t, rr.Body.String(), `"token":"JWT_TOKEN"`)
			assert.NotContains(t, rr.Body.String(), "apiKey")
			require.NotNil(t, sessionCookie(rr))
		})
	}
}

func TestLogoutHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	NewLogoutHandler().ServeHTTP(rr, newRequest(http.MethodPost, "/auth/logout", "", nil, nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true}`, rr.Body.String())
	c := sessionCookie(rr)
	require.NotNil(t, c)
	assert.Empty(t, c.Value)
	assert.Less(t, c.MaxAge, 0)
}

func TestMeHandler(t *testing.T) {
	caller := &middlewares.Principal{AccountID: uuid.New(), Role: models.RoleAgent}

	t.Run("returns account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewMockAccountGetter(ctrl)
		svc.EXPECT().
			Me(gomock.Any(), caller.AccountID).
			Return(&models.AccountDB{ID: caller.AccountID, Name: "bot", Role: models.RoleAgent}, nil)

		rr := httptest.NewRecorder()
		NewMeHandler(svc).ServeHTTP(rr, newRequest(http.MethodGet, "/auth/me", "", caller, nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"name":"bot"`)
	})

	t.Run("no caller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewMockAccountGetter(ctrl)

		rr := httptest.NewRecorder()
		NewMeHandler(svc).ServeHTTP(rr, newRequest(http.MethodGet, "/auth/me", "", nil, nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"error":"Not authenticated"}`, rr.Body.String())
	})

	t.Run("account deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewMockAccountGetter(ctrl)
		svc.EXPECT().Me(gomock.Any(), caller.AccountID).Return(nil, services.ErrAccountNotFound)

		rr := httptest.NewRecorder()
		NewMeHandler(svc).ServeHTTP(rr, newRequest(http.MethodGet, "/auth/me", "", caller, nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
