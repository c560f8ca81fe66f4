package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/shell-market/internal/jwt"
	"github.com/sbilibin2017/shell-market/internal/models"
	"github.com/sbilibin2017/shell-market/internal/services"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=handlers

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	Register(ctx context.Context, in services.RegisterInput) (*services.Session, error)
}

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, name, password, apiKey string) (*services.Session, error)
}

// AccountGetter returns the account of the caller.
type AccountGetter interface {
	Me(ctx context.Context, accountID uuid.UUID) (*models.AccountDB, error)
}

// RegisterRequest represents the JSON body for registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Display name
	// required: true
	// default: trader_bot
	Name string `json:"name" validate:"required"`

	// AGENT or HUMAN, defaults to AGENT
	// default: AGENT
	Role models.Role `json:"role"`

	// Password, required for HUMAN accounts
	Password string `json:"password"`
}

// LoginRequest represents the JSON body for login. Humans send a password,
// agents send their API key.
// swagger:model LoginRequest
type LoginRequest struct {
	// Display name
	// required: true
	// default: trader_bot
	Name string `json:"name" validate:"required"`

	// Password
	Password string `json:"password"`

	// Agent API key
	APIKey string `json:"apiKey"`
}

// SessionResponse represents a successful registration or login
// swagger:model SessionResponse
type SessionResponse struct {
	// Authenticated account
	Account *models.AccountDB `json:"account"`

	// JWT token
	// default: JWT_TOKEN
	Token string `json:"token"`

	// Agent API key, returned once at registration
	APIKey string `json:"apiKey,omitempty"`
}

// AccountResponse wraps the account of the caller
// swagger:model AccountResponse
type AccountResponse struct {
	Account *models.AccountDB `json:"account"`
}

// SuccessResponse acknowledges an operation without a payload
// swagger:model SuccessResponse
type SuccessResponse struct {
	// default: true
	Success bool `json:"success"`
}

// NewRegisterHandler returns an HTTP handler for account registration.
// @Summary Register account
// @Description Create an account credited with the welcome bonus and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "Register Request"
// @Success 201 {object} handlers.SessionResponse "Account created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request or name taken"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer, sessionTTL time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		session, err := svc.Register(r.Context(), services.RegisterInput{
			Name:     req.Name,
			Role:     req.Role,
			Password: req.Password,
		})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		setSessionCookie(w, r, session.Token, sessionTTL)
		writeJSON(w, http.StatusCreated, SessionResponse{
			Account: session.Account,
			Token:   session.Token,
			APIKey:  session.APIKey,
		})
	}
}

// NewLoginHandler returns an HTTP handler for login.
// @Summary Login
// @Description Authenticate with a password or an agent API key and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.SessionResponse "JWT token returned"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer, sessionTTL time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		session, err := svc.Login(r.Context(), req.Name, req.Password, req.APIKey)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		setSessionCookie(w, r, session.Token, sessionTTL)
		writeJSON(w, http.StatusOK, SessionResponse{
			Account: session.Account,
			Token:   session.Token,
		})
	}
}

// NewLogoutHandler returns an HTTP handler that clears the session cookie.
// @Summary Logout
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.SuccessResponse
// @Router /auth/logout [post]
func NewLogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     jwt.SessionCookie,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
	}
}

// NewMeHandler returns an HTTP handler for the current account.
// @Summary Current account
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.AccountResponse
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 404 {object} handlers.ErrorResponse "Account not found"
// @Router /auth/me [get]
func NewMeHandler(svc AccountGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		account, err := svc.Me(r.Context(), p.AccountID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, AccountResponse{Account: account})
	}
}

func setSessionCookie(w http.ResponseWriter, r *http.Request, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     jwt.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}
