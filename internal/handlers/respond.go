package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sbilibin2017/shell-market/internal/logger"
	"github.com/sbilibin2017/shell-market/internal/middlewares"
	"github.com/sbilibin2017/shell-market/internal/models"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

var validate = newValidator()

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`

	// Per-field validation failures
	Details map[string]string `json:"details,omitempty"`
}

// kindStatus maps error kinds to HTTP status codes, most specific first.
var kindStatus = []struct {
	kind   error
	status int
	msg    string
}{
	{models.ErrValidation, http.StatusBadRequest, "Invalid request"},
	{models.ErrInvalidState, http.StatusBadRequest, "Invalid state"},
	{models.ErrInsufficientFunds, http.StatusBadRequest, "Insufficient SHELL balance"},
	{models.ErrBelowMinimum, http.StatusBadRequest, "Amount is below the minimum"},
	{models.ErrInvalidSignature, http.StatusBadRequest, "Invalid signature"},
	{models.ErrAlreadyExists, http.StatusBadRequest, "Already exists"},
	{models.ErrUnauthorized, http.StatusUnauthorized, "Not authenticated"},
	{models.ErrForbidden, http.StatusForbidden, "Forbidden"},
	{models.ErrNotFound, http.StatusNotFound, "Not found"},
	{models.ErrConflictRetryable, http.StatusConflict, "Concurrent update, please retry"},
	{models.ErrProviderDisabled, http.StatusServiceUnavailable, "Payment provider not configured"},
	{models.ErrProvider, http.StatusBadGateway, "Payment provider error"},
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeServiceError maps err to a status code. Unknown errors become a bare 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	for _, ks := range kindStatus {
		if !errors.Is(err, ks.kind) {
			continue
		}
		msg := ks.msg
		var e *models.Error
		if errors.As(err, &e) {
			msg = e.Msg
		}
		writeError(w, ks.status, msg)
		return
	}

	logger.Log.Errorw("internal server error",
		"request_id", middlewares.RequestIDFromContext(r.Context()),
		"uri", r.RequestURI,
		"err", err,
	)
	writeError(w, http.StatusInternalServerError, "Internal server error")
}

// decodeJSON reads and validates the request body into dst. It writes the
// error response itself and reports whether the handler should continue.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return false
		}
		details := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			details[fe.Field()] = fmt.Sprintf("Field Validation Failed on '%s' tag", fe.Tag())
		}
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Validation failed", Details: details})
		return false
	}
	return true
}

// principal returns the authenticated caller, writing 401 when there is none.
func principal(w http.ResponseWriter, r *http.Request) (middlewares.Principal, bool) {
	p, ok := middlewares.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
	}
	return p, ok
}

// idParam parses a UUID path parameter, writing 404 when it is malformed.
func idParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeError(w, http.StatusNotFound, "Not found")
		return uuid.Nil, false
	}
	return id, true
}
