package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/shell-market/internal/models"
	"github.com/sbilibin2017/shell-market/internal/money"
	"github.com/sbilibin2017/shell-market/internal/services"
)

//go:generate mockgen -source=listings.go -destination=listings_mock.go -package=handlers

// ListingFinder searches and reads listings.
type ListingFinder interface {
	List(ctx context.Context, filter models.ListingFilter) (*services.ListingPage, error)
	Get(ctx context.Context, id uuid.UUID) (*models.ListingDB, error)
}

// ListingEditor creates and changes listings on behalf of their seller.
type ListingEditor interface {
	Create(ctx context.Context, sellerID uuid.UUID, in services.ListingInput) (*models.ListingDB, error)
	Update(ctx context.Context, accountID, listingID uuid.UUID, upd models.ListingUpdate) (*models.ListingDB, error)
	Remove(ctx context.Context, accountID uuid.UUID, role models.Role, listingID uuid.UUID) error
}

// ListingsResponse is one page of listings
// swagger:model ListingsResponse
type ListingsResponse struct {
	Listings []models.ListingDB `json:"listings"`

	// Number of matching listings
	Total int `json:"total"`

	// Whether more listings follow this page
	HasMore bool `json:"hasMore"`
}

// ListingResponse wraps a single listing
// swagger:model ListingResponse
type ListingResponse struct {
	Listing *models.ListingDB `json:"listing"`
}

// CreateListingRequest represents the JSON body for a new listing
// swagger:model CreateListingRequest
type CreateListingRequest struct {
	// required: true
	// default: GPU inference hour
	Title string `json:"title" validate:"required"`

	// required: true
	Description string `json:"description" validate:"required"`

	// Price in SHELL
	// required: true
	// default: 15
	Price money.Amount `json:"price" swaggertype:"number"`

	// KNOWLEDGE, SERVICE, COMPUTE, ART, ACCESS or DATA
	// default: SERVICE
	Category models.Category `json:"category"`

	Tags []string `json:"tags"`

	ImageURL *string `json:"imageUrl" validate:"omitempty,url"`
}

// UpdateListingRequest represents the JSON body for a listing update. Absent
// fields are left unchanged.
// swagger:model UpdateListingRequest
type UpdateListingRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Price       *money.Amount    `json:"price" swaggertype:"number"`
	Category    *models.Category `json:"category"`
	Tags        *[]string        `json:"tags"`
	ImageURL    *string          `json:"imageUrl" validate:"omitempty,url"`
}

// NewListListingsHandler returns an HTTP handler that searches active listings.
// @Summary List listings
// @Tags listings
// @Produce json
// @Param category query string false "Category filter"
// @Param search query string false "Matches title, description and tags"
// @Param limit query int false "Page size, at most 100" default(50)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} handlers.ListingsResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid category"
// @Router /listings [get]
func NewListListingsHandler(svc ListingFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		filter := models.ListingFilter{
			Search: q.Get("search"),
			Limit:  queryInt(q.Get("limit")),
			Offset: queryInt(q.Get("offset")),
		}
		if c := strings.TrimSpace(q.Get("category")); c != "" {
			category := models.Category(strings.ToUpper(c))
			filter.Category = &category
		}

		page, err := svc.List(r.Context(), filter)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, ListingsResponse{
			Listings: page.Listings,
			Total:    page.Total,
			HasMore:  page.HasMore,
		})
	}
}

// NewGetListingHandler returns an HTTP handler for a single listing.
// @Summary Get listing
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} handlers.ListingResponse
// @Failure 404 {object} handlers.ErrorResponse "Listing not found"
// @Router /listings/{id} [get]
func NewGetListingHandler(svc ListingFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r, "id")
		if !ok {
			return
		}

		listing, err := svc.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, ListingResponse{Listing: listing})
	}
}

// NewCreateListingHandler returns an HTTP handler that publishes a listing.
// @Summary Create listing
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createListingRequest body handlers.CreateListingRequest true "Listing"
// @Success 201 {object} handlers.ListingResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid listing"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Router /listings [post]
func NewCreateListingHandler(svc ListingEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		var req CreateListingRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		listing, err := svc.Create(r.Context(), p.AccountID, services.ListingInput{
			Title:       req.Title,
			Description: req.Description,
			Price:       req.Price,
			Category:    req.Category,
			Tags:        req.Tags,
			ImageURL:    req.ImageURL,
		})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, ListingResponse{Listing: listing})
	}
}

// NewUpdateListingHandler returns an HTTP handler that edits a listing. Only
// the seller may edit.
// @Summary Update listing
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Param updateListingRequest body handlers.UpdateListingRequest true "Changed fields"
// @Success 200 {object} handlers.ListingResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid listing"
// @Failure 403 {object} handlers.ErrorResponse "Not the seller"
// @Failure 404 {object} handlers.ErrorResponse "Listing not found"
// @Router /listings/{id} [put]
func NewUpdateListingHandler(svc ListingEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}
		id, ok := idParam(w, r, "id")
		if !ok {
			return
		}

		var req UpdateListingRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		upd := models.ListingUpdate{
			Title:       req.Title,
			Description: req.Description,
			Price:       req.Price,
			Category:    req.Category,
			ImageURL:    req.ImageURL,
		}
		if req.Tags != nil {
			tags := models.Tags(*req.Tags)
			upd.Tags = &tags
		}

		listing, err := svc.Update(r.Context(), p.AccountID, id, upd)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, ListingResponse{Listing: listing})
	}
}

// NewDeleteListingHandler returns an HTTP handler that takes a listing off the
// market. The seller or an admin may remove it.
// @Summary Remove listing
// @Tags listings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Success 200 {object} handlers.SuccessResponse
// @Failure 403 {object} handlers.ErrorResponse "Not the seller"
// @Failure 404 {object} handlers.ErrorResponse "Listing not found"
// @Router /listings/{id} [delete]
func NewDeleteListingHandler(svc ListingEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}
		id, ok := idParam(w, r, "id")
		if !ok {
			return
		}

		if err := svc.Remove(r.Context(), p.AccountID, p.Role, id); err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
	}
}

func queryInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
