package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sbilibin2017/shell-market/internal/logger"
	"github.com/sbilibin2017/shell-market/internal/models"
	"github.com/sbilibin2017/shell-market/internal/money"
)

//go:generate mockgen -source=listings.go -destination=listings_mock.go -package=services

// Listing errors
var (
	ErrInvalidTitle       = models.NewError(models.ErrValidation, "Title must be 5-200 characters")
	ErrInvalidDescription = models.NewError(models.ErrValidation, "Description must be 20-5000 characters")
	ErrInvalidPrice       = models.NewError(models.ErrValidation, "Price must be greater than 0 and at most 1000000")
	ErrInvalidCategory    = models.NewError(models.ErrValidation, "Unknown category")
	ErrMarkupNotAllowed   = models.NewError(models.ErrValidation, "HTML is not allowed")
	ErrNotListingOwner    = models.NewError(models.ErrForbidden, "You can only modify your own listings")
)

// Listing page size limits.
const (
	DefaultListingLimit = 50
	MaxListingLimit     = 100
)

// ListingStore persists listings.
type ListingStore interface {
	Create(ctx context.Context, listing *models.ListingDB) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ListingDB, error)
	List(ctx context.Context, filter models.ListingFilter) ([]models.ListingDB, int, error)
	Update(ctx context.Context, id uuid.UUID, upd models.ListingUpdate) (*models.ListingDB, error)
	SetStatus(ctx context.Context, id uuid.UUID, status models.ListingStatus) error
}

// ListingInput holds the fields of a new listing.
type ListingInput struct {
	Title       string
	Description string
	Price       money.Amount
	Category    models.Category
	Tags        []string
	ImageURL    *string
}

// ListingPage is one page of search results.
type ListingPage struct {
	Listings []models.ListingDB
	Total    int
	HasMore  bool
}

// ListingsService handles marketplace listings.
type ListingsService struct {
	store ListingStore
}

// NewListingsService creates a new ListingsService.
func NewListingsService(store ListingStore) *ListingsService {
	return &ListingsService{store: store}
}

// List searches active listings.
func (s *ListingsService) List(ctx context.Context, filter models.ListingFilter) (*ListingPage, error) {
	if filter.Category != nil && !filter.Category.Valid() {
		return nil, ErrInvalidCategory
	}
	switch {
	case filter.Limit <= 0:
		filter.Limit = DefaultListingLimit
	case filter.Limit > MaxListingLimit:
		filter.Limit = MaxListingLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	filter.Search = strings.TrimSpace(filter.Search)

	listings, total, err := s.store.List(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to list listings", "error", err)
		return nil, err
	}
	if listings == nil {
		listings = []models.ListingDB{}
	}

	return &ListingPage{
		Listings: listings,
		Total:    total,
		HasMore:  filter.Offset+len(listings) < total,
	}, nil
}

// Get returns a listing by id.
func (s *ListingsService) Get(ctx context.Context, id uuid.UUID) (*models.ListingDB, error) {
	listing, err := s.store.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get listing", "listing_id", id, "error", err)
		return nil, err
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}
	return listing, nil
}

// Create validates and stores a listing owned by sellerID.
func (s *ListingsService) Create(ctx context.Context, sellerID uuid.UUID, in ListingInput) (*models.ListingDB, error) {
	if in.Category == "" {
		in.Category = models.CategoryService
	}
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)

	if err := validateTitle(in.Title); err != nil {
		return nil, err
	}
	if err := validateDescription(in.Description); err != nil {
		return nil, err
	}
	if err := validatePrice(in.Price); err != nil {
		return nil, err
	}
	if !in.Category.Valid() {
		return nil, ErrInvalidCategory
	}
	tags, err := cleanTags(in.Tags)
	if err != nil {
		return nil, err
	}

	listing := &models.ListingDB{
		ID:          uuid.New(),
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Tags:        tags,
		ImageURL:    in.ImageURL,
		SellerID:    sellerID,
		Status:      models.ListingActive,
	}
	if err := s.store.Create(ctx, listing); err != nil {
		logger.Log.Errorw("failed to create listing", "seller_id", sellerID, "error", err)
		return nil, err
	}

	logger.Log.Infow("listing created", "listing_id", listing.ID, "seller_id", sellerID, "price", listing.Price)
	return s.Get(ctx, listing.ID)
}

// Update changes a listing owned by accountID.
func (s *ListingsService) Update(ctx context.Context, accountID, listingID uuid.UUID, upd models.ListingUpdate) (*models.ListingDB, error) {
	listing, err := s.Get(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing.SellerID != accountID {
		return nil, ErrNotListingOwner
	}

	if upd.Title != nil {
		title := strings.TrimSpace(*upd.Title)
		if err := validateTitle(title); err != nil {
			return nil, err
		}
		upd.Title = &title
	}
	if upd.Description != nil {
		description := strings.TrimSpace(*upd.Description)
		if err := validateDescription(description); err != nil {
			return nil, err
		}
		upd.Description = &description
	}
	if upd.Price != nil {
		if err := validatePrice(*upd.Price); err != nil {
			return nil, err
		}
	}
	if upd.Category != nil && !upd.Category.Valid() {
		return nil, ErrInvalidCategory
	}
	if upd.Tags != nil {
		tags, err := cleanTags(*upd.Tags)
		if err != nil {
			return nil, err
		}
		upd.Tags = &tags
	}

	if _, err := s.store.Update(ctx, listingID, upd); err != nil {
		logger.Log.Errorw("failed to update listing", "listing_id", listingID, "error", err)
		return nil, err
	}
	return s.Get(ctx, listingID)
}

// Remove marks a listing REMOVED. Owners and admins may remove a listing.
func (s *ListingsService) Remove(ctx context.Context, accountID uuid.UUID, role models.Role, listingID uuid.UUID) error {
	listing, err := s.Get(ctx, listingID)
	if err != nil {
		return err
	}
	if listing.SellerID != accountID && role != models.RoleAdmin {
		return ErrNotListingOwner
	}

	if err := s.store.SetStatus(ctx, listingID, models.ListingRemoved); err != nil {
		logger.Log.Errorw("failed to remove listing", "listing_id", listingID, "error", err)
		return err
	}

	logger.Log.Infow("listing removed", "listing_id", listingID, "by", accountID)
	return nil
}

func validateTitle(title string) error {
	if n := utf8.RuneCountInString(title); n < 5 || n > 200 {
		return ErrInvalidTitle
	}
	return noMarkup(title)
}

func validateDescription(description string) error {
	if n := utf8.RuneCountInString(description); n < 20 || n > 5000 {
		return ErrInvalidDescription
	}
	return noMarkup(description)
}

func validatePrice(price money.Amount) error {
	if price <= 0 || price > money.Max {
		return ErrInvalidPrice
	}
	return nil
}

func cleanTags(in []string) (models.Tags, error) {
	tags := make(models.Tags, 0, len(in))
	for _, t := range in {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if err := noMarkup(t); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, nil
}

func noMarkup(s string) error {
	if strings.ContainsAny(s, "<>") {
		return ErrMarkupNotAllowed
	}
	return nil
}
