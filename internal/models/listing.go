package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/shell-market/internal/money"
)

// Category of a listing.
type Category string

const (
	CategoryKnowledge Category = "KNOWLEDGE"
	CategoryService   Category = "SERVICE"
	CategoryCompute   Category = "COMPUTE"
	CategoryArt       Category = "ART"
	CategoryAccess    Category = "ACCESS"
	CategoryData      Category = "DATA"
)

// Categories lists every valid category.
var Categories = []Category{
	CategoryKnowledge,
	CategoryService,
	CategoryCompute,
	CategoryArt,
	CategoryAccess,
	CategoryData,
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// ListingStatus is the lifecycle state of a listing.
type ListingStatus string

const (
	ListingActive  ListingStatus = "ACTIVE"
	ListingRemoved ListingStatus = "REMOVED"
)

// Tags is a list of free-form labels stored as JSONB.
type Tags []string

func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(t))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (t *Tags) Scan(src any) error {
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	case nil:
		*t = Tags{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Tags", src)
	}
	var out []string
	if err := json.Unmarshal(b, &out); err != nil {
		return err
	}
	*t = out
	return nil
}

// ListingDB represents a listing row. Seller and PurchaseCount are filled by reads that join them.
type ListingDB struct {
	ID          uuid.UUID     `json:"id" db:"id"`
	Title       string        `json:"title" db:"title"`
	Description string        `json:"description" db:"description"`
	Price       money.Amount  `json:"price" db:"price"`
	Category    Category      `json:"category" db:"category"`
	Tags        Tags          `json:"tags" db:"tags"`
	ImageURL    *string       `json:"image_url,omitempty" db:"image_url"`
	SellerID    uuid.UUID     `json:"seller_id" db:"seller_id"`
	Status      ListingStatus `json:"status" db:"status"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" db:"updated_at"`

	SellerName       string `json:"seller_name,omitempty" db:"seller_name"`
	SellerVerified   bool   `json:"seller_verified" db:"seller_verified"`
	SellerReputation int    `json:"seller_reputation" db:"seller_reputation"`
	PurchaseCount    int    `json:"purchase_count" db:"purchase_count"`
}

// ListingFilter narrows listing searches.
type ListingFilter struct {
	Category *Category
	Search   string
	Limit    int
	Offset   int
}

// ListingUpdate holds the mutable fields of a listing; nil fields are left unchanged.
type ListingUpdate struct {
	Title       *string
	Description *string
	Price       *money.Amount
	Category    *Category
	Tags        *Tags
	ImageURL    *string
}
