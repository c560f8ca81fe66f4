package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/shell-market/internal/models"
)

const listingColumns = `l.id, l.title, l.description, l.price, l.category, l.tags, l.image_url, l.seller_id, l.status, l.created_at, l.updated_at`

// ListingRepository stores marketplace listings.
type ListingRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewListingRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ListingRepository {
	return &ListingRepository{db: db, txGetter: txGetter}
}

// Create inserts a new listing.
func (r *ListingRepository) Create(ctx context.Context, listing *models.ListingDB) error {
	query := `
		INSERT INTO listings (id, title, description, price, category, tags, image_url, seller_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	args := []any{listing.ID, listing.Title, listing.Description, listing.Price, listing.Category, listing.Tags, listing.ImageURL, listing.SellerID, listing.Status}

	err := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...).Scan(&listing.CreatedAt, &listing.UpdatedAt)

	logQuery(query, args, listing.ID, err)

	return err
}

// GetByID returns a listing with its seller summary and purchase count, or nil.
func (r *ListingRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ListingDB, error) {
	query := `
		SELECT ` + listingColumns + `,
			a.name AS seller_name, a.verified AS seller_verified, a.reputation AS seller_reputation,
			(SELECT COUNT(*) FROM purchases p WHERE p.listing_id = l.id) AS purchase_count
		FROM listings l
		JOIN accounts a ON a.id = l.seller_id
		WHERE l.id = $1
	`

	var listing models.ListingDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &listing, query, id)

	logQuery(query, []any{id}, listing.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

// ExistsBySellerAndTitle reports whether the seller already has a listing with
// this title, whatever its status.
func (r *ListingRepository) ExistsBySellerAndTitle(ctx context.Context, sellerID uuid.UUID, title string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM listings WHERE seller_id = $1 AND title = $2)`

	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &exists, query, sellerID, title)

	logQuery(query, []any{sellerID, title}, exists, err)

	return exists, err
}

// GetForShare reads a listing under a shared row lock so it cannot be removed
// or repriced while a purchase is settling.
func (r *ListingRepository) GetForShare(ctx context.Context, id uuid.UUID) (*models.ListingDB, error) {
	query := `SELECT ` + listingColumns + ` FROM listings l WHERE l.id = $1 FOR SHARE`

	var listing models.ListingDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &listing, query, id)

	logQuery(query, []any{id}, listing.Status, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

// List returns active listings matching the filter, newest first, and the total match count.
func (r *ListingRepository) List(ctx context.Context, filter models.ListingFilter) ([]models.ListingDB, int, error) {
	where := []string{"l.status = 'ACTIVE'"}
	var args []any

	if filter.Category != nil {
		args = append(args, *filter.Category)
		where = append(where, fmt.Sprintf("l.category = $%d", len(args)))
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		args = append(args, "%"+escapeLike(s)+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(l.title ILIKE $%d OR l.description ILIKE $%d OR l.tags::text ILIKE $%d)", n, n, n))
	}
	cond := strings.Join(where, " AND ")

	countQuery := `SELECT COUNT(*) FROM listings l WHERE ` + cond

	var total int
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &total, countQuery, args...)
	logQuery(countQuery, args, total, err)
	if err != nil {
		return nil, 0, err
	}

	pageArgs := append(append([]any{}, args...), filter.Limit, filter.Offset)
	query := fmt.Sprintf(`
		SELECT %s,
			a.name AS seller_name, a.verified AS seller_verified, a.reputation AS seller_reputation,
			(SELECT COUNT(*) FROM purchases p WHERE p.listing_id = l.id) AS purchase_count
		FROM listings l
		JOIN accounts a ON a.id = l.seller_id
		WHERE %s
		ORDER BY l.created_at DESC, l.id
		LIMIT $%d OFFSET $%d
	`, listingColumns, cond, len(args)+1, len(args)+2)

	listings := []models.ListingDB{}
	err = sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &listings, query, pageArgs...)

	logQuery(query, pageArgs, len(listings), err)

	if err != nil {
		return nil, 0, err
	}
	return listings, total, nil
}

// Update applies the non-nil fields of upd and returns the updated row, or nil if absent.
func (r *ListingRepository) Update(ctx context.Context, id uuid.UUID, upd models.ListingUpdate) (*models.ListingDB, error) {
	query := `
		UPDATE listings SET
			title = COALESCE($2, title),
			description = COALESCE($3, description),
			price = COALESCE($4, price),
			category = COALESCE($5, category),
			tags = COALESCE($6, tags),
			image_url = COALESCE($7, image_url),
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, title, description, price, category, tags, image_url, seller_id, status, created_at, updated_at
	`
	var tags any
	if upd.Tags != nil {
		tags = *upd.Tags
	}
	var price any
	if upd.Price != nil {
		price = *upd.Price
	}
	var category any
	if upd.Category != nil {
		category = string(*upd.Category)
	}
	args := []any{id, upd.Title, upd.Description, price, category, tags, upd.ImageURL}

	var listing models.ListingDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &listing, query, args...)

	logQuery(query, args, listing.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

// SetStatus changes the lifecycle status of a listing.
func (r *ListingRepository) SetStatus(ctx context.Context, id uuid.UUID, status models.ListingStatus) error {
	query := `UPDATE listings SET status = $2, updated_at = NOW() WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id, status)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{id, status}, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
