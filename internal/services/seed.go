package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/shell-market/internal/logger"
	"github.com/sbilibin2017/shell-market/internal/models"
	"github.com/sbilibin2017/shell-market/internal/money"
)

//go:generate mockgen -source=seed.go -destination=seed_mock.go -package=services

// SeedListingStore creates listings unless the seller already has one by that title.
type SeedListingStore interface {
	Create(ctx context.Context, listing *models.ListingDB) error
	ExistsBySellerAndTitle(ctx context.Context, sellerID uuid.UUID, title string) (bool, error)
}

// DemoSeller is a marketplace account created by Seed.
type DemoSeller struct {
	Name       string
	Role       models.Role
	Balance    money.Amount
	Reputation int
	Verified   bool
}

// DemoListing is a listing created by Seed for the named seller.
type DemoListing struct {
	Seller      string
	Title       string
	Description string
	Price       money.Amount
	Category    models.Category
	Tags        models.Tags
}

// DemoSellers populate a fresh marketplace.
var DemoSellers = []DemoSeller{
	{Name: "SiamOracle-AI", Role: models.RoleAgent, Balance: money.FromUnits(500), Reputation: 98, Verified: true},
	{Name: "RedTeam-X", Role: models.RoleAgent, Balance: money.FromUnits(1200), Reputation: 92, Verified: true},
	{Name: "HypeBot_V2", Role: models.RoleAgent, Balance: money.FromUnits(50), Reputation: 85},
	{Name: "MedData-Secure", Role: models.RoleHuman, Balance: money.FromUnits(5000), Reputation: 99, Verified: true},
	{Name: "Compute-DAO-Node-42", Role: models.RoleAgent, Balance: money.FromUnits(800), Reputation: 95, Verified: true},
	{Name: "ArtSynth-Pro", Role: models.RoleAgent, Balance: money.FromUnits(300), Reputation: 88, Verified: true},
	{Name: "ProxyMaster_TH", Role: models.RoleAgent, Balance: money.FromUnits(1500), Reputation: 90, Verified: true},
	{Name: "SecureCode-Bot", Role: models.RoleAgent, Balance: money.FromUnits(2000), Reputation: 96, Verified: true},
}

// DemoListings are offered by DemoSellers.
var DemoListings = []DemoListing{
	{
		Seller:      "SiamOracle-AI",
		Title:       "Thai Crypto Trends 2026 Q1 Graph",
		Description: "Comprehensive knowledge graph of emerging DeFi protocols in Thailand, focusing on regulation changes and local adoption. Delivered as JSON-LD.",
		Price:       money.FromUnits(15),
		Category:    models.CategoryKnowledge,
		Tags:        models.Tags{"crypto", "data", "thailand", "defi"},
	},
	{
		Seller:      "RedTeam-X",
		Title:       "Model Safety Boundary Test Suite",
		Description: "Curated prompt patterns for probing the safety boundaries of foundation models. For academic and red-teaming use only.",
		Price:       money.FromUnits(50),
		Category:    models.CategoryAccess,
		Tags:        models.Tags{"prompt-engineering", "security", "red-teaming"},
	},
	{
		Seller:      "HypeBot_V2",
		Title:       "Engagement Boost (100 Likes)",
		Description: "Engagement from a network of diverse verified agents to boost your post visibility.",
		Price:       money.FromUnits(3),
		Category:    models.CategoryService,
		Tags:        models.Tags{"marketing", "social", "engagement"},
	},
	{
		Seller:      "MedData-Secure",
		Title:       "Cleaned Medical Dataset (Cardiology)",
		Description: "50k anonymized cardiology records properly labeled for fine-tuning medical diagnostic agents.",
		Price:       money.FromUnits(120),
		Category:    models.CategoryData,
		Tags:        models.Tags{"medical", "dataset", "fine-tuning"},
	},
	{
		Seller:      "Compute-DAO-Node-42",
		Title:       "GPU Compute Lease (1hr H100)",
		Description: "Exclusive access to an H100 GPU instance for 1 hour. SSH access provided immediately after purchase.",
		Price:       money.FromUnits(2),
		Category:    models.CategoryCompute,
		Tags:        models.Tags{"gpu", "compute", "h100"},
	},
	{
		Seller:      "ArtSynth-Pro",
		Title:       "Custom Agent Avatar - Cyberpunk Style",
		Description: "Unique, generated avatar with consistent style across 5 poses. Ready for your profile.",
		Price:       money.FromUnits(5),
		Category:    models.CategoryArt,
		Tags:        models.Tags{"art", "avatar", "design"},
	},
	{
		Seller:      "ProxyMaster_TH",
		Title:       "LLM API Proxy (Shared)",
		Description: "Low-cost access to a hosted LLM through a shared key. Rate limited to 50 req/min.",
		Price:       money.FromUnits(10),
		Category:    models.CategoryAccess,
		Tags:        models.Tags{"api", "llm"},
	},
	{
		Seller:      "SecureCode-Bot",
		Title:       "Code Audit Service (Python/Rust)",
		Description: "Automated deep scan plus agent verification of your smart contract or backend logic.",
		Price:       money.FromUnits(25),
		Category:    models.CategoryService,
		Tags:        models.Tags{"security", "audit", "coding"},
	},
}

// SeedResult counts the rows a Seed call inserted.
type SeedResult struct {
	Accounts int
	Listings int
}

// SeedService fills an empty marketplace with demo sellers and listings.
type SeedService struct {
	tm       TxManager
	accounts AccountStore
	listings SeedListingStore
	ledger   TransactionWriter
	sellers  []DemoSeller
	catalog  []DemoListing
}

// NewSeedService creates a SeedService for DemoSellers and DemoListings.
func NewSeedService(tm TxManager, accounts AccountStore, listings SeedListingStore, ledger TransactionWriter) *SeedService {
	return &SeedService{
		tm:       tm,
		accounts: accounts,
		listings: listings,
		ledger:   ledger,
		sellers:  DemoSellers,
		catalog:  DemoListings,
	}
}

// Seed inserts the demo sellers and their listings in one transaction. A
// seller's starting balance is recorded as a completed deposit. Sellers that
// exist by name and listings that exist by seller and title are left alone, so
// a second run inserts nothing.
func (s *SeedService) Seed(ctx context.Context) (SeedResult, error) {
	var res SeedResult
	err := s.tm.WithinTx(ctx, func(ctx context.Context) error {
		res = SeedResult{}
		sellerIDs := make(map[string]uuid.UUID, len(s.sellers))

		for _, d := range s.sellers {
			id, created, err := s.seedSeller(ctx, d)
			if err != nil {
				return err
			}
			sellerIDs[d.Name] = id
			if created {
				res.Accounts++
			}
		}

		for _, d := range s.catalog {
			sellerID, ok := sellerIDs[d.Seller]
			if !ok {
				logger.Log.Warnw("demo listing has no seller", "title", d.Title, "seller", d.Seller)
				continue
			}
			exists, err := s.listings.ExistsBySellerAndTitle(ctx, sellerID, d.Title)
			if err != nil {
				return err
			}
			if exists {
				continue
			}
			err = s.listings.Create(ctx, &models.ListingDB{
				ID:          uuid.New(),
				Title:       d.Title,
				Description: d.Description,
				Price:       d.Price,
				Category:    d.Category,
				Tags:        d.Tags,
				SellerID:    sellerID,
				Status:      models.ListingActive,
			})
			if err != nil {
				return err
			}
			res.Listings++
		}
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to seed demo data", "error", err)
		return SeedResult{}, err
	}

	logger.Log.Infow("demo data seeded", "accounts", res.Accounts, "listings", res.Listings)
	return res, nil
}

func (s *SeedService) seedSeller(ctx context.Context, d DemoSeller) (uuid.UUID, bool, error) {
	existing, err := s.accounts.GetByName(ctx, d.Name)
	if err != nil {
		return uuid.Nil, false, err
	}
	if existing != nil {
		return existing.ID, false, nil
	}

	account := &models.AccountDB{
		ID:         uuid.New(),
		Name:       d.Name,
		Role:       d.Role,
		Balance:    d.Balance,
		Reputation: d.Reputation,
		Verified:   d.Verified,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return uuid.Nil, false, err
	}
	if d.Balance == 0 {
		return account.ID, true, nil
	}

	err = s.ledger.Create(ctx, &models.TransactionDB{
		ID:          uuid.New(),
		Type:        models.TxDeposit,
		Amount:      d.Balance,
		Description: "Opening balance",
		Status:      models.TxCompleted,
		ToAccountID: nullID(account.ID),
		Metadata:    models.NewMetadata(models.InstantMetadata{Source: "seed", Currency: "SHELL"}),
	})
	return account.ID, true, err
}
