package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/sbilibin2017/shell-market/internal/logger"
	"github.com/sbilibin2017/shell-market/internal/migrations"
	"github.com/sbilibin2017/shell-market/internal/repositories"
	"github.com/sbilibin2017/shell-market/internal/services"
)

func main() {
	configPath := flag.String("c", "config.env", "Path to configuration file")
	down := flag.Bool("down", false, "Roll back every migration instead of applying them")
	seed := flag.Bool("seed", false, "Insert demo sellers and listings after migrating")
	flag.Parse()

	if *down && *seed {
		log.Fatal("-seed cannot be combined with -down")
	}

	if err := migrateAll(context.Background(), *configPath, *down, *seed); err != nil {
		log.Fatalf("migration run failed: %v", err)
	}
}

// migrateAll applies or rolls back the embedded schema against the database
// configured by the POSTGRES_* variables. With seed set, the demo marketplace
// is inserted once the schema is up.
func migrateAll(ctx context.Context, configPath string, down, seed bool) error {
	_ = godotenv.Load(configPath)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	if err := logger.Initialize(getEnv("APP_LOG_LEVEL", "info"), "service", "shell-migrator"); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Log.Sync()

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv("POSTGRES_USER", "user"),
		getEnv("POSTGRES_PASSWORD", "password"),
		getEnv("POSTGRES_HOST", "localhost"),
		getEnv("POSTGRES_PORT", "5432"),
		getEnv("POSTGRES_DB", "database"),
	)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	if down {
		if err := migrations.Down(db.DB); err != nil {
			return err
		}
		logger.Log.Info("migrations rolled back")
		return nil
	}

	if err := migrations.Up(db.DB); err != nil {
		return err
	}

	version, dirty, err := migrations.Version(db.DB)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	logger.Log.Infow("migrations applied", "version", version, "dirty", dirty)

	if !seed {
		return nil
	}
	res, err := newSeeder(db).Seed(ctx)
	if err != nil {
		return fmt.Errorf("seed demo data: %w", err)
	}
	logger.Log.Infow("seed finished", "accounts", res.Accounts, "listings", res.Listings)
	return nil
}

func newSeeder(db *sqlx.DB) *services.SeedService {
	return services.NewSeedService(
		repositories.NewTxManager(db),
		repositories.NewAccountRepository(db, repositories.GetTxFromContext),
		repositories.NewListingRepository(db, repositories.GetTxFromContext),
		repositories.NewTransactionRepository(db, repositories.GetTxFromContext),
	)
}
