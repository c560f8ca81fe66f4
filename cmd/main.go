package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/shell-market/docs"
	"github.com/sbilibin2017/shell-market/internal/facades"
	"github.com/sbilibin2017/shell-market/internal/handlers"
	"github.com/sbilibin2017/shell-market/internal/jwt"
	"github.com/sbilibin2017/shell-market/internal/logger"
	"github.com/sbilibin2017/shell-market/internal/middlewares"
	"github.com/sbilibin2017/shell-market/internal/migrations"
	"github.com/sbilibin2017/shell-market/internal/models"
	"github.com/sbilibin2017/shell-market/internal/repositories"
	"github.com/sbilibin2017/shell-market/internal/services"
	"github.com/sbilibin2017/shell-market/internal/workers"

	_ "github.com/jackc/pgx/v5/stdlib"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything read from the environment.
type config struct {
	AppHost     string
	AppPort     string
	LogLevel    string
	AutoMigrate bool

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	KafkaBrokers []string
	KafkaTopic   string

	GWHost string
	GWPort string

	JWTSecret string
	JWTExp    time.Duration

	StripeSecretKey     string
	StripeWebhookSecret string

	WithdrawalDelay time.Duration
	WorkerInterval  time.Duration

	RateLimitRequests int64
	RateLimitWindow   time.Duration

	CORSOrigins        []string
	CryptoRateCacheTTL time.Duration
}

// @title SHELL Market API
// @version 1.0.0
// @description Marketplace wallet: SHELL credit balances, purchases, deposits and withdrawals
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application configuration. Variables already set in the environment win.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) int {
		if err != nil {
			return 0
		}
		var v int
		if v, err = strconv.Atoi(getEnv(key, defaultValue)); err != nil {
			err = fmt.Errorf("%s: %w", key, err)
		}
		return v
	}
	getList := func(key, defaultValue string) []string {
		var out []string
		for _, s := range strings.Split(getEnv(key, defaultValue), ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	if cfg.AutoMigrate, err = strconv.ParseBool(getEnv("APP_AUTO_MIGRATE", "true")); err != nil {
		return cfg, fmt.Errorf("APP_AUTO_MIGRATE: %w", err)
	}

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	cfg.PGPort = getInt("POSTGRES_PORT", "5432")
	cfg.PGMaxOpenConns = getInt("POSTGRES_MAX_OPEN_CONNS", "16")
	cfg.PGMaxIdleConns = getInt("POSTGRES_MAX_IDLE_CONNS", "8")

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPort = getInt("REDIS_PORT", "6379")
	cfg.RedisDB = getInt("REDIS_DB", "0")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	cfg.RedisPoolSize = getInt("REDIS_POOL_SIZE", "10")
	cfg.RedisMinIdleConns = getInt("REDIS_MIN_IDLE_CONNS", "2")

	// Kafka config, publishing is disabled without brokers
	cfg.KafkaBrokers = getList("KAFKA_BROKERS", "")
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "ledger.transactions")

	// gRPC config
	cfg.GWHost = getEnv("GW_EXCHANGER_HOST", "localhost")
	cfg.GWPort = getEnv("GW_EXCHANGER_PORT", "50051")

	// JWT config
	cfg.JWTSecret = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	cfg.JWTExp = time.Duration(getInt("JWT_EXP_SECOND", "604800")) * time.Second

	// Stripe config, card deposits are disabled without a key
	cfg.StripeSecretKey = getEnv("STRIPE_SECRET_KEY", "")
	cfg.StripeWebhookSecret = getEnv("STRIPE_WEBHOOK_SECRET", "")

	// Worker config
	cfg.WithdrawalDelay = time.Duration(getInt("WITHDRAWAL_DELAY_SECOND", "3")) * time.Second
	cfg.WorkerInterval = time.Duration(getInt("WORKER_INTERVAL_MS", "500")) * time.Millisecond

	// HTTP config
	cfg.RateLimitRequests = int64(getInt("RATE_LIMIT_REQUESTS", "10"))
	cfg.RateLimitWindow = time.Duration(getInt("RATE_LIMIT_WINDOW_SECOND", "60")) * time.Second
	cfg.CORSOrigins = getList("CORS_ORIGINS", "*")
	cfg.CryptoRateCacheTTL = time.Duration(getInt("CRYPTO_RATE_CACHE_SECOND", "60")) * time.Second

	return cfg, err
}

// run initializes the logger, database, Redis, Kafka, the gRPC client, the
// withdrawal worker and the HTTP server, then blocks until shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, "service", "shell-market"); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if cfg.AutoMigrate {
		if err := migrations.Up(db.DB); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		logger.Log.Info("Database schema is up to date")
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Publishing ledger events to %s", cfg.KafkaTopic)
	}

	// Connect to gRPC service
	grpcAddr := fmt.Sprintf("%s:%s", cfg.GWHost, cfg.GWPort)
	conn, err := grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("failed to connect to gRPC service at %s: %w", grpcAddr, err)
	}
	defer conn.Close()
	exchangeFacade := facades.NewExchangeRatesGRPCFacade(pb.NewExchangeServiceClient(conn))

	// Payment provider
	var paymentProvider services.PaymentProvider
	if cfg.StripeSecretKey != "" {
		paymentProvider = facades.NewStripeFacade(cfg.StripeSecretKey, cfg.StripeWebhookSecret, nil)
	} else {
		logger.Log.Warn("STRIPE_SECRET_KEY is not set, card deposits are disabled")
	}

	// Initialize JWT service
	jwtSvc := jwt.New(jwt.WithSecretKey(cfg.JWTSecret), jwt.WithExpiration(cfg.JWTExp))

	// Initialize repositories
	txManager := repositories.NewTxManager(db)
	accountRepo := repositories.NewAccountRepository(db, repositories.GetTxFromContext)
	listingRepo := repositories.NewListingRepository(db, repositories.GetTxFromContext)
	purchaseRepo := repositories.NewPurchaseRepository(db, repositories.GetTxFromContext)
	transactionRepo := repositories.NewTransactionRepository(db, repositories.GetTxFromContext)
	withdrawalQueueRepo := repositories.NewWithdrawalQueueRepository(rdb)
	rateLimitRepo := repositories.NewRateLimitRepository(rdb)
	cryptoRateRepo := repositories.NewCryptoRateCacheRepository(rdb, cfg.CryptoRateCacheTTL)

	// Initialize services
	settlementService := services.NewSettlementService(
		txManager, accountRepo, listingRepo, purchaseRepo, transactionRepo,
		nil, kafkaWriter, services.DefaultSettlementConfig(),
	)

	workerCfg := workers.DefaultConfig()
	workerCfg.Delay = cfg.WithdrawalDelay
	workerCfg.Interval = cfg.WorkerInterval
	withdrawalProcessor := workers.NewWithdrawalProcessor(
		withdrawalQueueRepo, settlementService, settlementService, transactionRepo, workerCfg,
	)
	settlementService.SetScheduler(withdrawalProcessor)

	authService := services.NewAuthService(txManager, accountRepo, transactionRepo, jwtSvc)
	listingsService := services.NewListingsService(listingRepo)
	walletService := services.NewWalletService(accountRepo, transactionRepo, settlementService)
	rateQuoter := services.NewCryptoRateQuoter(exchangeFacade, cryptoRateRepo)
	paymentsService := services.NewPaymentsService(
		paymentProvider, settlementService, accountRepo, rateQuoter, services.DefaultPaymentsConfig(),
	)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService, jwtSvc.Expiration())
	loginHandler := handlers.NewLoginHandler(authService, jwtSvc.Expiration())
	logoutHandler := handlers.NewLogoutHandler()
	meHandler := handlers.NewMeHandler(authService)
	listListingsHandler := handlers.NewListListingsHandler(listingsService)
	getListingHandler := handlers.NewGetListingHandler(listingsService)
	createListingHandler := handlers.NewCreateListingHandler(listingsService)
	updateListingHandler := handlers.NewUpdateListingHandler(listingsService)
	deleteListingHandler := handlers.NewDeleteListingHandler(listingsService)
	purchaseHandler := handlers.NewPurchaseHandler(settlementService)
	walletHandler := handlers.NewWalletHandler(walletService)
	depositHandler := handlers.NewDepositHandler(walletService)
	cardDepositHandler := handlers.NewCardDepositHandler(paymentsService)
	cryptoDepositHandler := handlers.NewCryptoDepositHandler(paymentsService)
	withdrawHandler := handlers.NewWithdrawHandler(settlementService)
	stripeWebhookHandler := handlers.NewStripeWebhookHandler(paymentsService)
	settleDepositHandler := handlers.NewSettleDepositHandler(paymentsService)
	reconcileHandler := handlers.NewReconcileHandler(settlementService)
	healthHandler := handlers.NewHealthHandler(db)

	authMiddleware := middlewares.AuthMiddleware(jwtSvc)
	rateLimit := middlewares.RateLimitMiddleware(rateLimitRepo, cfg.RateLimitRequests, cfg.RateLimitWindow)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.MetricsMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Stripe-Signature"},
		ExposedHeaders:   []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", healthHandler)
	r.Handle("/metrics", promhttp.Handler())
	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/auth/register", registerHandler)
		r.Post("/auth/login", loginHandler)
		r.Post("/auth/logout", logoutHandler)
		r.Get("/listings", listListingsHandler)
		r.Get("/listings/{id}", getListingHandler)
		r.Post("/webhooks/stripe", stripeWebhookHandler)

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Get("/auth/me", meHandler)
			r.Post("/listings", createListingHandler)
			r.Put("/listings/{id}", updateListingHandler)
			r.Delete("/listings/{id}", deleteListingHandler)
			r.With(rateLimit).Post("/listings/{id}/buy", purchaseHandler)
			r.Get("/wallet", walletHandler)
			r.Post("/wallet/deposit", depositHandler)
			r.With(rateLimit).Post("/wallet/deposit/card", cardDepositHandler)
			r.With(rateLimit).Post("/wallet/deposit/crypto", cryptoDepositHandler)
			r.Post("/wallet/withdraw", withdrawHandler)

			r.Group(func(r chi.Router) {
				r.Use(middlewares.RequireRole(models.RoleAdmin))
				r.Post("/admin/deposits/{reference}/settle", settleDepositHandler)
				r.Get("/admin/accounts/{id}/reconcile", reconcileHandler)
			})
		})
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Log.Info("Withdrawal processor started")
		if err := withdrawalProcessor.Run(ctxShutdown); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			logger.Log.Errorw("withdrawal processor stopped", "error", err)
		}
	}()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		stop()
		wg.Wait()
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}
	wg.Wait()

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
