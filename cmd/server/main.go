package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	httpAdapter "github.com/ndk-1996/BankingService/internal/adapter/http"
	"github.com/ndk-1996/BankingService/internal/adapter/http/handler"
	postgresRepo "github.com/ndk-1996/BankingService/internal/adapter/repository/postgres"
	redisRepo "github.com/ndk-1996/BankingService/internal/adapter/repository/redis"
	"github.com/ndk-1996/BankingService/internal/infrastructure/config"
	"github.com/ndk-1996/BankingService/internal/infrastructure/locking"
	"github.com/ndk-1996/BankingService/internal/infrastructure/logger"
	"github.com/ndk-1996/BankingService/internal/infrastructure/postgres"
	"github.com/ndk-1996/BankingService/internal/infrastructure/redis"
	"github.com/ndk-1996/BankingService/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	zerolog.DefaultContextLogger = &log
	zlog.Logger = log

	ctx := context.Background()

	// Run migrations when asked to
	if cfg.RunMigrations {
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	operationTypeRepo := postgresRepo.NewOperationTypeRepository(pool)
	transactionRepo := postgresRepo.NewTransactionRepository(pool)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)

	// Initialize settlement engine and use cases
	accountLocks := locking.NewAccountLocks()
	engine := usecase.NewSettlementEngine(transactionRepo)
	accountUC := usecase.NewAccountUseCase(accountRepo)
	transactionUC := usecase.NewTransactionUseCase(txManager, operationTypeRepo, transactionRepo, engine, accountLocks)

	// Initialize handlers
	accountHandler := handler.NewAccountHandler(accountUC)
	transactionHandler := handler.NewTransactionHandler(transactionUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AccountHandler:     accountHandler,
		TransactionHandler: transactionHandler,
		HealthHandler:      healthHandler,
		IdempotencyStore:   idempotencyStore,
		IdempotencyTTL:     cfg.IdempotencyTTL,
		Logger:             log,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
