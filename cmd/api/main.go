package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/statement-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/statement-ledger/internal/domain/port/messaging"
	"github.com/amirhossein-jamali/statement-ledger/internal/domain/port/persistence"
	statementUseCase "github.com/amirhossein-jamali/statement-ledger/internal/domain/usecase/statement"
	userUseCase "github.com/amirhossein-jamali/statement-ledger/internal/domain/usecase/user"
	"github.com/amirhossein-jamali/statement-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/statement-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/statement-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/statement-ledger/internal/infrastructure/adapter/events"
	"github.com/amirhossein-jamali/statement-ledger/internal/infrastructure/adapter/identifier"
	"github.com/amirhossein-jamali/statement-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/statement-ledger/internal/infrastructure/adapter/memory"
	"github.com/amirhossein-jamali/statement-ledger/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/statement-ledger/internal/infrastructure/adapter/security"
	"github.com/amirhossein-jamali/statement-ledger/internal/infrastructure/adapter/seed"
	timeProvider "github.com/amirhossein-jamali/statement-ledger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/statement-ledger/internal/infrastructure/config"
)

const serviceName = "statement-ledger"

// ledgerStore bundles the persistence ports of one backend
type ledgerStore struct {
	users      persistence.UserDirectory
	statements persistence.StatementStore
	uow        persistence.UnitOfWork
	checks     map[string]handler.HealthCheck
	close      func() error
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Production: cfg.IsProduction() || cfg.Logger.Format == "json",
		Level:      cfg.Logger.Level,
		Service:    serviceName,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	if err := run(cfg, appLogger); err != nil {
		appLogger.Error("Service stopped with error", map[string]any{
			"error": err.Error(),
		})
		_ = appLogger.Flush()
		os.Exit(1)
	}
}

func run(cfg *config.Config, appLogger coreport.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp := timeProvider.NewRealTimeProvider()
	ids := identifier.NewUUIDGenerator()

	store, err := buildStore(ctx, cfg, appLogger, tp, ids)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.close(); err != nil {
			appLogger.Error("Failed to close ledger store", map[string]any{
				"error": err.Error(),
			})
		}
	}()

	publisher, err := buildPublisher(cfg, appLogger)
	if err != nil {
		return err
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			appLogger.Error("Failed to close event publisher", map[string]any{
				"error": err.Error(),
			})
		}
	}()

	// Initialize use cases
	userUseCaseImpl := userUseCase.NewUserUseCase(store.users, security.NewBcryptHasher(cfg.Ledger.BcryptCost), appLogger)
	statementUseCaseImpl := statementUseCase.NewStatementUseCase(store.users, store.statements, store.uow, publisher, appLogger)

	if cfg.Seed.Path != "" {
		loader := seed.NewLoader(userUseCaseImpl, statementUseCaseImpl, appLogger)
		if _, err := loader.LoadFile(ctx, cfg.Seed.Path); err != nil {
			// A broken seed file must not keep the service down
			appLogger.Error("Failed to seed users", map[string]any{
				"path":  cfg.Seed.Path,
				"error": err.Error(),
			})
		}
	}

	// Initialize API handlers
	userHandler := handler.NewUserHandler(userUseCaseImpl, appLogger)
	statementHandler := handler.NewStatementHandler(statementUseCaseImpl, appLogger)
	healthHandler := handler.NewHealthHandler(store.checks, 0)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, ids, tp)
	routes.SetupRoutes(router, userHandler, statementHandler, healthHandler)

	server := &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"address": cfg.Server.Address(),
			"env":     cfg.Environment,
			"store":   cfg.Ledger.Store,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
	}

	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
	return nil
}

// buildStore wires the configured ledger backend
func buildStore(
	ctx context.Context,
	cfg *config.Config,
	appLogger coreport.Logger,
	tp coreport.TimeProvider,
	ids coreport.IDGenerator,
) (*ledgerStore, error) {
	if cfg.Ledger.Store == config.StoreMemory {
		statements := memory.NewStatementStore(ids, tp)
		return &ledgerStore{
			users:      memory.NewUserDirectory(ids, tp),
			statements: statements,
			uow:        memory.NewUnitOfWork(statements, cfg.Ledger.LockTimeout()),
			close:      func() error { return nil },
		}, nil
	}

	dbManager := database.NewManager(database.FromAppConfig(cfg), appLogger, tp)
	db, err := dbManager.Connect(ctx)
	if err != nil {
		return nil, err
	}

	if cfg.Database.AutoMigrate {
		if err := dbManager.Migrate(ctx); err != nil {
			_ = dbManager.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	return &ledgerStore{
		users:      repository.NewUserRepository(db, ids, tp, appLogger),
		statements: repository.NewStatementRepository(db, ids, tp, appLogger),
		uow:        dbManager.NewUnitOfWork(ids),
		checks: map[string]handler.HealthCheck{
			"database": dbManager.Ping,
		},
		close: dbManager.Close,
	}, nil
}

// buildPublisher returns the Kafka publisher when events are enabled
func buildPublisher(cfg *config.Config, appLogger coreport.Logger) (messaging.StatementPublisher, error) {
	if !cfg.Events.Enabled {
		return events.NoopPublisher{}, nil
	}

	publisher, err := events.NewKafkaPublisher(events.KafkaConfig{
		Brokers:      cfg.Events.Brokers,
		Topic:        cfg.Events.Topic,
		WriteTimeout: cfg.Events.WriteTimeout,
	}, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create event publisher: %w", err)
	}

	appLogger.Info("Statement events enabled", map[string]any{
		"brokers": cfg.Events.Brokers,
		"topic":   cfg.Events.Topic,
	})
	return publisher, nil
}
