package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	coreport "github.com/amirhossein-jamali/tip-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/tip-processor/internal/domain/usecase/callback"
	transactionUseCase "github.com/amirhossein-jamali/tip-processor/internal/domain/usecase/transaction"
	withdrawalUseCase "github.com/amirhossein-jamali/tip-processor/internal/domain/usecase/withdrawal"

	"github.com/amirhossein-jamali/tip-processor/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/tip-processor/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/tip-processor/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/tip-processor/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/tip-processor/internal/infrastructure/adapter/gateway/mpesa"
	"github.com/amirhossein-jamali/tip-processor/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/tip-processor/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/tip-processor/internal/infrastructure/adapter/notifier"
	"github.com/amirhossein-jamali/tip-processor/internal/infrastructure/adapter/scheduler"
	timeProvider "github.com/amirhossein-jamali/tip-processor/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/tip-processor/internal/infrastructure/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLoggerWithOptions(logger.Options{
		Production: cfg.Environment == config.Production,
		Level:      cfg.Logger.Level,
		CallerInfo: cfg.Logger.CallerInfo,
	})
	defer func() { _ = appLogger.Flush() }()

	if err := run(cfg, appLogger); err != nil {
		appLogger.Error("Service stopped with error", map[string]any{"error": err.Error()})
		_ = appLogger.Flush()
		os.Exit(1)
	}
}

func run(cfg *config.Config, appLogger coreport.Logger) error {
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp := timeProvider.NewRealTimeProvider()

	var recorder coreport.Metrics = metrics.NewNoopRecorder()
	var promRecorder *metrics.PrometheusRecorder
	if cfg.Metrics.Enabled {
		promRecorder = metrics.NewPrometheusRecorder(cfg.Metrics.Namespace)
		recorder = promRecorder
	}

	// Database
	dbManager := database.NewManager(database.FromAppConfig(cfg), appLogger, tp)
	if _, err := dbManager.Connect(rootCtx); err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			appLogger.Error("Failed to close database", map[string]any{"error": err.Error()})
		}
	}()

	if err := dbManager.MigrationManager().MigrateAll(rootCtx); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	if promRecorder != nil {
		if sqlDB, err := dbManager.SQLDB(); err == nil {
			if err := promRecorder.RegisterDB(sqlDB, cfg.Database.Database); err != nil {
				appLogger.Warn("Database pool metrics unavailable", map[string]any{"error": err.Error()})
			}
		}
	}

	uow, err := dbManager.CreateUnitOfWork()
	if err != nil {
		return fmt.Errorf("create unit of work: %w", err)
	}

	if cfg.Database.SeedCreators {
		created, err := migration.CreateDefaultCreators(rootCtx, uow.GetCreatorRepository(rootCtx), tp)
		if err != nil {
			appLogger.Error("Failed to create default creators", map[string]any{"error": err.Error()})
		} else if created > 0 {
			appLogger.Info("Default creators created", map[string]any{"count": created})
		}
	}

	// Gateway; the transport is chosen once here and nowhere else
	gwConfig := mpesa.FromAppConfig(cfg.Mpesa)
	var transport mpesa.Transport
	if gwConfig.Simulate {
		sandbox := mpesa.NewSandboxTransport(gwConfig.SimulatorWorkers, gwConfig.CallbackTimeout, gwConfig.SimulatePush, appLogger, tp)
		defer sandbox.Close()
		transport = sandbox
	} else {
		transport = mpesa.NewHTTPTransport(gwConfig.BaseURL, gwConfig.AuthTimeout, gwConfig.RequestTimeout)
	}
	gatewayClient := mpesa.NewClient(gwConfig, transport, appLogger, recorder, tp)

	// Live events
	hub := notifier.NewHub(cfg.Notifier.BufferSize, appLogger, recorder)
	defer hub.Close()

	// Use cases
	txConfig, err := transactionConfig(cfg)
	if err != nil {
		return err
	}
	transactions := transactionUseCase.NewTransactionService(uow, gatewayClient, hub, tp, appLogger, recorder, txConfig)

	wdConfig, err := withdrawalConfig(cfg)
	if err != nil {
		return err
	}
	withdrawals := withdrawalUseCase.NewWithdrawalUseCase(uow, gatewayClient, tp, appLogger, recorder, wdConfig)

	callbacks := callback.NewCallbackService(transactions, withdrawals, callback.RetryPolicy{
		MaxAttempts:   cfg.Callback.RetryAttempts,
		InitialDelay:  cfg.Callback.RetryDelay,
		BackoffFactor: cfg.Callback.BackoffFactor,
	}, appLogger, recorder)

	// Sweeper
	var sweeper *scheduler.Sweeper
	if cfg.Sweeper.Enabled {
		sweeper = scheduler.NewSweeper(transactions, cfg.Sweeper.Interval, cfg.Sweeper.Window, appLogger)
		sweeper.Start(rootCtx)
	}

	// HTTP
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, recorder, cfg.Server.AllowedOrigins)

	h := routes.Handlers{
		Transactions: handler.NewTransactionHandler(transactions, appLogger),
		Withdrawals:  handler.NewWithdrawalHandler(withdrawals, appLogger),
		Callbacks:    handler.NewCallbackHandler(callbacks, appLogger, recorder, 0),
		Events:       handler.NewEventHandler(hub, appLogger, cfg.Notifier.Heartbeat),
		Health:       handler.NewHealthHandler(dbManager),
		MetricsPath:  cfg.Metrics.Path,
	}
	if promRecorder != nil {
		h.Metrics = promRecorder.Handler()
	}
	routes.SetupRoutes(router, h)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":      server.Addr,
			"env":       cfg.Environment,
			"simulated": gwConfig.Simulate,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-rootCtx.Done():
	}

	appLogger.Info("Shutting down server...", nil)

	if sweeper != nil {
		sweeper.Stop()
	}

	// live streams never finish on their own; disconnect them before draining
	hub.Close()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
	}

	appLogger.Info("Server exited gracefully", nil)
	return nil
}

func transactionConfig(cfg *config.Config) (transactionUseCase.Config, error) {
	out := transactionUseCase.DefaultConfig()

	minAmount := decimal.Zero
	if cfg.Payments.MinAmount != "" {
		var err error
		if minAmount, err = decimal.NewFromString(cfg.Payments.MinAmount); err != nil {
			return out, fmt.Errorf("payments.minAmount: %w", err)
		}
	}
	maxAmount, err := decimal.NewFromString(cfg.Payments.MaxAmount)
	if err != nil {
		return out, fmt.Errorf("payments.maxAmount: %w", err)
	}

	out.MinAmount = minAmount
	out.MaxAmount = maxAmount
	out.SweepBatchSize = cfg.Sweeper.BatchSize
	return out, nil
}

func withdrawalConfig(cfg *config.Config) (withdrawalUseCase.Config, error) {
	out := withdrawalUseCase.Config{
		Remarks:        cfg.Withdrawal.Remarks,
		AllowReprocess: cfg.Withdrawal.AllowReprocess,
	}
	if cfg.Withdrawal.MaxAmount != "" {
		maxAmount, err := decimal.NewFromString(cfg.Withdrawal.MaxAmount)
		if err != nil {
			return out, fmt.Errorf("withdrawal.maxAmount: %w", err)
		}
		out.MaxAmount = maxAmount
	}
	return out, nil
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.Database.Host == "" {
		missingConfigs = append(missingConfigs, "database.host (or TP_DB_HOST)")
	}
	if cfg.Database.Port == "" {
		missingConfigs = append(missingConfigs, "database.port (or TP_DB_PORT)")
	}
	if cfg.Database.Username == "" {
		missingConfigs = append(missingConfigs, "database.username (or TP_DB_USERNAME)")
	}
	if cfg.Database.Password == "" && cfg.Environment == config.Production {
		missingConfigs = append(missingConfigs, "database.password (or TP_DB_PASSWORD)")
	}
	if cfg.Database.Database == "" {
		missingConfigs = append(missingConfigs, "database.database (or TP_DB_NAME)")
	}

	// real gateway calls need credentials; the sandbox transport does not
	if !cfg.Mpesa.Simulate {
		required := map[string]string{
			"mpesa.consumerKey (or TP_MPESA_CONSUMER_KEY)":          cfg.Mpesa.ConsumerKey,
			"mpesa.consumerSecret (or TP_MPESA_CONSUMER_SECRET)":    cfg.Mpesa.ConsumerSecret,
			"mpesa.shortCode (or TP_MPESA_SHORTCODE)":               cfg.Mpesa.ShortCode,
			"mpesa.passkey (or TP_MPESA_PASSKEY)":                   cfg.Mpesa.Passkey,
			"mpesa.callbackBaseURL (or TP_MPESA_CALLBACK_BASE_URL)": cfg.Mpesa.CallbackBaseURL,
		}
		for key, val := range required {
			if val == "" {
				missingConfigs = append(missingConfigs, key)
			}
		}
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if cfg.Environment == config.Production {
		var problems []string

		if cfg.Mpesa.Simulate {
			problems = append(problems, "mpesa.simulate must be false in production")
		}
		if cfg.Withdrawal.AllowReprocess {
			problems = append(problems, "withdrawal.allowReprocess must be false in production")
		}
		if len(problems) > 0 {
			return fmt.Errorf("unsafe production configuration: %v", problems)
		}

		var warnings []string
		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}
		if cfg.Mpesa.InitiatorName == "" || cfg.Mpesa.SecurityCredential == "" {
			warnings = append(warnings, "B2C credentials are not set; withdrawals will fail")
		}
		if len(warnings) > 0 {
			log.Printf("Warning: potential issues in production configuration: %v", warnings)
		}
	}

	return nil
}
