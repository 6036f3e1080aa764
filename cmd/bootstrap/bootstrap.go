package bootstrap

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospitaldesk/config"
	"hospitaldesk/internal/dashboard"
	deliveryHttp "hospitaldesk/internal/delivery/http"
	"hospitaldesk/internal/delivery/http/handler"
	"hospitaldesk/internal/delivery/http/middleware"
	"hospitaldesk/internal/infrastructure/cache"
	"hospitaldesk/internal/infrastructure/database"
	"hospitaldesk/internal/jobs"
	"hospitaldesk/internal/repository"
	"hospitaldesk/internal/service"
	"hospitaldesk/internal/usecase"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	Overview    *service.OverviewService
	Jobs        *jobs.Runner
	Sessions    []*dashboard.Session
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	applyLogLevel(cfg.App.LogLevel)
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Initialize Redis; the desk keeps working without it, counters just
	// fall back to database counts.
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	if redisClient != nil {
		logrus.Info("Redis connected successfully")
	}

	// Initialize all layers
	server, overview := initializeServer(cfg, db, redisClient)
	app.Server = server
	app.Overview = overview

	// Seed the Redis counters from the database. Failure is not fatal, the
	// nightly job and the Summary fallback cover for it.
	syncCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := overview.SyncFromDatabase(syncCtx); err != nil {
		logrus.Warnf("Initial counter sync failed: %+v", err)
	}

	// Start scheduled background jobs
	runner, err := jobs.Start(logrus.StandardLogger(), overview)
	if err != nil {
		return nil, fmt.Errorf("failed to start background jobs: %w", err)
	}
	app.Jobs = runner

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

func applyLogLevel(levelName string) {
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		logrus.Warnf("Unknown log level %q, staying on info", levelName)
		return
	}
	logrus.SetLevel(level)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, *service.OverviewService) {
	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	patientRepo := repository.NewPatientRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	billRepo := repository.NewBillRepository(db)

	// Initialize services
	overviewService := service.NewOverviewService(redisClient, log, patientRepo, appointmentRepo, billRepo)

	// Initialize usecases
	patientUsecase := usecase.NewPatientUsecase(log, patientRepo, overviewService)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, appointmentRepo, patientRepo, overviewService)
	billingUsecase := usecase.NewBillingUsecase(log, billRepo, patientRepo, overviewService)
	overviewUsecase := usecase.NewOverviewUsecase(overviewService)

	// Initialize handlers
	overviewHandler := handler.NewOverviewHandler(overviewUsecase)
	patientHandler := handler.NewPatientHandler(patientUsecase)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase)
	billHandler := handler.NewBillHandler(billingUsecase)
	pageHandler := handler.NewPageHandler(log, patientUsecase, appointmentUsecase, billingUsecase, overviewUsecase)

	// Initialize middleware
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(overviewHandler, patientHandler, appointmentHandler, billHandler, pageHandler, loggingMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}

	return server, overviewService
}

// Run starts the HTTP server, attaches the dashboard sessions and handles
// graceful shutdown
func (app *App) Run() {
	// Bind before the dashboard sessions start polling so their first
	// refresh finds the port open.
	listener, err := net.Listen("tcp", app.Server.Addr)
	if err != nil {
		logrus.Fatalf("Failed to listen on %s: %v", app.Server.Addr, err)
	}

	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.Serve(listener); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.startSessions()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// startSessions attaches one dashboard session per configured page.
func (app *App) startSessions() {
	if !app.Config.Dashboard.Enabled {
		logrus.Info("Dashboard sessions disabled")
		return
	}

	log := logrus.StandardLogger()

	baseURL := app.Config.App.BaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("http://127.0.0.1:%s", app.Config.App.Port)
	}
	client := dashboard.NewClient(baseURL, log)

	for _, page := range app.Config.Dashboard.Pages {
		session := dashboard.NewSession(page, client, log)
		session.Start()
		app.Sessions = append(app.Sessions, session)
	}

	logrus.Infof("Dashboard sessions started for pages: %v", app.Config.Dashboard.Pages)
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Stop pollers first so nothing fetches during teardown
	for _, session := range app.Sessions {
		session.Stop()
	}

	if app.Jobs != nil {
		app.Jobs.Stop()
	}

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
