package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-management-api/config"
	"hospital-management-api/internal/delivery/dto"
	deliveryHttp "hospital-management-api/internal/delivery/http"
	"hospital-management-api/internal/delivery/http/handler"
	"hospital-management-api/internal/delivery/http/middleware"
	"hospital-management-api/internal/infrastructure/cache"
	"hospital-management-api/internal/infrastructure/database"
	"hospital-management-api/internal/infrastructure/store"
	"hospital-management-api/internal/repository"
	"hospital-management-api/internal/usecase"
	"hospital-management-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New(cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	// Setup logger
	app.Log = setupLogger(cfg.App.Debug)

	// Initialize the data store
	stores, err := app.newStoreProvider()
	if err != nil {
		return nil, err
	}

	// Initialize Redis; the hospital network feature is optional
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		app.Log.Info("Redis connected successfully")
	} else {
		app.Log.Info("REDIS_ADDR not set, hospital network routes disabled")
	}

	app.Server = app.initializeServer(stores)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(debug bool) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// newStoreProvider reaches the tables over SQL when DATABASE_URL is set and
// over the REST API otherwise.
func (app *App) newStoreProvider() (*store.Provider, error) {
	cfg := app.Config

	if cfg.DB.URL != "" {
		db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Debug)
		if err != nil {
			return nil, err
		}
		app.DB = db
		app.Log.Info("Using direct PostgreSQL store")
		return store.NewProvider(store.Instrument(store.NewGormStore(db)), nil), nil
	}

	if cfg.Store.ServiceKey == "" {
		app.Log.Warn("SUPABASE_SERVICE_KEY not set, writes use the standard key")
	}
	app.Log.Infof("Using REST store at %s", cfg.Store.URL)
	return store.NewRESTProvider(cfg.Store.URL, cfg.Store.Key, cfg.Store.ServiceKey, store.RESTOptions{
		Timeout:    cfg.Store.Timeout,
		Instrument: true,
	}, app.Log), nil
}

// initializeServer creates and configures the HTTP server
func (app *App) initializeServer(stores *store.Provider) *http.Server {
	log := app.Log

	// Initialize validator
	customValidator := validator.NewValidator()
	dto.RegisterValidations(customValidator)

	// Initialize repositories
	hospitalRepo := repository.NewHospitalRepository(stores)
	patientRepo := repository.NewPatientRepository(stores)
	doctorRepo := repository.NewDoctorRepository(stores)
	departmentRepo := repository.NewDepartmentRepository(stores)
	appointmentRepo := repository.NewAppointmentRepository(stores)
	analyticsRepo := repository.NewAnalyticsRepository(stores)

	// Initialize usecases
	hospitalUsecase := usecase.NewHospitalUsecase(log, hospitalRepo)
	patientUsecase := usecase.NewPatientUsecase(log, patientRepo)
	doctorUsecase := usecase.NewDoctorUsecase(log, doctorRepo)
	departmentUsecase := usecase.NewDepartmentUsecase(log, departmentRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, appointmentRepo)
	analyticsUsecase := usecase.NewAnalyticsUsecase(log, analyticsRepo)

	// Initialize handlers
	handlers := deliveryHttp.Handlers{
		Hospitals:    handler.NewHospitalHandler(log, hospitalUsecase, customValidator),
		Patients:     handler.NewPatientHandler(log, patientUsecase, customValidator),
		Doctors:      handler.NewDoctorHandler(log, doctorUsecase, customValidator),
		Departments:  handler.NewDepartmentHandler(log, departmentUsecase, customValidator),
		Appointments: handler.NewAppointmentHandler(log, appointmentUsecase, customValidator),
		Analytics:    handler.NewAnalyticsHandler(log, analyticsUsecase),
	}
	if app.RedisClient != nil {
		networkUsecase := usecase.NewNetworkUsecase(log, repository.NewNetworkRepository(app.RedisClient))
		handlers.Network = handler.NewNetworkHandler(log, networkUsecase, customValidator)
	}

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware(app.Config.CORS.AllowedOrigins)

	// Initialize router
	router := deliveryHttp.NewRouter(log, handlers, corsMiddleware)

	return &http.Server{
		Addr:              app.Config.App.Addr(),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and blocks until SIGINT or SIGTERM.
func (app *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		app.Log.Infof("Server starting on %s", app.Server.Addr)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		app.Close()
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	app.shutdown()
	return nil
}

func (app *App) shutdown() {
	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		if sqlDB, err := app.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
