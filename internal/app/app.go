package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studio_backend/internal/auth"
	"studio_backend/internal/config"
	"studio_backend/internal/email"
	"studio_backend/internal/handlers"
	"studio_backend/internal/logger"
	"studio_backend/internal/middleware"
	"studio_backend/internal/models"
	"studio_backend/internal/repositories"
	"studio_backend/internal/routes"
	"studio_backend/internal/services"
	"studio_backend/internal/storage"
	"studio_backend/internal/validator"
	"studio_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := migrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ginRouter := SetupRouter(ctx, cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the full gin engine with all dependencies wired. The
// context bounds background workers started here.
func SetupRouter(ctx context.Context, cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	serviceContainer := initializeServices(cfg, storageInstance)
	appHandlers := initializeHandlers(cfg, serviceContainer, storageInstance)

	evaluationWorker := workers.NewEvaluationWorker(
		gormDB,
		serviceContainer.EvaluationService,
		time.Duration(cfg.Worker.EvaluationInterval)*time.Second,
	)
	evaluationWorker.Start(ctx)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

// ServiceContainer groups every service the handlers depend on.
type ServiceContainer struct {
	IntakeService     services.IntakeService
	CastingService    services.CastingService
	SponsorService    services.SponsorService
	MovieService      services.MovieService
	SettingsService   services.SettingsService
	AuthService       services.AuthService
	EvaluationService services.EvaluationService
}

// newEmailProvider selects the outgoing-mail backend. Without an SMTP
// credential the site keeps working; messages degrade to log lines.
func newEmailProvider(cfg *config.Config) (email.Provider, error) {
	if !cfg.EmailConfigured() {
		logger.Warn("SMTP is not configured; outgoing email will only be logged")
		return email.NewLogProvider(), nil
	}
	return email.NewSMTPProvider(email.Config{
		SMTPHost:  cfg.Email.SMTPHost,
		SMTPPort:  cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	})
}

func initializeServices(cfg *config.Config, storageInstance storage.Storage) *ServiceContainer {
	emailProvider, err := newEmailProvider(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize SMTP provider", "error", err)
	}

	applicationRepo := repositories.NewCastingApplicationRepository()
	sponsorRepo := repositories.NewSponsorRepository()
	movieRepo := repositories.NewMovieRepository()
	settingsRepo := repositories.NewSettingsRepository()
	userRepo := repositories.NewUserRepository()

	notifier := services.NewNotificationService(emailProvider, settingsRepo, services.NotifierConfig{
		StudioName:   cfg.Email.FromName,
		SupportEmail: cfg.Email.FromEmail,
		AdminEmail:   cfg.Email.AdminEmail,
	})

	intakeService := services.NewIntakeService(applicationRepo, sponsorRepo, storageInstance, notifier, services.IntakeConfig{
		MaxFileSize: cfg.Upload.MaxSize,
		ImageTypes:  cfg.Upload.ImageTypes,
		AudioTypes:  cfg.Upload.AudioTypes,
	})

	return &ServiceContainer{
		IntakeService:     intakeService,
		CastingService:    services.NewCastingService(applicationRepo, notifier),
		SponsorService:    services.NewSponsorService(sponsorRepo),
		MovieService:      services.NewMovieService(movieRepo),
		SettingsService:   services.NewSettingsService(settingsRepo),
		AuthService:       services.NewAuthService(userRepo),
		EvaluationService: services.NewEvaluationService(applicationRepo, services.NewKeywordEvaluator()),
	}
}

func initializeHandlers(cfg *config.Config, container *ServiceContainer, storageInstance storage.Storage) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	appHandlers := &handlers.AppHandlers{
		AuthHandler:     handlers.NewAuthHandler(baseHandler, container.AuthService),
		CastingHandler:  handlers.NewCastingHandler(baseHandler, container.IntakeService, container.CastingService, container.EvaluationService),
		SponsorHandler:  handlers.NewSponsorHandler(baseHandler, container.IntakeService, container.SponsorService),
		MovieHandler:    handlers.NewMovieHandler(baseHandler, container.MovieService),
		SettingsHandler: handlers.NewSettingsHandler(baseHandler, container.SettingsService),
	}

	if cfg.Storage.Type == "local" {
		appHandlers.FileHandler = handlers.NewFileHandler(baseHandler, storageInstance)
	}

	return appHandlers
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

func migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("failed to enable uuid-ossp: %w", err)
	}
	return db.AutoMigrate(
		&models.CastingApplication{},
		&models.Sponsor{},
		&models.Movie{},
		&models.SiteSettings{},
		&models.User{},
	)
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.Admin.FirstAdminEmail
	adminPassword := cfg.Admin.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}
	if err := auth.ValidatePassword(adminPassword); err != nil {
		return fmt.Errorf("first admin password rejected: %w", err)
	}

	tx := db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	defer tx.Rollback()

	var adminUser models.User
	result := tx.Where("email = ?", adminEmail).First(&adminUser)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	adminUser = models.User{
		Email:        adminEmail,
		PasswordHash: hash,
		Name:         "Administrator",
		Role:         models.UserRoleAdmin,
		Status:       models.UserStatusActive,
	}
	if err := tx.Create(&adminUser).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit admin seeding: %w", err)
	}

	logger.Info("First admin user created", "email", adminEmail)
	return nil
}
