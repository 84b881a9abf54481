package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sponsorhub_backend/database"
	"sponsorhub_backend/internal/auth"
	"sponsorhub_backend/internal/cache"
	"sponsorhub_backend/internal/config"
	"sponsorhub_backend/internal/email"
	"sponsorhub_backend/internal/handlers"
	"sponsorhub_backend/internal/logger"
	"sponsorhub_backend/internal/middleware"
	"sponsorhub_backend/internal/models"
	"sponsorhub_backend/internal/repositories"
	"sponsorhub_backend/internal/routes"
	"sponsorhub_backend/internal/services"
	"sponsorhub_backend/internal/validator"
	"sponsorhub_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	redisCache := cache.New(
		cfg.Redis.Addr,
		cfg.Redis.Password,
		cfg.Redis.DB,
		time.Duration(cfg.Cache.TTLSeconds)*time.Second,
	)
	if err := redisCache.Ping(context.Background()); err != nil {
		// The cache degrades to direct DB reads, so a dead Redis is not fatal.
		logger.Warn("Redis unavailable, caching disabled", "error", err.Error())
	} else {
		logger.Info("Redis connected", "addr", cfg.Redis.Addr)
	}

	serviceContainer := initializeServices(cfg, gormDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	startWorkers(ctx, cfg, gormDB, serviceContainer.EmailProvider)

	ginRouter := SetupRouter(serviceContainer, redisCache)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(serviceContainer *services.ServiceContainer, redisCache *cache.Cache) *gin.Engine {
	appHandlers := initializeHandlers(serviceContainer, redisCache)
	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers)
	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	emailProvider := newEmailProvider(cfg)

	userRepo := repositories.NewUserRepository(gormDB)
	profileRepo := repositories.NewProfileRepository(gormDB)
	campaignRepo := repositories.NewCampaignRepository(gormDB)
	adRequestRepo := repositories.NewAdRequestRepository(gormDB)

	return &services.ServiceContainer{
		AuthService:      services.NewAuthService(userRepo, profileRepo),
		ProfileService:   services.NewProfileService(userRepo, profileRepo),
		CampaignService:  services.NewCampaignService(profileRepo, campaignRepo, adRequestRepo),
		AdRequestService: services.NewAdRequestService(profileRepo, campaignRepo, adRequestRepo),
		AdminService:     services.NewAdminService(userRepo, profileRepo, campaignRepo, adRequestRepo),
		EmailProvider:    emailProvider,
	}
}

func initializeHandlers(container *services.ServiceContainer, redisCache *cache.Cache) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler: handlers.NewAuthHandler(baseHandler, container.AuthService),
		SponsorHandler: handlers.NewSponsorHandler(
			baseHandler,
			container.ProfileService,
			container.CampaignService,
			container.AdRequestService,
			redisCache,
		),
		InfluencerHandler: handlers.NewInfluencerHandler(
			baseHandler,
			container.ProfileService,
			container.CampaignService,
			container.AdRequestService,
			redisCache,
		),
		AdminHandler: handlers.NewAdminHandler(baseHandler, container.AdminService, redisCache),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

func newEmailProvider(cfg *config.Config) email.Provider {
	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP not configured, using mock email provider")
		return &MockEmailProvider{}
	}

	provider, err := email.NewSMTPProvider(email.Config{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	})
	if err != nil {
		logger.Fatal("Failed to initialize email provider", "error", err)
	}
	if err := provider.Validate(); err != nil {
		logger.Warn("Email provider misconfigured, using mock", "error", err.Error())
		return &MockEmailProvider{}
	}
	return provider
}

func startWorkers(ctx context.Context, cfg *config.Config, gormDB *gorm.DB, emailProvider email.Provider) {
	profileRepo := repositories.NewProfileRepository(gormDB)
	campaignRepo := repositories.NewCampaignRepository(gormDB)
	adRequestRepo := repositories.NewAdRequestRepository(gormDB)

	reminder := workers.NewReminderWorker(
		profileRepo, adRequestRepo, emailProvider,
		time.Duration(cfg.Jobs.ReminderIntervalMinutes)*time.Minute,
	)
	reminder.Start(ctx)

	report := workers.NewReportWorker(
		profileRepo, campaignRepo, adRequestRepo, emailProvider,
		time.Duration(cfg.Jobs.ReportIntervalMinutes)*time.Minute,
	)
	report.Start(ctx)

	logger.Info("Background workers started",
		"reminder_interval_min", cfg.Jobs.ReminderIntervalMinutes,
		"report_interval_min", cfg.Jobs.ReportIntervalMinutes,
	)
}

// seedFirstAdmin creates the platform admin account on first boot. The
// admin is the only account never registered through the API.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminUsername := cfg.FirstAdminUsername
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}
	if adminUsername == "" {
		adminUsername = "admin"
	}

	var adminUser models.User
	result := db.Where("email = ?", adminEmail).First(&adminUser)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found. Creating first admin...", "email", adminEmail)

	hashedPassword, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Username:     adminUsername,
		Email:        adminEmail,
		PasswordHash: hashedPassword,
		Role:         models.UserRoleAdmin,
		Flagged:      models.FlagStatusActive,
	}
	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user in database: %w", err)
	}

	logger.Info("Successfully created first admin user", "email", adminEmail)
	return nil
}
