package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/peaceseal/peaceseal-backend/config"
	"github.com/peaceseal/peaceseal-backend/internal/app/controller"
	"github.com/peaceseal/peaceseal-backend/internal/app/repository"
	"github.com/peaceseal/peaceseal-backend/internal/app/service"
	"github.com/peaceseal/peaceseal-backend/internal/db"
	"github.com/peaceseal/peaceseal-backend/internal/middleware"
	"github.com/peaceseal/peaceseal-backend/internal/router"
	"github.com/peaceseal/peaceseal-backend/internal/scheduler"
	"github.com/peaceseal/peaceseal-backend/internal/storage"
	"github.com/peaceseal/peaceseal-backend/internal/websocket"
	"github.com/peaceseal/peaceseal-backend/pkg/logger"
	"github.com/peaceseal/peaceseal-backend/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})
	log := logger.Get()

	logger.Info("Starting Peace Seal Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Redis backs token revocation and the campaign total cache. Both fall
	// back gracefully, so an unreachable Redis is not fatal.
	if err := redis.Init(&cfg.Redis); err != nil {
		logger.Warn("Failed to connect to Redis, continuing without it", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		defer func() {
			if err := redis.Close(); err != nil {
				logger.Error("Failed to close Redis connection", err)
			}
		}()
	}

	// Initialize S3 storage for evidence uploads
	s3Storage := storage.NewS3Storage(
		cfg.S3.Region,
		cfg.S3.Bucket,
		cfg.S3.AccessKeyID,
		cfg.S3.SecretAccessKey,
		cfg.S3.BaseURL,
	)

	// Donation live feed hub
	hub := websocket.NewHub(log)
	go hub.Run()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.GetDB(), log)
	companyRepo := repository.NewCompanyRepository(db.GetDB(), log)
	questionnaireRepo := repository.NewQuestionnaireRepository(db.GetDB(), log)
	renewalRepo := repository.NewRenewalRepository(db.GetDB(), log)
	rewardRepo := repository.NewRewardRepository(db.GetDB(), log)
	issueRepo := repository.NewIssueRepository(db.GetDB(), log)
	campaignRepo := repository.NewCampaignRepository(db.GetDB(), log)
	donationRepo := repository.NewDonationRepository(db.GetDB(), log)
	pledgeRepo := repository.NewPledgeRepository(db.GetDB(), log)
	notificationRepo := repository.NewNotificationRepository(db.GetDB(), log)

	// Initialize services
	authService := service.NewAuthService(
		userRepo,
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
		log,
	)
	companyService := service.NewCompanyService(companyRepo, userRepo, log)
	questionnaireService := service.NewQuestionnaireService(questionnaireRepo, companyRepo, db.GetDB(), log)
	rewardService := service.NewRewardService(rewardRepo, companyRepo, &cfg.Seal, db.GetDB(), log)
	renewalService := service.NewRenewalService(renewalRepo, companyRepo, rewardService, &cfg.Seal, db.GetDB(), log)
	certificationService := service.NewCertificationService(companyRepo, rewardService, db.GetDB(), log)
	issueService := service.NewIssueService(issueRepo, companyRepo, &cfg.Seal, log)
	campaignService := service.NewCampaignService(campaignRepo, pledgeRepo, log)
	donationService := service.NewDonationService(donationRepo, campaignRepo, hub, db.GetDB(), log)
	notificationService := service.NewNotificationService(notificationRepo, userRepo, log)
	exportService := service.NewExportService(companyRepo, donationRepo, log)

	// Initialize controllers
	authController := controller.NewAuthController(authService)
	companyController := controller.NewCompanyController(companyService, authService)
	questionnaireController := controller.NewQuestionnaireController(questionnaireService, authService)
	certificationController := controller.NewCertificationController(certificationService, issueService)
	renewalController := controller.NewRenewalController(renewalService, authService)
	rewardController := controller.NewRewardController(rewardService, authService)
	issueController := controller.NewIssueController(issueService, authService)
	campaignController := controller.NewCampaignController(campaignService, donationService, hub)
	notificationController := controller.NewNotificationController(notificationService)
	uploadController := controller.NewUploadController(s3Storage)
	exportController := controller.NewExportController(exportService)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Setup router
	r := router.NewRouter(
		authController,
		companyController,
		questionnaireController,
		certificationController,
		renewalController,
		rewardController,
		issueController,
		campaignController,
		notificationController,
		uploadController,
		exportController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Daily sweep notifying companies about expiring certifications
	reminderScheduler := scheduler.NewRenewalReminderScheduler(
		renewalService,
		notificationService,
		userRepo,
		cfg.Seal.ReminderDaysAhead,
		log,
	)
	if err := reminderScheduler.Start(); err != nil {
		logger.Fatal("Failed to start renewal reminder scheduler", err)
	}
	defer reminderScheduler.Stop()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
