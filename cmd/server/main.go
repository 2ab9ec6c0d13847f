package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/akshayrj/portfolio-backend/config"
	"github.com/akshayrj/portfolio-backend/internal/app/controller"
	"github.com/akshayrj/portfolio-backend/internal/app/repository"
	"github.com/akshayrj/portfolio-backend/internal/app/service"
	"github.com/akshayrj/portfolio-backend/internal/db"
	"github.com/akshayrj/portfolio-backend/internal/middleware"
	"github.com/akshayrj/portfolio-backend/internal/router"
	"github.com/akshayrj/portfolio-backend/internal/scheduler"
	"github.com/akshayrj/portfolio-backend/internal/storage"
	"github.com/akshayrj/portfolio-backend/pkg/logger"
	"github.com/akshayrj/portfolio-backend/pkg/mailer"
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

	logger.Info("Starting Portfolio Backend Server", map[string]interface{}{
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

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	otpRepo := repository.NewOTPRepository(db.GetDB())
	personalInfoRepo := repository.NewPersonalInfoRepository(db.GetDB())
	projectRepo := repository.NewProjectRepository(db.GetDB())
	skillRepo := repository.NewSkillRepository(db.GetDB())
	educationRepo := repository.NewEducationRepository(db.GetDB())
	experienceRepo := repository.NewExperienceRepository(db.GetDB())
	certificationRepo := repository.NewCertificationRepository(db.GetDB())
	socialLinkRepo := repository.NewSocialLinkRepository(db.GetDB())
	resumeRepo := repository.NewResumeRepository(db.GetDB())

	// Shared infrastructure
	objectStorage := storage.NewS3Storage(cfg.S3)
	smtpMailer := mailer.NewSMTPMailer(cfg.SMTP)

	// Initialize services
	authService := service.NewAuthService(
		userRepo,
		cfg.JWT.Secret,
		cfg.JWT.TokenExpiry,
		cfg.Admin.RegisterToken,
	)
	otpService := service.NewOTPService(otpRepo, userRepo, smtpMailer, cfg.OTP.Expiry)
	personalInfoService := service.NewPersonalInfoService(personalInfoRepo, objectStorage)
	projectService := service.NewProjectService(projectRepo, objectStorage)
	skillService := service.NewSkillService(skillRepo)
	educationService := service.NewEducationService(educationRepo)
	experienceService := service.NewExperienceService(experienceRepo)
	certificationService := service.NewCertificationService(certificationRepo, objectStorage)
	socialLinkService := service.NewSocialLinkService(socialLinkRepo)
	resumeService := service.NewResumeService(resumeRepo, objectStorage)
	contactService := service.NewContactService(smtpMailer, cfg.SMTP.ContactEmail)
	portfolioService := service.NewPortfolioService(
		personalInfoService,
		projectService,
		skillService,
		educationService,
		experienceService,
		certificationService,
		socialLinkService,
	)
	chatbotService := service.NewChatbotService(cfg.Gemini, portfolioService, cfg.Cache.PortfolioTTL)

	// Initialize controllers
	cookieSecure := cfg.Server.Environment == "production"
	authController := controller.NewAuthController(authService, otpService, cookieSecure)
	personalInfoController := controller.NewPersonalInfoController(personalInfoService)
	projectController := controller.NewProjectController(projectService)
	skillController := controller.NewSkillController(skillService)
	educationController := controller.NewEducationController(educationService)
	experienceController := controller.NewExperienceController(experienceService)
	certificationController := controller.NewCertificationController(certificationService)
	socialLinkController := controller.NewSocialLinkController(socialLinkService)
	resumeController := controller.NewResumeController(resumeService)
	contactController := controller.NewContactController(contactService)
	chatbotController := controller.NewChatbotController(chatbotService)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Background OTP sweep
	otpCleanup := scheduler.NewOTPCleanupScheduler(otpRepo, cfg.OTP.Expiry)
	if err := otpCleanup.Start(); err != nil {
		logger.Fatal("Failed to start OTP cleanup scheduler", err)
	}
	defer otpCleanup.Stop()

	// Setup router
	r := router.NewRouter(
		authController,
		personalInfoController,
		projectController,
		skillController,
		educationController,
		experienceController,
		certificationController,
		socialLinkController,
		resumeController,
		contactController,
		chatbotController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

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
