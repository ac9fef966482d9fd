package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"petty-shelter.backend/internal/config"
	"petty-shelter.backend/internal/infrastructure/gateway"
	"petty-shelter.backend/internal/infrastructure/jobs"
	"petty-shelter.backend/internal/infrastructure/repositories"
	"petty-shelter.backend/internal/interfaces/http/handlers"
	"petty-shelter.backend/internal/interfaces/http/middleware"
	"petty-shelter.backend/internal/notifications"
	"petty-shelter.backend/internal/usecases"
	"petty-shelter.backend/pkg/jwt"
	"petty-shelter.backend/pkg/logger"
	"petty-shelter.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt:    false,
			TranslateError: true,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()
	if cfg.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewService(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Initialize repositories
	petRepo := repositories.NewPetRepository(db)
	userRepo := repositories.NewUserRepository(db)
	credentialRepo := repositories.NewCredentialRepository(db)
	adoptionRepo := repositories.NewAdoptionRepository(db)
	emergencyRepo := repositories.NewEmergencyRepository(db)
	visitRepo := repositories.NewVisitRepository(db)
	inviteRepo := repositories.NewInviteRepository(db)
	donationRepo := repositories.NewDonationRepository(db)

	// Initialize payment gateway client
	paystack := gateway.NewPaystackClient(cfg.Paystack.BaseURL, cfg.Paystack.SecretKey, cfg.Paystack.CallbackURL)

	// Initialize mailer
	var mailer notifications.Mailer = notifications.NoopMailer{}
	if cfg.SMTP.Enabled() {
		mailer = notifications.NewSMTPMailer(cfg.SMTP)
		logger.Info(context.Background(), "SMTP mailer enabled", zap.String("host", cfg.SMTP.Host))
	} else {
		log.Println("⚠️ SMTP not configured, outbound mail disabled")
	}

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, credentialRepo, inviteRepo, jwtService, mailer)
	userUsecase := usecases.NewUserUsecase(userRepo, credentialRepo, adoptionRepo, emergencyRepo, visitRepo)
	petUsecase := usecases.NewPetUsecase(petRepo)
	adoptionUsecase := usecases.NewAdoptionUsecase(adoptionRepo)
	emergencyUsecase := usecases.NewEmergencyUsecase(emergencyRepo)
	visitUsecase := usecases.NewVisitUsecase(visitRepo, mailer)
	donationUsecase := usecases.NewDonationUsecase(donationRepo, paystack)

	// Initialize handlers
	petHandler := handlers.NewPetHandler(petUsecase, adoptionUsecase, emergencyUsecase)
	userHandler := handlers.NewUserHandler(authUsecase, userUsecase, visitUsecase, cfg.JWT.Expiry)
	donationHandler := handlers.NewDonationHandler(donationUsecase)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cleanupJob := jobs.NewCredentialCleanupJob(credentialRepo, inviteRepo)
	go cleanupJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerRoutes(r, routeDeps{
		petHandler:      petHandler,
		userHandler:     userHandler,
		donationHandler: donationHandler,
		sessionAuth:     middleware.SessionAuth(jwtService),
		webhookSecret:   cfg.Paystack.SecretKey,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		cleanupJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 Petty Shelter Backend starting on port %s", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
