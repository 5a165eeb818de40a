package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"backoffice-service/internal/config"
	"backoffice-service/internal/database/minio"
	"backoffice-service/internal/database/postgres"
	"backoffice-service/internal/database/redis"
	"backoffice-service/internal/event"
	"backoffice-service/internal/handlers"
	"backoffice-service/internal/metrics"
	"backoffice-service/internal/models"
	"backoffice-service/internal/repository"
	"backoffice-service/internal/services"

	"github.com/gofiber/fiber/v3"
)

func setupLogging() (*os.File, error) {
	logDir := filepath.Join("/backoffice", "log", "backoffice_service")
	err := os.MkdirAll(logDir, 0o755)
	if err != nil {
		return nil, fmt.Errorf("failed to create log directory: %v", err)
	}

	currentTime := time.Now()
	logFileName := fmt.Sprintf("log_%s.log", currentTime.Format("2006-01-02"))
	logFile := filepath.Join(logDir, logFileName)

	file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %v", err)
	}

	log.SetOutput(file)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	return file, nil
}

// collectPolicyGauges refreshes the per-status policy gauge from the
// database. Blocks, so call it from a goroutine.
func collectPolicyGauges(policyRepo *repository.PolicyRepository, interval time.Duration) {
	statuses := []models.PolicyStatus{
		models.PolicyDraft, models.PolicyQuoted, models.PolicyActive,
		models.PolicyExpired, models.PolicySuspended, models.PolicyCancelled,
	}

	for {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		for _, status := range statuses {
			count, err := policyRepo.CountByStatus(ctx, status)
			if err != nil {
				slog.Error("Failed to count policies for gauge", "status", status, "error", err)
				continue
			}
			metrics.PoliciesByStatus.WithLabelValues(string(status)).Set(float64(count))
		}
		cancel()
		time.Sleep(interval)
	}
}

func main() {
	logFile, err := setupLogging()
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	cfg := config.New()

	// Postgres is a hard requirement: block here until the connection is
	// live rather than wiring repositories onto a nil handle.
	db, err := postgres.ConnectAndCreateDB(cfg.PostgresCfg)
	if err != nil {
		log.Printf("error connect to database: %s, retrying until it comes up", err)
		db = postgres.RetryConnectOnFailed(30*time.Second, cfg.PostgresCfg)
	}

	redisClient, err := redis.NewRedisClient(cfg.RedisCfg.Host, cfg.RedisCfg.Port, cfg.RedisCfg.Password, cfg.RedisCfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// RabbitMQ and MinIO are degraded-mode optional: the service still runs
	// without notifications or document storage.
	var notifier *event.NotificationPublisher
	rabbitConn, err := event.ConnectRabbitMQ(cfg.RabbitMQCfg)
	if err != nil {
		slog.Error("RabbitMQ unavailable, notification events disabled", "error", err)
	} else {
		defer rabbitConn.Close()
		notifier = event.NewNotificationPublisher(rabbitConn)
	}

	minioClient, err := minio.NewMinioClient(cfg.MinioCfg)
	if err != nil {
		slog.Error("MinIO unavailable, claim document storage disabled", "error", err)
		minioClient = nil
	}

	customerRepo := repository.NewCustomerRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	userRepo := repository.NewUserRepository(db)
	policyRepo := repository.NewPolicyRepository(db)
	claimRepo := repository.NewClaimRepository(db)
	claimDocumentRepo := repository.NewClaimDocumentRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	quoteStore := repository.NewQuoteStore(redisClient.GetClient())

	jwtService := services.NewJWTService(cfg.JWTSecret)
	userService := services.NewUserService(userRepo, jwtService)
	customerService := services.NewCustomerService(customerRepo)
	vehicleService := services.NewVehicleService(vehicleRepo, customerRepo)
	quoteService := services.NewQuoteService(customerRepo, vehicleRepo, quoteStore)
	policyService := services.NewPolicyService(policyRepo, customerRepo, vehicleRepo, quoteStore, notifier)
	claimService := services.NewClaimService(claimRepo, policyRepo, paymentRepo, userRepo, notifier)
	documentService := services.NewDocumentService(claimDocumentRepo, claimRepo, minioClient)
	paymentService := services.NewPaymentService(paymentRepo, policyRepo, notifier)

	authMiddleware := handlers.NewAuthMiddleware(jwtService)

	app := fiber.New()
	app.Use(handlers.MetricsMiddleware())

	app.Get("/checkhealth", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("Backoffice service is healthy")
	})

	handlers.NewAuthHandler(userService, authMiddleware).Register(app)
	handlers.NewCustomerHandler(customerService, vehicleService, authMiddleware).Register(app)
	handlers.NewVehicleHandler(vehicleService, authMiddleware).Register(app)
	handlers.NewPolicyHandler(policyService, quoteService, authMiddleware).Register(app)
	handlers.NewClaimHandler(claimService, documentService, authMiddleware).Register(app)
	handlers.NewPaymentHandler(paymentService, authMiddleware).Register(app)

	go metrics.Serve(cfg.MetricsPort)
	go collectPolicyGauges(policyRepo, 30*time.Second)

	slog.Info("Backoffice service starting", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
