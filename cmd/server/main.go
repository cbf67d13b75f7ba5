package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"hrms-backend/internal/auth"
	"hrms-backend/internal/cache"
	"hrms-backend/internal/config"
	"hrms-backend/internal/database"
	"hrms-backend/internal/face"
	"hrms-backend/internal/handlers"
	"hrms-backend/internal/health"
	h "hrms-backend/internal/http"
	"hrms-backend/internal/mail"
	"hrms-backend/internal/middleware"
	"hrms-backend/internal/repositories"
	"hrms-backend/internal/services"
	"hrms-backend/internal/storage"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	defer pool.Close()

	migrator := database.NewMigrator(pool)
	if err := migrator.RunMigrations(ctx); err != nil {
		log.Fatalf("Migrations failed: %v", err)
	}

	if err := cache.Init(cfg); err != nil {
		log.Printf("[Redis] Unavailable, reset codes fall back to process-local store: %v", err)
	} else {
		log.Println("[Redis] Connected")
	}

	photoStore, err := storage.NewPhotoStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Photo store init failed: %v", err)
	}
	faceComparer, err := face.NewComparer(ctx, cfg)
	if err != nil {
		log.Fatalf("Face comparer init failed: %v", err)
	}

	// Repositories
	employeeCreds := repositories.NewEmployeeCredentialRepository(pool)
	centreCreds := repositories.NewCentreCredentialRepository(pool)
	adminCreds := repositories.NewAdminCredentialRepository(pool)
	records := repositories.NewEmployeeRecordRepository(pool)
	attendance := repositories.NewAttendanceRepository(pool)
	leaves := repositories.NewLeaveRequestRepository(pool)

	// Services
	jwtManager := auth.NewJWTManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.ExpirationMinutes)
	accountService := services.NewAccountService(employeeCreds, centreCreds, adminCreds, jwtManager)
	resetService := services.NewResetService(employeeCreds, centreCreds, services.NewRedisCodeStore(), mail.NewLogMailer())
	recordService := services.NewRecordService(records, employeeCreds, centreCreds)
	attendanceService := services.NewAttendanceService(
		photoStore, faceComparer, attendance,
		cfg.Geofence.Latitude, cfg.Geofence.Longitude, cfg.Geofence.RadiusMeters)
	leaveService := services.NewLeaveService(leaves)

	// Handlers
	authHandler := handlers.NewAuthHandler(accountService, resetService)
	recordHandler := handlers.NewRecordHandler(recordService)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceService)
	leaveHandler := handlers.NewLeaveHandler(leaveService)
	uploadHandler := handlers.NewUploadHandler(photoStore)
	healthHandler := handlers.NewHealthHandler(health.NewHealthChecker(pool))

	authMiddleware := middleware.NewAuthMiddleware(jwtManager)
	router := h.NewRouter(
		authHandler,
		recordHandler,
		attendanceHandler,
		leaveHandler,
		uploadHandler,
		healthHandler,
		authMiddleware,
	)

	corsMiddleware := middleware.NewCORS(cfg)
	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(router)))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server started on port %d", cfg.Server.Port)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
