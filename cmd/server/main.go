package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"school_manager/internal/config"
	"school_manager/internal/handler"
	"school_manager/internal/middleware"
	"school_manager/internal/repository"
	"school_manager/internal/service"
	"school_manager/internal/utils"
	"school_manager/internal/validation"
	"school_manager/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Configuration ---
	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{})
		log := logger.Get()
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	log := logger.Init(logger.Options{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// --- Initialize Utilities ---
	jwtUtil, err := utils.NewJWTUtil(cfg.JWT.Secret, cfg.JWT.ExpiresIn)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialise JWT")
	}
	validator := validation.New()

	// --- Database ---
	if err := config.Migrate(cfg.DB); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	dbPool, err := config.ConnectDB(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer dbPool.Close()

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	specialtyRepo := repository.NewSpecialtyRepository(dbPool)
	classRepo := repository.NewClassRepository(dbPool)
	enrollmentRepo := repository.NewEnrollmentRepository(dbPool)
	attendanceRepo := repository.NewAttendanceRepository(dbPool)
	messageRepo := repository.NewMessageRepository(dbPool)
	itemRepo := repository.NewItemRepository(dbPool)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, jwtUtil)
	userService := service.NewUserService(userRepo)
	specialtyService := service.NewSpecialtyService(specialtyRepo)
	classService := service.NewClassService(classRepo)
	enrollmentService := service.NewEnrollmentService(enrollmentRepo)
	attendanceService := service.NewAttendanceService(attendanceRepo)
	messageService := service.NewMessageService(messageRepo)
	itemService := service.NewItemService(itemRepo)

	// --- Initialize Handlers ---
	authHandler := handler.NewAuthHandler(authService, validator)
	userHandler := handler.NewUserHandler(userService, validator)
	specialtyHandler := handler.NewSpecialtyHandler(specialtyService, validator)
	classHandler := handler.NewClassHandler(classService, validator)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentService, validator)
	attendanceHandler := handler.NewAttendanceHandler(attendanceService, validator)
	messageHandler := handler.NewMessageHandler(messageService, validator)
	itemHandler := handler.NewItemHandler(itemService, validator)
	healthHandler := handler.NewHealthHandler(dbPool)

	// --- Setup Gin Router ---
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.Metrics(),
		middleware.CORS(),
	)

	jwtAuthMW := middleware.JWTAuthMiddleware(jwtUtil)
	optionalAuthMW := middleware.OptionalJWTAuth(jwtUtil)

	// --- Register Routes ---
	apiGroup := router.Group("/api")
	authHandler.RegisterAuthRoutes(apiGroup)
	userHandler.RegisterUserRoutes(apiGroup, jwtAuthMW, optionalAuthMW)
	specialtyHandler.RegisterSpecialtyRoutes(apiGroup, jwtAuthMW)
	classHandler.RegisterClassRoutes(apiGroup, jwtAuthMW)
	enrollmentHandler.RegisterEnrollmentRoutes(apiGroup, jwtAuthMW)
	attendanceHandler.RegisterAttendanceRoutes(apiGroup, jwtAuthMW)
	messageHandler.RegisterMessageRoutes(apiGroup, jwtAuthMW)
	itemHandler.RegisterItemRoutes(apiGroup, jwtAuthMW)

	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// --- Start Server ---
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Server stopped unexpectedly")
			stop()
		}
	}()

	// --- Graceful Shutdown ---
	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("Server exiting")
}
