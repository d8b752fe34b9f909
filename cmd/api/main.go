package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/autoprofi/driving-school-api/internal/config"
	"github.com/autoprofi/driving-school-api/internal/database"
	"github.com/autoprofi/driving-school-api/internal/handler"
	"github.com/autoprofi/driving-school-api/internal/middleware"
	"github.com/autoprofi/driving-school-api/internal/models"
	"github.com/autoprofi/driving-school-api/internal/repository"
	"github.com/autoprofi/driving-school-api/internal/router"
	"github.com/autoprofi/driving-school-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Course{}, &models.Instructor{}, &models.Enrollment{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
	}

	var natsConn *nats.Conn
	if cfg.NATSURL != "" {
		natsConn, err = nats.Connect(cfg.NATSURL)
		if err != nil {
			logger.Warn().Err(err).Msg("nats unavailable, enrollment events disabled")
		} else {
			defer natsConn.Close()
		}
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	enrollmentRepo := repository.NewEnrollmentRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	instructorRepo := repository.NewInstructorRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	enrollmentService := service.NewEnrollmentService(enrollmentRepo, validate, natsConn, logger)
	statsService := service.NewStatsService(statsRepo, enrollmentRepo, redisClient, cfg.StatsCacheTTL, logger)
	courseService := service.NewCourseService(courseRepo, validate, logger)
	instructorService := service.NewInstructorService(instructorRepo, validate, logger)

	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentService, logger)
	statsHandler := handler.NewStatsHandler(statsService, logger)
	courseHandler := handler.NewCourseHandler(courseService, logger)
	instructorHandler := handler.NewInstructorHandler(instructorService, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		EnrollmentHandler: enrollmentHandler,
		StatsHandler:      statsHandler,
		CourseHandler:     courseHandler,
		InstructorHandler: instructorHandler,
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
