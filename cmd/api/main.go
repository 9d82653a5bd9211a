package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ezkorea/course-marketplace/internal/api"
	"github.com/ezkorea/course-marketplace/internal/core/domain"
	"github.com/ezkorea/course-marketplace/internal/core/ports"
	"github.com/ezkorea/course-marketplace/internal/core/service"
	mongodb "github.com/ezkorea/course-marketplace/internal/infrastructure/db/mongo"
	redisdb "github.com/ezkorea/course-marketplace/internal/infrastructure/db/redis"
	"github.com/ezkorea/course-marketplace/internal/infrastructure/queue"
	"github.com/ezkorea/course-marketplace/internal/pkg/config"
	"github.com/ezkorea/course-marketplace/pkg/logger"
)

const (
	tokenTTL        = 24 * time.Hour
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	userRepo := mongodb.NewUserRepository(db)
	appRepo := mongodb.NewApplicationRepository(db)
	courseRepo := mongodb.NewCourseRepository(db)
	eventRepo := mongodb.NewRoleEventRepository(db)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("users index creation failed")
	}
	if err := appRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("applications index creation failed")
	}
	if err := courseRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("courses index creation failed")
	}

	if err := seedAdmin(ctx, userRepo, cfg.Admin); err != nil {
		log.Fatal().Err(err).Msg("admin seeding failed")
	}

	dispatcher := queue.NewDispatcher(0, eventRepo, log)
	dispatcher.Start(ctx)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, tokenTTL)
	instructorService := service.NewInstructorService(userRepo, appRepo, redisdb.NewSubmitLock(rdb), dispatcher, log)
	courseService := service.NewCourseService(userRepo, courseRepo, log)
	adminService := service.NewAdminService(userRepo, appRepo, courseRepo, eventRepo, log)

	e := api.NewRouter(api.RouterConfig{
		JWTSecret:   cfg.JWTSecret,
		Auth:        authService,
		Instructors: instructorService,
		Courses:     courseService,
		Admin:       adminService,
		Mongo:       db,
		Redis:       rdb,
		Logger:      log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("course marketplace api started")

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}

// seedAdmin creates the administrator account on first boot. An existing
// account with the configured email is left untouched, so password rotation
// goes through the database, not the environment.
func seedAdmin(ctx context.Context, users ports.UserRepository, cfg config.AdminConfig) error {
	if cfg.Password == "" {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = users.Create(ctx, &domain.User{
		Email:        service.NormalizeEmail(cfg.Email),
		PasswordHash: string(hash),
		Name:         cfg.Name,
		Role:         domain.RoleAdmin,
		ActiveRole:   domain.RoleAdmin,
	})
	if errors.Is(err, domain.ErrEmailTaken) {
		return nil
	}
	return err
}
