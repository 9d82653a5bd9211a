package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ezkorea/course-marketplace/internal/api/handler"
	"github.com/ezkorea/course-marketplace/internal/api/middleware"
	"github.com/ezkorea/course-marketplace/internal/core/ports"
	httphandlers "github.com/ezkorea/course-marketplace/internal/infrastructure/http/handlers"
)

// RouterConfig carries everything the router needs to register routes.
type RouterConfig struct {
	JWTSecret   string
	Auth        ports.AuthService
	Instructors ports.InstructorService
	Courses     ports.CourseService
	Admin       ports.AdminService
	Mongo       *mongo.Database
	Redis       *redis.Client
	Logger      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("marketplace"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(cfg.Auth)
	instructorHandler := handler.NewInstructorHandler(cfg.Instructors)
	courseHandler := handler.NewCourseHandler(cfg.Courses)
	adminHandler := handler.NewAdminHandler(cfg.Admin)

	authMW := middleware.Auth(cfg.JWTSecret)

	// --- Public routes ---
	e.POST("/api/signup", authHandler.Signup)
	e.POST("/api/login", authHandler.Login)
	e.POST("/api/admin/login", authHandler.AdminLogin)

	// --- Authenticated user routes ---
	user := e.Group("/api", authMW)
	user.GET("/me", authHandler.Me)
	user.POST("/apply-instructor", instructorHandler.Apply)
	user.POST("/become-instructor", instructorHandler.ToggleActiveRole)
	user.POST("/courses", courseHandler.Submit)

	// --- Admin routes ---
	admin := e.Group("/api/admin", authMW, middleware.AdminOnly())
	admin.GET("/instructor-applications", instructorHandler.ListPending)
	admin.POST("/instructor-applications/:id/approve", instructorHandler.Approve)
	admin.POST("/instructor-applications/:id/reject", instructorHandler.Reject)
	admin.GET("/courses", courseHandler.ListPending)
	admin.POST("/courses/:id/approve", courseHandler.Approve)
	admin.POST("/courses/:id/reject", courseHandler.Reject)
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/dashboard", adminHandler.Dashboard)
	admin.GET("/audit", adminHandler.Audit)

	// --- Observability (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := httphandlers.NewHealthHandler()
	healthDepsHandler := httphandlers.NewHealthDependenciesHandler(cfg.Mongo, cfg.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
