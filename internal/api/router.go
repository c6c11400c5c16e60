package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/panelhub/user-service/internal/api/handler"
	"github.com/panelhub/user-service/internal/core/ports"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, users ports.UserService, auth ports.AuthService, demo ports.DemoService, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("userservice"))

	// --- Handlers ---
	userHandler := handler.NewUserHandler(users)
	authHandler := handler.NewAuthHandler(auth)
	demoHandler := handler.NewDemoHandler(demo)

	// --- User lifecycle routes ---
	v1 := e.Group("/v1")
	v1.POST("/users", userHandler.Create)
	v1.GET("/users", userHandler.List)
	v1.GET("/users/:id", userHandler.GetByID)
	v1.GET("/users/role/:role", userHandler.ListByRole)
	v1.PATCH("/users/:id", userHandler.Update)
	v1.DELETE("/users/:id", userHandler.Delete)

	// --- Auth routes ---
	v1.POST("/auth/login", authHandler.Login)

	// --- Demo data routes ---
	v1.POST("/demo/seed", demoHandler.Seed)
	v1.GET("/demo/users", demoHandler.List)

	// --- Health probes and metrics (no version prefix) ---
	healthHandler := handler.NewHealthHandler(db)
	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
