package main

import (
	"time"

	"potato/internal/config"
	"potato/internal/handlers"
	"potato/internal/middleware"
	"potato/internal/repositories"
	"potato/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// NewApp wires repositories, services and handlers into a Fiber app.
// publisher may be nil to run without order events.
func NewApp(cfg *config.Config, db *gorm.DB, publisher services.MessagePublisher) *fiber.App {
	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	cartRepo := repositories.NewGORMCartRepository(db)
	cartProductRepo := repositories.NewGORMCartProductRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	orderProductRepo := repositories.NewGORMOrderProductRepository(db)

	// --- Services ---
	tokenService := services.NewTokenService(cfg.JWTSecret)
	orderWriteService := services.NewOrderWriteService(
		repositories.NewGORMTransactor(db),
		services.NewUserService(userRepo),
		services.NewCartReadService(cartRepo, cfg.CartRowLock),
		cartProductRepo,
		orderRepo,
		services.NewOrderProductWriteService(orderProductRepo),
		publisher,
	)
	orderReadService := services.NewOrderReadService(orderRepo)

	// --- Handlers ---
	orderHandler := handlers.NewOrderHandler(orderWriteService, orderReadService)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		status := "healthy"
		code := fiber.StatusOK
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(c.UserContext()) != nil {
			status = "unhealthy"
			code = fiber.StatusServiceUnavailable
		}
		return c.Status(code).JSON(fiber.Map{
			"status":   status,
			"time":     time.Now().Format(time.RFC3339),
			"rabbitMQ": publisher != nil,
		})
	})

	apiV1 := app.Group("/api/v1", middleware.AuthRequired(tokenService))
	orderHandler.RegisterRoutes(apiV1)

	return app
}
