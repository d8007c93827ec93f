package main

import (
	"catalog/internal/config"
	"catalog/internal/handlers"
	"catalog/internal/middleware"
	"catalog/internal/repositories"
	"catalog/internal/services"
	"catalog/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
)

// newApp wires the service, handlers and middleware into a fiber app.
func newApp(cfg *config.Config, log zerolog.Logger, repo repositories.ProductRepository, indexer services.ProductIndexer) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "catalog",
		ReadTimeout:           cfg.App.ReadTimeout,
		WriteTimeout:          cfg.App.WriteTimeout,
		ErrorHandler:          handlers.ErrorHandler,
		DisableStartupMessage: true,
	})

	app.Use(
		middleware.RequestID(),
		middleware.AccessLog(log),
		recover.New(),
		cors.New(cors.Config{AllowOrigins: cfg.App.CORSAllowOrigins}),
	)

	productService := services.NewProductService(repo, indexer, log)

	handlers.NewHealthHandler().RegisterRoutes(app)
	handlers.NewProductHandler(productService, validation.New(), log).RegisterRoutes(app)

	return app
}
