package server

import (
	"errors"
	"log/slog"
	"time"

	"tienda/internal/handlers"
	"tienda/internal/metrics"
	"tienda/internal/repositories"
	"tienda/internal/services"
	"tienda/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// Options tune the HTTP surface.
type Options struct {
	// StrictStatus answers rejections with 404/400 instead of 200.
	StrictStatus bool
	// AccessLog enables the per-request logger middleware.
	AccessLog bool
	// Metrics is created when nil.
	Metrics *metrics.Metrics
}

// NewApp wires repositories, services and handlers over db and returns the
// Fiber app serving the store API under /api. publisher may be nil.
func NewApp(db *gorm.DB, publisher services.EventPublisher, opts Options) *fiber.App {
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}

	categoryRepo := repositories.NewGORMCategoryRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	clientRepo := repositories.NewGORMClientRepository(db)
	saleRepo := repositories.NewGORMSaleRepository(db)

	rules := validation.NewEngine(categoryRepo, productRepo, clientRepo)

	categoryService := services.NewCategoryService(categoryRepo, rules)
	productService := services.NewProductService(productRepo, rules)
	clientService := services.NewClientService(clientRepo, rules)
	saleService := services.NewSaleService(saleRepo, rules, publisher)

	respond := handlers.NewResponder(opts.StrictStatus, m)

	app := fiber.New(fiber.Config{
		AppName:      "tienda",
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	if opts.AccessLog {
		app.Use(logger.New())
	}
	app.Use(m.Middleware())

	api := app.Group("/api")
	handlers.NewCategoryHandler(categoryService, respond).RegisterRoutes(api)
	handlers.NewProductHandler(productService, respond).RegisterRoutes(api)
	handlers.NewClientHandler(clientService, respond).RegisterRoutes(api)
	handlers.NewSaleHandler(saleService, respond).RegisterRoutes(api)

	app.Get("/health", healthCheck(db))
	app.Get("/metrics", m.Handler())

	return app
}

func healthCheck(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status, code := "healthy", fiber.StatusOK
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.UserContext())
		}
		if err != nil {
			slog.Warn("health check failed", "error", err)
			status, code = "unhealthy", fiber.StatusServiceUnavailable
		}
		return c.Status(code).JSON(fiber.Map{
			"status": status,
			"time":   time.Now().Format(time.RFC3339),
		})
	}
}

// errorHandler renders errors that escape the handlers, such as unknown
// routes and recovered panics, as JSON.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	if code >= fiber.StatusInternalServerError {
		slog.Error("unhandled error", "method", c.Method(), "path", c.Path(), "error", err)
	}
	return c.Status(code).JSON(fiber.Map{
		"message": err.Error(),
	})
}
