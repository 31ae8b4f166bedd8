package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"

	"caseops/internal/config"
	"caseops/internal/database"
	"caseops/internal/handlers"
	"caseops/internal/logger"
	"caseops/internal/middleware"
	"caseops/internal/seed"

	_ "caseops/docs/api" // Swagger docs
)

// @title caseops API
// @version 1.0.0
// @description Field-service case database: installation and maintenance cases with brand, device type, and governorate lookups.

// @host localhost:3000
// @BasePath /api
// @schemes http https

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	lg := logger.New(cfg.LogLevel)
	defer lg.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		lg.Fatalw("failed to open store", "error", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		lg.Fatalw("failed to migrate schema", "error", err)
	}

	// Seeding must finish before the first request is served; initial reads
	// would otherwise race an empty store.
	if cfg.SeedOnStart {
		if err := seed.Run(db, lg, cfg.BcryptCost); err != nil {
			lg.Fatalw("seeding failed", "error", err)
		}
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(compress.New())
	app.Use(middleware.RequestID())

	// Prometheus metrics
	prometheus := fiberprometheus.New("caseops")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes under /api
	api := app.Group("/api")
	api.Use(middleware.VersionMiddleware())

	installationHandler := &handlers.InstallationHandler{DB: db}
	maintenanceHandler := &handlers.MaintenanceHandler{DB: db}
	lookupHandler := &handlers.LookupHandler{DB: db}
	userHandler := &handlers.UserHandler{DB: db, BcryptCost: cfg.BcryptCost}
	healthHandler := &handlers.HealthHandler{DB: db, Cfg: cfg}

	api.Get("/health", healthHandler.Get)

	api.Get("/installations", installationHandler.List)
	api.Get("/installations/:id", installationHandler.Get)
	api.Post("/installations", installationHandler.Create)
	api.Patch("/installations/:id", installationHandler.Update)
	api.Delete("/installations/:id", installationHandler.Delete)

	api.Get("/maintenance", maintenanceHandler.List)
	api.Get("/maintenance/:id", maintenanceHandler.Get)
	api.Post("/maintenance", maintenanceHandler.Create)
	api.Patch("/maintenance/:id", maintenanceHandler.Update)
	api.Delete("/maintenance/:id", maintenanceHandler.Delete)

	api.Get("/brands", lookupHandler.ListBrands)
	api.Post("/brands", lookupHandler.CreateBrand)
	api.Patch("/brands/:id", lookupHandler.UpdateBrand)
	api.Delete("/brands/:id", lookupHandler.DeleteBrand)

	api.Get("/device-types", lookupHandler.ListDeviceTypes)
	api.Post("/device-types", lookupHandler.CreateDeviceType)
	api.Patch("/device-types/:id", lookupHandler.UpdateDeviceType)
	api.Delete("/device-types/:id", lookupHandler.DeleteDeviceType)

	// Read-only; populated solely by the seeder
	api.Get("/governorates", lookupHandler.ListGovernorates)

	api.Get("/users", userHandler.List)
	api.Get("/users/by-email/:email", userHandler.GetByEmail)
	api.Post("/users", userHandler.Create)
	api.Patch("/users/:id", userHandler.Update)
	api.Delete("/users/:id", userHandler.Delete)
	api.Post("/login", userHandler.Login)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		lg.Infow("gracefully shutting down")
		_ = app.Shutdown()
	}()

	lg.Infow("starting server", "port", cfg.Port, "db_type", cfg.DBType)
	if err := app.Listen(":" + cfg.Port); err != nil {
		lg.Fatalw("failed to start server", "error", err)
	}

	lg.Infow("server stopped")
}

// customErrorHandler handles errors that escape the handlers
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
	})
}
