package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"github.com/travel-journal-service/internal/config"
	"github.com/travel-journal-service/internal/delivery/http/handler"
	"github.com/travel-journal-service/internal/delivery/http/middleware"
	"go.uber.org/zap"

	_ "github.com/travel-journal-service/docs"
)

// HealthFunc reports the health of the configured storage backend.
type HealthFunc func(ctx context.Context) error

// Server is the journal HTTP API on top of Fiber.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger
	health HealthFunc

	tripHandler     *handler.TripHandler
	locationHandler *handler.LocationHandler
	photoHandler    *handler.PhotoHandler
	uploadHandler   *handler.UploadHandler
	statsHandler    *handler.StatsHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	tripHandler *handler.TripHandler,
	locationHandler *handler.LocationHandler,
	photoHandler *handler.PhotoHandler,
	uploadHandler *handler.UploadHandler,
	statsHandler *handler.StatsHandler,
	health HealthFunc,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Travel Journal Service",
		BodyLimit:    64 * 1024 * 1024,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:             app,
		config:          cfg,
		logger:          logger,
		health:          health,
		tripHandler:     tripHandler,
		locationHandler: locationHandler,
		photoHandler:    photoHandler,
		uploadHandler:   uploadHandler,
		statsHandler:    statsHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		status := "healthy"
		code := fiber.StatusOK
		if s.health != nil {
			if err := s.health(c.Context()); err != nil {
				status = "unhealthy"
				code = fiber.StatusServiceUnavailable
				s.logger.Error("Health check failed", zap.Error(err))
			}
		}
		return c.Status(code).JSON(fiber.Map{
			"status": status,
			"time":   time.Now(),
		})
	})

	// Trip routes
	api.Get("/trips", s.tripHandler.List)
	api.Post("/trips", s.tripHandler.Create)
	api.Get("/trips/:id", s.tripHandler.GetByID)
	api.Put("/trips/:id", s.tripHandler.Update)
	api.Delete("/trips/:id", s.tripHandler.Delete)
	api.Get("/trips/:id/locations", s.locationHandler.ListByTrip)
	api.Get("/trips/:id/stats", s.statsHandler.GetTripStats)

	// Location routes
	api.Post("/locations", s.locationHandler.Create)
	api.Get("/locations/:id", s.locationHandler.GetByID)
	api.Put("/locations/:id", s.locationHandler.Update)
	api.Delete("/locations/:id", s.locationHandler.Delete)
	api.Get("/locations/:id/photos", s.photoHandler.ListByLocation)

	// Photo routes
	api.Get("/photos", s.photoHandler.List)
	api.Post("/photos", s.uploadHandler.Upload)
	api.Delete("/photos/:id", s.photoHandler.Delete)
	api.Put("/photos/:id/set-cover", s.photoHandler.SetCover)
}

// App exposes the underlying Fiber app for handler tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
