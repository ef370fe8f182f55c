package server

import (
	"context"
	"net"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"

	config "github.com/ali-320/EduTrack-CC-Assignment-2/configs"
	"github.com/ali-320/EduTrack-CC-Assignment-2/handlers"
	"github.com/ali-320/EduTrack-CC-Assignment-2/middleware"
	"github.com/ali-320/EduTrack-CC-Assignment-2/routes"
)

const shutdownTimeout = 10 * time.Second

// New builds the Fiber app shared by both services: error translation, middleware and health routes.
// Resource routes are mounted by the caller.
func New(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               cfg.Service,
		CaseSensitive:         true,
		StrictRouting:         true,
		DisableStartupMessage: true,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          15 * time.Second,
		IdleTimeout:           60 * time.Second,
		ErrorHandler:          handlers.ErrorHandler(cfg.ExposeErrors),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestContext())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowMethods:  "GET, POST, PUT, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, X-Request-ID",
		MaxAge:        86400,
	}))
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path} ${respHeader:X-Request-ID}\n",
	}))

	routes.PublicRoutes(app)
	return app
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, app *fiber.App, port string) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(net.JoinHostPort("", port))
	}()

	log.Info().Str("port", port).Msg("Server is running")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		return app.ShutdownWithTimeout(shutdownTimeout)
	}
}
