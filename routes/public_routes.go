package routes

import (
	"github.com/ali-320/EduTrack-CC-Assignment-2/handlers"
	"github.com/gofiber/fiber/v2"
)

func PublicRoutes(app *fiber.App) {
	app.Get("/", handlers.Liveness)
	app.Get("/health", handlers.Health)
}
