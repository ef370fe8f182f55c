package routes

import (
	"github.com/ali-320/EduTrack-CC-Assignment-2/handlers"
	"github.com/gofiber/fiber/v2"
)

func StudentRoutes(app *fiber.App, h *handlers.StudentHandler, guard fiber.Handler) {
	students := app.Group("/students")
	students.Post("", guard, h.CreateStudent)
	students.Get("/:studentId", h.GetStudent)
	students.Put("/:studentId", guard, h.UpdateStudent)
	students.Delete("/:studentId", guard, h.DeleteStudent)
}
