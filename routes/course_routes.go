package routes

import (
	"github.com/ali-320/EduTrack-CC-Assignment-2/handlers"
	"github.com/gofiber/fiber/v2"
)

// CourseRoutes mounts the course resource; guard wraps the write routes only.
func CourseRoutes(app *fiber.App, h *handlers.CourseHandler, guard fiber.Handler) {
	courses := app.Group("/courses")
	courses.Post("", guard, h.CreateCourse)
	courses.Get("/:courseId", h.GetCourse)
	courses.Put("/:courseId", guard, h.UpdateCourse)
	courses.Delete("/:courseId", guard, h.DeleteCourse)
}
