package routes

import (
	"github.com/ali-320/EduTrack-CC-Assignment-2/handlers"
	"github.com/gofiber/fiber/v2"
)

func EnrollmentRoutes(app *fiber.App, h *handlers.EnrollmentHandler, guard fiber.Handler) {
	enrollments := app.Group("/enrollments")
	enrollments.Post("", guard, h.CreateEnrollment)
	enrollments.Get("/:enrollmentId", h.GetEnrollment)
	enrollments.Put("/:enrollmentId", guard, h.UpdateEnrollmentStatus)
	enrollments.Delete("/:enrollmentId", guard, h.DeleteEnrollment)
}
