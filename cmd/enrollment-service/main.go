package main

import (
	"os"

	"github.com/gofiber/fiber/v2"

	config "github.com/ali-320/EduTrack-CC-Assignment-2/configs"
	"github.com/ali-320/EduTrack-CC-Assignment-2/database"
	"github.com/ali-320/EduTrack-CC-Assignment-2/handlers"
	"github.com/ali-320/EduTrack-CC-Assignment-2/routes"
	"github.com/ali-320/EduTrack-CC-Assignment-2/server"
)

var version = "dev"

func main() {
	cmd := server.Command(server.Service{
		Defaults: config.EnrollmentDefaults,
		Short:    "Student and enrollment REST service",
		Version:  version,
		Mount: func(app *fiber.App, db database.Acquirer, guard fiber.Handler) {
			routes.StudentRoutes(app, handlers.NewStudentHandler(db), guard)
			routes.EnrollmentRoutes(app, handlers.NewEnrollmentHandler(db), guard)
		},
	})
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
