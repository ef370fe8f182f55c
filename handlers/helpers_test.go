package handlers_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/ali-320/EduTrack-CC-Assignment-2/database"
	"github.com/ali-320/EduTrack-CC-Assignment-2/handlers"
	"github.com/ali-320/EduTrack-CC-Assignment-2/middleware"
	"github.com/ali-320/EduTrack-CC-Assignment-2/routes"
)

func newApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler(true)})
}

func courseApp(acq database.Acquirer) *fiber.App {
	app := newApp()
	routes.CourseRoutes(app, handlers.NewCourseHandler(acq), middleware.Protected(""))
	return app
}

func enrollmentServiceApp(acq database.Acquirer) *fiber.App {
	app := newApp()
	routes.StudentRoutes(app, handlers.NewStudentHandler(acq), middleware.Protected(""))
	routes.EnrollmentRoutes(app, handlers.NewEnrollmentHandler(acq), middleware.Protected(""))
	return app
}

// call performs one request and decodes the JSON object body.
func call(t *testing.T, app *fiber.App, method, target, body string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, target, err)
	}
	defer resp.Body.Close()

	out := map[string]any{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("%s %s: decode body: %v", method, target, err)
	}
	return resp.StatusCode, out
}
