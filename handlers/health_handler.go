package handlers

import "github.com/gofiber/fiber/v2"

// Liveness answers without touching the database.
func Liveness(c *fiber.Ctx) error {
	return c.SendString("OK")
}

func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
