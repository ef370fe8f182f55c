package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/ali-320/EduTrack-CC-Assignment-2/apperrors"
)

// ErrorHandler is the one place error kinds become HTTP responses.
// With exposeErrors off, 5xx bodies carry only the generic message and the cause goes to the log.
func ErrorHandler(exposeErrors bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		logger := zerolog.Ctx(c.UserContext())

		var appErr *apperrors.Error
		if errors.As(err, &appErr) {
			status := appErr.Kind.Status()
			switch appErr.Kind {
			case apperrors.KindValidation:
				return c.Status(status).JSON(fiber.Map{"error": appErr.Message})
			case apperrors.KindNotFound:
				return c.Status(status).JSON(fiber.Map{"message": appErr.Message})
			}

			logger.Error().
				Err(err).
				Str("kind", appErr.Kind.String()).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Msg("Request failed")

			message := appErr.Message
			if exposeErrors {
				message = appErr.Error()
			}
			return c.Status(status).JSON(fiber.Map{"error": message})
		}

		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}
		if code >= fiber.StatusInternalServerError {
			logger.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("Unhandled error")
		}

		message := err.Error()
		if code >= fiber.StatusInternalServerError && !exposeErrors {
			message = "Internal server error"
		}
		return c.Status(code).JSON(fiber.Map{
			"status":  "error",
			"code":    code,
			"message": message,
		})
	}
}
