package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/ali-320/EduTrack-CC-Assignment-2/apperrors"
	"github.com/ali-320/EduTrack-CC-Assignment-2/database"
	"github.com/ali-320/EduTrack-CC-Assignment-2/models"
)

// EnrollmentRequest does not check that the student or course exist; the foreign keys, if any, do.
type EnrollmentRequest struct {
	StudentID int64  `json:"student_id" validate:"required,gt=0"`
	CourseID  int64  `json:"course_id" validate:"required,gt=0"`
	Status    string `json:"status"`
}

type EnrollmentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type EnrollmentHandler struct {
	db database.Acquirer
}

func NewEnrollmentHandler(db database.Acquirer) *EnrollmentHandler {
	return &EnrollmentHandler{db: db}
}

func enrollmentNotFound() error {
	return apperrors.NotFound("Enrollment not found")
}

func (h *EnrollmentHandler) CreateEnrollment(c *fiber.Ctx) error {
	var req EnrollmentRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	// an empty status takes the model default
	enrollment := models.Enrollment{StudentID: req.StudentID, CourseID: req.CourseID, Status: req.Status}
	err := database.WithTx(c.UserContext(), h.db, func(tx *gorm.DB) error {
		return tx.Create(&enrollment).Error
	})
	if err != nil {
		return err
	}

	zerolog.Ctx(c.UserContext()).Info().
		Int64("enrollment_id", enrollment.EnrollmentID).
		Int64("student_id", enrollment.StudentID).
		Int64("course_id", enrollment.CourseID).
		Str("status", enrollment.Status).
		Msg("Enrollment created")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":       "Enrollment created",
		"enrollment_id": enrollment.EnrollmentID,
	})
}

func (h *EnrollmentHandler) GetEnrollment(c *fiber.Ctx) error {
	enrollmentID, err := parseID(c, "enrollmentId", "enrollment")
	if err != nil {
		return err
	}

	var enrollment models.Enrollment
	err = database.WithConn(c.UserContext(), h.db, func(db *gorm.DB) error {
		return foundOr(db.Take(&enrollment, enrollmentID).Error, enrollmentNotFound())
	})
	if err != nil {
		return err
	}

	return c.JSON(enrollment.Response())
}

// UpdateEnrollmentStatus only ever touches status.
func (h *EnrollmentHandler) UpdateEnrollmentStatus(c *fiber.Ctx) error {
	enrollmentID, err := parseID(c, "enrollmentId", "enrollment")
	if err != nil {
		return err
	}
	var req EnrollmentStatusRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	err = database.WithTx(c.UserContext(), h.db, func(tx *gorm.DB) error {
		return requireRows(tx.Model(&models.Enrollment{}).Where("enrollment_id = ?", enrollmentID).
			Update("status", req.Status), enrollmentNotFound())
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Enrollment updated successfully"})
}

func (h *EnrollmentHandler) DeleteEnrollment(c *fiber.Ctx) error {
	enrollmentID, err := parseID(c, "enrollmentId", "enrollment")
	if err != nil {
		return err
	}

	err = database.WithTx(c.UserContext(), h.db, func(tx *gorm.DB) error {
		return requireRows(tx.Delete(&models.Enrollment{}, enrollmentID), enrollmentNotFound())
	})
	if err != nil {
		return err
	}

	zerolog.Ctx(c.UserContext()).Info().Int64("enrollment_id", enrollmentID).Msg("Enrollment deleted")
	return c.JSON(fiber.Map{"message": "Enrollment deleted successfully"})
}
