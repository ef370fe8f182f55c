package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/ali-320/EduTrack-CC-Assignment-2/apperrors"
	"github.com/ali-320/EduTrack-CC-Assignment-2/database"
	"github.com/ali-320/EduTrack-CC-Assignment-2/models"
)

type StudentRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
}

type StudentHandler struct {
	db database.Acquirer
}

func NewStudentHandler(db database.Acquirer) *StudentHandler {
	return &StudentHandler{db: db}
}

func studentNotFound() error {
	return apperrors.NotFound("Student not found")
}

// CreateStudent leaves registration_date to the column default.
func (h *StudentHandler) CreateStudent(c *fiber.Ctx) error {
	var req StudentRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	student := models.Student{FirstName: req.FirstName, LastName: req.LastName, Email: req.Email}
	err := database.WithTx(c.UserContext(), h.db, func(tx *gorm.DB) error {
		return tx.Create(&student).Error
	})
	if err != nil {
		return err
	}

	zerolog.Ctx(c.UserContext()).Info().Int64("student_id", student.StudentID).Msg("Student created")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Student created",
		"student_id": student.StudentID,
	})
}

func (h *StudentHandler) GetStudent(c *fiber.Ctx) error {
	studentID, err := parseID(c, "studentId", "student")
	if err != nil {
		return err
	}

	var student models.Student
	err = database.WithConn(c.UserContext(), h.db, func(db *gorm.DB) error {
		return foundOr(db.Take(&student, studentID).Error, studentNotFound())
	})
	if err != nil {
		return err
	}

	return c.JSON(student.Response())
}

func (h *StudentHandler) UpdateStudent(c *fiber.Ctx) error {
	studentID, err := parseID(c, "studentId", "student")
	if err != nil {
		return err
	}
	var req StudentRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	err = database.WithTx(c.UserContext(), h.db, func(tx *gorm.DB) error {
		return requireRows(tx.Model(&models.Student{}).Where("student_id = ?", studentID).Updates(map[string]any{
			"first_name": req.FirstName,
			"last_name":  req.LastName,
			"email":      req.Email,
		}), studentNotFound())
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Student updated successfully"})
}

func (h *StudentHandler) DeleteStudent(c *fiber.Ctx) error {
	studentID, err := parseID(c, "studentId", "student")
	if err != nil {
		return err
	}

	err = database.WithTx(c.UserContext(), h.db, func(tx *gorm.DB) error {
		return requireRows(tx.Delete(&models.Student{}, studentID), studentNotFound())
	})
	if err != nil {
		return err
	}

	zerolog.Ctx(c.UserContext()).Info().Int64("student_id", studentID).Msg("Student deleted")
	return c.JSON(fiber.Map{"message": "Student deleted successfully"})
}
