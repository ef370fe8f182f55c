package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/ali-320/EduTrack-CC-Assignment-2/apperrors"
	"github.com/ali-320/EduTrack-CC-Assignment-2/database"
	"github.com/ali-320/EduTrack-CC-Assignment-2/models"
)

type CourseRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description *string  `json:"description"`
	Instructor  *string  `json:"instructor"`
	StartDate   *string  `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate     *string  `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
}

func (r CourseRequest) course() (models.Course, error) {
	start, err := parseDate(r.StartDate, "start_date")
	if err != nil {
		return models.Course{}, err
	}
	end, err := parseDate(r.EndDate, "end_date")
	if err != nil {
		return models.Course{}, err
	}
	return models.Course{
		Title:       r.Title,
		Description: r.Description,
		Instructor:  r.Instructor,
		StartDate:   start,
		EndDate:     end,
		Price:       r.Price,
	}, nil
}

type CourseHandler struct {
	db database.Acquirer
}

func NewCourseHandler(db database.Acquirer) *CourseHandler {
	return &CourseHandler{db: db}
}

func courseNotFound() error {
	return apperrors.NotFound("Course not found")
}

func (h *CourseHandler) CreateCourse(c *fiber.Ctx) error {
	var req CourseRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	course, err := req.course()
	if err != nil {
		return err
	}

	err = database.WithTx(c.UserContext(), h.db, func(tx *gorm.DB) error {
		return tx.Create(&course).Error
	})
	if err != nil {
		return err
	}

	zerolog.Ctx(c.UserContext()).Info().Int64("course_id", course.CourseID).Msg("Course created")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Course created",
		"course_id": course.CourseID,
	})
}

func (h *CourseHandler) GetCourse(c *fiber.Ctx) error {
	courseID, err := parseID(c, "courseId", "course")
	if err != nil {
		return err
	}

	var course models.Course
	err = database.WithConn(c.UserContext(), h.db, func(db *gorm.DB) error {
		return foundOr(db.Take(&course, courseID).Error, courseNotFound())
	})
	if err != nil {
		return err
	}

	return c.JSON(course.Response())
}

// UpdateCourse replaces every mutable column; omitted optional fields become NULL.
func (h *CourseHandler) UpdateCourse(c *fiber.Ctx) error {
	courseID, err := parseID(c, "courseId", "course")
	if err != nil {
		return err
	}
	var req CourseRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	course, err := req.course()
	if err != nil {
		return err
	}

	err = database.WithTx(c.UserContext(), h.db, func(tx *gorm.DB) error {
		return requireRows(tx.Model(&models.Course{}).Where("course_id = ?", courseID).Updates(map[string]any{
			"title":       course.Title,
			"description": course.Description,
			"instructor":  course.Instructor,
			"start_date":  course.StartDate,
			"end_date":    course.EndDate,
			"price":       course.Price,
		}), courseNotFound())
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Course updated successfully"})
}

func (h *CourseHandler) DeleteCourse(c *fiber.Ctx) error {
	courseID, err := parseID(c, "courseId", "course")
	if err != nil {
		return err
	}

	err = database.WithTx(c.UserContext(), h.db, func(tx *gorm.DB) error {
		return requireRows(tx.Delete(&models.Course{}, courseID), courseNotFound())
	})
	if err != nil {
		return err
	}

	zerolog.Ctx(c.UserContext()).Info().Int64("course_id", courseID).Msg("Course deleted")
	return c.JSON(fiber.Map{"message": "Course deleted successfully"})
}
