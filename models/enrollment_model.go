package models

import (
	"time"

	"github.com/ali-320/EduTrack-CC-Assignment-2/utils"
)

const DefaultEnrollmentStatus = "enrolled"

type Enrollment struct {
	EnrollmentID   int64      `gorm:"column:enrollment_id;primaryKey"`
	StudentID      int64      `gorm:"column:student_id"`
	CourseID       int64      `gorm:"column:course_id"`
	Status         string     `gorm:"column:status;default:'enrolled'"`
	EnrollmentDate *time.Time `gorm:"column:enrollment_date;default:CURRENT_TIMESTAMP"`
}

type EnrollmentResponse struct {
	EnrollmentID   int64   `json:"enrollment_id"`
	StudentID      int64   `json:"student_id"`
	CourseID       int64   `json:"course_id"`
	Status         string  `json:"status"`
	EnrollmentDate *string `json:"enrollment_date"`
}

func (e Enrollment) Response() EnrollmentResponse {
	return EnrollmentResponse{
		EnrollmentID:   e.EnrollmentID,
		StudentID:      e.StudentID,
		CourseID:       e.CourseID,
		Status:         e.Status,
		EnrollmentDate: utils.FormatTimestamp(e.EnrollmentDate),
	}
}
