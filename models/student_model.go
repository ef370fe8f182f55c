package models

import (
	"time"

	"github.com/ali-320/EduTrack-CC-Assignment-2/utils"
)

// Student.RegistrationDate is left to the column default on insert and read back through RETURNING.
type Student struct {
	StudentID        int64      `gorm:"column:student_id;primaryKey"`
	FirstName        string     `gorm:"column:first_name"`
	LastName         string     `gorm:"column:last_name"`
	Email            string     `gorm:"column:email"`
	RegistrationDate *time.Time `gorm:"column:registration_date;default:CURRENT_TIMESTAMP"`
}

type StudentResponse struct {
	StudentID        int64   `json:"student_id"`
	FirstName        string  `json:"first_name"`
	LastName         string  `json:"last_name"`
	Email            string  `json:"email"`
	RegistrationDate *string `json:"registration_date"`
}

func (s Student) Response() StudentResponse {
	return StudentResponse{
		StudentID:        s.StudentID,
		FirstName:        s.FirstName,
		LastName:         s.LastName,
		Email:            s.Email,
		RegistrationDate: utils.FormatTimestamp(s.RegistrationDate),
	}
}
