package models

import (
	"time"

	"github.com/ali-320/EduTrack-CC-Assignment-2/utils"
)

type Course struct {
	CourseID    int64      `gorm:"column:course_id;primaryKey"`
	Title       string     `gorm:"column:title"`
	Description *string    `gorm:"column:description"`
	Instructor  *string    `gorm:"column:instructor"`
	StartDate   *time.Time `gorm:"column:start_date"`
	EndDate     *time.Time `gorm:"column:end_date"`
	Price       *float64   `gorm:"column:price"`
}

type CourseResponse struct {
	CourseID    int64    `json:"course_id"`
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Instructor  *string  `json:"instructor"`
	StartDate   *string  `json:"start_date"`
	EndDate     *string  `json:"end_date"`
	Price       *float64 `json:"price"`
}

func (c Course) Response() CourseResponse {
	return CourseResponse{
		CourseID:    c.CourseID,
		Title:       c.Title,
		Description: c.Description,
		Instructor:  c.Instructor,
		StartDate:   utils.FormatDate(c.StartDate),
		EndDate:     utils.FormatDate(c.EndDate),
		Price:       c.Price,
	}
}
