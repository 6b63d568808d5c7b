package models

import "time"

// Task is a work-log entry submitted by an employee. Tasks are scoped by
// the submitter's email, not by user id.
type Task struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	Email     string  `json:"email" gorm:"type:varchar(255); not null; index"`
	Name      string  `json:"name" gorm:"type:varchar(255)"`
	Task      string  `json:"task" gorm:"type:varchar(255); not null"`
	Hours     float64 `json:"hours" gorm:"not null"`
	Date      string  `json:"date" gorm:"type:varchar(64)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
