package models

import "time"

// PayrollRequest is a monthly payment request raised by HR for an
// employee. Approval stamps PaymentDate and TransactionID; until then
// both stay empty. Duplicate submissions are not deduplicated.
type PayrollRequest struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	Email         string     `json:"email" gorm:"type:varchar(255); not null; index"`
	Name          string     `json:"name" gorm:"type:varchar(255)"`
	Salary        float64    `json:"salary" gorm:"not null"`
	Month         string     `json:"month" gorm:"type:varchar(32); not null"`
	Year          int        `json:"year" gorm:"not null"`
	PaymentDate   *time.Time `json:"payment_date"`
	TransactionID string     `json:"transaction_id" gorm:"type:varchar(64)"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
