package models

import "time"

// Role values stored on a user. Comparison in the access gate is
// case-sensitive and exact, so these spellings are the contract.
const (
	RoleAdmin    = "admin"
	RoleHR       = "HR"
	RoleEmployee = "employee"
)

type User struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	Name          string  `json:"name" gorm:"type:varchar(255); not null"`
	Email         string  `json:"email" gorm:"type:varchar(255); unique;not null"`
	Role          string  `json:"role" gorm:"type:varchar(255); not null"`
	BankAccountNo string  `json:"bank_account_no" gorm:"type:varchar(255); not null"`
	Salary        float64 `json:"salary" gorm:"not null"`
	Designation   string  `json:"designation" gorm:"type:varchar(255); not null"`
	Photo         string  `json:"photo" gorm:"type:varchar(512)"`
	Fired         bool    `json:"fired" gorm:"default:false"`
	IsVerified    bool    `json:"isVerified" gorm:"default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
