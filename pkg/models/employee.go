package models

import (
	"time"
)

type Employee struct {
	ID          int        `json:"id" db:"id"`
	FullName    string     `json:"full_name" db:"full_name"`
	Department  string     `json:"department" db:"department"`
	Email       string     `json:"email" db:"email"`
	Phone       string     `json:"phone" db:"phone"`
	Designation string     `json:"designation" db:"designation"`
	IsActive    bool       `json:"is_active" db:"is_active"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	ModifiedAt  *time.Time `json:"modified_at,omitempty" db:"modified_at"`
}
