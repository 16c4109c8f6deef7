package models

import (
	"time"
)

type AssignmentRequest struct {
	AssetID        int        `json:"asset_id" binding:"required"`
	EmployeeID     *int       `json:"employee_id"`
	AssignmentDate *time.Time `json:"assignment_date"`
	Notes          string     `json:"notes" binding:"max=500"`
}

type ReturnRequest struct {
	ReturnDate *time.Time `json:"return_date"`
	Notes      string     `json:"notes" binding:"max=500"`
}
