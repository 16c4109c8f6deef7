package models

import (
	"time"
)

// Assignment links an asset to the employee currently holding it. AssetName
// and EmployeeName are resolved from the joined entities at read time and
// never stored on the row itself.
type Assignment struct {
	ID             int        `json:"id" db:"id"`
	AssetID        int        `json:"asset_id" db:"asset_id"`
	EmployeeID     *int       `json:"employee_id,omitempty" db:"employee_id"`
	AssignmentDate time.Time  `json:"assignment_date" db:"assignment_date"`
	ReturnDate     *time.Time `json:"return_date,omitempty" db:"return_date"`
	IsActive       bool       `json:"is_active" db:"is_active"`
	IsReturned     bool       `json:"is_returned" db:"is_returned"`
	Notes          string     `json:"notes" db:"notes"`
	ModifiedAt     *time.Time `json:"modified_at,omitempty" db:"modified_at"`
	AssetName      string     `json:"asset_name,omitempty" db:"asset_name"`
	EmployeeName   *string    `json:"employee_name,omitempty" db:"employee_name"`
}
