package models

type EmployeeRequest struct {
	FullName    string `json:"full_name" binding:"required,max=100"`
	Department  string `json:"department" binding:"required,max=50"`
	Email       string `json:"email" binding:"required,email,max=100"`
	Phone       string `json:"phone" binding:"required,max=20"`
	Designation string `json:"designation" binding:"required,max=50"`
	IsActive    *bool  `json:"is_active"`
}

type UpdateEmployeeRequest struct {
	FullName    *string `json:"full_name"`
	Department  *string `json:"department"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Designation *string `json:"designation"`
	IsActive    *bool   `json:"is_active"`
}
