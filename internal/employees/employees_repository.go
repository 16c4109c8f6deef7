package employees

import (
	"fmt"
	"time"

	"assettrack/internal/repository"
	custom_error "assettrack/pkg/errors"
	"assettrack/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"
)

type EmployeesRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *EmployeesRepository {
	return &EmployeesRepository{
		repository: r,
	}
}

func (r *EmployeesRepository) GetEmployee(id int) (*models.Employee, error) {
	query := r.getEmployeeQuery().Where(goqu.Ex{"id": id})

	var employee models.Employee
	found, err := query.Executor().ScanStruct(&employee)

	if err != nil {
		return nil, fmt.Errorf("unable to select employee from database: %w", err)
	}
	if !found {
		return nil, nil
	}

	return &employee, nil
}

func (r *EmployeesRepository) GetEmployeeList() ([]models.Employee, error) {
	query := r.getEmployeeQuery()

	var employees []models.Employee
	if err := query.Executor().ScanStructs(&employees); err != nil {
		return nil, fmt.Errorf("unable to select employees from database: %w", err)
	}

	return employees, nil
}

func (r *EmployeesRepository) GetActiveEmployees() ([]models.Employee, error) {
	query := r.getEmployeeQuery().Where(goqu.Ex{"is_active": true})

	var employees []models.Employee
	if err := query.Executor().ScanStructs(&employees); err != nil {
		return nil, fmt.Errorf("unable to select employees from database: %w", err)
	}

	return employees, nil
}

// EmailExists checks whether another employee already uses the address.
// excludeID skips the employee being updated; pass 0 on create.
func (r *EmployeesRepository) EmailExists(email string, excludeID int) (bool, error) {
	var count int
	query := r.repository.GoquDBWrapper.
		Select(goqu.COUNT("*")).
		From("employees").
		Where(goqu.Ex{"email": email})

	if excludeID != 0 {
		query = query.Where(goqu.Ex{"id": goqu.Op{"neq": excludeID}})
	}

	if _, err := query.Executor().ScanVal(&count); err != nil {
		return false, fmt.Errorf("failed to check employee email: %w", err)
	}

	return count > 0, nil
}

func (r *EmployeesRepository) PersistEmployee(req models.EmployeeRequest) (*models.Employee, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	record := goqu.Record{
		"full_name":   req.FullName,
		"department":  req.Department,
		"email":       req.Email,
		"phone":       req.Phone,
		"designation": req.Designation,
		"is_active":   isActive,
	}

	var employeeID int
	query := r.repository.GoquDBWrapper.Insert("employees").
		Rows(record).
		Returning("id")

	if _, err := query.Executor().ScanVal(&employeeID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, custom_error.WrapDBError("Employee email already registered", string(pqErr.Code))
		}
		return nil, fmt.Errorf("failed to insert employee record: %w", err)
	}

	return r.GetEmployee(employeeID)
}

func (r *EmployeesRepository) UpdateEmployee(employeeID int, record goqu.Record) error {
	record["modified_at"] = time.Now().UTC()

	result, err := r.repository.GoquDBWrapper.
		Update("employees").
		Set(record).
		Where(goqu.Ex{"id": employeeID}).
		Executor().
		Exec()

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return custom_error.WrapDBError("Employee email already registered", string(pqErr.Code))
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("no employee found with id: %d", employeeID)
	}

	return nil
}

func (r *EmployeesRepository) RemoveEmployee(employeeID int) (int, error) {
	var id int
	query := r.repository.GoquDBWrapper.
		Delete("employees").
		Where(goqu.Ex{"id": employeeID}).
		Returning("id")

	if _, err := query.Executor().ScanVal(&id); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return 0, custom_error.WrapDBError("Employee still has assignment history", string(pqErr.Code))
		}
		return 0, fmt.Errorf("failed to delete employee: %w", err)
	}

	return id, nil
}

func (r *EmployeesRepository) getEmployeeQuery() *goqu.SelectDataset {
	return r.repository.GoquDBWrapper.
		Select("id", "full_name", "department", "email", "phone", "designation",
			"is_active", "created_at", "modified_at").
		From("employees").
		Order(goqu.I("full_name").Asc())
}
