package employees

import (
	"regexp"

	custom_error "assettrack/pkg/errors"
	"assettrack/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

// phone numbers: optional +, then digits with separators, 7 to 20 characters
var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9\s\-()]{5,18}[0-9]$`)

type EmployeeRepository interface {
	GetEmployee(id int) (*models.Employee, error)
	GetEmployeeList() ([]models.Employee, error)
	GetActiveEmployees() ([]models.Employee, error)
	EmailExists(email string, excludeID int) (bool, error)
	PersistEmployee(req models.EmployeeRequest) (*models.Employee, error)
	UpdateEmployee(employeeID int, record goqu.Record) error
	RemoveEmployee(employeeID int) (int, error)
}

// AssignmentChecker tells whether an employee still holds assets. The
// assignment engine owns that answer.
type AssignmentChecker interface {
	HasActiveAssignmentForEmployee(employeeID int) (bool, error)
}

type EmployeeService struct {
	employeesRepo EmployeeRepository
	assignments   AssignmentChecker
}

func NewEmployeeService(employeesRepo EmployeeRepository, assignments AssignmentChecker) *EmployeeService {
	return &EmployeeService{
		employeesRepo: employeesRepo,
		assignments:   assignments,
	}
}

func (s *EmployeeService) CreateEmployee(req models.EmployeeRequest) (*models.Employee, error) {
	if !phonePattern.MatchString(req.Phone) {
		return nil, custom_error.NewValidationError("invalid phone number format")
	}

	taken, err := s.employeesRepo.EmailExists(req.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, custom_error.NewConflictError("employee email already registered")
	}

	return s.employeesRepo.PersistEmployee(req)
}

func (s *EmployeeService) GetEmployee(id int) (*models.Employee, error) {
	return s.employeesRepo.GetEmployee(id)
}

func (s *EmployeeService) GetEmployeeList(activeOnly bool) ([]models.Employee, error) {
	if activeOnly {
		return s.employeesRepo.GetActiveEmployees()
	}
	return s.employeesRepo.GetEmployeeList()
}

func (s *EmployeeService) UpdateEmployee(employeeID int, req models.UpdateEmployeeRequest) (*models.Employee, error) {
	existing, err := s.employeesRepo.GetEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, custom_error.NewNotFoundError("employee", employeeID)
	}

	record := goqu.Record{}

	if req.FullName != nil {
		record["full_name"] = *req.FullName
	}
	if req.Department != nil {
		record["department"] = *req.Department
	}
	if req.Designation != nil {
		record["designation"] = *req.Designation
	}
	if req.IsActive != nil {
		record["is_active"] = *req.IsActive
	}

	if req.Phone != nil {
		if !phonePattern.MatchString(*req.Phone) {
			return nil, custom_error.NewValidationError("invalid phone number format")
		}
		record["phone"] = *req.Phone
	}

	if req.Email != nil {
		taken, err := s.employeesRepo.EmailExists(*req.Email, employeeID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, custom_error.NewConflictError("employee email already registered")
		}
		record["email"] = *req.Email
	}

	if len(record) == 0 {
		return existing, nil
	}

	if err := s.employeesRepo.UpdateEmployee(employeeID, record); err != nil {
		return nil, err
	}

	return s.employeesRepo.GetEmployee(employeeID)
}

// DeleteEmployee refuses while the employee still holds assets. Assignment
// history keeps the row alive through the foreign key; deactivating via
// is_active is the soft alternative.
func (s *EmployeeService) DeleteEmployee(employeeID int) error {
	existing, err := s.employeesRepo.GetEmployee(employeeID)
	if err != nil {
		return err
	}
	if existing == nil {
		return custom_error.NewNotFoundError("employee", employeeID)
	}

	holding, err := s.assignments.HasActiveAssignmentForEmployee(employeeID)
	if err != nil {
		return err
	}
	if holding {
		return custom_error.NewConflictError("employee still holds assigned assets")
	}

	if _, err := s.employeesRepo.RemoveEmployee(employeeID); err != nil {
		return err
	}

	return nil
}
