package employees

import (
	"testing"

	custom_error "assettrack/pkg/errors"
	"assettrack/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) GetEmployee(id int) (*models.Employee, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) GetEmployeeList() ([]models.Employee, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) GetActiveEmployees() ([]models.Employee, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) EmailExists(email string, excludeID int) (bool, error) {
	args := m.Called(email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEmployeeRepository) PersistEmployee(req models.EmployeeRequest) (*models.Employee, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) UpdateEmployee(employeeID int, record goqu.Record) error {
	args := m.Called(employeeID, record)
	return args.Error(0)
}

func (m *MockEmployeeRepository) RemoveEmployee(employeeID int) (int, error) {
	args := m.Called(employeeID)
	return args.Int(0), args.Error(1)
}

type MockAssignmentChecker struct {
	mock.Mock
}

func (m *MockAssignmentChecker) HasActiveAssignmentForEmployee(employeeID int) (bool, error) {
	args := m.Called(employeeID)
	return args.Bool(0), args.Error(1)
}

func validEmployeeRequest() models.EmployeeRequest {
	return models.EmployeeRequest{
		FullName:    "Jan Kowalski",
		Department:  "IT",
		Email:       "jan.kowalski@example.com",
		Phone:       "+48 600 700 800",
		Designation: "Engineer",
	}
}

func TestCreateEmployee(t *testing.T) {
	mockRepo := new(MockEmployeeRepository)
	service := NewEmployeeService(mockRepo, new(MockAssignmentChecker))

	req := validEmployeeRequest()
	created := &models.Employee{ID: 1, FullName: req.FullName, Email: req.Email, IsActive: true}

	mockRepo.On("EmailExists", req.Email, 0).Return(false, nil).Once()
	mockRepo.On("PersistEmployee", req).Return(created, nil).Once()

	employee, err := service.CreateEmployee(req)

	assert.NoError(t, err)
	assert.Equal(t, 1, employee.ID)
	assert.True(t, employee.IsActive)
	mockRepo.AssertExpectations(t)
}

func TestCreateEmployee_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockEmployeeRepository)
	service := NewEmployeeService(mockRepo, new(MockAssignmentChecker))

	req := validEmployeeRequest()
	mockRepo.On("EmailExists", req.Email, 0).Return(true, nil).Once()

	_, err := service.CreateEmployee(req)

	var conflict *custom_error.ConflictError
	assert.ErrorAs(t, err, &conflict)
	mockRepo.AssertNotCalled(t, "PersistEmployee", mock.Anything)
}

func TestCreateEmployee_InvalidPhone(t *testing.T) {
	mockRepo := new(MockEmployeeRepository)
	service := NewEmployeeService(mockRepo, new(MockAssignmentChecker))

	tests := []string{"abc", "12", "+48-ABC-DEF", ""}
	for _, phone := range tests {
		req := validEmployeeRequest()
		req.Phone = phone

		_, err := service.CreateEmployee(req)

		var validation *custom_error.ValidationError
		assert.ErrorAs(t, err, &validation, "phone %q should be rejected", phone)
	}

	mockRepo.AssertNotCalled(t, "EmailExists", mock.Anything, mock.Anything)
}

func TestUpdateEmployee_EmailUniquenessExcludesSelf(t *testing.T) {
	mockRepo := new(MockEmployeeRepository)
	service := NewEmployeeService(mockRepo, new(MockAssignmentChecker))

	existing := &models.Employee{ID: 5, FullName: "Jan Kowalski", Email: "jan.kowalski@example.com"}
	email := "jan.kowalski@example.com"

	mockRepo.On("GetEmployee", 5).Return(existing, nil).Once()
	mockRepo.On("EmailExists", email, 5).Return(false, nil).Once()
	mockRepo.On("UpdateEmployee", 5, goqu.Record{"email": email}).Return(nil).Once()
	mockRepo.On("GetEmployee", 5).Return(existing, nil).Once()

	_, err := service.UpdateEmployee(5, models.UpdateEmployeeRequest{Email: &email})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestUpdateEmployee_NotFound(t *testing.T) {
	mockRepo := new(MockEmployeeRepository)
	service := NewEmployeeService(mockRepo, new(MockAssignmentChecker))

	mockRepo.On("GetEmployee", 99).Return(nil, nil).Once()

	name := "whoever"
	_, err := service.UpdateEmployee(99, models.UpdateEmployeeRequest{FullName: &name})

	var notFound *custom_error.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestUpdateEmployee_Deactivate(t *testing.T) {
	mockRepo := new(MockEmployeeRepository)
	service := NewEmployeeService(mockRepo, new(MockAssignmentChecker))

	existing := &models.Employee{ID: 5, IsActive: true}
	inactive := false

	mockRepo.On("GetEmployee", 5).Return(existing, nil).Once()
	mockRepo.On("UpdateEmployee", 5, goqu.Record{"is_active": false}).Return(nil).Once()
	deactivated := *existing
	deactivated.IsActive = false
	mockRepo.On("GetEmployee", 5).Return(&deactivated, nil).Once()

	employee, err := service.UpdateEmployee(5, models.UpdateEmployeeRequest{IsActive: &inactive})

	assert.NoError(t, err)
	assert.False(t, employee.IsActive)
}

func TestDeleteEmployee_BlockedByActiveAssignment(t *testing.T) {
	mockRepo := new(MockEmployeeRepository)
	mockChecker := new(MockAssignmentChecker)
	service := NewEmployeeService(mockRepo, mockChecker)

	mockRepo.On("GetEmployee", 5).Return(&models.Employee{ID: 5}, nil).Once()
	mockChecker.On("HasActiveAssignmentForEmployee", 5).Return(true, nil).Once()

	err := service.DeleteEmployee(5)

	var conflict *custom_error.ConflictError
	assert.ErrorAs(t, err, &conflict)
	mockRepo.AssertNotCalled(t, "RemoveEmployee", mock.Anything)
}

func TestDeleteEmployee(t *testing.T) {
	mockRepo := new(MockEmployeeRepository)
	mockChecker := new(MockAssignmentChecker)
	service := NewEmployeeService(mockRepo, mockChecker)

	mockRepo.On("GetEmployee", 5).Return(&models.Employee{ID: 5}, nil).Once()
	mockChecker.On("HasActiveAssignmentForEmployee", 5).Return(false, nil).Once()
	mockRepo.On("RemoveEmployee", 5).Return(5, nil).Once()

	err := service.DeleteEmployee(5)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
