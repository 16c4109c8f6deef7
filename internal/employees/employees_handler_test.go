package employees

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"assettrack/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupRouter(service *EmployeeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewEmployeesHandler(service).RegisterRoutes(router.Group("/api"))
	return router
}

func TestCreateEmployeeEndpoint(t *testing.T) {
	mockRepo := new(MockEmployeeRepository)
	router := setupRouter(NewEmployeeService(mockRepo, new(MockAssignmentChecker)))

	created := &models.Employee{ID: 1, FullName: "Jan Kowalski", Email: "jan.kowalski@example.com", IsActive: true}
	mockRepo.On("EmailExists", "jan.kowalski@example.com", 0).Return(false, nil).Once()
	mockRepo.On("PersistEmployee", mock.Anything).Return(created, nil).Once()

	body := []byte(`{
		"full_name": "Jan Kowalski",
		"department": "IT",
		"email": "jan.kowalski@example.com",
		"phone": "+48 600 700 800",
		"designation": "Engineer"
	}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/employees", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var got models.Employee
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, 1, got.ID)
}

func TestCreateEmployeeEndpoint_InvalidEmail(t *testing.T) {
	router := setupRouter(NewEmployeeService(new(MockEmployeeRepository), new(MockAssignmentChecker)))

	body := []byte(`{
		"full_name": "Jan Kowalski",
		"department": "IT",
		"email": "not-an-email",
		"phone": "+48 600 700 800",
		"designation": "Engineer"
	}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/employees", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestGetEmployeesEndpoint_ActiveOnly(t *testing.T) {
	mockRepo := new(MockEmployeeRepository)
	router := setupRouter(NewEmployeeService(mockRepo, new(MockAssignmentChecker)))

	active := []models.Employee{{ID: 1, IsActive: true}}
	mockRepo.On("GetActiveEmployees").Return(active, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/employees?active=true", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	mockRepo.AssertNotCalled(t, "GetEmployeeList")
}

func TestDeleteEmployeeEndpoint_Conflict(t *testing.T) {
	mockRepo := new(MockEmployeeRepository)
	mockChecker := new(MockAssignmentChecker)
	router := setupRouter(NewEmployeeService(mockRepo, mockChecker))

	mockRepo.On("GetEmployee", 5).Return(&models.Employee{ID: 5}, nil).Once()
	mockChecker.On("HasActiveAssignmentForEmployee", 5).Return(true, nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/employees/5", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.Contains(t, resp.Body.String(), "assigned assets")
}
