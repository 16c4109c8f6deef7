package employees

import (
	"net/http"
	"strconv"

	custom_error "assettrack/pkg/errors"
	"assettrack/pkg/models"

	"github.com/gin-gonic/gin"
)

type EmployeesHandler struct {
	service *EmployeeService
}

func NewEmployeesHandler(service *EmployeeService) *EmployeesHandler {
	return &EmployeesHandler{
		service: service,
	}
}

func (h *EmployeesHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/employees", h.GetEmployees)
	router.GET("/employees/:id", h.GetEmployee)
	router.POST("/employees", h.CreateEmployee)
	router.PUT("/employees/:id", h.UpdateEmployee)
	router.DELETE("/employees/:id", h.DeleteEmployee)
}

func (h *EmployeesHandler) CreateEmployee(c *gin.Context) {
	var req models.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	employee, err := h.service.CreateEmployee(req)
	if err != nil {
		switch err.(type) {
		case *custom_error.ValidationError:
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case *custom_error.ConflictError, *custom_error.UniqueViolationError:
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to create employee", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, employee)
}

func (h *EmployeesHandler) GetEmployee(c *gin.Context) {
	employeeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID"})
		return
	}

	employee, err := h.service.GetEmployee(employeeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to get employee", "details": err.Error()})
		return
	}
	if employee == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unable to locate employee with given id"})
		return
	}

	c.JSON(http.StatusOK, employee)
}

func (h *EmployeesHandler) GetEmployees(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	employees, err := h.service.GetEmployeeList(activeOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to get employees", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, employees)
}

func (h *EmployeesHandler) UpdateEmployee(c *gin.Context) {
	employeeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID"})
		return
	}

	var req models.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	employee, err := h.service.UpdateEmployee(employeeID, req)
	if err != nil {
		switch err.(type) {
		case *custom_error.NotFoundError:
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case *custom_error.ValidationError:
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case *custom_error.ConflictError, *custom_error.UniqueViolationError:
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to update employee", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, employee)
}

func (h *EmployeesHandler) DeleteEmployee(c *gin.Context) {
	employeeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID"})
		return
	}

	if err := h.service.DeleteEmployee(employeeID); err != nil {
		switch err.(type) {
		case *custom_error.NotFoundError:
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case *custom_error.ConflictError, *custom_error.ForeignKeyViolationError:
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete employee", "details": err.Error()})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
