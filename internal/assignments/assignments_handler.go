package assignments

import (
	"io"
	"net/http"
	"strconv"
	"time"

	custom_error "assettrack/pkg/errors"
	"assettrack/pkg/models"

	"github.com/gin-gonic/gin"
)

type AssignmentsHandler struct {
	service *AssignmentService
}

func NewHandler(service *AssignmentService) *AssignmentsHandler {
	return &AssignmentsHandler{
		service: service,
	}
}

func (h *AssignmentsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/assignments", h.GetAssignments)
	router.GET("/assignments/:id", h.GetAssignment)
	router.POST("/assignments", h.CreateAssignment)
	router.POST("/assignments/:id/return", h.ReturnAsset)
}

func (h *AssignmentsHandler) CreateAssignment(c *gin.Context) {
	var req models.AssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	assignment, err := h.service.CreateAssignment(req)
	if err != nil {
		switch err.(type) {
		case *custom_error.NotFoundError:
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case *custom_error.ConflictError, *custom_error.UniqueViolationError, *custom_error.ForeignKeyViolationError:
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to create assignment", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, assignment)
}

func (h *AssignmentsHandler) ReturnAsset(c *gin.Context) {
	assignmentID, err := strconv.Atoi(c.Param("id"))
	if err != nil || assignmentID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignment ID"})
		return
	}

	// the body is optional; a bare return stamps the current time
	var req models.ReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil && err != io.EOF {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	returnDate := time.Now().UTC()
	if req.ReturnDate != nil {
		returnDate = *req.ReturnDate
	}

	returned, err := h.service.ReturnAsset(assignmentID, returnDate, req.Notes)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to return asset", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"returned": returned})
}

func (h *AssignmentsHandler) GetAssignment(c *gin.Context) {
	assignmentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignment ID"})
		return
	}

	assignment, err := h.service.GetAssignment(assignmentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to get assignment", "details": err.Error()})
		return
	}
	if assignment == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unable to locate assignment with given id"})
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// GetAssignments lists assignments, optionally filtered by employee, asset
// or active state. The single active assignment for an asset is the
// asset_id + active combination.
func (h *AssignmentsHandler) GetAssignments(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	if assetParam := c.Query("asset_id"); assetParam != "" {
		assetID, err := strconv.Atoi(assetParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asset_id filter"})
			return
		}

		if activeOnly {
			assignment, err := h.service.GetActiveAssignmentForAsset(assetID)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to get assignments", "details": err.Error()})
				return
			}
			if assignment == nil {
				c.JSON(http.StatusOK, []models.Assignment{})
				return
			}
			c.JSON(http.StatusOK, []models.Assignment{*assignment})
			return
		}

		assignments, err := h.service.GetAssignmentsByAsset(assetID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to get assignments", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, assignments)
		return
	}

	if employeeParam := c.Query("employee_id"); employeeParam != "" {
		employeeID, err := strconv.Atoi(employeeParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee_id filter"})
			return
		}

		assignments, err := h.service.GetAssignmentsByEmployee(employeeID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to get assignments", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, assignments)
		return
	}

	var assignments []models.Assignment
	var err error
	if activeOnly {
		assignments, err = h.service.GetActiveAssignments()
	} else {
		assignments, err = h.service.GetAssignments()
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to get assignments", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, assignments)
}
