package jira

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type JiraHandler struct {
	JiraService *JiraService
}

func NewJiraHandler(service *JiraService) *JiraHandler {
	return &JiraHandler{
		JiraService: service,
	}
}

func (h *JiraHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/repairs", h.getRepairRequests)
	router.GET("/repairs/:id", h.getRepairRequest)
}

func (h *JiraHandler) getRepairRequests(c *gin.Context) {
	if !h.JiraService.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service desk integration is not configured"})
		return
	}

	limit := c.DefaultQuery("limit", "50")
	start := c.DefaultQuery("start", "0")
	status := c.DefaultQuery("status", "")

	issues, err := h.JiraService.GetRepairRequests(status, limit, start)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch repair requests", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, issues)
}

func (h *JiraHandler) getRepairRequest(c *gin.Context) {
	if !h.JiraService.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service desk integration is not configured"})
		return
	}

	issueID := c.Param("id")

	issue, err := h.JiraService.GetRepairRequest(issueID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch repair request", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, issue)
}
