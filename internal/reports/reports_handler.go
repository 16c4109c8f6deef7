package reports

import (
	"net/http"
	"strconv"
	"time"

	"assettrack/pkg/models"

	"github.com/gin-gonic/gin"
)

// default window for the warranty expiry report
const defaultWarrantyWindowDays = 30

type ReportRepository interface {
	GetDashboardStats() (*models.DashboardStats, error)
	GetAssetCountsByType() ([]models.AssetTypeCount, error)
	GetExpiringWarranties(within time.Duration) ([]models.WarrantyAsset, error)
	GetAssignmentHistory() ([]models.Assignment, error)
}

// ReportExporter pushes a warranty report to an external spreadsheet and
// returns its URL.
type ReportExporter interface {
	ExportWarrantyReport(assets []models.WarrantyAsset) (string, error)
	Enabled() bool
}

type ReportsHandler struct {
	repo     ReportRepository
	exporter ReportExporter
}

func NewReportsHandler(repo ReportRepository, exporter ReportExporter) *ReportsHandler {
	return &ReportsHandler{
		repo:     repo,
		exporter: exporter,
	}
}

func (h *ReportsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/reports/dashboard", h.GetDashboard)
	router.GET("/reports/assets-by-type", h.GetAssetsByType)
	router.GET("/reports/warranty", h.GetExpiringWarranties)
	router.GET("/reports/assignments", h.GetAssignmentHistory)
	router.POST("/reports/warranty/export", h.ExportWarrantyReport)
}

func (h *ReportsHandler) GetDashboard(c *gin.Context) {
	stats, err := h.repo.GetDashboardStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to build dashboard", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *ReportsHandler) GetAssetsByType(c *gin.Context) {
	counts, err := h.repo.GetAssetCountsByType()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to count assets by type", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, counts)
}

func (h *ReportsHandler) GetExpiringWarranties(c *gin.Context) {
	days, err := h.warrantyWindowDays(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid days parameter"})
		return
	}

	assets, err := h.repo.GetExpiringWarranties(time.Duration(days) * 24 * time.Hour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to build warranty report", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, assets)
}

func (h *ReportsHandler) GetAssignmentHistory(c *gin.Context) {
	history, err := h.repo.GetAssignmentHistory()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to build assignment history", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, history)
}

func (h *ReportsHandler) ExportWarrantyReport(c *gin.Context) {
	if h.exporter == nil || !h.exporter.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Spreadsheet export is not configured"})
		return
	}

	days, err := h.warrantyWindowDays(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid days parameter"})
		return
	}

	assets, err := h.repo.GetExpiringWarranties(time.Duration(days) * 24 * time.Hour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to build warranty report", "details": err.Error()})
		return
	}

	url, err := h.exporter.ExportWarrantyReport(assets)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export warranty report", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url, "rows": len(assets)})
}

func (h *ReportsHandler) warrantyWindowDays(c *gin.Context) (int, error) {
	days := defaultWarrantyWindowDays
	if daysParam := c.Query("days"); daysParam != "" {
		parsed, err := strconv.Atoi(daysParam)
		if err != nil || parsed <= 0 {
			return 0, strconv.ErrSyntax
		}
		days = parsed
	}
	return days, nil
}
