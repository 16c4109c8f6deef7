package reports

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"assettrack/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) GetDashboardStats() (*models.DashboardStats, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DashboardStats), args.Error(1)
}

func (m *MockReportRepository) GetAssetCountsByType() ([]models.AssetTypeCount, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AssetTypeCount), args.Error(1)
}

func (m *MockReportRepository) GetExpiringWarranties(within time.Duration) ([]models.WarrantyAsset, error) {
	args := m.Called(within)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WarrantyAsset), args.Error(1)
}

func (m *MockReportRepository) GetAssignmentHistory() ([]models.Assignment, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Assignment), args.Error(1)
}

type MockReportExporter struct {
	mock.Mock
}

func (m *MockReportExporter) ExportWarrantyReport(assets []models.WarrantyAsset) (string, error) {
	args := m.Called(assets)
	return args.String(0), args.Error(1)
}

func (m *MockReportExporter) Enabled() bool {
	args := m.Called()
	return args.Bool(0)
}

func setupRouter(repo ReportRepository, exporter ReportExporter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewReportsHandler(repo, exporter).RegisterRoutes(router.Group("/api"))
	return router
}

func TestDashboardEndpoint(t *testing.T) {
	mockRepo := new(MockReportRepository)
	router := setupRouter(mockRepo, nil)

	stats := &models.DashboardStats{
		TotalAssets:       12,
		AvailableAssets:   7,
		AssignedAssets:    3,
		UnderRepairAssets: 1,
		RetiredAssets:     1,
		TotalEmployees:    5,
		ActiveAssignments: 3,
	}
	mockRepo.On("GetDashboardStats").Return(stats, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/reports/dashboard", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var got models.DashboardStats
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, 12, got.TotalAssets)
	assert.Equal(t, 3, got.ActiveAssignments)
}

func TestWarrantyEndpoint_DefaultWindow(t *testing.T) {
	mockRepo := new(MockReportRepository)
	router := setupRouter(mockRepo, nil)

	mockRepo.On("GetExpiringWarranties", 30*24*time.Hour).Return([]models.WarrantyAsset{}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/reports/warranty", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	mockRepo.AssertExpectations(t)
}

func TestWarrantyEndpoint_CustomWindow(t *testing.T) {
	mockRepo := new(MockReportRepository)
	router := setupRouter(mockRepo, nil)

	expiry := time.Now().UTC().Add(48 * time.Hour)
	assets := []models.WarrantyAsset{
		{ID: 1, Name: "ThinkPad T14", WarrantyExpiry: expiry, DaysRemaining: 2},
	}
	mockRepo.On("GetExpiringWarranties", 90*24*time.Hour).Return(assets, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/reports/warranty?days=90", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var got []models.WarrantyAsset
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Len(t, got, 1)
	assert.Equal(t, 2, got[0].DaysRemaining)
}

func TestWarrantyEndpoint_InvalidWindow(t *testing.T) {
	router := setupRouter(new(MockReportRepository), nil)

	req, _ := http.NewRequest(http.MethodGet, "/api/reports/warranty?days=-3", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestWarrantyExportEndpoint(t *testing.T) {
	mockRepo := new(MockReportRepository)
	mockExporter := new(MockReportExporter)
	router := setupRouter(mockRepo, mockExporter)

	assets := []models.WarrantyAsset{{ID: 1, Name: "ThinkPad T14"}}
	mockExporter.On("Enabled").Return(true).Once()
	mockRepo.On("GetExpiringWarranties", 30*24*time.Hour).Return(assets, nil).Once()
	mockExporter.On("ExportWarrantyReport", assets).Return("https://docs.google.com/spreadsheets/d/abc", nil).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/reports/warranty/export", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "docs.google.com")
	mockExporter.AssertExpectations(t)
}

func TestWarrantyExportEndpoint_NotConfigured(t *testing.T) {
	mockExporter := new(MockReportExporter)
	router := setupRouter(new(MockReportRepository), mockExporter)

	mockExporter.On("Enabled").Return(false).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/reports/warranty/export", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
}
