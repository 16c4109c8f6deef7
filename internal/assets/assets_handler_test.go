package assets

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

func setupRouter(service *AssetService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewAssetsHandler(service).RegisterRoutes(router.Group("/api"))
	return router
}

func TestCreateAssetEndpoint(t *testing.T) {
	mockRepo := new(MockAssetRepository)
	router := setupRouter(NewAssetService(mockRepo, new(MockRemovalGuard), nil))

	created := &models.Asset{ID: 1, Name: "ThinkPad T14", AssetType: "laptop", Status: "available", Condition: "good"}
	mockRepo.On("PersistAsset", mock.Anything).Return(created, nil).Once()

	body := []byte(`{"name": "ThinkPad T14", "asset_type": "laptop"}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/assets", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var got models.Asset
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, 1, got.ID)
	assert.Equal(t, "available", got.Status)
}

func TestCreateAssetEndpoint_MissingName(t *testing.T) {
	router := setupRouter(NewAssetService(new(MockAssetRepository), new(MockRemovalGuard), nil))

	body := []byte(`{"asset_type": "laptop"}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/assets", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestCreateAssetEndpoint_InvalidStatus(t *testing.T) {
	router := setupRouter(NewAssetService(new(MockAssetRepository), new(MockRemovalGuard), nil))

	body := []byte(`{"name": "Monitor", "asset_type": "display", "status": "broken"}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/assets", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestGetAssetEndpoint_NotFound(t *testing.T) {
	mockRepo := new(MockAssetRepository)
	router := setupRouter(NewAssetService(mockRepo, new(MockRemovalGuard), nil))

	mockRepo.On("GetAsset", 42).Return(nil, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/assets/42", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestGetAssetsEndpoint_StatusFilter(t *testing.T) {
	mockRepo := new(MockAssetRepository)
	router := setupRouter(NewAssetService(mockRepo, new(MockRemovalGuard), nil))

	available := []models.Asset{
		{ID: 1, Name: "ThinkPad T14", Status: "available"},
		{ID: 2, Name: "Dell U2720Q", Status: "available"},
	}
	mockRepo.On("GetAssetsBy", mock.Anything).Return(available, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/assets?status=available", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var got []models.Asset
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Len(t, got, 2)
	mockRepo.AssertNotCalled(t, "GetAssetList")
}

func TestGetAssetsEndpoint_SerialFilter(t *testing.T) {
	mockRepo := new(MockAssetRepository)
	router := setupRouter(NewAssetService(mockRepo, new(MockRemovalGuard), nil))

	serial := "SN-1234"
	mockRepo.On("GetAssetBySerial", "SN-1234").
		Return(&models.Asset{ID: 1, Name: "ThinkPad T14", SerialNumber: &serial}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/assets?serial_number=SN-1234", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var got []models.Asset
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)
	mockRepo.AssertNotCalled(t, "GetAssetList")
	mockRepo.AssertNotCalled(t, "GetAssetsBy", mock.Anything)
}

func TestGetAssetsEndpoint_SerialFilterNoMatch(t *testing.T) {
	mockRepo := new(MockAssetRepository)
	router := setupRouter(NewAssetService(mockRepo, new(MockRemovalGuard), nil))

	mockRepo.On("GetAssetBySerial", "SN-MISSING").Return(nil, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/assets?serial_number=SN-MISSING", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[]`, resp.Body.String())
}

func TestGetAssetsEndpoint_NoFilter(t *testing.T) {
	mockRepo := new(MockAssetRepository)
	router := setupRouter(NewAssetService(mockRepo, new(MockRemovalGuard), nil))

	mockRepo.On("GetAssetList").Return([]models.Asset{{ID: 1}}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/assets", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	mockRepo.AssertExpectations(t)
}

func TestDeleteAssetEndpoint_Conflict(t *testing.T) {
	mockRepo := new(MockAssetRepository)
	mockGuard := new(MockRemovalGuard)
	router := setupRouter(NewAssetService(mockRepo, mockGuard, nil))

	mockRepo.On("GetAsset", 1).Return(&models.Asset{ID: 1, Status: "available"}, nil).Once()
	mockGuard.On("CanRemoveAsset", 1).Return(false, nil).Once()
	mockGuard.On("CountAssignmentsForAsset", 1).Return(0, nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/assets/1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestDeleteAssetEndpoint_NoContent(t *testing.T) {
	mockRepo := new(MockAssetRepository)
	mockGuard := new(MockRemovalGuard)
	router := setupRouter(NewAssetService(mockRepo, mockGuard, nil))

	mockRepo.On("GetAsset", 1).Return(&models.Asset{ID: 1, Status: "retired"}, nil).Once()
	mockGuard.On("CanRemoveAsset", 1).Return(true, nil).Once()
	mockRepo.On("RemoveAsset", 1).Return(1, nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/assets/1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNoContent, resp.Code)
}
