package assets

import (
	"net/http"
	"strconv"

	"assettrack/internal/repository"
	custom_error "assettrack/pkg/errors"
	"assettrack/pkg/models"

	"github.com/gin-gonic/gin"
)

type AssetsHandler struct {
	service *AssetService
}

func NewAssetsHandler(service *AssetService) *AssetsHandler {
	return &AssetsHandler{
		service: service,
	}
}

func (h *AssetsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/assets", h.GetAssets)
	router.GET("/assets/:id", h.GetAsset)
	router.POST("/assets", h.CreateAsset)
	router.PUT("/assets/:id", h.UpdateAsset)
	router.DELETE("/assets/:id", h.DeleteAsset)
}

func (h *AssetsHandler) CreateAsset(c *gin.Context) {
	var req models.AssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	asset, err := h.service.CreateAsset(req)
	if err != nil {
		switch err.(type) {
		case *custom_error.ValidationError:
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case *custom_error.UniqueViolationError:
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to create asset", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, asset)
}

func (h *AssetsHandler) GetAsset(c *gin.Context) {
	assetID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asset ID"})
		return
	}

	asset, err := h.service.GetAsset(assetID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to get asset", "details": err.Error()})
		return
	}
	if asset == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unable to locate asset with given id"})
		return
	}

	c.JSON(http.StatusOK, asset)
}

func (h *AssetsHandler) GetAssets(c *gin.Context) {
	// a serial number identifies at most one asset, so this filter wins
	// over the others
	if serial := c.Query("serial_number"); serial != "" {
		asset, err := h.service.GetAssetBySerial(serial)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to get assets", "details": err.Error()})
			return
		}
		if asset == nil {
			c.JSON(http.StatusOK, []models.Asset{})
			return
		}
		c.JSON(http.StatusOK, []models.Asset{*asset})
		return
	}

	qb := repository.NewQueryBuilder()
	filtered := false

	if status := c.Query("status"); status != "" {
		qb.AddCondition("status", status)
		filtered = true
	}
	if assetType := c.Query("asset_type"); assetType != "" {
		qb.AddCondition("asset_type", assetType)
		filtered = true
	}
	if condition := c.Query("condition"); condition != "" {
		qb.AddCondition("condition", condition)
		filtered = true
	}
	if spareParam := c.Query("is_spare"); spareParam != "" {
		isSpare, err := strconv.ParseBool(spareParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid is_spare filter"})
			return
		}
		qb.AddCondition("is_spare", isSpare)
		filtered = true
	}

	var assets []models.Asset
	var err error
	if filtered {
		assets, err = h.service.GetAssetsBy(qb)
	} else {
		assets, err = h.service.GetAssetList()
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to get assets", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, assets)
}

func (h *AssetsHandler) UpdateAsset(c *gin.Context) {
	assetID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asset ID"})
		return
	}

	var req models.UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	asset, err := h.service.UpdateAsset(assetID, req)
	if err != nil {
		switch err.(type) {
		case *custom_error.NotFoundError:
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case *custom_error.ValidationError:
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case *custom_error.ConflictError, *custom_error.UniqueViolationError:
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to update asset", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, asset)
}

func (h *AssetsHandler) DeleteAsset(c *gin.Context) {
	assetID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asset ID"})
		return
	}

	if err := h.service.DeleteAsset(assetID); err != nil {
		switch err.(type) {
		case *custom_error.NotFoundError:
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case *custom_error.ConflictError:
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete asset", "details": err.Error()})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
