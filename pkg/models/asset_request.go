package models

import (
	"time"
)

type AssetRequest struct {
	Name           string     `json:"name" binding:"required,max=100"`
	AssetType      string     `json:"asset_type" binding:"required,max=50"`
	MakeModel      string     `json:"make_model" binding:"max=100"`
	SerialNumber   *string    `json:"serial_number"`
	PurchaseDate   *time.Time `json:"purchase_date"`
	WarrantyExpiry *time.Time `json:"warranty_expiry"`
	Condition      string     `json:"condition"`
	Status         string     `json:"status"`
	IsSpare        bool       `json:"is_spare"`
	Specifications *string    `json:"specifications"`
}

// UpdateAssetRequest carries only the fields a caller wants changed; nil
// means "keep the stored value".
type UpdateAssetRequest struct {
	Name           *string    `json:"name"`
	AssetType      *string    `json:"asset_type"`
	MakeModel      *string    `json:"make_model"`
	SerialNumber   *string    `json:"serial_number"`
	PurchaseDate   *time.Time `json:"purchase_date"`
	WarrantyExpiry *time.Time `json:"warranty_expiry"`
	Condition      *string    `json:"condition"`
	Status         *string    `json:"status"`
	IsSpare        *bool      `json:"is_spare"`
	Specifications *string    `json:"specifications"`
}
