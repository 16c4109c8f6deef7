package models

import (
	"time"
)

// DashboardStats is the single-row aggregate behind the dashboard endpoint.
type DashboardStats struct {
	TotalAssets       int `json:"total_assets" db:"total_assets"`
	AvailableAssets   int `json:"available_assets" db:"available_assets"`
	AssignedAssets    int `json:"assigned_assets" db:"assigned_assets"`
	UnderRepairAssets int `json:"under_repair_assets" db:"under_repair_assets"`
	RetiredAssets     int `json:"retired_assets" db:"retired_assets"`
	SpareAssets       int `json:"spare_assets" db:"spare_assets"`
	TotalEmployees    int `json:"total_employees" db:"total_employees"`
	ActiveEmployees   int `json:"active_employees" db:"active_employees"`
	ActiveAssignments int `json:"active_assignments" db:"active_assignments"`
}

type AssetTypeCount struct {
	AssetType string `json:"asset_type" db:"asset_type"`
	Count     int    `json:"count" db:"count"`
}

// WarrantyAsset is an asset whose warranty runs out inside the report
// window, with the number of days it has left.
type WarrantyAsset struct {
	ID             int       `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	AssetType      string    `json:"asset_type" db:"asset_type"`
	SerialNumber   *string   `json:"serial_number,omitempty" db:"serial_number"`
	Status         string    `json:"status" db:"status"`
	WarrantyExpiry time.Time `json:"warranty_expiry" db:"warranty_expiry"`
	DaysRemaining  int       `json:"days_remaining" db:"days_remaining"`
}
