package models

import (
	"time"
)

type Asset struct {
	ID             int        `json:"id" db:"id"`
	Name           string     `json:"name" db:"name"`
	AssetType      string     `json:"asset_type" db:"asset_type"`
	MakeModel      string     `json:"make_model" db:"make_model"`
	SerialNumber   *string    `json:"serial_number,omitempty" db:"serial_number"`
	PurchaseDate   *time.Time `json:"purchase_date,omitempty" db:"purchase_date"`
	WarrantyExpiry *time.Time `json:"warranty_expiry,omitempty" db:"warranty_expiry"`
	Condition      string     `json:"condition" db:"condition"`
	Status         string     `json:"status" db:"status"`
	IsSpare        bool       `json:"is_spare" db:"is_spare"`
	Specifications *string    `json:"specifications,omitempty" db:"specifications"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	ModifiedAt     *time.Time `json:"modified_at,omitempty" db:"modified_at"`
}
