package assets

import (
	"fmt"
	"time"

	"assettrack/internal/repository"
	custom_error "assettrack/pkg/errors"
	"assettrack/pkg/metadata"
	"assettrack/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"
)

type AssetsRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *AssetsRepository {
	return &AssetsRepository{
		repository: r,
	}
}

func (r *AssetsRepository) GetAsset(id int) (*models.Asset, error) {
	return r.fetchAssetByCondition(goqu.Ex{"id": id})
}

func (r *AssetsRepository) GetAssetBySerial(serial string) (*models.Asset, error) {
	return r.fetchAssetByCondition(goqu.Ex{"serial_number": serial})
}

func (r *AssetsRepository) GetAssetList() ([]models.Asset, error) {
	query := r.getAssetQuery()

	var assets []models.Asset
	if err := query.Executor().ScanStructs(&assets); err != nil {
		return nil, fmt.Errorf("unable to select assets from database: %w", err)
	}

	return assets, nil
}

func (r *AssetsRepository) GetAssetsBy(conditions repository.QueryBuilder) ([]models.Asset, error) {
	aliases := map[string]string{
		"status":     "status",
		"asset_type": "asset_type",
		"is_spare":   "is_spare",
		"condition":  "condition",
	}

	query := r.getAssetQuery().Where(conditions.BuildConditions(aliases))

	var assets []models.Asset
	if err := query.Executor().ScanStructs(&assets); err != nil {
		return nil, fmt.Errorf("unable to select assets from database: %w", err)
	}

	return assets, nil
}

func (r *AssetsRepository) PersistAsset(req models.AssetRequest) (*models.Asset, error) {
	record := goqu.Record{
		"name":       req.Name,
		"asset_type": req.AssetType,
		"make_model": req.MakeModel,
		"condition":  req.Condition,
		"status":     req.Status,
		"is_spare":   req.IsSpare,
	}

	if req.SerialNumber != nil {
		record["serial_number"] = *req.SerialNumber
	}
	if req.PurchaseDate != nil {
		record["purchase_date"] = *req.PurchaseDate
	}
	if req.WarrantyExpiry != nil {
		record["warranty_expiry"] = *req.WarrantyExpiry
	}
	if req.Specifications != nil {
		record["specifications"] = *req.Specifications
	}

	var assetID int
	query := r.repository.GoquDBWrapper.Insert("assets").
		Rows(record).
		Returning("id")

	if _, err := query.Executor().ScanVal(&assetID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, custom_error.WrapDBError("Duplicate serial number for asset", string(pqErr.Code))
		}
		return nil, fmt.Errorf("failed to insert asset record: %w", err)
	}

	return r.GetAsset(assetID)
}

// UpdateAsset applies a partial update and stamps modified_at. The record is
// assembled by the service from the fields the caller actually sent.
func (r *AssetsRepository) UpdateAsset(assetID int, record goqu.Record) error {
	record["modified_at"] = time.Now().UTC()

	result, err := r.repository.GoquDBWrapper.
		Update("assets").
		Set(record).
		Where(goqu.Ex{"id": assetID}).
		Executor().
		Exec()

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return custom_error.WrapDBError("Duplicate serial number for asset", string(pqErr.Code))
		}
		return fmt.Errorf("failed to update asset: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("no asset found with id: %d", assetID)
	}

	return nil
}

// GetAssetForUpdate loads an asset inside a transaction with a row lock, so
// concurrent lifecycle transitions on the same asset serialize.
func (r *AssetsRepository) GetAssetForUpdate(tx *goqu.TxDatabase, assetID int) (*models.Asset, error) {
	query := tx.
		Select("id", "name", "asset_type", "make_model", "serial_number", "purchase_date",
			"warranty_expiry", "condition", "status", "is_spare", "specifications",
			"created_at", "modified_at").
		From("assets").
		Where(goqu.Ex{"id": assetID}).
		ForUpdate(goqu.Wait)

	var asset models.Asset
	found, err := query.Executor().ScanStruct(&asset)

	if err != nil {
		return nil, fmt.Errorf("unable to select asset for update: %w", err)
	}
	if !found {
		return nil, nil
	}

	return &asset, nil
}

func (r *AssetsRepository) UpdateAssetStatus(tx *goqu.TxDatabase, assetID int, status metadata.Status) error {
	if tx == nil {
		return fmt.Errorf("transaction is required for UpdateAssetStatus")
	}

	result, err := tx.Update("assets").
		Set(goqu.Record{
			"status":      status.String(),
			"modified_at": time.Now().UTC(),
		}).
		Where(goqu.Ex{"id": assetID}).
		Executor().
		Exec()

	if err != nil {
		return fmt.Errorf("failed to update asset status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("no asset found with id: %d", assetID)
	}

	return nil
}

func (r *AssetsRepository) RemoveAsset(assetID int) (int, error) {
	var id int
	query := r.repository.GoquDBWrapper.
		Delete("assets").
		Where(goqu.Ex{"id": assetID}).
		Returning("id")

	if _, err := query.Executor().ScanVal(&id); err != nil {
		return 0, fmt.Errorf("failed to delete asset: %w", err)
	}

	return id, nil
}

func (r *AssetsRepository) fetchAssetByCondition(condition goqu.Expression) (*models.Asset, error) {
	query := r.getAssetQuery().Where(condition)

	var asset models.Asset
	found, err := query.Executor().ScanStruct(&asset)

	if err != nil {
		return nil, fmt.Errorf("unable to select asset from database: %w", err)
	}
	if !found {
		return nil, nil
	}

	return &asset, nil
}

func (r *AssetsRepository) getAssetQuery() *goqu.SelectDataset {
	return r.repository.GoquDBWrapper.
		Select("id", "name", "asset_type", "make_model", "serial_number", "purchase_date",
			"warranty_expiry", "condition", "status", "is_spare", "specifications",
			"created_at", "modified_at").
		From("assets").
		Order(goqu.I("created_at").Desc())
}
