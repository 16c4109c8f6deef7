package assets

import (
	"log"

	"assettrack/internal/repository"
	custom_error "assettrack/pkg/errors"
	"assettrack/pkg/metadata"
	"assettrack/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

// AssetRepository is the persistence surface the CRUD service needs.
type AssetRepository interface {
	GetAsset(id int) (*models.Asset, error)
	GetAssetBySerial(serial string) (*models.Asset, error)
	GetAssetList() ([]models.Asset, error)
	GetAssetsBy(conditions repository.QueryBuilder) ([]models.Asset, error)
	PersistAsset(req models.AssetRequest) (*models.Asset, error)
	UpdateAsset(assetID int, record goqu.Record) error
	RemoveAsset(assetID int) (int, error)
}

// RemovalGuard answers whether an asset may be hard-deleted. The assignment
// engine owns the answer because it keeps the assignment history.
type RemovalGuard interface {
	CanRemoveAsset(assetID int) (bool, error)
	CountAssignmentsForAsset(assetID int) (int, error)
}

// RepairNotifier is told when an asset enters repair, so a ticket can be
// opened in the external service desk. Failures are logged, never surfaced.
type RepairNotifier interface {
	NotifyUnderRepair(asset *models.Asset)
}

type AssetService struct {
	assetsRepo AssetRepository
	guard      RemovalGuard
	notifier   RepairNotifier
}

func NewAssetService(assetsRepo AssetRepository, guard RemovalGuard, notifier RepairNotifier) *AssetService {
	return &AssetService{
		assetsRepo: assetsRepo,
		guard:      guard,
		notifier:   notifier,
	}
}

func (s *AssetService) CreateAsset(req models.AssetRequest) (*models.Asset, error) {
	if req.Status == "" {
		req.Status = metadata.StatusAvailable.String()
	}
	if req.Condition == "" {
		req.Condition = metadata.ConditionGood.String()
	}

	status, err := metadata.NewStatus(req.Status)
	if err != nil {
		return nil, custom_error.NewValidationError(err.Error())
	}
	if _, err := metadata.NewCondition(req.Condition); err != nil {
		return nil, custom_error.NewValidationError(err.Error())
	}

	// assigned is reserved for the assignment engine; a freshly created
	// asset cannot already be in someone's hands
	if status == metadata.StatusAssigned {
		return nil, custom_error.NewValidationError("an asset cannot be created in assigned status")
	}

	asset, err := s.assetsRepo.PersistAsset(req)
	if err != nil {
		return nil, err
	}

	if status == metadata.StatusUnderRepair && s.notifier != nil {
		go s.notifier.NotifyUnderRepair(asset)
	}

	return asset, nil
}

func (s *AssetService) GetAsset(id int) (*models.Asset, error) {
	return s.assetsRepo.GetAsset(id)
}

func (s *AssetService) GetAssetBySerial(serial string) (*models.Asset, error) {
	return s.assetsRepo.GetAssetBySerial(serial)
}

func (s *AssetService) GetAssetList() ([]models.Asset, error) {
	return s.assetsRepo.GetAssetList()
}

func (s *AssetService) GetAssetsBy(conditions repository.QueryBuilder) ([]models.Asset, error) {
	return s.assetsRepo.GetAssetsBy(conditions)
}

func (s *AssetService) UpdateAsset(assetID int, req models.UpdateAssetRequest) (*models.Asset, error) {
	existing, err := s.assetsRepo.GetAsset(assetID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, custom_error.NewNotFoundError("asset", assetID)
	}

	record := goqu.Record{}

	if req.Name != nil {
		record["name"] = *req.Name
	}
	if req.AssetType != nil {
		record["asset_type"] = *req.AssetType
	}
	if req.MakeModel != nil {
		record["make_model"] = *req.MakeModel
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
	if req.IsSpare != nil {
		record["is_spare"] = *req.IsSpare
	}
	if req.Specifications != nil {
		record["specifications"] = *req.Specifications
	}

	if req.Condition != nil {
		if _, err := metadata.NewCondition(*req.Condition); err != nil {
			return nil, custom_error.NewValidationError(err.Error())
		}
		record["condition"] = *req.Condition
	}

	enteredRepair := false
	if req.Status != nil {
		status, err := metadata.NewStatus(*req.Status)
		if err != nil {
			return nil, custom_error.NewValidationError(err.Error())
		}
		// assignments drive the assigned status through their own
		// transaction, never through a plain update
		if status == metadata.StatusAssigned {
			return nil, custom_error.NewValidationError("asset status cannot be set to assigned directly, create an assignment instead")
		}
		if existing.Status == metadata.StatusAssigned.String() {
			return nil, custom_error.NewConflictError("asset is currently assigned, return it before changing its status")
		}
		record["status"] = status.String()
		enteredRepair = status == metadata.StatusUnderRepair && existing.Status != metadata.StatusUnderRepair.String()
	}

	if len(record) == 0 {
		return existing, nil
	}

	if err := s.assetsRepo.UpdateAsset(assetID, record); err != nil {
		return nil, err
	}

	updated, err := s.assetsRepo.GetAsset(assetID)
	if err != nil {
		return nil, err
	}

	if enteredRepair && s.notifier != nil {
		go s.notifier.NotifyUnderRepair(updated)
	}

	return updated, nil
}

// DeleteAsset hard-deletes an asset. Only a retired asset with no assignment
// history qualifies; anything else keeps its row for the books.
func (s *AssetService) DeleteAsset(assetID int) error {
	existing, err := s.assetsRepo.GetAsset(assetID)
	if err != nil {
		return err
	}
	if existing == nil {
		return custom_error.NewNotFoundError("asset", assetID)
	}

	removable, err := s.guard.CanRemoveAsset(assetID)
	if err != nil {
		return err
	}
	if !removable {
		count, err := s.guard.CountAssignmentsForAsset(assetID)
		if err != nil {
			return err
		}
		if count > 0 {
			return custom_error.NewConflictError("asset has assignment history and cannot be deleted")
		}
		return custom_error.NewConflictError("asset is not retired")
	}

	if _, err := s.assetsRepo.RemoveAsset(assetID); err != nil {
		log.Printf("failed to remove asset %d: %v", assetID, err)
		return err
	}

	return nil
}
