package assignments

import (
	"fmt"
	"strings"
	"time"

	"assettrack/internal/repository"
	custom_error "assettrack/pkg/errors"
	"assettrack/pkg/metadata"
	"assettrack/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

// AssignmentRepository is the persistence surface the lifecycle engine needs
// for assignment rows.
type AssignmentRepository interface {
	GetAssignment(id int) (*models.Assignment, error)
	GetAssignments() ([]models.Assignment, error)
	GetAssignmentsByEmployee(employeeID int) ([]models.Assignment, error)
	GetAssignmentsByAsset(assetID int) ([]models.Assignment, error)
	GetActiveAssignments() ([]models.Assignment, error)
	GetActiveAssignmentForAsset(assetID int) (*models.Assignment, error)
	GetActiveAssignmentForAssetTx(tx *goqu.TxDatabase, assetID int) (*models.Assignment, error)
	InsertAssignment(tx *goqu.TxDatabase, req models.AssignmentRequest, assignmentDate time.Time) (int, error)
	UpdateReturn(tx *goqu.TxDatabase, assignmentID int, returnDate time.Time, notes string) error
	CanRemoveAsset(assetID int) (bool, error)
}

// AssetStore is the slice of the asset repository the engine uses to keep
// the asset status field in sync with the assignment rows.
type AssetStore interface {
	GetAssetForUpdate(tx *goqu.TxDatabase, assetID int) (*models.Asset, error)
	UpdateAssetStatus(tx *goqu.TxDatabase, assetID int, status metadata.Status) error
}

// AssignmentService enforces the assignment state machine: an asset may only
// be handed out while available, and the asset status field always mirrors
// whether an active assignment exists. Both writes of each transition happen
// in one transaction.
type AssignmentService struct {
	r      *repository.Repository
	ar     AssignmentRepository
	assets AssetStore
	withTx func(db *goqu.Database, fn func(tx *goqu.TxDatabase) error) error
}

func NewAssignmentService(r *repository.Repository, ar AssignmentRepository, assets AssetStore) *AssignmentService {
	return &AssignmentService{
		r:      r,
		ar:     ar,
		assets: assets,
		withTx: repository.WithTransaction,
	}
}

func (s *AssignmentService) CreateAssignment(req models.AssignmentRequest) (*models.Assignment, error) {
	var assignmentID int

	err := s.withTx(s.r.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		asset, err := s.assets.GetAssetForUpdate(tx, req.AssetID)
		if err != nil {
			return fmt.Errorf("failed to load asset %d: %w", req.AssetID, err)
		}
		if asset == nil {
			return custom_error.NewNotFoundError("asset", req.AssetID)
		}

		if asset.Status != metadata.StatusAvailable.String() {
			return custom_error.NewConflictError("asset is not available for assignment")
		}

		// re-verify inside the transaction; the status check alone can lose
		// a race against a concurrent assignment
		active, err := s.ar.GetActiveAssignmentForAssetTx(tx, req.AssetID)
		if err != nil {
			return err
		}
		if active != nil {
			return custom_error.NewConflictError("asset is already assigned")
		}

		assignmentDate := time.Now().UTC()
		if req.AssignmentDate != nil {
			assignmentDate = *req.AssignmentDate
		}

		if assignmentID, err = s.ar.InsertAssignment(tx, req, assignmentDate); err != nil {
			return err
		}

		if err := s.assets.UpdateAssetStatus(tx, req.AssetID, metadata.StatusAssigned); err != nil {
			return fmt.Errorf("failed to mark asset as assigned: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return s.ar.GetAssignment(assignmentID)
}

// ReturnAsset closes an assignment and releases its asset. A missing
// assignment yields (false, nil) rather than an error, because returns are
// often retried from idempotent contexts. A missing asset is tolerated: the
// assignment still closes. Blank notes keep whatever notes are stored.
func (s *AssignmentService) ReturnAsset(assignmentID int, returnDate time.Time, notes string) (bool, error) {
	if strings.TrimSpace(notes) == "" {
		notes = ""
	}

	assignment, err := s.ar.GetAssignment(assignmentID)
	if err != nil {
		return false, err
	}
	if assignment == nil {
		return false, nil
	}

	err = s.withTx(s.r.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		if err := s.ar.UpdateReturn(tx, assignmentID, returnDate, notes); err != nil {
			return err
		}

		asset, err := s.assets.GetAssetForUpdate(tx, assignment.AssetID)
		if err != nil {
			return fmt.Errorf("failed to load asset %d: %w", assignment.AssetID, err)
		}
		if asset == nil {
			return nil
		}

		if err := s.assets.UpdateAssetStatus(tx, assignment.AssetID, metadata.StatusAvailable); err != nil {
			return fmt.Errorf("failed to release asset: %w", err)
		}

		return nil
	})

	if err != nil {
		return false, err
	}

	return true, nil
}

func (s *AssignmentService) GetAssignments() ([]models.Assignment, error) {
	return s.ar.GetAssignments()
}

func (s *AssignmentService) GetAssignment(id int) (*models.Assignment, error) {
	return s.ar.GetAssignment(id)
}

func (s *AssignmentService) GetAssignmentsByEmployee(employeeID int) ([]models.Assignment, error) {
	return s.ar.GetAssignmentsByEmployee(employeeID)
}

func (s *AssignmentService) GetAssignmentsByAsset(assetID int) ([]models.Assignment, error) {
	return s.ar.GetAssignmentsByAsset(assetID)
}

func (s *AssignmentService) GetActiveAssignments() ([]models.Assignment, error) {
	return s.ar.GetActiveAssignments()
}

func (s *AssignmentService) GetActiveAssignmentForAsset(assetID int) (*models.Assignment, error) {
	return s.ar.GetActiveAssignmentForAsset(assetID)
}

// CanRemoveAsset is the deletion guard used by the asset CRUD service: only
// a retired asset with no assignment history may be hard-deleted.
func (s *AssignmentService) CanRemoveAsset(assetID int) (bool, error) {
	return s.ar.CanRemoveAsset(assetID)
}
