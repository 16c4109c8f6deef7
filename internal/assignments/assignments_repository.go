package assignments

import (
	"fmt"
	"time"

	"assettrack/internal/repository"
	custom_error "assettrack/pkg/errors"
	"assettrack/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"
)

type AssignmentsRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *AssignmentsRepository {
	return &AssignmentsRepository{
		repository: r,
	}
}

func (r *AssignmentsRepository) GetAssignment(id int) (*models.Assignment, error) {
	return r.fetchAssignmentByCondition(goqu.Ex{"asg.id": id})
}

func (r *AssignmentsRepository) GetAssignments() ([]models.Assignment, error) {
	return r.fetchAssignmentsByCondition(nil)
}

func (r *AssignmentsRepository) GetAssignmentsByEmployee(employeeID int) ([]models.Assignment, error) {
	return r.fetchAssignmentsByCondition(goqu.Ex{"asg.employee_id": employeeID})
}

func (r *AssignmentsRepository) GetAssignmentsByAsset(assetID int) ([]models.Assignment, error) {
	return r.fetchAssignmentsByCondition(goqu.Ex{"asg.asset_id": assetID})
}

func (r *AssignmentsRepository) GetActiveAssignments() ([]models.Assignment, error) {
	return r.fetchAssignmentsByCondition(goqu.Ex{"asg.is_active": true})
}

func (r *AssignmentsRepository) GetActiveAssignmentForAsset(assetID int) (*models.Assignment, error) {
	return r.fetchAssignmentByCondition(goqu.Ex{"asg.asset_id": assetID, "asg.is_active": true})
}

// GetActiveAssignmentForAssetTx re-checks the one-active-per-asset invariant
// inside the transaction that is about to insert a new assignment.
func (r *AssignmentsRepository) GetActiveAssignmentForAssetTx(tx *goqu.TxDatabase, assetID int) (*models.Assignment, error) {
	var assignment models.Assignment
	found, err := tx.
		Select("id", "asset_id", "employee_id", "assignment_date", "return_date", "is_active", "is_returned", "notes", "modified_at").
		From("assignments").
		Where(goqu.Ex{"asset_id": assetID, "is_active": true}).
		Executor().
		ScanStruct(&assignment)

	if err != nil {
		return nil, fmt.Errorf("failed to check active assignment for asset %d: %w", assetID, err)
	}
	if !found {
		return nil, nil
	}

	return &assignment, nil
}

func (r *AssignmentsRepository) InsertAssignment(tx *goqu.TxDatabase, req models.AssignmentRequest, assignmentDate time.Time) (int, error) {
	record := goqu.Record{
		"asset_id":        req.AssetID,
		"assignment_date": assignmentDate,
		"notes":           req.Notes,
		"is_active":       true,
		"is_returned":     false,
	}

	if req.EmployeeID != nil {
		record["employee_id"] = *req.EmployeeID
	}

	var assignmentID int
	query := tx.Insert("assignments").
		Rows(record).
		Returning("id")

	if _, err := query.Executor().ScanVal(&assignmentID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23503":
				// the caller holds a row lock on the asset, so a broken
				// reference can only be the employee
				if req.EmployeeID != nil {
					return 0, custom_error.NewNotFoundError("employee", *req.EmployeeID)
				}
				return 0, custom_error.WrapDBError("Assignment references a missing record", string(pqErr.Code))
			default:
				return 0, custom_error.WrapDBError("Asset already has an active assignment", string(pqErr.Code))
			}
		}
		return 0, fmt.Errorf("failed to insert assignment record: %w", err)
	}

	return assignmentID, nil
}

// UpdateReturn closes an assignment. An empty notes argument leaves the
// stored notes untouched; the service decides what counts as empty.
func (r *AssignmentsRepository) UpdateReturn(tx *goqu.TxDatabase, assignmentID int, returnDate time.Time, notes string) error {
	record := goqu.Record{
		"return_date": returnDate,
		"is_active":   false,
		"is_returned": true,
		"modified_at": time.Now().UTC(),
	}

	if notes != "" {
		record["notes"] = notes
	}

	result, err := tx.Update("assignments").
		Set(record).
		Where(goqu.Ex{"id": assignmentID}).
		Executor().
		Exec()

	if err != nil {
		return fmt.Errorf("failed to close assignment %d: %w", assignmentID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("no assignment found with id: %d", assignmentID)
	}

	return nil
}

func (r *AssignmentsRepository) CountAssignmentsForAsset(assetID int) (int, error) {
	var count int
	query := r.repository.GoquDBWrapper.
		Select(goqu.COUNT("*")).
		From("assignments").
		Where(goqu.Ex{"asset_id": assetID})

	_, err := query.Executor().ScanVal(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count assignments for asset: %w", err)
	}

	return count, nil
}

func (r *AssignmentsRepository) HasActiveAssignmentForEmployee(employeeID int) (bool, error) {
	var count int
	query := r.repository.GoquDBWrapper.
		Select(goqu.COUNT("*")).
		From("assignments").
		Where(goqu.Ex{"employee_id": employeeID, "is_active": true})

	_, err := query.Executor().ScanVal(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check active assignments for employee: %w", err)
	}

	return count > 0, nil
}

// CanRemoveAsset allows deletion only for a retired asset with no assignment
// history at all, active or historical.
func (r *AssignmentsRepository) CanRemoveAsset(assetID int) (bool, error) {
	var id int
	query := r.repository.GoquDBWrapper.Select("assets.id").
		From(goqu.T("assets")).
		Where(goqu.Ex{
			"assets.id":     assetID,
			"assets.status": "retired",
		}).
		Where(goqu.L("NOT EXISTS (?)",
			r.repository.GoquDBWrapper.From(goqu.T("assignments").As("asg")).
				Select(goqu.L("1")).
				Where(goqu.Ex{
					"asg.asset_id": assetID,
				}),
		))
	result, err := query.Executor().ScanVal(&id)

	if err != nil {
		return false, fmt.Errorf("unable to execute sql: %w", err)
	}

	return result, nil
}

func (r *AssignmentsRepository) fetchAssignmentByCondition(condition goqu.Expression) (*models.Assignment, error) {
	query := r.getAssignmentQuery().Where(condition)

	var assignment models.Assignment
	found, err := query.Executor().ScanStruct(&assignment)

	if err != nil {
		return nil, fmt.Errorf("unable to select assignment from database: %w", err)
	}
	if !found {
		return nil, nil
	}

	return &assignment, nil
}

func (r *AssignmentsRepository) fetchAssignmentsByCondition(condition goqu.Expression) ([]models.Assignment, error) {
	query := r.getAssignmentQuery()
	if condition != nil {
		query = query.Where(condition)
	}

	var assignments []models.Assignment
	err := query.Executor().ScanStructs(&assignments)

	if err != nil {
		return nil, fmt.Errorf("unable to select assignments from database: %w", err)
	}

	return assignments, nil
}

func (r *AssignmentsRepository) getAssignmentQuery() *goqu.SelectDataset {
	return r.repository.GoquDBWrapper.Select(
		goqu.I("asg.id").As("id"),
		goqu.I("asg.asset_id").As("asset_id"),
		goqu.I("asg.employee_id").As("employee_id"),
		goqu.I("asg.assignment_date").As("assignment_date"),
		goqu.I("asg.return_date").As("return_date"),
		goqu.I("asg.is_active").As("is_active"),
		goqu.I("asg.is_returned").As("is_returned"),
		goqu.I("asg.notes").As("notes"),
		goqu.I("asg.modified_at").As("modified_at"),
		goqu.I("a.name").As("asset_name"),
		goqu.I("e.full_name").As("employee_name"),
	).
		From(goqu.T("assignments").As("asg")).
		LeftJoin(
			goqu.T("assets").As("a"),
			goqu.On(goqu.Ex{"asg.asset_id": goqu.I("a.id")}),
		).
		LeftJoin(
			goqu.T("employees").As("e"),
			goqu.On(goqu.Ex{"asg.employee_id": goqu.I("e.id")}),
		).
		Order(goqu.I("asg.assignment_date").Desc())
}
