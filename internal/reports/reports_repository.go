package reports

import (
	"fmt"
	"time"

	"assettrack/internal/repository"
	"assettrack/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type ReportsRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *ReportsRepository {
	return &ReportsRepository{
		repository: r,
	}
}

// GetDashboardStats collects all the dashboard counters in one round trip.
func (r *ReportsRepository) GetDashboardStats() (*models.DashboardStats, error) {
	query := r.repository.GoquDBWrapper.Select(
		goqu.L("COUNT(*)").As("total_assets"),
		goqu.L("COUNT(*) FILTER (WHERE status = 'available')").As("available_assets"),
		goqu.L("COUNT(*) FILTER (WHERE status = 'assigned')").As("assigned_assets"),
		goqu.L("COUNT(*) FILTER (WHERE status = 'under_repair')").As("under_repair_assets"),
		goqu.L("COUNT(*) FILTER (WHERE status = 'retired')").As("retired_assets"),
		goqu.L("COUNT(*) FILTER (WHERE is_spare)").As("spare_assets"),
		goqu.L("(SELECT COUNT(*) FROM employees)").As("total_employees"),
		goqu.L("(SELECT COUNT(*) FROM employees WHERE is_active)").As("active_employees"),
		goqu.L("(SELECT COUNT(*) FROM assignments WHERE is_active)").As("active_assignments"),
	).From("assets")

	var stats models.DashboardStats
	if _, err := query.Executor().ScanStruct(&stats); err != nil {
		return nil, fmt.Errorf("failed to collect dashboard stats: %w", err)
	}

	return &stats, nil
}

func (r *ReportsRepository) GetAssetCountsByType() ([]models.AssetTypeCount, error) {
	query := r.repository.GoquDBWrapper.
		Select(
			"asset_type",
			goqu.COUNT("*").As("count"),
		).
		From("assets").
		GroupBy("asset_type").
		Order(goqu.I("count").Desc(), goqu.I("asset_type").Asc())

	var counts []models.AssetTypeCount
	if err := query.Executor().ScanStructs(&counts); err != nil {
		return nil, fmt.Errorf("failed to count assets by type: %w", err)
	}

	return counts, nil
}

// GetExpiringWarranties lists assets whose warranty runs out within the
// window, soonest first. Already expired warranties are excluded.
func (r *ReportsRepository) GetExpiringWarranties(within time.Duration) ([]models.WarrantyAsset, error) {
	now := time.Now().UTC()
	cutoff := now.Add(within)

	query := r.repository.GoquDBWrapper.
		Select(
			"id", "name", "asset_type", "serial_number", "status", "warranty_expiry",
			goqu.L("EXTRACT(DAY FROM warranty_expiry - NOW())::int").As("days_remaining"),
		).
		From("assets").
		Where(
			goqu.I("warranty_expiry").IsNotNull(),
			goqu.I("warranty_expiry").Gte(now),
			goqu.I("warranty_expiry").Lte(cutoff),
		).
		Order(goqu.I("warranty_expiry").Asc())

	var assets []models.WarrantyAsset
	if err := query.Executor().ScanStructs(&assets); err != nil {
		return nil, fmt.Errorf("failed to select expiring warranties: %w", err)
	}

	return assets, nil
}

// GetAssignmentHistory is the flat audit view: every assignment ever made,
// newest first, with asset and employee names resolved.
func (r *ReportsRepository) GetAssignmentHistory() ([]models.Assignment, error) {
	query := r.repository.GoquDBWrapper.Select(
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

	var assignments []models.Assignment
	if err := query.Executor().ScanStructs(&assignments); err != nil {
		return nil, fmt.Errorf("failed to select assignment history: %w", err)
	}

	return assignments, nil
}
