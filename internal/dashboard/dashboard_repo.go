package dashboard

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=dashboard_repo.go -destination=mock/dashboard_repo_mock.go -package=mock
type Repository interface {
	FindTeamMembers(ctx context.Context, managerID string) ([]TeamMember, error)
	// FindTeamCheckins returns the team's sessions started in [from, to), newest first.
	FindTeamCheckins(ctx context.Context, managerID string, from, to time.Time) ([]CheckinRow, error)
	CountTeamActive(ctx context.Context, managerID string) (int64, error)
	FindEmployeeCheckins(ctx context.Context, employeeID string, from, to time.Time) ([]CheckinRow, error)
	EmployeeStatsSince(ctx context.Context, employeeID string, since time.Time) (WeekStats, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

const checkinColumns = "ch.id, ch.employee_id, ch.client_id, c.name AS client_name, ch.status, ch.distance_from_client, ch.notes, ch.checkin_time, ch.checkout_time"

func (r *repository) FindTeamMembers(ctx context.Context, managerID string) ([]TeamMember, error) {
	var rows []TeamMember
	err := r.db.WithContext(ctx).
		Table("users").
		Select("id, name, email").
		Where("manager_id = ?", managerID).
		Order("name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FindTeamCheckins(ctx context.Context, managerID string, from, to time.Time) ([]CheckinRow, error) {
	var rows []CheckinRow
	err := r.db.WithContext(ctx).
		Table("checkins ch").
		Select(checkinColumns+", u.name AS employee_name").
		Joins("JOIN users u ON u.id = ch.employee_id").
		Joins("JOIN clients c ON c.id = ch.client_id").
		Where("u.manager_id = ?", managerID).
		Where("ch.checkin_time >= ? AND ch.checkin_time < ?", from, to).
		Order("ch.checkin_time DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) CountTeamActive(ctx context.Context, managerID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("checkins ch").
		Joins("JOIN users u ON u.id = ch.employee_id").
		Where("u.manager_id = ? AND ch.status = ?", managerID, "checked_in").
		Count(&count).Error
	return count, err
}

func (r *repository) FindEmployeeCheckins(ctx context.Context, employeeID string, from, to time.Time) ([]CheckinRow, error) {
	var rows []CheckinRow
	err := r.db.WithContext(ctx).
		Table("checkins ch").
		Select(checkinColumns).
		Joins("JOIN clients c ON c.id = ch.client_id").
		Where("ch.employee_id = ?", employeeID).
		Where("ch.checkin_time >= ? AND ch.checkin_time < ?", from, to).
		Order("ch.checkin_time DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) EmployeeStatsSince(ctx context.Context, employeeID string, since time.Time) (WeekStats, error) {
	var stats WeekStats
	err := r.db.WithContext(ctx).
		Table("checkins").
		Select("COUNT(*) AS total_checkins, COUNT(DISTINCT client_id) AS unique_clients").
		Where("employee_id = ? AND checkin_time >= ?", employeeID, since).
		Scan(&stats).Error
	return stats, err
}
