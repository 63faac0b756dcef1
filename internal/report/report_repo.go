package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	FindTeam(ctx context.Context, managerID string) ([]TeamMember, error)
	// FindCheckinsForDay returns sessions started in [from, to), oldest first.
	FindCheckinsForDay(ctx context.Context, employeeIDs []uuid.UUID, from, to time.Time) ([]CheckinRow, error)
	// FindManagerID returns gorm.ErrRecordNotFound for an unknown user and nil for one without a manager.
	FindManagerID(ctx context.Context, employeeID string) (*uuid.UUID, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindTeam(ctx context.Context, managerID string) ([]TeamMember, error) {
	var rows []TeamMember
	err := r.db.WithContext(ctx).
		Table("users").
		Select("id, name, email").
		Where("manager_id = ?", managerID).
		Order("name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FindCheckinsForDay(ctx context.Context, employeeIDs []uuid.UUID, from, to time.Time) ([]CheckinRow, error) {
	if len(employeeIDs) == 0 {
		return nil, nil
	}

	var rows []CheckinRow
	err := r.db.WithContext(ctx).
		Table("checkins ch").
		Select("ch.id, ch.employee_id, ch.client_id, c.name AS client_name, ch.status, ch.distance_from_client, ch.notes, ch.checkin_time, ch.checkout_time").
		Joins("JOIN clients c ON c.id = ch.client_id").
		Where("ch.employee_id IN ?", employeeIDs).
		Where("ch.checkin_time >= ? AND ch.checkin_time < ?", from, to).
		Order("ch.checkin_time ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FindManagerID(ctx context.Context, employeeID string) (*uuid.UUID, error) {
	var rows []struct {
		ManagerID *uuid.UUID
	}
	err := r.db.WithContext(ctx).
		Table("users").
		Select("manager_id").
		Where("id = ?", employeeID).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return rows[0].ManagerID, nil
}
