package client

import (
	"context"
	"database/sql"

	"go-fieldtrack/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=client_repo.go -destination=mock/client_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindAssignedByEmployee(ctx context.Context, employeeID string) ([]AssignedClient, error)
	// FindAssignment returns gorm.ErrRecordNotFound when the employee is not assigned to the client.
	FindAssignment(ctx context.Context, employeeID, clientID string) (*AssignedClient, error)
	Exists(ctx context.Context, clientID string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.BindTx(r.db, tx)}
}

func (r *repository) assigned(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("clients c").
		Select("c.id, c.name, c.address, c.latitude, c.longitude, c.created_at, ec.assigned_date").
		Joins("JOIN employee_clients ec ON ec.client_id = c.id")
}

func (r *repository) FindAssignedByEmployee(ctx context.Context, employeeID string) ([]AssignedClient, error) {
	var rows []AssignedClient
	err := r.assigned(ctx).
		Where("ec.employee_id = ?", employeeID).
		Order("c.name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FindAssignment(ctx context.Context, employeeID, clientID string) (*AssignedClient, error) {
	var rows []AssignedClient
	err := r.assigned(ctx).
		Where("ec.employee_id = ?", employeeID).
		Where("c.id = ?", clientID).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

func (r *repository) Exists(ctx context.Context, clientID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Client{}).Where("id = ?", clientID).Count(&count).Error
	return count > 0, err
}
