package checkin

import (
	"context"
	"database/sql"
	"time"

	"go-fieldtrack/internal/shared/connection"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=checkin_repo.go -destination=mock/checkin_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, c *Checkin) error
	// FindActiveByEmployee locks and returns every checked_in session, newest first.
	FindActiveByEmployee(ctx context.Context, employeeID string) ([]Checkin, error)
	// CloseSession returns gorm.ErrRecordNotFound when the row is no longer checked_in.
	CloseSession(ctx context.Context, c *Checkin) error
	FindActiveWithClient(ctx context.Context, employeeID string) (*CheckinWithClient, error)
	FindHistory(ctx context.Context, employeeID string, from, to *time.Time, limit int) ([]CheckinWithClient, error)
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

func (r *repository) Create(ctx context.Context, c *Checkin) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) FindActiveByEmployee(ctx context.Context, employeeID string) ([]Checkin, error) {
	var rows []Checkin
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("employee_id = ? AND status = ?", employeeID, StatusCheckedIn).
		Order("checkin_time DESC, id DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) CloseSession(ctx context.Context, c *Checkin) error {
	res := r.db.WithContext(ctx).
		Model(&Checkin{}).
		Where("id = ? AND status = ?", c.ID, StatusCheckedIn).
		Updates(map[string]any{
			"status":        c.Status,
			"checkout_time": c.CheckoutTime,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) withClient(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("checkins ch").
		Select("ch.*, c.name AS client_name, c.address AS client_address").
		Joins("JOIN clients c ON c.id = ch.client_id")
}

func (r *repository) FindActiveWithClient(ctx context.Context, employeeID string) (*CheckinWithClient, error) {
	var rows []CheckinWithClient
	err := r.withClient(ctx).
		Where("ch.employee_id = ? AND ch.status = ?", employeeID, StatusCheckedIn).
		Order("ch.checkin_time DESC").
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

func (r *repository) FindHistory(ctx context.Context, employeeID string, from, to *time.Time, limit int) ([]CheckinWithClient, error) {
	q := r.withClient(ctx).Where("ch.employee_id = ?", employeeID)
	if from != nil {
		q = q.Where("ch.checkin_time >= ?", *from)
	}
	if to != nil {
		q = q.Where("ch.checkin_time < ?", *to)
	}

	var rows []CheckinWithClient
	err := q.Order("ch.checkin_time DESC").Limit(limit).Scan(&rows).Error
	return rows, err
}
