package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func TestRepository_CountTeamActive(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)
	managerID := uuid.NewString()

	mock.ExpectQuery(`SELECT count\(\*\) FROM checkins ch JOIN users u ON u.id = ch.employee_id WHERE u.manager_id = \$1 AND ch.status = \$2`).
		WithArgs(managerID, "checked_in").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	got, err := repo.CountTeamActive(context.Background(), managerID)

	require.NoError(t, err)
	assert.Equal(t, int64(2), got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_EmployeeStatsSince(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)
	employeeID := uuid.NewString()
	since := time.Now().Add(-7 * 24 * time.Hour)

	mock.ExpectQuery(`SELECT COUNT\(\*\) AS total_checkins, COUNT\(DISTINCT client_id\) AS unique_clients FROM "?checkins"? WHERE employee_id = \$1 AND checkin_time >= \$2`).
		WithArgs(employeeID, since).
		WillReturnRows(sqlmock.NewRows([]string{"total_checkins", "unique_clients"}).AddRow(6, 3))

	got, err := repo.EmployeeStatsSince(context.Background(), employeeID, since)

	require.NoError(t, err)
	assert.Equal(t, WeekStats{TotalCheckins: 6, UniqueClients: 3}, got)
}

func TestRepository_FindTeamCheckins(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`JOIN users u ON u.id = ch.employee_id JOIN clients c ON c.id = ch.client_id WHERE u.manager_id = \$1 AND \(ch.checkin_time >= \$2 AND ch.checkin_time < \$3\) ORDER BY ch.checkin_time DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "employee_id", "client_id", "client_name", "status", "checkin_time", "employee_name"}).
			AddRow(uuid.NewString(), uuid.NewString(), uuid.NewString(), "ABC Corp", "checked_in", from.Add(time.Hour), "Rahul Kumar"))

	rows, err := repo.FindTeamCheckins(context.Background(), uuid.NewString(), from, from.AddDate(0, 0, 1))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Rahul Kumar", rows[0].EmployeeName)
	assert.Nil(t, rows[0].CheckoutTime)
}
