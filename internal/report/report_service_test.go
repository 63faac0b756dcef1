package report_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-fieldtrack/internal/domain"
	"go-fieldtrack/internal/report"
	reporterrors "go-fieldtrack/internal/report/errors"
	reportMock "go-fieldtrack/internal/report/mock"
	"go-fieldtrack/internal/shared/apperror"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

var ist = time.FixedZone("IST", 5*3600+1800)

func sameInstant(want time.Time) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		got, ok := x.(time.Time)
		return ok && got.Equal(want)
	})
}

func TestService_DailySummary(t *testing.T) {
	ctx := context.Background()
	managerID := uuid.NewString()
	manager := domain.Caller{UserID: managerID, Role: domain.RoleManager}
	member := report.TeamMember{ID: uuid.New(), Name: "Rahul Kumar", Email: "rahul@unolo.com"}
	rows := []report.CheckinRow{
		closedRow(member.ID, uuid.New(), at(4, 0), at(5, 30)),
		openRow(member.ID, uuid.New(), at(6, 0)),
	}
	cacheKey := report.GetDailySummaryKey(managerID, "2024-03-01")
	expected := report.Summarize("2024-03-01", []report.TeamMember{member}, rows)

	t.Run("cache miss aggregates the day in the configured zone", func(t *testing.T) {
		repo := reportMock.NewMockRepository(gomock.NewController(t))
		rdb, redisMock := redismock.NewClientMock()
		svc := report.NewService(repo, rdb, ist)

		payload, _ := json.Marshal(expected)
		redisMock.ExpectGet(cacheKey).RedisNil()
		repo.EXPECT().FindTeam(ctx, managerID).Return([]report.TeamMember{member}, nil)
		repo.EXPECT().
			FindCheckinsForDay(ctx, []uuid.UUID{member.ID},
				sameInstant(time.Date(2024, 3, 1, 0, 0, 0, 0, ist)),
				sameInstant(time.Date(2024, 3, 2, 0, 0, 0, 0, ist))).
			Return(rows, nil)
		redisMock.ExpectSet(cacheKey, payload, 5*time.Minute).SetVal("OK")

		got, err := svc.DailySummary(ctx, manager, "2024-03-01")

		require.NoError(t, err)
		assert.Equal(t, expected, got)
		assert.Equal(t, 1.5, got.EmployeeReports[0].TotalHours)
		assert.Equal(t, report.StatusActive, got.EmployeeReports[0].Status)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("cache hit", func(t *testing.T) {
		repo := reportMock.NewMockRepository(gomock.NewController(t))
		rdb, redisMock := redismock.NewClientMock()
		svc := report.NewService(repo, rdb, ist)

		payload, _ := json.Marshal(expected)
		redisMock.ExpectGet(cacheKey).SetVal(string(payload))

		got, err := svc.DailySummary(ctx, manager, "2024-03-01")

		require.NoError(t, err)
		assert.Equal(t, expected.TeamStats, got.TeamStats)
		assert.Equal(t, expected.EmployeeReports[0].ID, got.EmployeeReports[0].ID)
	})

	t.Run("employee is forbidden", func(t *testing.T) {
		repo := reportMock.NewMockRepository(gomock.NewController(t))
		svc := report.NewService(repo, nil, ist)

		_, err := svc.DailySummary(ctx, domain.Caller{UserID: uuid.NewString(), Role: domain.RoleEmployee}, "")

		assert.ErrorIs(t, err, reporterrors.ErrManagerOnly)
	})

	t.Run("bad date", func(t *testing.T) {
		repo := reportMock.NewMockRepository(gomock.NewController(t))
		svc := report.NewService(repo, nil, ist)

		_, err := svc.DailySummary(ctx, manager, "03/01/2024")

		assert.ErrorIs(t, err, reporterrors.ErrInvalidDate)
	})

	t.Run("repository failure is internal", func(t *testing.T) {
		repo := reportMock.NewMockRepository(gomock.NewController(t))
		svc := report.NewService(repo, nil, ist)
		repo.EXPECT().FindTeam(ctx, managerID).Return(nil, errors.New("db down"))

		_, err := svc.DailySummary(ctx, manager, "2024-03-01")

		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperror.CodeInternalError, appErr.Code)
	})

	t.Run("empty team", func(t *testing.T) {
		repo := reportMock.NewMockRepository(gomock.NewController(t))
		svc := report.NewService(repo, nil, ist)
		repo.EXPECT().FindTeam(ctx, managerID).Return(nil, nil)
		repo.EXPECT().FindCheckinsForDay(ctx, []uuid.UUID{}, gomock.Any(), gomock.Any()).Return(nil, nil)

		got, err := svc.DailySummary(ctx, manager, "2024-03-01")

		require.NoError(t, err)
		assert.Empty(t, got.EmployeeReports)
		assert.Equal(t, report.TeamStats{}, got.TeamStats)
	})
}

func TestService_ExportDailySummary(t *testing.T) {
	ctx := context.Background()
	managerID := uuid.NewString()
	repo := reportMock.NewMockRepository(gomock.NewController(t))
	svc := report.NewService(repo, nil, ist)
	repo.EXPECT().FindTeam(ctx, managerID).Return(nil, nil)
	repo.EXPECT().FindCheckinsForDay(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	export, err := svc.ExportDailySummary(ctx, domain.Caller{UserID: managerID, Role: domain.RoleManager}, "2024-03-01")

	require.NoError(t, err)
	assert.Equal(t, "daily-summary-2024-03-01.xlsx", export.FileName)
	assert.Equal(t, report.XLSXContentType, export.ContentType)
	assert.NotEmpty(t, export.Data)
}

func TestService_InvalidateForEmployee(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.NewString()
	managerID := uuid.New()

	t.Run("drops the manager's cached day", func(t *testing.T) {
		repo := reportMock.NewMockRepository(gomock.NewController(t))
		rdb, redisMock := redismock.NewClientMock()
		svc := report.NewService(repo, rdb, ist)

		repo.EXPECT().FindManagerID(ctx, employeeID).Return(&managerID, nil)
		// 20:00 UTC is already the next calendar day in IST
		redisMock.ExpectDel(report.GetDailySummaryKey(managerID.String(), "2024-03-02")).SetVal(1)

		err := svc.InvalidateForEmployee(ctx, employeeID, time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC))

		assert.NoError(t, err)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("no manager", func(t *testing.T) {
		repo := reportMock.NewMockRepository(gomock.NewController(t))
		rdb, redisMock := redismock.NewClientMock()
		svc := report.NewService(repo, rdb, ist)
		repo.EXPECT().FindManagerID(ctx, employeeID).Return(nil, nil)

		assert.NoError(t, svc.InvalidateForEmployee(ctx, employeeID, time.Now()))
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("unknown employee", func(t *testing.T) {
		repo := reportMock.NewMockRepository(gomock.NewController(t))
		rdb, _ := redismock.NewClientMock()
		svc := report.NewService(repo, rdb, ist)
		repo.EXPECT().FindManagerID(ctx, employeeID).Return(nil, gorm.ErrRecordNotFound)

		assert.NoError(t, svc.InvalidateForEmployee(ctx, employeeID, time.Now()))
	})
}
