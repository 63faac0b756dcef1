package dashboard_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-fieldtrack/internal/client"
	clientMock "go-fieldtrack/internal/client/mock"
	"go-fieldtrack/internal/dashboard"
	dashboarderrors "go-fieldtrack/internal/dashboard/errors"
	dashboardMock "go-fieldtrack/internal/dashboard/mock"
	"go-fieldtrack/internal/domain"
	"go-fieldtrack/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var ist = time.FixedZone("IST", 5*3600+1800)

func midnight() gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		t, ok := x.(time.Time)
		if !ok {
			return false
		}
		local := t.In(ist)
		return local.Hour() == 0 && local.Minute() == 0 && local.Second() == 0
	})
}

func setup(t *testing.T) (dashboard.Service, *dashboardMock.MockRepository, *clientMock.MockService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := dashboardMock.NewMockRepository(ctrl)
	clients := clientMock.NewMockService(ctrl)
	return dashboard.NewService(repo, clients, ist), repo, clients
}

func TestService_ManagerStats(t *testing.T) {
	ctx := context.Background()
	manager := domain.Caller{UserID: uuid.NewString(), Role: domain.RoleManager}

	t.Run("success", func(t *testing.T) {
		svc, repo, _ := setup(t)
		members := []dashboard.TeamMember{
			{ID: uuid.New(), Name: "Priya Singh", Email: "priya@unolo.com"},
			{ID: uuid.New(), Name: "Rahul Kumar", Email: "rahul@unolo.com"},
		}
		today := []dashboard.CheckinRow{{ID: uuid.New(), EmployeeID: members[1].ID, EmployeeName: "Rahul Kumar", ClientName: "ABC Corp", Status: "checked_in"}}

		repo.EXPECT().FindTeamMembers(gomock.Any(), manager.UserID).Return(members, nil)
		repo.EXPECT().FindTeamCheckins(gomock.Any(), manager.UserID, midnight(), midnight()).Return(today, nil)
		repo.EXPECT().CountTeamActive(gomock.Any(), manager.UserID).Return(int64(1), nil)

		got, err := svc.ManagerStats(ctx, manager)

		require.NoError(t, err)
		assert.Equal(t, 2, got.TeamSize)
		assert.Equal(t, "Priya Singh", got.TeamMembers[0].Name)
		require.Len(t, got.TodayCheckins, 1)
		assert.Equal(t, "Rahul Kumar", got.TodayCheckins[0].EmployeeName)
		assert.Equal(t, int64(1), got.ActiveCheckins)
	})

	t.Run("employee is forbidden", func(t *testing.T) {
		svc, _, _ := setup(t)

		_, err := svc.ManagerStats(ctx, domain.Caller{UserID: uuid.NewString(), Role: domain.RoleEmployee})

		assert.ErrorIs(t, err, dashboarderrors.ErrManagerOnly)
	})

	t.Run("query failure", func(t *testing.T) {
		svc, repo, _ := setup(t)
		repo.EXPECT().FindTeamMembers(gomock.Any(), manager.UserID).Return(nil, errors.New("db down"))
		repo.EXPECT().FindTeamCheckins(gomock.Any(), manager.UserID, gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
		repo.EXPECT().CountTeamActive(gomock.Any(), manager.UserID).Return(int64(0), nil).AnyTimes()

		_, err := svc.ManagerStats(ctx, manager)

		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperror.CodeInternalError, appErr.Code)
	})
}

func TestService_EmployeeDashboard(t *testing.T) {
	ctx := context.Background()
	employee := domain.Caller{UserID: uuid.NewString(), Role: domain.RoleEmployee}

	t.Run("employee", func(t *testing.T) {
		svc, repo, clients := setup(t)
		before := time.Now()

		repo.EXPECT().FindEmployeeCheckins(ctx, employee.UserID, midnight(), midnight()).Return(nil, nil)
		repo.EXPECT().
			EmployeeStatsSince(ctx, employee.UserID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, since time.Time) (dashboard.WeekStats, error) {
				assert.WithinDuration(t, before.Add(-7*24*time.Hour), since, time.Minute)
				return dashboard.WeekStats{TotalCheckins: 5, UniqueClients: 2}, nil
			})
		clients.EXPECT().GetAssigned(ctx, employee).Return([]client.ClientResponse{{ID: "c1", Name: "ABC Corp"}}, nil)

		got, err := svc.EmployeeDashboard(ctx, employee)

		require.NoError(t, err)
		assert.Empty(t, got.TodayCheckins)
		assert.NotNil(t, got.TodayCheckins)
		assert.Equal(t, int64(5), got.WeekStats.TotalCheckins)
		assert.Equal(t, int64(2), got.WeekStats.UniqueClients)
		assert.Len(t, got.AssignedClients, 1)
	})

	t.Run("manager has no assigned clients", func(t *testing.T) {
		svc, repo, _ := setup(t)
		manager := domain.Caller{UserID: uuid.NewString(), Role: domain.RoleManager}

		repo.EXPECT().FindEmployeeCheckins(ctx, manager.UserID, gomock.Any(), gomock.Any()).Return(nil, nil)
		repo.EXPECT().EmployeeStatsSince(ctx, manager.UserID, gomock.Any()).Return(dashboard.WeekStats{}, nil)

		got, err := svc.EmployeeDashboard(ctx, manager)

		require.NoError(t, err)
		assert.NotNil(t, got.AssignedClients)
		assert.Empty(t, got.AssignedClients)
	})

	t.Run("stats failure", func(t *testing.T) {
		svc, repo, _ := setup(t)
		repo.EXPECT().FindEmployeeCheckins(ctx, employee.UserID, gomock.Any(), gomock.Any()).Return(nil, nil)
		repo.EXPECT().EmployeeStatsSince(ctx, employee.UserID, gomock.Any()).Return(dashboard.WeekStats{}, errors.New("timeout"))

		_, err := svc.EmployeeDashboard(ctx, employee)

		assert.Error(t, err)
	})
}
