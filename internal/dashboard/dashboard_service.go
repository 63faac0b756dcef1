package dashboard

import (
	"context"
	"time"

	"go-fieldtrack/internal/client"
	dashboarderrors "go-fieldtrack/internal/dashboard/errors"
	"go-fieldtrack/internal/domain"
	"go-fieldtrack/internal/shared/apperror"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const statsWindow = 7 * 24 * time.Hour

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	ManagerStats(ctx context.Context, caller domain.Caller) (ManagerStats, error)
	EmployeeDashboard(ctx context.Context, caller domain.Caller) (EmployeeDashboard, error)
}

type service struct {
	repo    Repository
	clients client.Service
	loc     *time.Location
	now     func() time.Time
	logger  *zap.Logger
}

// NewService wires the dashboard service. Assigned clients come from the
// cached client service. loc defines "today".
func NewService(repo Repository, clients client.Service, loc *time.Location, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		repo:    repo,
		clients: clients,
		loc:     loc,
		now:     time.Now,
		logger:  l,
	}
}

func (s *service) today() (time.Time, time.Time) {
	now := s.now().In(s.loc)
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	return start, start.AddDate(0, 0, 1)
}

func (s *service) ManagerStats(ctx context.Context, caller domain.Caller) (ManagerStats, error) {
	if caller.Role != domain.RoleManager {
		return ManagerStats{}, dashboarderrors.ErrManagerOnly
	}

	from, to := s.today()

	var (
		team     []TeamMember
		checkins []CheckinRow
		active   int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		team, err = s.repo.FindTeamMembers(gctx, caller.UserID)
		return err
	})
	g.Go(func() error {
		var err error
		checkins, err = s.repo.FindTeamCheckins(gctx, caller.UserID, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		active, err = s.repo.CountTeamActive(gctx, caller.UserID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("load manager dashboard failed", zap.String("manager_id", caller.UserID), zap.Error(err))
		return ManagerStats{}, apperror.Wrap(err, apperror.ErrInternal)
	}

	return ManagerStats{
		TeamSize:       len(team),
		TeamMembers:    mapToTeamResponse(team),
		TodayCheckins:  mapToCheckinItems(checkins),
		ActiveCheckins: active,
	}, nil
}

func (s *service) EmployeeDashboard(ctx context.Context, caller domain.Caller) (EmployeeDashboard, error) {
	from, to := s.today()

	checkins, err := s.repo.FindEmployeeCheckins(ctx, caller.UserID, from, to)
	if err != nil {
		s.logger.Error("load today's check-ins failed", zap.String("user_id", caller.UserID), zap.Error(err))
		return EmployeeDashboard{}, apperror.Wrap(err, apperror.ErrInternal)
	}

	stats, err := s.repo.EmployeeStatsSince(ctx, caller.UserID, s.now().Add(-statsWindow))
	if err != nil {
		s.logger.Error("load weekly stats failed", zap.String("user_id", caller.UserID), zap.Error(err))
		return EmployeeDashboard{}, apperror.Wrap(err, apperror.ErrInternal)
	}

	// managers have no assignments
	assigned := []client.ClientResponse{}
	if caller.Role == domain.RoleEmployee {
		assigned, err = s.clients.GetAssigned(ctx, caller)
		if err != nil {
			return EmployeeDashboard{}, err
		}
	}

	return EmployeeDashboard{
		TodayCheckins:   mapToCheckinItems(checkins),
		AssignedClients: assigned,
		WeekStats:       stats,
	}, nil
}
