package report

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-fieldtrack/internal/domain"
	reporterrors "go-fieldtrack/internal/report/errors"
	"go-fieldtrack/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	DailySummaryKeyPrefix = "report:daily:"
	dailySummaryTTL       = 5 * time.Minute
	dateLayout            = "2006-01-02"
)

func GetDailySummaryKey(managerID, date string) string {
	return DailySummaryKeyPrefix + managerID + ":" + date
}

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	// DailySummary aggregates the caller's team for date (YYYY-MM-DD, empty for today).
	DailySummary(ctx context.Context, caller domain.Caller, date string) (DailySummary, error)
	ExportDailySummary(ctx context.Context, caller domain.Caller, date string) (Export, error)
	// InvalidateForEmployee drops the cached summary of the employee's manager for the day containing at.
	InvalidateForEmployee(ctx context.Context, employeeID string, at time.Time) error
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	loc    *time.Location
	now    func() time.Time
	logger *zap.Logger
}

// NewService wires the report service. rdb may be nil to disable caching.
func NewService(repo Repository, rdb *redis.Client, loc *time.Location, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		loc:    loc,
		now:    time.Now,
		logger: l,
	}
}

func (s *service) DailySummary(ctx context.Context, caller domain.Caller, date string) (DailySummary, error) {
	if caller.Role != domain.RoleManager {
		return DailySummary{}, reporterrors.ErrManagerOnly
	}

	day, err := s.resolveDay(date)
	if err != nil {
		return DailySummary{}, err
	}
	dayKey := day.Format(dateLayout)
	cacheKey := GetDailySummaryKey(caller.UserID, dayKey)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp DailySummary
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		team, err := s.repo.FindTeam(ctx, caller.UserID)
		if err != nil {
			s.logger.Error("find team failed", zap.String("manager_id", caller.UserID), zap.Error(err))
			return nil, apperror.Wrap(err, apperror.ErrInternal)
		}

		ids := make([]uuid.UUID, 0, len(team))
		for _, m := range team {
			ids = append(ids, m.ID)
		}

		rows, err := s.repo.FindCheckinsForDay(ctx, ids, day, day.AddDate(0, 0, 1))
		if err != nil {
			s.logger.Error("find team check-ins failed",
				zap.String("manager_id", caller.UserID),
				zap.String("date", dayKey),
				zap.Error(err),
			)
			return nil, apperror.Wrap(err, apperror.ErrInternal)
		}

		summary := Summarize(dayKey, team, rows)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(summary); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, jsonData, dailySummaryTTL).Err(); err != nil {
					s.logger.Warn("cache daily summary failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}

		return summary, nil
	})
	if err != nil {
		return DailySummary{}, err
	}

	return v.(DailySummary), nil
}

func (s *service) ExportDailySummary(ctx context.Context, caller domain.Caller, date string) (Export, error) {
	summary, err := s.DailySummary(ctx, caller, date)
	if err != nil {
		return Export{}, err
	}

	data, err := BuildWorkbook(summary, s.loc)
	if err != nil {
		s.logger.Error("build daily summary workbook failed", zap.String("date", summary.Date), zap.Error(err))
		return Export{}, apperror.Wrap(err, reporterrors.ErrExportFailed)
	}

	return Export{
		FileName:    exportFileName(summary.Date),
		ContentType: XLSXContentType,
		Data:        data,
	}, nil
}

func (s *service) InvalidateForEmployee(ctx context.Context, employeeID string, at time.Time) error {
	if s.rdb == nil {
		return nil
	}

	managerID, err := s.repo.FindManagerID(ctx, employeeID)
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && managerID == nil) {
		return nil
	}
	if err != nil {
		return err
	}

	cacheKey := GetDailySummaryKey(managerID.String(), at.In(s.loc).Format(dateLayout))
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate daily summary cache", zap.String("key", cacheKey), zap.Error(err))
		return err
	}
	return nil
}

// resolveDay returns midnight of date in the configured zone; empty means today.
func (s *service) resolveDay(date string) (time.Time, error) {
	if date == "" {
		now := s.now().In(s.loc)
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc), nil
	}
	day, err := time.ParseInLocation(dateLayout, date, s.loc)
	if err != nil {
		return time.Time{}, reporterrors.ErrInvalidDate
	}
	return day, nil
}
