package client

import (
	"context"
	"encoding/json"
	"time"

	clienterrors "go-fieldtrack/internal/client/errors"
	"go-fieldtrack/internal/domain"
	"go-fieldtrack/internal/shared/apperror"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	AssignedClientsKeyPrefix = "clients:assigned:"
	assignedClientsTTL       = 10 * time.Minute
)

func GetAssignedClientsKey(employeeID string) string {
	return AssignedClientsKeyPrefix + employeeID
}

//go:generate mockgen -source=client_service.go -destination=mock/client_service_mock.go -package=mock
type Service interface {
	GetAssigned(ctx context.Context, caller domain.Caller) ([]ClientResponse, error)
	InvalidateAssigned(ctx context.Context, employeeID string)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("client.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("client.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) GetAssigned(ctx context.Context, caller domain.Caller) ([]ClientResponse, error) {
	if caller.Role != domain.RoleEmployee {
		return nil, clienterrors.ErrEmployeeOnly
	}

	cacheKey := GetAssignedClientsKey(caller.UserID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []ClientResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		rows, err := s.repo.FindAssignedByEmployee(ctx, caller.UserID)
		if err != nil {
			s.logger.Error("find assigned clients failed", zap.String("employee_id", caller.UserID), zap.Error(err))
			return nil, apperror.Wrap(err, apperror.ErrInternal)
		}

		resp := MapToListResponse(rows)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, jsonData, assignedClientsTTL).Err(); err != nil {
					s.logger.Warn("cache assigned clients failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]ClientResponse), nil
}

// InvalidateAssigned drops the cached list after assignments change.
func (s *service) InvalidateAssigned(ctx context.Context, employeeID string) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetAssignedClientsKey(employeeID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate assigned clients cache", zap.String("key", cacheKey), zap.Error(err))
	}
}
