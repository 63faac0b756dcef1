package auth

import (
	"context"
	"errors"
	"strings"

	autherrors "go-fieldtrack/internal/auth/errors"
	"go-fieldtrack/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (LoginResponse, error)
	GetMe(ctx context.Context, userID string) (UserResponse, error)
	Refresh(ctx context.Context, userID string) (TokenResponse, error)
}

type service struct {
	repo   Repository
	tokens *TokenManager
	logger *zap.Logger
}

func NewService(repo Repository, tokens *TokenManager, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, tokens: tokens, logger: l}
}

func (s *service) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return LoginResponse{}, autherrors.ErrCredentialsRequired
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LoginResponse{}, autherrors.ErrInvalidCredentials
		}
		s.logger.Error("login lookup failed", zap.Error(err))
		return LoginResponse{}, apperror.Wrap(err, apperror.ErrInternal)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.logger.Info("login rejected", zap.String("user_id", user.ID.String()))
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Generate(*user)
	if err != nil {
		s.logger.Error("login token generation failed", zap.Error(err))
		return LoginResponse{}, apperror.Wrap(err, autherrors.ErrTokenGenerationFailed)
	}

	s.logger.Info("login success",
		zap.String("user_id", user.ID.String()),
		zap.String("role", user.Role.String()),
	)

	return LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      mapToUserResponse(*user),
	}, nil
}

func (s *service) GetMe(ctx context.Context, userID string) (UserResponse, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return UserResponse{}, err
	}
	return mapToUserResponse(*user), nil
}

func (s *service) Refresh(ctx context.Context, userID string) (TokenResponse, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return TokenResponse{}, err
	}

	token, expiresAt, err := s.tokens.Generate(*user)
	if err != nil {
		s.logger.Error("refresh token generation failed", zap.Error(err))
		return TokenResponse{}, apperror.Wrap(err, autherrors.ErrTokenGenerationFailed)
	}
	return TokenResponse{Token: token, ExpiresAt: expiresAt}, nil
}

func (s *service) findUser(ctx context.Context, userID string) (*User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, autherrors.ErrInvalidUserID
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, autherrors.ErrUserNotFound
		}
		s.logger.Error("user lookup failed", zap.String("user_id", userID), zap.Error(err))
		return nil, apperror.Wrap(err, apperror.ErrInternal)
	}
	return user, nil
}
