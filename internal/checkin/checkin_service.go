package checkin

import (
	"context"
	"database/sql"
	"errors"
	"time"

	checkinerrors "go-fieldtrack/internal/checkin/errors"
	"go-fieldtrack/internal/client"
	"go-fieldtrack/internal/domain"
	"go-fieldtrack/internal/events"
	"go-fieldtrack/internal/messaging/kafka"
	"go-fieldtrack/internal/metrics"
	"go-fieldtrack/internal/shared/apperror"
	"go-fieldtrack/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const historyLimit = 100

//go:generate mockgen -source=checkin_service.go -destination=mock/checkin_service_mock.go -package=mock
type Service interface {
	CheckIn(ctx context.Context, caller domain.Caller, req CheckinRequest) (CheckinResponse, error)
	Checkout(ctx context.Context, caller domain.Caller) (CheckoutResponse, error)
	GetActive(ctx context.Context, caller domain.Caller) (*SessionResponse, error)
	GetHistory(ctx context.Context, caller domain.Caller, q HistoryQuery) ([]SessionResponse, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	clients client.Repository
	outbox  kafka.OutboxRepository
	loc     *time.Location
	logger  *zap.Logger
}

// NewService wires the check-in service. outbox may be nil, in which case no
// lifecycle events are recorded. loc defines calendar days for history filters.
func NewService(
	db *sql.DB,
	repo Repository,
	clients client.Repository,
	outbox kafka.OutboxRepository,
	loc *time.Location,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("checkin.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("checkin.service")
	}
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		db:      db,
		repo:    repo,
		clients: clients,
		outbox:  outbox,
		loc:     loc,
		logger:  l,
	}
}

func (s *service) CheckIn(ctx context.Context, caller domain.Caller, req CheckinRequest) (CheckinResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	clientID, err := ValidateRequest(caller, req)
	if err != nil {
		metrics.RecordAdmission(outcomeOf(err), 0, false)
		return CheckinResponse{}, err
	}

	admission, err := s.admit(ctx, caller, req, clientID)
	if err != nil {
		metrics.RecordAdmission(outcomeOf(err), 0, false)
		log.Info("check-in rejected",
			zap.String("employee_id", caller.UserID),
			zap.String("client_id", clientID.String()),
			zap.Error(err),
		)
		return CheckinResponse{}, err
	}

	metrics.RecordAdmission(metrics.OutcomeAdmitted, admission.DistanceKm, admission.Far)
	log.Info("check-in admitted",
		zap.String("checkin_id", admission.Session.ID.String()),
		zap.String("employee_id", caller.UserID),
		zap.String("client_id", clientID.String()),
		zap.Float64("distance_km", admission.DistanceKm),
		zap.Bool("far_from_client", admission.Far),
	)

	return admission.Response(), nil
}

// admit runs the storage lookups, the decision and the insert in one transaction.
func (s *service) admit(ctx context.Context, caller domain.Caller, req CheckinRequest, clientID uuid.UUID) (Admission, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("check-in begin tx failed", zap.Error(err))
		return Admission{}, apperror.Wrap(err, apperror.ErrInternal)
	}
	defer tx.Rollback()

	in := AdmissionInput{
		Caller:       caller,
		Request:      req,
		ClientExists: true,
		Now:          time.Now().UTC(),
	}

	qclients := s.clients.WithTx(tx)
	assignment, err := qclients.FindAssignment(ctx, caller.UserID, clientID.String())
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		exists, err := qclients.Exists(ctx, clientID.String())
		if err != nil {
			s.logger.Error("check-in client lookup failed", zap.Error(err))
			return Admission{}, apperror.Wrap(err, apperror.ErrInternal)
		}
		in.ClientExists = exists
	case err != nil:
		s.logger.Error("check-in assignment lookup failed", zap.Error(err))
		return Admission{}, apperror.Wrap(err, apperror.ErrInternal)
	default:
		in.Assignment = assignment
	}

	qtx := s.repo.WithTx(tx)
	if in.Assignment != nil && in.Assignment.HasCoordinates() {
		active, err := qtx.FindActiveByEmployee(ctx, caller.UserID)
		if err != nil {
			s.logger.Error("check-in active session lookup failed", zap.Error(err))
			return Admission{}, apperror.Wrap(err, apperror.ErrInternal)
		}
		if len(active) > 0 {
			in.Active = &active[0]
		}
	}

	admission, err := Admit(in)
	if err != nil {
		return Admission{}, err
	}

	if err := qtx.Create(ctx, &admission.Session); err != nil {
		s.logger.Warn("check-in persist failed", zap.Error(err))
		return Admission{}, mapRepositoryError(err)
	}

	session := admission.Session
	if err := s.enqueue(ctx, tx, events.CheckinEvent{
		EventType:     events.CheckinCreated,
		CheckinID:     session.ID.String(),
		EmployeeID:    session.EmployeeID.String(),
		ClientID:      session.ClientID.String(),
		DistanceKm:    admission.DistanceKm,
		FarFromClient: admission.Far,
		CheckinTime:   session.CheckinTime,
	}); err != nil {
		return Admission{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("check-in commit failed", zap.Error(err))
		return Admission{}, mapRepositoryError(err)
	}

	return admission, nil
}

func (s *service) Checkout(ctx context.Context, caller domain.Caller) (CheckoutResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if caller.Role != domain.RoleEmployee {
		return CheckoutResponse{}, checkinerrors.ErrCheckoutEmployeeOnly
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("checkout begin tx failed", zap.Error(err))
		return CheckoutResponse{}, apperror.Wrap(err, apperror.ErrInternal)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	active, err := qtx.FindActiveByEmployee(ctx, caller.UserID)
	if err != nil {
		s.logger.Error("checkout active session lookup failed", zap.Error(err))
		return CheckoutResponse{}, apperror.Wrap(err, apperror.ErrInternal)
	}
	if len(active) == 0 {
		return CheckoutResponse{}, checkinerrors.ErrNoActiveCheckin
	}
	if len(active) > 1 {
		stale := make([]string, 0, len(active)-1)
		for _, c := range active[1:] {
			stale = append(stale, c.ID.String())
		}
		log.Warn("employee has more than one active check-in, closing the newest only",
			zap.String("employee_id", caller.UserID),
			zap.Strings("stale_checkin_ids", stale),
		)
	}

	session := active[0]
	if err := session.Checkout(time.Now().UTC()); err != nil {
		return CheckoutResponse{}, apperror.Wrap(err, apperror.ErrInternal)
	}

	if err := qtx.CloseSession(ctx, &session); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CheckoutResponse{}, checkinerrors.ErrNoActiveCheckin
		}
		s.logger.Error("checkout persist failed", zap.Error(err))
		return CheckoutResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueue(ctx, tx, events.CheckinEvent{
		EventType:    events.CheckinCheckedOut,
		CheckinID:    session.ID.String(),
		EmployeeID:   session.EmployeeID.String(),
		ClientID:     session.ClientID.String(),
		DistanceKm:   session.DistanceFromClient,
		CheckinTime:  session.CheckinTime,
		CheckoutTime: session.CheckoutTime,
	}); err != nil {
		return CheckoutResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("checkout commit failed", zap.Error(err))
		return CheckoutResponse{}, apperror.Wrap(err, apperror.ErrInternal)
	}

	metrics.RecordCheckout()
	log.Info("checkout success",
		zap.String("checkin_id", session.ID.String()),
		zap.String("employee_id", caller.UserID),
	)

	return CheckoutResponse{
		ID:           session.ID.String(),
		Message:      MessageCheckedOut,
		CheckinTime:  session.CheckinTime,
		CheckoutTime: *session.CheckoutTime,
	}, nil
}

func (s *service) GetActive(ctx context.Context, caller domain.Caller) (*SessionResponse, error) {
	row, err := s.repo.FindActiveWithClient(ctx, caller.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		s.logger.Error("get active check-in failed", zap.String("employee_id", caller.UserID), zap.Error(err))
		return nil, apperror.Wrap(err, apperror.ErrInternal)
	}

	resp := mapToSessionResponse(*row)
	return &resp, nil
}

func (s *service) GetHistory(ctx context.Context, caller domain.Caller, q HistoryQuery) ([]SessionResponse, error) {
	from, err := s.dayStart(q.StartDate, 0)
	if err != nil {
		return nil, err
	}
	// end_date is inclusive, so the bound is the start of the following day.
	to, err := s.dayStart(q.EndDate, 1)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FindHistory(ctx, caller.UserID, from, to, historyLimit)
	if err != nil {
		s.logger.Error("get check-in history failed", zap.String("employee_id", caller.UserID), zap.Error(err))
		return nil, apperror.Wrap(err, apperror.ErrInternal)
	}

	return mapToSessionListResponse(rows), nil
}

func (s *service) dayStart(date string, addDays int) (*time.Time, error) {
	if date == "" {
		return nil, nil
	}
	day, err := time.ParseInLocation("2006-01-02", date, s.loc)
	if err != nil {
		return nil, checkinerrors.ErrInvalidDateRange
	}
	t := day.AddDate(0, 0, addDays)
	return &t, nil
}

func (s *service) enqueue(ctx context.Context, tx *sql.Tx, event events.CheckinEvent) error {
	if s.outbox == nil {
		return nil
	}

	event.RequestID = contextutil.GetRequestID(ctx)
	event.OccurredAt = time.Now().UTC()

	row, err := kafka.NewCheckinOutboxEvent(event)
	if err != nil {
		s.logger.Error("marshal checkin event failed", zap.Error(err))
		return apperror.Wrap(err, apperror.ErrInternal)
	}

	if err := s.outbox.WithTx(tx).Create(ctx, row); err != nil {
		s.logger.Error("checkin outbox persist failed",
			zap.String("checkin_id", event.CheckinID),
			zap.Error(err),
		)
		return apperror.Wrap(err, apperror.ErrInternal)
	}
	return nil
}

func outcomeOf(err error) string {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		return metrics.OutcomeError
	}
	switch appErr.Code {
	case apperror.CodeForbidden:
		return metrics.OutcomeForbidden
	case apperror.CodeInvalidInput:
		return metrics.OutcomeInvalid
	case apperror.CodeNotFound:
		return metrics.OutcomeNotFound
	case apperror.CodeConflict:
		return metrics.OutcomeConflict
	default:
		return metrics.OutcomeError
	}
}
