package application

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/felixgeelhaar/pawsit/internal/entitlement/domain"
	"github.com/felixgeelhaar/pawsit/pkg/observability"
	"github.com/google/uuid"
)

// EntitlementDTO is the answer to an entitlement check.
type EntitlementDTO struct {
	UserID             uuid.UUID          `json:"user_id"`
	Entitled           bool               `json:"entitled"`
	State              domain.AccessState `json:"state"`
	ExpiresAt          *time.Time         `json:"expires_at,omitempty"`
	TrialDaysRemaining int                `json:"trial_days_remaining"`
}

// Service checks whether users hold valid access.
//
// Checks fail closed: a missing record, a store error or a missing service
// all mean no access.
type Service struct {
	records domain.RecordRepository
	now     func() time.Time
	metrics observability.Metrics
	logger  *slog.Logger
}

// NewService creates a new entitlement service.
func NewService(records domain.RecordRepository, metrics observability.Metrics, logger *slog.Logger) *Service {
	if metrics == nil {
		metrics = observability.NoopMetrics{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{records: records, now: time.Now, metrics: metrics, logger: logger}
}

// WithClock replaces the clock used for evaluation.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Check loads the user's record and evaluates it. It never fails.
func (s *Service) Check(ctx context.Context, userID uuid.UUID) EntitlementDTO {
	dto := EntitlementDTO{UserID: userID, State: domain.AccessNone}
	if s == nil {
		return dto
	}

	record, err := s.load(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrRecordNotFound) {
			s.metrics.Counter(observability.MetricEntitlementStoreFailures, 1)
			s.logger.WarnContext(ctx, "entitlement store read failed, denying access",
				observability.UserIDKey, userID.String(),
				observability.ErrorKey, err,
			)
		}
		s.record(ctx, dto)
		return dto
	}

	now := s.now()
	access := domain.Check(*record, now)
	dto.Entitled = access.Entitled
	dto.State = access.State
	dto.ExpiresAt = access.ExpiresAt
	dto.TrialDaysRemaining = domain.TrialDaysRemaining(*record, now)

	s.record(ctx, dto)
	return dto
}

// IsEntitled reports whether the user currently has access.
func (s *Service) IsEntitled(ctx context.Context, userID uuid.UUID) bool {
	return s.Check(ctx, userID).Entitled
}

func (s *Service) load(ctx context.Context, userID uuid.UUID) (*domain.Record, error) {
	if s.records == nil {
		return nil, errors.New("entitlement store not configured")
	}
	record, err := s.records.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrRecordNotFound
	}
	return record, nil
}

func (s *Service) record(ctx context.Context, dto EntitlementDTO) {
	s.metrics.Counter(observability.MetricEntitlementChecks, 1, observability.T("state", string(dto.State)))
	s.logger.DebugContext(ctx, "entitlement checked",
		observability.UserIDKey, dto.UserID.String(),
		"entitled", dto.Entitled,
		"state", string(dto.State),
	)
}
