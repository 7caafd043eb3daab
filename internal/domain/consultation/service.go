package consultation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/healthassist/healthassist/internal/platform/auth"
	"github.com/healthassist/healthassist/internal/platform/notification"
)

// ErrInvalidInput marks errors caused by a bad submission rather than an
// internal failure.
var ErrInvalidInput = errors.New("invalid input")

// AccountEnsurer guarantees the caller's user row exists before rows
// referencing it are written. Satisfied by identity.Service.
type AccountEnsurer interface {
	Ensure(ctx context.Context, id *auth.Identity) error
}

// Service books consultations and manages their status lifecycle. Booking
// and status-change emails are sent when the caller's identity carries an
// email address; delivery failures are logged and never fail the operation.
type Service struct {
	repo     Repository
	notifier *notification.Manager
	accounts AccountEnsurer
	logger   zerolog.Logger
}

func NewService(repo Repository, notifier *notification.Manager, accounts AccountEnsurer, logger zerolog.Logger) *Service {
	return &Service{repo: repo, notifier: notifier, accounts: accounts, logger: logger}
}

func (s *Service) Create(ctx context.Context, id *auth.Identity, in CreateInput) (*Consultation, error) {
	if strings.TrimSpace(in.DoctorName) == "" {
		return nil, fmt.Errorf("%w: doctor name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.DoctorSpecialty) == "" {
		return nil, fmt.Errorf("%w: doctor specialty is required", ErrInvalidInput)
	}
	if in.ScheduledAt.IsZero() {
		return nil, fmt.Errorf("%w: scheduled time is required", ErrInvalidInput)
	}

	// The first authenticated request may be this one; the user row must
	// exist before the consultation references it.
	if err := s.accounts.Ensure(ctx, id); err != nil {
		return nil, fmt.Errorf("provision account: %w", err)
	}

	c := &Consultation{
		UserID:          id.UserID,
		AssessmentID:    in.AssessmentID,
		DoctorName:      in.DoctorName,
		DoctorSpecialty: in.DoctorSpecialty,
		ScheduledAt:     in.ScheduledAt,
		Status:          StatusPending,
	}
	if strings.TrimSpace(in.Notes) != "" {
		notes := in.Notes
		c.Notes = &notes
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("store consultation: %w", err)
	}

	s.logger.Info().
		Str("consultation_id", c.ID.String()).
		Str("user_id", c.UserID).
		Str("doctor", c.DoctorName).
		Time("scheduled_at", c.ScheduledAt).
		Msg("consultation booked")

	s.sendConfirmation(ctx, id, c)
	return c, nil
}

func (s *Service) sendConfirmation(ctx context.Context, id *auth.Identity, c *Consultation) {
	if s.notifier == nil || id.Email == "" {
		return
	}
	_, err := s.notifier.SendFromTemplate(ctx, "booking-confirmation", map[string]string{
		"first_name":   id.FirstName,
		"doctor_name":  c.DoctorName,
		"specialty":    c.DoctorSpecialty,
		"scheduled_at": c.ScheduledAt.Format(time.RFC1123),
	}, id.Email)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("consultation_id", c.ID.String()).
			Msg("booking confirmation not delivered")
	}
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Consultation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListForUser(ctx context.Context, userID string, limit, offset int) ([]*Consultation, int, error) {
	return s.repo.ListByUser(ctx, userID, limit, offset)
}

// UpdateStatus moves a consultation to the given status and notifies the
// owner. The caller must own the consultation; status values outside the
// enum are rejected.
func (s *Service) UpdateStatus(ctx context.Context, ident *auth.Identity, id uuid.UUID, status string) (*Consultation, error) {
	if !ValidStatus(status) {
		return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, status)
	}

	c, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.sendStatusUpdate(ctx, ident, c)
	return c, nil
}

func (s *Service) sendStatusUpdate(ctx context.Context, ident *auth.Identity, c *Consultation) {
	if s.notifier == nil || ident == nil || ident.Email == "" {
		return
	}
	_, err := s.notifier.SendFromTemplate(ctx, "booking-status-update", map[string]string{
		"first_name":  ident.FirstName,
		"doctor_name": c.DoctorName,
		"status":      c.Status,
	}, ident.Email)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("consultation_id", c.ID.String()).
			Str("status", c.Status).
			Msg("status update not delivered")
	}
}
