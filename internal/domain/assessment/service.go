package assessment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/healthassist/healthassist/internal/platform/ai"
	"github.com/healthassist/healthassist/internal/platform/auth"
)

// AccountEnsurer guarantees the caller's user row exists before rows
// referencing it are written. Satisfied by identity.Service.
type AccountEnsurer interface {
	Ensure(ctx context.Context, id *auth.Identity) error
}

// Service runs the symptom analysis pipeline: validate the submitted
// symptoms, obtain an analysis from the configured analyzer, and persist
// the resulting assessment.
type Service struct {
	repo     Repository
	analyzer ai.Analyzer
	accounts AccountEnsurer
	logger   zerolog.Logger
}

func NewService(repo Repository, analyzer ai.Analyzer, accounts AccountEnsurer, logger zerolog.Logger) *Service {
	return &Service{repo: repo, analyzer: analyzer, accounts: accounts, logger: logger}
}

// ErrInvalidInput marks errors caused by a bad submission rather than an
// internal failure.
var ErrInvalidInput = errors.New("invalid input")

func validateSymptoms(symptoms []ai.SymptomInput) error {
	if len(symptoms) == 0 {
		return fmt.Errorf("at least one symptom is required")
	}
	for i, s := range symptoms {
		if strings.TrimSpace(s.Name) == "" {
			return fmt.Errorf("symptom %d: name is required", i)
		}
		if strings.TrimSpace(s.BodyPart) == "" {
			return fmt.Errorf("symptom %d: body part is required", i)
		}
		if s.Severity < 1 || s.Severity > 10 {
			return fmt.Errorf("symptom %d: severity must be between 1 and 10, got %d", i, s.Severity)
		}
		if strings.TrimSpace(s.Duration) == "" {
			return fmt.Errorf("symptom %d: duration is required", i)
		}
	}
	return nil
}

// Create validates the input, runs the analyzer and stores the assessment.
// Analyzer failures do not surface to the caller; the analyzer returns a
// conservative fallback result in that case and the assessment is stored
// with it.
func (s *Service) Create(ctx context.Context, ident *auth.Identity, in CreateInput) (*Assessment, error) {
	if err := validateSymptoms(in.Symptoms); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// The first authenticated request may be this one; the user row must
	// exist before the assessment references it.
	if err := s.accounts.Ensure(ctx, ident); err != nil {
		return nil, fmt.Errorf("provision account: %w", err)
	}

	result, err := s.analyzer.Analyze(ctx, in.Symptoms, in.AdditionalInfo)
	if err != nil {
		return nil, fmt.Errorf("analyze symptoms: %w", err)
	}

	bodyParts := in.BodyParts
	if len(bodyParts) == 0 {
		seen := map[string]bool{}
		for _, sym := range in.Symptoms {
			if !seen[sym.BodyPart] {
				seen[sym.BodyPart] = true
				bodyParts = append(bodyParts, sym.BodyPart)
			}
		}
	}

	a := &Assessment{
		UserID:          ident.UserID,
		Symptoms:        in.Symptoms,
		BodyParts:       bodyParts,
		AIAnalysis:      &result.Analysis,
		UrgencyLevel:    result.UrgencyLevel,
		Recommendations: result.Recommendations,
	}
	if strings.TrimSpace(in.AdditionalInfo) != "" {
		info := in.AdditionalInfo
		a.AdditionalInfo = &info
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("store assessment: %w", err)
	}

	s.logger.Info().
		Str("assessment_id", a.ID.String()).
		Str("user_id", ident.UserID).
		Str("urgency", a.UrgencyLevel).
		Int("symptoms", len(in.Symptoms)).
		Msg("assessment created")

	return a, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Assessment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListForUser(ctx context.Context, userID string, limit, offset int) ([]*Assessment, int, error) {
	return s.repo.ListByUser(ctx, userID, limit, offset)
}
