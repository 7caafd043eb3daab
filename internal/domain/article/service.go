package article

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

var ErrInvalidInput = errors.New("invalid input")

// slugPattern matches URL-safe slugs: lowercase alphanumerics and hyphens.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

type Service struct {
	repo   Repository
	logger zerolog.Logger
}

func NewService(repo Repository, logger zerolog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Create stores a new article. Used by the seeder; articles are read-only
// through the HTTP API.
func (s *Service) Create(ctx context.Context, a *Article) error {
	if strings.TrimSpace(a.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if !slugPattern.MatchString(a.Slug) {
		return fmt.Errorf("%w: slug %q is not URL-safe", ErrInvalidInput, a.Slug)
	}
	if strings.TrimSpace(a.Content) == "" {
		return fmt.Errorf("%w: content is required", ErrInvalidInput)
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return fmt.Errorf("store article: %w", err)
	}
	s.logger.Debug().Str("slug", a.Slug).Msg("article created")
	return nil
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]*Article, int, error) {
	return s.repo.List(ctx, f)
}

// GetBySlug does an exact, case-sensitive slug lookup.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*Article, error) {
	return s.repo.GetBySlug(ctx, slug)
}
