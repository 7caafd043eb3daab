package seed

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/healthassist/healthassist/internal/domain/article"
)

type memRepo struct {
	bySlug map[string]*article.Article
}

func newMemRepo() *memRepo {
	return &memRepo{bySlug: make(map[string]*article.Article)}
}

func (m *memRepo) Create(_ context.Context, a *article.Article) error {
	a.ID = uuid.New()
	m.bySlug[a.Slug] = a
	return nil
}

func (m *memRepo) List(_ context.Context, f article.ListFilter) ([]*article.Article, int, error) {
	var items []*article.Article
	for _, a := range m.bySlug {
		if f.FeaturedOnly && !a.Featured {
			continue
		}
		items = append(items, a)
	}
	return items, len(items), nil
}

func (m *memRepo) GetBySlug(_ context.Context, slug string) (*article.Article, error) {
	if a, ok := m.bySlug[slug]; ok {
		return a, nil
	}
	return nil, pgx.ErrNoRows
}

func TestSeeder_Run(t *testing.T) {
	repo := newMemRepo()
	svc := article.NewService(repo, zerolog.Nop())
	s := NewSeeder(svc, zerolog.Nop())

	res, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Created == 0 {
		t.Fatal("expected articles to be created")
	}
	if res.Skipped != 0 {
		t.Errorf("expected no skips on a fresh run, got %d", res.Skipped)
	}
	if len(repo.bySlug) != res.Created {
		t.Errorf("repo holds %d articles, result says %d", len(repo.bySlug), res.Created)
	}

	// every seeded article passes service validation and has a featured subset
	featured, _, err := svc.List(context.Background(), article.ListFilter{FeaturedOnly: true, Limit: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(featured) == 0 {
		t.Error("expected at least one featured article in the default set")
	}
}

func TestSeeder_Run_Idempotent(t *testing.T) {
	repo := newMemRepo()
	svc := article.NewService(repo, zerolog.Nop())
	s := NewSeeder(svc, zerolog.Nop())

	first, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Created != 0 {
		t.Errorf("expected no new articles on second run, got %d", second.Created)
	}
	if second.Skipped != first.Created {
		t.Errorf("expected %d skips, got %d", first.Created, second.Skipped)
	}
}
