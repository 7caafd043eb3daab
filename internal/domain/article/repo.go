package article

import "context"

// ListFilter narrows article listings.
type ListFilter struct {
	FeaturedOnly bool
	Limit        int
	Offset       int
}

// Repository persists articles.
type Repository interface {
	Create(ctx context.Context, a *Article) error
	List(ctx context.Context, f ListFilter) ([]*Article, int, error)
	GetBySlug(ctx context.Context, slug string) (*Article, error)
}
