package article

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const cols = `id, title, slug, category, excerpt, content, image_url,
	read_time, featured, created_at`

func (r *repoPG) scan(row pgx.Row) (*Article, error) {
	var a Article
	err := row.Scan(&a.ID, &a.Title, &a.Slug, &a.Category, &a.Excerpt, &a.Content,
		&a.ImageURL, &a.ReadTime, &a.Featured, &a.CreatedAt)
	return &a, err
}

func (r *repoPG) Create(ctx context.Context, a *Article) error {
	a.ID = uuid.New()
	if a.ReadTime == 0 {
		a.ReadTime = 5
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO articles (id, title, slug, category, excerpt, content,
			image_url, read_time, featured)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING `+cols,
		a.ID, a.Title, a.Slug, a.Category, a.Excerpt, a.Content,
		a.ImageURL, a.ReadTime, a.Featured)

	stored, err := r.scan(row)
	if err != nil {
		return err
	}
	*a = *stored
	return nil
}

func (r *repoPG) List(ctx context.Context, f ListFilter) ([]*Article, int, error) {
	where := ""
	if f.FeaturedOnly {
		where = " WHERE featured"
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM articles`+where).Scan(&total); err != nil {
		return nil, 0, err
	}

	q := fmt.Sprintf(`SELECT %s FROM articles%s ORDER BY created_at DESC LIMIT $1 OFFSET $2`, cols, where)
	rows, err := r.pool.Query(ctx, q, f.Limit, f.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*Article
	for rows.Next() {
		a, err := r.scan(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, a)
	}
	return items, total, rows.Err()
}

func (r *repoPG) GetBySlug(ctx context.Context, slug string) (*Article, error) {
	return r.scan(r.pool.QueryRow(ctx, `SELECT `+cols+` FROM articles WHERE slug = $1`, slug))
}
