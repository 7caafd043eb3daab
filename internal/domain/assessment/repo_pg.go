package assessment

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const cols = `id, user_id, symptoms, body_parts, additional_info,
	ai_analysis, urgency_level, recommendations, created_at`

func (r *repoPG) scan(row pgx.Row) (*Assessment, error) {
	var a Assessment
	err := row.Scan(&a.ID, &a.UserID, &a.Symptoms, &a.BodyParts, &a.AdditionalInfo,
		&a.AIAnalysis, &a.UrgencyLevel, &a.Recommendations, &a.CreatedAt)
	return &a, err
}

func (r *repoPG) Create(ctx context.Context, a *Assessment) error {
	a.ID = uuid.New()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO assessments (id, user_id, symptoms, body_parts, additional_info,
			ai_analysis, urgency_level, recommendations)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING `+cols,
		a.ID, a.UserID, a.Symptoms, a.BodyParts, a.AdditionalInfo,
		a.AIAnalysis, a.UrgencyLevel, a.Recommendations)

	stored, err := r.scan(row)
	if err != nil {
		return err
	}
	*a = *stored
	return nil
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Assessment, error) {
	return r.scan(r.pool.QueryRow(ctx, `SELECT `+cols+` FROM assessments WHERE id = $1`, id))
}

func (r *repoPG) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*Assessment, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM assessments WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+cols+` FROM assessments
		WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*Assessment
	for rows.Next() {
		a, err := r.scan(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, a)
	}
	return items, total, rows.Err()
}
