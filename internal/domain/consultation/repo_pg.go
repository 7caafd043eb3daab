package consultation

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

const cols = `id, user_id, assessment_id, doctor_name, doctor_specialty,
	scheduled_at, status, notes, created_at`

func (r *repoPG) scan(row pgx.Row) (*Consultation, error) {
	var c Consultation
	err := row.Scan(&c.ID, &c.UserID, &c.AssessmentID, &c.DoctorName, &c.DoctorSpecialty,
		&c.ScheduledAt, &c.Status, &c.Notes, &c.CreatedAt)
	return &c, err
}

func (r *repoPG) Create(ctx context.Context, c *Consultation) error {
	c.ID = uuid.New()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO consultations (id, user_id, assessment_id, doctor_name,
			doctor_specialty, scheduled_at, status, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING `+cols,
		c.ID, c.UserID, c.AssessmentID, c.DoctorName, c.DoctorSpecialty,
		c.ScheduledAt, c.Status, c.Notes)

	stored, err := r.scan(row)
	if err != nil {
		return err
	}
	*c = *stored
	return nil
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Consultation, error) {
	return r.scan(r.pool.QueryRow(ctx, `SELECT `+cols+` FROM consultations WHERE id = $1`, id))
}

func (r *repoPG) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*Consultation, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM consultations WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+cols+` FROM consultations
		WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*Consultation
	for rows.Next() {
		c, err := r.scan(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, c)
	}
	return items, total, rows.Err()
}

func (r *repoPG) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*Consultation, error) {
	return r.scan(r.pool.QueryRow(ctx, `
		UPDATE consultations SET status = $2 WHERE id = $1
		RETURNING `+cols, id, status))
}
