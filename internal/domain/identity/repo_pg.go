package identity

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type userRepoPG struct{ pool *pgxpool.Pool }

func NewUserRepoPG(pool *pgxpool.Pool) UserRepository {
	return &userRepoPG{pool: pool}
}

const userCols = `id, email, first_name, last_name, profile_image_url,
	date_of_birth, gender, phone, created_at, updated_at`

func (r *userRepoPG) scanUser(row pgx.Row) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.ProfileImageURL,
		&u.DateOfBirth, &u.Gender, &u.Phone, &u.CreatedAt, &u.UpdatedAt)
	return &u, err
}

func (r *userRepoPG) Upsert(ctx context.Context, u *User) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (id, email, first_name, last_name, profile_image_url)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			profile_image_url = EXCLUDED.profile_image_url,
			updated_at = NOW()
		RETURNING `+userCols,
		u.ID, u.Email, u.FirstName, u.LastName, u.ProfileImageURL)

	stored, err := r.scanUser(row)
	if err != nil {
		return err
	}
	*u = *stored
	return nil
}

func (r *userRepoPG) GetByID(ctx context.Context, id string) (*User, error) {
	return r.scanUser(r.pool.QueryRow(ctx, `SELECT `+userCols+` FROM users WHERE id = $1`, id))
}

func (r *userRepoPG) UpdateProfile(ctx context.Context, id string, p *ProfileUpdate) (*User, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE users SET
			first_name = COALESCE($2, first_name),
			last_name = COALESCE($3, last_name),
			date_of_birth = COALESCE($4, date_of_birth),
			gender = COALESCE($5, gender),
			phone = COALESCE($6, phone),
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+userCols,
		id, p.FirstName, p.LastName, p.DateOfBirth, p.Gender, p.Phone)
	return r.scanUser(row)
}
