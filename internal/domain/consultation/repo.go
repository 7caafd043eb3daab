package consultation

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists consultations.
type Repository interface {
	Create(ctx context.Context, c *Consultation) error
	GetByID(ctx context.Context, id uuid.UUID) (*Consultation, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*Consultation, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*Consultation, error)
}
