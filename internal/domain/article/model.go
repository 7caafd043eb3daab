package article

import (
	"time"

	"github.com/google/uuid"
)

// Article is an editorial health article. Content is seeded by operators and
// read-only through the API.
type Article struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Slug      string    `db:"slug" json:"slug"`
	Category  string    `db:"category" json:"category"`
	Excerpt   string    `db:"excerpt" json:"excerpt"`
	Content   string    `db:"content" json:"content"`
	ImageURL  *string   `db:"image_url" json:"imageUrl,omitempty"`
	ReadTime  int       `db:"read_time" json:"readTime"`
	Featured  bool      `db:"featured" json:"featured"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
