package identity

import "time"

// User maps to the users table. The id is the subject issued by the identity
// provider, so a user row exists for every account that has signed in at
// least once. Users are never hard-deleted.
type User struct {
	ID              string     `db:"id" json:"id"`
	Email           *string    `db:"email" json:"email,omitempty"`
	FirstName       *string    `db:"first_name" json:"firstName,omitempty"`
	LastName        *string    `db:"last_name" json:"lastName,omitempty"`
	ProfileImageURL *string    `db:"profile_image_url" json:"profileImageUrl,omitempty"`
	DateOfBirth     *time.Time `db:"date_of_birth" json:"dateOfBirth,omitempty"`
	Gender          *string    `db:"gender" json:"gender,omitempty"`
	Phone           *string    `db:"phone" json:"phone,omitempty"`
	CreatedAt       time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updatedAt"`
}

// ProfileUpdate carries the demographic fields a user may edit. Identity
// fields (id, email) come from the token and are not editable here.
type ProfileUpdate struct {
	FirstName   *string    `json:"firstName,omitempty"`
	LastName    *string    `json:"lastName,omitempty"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	Gender      *string    `json:"gender,omitempty"`
	Phone       *string    `json:"phone,omitempty"`
}
