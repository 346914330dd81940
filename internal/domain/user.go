package domain

import "time"

type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser is the creation command for a user. Password arrives in plain
// text and is hashed before it reaches the directory.
type NewUser struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// UserUpdate carries a partial update; nil fields keep the stored value.
type UserUpdate struct {
	Name     *string
	Email    *string
	Password *string
	Role     *string
}
