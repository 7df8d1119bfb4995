package model

import (
	"time"
)

// User represents a user in the system
type User struct {
	ID           int        `json:"id" db:"id"`
	Username     string     `json:"username" db:"username"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

// UserCreate represents data needed to create a new user
type UserCreate struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// UserUpdate represents data for updating a user.
// Nil fields are left unchanged.
type UserUpdate struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
}

// NewUserFromCreate maps a create request to a new user entity.
// The password must already be hashed; the plaintext is never stored.
func NewUserFromCreate(create UserCreate, passwordHash string) User {
	return User{
		Username:     create.Username,
		Email:        create.Email,
		PasswordHash: passwordHash,
	}
}

// WithUpdate returns a copy of the user with the set fields applied.
// The receiver is never modified.
func (u User) WithUpdate(update UserUpdate) User {
	if update.Username != nil {
		u.Username = *update.Username
	}
	if update.Email != nil {
		u.Email = *update.Email
	}
	return u
}
