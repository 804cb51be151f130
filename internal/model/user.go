package model

import (
	"context"
	"time"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	// Delete removes the user together with its purchase transactions.
	Delete(ctx context.Context, id int64) error
}

// User represents a registered customer with its password digest.
type User struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	PasswordDigest string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// SignUpForm is the submitted registration form.
type SignUpForm struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

// SignInForm is the submitted login form.
type SignInForm struct {
	Email    string `json:"email"`
	Password string `json:"-"`
}

// PasswordHasher computes and verifies one-way password digests.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}
