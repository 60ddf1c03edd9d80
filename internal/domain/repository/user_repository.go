// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"authsvc/internal/domain/entity"
	"authsvc/internal/errors"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository is the credential store. It only creates and reads.
type UserRepository interface {
	// Create persists a new user and fills in ID and CreatedAt.
	// It returns domainerrors.ErrEmailAlreadyExists when the email is taken,
	// leaving the store unchanged.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail returns the user whose email matches exactly, or ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
