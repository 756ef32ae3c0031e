// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"brewclub/internal/domain/entity"

	"github.com/google/uuid"
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByMobile retrieves the first user registered with the given mobile number.
	FindByMobile(ctx context.Context, mobile string) (*entity.User, error)

	// List retrieves all users ordered by name.
	List(ctx context.Context) ([]*entity.User, error)

	// ListFetchers retrieves all users currently flagged as fetcher.
	ListFetchers(ctx context.Context) ([]*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	// Accounts are never deleted, only updated.
	Update(ctx context.Context, user *entity.User) error
}
