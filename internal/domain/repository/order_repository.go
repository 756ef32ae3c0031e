package repository

import (
	"context"

	"brewclub/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	// FindByID retrieves a single order by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListByUser retrieves all orders placed by the given user, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// List retrieves every order, newest first.
	List(ctx context.Context) ([]*entity.Order, error)

	// ListOpen retrieves all open orders, oldest first.
	ListOpen(ctx context.Context) ([]*entity.Order, error)

	// ListOpenLocked retrieves all open orders with row locks held until the
	// surrounding transaction ends. Must be called inside a transaction.
	ListOpenLocked(ctx context.Context) ([]*entity.Order, error)

	// Create persists a new order entity to the storage.
	Create(ctx context.Context, order *entity.Order) error

	// Update modifies an existing order entity in the storage.
	Update(ctx context.Context, order *entity.Order) error

	// Delete removes the order with the given ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// CloseByIDs marks the given orders as closed.
	CloseByIDs(ctx context.Context, ids []uuid.UUID) error
}
