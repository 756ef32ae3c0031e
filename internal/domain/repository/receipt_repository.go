package repository

import (
	"context"

	"brewclub/internal/domain/entity"

	"github.com/google/uuid"
)

// ReceiptRepository defines the standard operations for receipt persistence.
type ReceiptRepository interface {
	// FindByID retrieves a single receipt by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error)

	// ListByUser retrieves all receipts settled by the given user, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Receipt, error)

	// List retrieves all receipts, newest first.
	List(ctx context.Context) ([]*entity.Receipt, error)

	// Create persists a new receipt entity to the storage.
	Create(ctx context.Context, receipt *entity.Receipt) error
}
