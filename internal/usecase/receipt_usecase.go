package usecase

import (
	"context"

	"brewclub/internal/domain/entity"

	"github.com/google/uuid"
)

// GetReceiptInput identifies a receipt and the member asking for it.
type GetReceiptInput struct {
	ReceiptID uuid.UUID
	ActorID   uuid.UUID
	ActorRole entity.Role
}

// ReceiptUsecase defines the interface for settlement operations.
type ReceiptUsecase interface {
	// MakeReceipt snapshots every open order, closes them, and records the
	// settlement under the given member. The receipt is written even when
	// no orders are open.
	MakeReceipt(ctx context.Context, userID uuid.UUID) (*entity.Receipt, error)

	// Summary mails the current open-order overview to every fetcher
	// without closing anything.
	Summary(ctx context.Context) error

	GetReceipt(ctx context.Context, input *GetReceiptInput) (*entity.Receipt, error)
	ListUserReceipts(ctx context.Context, userID uuid.UUID) ([]*entity.Receipt, error)
	ListReceipts(ctx context.Context) ([]*entity.Receipt, error)
}
