package usecase

import (
	"context"

	"brewclub/internal/domain/catalog"
	"brewclub/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// PlaceOrderInput defines the data required to place a coffee order.
type PlaceOrderInput struct {
	UserID   uuid.UUID
	Item     string
	Quantity int
}

// UpdateOrderInput defines the editable fields of an open order.
// ActorID and ActorRole identify who is making the change; members may
// only touch their own orders.
type UpdateOrderInput struct {
	OrderID   uuid.UUID
	ActorID   uuid.UUID
	ActorRole entity.Role
	Item      string
	Quantity  int
}

// CancelOrderInput identifies an open order to remove.
type CancelOrderInput struct {
	OrderID   uuid.UUID
	ActorID   uuid.UUID
	ActorRole entity.Role
}

// CloseOrderInput identifies an order to mark as closed.
type CloseOrderInput struct {
	OrderID   uuid.UUID
	ActorID   uuid.UUID
	ActorRole entity.Role
}

// OrderUsecase defines the interface for order-related business operations.
type OrderUsecase interface {
	// Menu returns the fixed coffee menu.
	Menu(ctx context.Context) []catalog.Item

	PlaceOrder(ctx context.Context, input *PlaceOrderInput) (*entity.Order, error)
	ListOrders(ctx context.Context) ([]*entity.Order, error)
	ListUserOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
	ListOpenOrders(ctx context.Context) ([]*entity.Order, error)
	UpdateOrder(ctx context.Context, input *UpdateOrderInput) (*entity.Order, error)
	CancelOrder(ctx context.Context, input *CancelOrderInput) error
	// CloseOrder settles a single order outside a receipt run. Closing an
	// already closed order is a no-op.
	CloseOrder(ctx context.Context, input *CloseOrderInput) error
}
