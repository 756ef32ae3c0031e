package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "brewclub/internal/delivery/context"
	"brewclub/internal/domain/catalog"
	"brewclub/internal/domain/entity"
	domainerrors "brewclub/internal/domain/errors"
	"brewclub/internal/domain/repository"
	"brewclub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	menu      *catalog.Catalog
	logger    *slog.Logger
	now       func() time.Time
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Menu      *catalog.Catalog
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		menu:      params.Menu,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Menu returns the fixed coffee menu.
func (srv *orderService) Menu(_ context.Context) []catalog.Item {
	return srv.menu.Items()
}

// PlaceOrder creates a new open order. The line price is the current unit
// price times the quantity and stays frozen after placement.
func (srv *orderService) PlaceOrder(ctx context.Context, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	price, err := srv.priceFor(input.Item, input.Quantity)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		UserID:   input.UserID,
		Item:     input.Item,
		Quantity: input.Quantity,
		Price:    price,
		PlacedOn: srv.now().Format(entity.PlacedOnLayout),
		Status:   entity.OrderStatusOpen,
	}

	if err := srv.orderRepo.Create(ctx, order); err != nil {
		srv.log(ctx).Warn("Order placement failed", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to place order")
	}

	srv.log(ctx).Info("Order placed",
		slog.Any("orderID", order.ID),
		slog.String("item", order.Item),
		slog.Int("quantity", order.Quantity),
	)

	return order, nil
}

// ListOrders returns every order, newest first. The club keeps all orders
// visible to every member.
func (srv *orderService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// ListUserOrders returns all orders placed by the given member, newest first.
func (srv *orderService) ListUserOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user orders")
	}

	return orders, nil
}

// ListOpenOrders returns every order still awaiting settlement.
func (srv *orderService) ListOpenOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListOpen(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list open orders")
	}

	return orders, nil
}

// UpdateOrder edits an open order. The line price is recomputed from the
// current menu, so a changed catalog price shows up on the edited order.
func (srv *orderService) UpdateOrder(ctx context.Context, input *usecase.UpdateOrderInput) (*entity.Order, error) {
	price, err := srv.priceFor(input.Item, input.Quantity)
	if err != nil {
		return nil, err
	}

	var updated *entity.Order
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		order, err := orderRepo.FindByID(ctx, input.OrderID)
		if err != nil {
			return errors.Wrap(err, "failed to load order for update")
		}
		if err := authorizeOrderChange(order, input.ActorID, input.ActorRole); err != nil {
			return err
		}

		order.Item = input.Item
		order.Quantity = input.Quantity
		order.Price = price

		if err := orderRepo.Update(ctx, order); err != nil {
			return errors.Wrap(err, "failed to update order")
		}
		updated = order

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Order update failed", slog.Any("orderID", input.OrderID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute order update transaction")
	}

	return updated, nil
}

// CancelOrder removes an open order.
func (srv *orderService) CancelOrder(ctx context.Context, input *usecase.CancelOrderInput) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		order, err := orderRepo.FindByID(ctx, input.OrderID)
		if err != nil {
			return errors.Wrap(err, "failed to load order for cancellation")
		}
		if err := authorizeOrderChange(order, input.ActorID, input.ActorRole); err != nil {
			return err
		}

		return orderRepo.Delete(ctx, order.ID)
	})
	if err != nil {
		srv.log(ctx).Warn("Order cancellation failed", slog.Any("orderID", input.OrderID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute order cancellation transaction")
	}

	srv.log(ctx).Info("Order cancelled", slog.Any("orderID", input.OrderID))

	return nil
}

// CloseOrder marks a single order as settled without running a receipt.
// Closing an already closed order succeeds without touching it.
func (srv *orderService) CloseOrder(ctx context.Context, input *usecase.CloseOrderInput) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		order, err := orderRepo.FindByID(ctx, input.OrderID)
		if err != nil {
			return errors.Wrap(err, "failed to load order for closing")
		}
		if order.UserID != input.ActorID && input.ActorRole != entity.RoleAdmin {
			return errors.Wrap(domainerrors.ErrForbidden, "order belongs to another member")
		}
		if !order.IsOpen() {
			return nil
		}

		return orderRepo.CloseByIDs(ctx, []uuid.UUID{order.ID})
	})
	if err != nil {
		srv.log(ctx).Warn("Order closing failed", slog.Any("orderID", input.OrderID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute order closing transaction")
	}

	return nil
}

// priceFor validates the item and quantity against the menu and returns
// the line total.
func (srv *orderService) priceFor(item string, quantity int) (decimal.Decimal, error) {
	if quantity < 1 {
		return decimal.Zero, errors.Wrap(domainerrors.ErrInvalidQuantity, "quantity must be at least 1")
	}

	unit, ok := srv.menu.Price(item)
	if !ok {
		return decimal.Zero, errors.Wrapf(domainerrors.ErrUnknownItem, "item %q is not on the menu", item)
	}

	return unit.Mul(decimal.NewFromInt(int64(quantity))), nil
}

// authorizeOrderChange enforces that only the owner or an administrator
// touches an order, and only while it is still open.
func authorizeOrderChange(order *entity.Order, actorID uuid.UUID, actorRole entity.Role) error {
	if order.UserID != actorID && actorRole != entity.RoleAdmin {
		return errors.Wrap(domainerrors.ErrForbidden, "order belongs to another member")
	}
	if !order.IsOpen() {
		return errors.Wrap(domainerrors.ErrOrderClosed, "settled orders cannot be changed")
	}

	return nil
}
