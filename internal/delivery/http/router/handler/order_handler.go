package handler

import (
	"log/slog"
	"net/http"

	"brewclub/internal/delivery/http/response"
	"brewclub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// PlaceOrderRequest represents the request body for placing an order
type PlaceOrderRequest struct {
	Item     string `json:"item" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

// UpdateOrderRequest represents the request body for editing an open order
type UpdateOrderRequest struct {
	Item     string `json:"item" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

// MenuItem is one catalog entry in the menu response
type MenuItem struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Menu returns the coffee catalog.
func (h *OrderHandler) Menu(c echo.Context) error {
	items := h.orderUC.Menu(c.Request().Context())

	menu := make([]MenuItem, 0, len(items))
	for _, item := range items {
		menu = append(menu, MenuItem{Name: item.Name, Price: item.Price})
	}

	return response.Success(c, http.StatusOK, menu, "Menu retrieved successfully")
}

// PlaceOrder records a new open order for the authenticated member.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}

	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	order, err := h.orderUC.PlaceOrder(c.Request().Context(), &usecase.PlaceOrderInput{
		UserID:   userID,
		Item:     req.Item,
		Quantity: req.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed successfully")
}

// ListOrders returns every order, newest first. The club shows all orders
// to every member.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.orderUC.ListOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// ListMyOrders returns the authenticated member's orders, newest first.
func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}

	orders, err := h.orderUC.ListUserOrders(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// ListOpenOrders returns every order still awaiting settlement. Administrators only.
func (h *OrderHandler) ListOpenOrders(c echo.Context) error {
	orders, err := h.orderUC.ListOpenOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Open orders retrieved successfully")
}

// UpdateOrder edits an open order.
func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req UpdateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	order, err := h.orderUC.UpdateOrder(c.Request().Context(), &usecase.UpdateOrderInput{
		OrderID:   orderID,
		ActorID:   userID,
		ActorRole: actorRole(c),
		Item:      req.Item,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order updated successfully")
}

// CloseOrder settles a single order without running a receipt.
func (h *OrderHandler) CloseOrder(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	if err := h.orderUC.CloseOrder(c.Request().Context(), &usecase.CloseOrderInput{
		OrderID:   orderID,
		ActorID:   userID,
		ActorRole: actorRole(c),
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Order closed"}, "Order closed successfully")
}

// CancelOrder withdraws an open order.
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	if err := h.orderUC.CancelOrder(c.Request().Context(), &usecase.CancelOrderInput{
		OrderID:   orderID,
		ActorID:   userID,
		ActorRole: actorRole(c),
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Order cancelled"}, "Order cancelled successfully")
}
