package handler

import (
	"log/slog"
	"net/http"

	"brewclub/internal/delivery/http/response"
	"brewclub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ReceiptHandlerParams holds dependencies for ReceiptHandler, injected by Fx.
type ReceiptHandlerParams struct {
	fx.In

	ReceiptUC usecase.ReceiptUsecase
	Logger    *slog.Logger
}

// ReceiptHandler holds dependencies for receipt-related handlers.
type ReceiptHandler struct {
	receiptUC usecase.ReceiptUsecase
	logger    *slog.Logger
}

// NewReceiptHandler is the constructor for ReceiptHandler.
func NewReceiptHandler(params ReceiptHandlerParams) *ReceiptHandler {
	return &ReceiptHandler{
		receiptUC: params.ReceiptUC,
		logger:    params.Logger,
	}
}

// MakeReceipt settles every open order into a receipt owned by the
// authenticated member.
func (h *ReceiptHandler) MakeReceipt(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}

	receipt, err := h.receiptUC.MakeReceipt(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, receipt, "Receipt created successfully")
}

// GetReceipt returns a single receipt, subject to ownership checks.
func (h *ReceiptHandler) GetReceipt(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}

	receiptID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid receipt ID")
	}

	receipt, err := h.receiptUC.GetReceipt(c.Request().Context(), &usecase.GetReceiptInput{
		ReceiptID: receiptID,
		ActorID:   userID,
		ActorRole: actorRole(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, receipt, "Receipt retrieved successfully")
}

// ListMyReceipts returns the authenticated member's receipts.
func (h *ReceiptHandler) ListMyReceipts(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}

	receipts, err := h.receiptUC.ListUserReceipts(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, receipts, "Receipts retrieved successfully")
}

// ListReceipts returns every receipt. Administrators only.
func (h *ReceiptHandler) ListReceipts(c echo.Context) error {
	receipts, err := h.receiptUC.ListReceipts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, receipts, "Receipts retrieved successfully")
}
