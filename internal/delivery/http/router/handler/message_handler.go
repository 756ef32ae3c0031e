package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"brewclub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// MessageHandlerParams holds dependencies for MessageHandler, injected by Fx.
type MessageHandlerParams struct {
	fx.In

	MessageUC usecase.MessageUsecase
	Logger    *slog.Logger
}

// MessageHandler receives inbound text messages from the messaging gateway.
type MessageHandler struct {
	messageUC usecase.MessageUsecase
	logger    *slog.Logger
}

// NewMessageHandler is the constructor for MessageHandler.
func NewMessageHandler(params MessageHandlerParams) *MessageHandler {
	return &MessageHandler{
		messageUC: params.MessageUC,
		logger:    params.Logger,
	}
}

// Receive handles the gateway webhook. The gateway posts form fields
// "From" and "Body"; the reply body is sent back to the member as a text
// message.
func (h *MessageHandler) Receive(c echo.Context) error {
	from := normalizeSender(c.FormValue("From"))
	body := c.FormValue("Body")

	reply, err := h.messageUC.HandleMessage(c.Request().Context(), &usecase.InboundMessageInput{
		From: from,
		Body: body,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.String(http.StatusOK, reply.Body)
}

// normalizeSender strips the gateway channel prefix, turning
// "whatsapp:+4915111111" into "+4915111111".
func normalizeSender(from string) string {
	parts := strings.Split(from, ":")

	return parts[len(parts)-1]
}
