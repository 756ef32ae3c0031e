package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"brewclub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMessageUsecase struct {
	gotFrom string
	gotBody string
	reply   string
}

func (s *stubMessageUsecase) HandleMessage(_ context.Context, input *usecase.InboundMessageInput) (*usecase.MessageReply, error) {
	s.gotFrom = input.From
	s.gotBody = input.Body

	return &usecase.MessageReply{Body: s.reply}, nil
}

func postWebhook(t *testing.T, h *MessageHandler, from, body string) *httptest.ResponseRecorder {
	t.Helper()

	form := url.Values{}
	form.Set("From", from)
	form.Set("Body", body)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/sms", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Receive(e.NewContext(req, rec)))

	return rec
}

func TestMessageHandler_Receive(t *testing.T) {
	stub := &stubMessageUsecase{reply: "Received from ('Ann', '+4915111111') an order for Cappuccino-2"}
	h := NewMessageHandler(MessageHandlerParams{
		MessageUC: stub,
		Logger:    slog.New(slog.DiscardHandler),
	})

	rec := postWebhook(t, h, "whatsapp:+4915111111", "Cappuccino-2")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, stub.reply, rec.Body.String())
	// The channel prefix is stripped before the sender is looked up.
	assert.Equal(t, "+4915111111", stub.gotFrom)
	assert.Equal(t, "Cappuccino-2", stub.gotBody)
}

func TestNormalizeSender(t *testing.T) {
	assert.Equal(t, "+4915111111", normalizeSender("whatsapp:+4915111111"))
	assert.Equal(t, "+4915111111", normalizeSender("+4915111111"))
}
