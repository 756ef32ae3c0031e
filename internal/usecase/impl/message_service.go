package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"brewclub/config"
	deliverycontext "brewclub/internal/delivery/context"
	"brewclub/internal/domain/catalog"
	"brewclub/internal/domain/entity"
	domainerrors "brewclub/internal/domain/errors"
	"brewclub/internal/domain/repository"
	"brewclub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	// orderFormatReply answers any message the handler cannot turn into an order.
	orderFormatReply = "Error: Order not in menu or not in correct format."

	menuKeyword = "order"
)

// messageService implements the MessageUsecase interface. It parses
// "<item>-<quantity>" texts into open orders and, during the configured
// morning window, triggers the fetcher summary mail.
type messageService struct {
	userRepo  repository.UserRepository
	orderRepo repository.OrderRepository
	menu      *catalog.Catalog
	receipts  usecase.ReceiptUsecase
	summary   *config.SummaryConfig
	logger    *slog.Logger
	now       func() time.Time
}

// MessageServiceParams holds dependencies for messageService, injected by Fx.
type MessageServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	OrderRepo repository.OrderRepository
	Menu      *catalog.Catalog
	ReceiptUC usecase.ReceiptUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// NewMessageService is the constructor for messageService.
func NewMessageService(params MessageServiceParams) usecase.MessageUsecase {
	return &messageService{
		userRepo:  params.UserRepo,
		orderRepo: params.OrderRepo,
		menu:      params.Menu,
		receipts:  params.ReceiptUC,
		summary:   params.Config.Summary,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *messageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleMessage interprets one inbound text. Whatever the outcome, the
// open-order summary mail is attempted afterwards when the current hour
// falls inside the summary window; that is how the daily mail gets
// triggered without a scheduler.
func (srv *messageService) HandleMessage(ctx context.Context, input *usecase.InboundMessageInput) (*usecase.MessageReply, error) {
	reply, err := srv.handleBody(ctx, input)
	if err != nil {
		return nil, err
	}

	srv.maybeSendSummary(ctx)

	return reply, nil
}

func (srv *messageService) handleBody(ctx context.Context, input *usecase.InboundMessageInput) (*usecase.MessageReply, error) {
	if strings.EqualFold(strings.TrimSpace(input.Body), menuKeyword) {
		return &usecase.MessageReply{Body: srv.menuReply()}, nil
	}

	item, quantity, err := parseOrderBody(input.Body)
	if err != nil {
		srv.log(ctx).Debug("Unparseable order message", slog.String("body", input.Body), slog.Any("error", err))

		return &usecase.MessageReply{Body: orderFormatReply}, nil
	}

	unit, ok := srv.menu.Price(item)
	if !ok {
		return &usecase.MessageReply{Body: orderFormatReply}, nil
	}

	sender, err := srv.resolveSender(ctx, input.From)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUnknownSender) {
			srv.log(ctx).Warn("Message from unregistered mobile", slog.String("from", input.From))

			return &usecase.MessageReply{Body: orderFormatReply}, nil
		}

		return nil, err
	}

	order := &entity.Order{
		UserID:   sender.ID,
		Item:     item,
		Quantity: quantity,
		Price:    unit.Mul(decimal.NewFromInt(int64(quantity))),
		PlacedOn: srv.now().Format(entity.PlacedOnLayout),
		Status:   entity.OrderStatusOpen,
	}
	if err := srv.orderRepo.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order from message")
	}

	srv.log(ctx).Info("Order placed via message",
		slog.Any("orderID", order.ID),
		slog.String("item", item),
		slog.Int("quantity", quantity),
	)

	confirmation := fmt.Sprintf("Received from ('%s', '%s') an order for %s", sender.Name, input.From, input.Body)

	return &usecase.MessageReply{Body: confirmation}, nil
}

// resolveSender looks up the member registered with the given mobile number.
// A miss surfaces as ErrUnknownSender so callers can tell an unregistered
// sender apart from a lookup failure.
func (srv *messageService) resolveSender(ctx context.Context, mobile string) (*entity.User, error) {
	sender, err := srv.userRepo.FindByMobile(ctx, mobile)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrUnknownSender, "no member registered with %s", mobile)
		}

		return nil, errors.Wrap(err, "failed to look up message sender")
	}

	return sender, nil
}

// menuReply renders the ordering instructions plus the menu with prices.
func (srv *messageService) menuReply() string {
	var sb strings.Builder
	sb.WriteString("Please order in format coffee_type-quantity e.g. Cappuccino-3\n")
	for _, item := range srv.menu.Items() {
		sb.WriteString(item.Name)
		sb.WriteString(":")
		sb.WriteString(item.Price.String())
		sb.WriteString(" EUR\n")
	}

	return sb.String()
}

// parseOrderBody splits "<item>-<quantity>": the item is everything before
// the first dash, the quantity everything after the last one.
func parseOrderBody(body string) (item string, quantity int, err error) {
	first := strings.Index(body, "-")
	last := strings.LastIndex(body, "-")
	if first < 0 {
		return "", 0, errors.New("message has no dash separator")
	}

	item = body[:first]
	quantity, err = strconv.Atoi(strings.TrimSpace(body[last+1:]))
	if err != nil {
		return "", 0, errors.Wrap(err, "quantity is not a number")
	}
	if quantity < 1 {
		return "", 0, errors.New("quantity must be at least 1")
	}

	return item, quantity, nil
}

// maybeSendSummary triggers the fetcher summary mail when the local hour is
// inside the configured window. Failures never reach the message sender;
// they are logged and dropped.
func (srv *messageService) maybeSendSummary(ctx context.Context) {
	hour := srv.now().Hour()
	if srv.summary == nil || hour < srv.summary.StartHour || hour > srv.summary.EndHour {
		return
	}

	if err := srv.receipts.Summary(ctx); err != nil {
		if errors.Is(err, domainerrors.ErrNoFetcher) {
			srv.log(ctx).Warn("Summary skipped", slog.Any("error", err))

			return
		}

		srv.log(ctx).Error("Failed to send summary mail", slog.Any("error", err))
	}
}
