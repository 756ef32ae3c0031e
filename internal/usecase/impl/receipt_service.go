package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "brewclub/internal/delivery/context"
	"brewclub/internal/domain/entity"
	domainerrors "brewclub/internal/domain/errors"
	"brewclub/internal/domain/repository"
	"brewclub/internal/domain/service"
	"brewclub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// summaryMailTitle is the subject line of the fetcher summary mail.
const summaryMailTitle = "Coffee Order Summary!"

// receiptService implements the ReceiptUsecase interface.
type receiptService struct {
	txManager   repository.TransactionManager
	receiptRepo repository.ReceiptRepository
	orderRepo   repository.OrderRepository
	userRepo    repository.UserRepository
	archive     service.ReceiptArchive
	mailer      service.Mailer
	logger      *slog.Logger
	now         func() time.Time
}

// ReceiptServiceParams holds dependencies for receiptService, injected by Fx.
type ReceiptServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ReceiptRepo repository.ReceiptRepository
	OrderRepo   repository.OrderRepository
	UserRepo    repository.UserRepository
	Archive     service.ReceiptArchive
	Mailer      service.Mailer
	Logger      *slog.Logger
}

// NewReceiptService is the constructor for receiptService.
func NewReceiptService(params ReceiptServiceParams) usecase.ReceiptUsecase {
	return &receiptService{
		txManager:   params.TxManager,
		receiptRepo: params.ReceiptRepo,
		orderRepo:   params.OrderRepo,
		userRepo:    params.UserRepo,
		archive:     params.Archive,
		mailer:      params.Mailer,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *receiptService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// MakeReceipt settles every open order in one transaction: the open set is
// snapshotted under row locks, summed, recorded as a receipt owned by the
// settling member, and closed. Orders placed after the snapshot stay open
// for the next settlement. A receipt is written even when nothing is open.
func (srv *receiptService) MakeReceipt(ctx context.Context, userID uuid.UUID) (*entity.Receipt, error) {
	var receipt *entity.Receipt

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		orderRepo := repoFactory.NewOrderRepository()
		receiptRepo := repoFactory.NewReceiptRepository()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to load settling member")
		}

		openOrders, err := orderRepo.ListOpenLocked(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to snapshot open orders")
		}

		items := make([]entity.ReceiptItem, 0, len(openOrders))
		ids := make([]uuid.UUID, 0, len(openOrders))
		for _, order := range openOrders {
			items = append(items, entity.ReceiptItem{
				Item:     order.Item,
				Quantity: order.Quantity,
				Price:    order.Price,
			})
			ids = append(ids, order.ID)
		}

		receipt = &entity.Receipt{
			UserID: user.ID,
			Number: entity.NewReceiptNumber(srv.now(), user.Name),
			Items:  items,
			Total:  entity.TotalOf(items),
		}

		if err := receiptRepo.Create(ctx, receipt); err != nil {
			return errors.Wrap(err, "failed to record receipt")
		}

		return orderRepo.CloseByIDs(ctx, ids)
	})
	if err != nil {
		srv.log(ctx).Error("Settlement failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute settlement transaction")
	}

	// The artifact is written after commit. Settlement already succeeded,
	// so an archive failure is logged instead of surfaced.
	if err := srv.archive.Store(ctx, receipt.ArchiveKey(), []byte(receipt.ArtifactText())); err != nil {
		srv.log(ctx).Error("Failed to archive receipt artifact",
			slog.Any("receiptID", receipt.ID),
			slog.String("key", receipt.ArchiveKey()),
			slog.Any("error", err),
		)
	}

	srv.log(ctx).Info("Receipt settled",
		slog.Any("receiptID", receipt.ID),
		slog.String("number", receipt.Number),
		slog.Int("orders", len(receipt.Items)),
		slog.String("total", receipt.Total.String()),
	)

	return receipt, nil
}

// Summary mails the current open-order overview to every fetcher. Nothing
// is closed; the same orders show up again on the next summary or receipt.
func (srv *receiptService) Summary(ctx context.Context) error {
	openOrders, err := srv.orderRepo.ListOpen(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load open orders for summary")
	}

	items := make([]entity.ReceiptItem, 0, len(openOrders))
	for _, order := range openOrders {
		items = append(items, entity.ReceiptItem{
			Item:     order.Item,
			Quantity: order.Quantity,
			Price:    order.Price,
		})
	}

	fetchers, err := srv.userRepo.ListFetchers(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load fetchers for summary")
	}
	if len(fetchers) == 0 {
		return errors.Wrap(domainerrors.ErrNoFetcher, "no member is flagged as fetcher")
	}

	recipients := make([]string, 0, len(fetchers))
	for _, fetcher := range fetchers {
		recipients = append(recipients, fetcher.Email)
	}

	mailText := "Summary of (Coffee_Type, Quantity, Price)\n" +
		entity.FormatItems(items) +
		"\nTotal Price: " + entity.TotalOf(items).String()

	if err := srv.mailer.Send(ctx, recipients, summaryMailTitle, mailText); err != nil {
		return errors.Wrap(err, "failed to send summary mail")
	}

	srv.log(ctx).Info("Summary mail sent", slog.Int("recipients", len(recipients)), slog.Int("openOrders", len(items)))

	return nil
}

// GetReceipt loads a receipt; members only see their own, administrators any.
func (srv *receiptService) GetReceipt(ctx context.Context, input *usecase.GetReceiptInput) (*entity.Receipt, error) {
	receipt, err := srv.receiptRepo.FindByID(ctx, input.ReceiptID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load receipt")
	}

	if receipt.UserID != input.ActorID && input.ActorRole != entity.RoleAdmin {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "receipt belongs to another member")
	}

	return receipt, nil
}

// ListUserReceipts returns the receipts settled by the given member.
func (srv *receiptService) ListUserReceipts(ctx context.Context, userID uuid.UUID) ([]*entity.Receipt, error) {
	receipts, err := srv.receiptRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user receipts")
	}

	return receipts, nil
}

// ListReceipts returns every receipt, for the admin overview.
func (srv *receiptService) ListReceipts(ctx context.Context) ([]*entity.Receipt, error) {
	receipts, err := srv.receiptRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list receipts")
	}

	return receipts, nil
}
