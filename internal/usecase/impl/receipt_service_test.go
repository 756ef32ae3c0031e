package impl

import (
	"context"
	"testing"
	"time"

	"brewclub/internal/domain/entity"
	domainerrors "brewclub/internal/domain/errors"
	"brewclub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type receiptTestEnv struct {
	userRepo    *fakeUserRepo
	orderRepo   *fakeOrderRepo
	receiptRepo *fakeReceiptRepo
	archive     *fakeArchive
	mailer      *fakeMailer
	service     usecase.ReceiptUsecase
}

func newReceiptTestEnv(t *testing.T, at time.Time) *receiptTestEnv {
	t.Helper()

	userRepo := newFakeUserRepo()
	orderRepo := newFakeOrderRepo()
	receiptRepo := newFakeReceiptRepo()
	archive := newFakeArchive()
	mailer := &fakeMailer{}
	factory := &fakeRepoFactory{
		userRepo:    userRepo,
		orderRepo:   orderRepo,
		receiptRepo: receiptRepo,
	}

	svc := NewReceiptService(ReceiptServiceParams{
		TxManager:   &fakeTxManager{factory: factory},
		ReceiptRepo: receiptRepo,
		OrderRepo:   orderRepo,
		UserRepo:    userRepo,
		Archive:     archive,
		Mailer:      mailer,
		Logger:      discardLogger(),
	})
	svc.(*receiptService).now = func() time.Time { return at }

	return &receiptTestEnv{
		userRepo:    userRepo,
		orderRepo:   orderRepo,
		receiptRepo: receiptRepo,
		archive:     archive,
		mailer:      mailer,
		service:     svc,
	}
}

func (env *receiptTestEnv) addUser(t *testing.T, name string) *entity.User {
	t.Helper()

	user := &entity.User{Name: name, Email: name + "@example.com", Role: entity.RoleMember}
	require.NoError(t, env.userRepo.Create(context.Background(), user))

	return user
}

func (env *receiptTestEnv) addOpenOrder(t *testing.T, userID uuid.UUID, item string, quantity int, price int64) *entity.Order {
	t.Helper()

	order := &entity.Order{
		UserID:   userID,
		Item:     item,
		Quantity: quantity,
		Price:    decimal.NewFromInt(price),
		PlacedOn: "August 31, 2026",
		Status:   entity.OrderStatusOpen,
	}
	require.NoError(t, env.orderRepo.Create(context.Background(), order))

	return order
}

func TestReceiptService_MakeReceipt(t *testing.T) {
	at := time.Date(2026, time.August, 31, 10, 30, 0, 0, time.UTC)
	env := newReceiptTestEnv(t, at)

	ann := env.addUser(t, "Ann")
	bob := env.addUser(t, "Bob")
	env.addOpenOrder(t, ann.ID, "Cappuccino", 2, 6)
	env.addOpenOrder(t, bob.ID, "Latte", 1, 1)

	receipt, err := env.service.MakeReceipt(context.Background(), ann.ID)
	require.NoError(t, err)

	assert.Equal(t, ann.ID, receipt.UserID)
	assert.Equal(t, "August 31, 2026_Ann", receipt.Number)
	assert.True(t, receipt.Total.Equal(decimal.NewFromInt(7)))
	require.Len(t, receipt.Items, 2)

	// Every snapshotted order is closed, regardless of who placed it.
	open, err := env.orderRepo.ListOpen(context.Background())
	require.NoError(t, err)
	assert.Empty(t, open)

	// The artifact lands in the archive under the compacted number.
	artifact, ok := env.archive.stored["August312026_Ann.txt"]
	require.True(t, ok)
	assert.Equal(t,
		"Summary of (Coffee_Type, Quantity, Price)\n"+
			"[(Cappuccino, 2, 6), (Latte, 1, 1)]\n"+
			"Total Price: 7",
		string(artifact),
	)
}

func TestReceiptService_MakeReceipt_EmptySnapshot(t *testing.T) {
	at := time.Date(2026, time.August, 31, 10, 30, 0, 0, time.UTC)
	env := newReceiptTestEnv(t, at)
	ann := env.addUser(t, "Ann")

	receipt, err := env.service.MakeReceipt(context.Background(), ann.ID)
	require.NoError(t, err)

	assert.Empty(t, receipt.Items)
	assert.True(t, receipt.Total.IsZero())

	stored, err := env.receiptRepo.FindByID(context.Background(), receipt.ID)
	require.NoError(t, err)
	assert.Equal(t, "August 31, 2026_Ann", stored.Number)
}

func TestReceiptService_MakeReceipt_LeavesLaterOrdersOpen(t *testing.T) {
	at := time.Date(2026, time.August, 31, 10, 30, 0, 0, time.UTC)
	env := newReceiptTestEnv(t, at)
	ann := env.addUser(t, "Ann")
	env.addOpenOrder(t, ann.ID, "Mocha", 1, 2)

	_, err := env.service.MakeReceipt(context.Background(), ann.ID)
	require.NoError(t, err)

	// An order placed after settlement belongs to the next receipt.
	late := env.addOpenOrder(t, ann.ID, "Latte", 1, 1)

	open, err := env.orderRepo.ListOpen(context.Background())
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, late.ID, open[0].ID)
}

func TestReceiptService_MakeReceipt_ArchiveFailureIsNonFatal(t *testing.T) {
	at := time.Date(2026, time.August, 31, 10, 30, 0, 0, time.UTC)
	env := newReceiptTestEnv(t, at)
	env.archive.err = errors.New("disk full")
	ann := env.addUser(t, "Ann")
	env.addOpenOrder(t, ann.ID, "Latte", 1, 1)

	receipt, err := env.service.MakeReceipt(context.Background(), ann.ID)
	require.NoError(t, err)
	assert.True(t, receipt.Total.Equal(decimal.NewFromInt(1)))

	// Settlement still closed the orders.
	open, err := env.orderRepo.ListOpen(context.Background())
	require.NoError(t, err)
	assert.Empty(t, open)
}

func TestReceiptService_MakeReceipt_UnknownUser(t *testing.T) {
	env := newReceiptTestEnv(t, time.Now())

	_, err := env.service.MakeReceipt(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestReceiptService_Summary_ClosesNothing(t *testing.T) {
	at := time.Date(2026, time.August, 31, 10, 30, 0, 0, time.UTC)
	env := newReceiptTestEnv(t, at)
	ann := env.addUser(t, "Ann")
	fay := &entity.User{Name: "Fay", Email: "fay@example.com", Fetcher: true, Role: entity.RoleMember}
	require.NoError(t, env.userRepo.Create(context.Background(), fay))
	env.addOpenOrder(t, ann.ID, "Cappuccino", 2, 6)

	require.NoError(t, env.service.Summary(context.Background()))

	require.Len(t, env.mailer.sent, 1)
	mail := env.mailer.sent[0]
	assert.Equal(t, "Coffee Order Summary!", mail.Subject)
	assert.Equal(t, []string{"fay@example.com"}, mail.To)
	assert.Equal(t,
		"Summary of (Coffee_Type, Quantity, Price)\n"+
			"[(Cappuccino, 2, 6)]\n"+
			"Total Price: 6",
		mail.Body,
	)

	// The summary is reporting only; the orders stay open.
	open, err := env.orderRepo.ListOpen(context.Background())
	require.NoError(t, err)
	assert.Len(t, open, 1)
}

func TestReceiptService_Summary_NoFetcher(t *testing.T) {
	env := newReceiptTestEnv(t, time.Now())
	ann := env.addUser(t, "Ann")
	env.addOpenOrder(t, ann.ID, "Latte", 1, 1)

	err := env.service.Summary(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNoFetcher))
	assert.Empty(t, env.mailer.sent)
}

func TestReceiptService_GetReceipt_Ownership(t *testing.T) {
	at := time.Date(2026, time.August, 31, 10, 30, 0, 0, time.UTC)
	env := newReceiptTestEnv(t, at)
	ann := env.addUser(t, "Ann")
	bob := env.addUser(t, "Bob")

	receipt, err := env.service.MakeReceipt(context.Background(), ann.ID)
	require.NoError(t, err)

	_, err = env.service.GetReceipt(context.Background(), &usecase.GetReceiptInput{
		ReceiptID: receipt.ID,
		ActorID:   ann.ID,
		ActorRole: entity.RoleMember,
	})
	assert.NoError(t, err)

	_, err = env.service.GetReceipt(context.Background(), &usecase.GetReceiptInput{
		ReceiptID: receipt.ID,
		ActorID:   bob.ID,
		ActorRole: entity.RoleMember,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	_, err = env.service.GetReceipt(context.Background(), &usecase.GetReceiptInput{
		ReceiptID: receipt.ID,
		ActorID:   bob.ID,
		ActorRole: entity.RoleAdmin,
	})
	assert.NoError(t, err)
}
