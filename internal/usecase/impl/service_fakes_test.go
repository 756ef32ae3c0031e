package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"brewclub/internal/domain/entity"
	domainerrors "brewclub/internal/domain/errors"
	"brewclub/internal/domain/repository"
	"brewclub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// The fakes below back the service tests with in-memory state so the
// business rules can be exercised without a database.

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
	seq   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, domainerrors.ErrUserNotFound
	}
	cloned := *user

	return &cloned, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			cloned := *user

			return &cloned, nil
		}
	}

	return nil, domainerrors.ErrUserNotFound
}

func (r *fakeUserRepo) FindByMobile(_ context.Context, mobile string) (*entity.User, error) {
	var found *entity.User
	for _, user := range r.users {
		if user.Mobile != mobile {
			continue
		}
		if found == nil || user.CreatedAt.Before(found.CreatedAt) {
			found = user
		}
	}
	if found == nil {
		return nil, domainerrors.ErrUserNotFound
	}
	cloned := *found

	return &cloned, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]*entity.User, error) {
	users := make([]*entity.User, 0, len(r.users))
	for _, user := range r.users {
		cloned := *user
		users = append(users, &cloned)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Name < users[j].Name })

	return users, nil
}

func (r *fakeUserRepo) ListFetchers(_ context.Context) ([]*entity.User, error) {
	users := make([]*entity.User, 0)
	for _, user := range r.users {
		if user.Fetcher {
			cloned := *user
			users = append(users, &cloned)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Email < users[j].Email })

	return users, nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return domainerrors.ErrUserAlreadyExists
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.seq++
	user.CreatedAt = time.Date(2026, time.August, 1, 8, 0, 0, 0, time.UTC).Add(time.Duration(r.seq) * time.Minute)
	user.UpdatedAt = user.CreatedAt
	cloned := *user
	r.users[user.ID] = &cloned

	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domainerrors.ErrUserNotFound
	}
	cloned := *user
	r.users[user.ID] = &cloned

	return nil
}

type fakeOrderRepo struct {
	orders map[uuid.UUID]*entity.Order
	seq    int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uuid.UUID]*entity.Order)}
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, domainerrors.ErrOrderNotFound
	}
	cloned := *order

	return &cloned, nil
}

func (r *fakeOrderRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders := make([]*entity.Order, 0)
	for _, order := range r.orders {
		if order.UserID == userID {
			cloned := *order
			orders = append(orders, &cloned)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].CreatedAt.After(orders[j].CreatedAt) })

	return orders, nil
}

func (r *fakeOrderRepo) List(_ context.Context) ([]*entity.Order, error) {
	orders := make([]*entity.Order, 0, len(r.orders))
	for _, order := range r.orders {
		cloned := *order
		orders = append(orders, &cloned)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].CreatedAt.After(orders[j].CreatedAt) })

	return orders, nil
}

func (r *fakeOrderRepo) ListOpen(_ context.Context) ([]*entity.Order, error) {
	orders := make([]*entity.Order, 0)
	for _, order := range r.orders {
		if order.Status == entity.OrderStatusOpen {
			cloned := *order
			orders = append(orders, &cloned)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].CreatedAt.Before(orders[j].CreatedAt) })

	return orders, nil
}

func (r *fakeOrderRepo) ListOpenLocked(ctx context.Context) ([]*entity.Order, error) {
	return r.ListOpen(ctx)
}

func (r *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	r.seq++
	order.CreatedAt = time.Date(2026, time.August, 1, 9, 0, 0, 0, time.UTC).Add(time.Duration(r.seq) * time.Minute)
	order.UpdatedAt = order.CreatedAt
	cloned := *order
	r.orders[order.ID] = &cloned

	return nil
}

func (r *fakeOrderRepo) Update(_ context.Context, order *entity.Order) error {
	if _, ok := r.orders[order.ID]; !ok {
		return domainerrors.ErrOrderNotFound
	}
	cloned := *order
	r.orders[order.ID] = &cloned

	return nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.orders[id]; !ok {
		return domainerrors.ErrOrderNotFound
	}
	delete(r.orders, id)

	return nil
}

func (r *fakeOrderRepo) CloseByIDs(_ context.Context, ids []uuid.UUID) error {
	for _, id := range ids {
		if order, ok := r.orders[id]; ok {
			order.Status = entity.OrderStatusClosed
		}
	}

	return nil
}

type fakeReceiptRepo struct {
	receipts map[uuid.UUID]*entity.Receipt
	seq      int
}

func newFakeReceiptRepo() *fakeReceiptRepo {
	return &fakeReceiptRepo{receipts: make(map[uuid.UUID]*entity.Receipt)}
}

func (r *fakeReceiptRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Receipt, error) {
	receipt, ok := r.receipts[id]
	if !ok {
		return nil, domainerrors.ErrReceiptNotFound
	}
	cloned := *receipt

	return &cloned, nil
}

func (r *fakeReceiptRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*entity.Receipt, error) {
	receipts := make([]*entity.Receipt, 0)
	for _, receipt := range r.receipts {
		if receipt.UserID == userID {
			cloned := *receipt
			receipts = append(receipts, &cloned)
		}
	}

	return receipts, nil
}

func (r *fakeReceiptRepo) List(_ context.Context) ([]*entity.Receipt, error) {
	receipts := make([]*entity.Receipt, 0, len(r.receipts))
	for _, receipt := range r.receipts {
		cloned := *receipt
		receipts = append(receipts, &cloned)
	}

	return receipts, nil
}

func (r *fakeReceiptRepo) Create(_ context.Context, receipt *entity.Receipt) error {
	if receipt.ID == uuid.Nil {
		receipt.ID = uuid.New()
	}
	r.seq++
	receipt.CreatedAt = time.Date(2026, time.August, 1, 10, 0, 0, 0, time.UTC).Add(time.Duration(r.seq) * time.Minute)
	cloned := *receipt
	r.receipts[receipt.ID] = &cloned

	return nil
}

// fakeRepoFactory hands the same in-memory repositories to transactional
// and direct callers, so both observe one state.
type fakeRepoFactory struct {
	userRepo    *fakeUserRepo
	orderRepo   *fakeOrderRepo
	receiptRepo *fakeReceiptRepo
}

func (f *fakeRepoFactory) NewUserRepository() repository.UserRepository       { return f.userRepo }
func (f *fakeRepoFactory) NewOrderRepository() repository.OrderRepository     { return f.orderRepo }
func (f *fakeRepoFactory) NewReceiptRepository() repository.ReceiptRepository { return f.receiptRepo }

type fakeTxManager struct {
	factory *fakeRepoFactory
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (fakeHasher) Check(password, hash string) bool     { return "hashed:"+password == hash }

type fakeTokenService struct {
	issued map[string]*service.Claims
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{issued: make(map[string]*service.Claims)}
}

func (s *fakeTokenService) GenerateTokens(userID uuid.UUID, role string) (string, string, error) {
	access := "access-" + userID.String()
	refresh := "refresh-" + userID.String()
	s.issued[access] = &service.Claims{UserID: userID, Role: role, Type: service.TokenTypeAccess}
	s.issued[refresh] = &service.Claims{UserID: userID, Type: service.TokenTypeRefresh}

	return access, refresh, nil
}

func (s *fakeTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims, ok := s.issued[tokenString]
	if !ok {
		return nil, errors.New("unknown token")
	}

	return claims, nil
}

type sentMail struct {
	To      []string
	Subject string
	Body    string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (m *fakeMailer) Send(_ context.Context, to []string, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})

	return nil
}

type fakeArchive struct {
	stored map[string][]byte
	err    error
}

func newFakeArchive() *fakeArchive {
	return &fakeArchive{stored: make(map[string][]byte)}
}

func (a *fakeArchive) Store(_ context.Context, key string, body []byte) error {
	if a.err != nil {
		return a.err
	}
	a.stored[key] = body

	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
