package postgres

import (
	"context"
	"encoding/json"

	"brewclub/internal/domain/entity"
	domainerrors "brewclub/internal/domain/errors"
	"brewclub/internal/domain/repository"
	"brewclub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// receiptRepository implements the domain.ReceiptRepository interface using GORM.
type receiptRepository struct {
	db *gorm.DB
}

// NewReceiptRepository is the constructor for receiptRepository.
func NewReceiptRepository(db *gorm.DB) repository.ReceiptRepository {
	return &receiptRepository{db: db}
}

// FindByID retrieves a single receipt by its unique ID.
func (repo *receiptRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	var receiptM model.ReceiptModel
	if err := repo.db.WithContext(ctx).First(&receiptM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrReceiptNotFound
		}

		return nil, errors.Wrap(err, "failed to find receipt by id")
	}

	return toReceiptDomain(&receiptM)
}

// ListByUser retrieves all receipts settled by the given user, newest first.
func (repo *receiptRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Receipt, error) {
	var receiptMs []model.ReceiptModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&receiptMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list receipts by user")
	}

	return toReceiptDomainSlice(receiptMs)
}

// List retrieves all receipts, newest first.
func (repo *receiptRepository) List(ctx context.Context) ([]*entity.Receipt, error) {
	var receiptMs []model.ReceiptModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&receiptMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list receipts")
	}

	return toReceiptDomainSlice(receiptMs)
}

// Create persists a new receipt entity to the database.
func (repo *receiptRepository) Create(ctx context.Context, receipt *entity.Receipt) error {
	receiptM, err := fromReceiptDomain(receipt)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(receiptM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("receipt references unknown user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create receipt")
	}

	receipt.ID = receiptM.ID
	receipt.CreatedAt = receiptM.CreatedAt

	return nil
}

// --- Mapper Functions ---

// toReceiptDomain converts a GORM ReceiptModel to a domain Receipt entity.
func toReceiptDomain(data *model.ReceiptModel) (*entity.Receipt, error) {
	if data == nil {
		return nil, nil
	}

	var items []entity.ReceiptItem
	if len(data.Items) > 0 {
		if err := json.Unmarshal(data.Items, &items); err != nil {
			return nil, errors.Wrap(err, "failed to decode receipt items")
		}
	}

	return &entity.Receipt{
		ID:        data.ID,
		UserID:    data.UserID,
		Number:    data.Number,
		Items:     items,
		Total:     data.Total,
		CreatedAt: data.CreatedAt,
	}, nil
}

func toReceiptDomainSlice(data []model.ReceiptModel) ([]*entity.Receipt, error) {
	receipts := make([]*entity.Receipt, 0, len(data))
	for i := range data {
		receipt, err := toReceiptDomain(&data[i])
		if err != nil {
			return nil, err
		}
		receipts = append(receipts, receipt)
	}

	return receipts, nil
}

// fromReceiptDomain converts a domain Receipt entity to a GORM ReceiptModel for persistence.
func fromReceiptDomain(data *entity.Receipt) (*model.ReceiptModel, error) {
	if data == nil {
		return nil, nil
	}

	items, err := json.Marshal(data.Items)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode receipt items")
	}

	return &model.ReceiptModel{
		ID:     data.ID,
		UserID: data.UserID,
		Number: data.Number,
		Items:  items,
		Total:  data.Total,
	}, nil
}
