package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"shopperks/internal/models"
	"shopperks/internal/repositories/interfaces"
	"shopperks/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type transactionRepository struct {
	mu           sync.RWMutex
	transactions map[primitive.ObjectID]*models.Transaction
}

func NewTransactionRepository() interfaces.TransactionRepository {
	return &transactionRepository{
		transactions: make(map[primitive.ObjectID]*models.Transaction),
	}
}

func (r *transactionRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	transaction.ID = primitive.NewObjectID()
	transaction.Status = models.TransactionStatusPending
	transaction.CreatedAt = time.Now()
	transaction.UpdatedAt = time.Now()

	clone := *transaction
	r.transactions[transaction.ID] = &clone

	return nil
}

func (r *transactionRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	transaction, ok := r.transactions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", interfaces.ErrTransactionNotFound, id.Hex())
	}

	clone := *transaction
	return &clone, nil
}

func (r *transactionRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	transaction, ok := r.transactions[id]
	if !ok {
		return fmt.Errorf("%w: %s", interfaces.ErrTransactionNotFound, id.Hex())
	}

	for field, value := range updates {
		switch field {
		case "notes":
			transaction.Notes, _ = value.(string)
		case "bill_image_url":
			transaction.BillImageURL, _ = value.(string)
		}
	}
	transaction.UpdatedAt = time.Now()

	return nil
}

func (r *transactionRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, from, to models.TransactionStatus, reviewedBy *primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	transaction, ok := r.transactions[id]
	if !ok {
		return fmt.Errorf("%w: %s", interfaces.ErrTransactionNotFound, id.Hex())
	}
	if transaction.Status != from {
		return fmt.Errorf("%w: %s", interfaces.ErrStatusConflict, id.Hex())
	}

	now := time.Now()
	transaction.Status = to
	transaction.ReviewedBy = reviewedBy
	transaction.ReviewedAt = &now
	transaction.UpdatedAt = now

	return nil
}

func (r *transactionRepository) GetByCustomerID(ctx context.Context, customerID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Transaction, int64, error) {
	return r.filter(func(t *models.Transaction) bool { return t.CustomerID == customerID }, params)
}

func (r *transactionRepository) GetByStatus(ctx context.Context, status models.TransactionStatus, params *utils.PaginationParams) ([]*models.Transaction, int64, error) {
	return r.filter(func(t *models.Transaction) bool { return t.Status == status }, params)
}

func (r *transactionRepository) GetByCampaignID(ctx context.Context, campaignID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Transaction, int64, error) {
	return r.filter(func(t *models.Transaction) bool {
		return t.CampaignID != nil && *t.CampaignID == campaignID
	}, params)
}

func (r *transactionRepository) filter(match func(*models.Transaction) bool, params *utils.PaginationParams) ([]*models.Transaction, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*models.Transaction
	for _, transaction := range r.transactions {
		if match(transaction) {
			clone := *transaction
			matched = append(matched, &clone)
		}
	}

	total := int64(len(matched))
	matched = paginate(matched, func(t *models.Transaction) time.Time { return t.CreatedAt }, params)

	return matched, total, nil
}
