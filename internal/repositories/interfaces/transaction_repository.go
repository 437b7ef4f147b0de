package interfaces

import (
	"context"

	"shopperks/internal/models"
	"shopperks/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TransactionRepository is the single source of truth for a transaction's
// current status; the state machine consults it before every transition.
type TransactionRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, transaction *models.Transaction) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Transaction, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error

	// UpdateStatus moves the record from one status to another as a
	// compare-and-set: the write only lands if the stored status still
	// equals from, otherwise ErrStatusConflict is returned.
	UpdateStatus(ctx context.Context, id primitive.ObjectID, from, to models.TransactionStatus, reviewedBy *primitive.ObjectID) error

	// Customer history
	GetByCustomerID(ctx context.Context, customerID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Transaction, int64, error)

	// Reviewer queue
	GetByStatus(ctx context.Context, status models.TransactionStatus, params *utils.PaginationParams) ([]*models.Transaction, int64, error)
	GetByCampaignID(ctx context.Context, campaignID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Transaction, int64, error)
}
