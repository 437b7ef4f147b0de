package interfaces

import (
	"context"

	"shopperks/internal/models"
	"shopperks/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CustomerRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Customer, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error

	// Lookups
	GetByPhone(ctx context.Context, phone string) (*models.Customer, error)
	GetByReferralCode(ctx context.Context, code string) (*models.Customer, error)
	GetByCampaignID(ctx context.Context, campaignID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Customer, int64, error)

	// Ledger mutation. IncrementPoints applies the deltas atomically in the
	// store; it is the only path that touches the point balance pair.
	IncrementPoints(ctx context.Context, id primitive.ObjectID, totalDelta, redeemedDelta int) (*models.Customer, error)
}
