package interfaces

import (
	"context"

	"shopperks/internal/models"
	"shopperks/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CampaignRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, campaign *models.Campaign) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Campaign, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error

	// Shop campaigns
	GetByShopID(ctx context.Context, shopID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Campaign, int64, error)
	GetActiveByShopID(ctx context.Context, shopID primitive.ObjectID) ([]*models.Campaign, error)

	// Rule management. Rules are replaced as a whole so the authored tier
	// order survives the round trip.
	UpdatePointRules(ctx context.Context, id primitive.ObjectID, rules []models.PointRule) error
}
