package interfaces

import (
	"context"

	"shopperks/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ShopRepository interface {
	Create(ctx context.Context, shop *models.Shop) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Shop, error)
	GetByEmail(ctx context.Context, email string) (*models.Shop, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
}
