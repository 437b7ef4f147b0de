package interfaces

import (
	"context"

	"shopperks/internal/models"
	"shopperks/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CouponRepository interface {
	Create(ctx context.Context, coupon *models.Coupon) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Coupon, error)
	GetByCode(ctx context.Context, code string) (*models.Coupon, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error

	GetByCustomerID(ctx context.Context, customerID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Coupon, int64, error)

	// IncrementUsage bumps the used counter atomically and returns the
	// updated coupon.
	IncrementUsage(ctx context.Context, id primitive.ObjectID) (*models.Coupon, error)
}
