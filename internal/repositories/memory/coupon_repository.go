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

type couponRepository struct {
	mu      sync.RWMutex
	coupons map[primitive.ObjectID]*models.Coupon
}

func NewCouponRepository() interfaces.CouponRepository {
	return &couponRepository{
		coupons: make(map[primitive.ObjectID]*models.Coupon),
	}
}

func (r *couponRepository) Create(ctx context.Context, coupon *models.Coupon) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	coupon.ID = primitive.NewObjectID()
	coupon.CreatedAt = time.Now()
	coupon.UpdatedAt = time.Now()

	clone := *coupon
	r.coupons[coupon.ID] = &clone

	return nil
}

func (r *couponRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Coupon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	coupon, ok := r.coupons[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", interfaces.ErrCouponNotFound, id.Hex())
	}

	clone := *coupon
	return &clone, nil
}

func (r *couponRepository) GetByCode(ctx context.Context, code string) (*models.Coupon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, coupon := range r.coupons {
		if coupon.Code == code {
			clone := *coupon
			return &clone, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", interfaces.ErrCouponNotFound, code)
}

func (r *couponRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	coupon, ok := r.coupons[id]
	if !ok {
		return fmt.Errorf("%w: %s", interfaces.ErrCouponNotFound, id.Hex())
	}

	for field, value := range updates {
		switch field {
		case "status":
			if status, ok := value.(models.CouponStatus); ok {
				coupon.Status = status
			}
		case "usage_limit":
			coupon.UsageLimit, _ = value.(int)
		}
	}
	coupon.UpdatedAt = time.Now()

	return nil
}

func (r *couponRepository) GetByCustomerID(ctx context.Context, customerID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Coupon, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*models.Coupon
	for _, coupon := range r.coupons {
		if coupon.CustomerID == customerID {
			clone := *coupon
			matched = append(matched, &clone)
		}
	}

	total := int64(len(matched))
	matched = paginate(matched, func(c *models.Coupon) time.Time { return c.CreatedAt }, params)

	return matched, total, nil
}

func (r *couponRepository) IncrementUsage(ctx context.Context, id primitive.ObjectID) (*models.Coupon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	coupon, ok := r.coupons[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", interfaces.ErrCouponNotFound, id.Hex())
	}

	coupon.UsedCount++
	coupon.UpdatedAt = time.Now()

	clone := *coupon
	return &clone, nil
}
