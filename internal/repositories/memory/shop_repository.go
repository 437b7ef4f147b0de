package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"shopperks/internal/models"
	"shopperks/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type shopRepository struct {
	mu    sync.RWMutex
	shops map[primitive.ObjectID]*models.Shop
}

func NewShopRepository() interfaces.ShopRepository {
	return &shopRepository{
		shops: make(map[primitive.ObjectID]*models.Shop),
	}
}

func (r *shopRepository) Create(ctx context.Context, shop *models.Shop) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	shop.ID = primitive.NewObjectID()
	shop.CreatedAt = time.Now()
	shop.UpdatedAt = time.Now()

	clone := *shop
	r.shops[shop.ID] = &clone

	return nil
}

func (r *shopRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Shop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	shop, ok := r.shops[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", interfaces.ErrShopNotFound, id.Hex())
	}

	clone := *shop
	return &clone, nil
}

func (r *shopRepository) GetByEmail(ctx context.Context, email string) (*models.Shop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, shop := range r.shops {
		if shop.Email == email {
			clone := *shop
			return &clone, nil
		}
	}

	return nil, fmt.Errorf("%w", interfaces.ErrShopNotFound)
}

func (r *shopRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	shop, ok := r.shops[id]
	if !ok {
		return fmt.Errorf("%w: %s", interfaces.ErrShopNotFound, id.Hex())
	}

	for field, value := range updates {
		switch field {
		case "name":
			shop.Name, _ = value.(string)
		case "phone":
			shop.Phone, _ = value.(string)
		case "address":
			shop.Address, _ = value.(string)
		case "is_active":
			shop.IsActive, _ = value.(bool)
		}
	}
	shop.UpdatedAt = time.Now()

	return nil
}
