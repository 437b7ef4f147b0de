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

type customerRepository struct {
	mu        sync.RWMutex
	customers map[primitive.ObjectID]*models.Customer
}

func NewCustomerRepository() interfaces.CustomerRepository {
	return &customerRepository{
		customers: make(map[primitive.ObjectID]*models.Customer),
	}
}

func (r *customerRepository) Create(ctx context.Context, customer *models.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	customer.ID = primitive.NewObjectID()
	customer.CreatedAt = time.Now()
	customer.UpdatedAt = time.Now()

	clone := *customer
	r.customers[customer.ID] = &clone

	return nil
}

func (r *customerRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, ok := r.customers[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", interfaces.ErrCustomerNotFound, id.Hex())
	}

	clone := *customer
	return &clone, nil
}

func (r *customerRepository) GetByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	return r.findOne(func(c *models.Customer) bool { return c.Phone == phone })
}

func (r *customerRepository) GetByReferralCode(ctx context.Context, code string) (*models.Customer, error) {
	return r.findOne(func(c *models.Customer) bool { return c.ReferralCode == code })
}

func (r *customerRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	customer, ok := r.customers[id]
	if !ok {
		return fmt.Errorf("%w: %s", interfaces.ErrCustomerNotFound, id.Hex())
	}

	for field, value := range updates {
		switch field {
		case "name":
			customer.Name, _ = value.(string)
		case "phone":
			customer.Phone, _ = value.(string)
		case "email":
			customer.Email, _ = value.(string)
		case "is_active":
			customer.IsActive, _ = value.(bool)
		}
	}
	customer.UpdatedAt = time.Now()

	return nil
}

func (r *customerRepository) GetByCampaignID(ctx context.Context, campaignID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Customer, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*models.Customer
	for _, customer := range r.customers {
		if customer.CampaignID != nil && *customer.CampaignID == campaignID {
			clone := *customer
			matched = append(matched, &clone)
		}
	}

	total := int64(len(matched))
	matched = paginate(matched, func(c *models.Customer) time.Time { return c.CreatedAt }, params)

	return matched, total, nil
}

func (r *customerRepository) IncrementPoints(ctx context.Context, id primitive.ObjectID, totalDelta, redeemedDelta int) (*models.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	customer, ok := r.customers[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", interfaces.ErrCustomerNotFound, id.Hex())
	}

	customer.TotalPoints += totalDelta
	customer.RedeemedPoints += redeemedDelta
	customer.UpdatedAt = time.Now()

	clone := *customer
	return &clone, nil
}

func (r *customerRepository) findOne(match func(*models.Customer) bool) (*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, customer := range r.customers {
		if match(customer) {
			clone := *customer
			return &clone, nil
		}
	}

	return nil, fmt.Errorf("%w", interfaces.ErrCustomerNotFound)
}
