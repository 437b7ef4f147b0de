package services

import (
	"context"
	"errors"
	"fmt"

	"shopperks/internal/models"
	"shopperks/internal/repositories/interfaces"
	"shopperks/internal/utils"
	"shopperks/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const referralCodeAttempts = 5

type RegisterCustomerRequest struct {
	ShopID     *primitive.ObjectID `json:"shop_id"`
	CampaignID *primitive.ObjectID `json:"campaign_id"`
	Name       string              `json:"name" validate:"required"`
	Phone      string              `json:"phone" validate:"required,phone"`
	Email      string              `json:"email" validate:"omitempty,email"`
}

type CustomerService interface {
	Register(ctx context.Context, req *RegisterCustomerRequest) (*models.Customer, error)
	GetCustomer(ctx context.Context, customerID primitive.ObjectID) (*models.Customer, error)
	GetByReferralCode(ctx context.Context, code string) (*models.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*models.Customer, error)
	GetAvailablePoints(ctx context.Context, customerID primitive.ObjectID) (int, error)
	GetCampaignCustomers(ctx context.Context, campaignID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Customer, int64, error)
}

type customerService struct {
	customerRepo interfaces.CustomerRepository
	cacheService CacheService
	logger       *logger.Logger
}

func NewCustomerService(customerRepo interfaces.CustomerRepository, cacheService CacheService, log *logger.Logger) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		cacheService: cacheService,
		logger:       log,
	}
}

func (s *customerService) Register(ctx context.Context, req *RegisterCustomerRequest) (*models.Customer, error) {
	if existing, err := s.customerRepo.GetByPhone(ctx, req.Phone); err == nil && existing != nil {
		return nil, fmt.Errorf("%s: %s", utils.ErrCustomerExists, req.Phone)
	}

	code, err := s.uniqueReferralCode(ctx)
	if err != nil {
		return nil, err
	}

	customer := &models.Customer{
		ShopID:       req.ShopID,
		CampaignID:   req.CampaignID,
		Name:         utils.SanitizeString(req.Name),
		Phone:        req.Phone,
		Email:        req.Email,
		ReferralCode: code,
		IsActive:     true,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	if s.logger != nil {
		s.logger.WithFields(map[string]interface{}{
			"customer_id":   customer.ID.Hex(),
			"referral_code": customer.ReferralCode,
			"type":          utils.EventCustomerRegistered,
		}).Info("Customer registered")
	}

	return customer, nil
}

func (s *customerService) GetCustomer(ctx context.Context, customerID primitive.ObjectID) (*models.Customer, error) {
	if s.cacheService != nil {
		if customer, err := s.cacheService.GetCachedCustomer(ctx, customerID); err == nil {
			return customer, nil
		}
	}

	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if s.cacheService != nil {
		s.cacheService.CacheCustomer(ctx, customer, 0)
	}

	return customer, nil
}

func (s *customerService) GetByReferralCode(ctx context.Context, code string) (*models.Customer, error) {
	return s.customerRepo.GetByReferralCode(ctx, code)
}

func (s *customerService) GetByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	return s.customerRepo.GetByPhone(ctx, phone)
}

func (s *customerService) GetAvailablePoints(ctx context.Context, customerID primitive.ObjectID) (int, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return 0, err
	}
	return customer.AvailablePoints(), nil
}

func (s *customerService) GetCampaignCustomers(ctx context.Context, campaignID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Customer, int64, error) {
	return s.customerRepo.GetByCampaignID(ctx, campaignID, params)
}

// uniqueReferralCode retries on collision; the referral_code unique index
// is the final arbiter under concurrent registrations.
func (s *customerService) uniqueReferralCode(ctx context.Context) (string, error) {
	for i := 0; i < referralCodeAttempts; i++ {
		code := utils.GenerateReferralCode()

		_, err := s.customerRepo.GetByReferralCode(ctx, code)
		if errors.Is(err, interfaces.ErrCustomerNotFound) {
			return code, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to check referral code: %w", err)
		}
	}
	return "", fmt.Errorf("failed to generate unique referral code after %d attempts", referralCodeAttempts)
}
