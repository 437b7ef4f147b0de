package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"shopperks/internal/models"
	"shopperks/internal/repositories/interfaces"
	"shopperks/internal/utils"
	"shopperks/pkg/logger"
)

type RegisterShopRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" validate:"required,min=8"`
	Address  string `json:"address"`
}

type ShopService interface {
	Register(ctx context.Context, req *RegisterShopRequest) (*models.Shop, error)

	// Authenticate verifies the shop's credentials and returns the shop.
	// The caller issues tokens; this layer never sees them.
	Authenticate(ctx context.Context, email, password string) (*models.Shop, error)

	GetShop(ctx context.Context, shopID primitive.ObjectID) (*models.Shop, error)
	UpdateShop(ctx context.Context, shopID primitive.ObjectID, updates map[string]interface{}) (*models.Shop, error)
}

type shopService struct {
	shopRepo interfaces.ShopRepository
	logger   *logger.Logger
}

func NewShopService(shopRepo interfaces.ShopRepository, log *logger.Logger) ShopService {
	return &shopService{
		shopRepo: shopRepo,
		logger:   log,
	}
}

func (s *shopService) Register(ctx context.Context, req *RegisterShopRequest) (*models.Shop, error) {
	if existing, err := s.shopRepo.GetByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, fmt.Errorf("%s: %s", utils.ErrShopExists, req.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	shop := &models.Shop{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Address:      req.Address,
		IsActive:     true,
	}

	if err := s.shopRepo.Create(ctx, shop); err != nil {
		return nil, fmt.Errorf("failed to create shop: %w", err)
	}

	if s.logger != nil {
		s.logger.WithField("shop_id", shop.ID.Hex()).Info("Shop registered")
	}

	return shop, nil
}

func (s *shopService) Authenticate(ctx context.Context, email, password string) (*models.Shop, error) {
	shop, err := s.shopRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(shop.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !shop.IsActive {
		return nil, ErrShopDisabled
	}

	return shop, nil
}

func (s *shopService) GetShop(ctx context.Context, shopID primitive.ObjectID) (*models.Shop, error) {
	return s.shopRepo.GetByID(ctx, shopID)
}

func (s *shopService) UpdateShop(ctx context.Context, shopID primitive.ObjectID, updates map[string]interface{}) (*models.Shop, error) {
	if err := s.shopRepo.Update(ctx, shopID, updates); err != nil {
		return nil, fmt.Errorf("failed to update shop: %w", err)
	}
	return s.shopRepo.GetByID(ctx, shopID)
}
