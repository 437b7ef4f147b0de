package services

import (
	"context"
	"fmt"

	"shopperks/internal/models"
	"shopperks/internal/repositories/interfaces"
	"shopperks/internal/utils"
	"shopperks/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateCampaignRequest struct {
	ShopID                   primitive.ObjectID `json:"shop_id" validate:"required"`
	Name                     string             `json:"name" validate:"required"`
	Description              string             `json:"description"`
	PointRules               []models.PointRule `json:"point_rules"`
	PointsRedemptionValue    int                `json:"points_redemption_value" validate:"min=0"`
	PointsRedemptionDiscount float64            `json:"points_redemption_discount" validate:"min=0"`
	MinPurchaseAmount        float64            `json:"min_purchase_amount" validate:"min=0"`
	ReferralPoints           int                `json:"referral_points" validate:"min=0"`
	ThemeColor               string             `json:"theme_color" validate:"omitempty,hex_color"`
	LogoURL                  string             `json:"logo_url" validate:"omitempty,url"`
}

type CampaignService interface {
	CreateCampaign(ctx context.Context, req *CreateCampaignRequest) (*models.Campaign, error)
	GetCampaign(ctx context.Context, campaignID primitive.ObjectID) (*models.Campaign, error)
	UpdateCampaign(ctx context.Context, campaignID primitive.ObjectID, updates map[string]interface{}) (*models.Campaign, error)
	UpdatePointRules(ctx context.Context, campaignID primitive.ObjectID, rules []models.PointRule) (*models.Campaign, error)
	SetActive(ctx context.Context, campaignID primitive.ObjectID, active bool) error
	GetShopCampaigns(ctx context.Context, shopID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Campaign, int64, error)
	GetActiveShopCampaigns(ctx context.Context, shopID primitive.ObjectID) ([]*models.Campaign, error)
}

type campaignService struct {
	campaignRepo interfaces.CampaignRepository
	cacheService CacheService
	logger       *logger.Logger
}

func NewCampaignService(campaignRepo interfaces.CampaignRepository, cacheService CacheService, log *logger.Logger) CampaignService {
	return &campaignService{
		campaignRepo: campaignRepo,
		cacheService: cacheService,
		logger:       log,
	}
}

func (s *campaignService) CreateCampaign(ctx context.Context, req *CreateCampaignRequest) (*models.Campaign, error) {
	if err := validatePointRules(req.PointRules); err != nil {
		return nil, err
	}

	campaign := &models.Campaign{
		ShopID:                   req.ShopID,
		Name:                     utils.SanitizeString(req.Name),
		Description:              utils.SanitizeString(req.Description),
		PointRules:               req.PointRules,
		PointsRedemptionValue:    req.PointsRedemptionValue,
		PointsRedemptionDiscount: req.PointsRedemptionDiscount,
		MinPurchaseAmount:        req.MinPurchaseAmount,
		ReferralPoints:           req.ReferralPoints,
		ThemeColor:               req.ThemeColor,
		LogoURL:                  req.LogoURL,
		IsActive:                 true,
	}

	if campaign.PointsRedemptionValue == 0 {
		campaign.PointsRedemptionValue = utils.DefaultRedemptionValue
	}
	if campaign.PointsRedemptionDiscount == 0 {
		campaign.PointsRedemptionDiscount = utils.DefaultRedemptionDiscount
	}

	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}

	if s.logger != nil {
		s.logger.WithFields(map[string]interface{}{
			"campaign_id": campaign.ID.Hex(),
			"shop_id":     campaign.ShopID.Hex(),
		}).Info("Campaign created")
	}

	return campaign, nil
}

func (s *campaignService) GetCampaign(ctx context.Context, campaignID primitive.ObjectID) (*models.Campaign, error) {
	if s.cacheService != nil {
		if campaign, err := s.cacheService.GetCachedCampaign(ctx, campaignID); err == nil {
			return campaign, nil
		}
	}

	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	if s.cacheService != nil {
		s.cacheService.CacheCampaign(ctx, campaign, 0)
	}

	return campaign, nil
}

func (s *campaignService) UpdateCampaign(ctx context.Context, campaignID primitive.ObjectID, updates map[string]interface{}) (*models.Campaign, error) {
	if err := s.campaignRepo.Update(ctx, campaignID, updates); err != nil {
		return nil, fmt.Errorf("failed to update campaign: %w", err)
	}

	s.invalidate(ctx, campaignID)

	return s.campaignRepo.GetByID(ctx, campaignID)
}

func (s *campaignService) UpdatePointRules(ctx context.Context, campaignID primitive.ObjectID, rules []models.PointRule) (*models.Campaign, error) {
	if err := validatePointRules(rules); err != nil {
		return nil, err
	}

	if err := s.campaignRepo.UpdatePointRules(ctx, campaignID, rules); err != nil {
		return nil, fmt.Errorf("failed to update point rules: %w", err)
	}

	s.invalidate(ctx, campaignID)

	return s.campaignRepo.GetByID(ctx, campaignID)
}

func (s *campaignService) SetActive(ctx context.Context, campaignID primitive.ObjectID, active bool) error {
	if err := s.campaignRepo.Update(ctx, campaignID, map[string]interface{}{"is_active": active}); err != nil {
		return fmt.Errorf("failed to update campaign: %w", err)
	}

	s.invalidate(ctx, campaignID)
	return nil
}

func (s *campaignService) GetShopCampaigns(ctx context.Context, shopID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Campaign, int64, error) {
	return s.campaignRepo.GetByShopID(ctx, shopID, params)
}

func (s *campaignService) GetActiveShopCampaigns(ctx context.Context, shopID primitive.ObjectID) ([]*models.Campaign, error) {
	return s.campaignRepo.GetActiveByShopID(ctx, shopID)
}

func (s *campaignService) invalidate(ctx context.Context, campaignID primitive.ObjectID) {
	if s.cacheService != nil {
		s.cacheService.InvalidateCampaign(ctx, campaignID)
	}
}

// validatePointRules checks individual tiers. Overlap between tiers is
// allowed: lookup is first-match-wins over the authored order, so overlap
// is a shop configuration choice rather than an error.
func validatePointRules(rules []models.PointRule) error {
	if len(rules) > utils.MaxPointRules {
		return fmt.Errorf("%w: at most %d rules allowed", ErrInvalidPointRules, utils.MaxPointRules)
	}

	for i, rule := range rules {
		if rule.MinAmount < 0 || rule.MaxAmount < rule.MinAmount {
			return fmt.Errorf("%w: rule %d has invalid range [%.2f, %.2f]", ErrInvalidPointRules, i, rule.MinAmount, rule.MaxAmount)
		}
		if rule.Points < 0 || rule.Points > utils.MaxPointsPerRule {
			return fmt.Errorf("%w: rule %d has invalid points %d", ErrInvalidPointRules, i, rule.Points)
		}
	}

	return nil
}
