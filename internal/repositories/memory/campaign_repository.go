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

type campaignRepository struct {
	mu        sync.RWMutex
	campaigns map[primitive.ObjectID]*models.Campaign
}

func NewCampaignRepository() interfaces.CampaignRepository {
	return &campaignRepository{
		campaigns: make(map[primitive.ObjectID]*models.Campaign),
	}
}

func (r *campaignRepository) Create(ctx context.Context, campaign *models.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	campaign.ID = primitive.NewObjectID()
	campaign.CreatedAt = time.Now()
	campaign.UpdatedAt = time.Now()

	clone := cloneCampaign(campaign)
	r.campaigns[campaign.ID] = clone

	return nil
}

func (r *campaignRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	campaign, ok := r.campaigns[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", interfaces.ErrCampaignNotFound, id.Hex())
	}

	return cloneCampaign(campaign), nil
}

func (r *campaignRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	campaign, ok := r.campaigns[id]
	if !ok {
		return fmt.Errorf("%w: %s", interfaces.ErrCampaignNotFound, id.Hex())
	}

	for field, value := range updates {
		switch field {
		case "name":
			campaign.Name, _ = value.(string)
		case "description":
			campaign.Description, _ = value.(string)
		case "is_active":
			campaign.IsActive, _ = value.(bool)
		case "min_purchase_amount":
			campaign.MinPurchaseAmount, _ = value.(float64)
		case "points_redemption_value":
			campaign.PointsRedemptionValue, _ = value.(int)
		case "points_redemption_discount":
			campaign.PointsRedemptionDiscount, _ = value.(float64)
		case "referral_points":
			campaign.ReferralPoints, _ = value.(int)
		case "theme_color":
			campaign.ThemeColor, _ = value.(string)
		case "logo_url":
			campaign.LogoURL, _ = value.(string)
		case "point_rules":
			if rules, ok := value.([]models.PointRule); ok {
				campaign.PointRules = append([]models.PointRule(nil), rules...)
			}
		}
	}
	campaign.UpdatedAt = time.Now()

	return nil
}

func (r *campaignRepository) GetByShopID(ctx context.Context, shopID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Campaign, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*models.Campaign
	for _, campaign := range r.campaigns {
		if campaign.ShopID == shopID {
			matched = append(matched, cloneCampaign(campaign))
		}
	}

	total := int64(len(matched))
	matched = paginate(matched, func(c *models.Campaign) time.Time { return c.CreatedAt }, params)

	return matched, total, nil
}

func (r *campaignRepository) GetActiveByShopID(ctx context.Context, shopID primitive.ObjectID) ([]*models.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*models.Campaign
	for _, campaign := range r.campaigns {
		if campaign.ShopID == shopID && campaign.IsActive {
			matched = append(matched, cloneCampaign(campaign))
		}
	}

	return matched, nil
}

func (r *campaignRepository) UpdatePointRules(ctx context.Context, id primitive.ObjectID, rules []models.PointRule) error {
	return r.Update(ctx, id, map[string]interface{}{"point_rules": rules})
}

// cloneCampaign deep-copies the rule slice so callers cannot mutate stored
// tier order behind the repository's back.
func cloneCampaign(campaign *models.Campaign) *models.Campaign {
	clone := *campaign
	clone.PointRules = append([]models.PointRule(nil), campaign.PointRules...)
	return &clone
}
