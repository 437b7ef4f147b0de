package services

import (
	"context"
	"testing"

	"shopperks/internal/models"
	"shopperks/internal/repositories/memory"
	"shopperks/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateCampaignAppliesRedemptionDefaults(t *testing.T) {
	ctx := context.Background()
	svc := NewCampaignService(memory.NewCampaignRepository(), nil, nil)

	campaign, err := svc.CreateCampaign(ctx, &CreateCampaignRequest{
		ShopID: primitive.NewObjectID(),
		Name:   "Default Rewards",
	})
	require.NoError(t, err)

	assert.Equal(t, utils.DefaultRedemptionValue, campaign.PointsRedemptionValue)
	assert.InDelta(t, utils.DefaultRedemptionDiscount, campaign.PointsRedemptionDiscount, 1e-9)
	assert.True(t, campaign.IsActive)
}

func TestCreateCampaignKeepsExplicitRedemptionConfig(t *testing.T) {
	ctx := context.Background()
	svc := NewCampaignService(memory.NewCampaignRepository(), nil, nil)

	campaign, err := svc.CreateCampaign(ctx, &CreateCampaignRequest{
		ShopID:                   primitive.NewObjectID(),
		Name:                     "Custom Rewards",
		PointsRedemptionValue:    50,
		PointsRedemptionDiscount: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, 50, campaign.PointsRedemptionValue)
	assert.InDelta(t, 5.0, campaign.PointsRedemptionDiscount, 1e-9)
}

func TestCreateCampaignRejectsInvalidRules(t *testing.T) {
	ctx := context.Background()
	svc := NewCampaignService(memory.NewCampaignRepository(), nil, nil)

	tests := []struct {
		name  string
		rules []models.PointRule
	}{
		{"negative minimum", []models.PointRule{{MinAmount: -10, MaxAmount: 50, Points: 5}}},
		{"max below min", []models.PointRule{{MinAmount: 100, MaxAmount: 50, Points: 5}}},
		{"negative points", []models.PointRule{{MinAmount: 0, MaxAmount: 50, Points: -5}}},
		{"points above cap", []models.PointRule{{MinAmount: 0, MaxAmount: 50, Points: utils.MaxPointsPerRule + 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateCampaign(ctx, &CreateCampaignRequest{
				ShopID:     primitive.NewObjectID(),
				Name:       "Bad Rules",
				PointRules: tt.rules,
			})
			assert.ErrorIs(t, err, ErrInvalidPointRules)
		})
	}
}

func TestCreateCampaignRejectsTooManyRules(t *testing.T) {
	ctx := context.Background()
	svc := NewCampaignService(memory.NewCampaignRepository(), nil, nil)

	rules := make([]models.PointRule, utils.MaxPointRules+1)
	for i := range rules {
		rules[i] = models.PointRule{MinAmount: float64(i * 10), MaxAmount: float64(i*10 + 9), Points: 1}
	}

	_, err := svc.CreateCampaign(ctx, &CreateCampaignRequest{
		ShopID:     primitive.NewObjectID(),
		Name:       "Too Many Tiers",
		PointRules: rules,
	})
	assert.ErrorIs(t, err, ErrInvalidPointRules)
}

func TestUpdatePointRulesPreservesOrder(t *testing.T) {
	ctx := context.Background()
	svc := NewCampaignService(memory.NewCampaignRepository(), nil, nil)

	campaign, err := svc.CreateCampaign(ctx, &CreateCampaignRequest{
		ShopID: primitive.NewObjectID(),
		Name:   "Tiered",
	})
	require.NoError(t, err)

	rules := []models.PointRule{
		{MinAmount: 100, MaxAmount: 199, Points: 15},
		{MinAmount: 0, MaxAmount: 99, Points: 5},
	}
	updated, err := svc.UpdatePointRules(ctx, campaign.ID, rules)
	require.NoError(t, err)
	assert.Equal(t, rules, updated.PointRules)

	_, err = svc.UpdatePointRules(ctx, campaign.ID, []models.PointRule{{MinAmount: 50, MaxAmount: 10, Points: 1}})
	assert.ErrorIs(t, err, ErrInvalidPointRules)
}

func TestSetActiveToggle(t *testing.T) {
	ctx := context.Background()
	svc := NewCampaignService(memory.NewCampaignRepository(), nil, nil)

	campaign, err := svc.CreateCampaign(ctx, &CreateCampaignRequest{
		ShopID: primitive.NewObjectID(),
		Name:   "Toggle",
	})
	require.NoError(t, err)
	require.True(t, campaign.IsActive)

	require.NoError(t, svc.SetActive(ctx, campaign.ID, false))

	campaign, err = svc.GetCampaign(ctx, campaign.ID)
	require.NoError(t, err)
	assert.False(t, campaign.IsActive)
}

func TestGetActiveShopCampaigns(t *testing.T) {
	ctx := context.Background()
	svc := NewCampaignService(memory.NewCampaignRepository(), nil, nil)
	shopID := primitive.NewObjectID()

	active, err := svc.CreateCampaign(ctx, &CreateCampaignRequest{ShopID: shopID, Name: "Active"})
	require.NoError(t, err)

	paused, err := svc.CreateCampaign(ctx, &CreateCampaignRequest{ShopID: shopID, Name: "Paused"})
	require.NoError(t, err)
	require.NoError(t, svc.SetActive(ctx, paused.ID, false))

	campaigns, err := svc.GetActiveShopCampaigns(ctx, shopID)
	require.NoError(t, err)
	require.Len(t, campaigns, 1)
	assert.Equal(t, active.ID, campaigns[0].ID)
}
