package services

import (
	"context"
	"testing"

	"shopperks/internal/models"
	"shopperks/internal/repositories/interfaces"
	"shopperks/internal/repositories/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestEvaluatePoints(t *testing.T) {
	tiers := []models.PointRule{
		{MinAmount: 0, MaxAmount: 99, Points: 5},
		{MinAmount: 100, MaxAmount: 199, Points: 15},
		{MinAmount: 200, MaxAmount: 499, Points: 40},
	}

	tests := []struct {
		name   string
		amount float64
		rules  []models.PointRule
		want   int
	}{
		{"no rules", 150, nil, 0},
		{"empty rules", 150, []models.PointRule{}, 0},
		{"below all tiers", -1, tiers, 0},
		{"above all tiers", 500, tiers, 0},
		{"first tier", 50, tiers, 5},
		{"second tier", 150, tiers, 15},
		{"lower bound inclusive", 100, tiers, 15},
		{"upper bound inclusive", 199, tiers, 15},
		{"tier boundary goes to next tier", 200, tiers, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EvaluatePoints(tt.amount, tt.rules))
		})
	}
}

func TestEvaluatePointsFirstMatchWins(t *testing.T) {
	// Overlapping ranges are a shop configuration choice; the earlier rule
	// in the authored order takes precedence.
	rules := []models.PointRule{
		{MinAmount: 0, MaxAmount: 200, Points: 10},
		{MinAmount: 100, MaxAmount: 300, Points: 50},
	}

	assert.Equal(t, 10, EvaluatePoints(150, rules))
	assert.Equal(t, 50, EvaluatePoints(250, rules))
}

func TestComputeRedemption(t *testing.T) {
	tests := []struct {
		name            string
		points          int
		bill            float64
		value           int
		discountPerUnit float64
		want            RedemptionResult
	}{
		{
			name: "whole units", points: 300, bill: 200, value: 100, discountPerUnit: 10,
			want: RedemptionResult{RedemptionUnits: 3, DiscountPct: 30, DiscountAmount: 60, FinalAmount: 140},
		},
		{
			name: "partial unit floors down", points: 250, bill: 100, value: 100, discountPerUnit: 10,
			want: RedemptionResult{RedemptionUnits: 2, DiscountPct: 20, DiscountAmount: 20, FinalAmount: 80},
		},
		{
			name: "below one unit", points: 99, bill: 100, value: 100, discountPerUnit: 10,
			want: RedemptionResult{RedemptionUnits: 0, DiscountPct: 0, DiscountAmount: 0, FinalAmount: 100},
		},
		{
			name: "zero points", points: 0, bill: 100, value: 100, discountPerUnit: 10,
			want: RedemptionResult{RedemptionUnits: 0, DiscountPct: 0, DiscountAmount: 0, FinalAmount: 100},
		},
		{
			name: "zero redemption value yields no discount", points: 500, bill: 100, value: 0, discountPerUnit: 10,
			want: RedemptionResult{RedemptionUnits: 0, DiscountPct: 0, DiscountAmount: 0, FinalAmount: 100},
		},
		{
			name: "discount above full price clamps final amount", points: 1500, bill: 100, value: 100, discountPerUnit: 10,
			want: RedemptionResult{RedemptionUnits: 15, DiscountPct: 150, DiscountAmount: 150, FinalAmount: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeRedemption(tt.points, tt.bill, tt.value, tt.discountPerUnit)
			assert.Equal(t, tt.want.RedemptionUnits, got.RedemptionUnits)
			assert.InDelta(t, tt.want.DiscountPct, got.DiscountPct, 1e-9)
			assert.InDelta(t, tt.want.DiscountAmount, got.DiscountAmount, 1e-9)
			assert.InDelta(t, tt.want.FinalAmount, got.FinalAmount, 1e-9)
		})
	}
}

func TestPreviewPoints(t *testing.T) {
	ctx := context.Background()
	campaignRepo := memory.NewCampaignRepository()
	svc := NewPointsService(campaignRepo)

	campaign := &models.Campaign{
		ShopID:            primitive.NewObjectID(),
		Name:              "Summer Rewards",
		PointRules:        []models.PointRule{{MinAmount: 0, MaxAmount: 99, Points: 5}, {MinAmount: 100, MaxAmount: 199, Points: 15}},
		MinPurchaseAmount: 10,
		IsActive:          true,
	}
	require.NoError(t, campaignRepo.Create(ctx, campaign))

	points, err := svc.PreviewPoints(ctx, campaign.ID, 150)
	require.NoError(t, err)
	assert.Equal(t, 15, points)

	points, err = svc.PreviewPoints(ctx, campaign.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, points, "below the campaign minimum nothing is earned")

	_, err = svc.PreviewPoints(ctx, primitive.NewObjectID(), 150)
	assert.ErrorIs(t, err, interfaces.ErrCampaignNotFound)
}

func TestPreviewPointsInactiveCampaign(t *testing.T) {
	ctx := context.Background()
	campaignRepo := memory.NewCampaignRepository()
	svc := NewPointsService(campaignRepo)

	campaign := &models.Campaign{
		ShopID:     primitive.NewObjectID(),
		Name:       "Paused",
		PointRules: []models.PointRule{{MinAmount: 0, MaxAmount: 1000, Points: 10}},
		IsActive:   false,
	}
	require.NoError(t, campaignRepo.Create(ctx, campaign))

	_, err := svc.PreviewPoints(ctx, campaign.ID, 150)
	assert.ErrorIs(t, err, ErrCampaignInactive)

	_, err = svc.PreviewRedemption(ctx, campaign.ID, 300, 200)
	assert.ErrorIs(t, err, ErrCampaignInactive)
}

func TestPreviewRedemption(t *testing.T) {
	ctx := context.Background()
	campaignRepo := memory.NewCampaignRepository()
	svc := NewPointsService(campaignRepo)

	campaign := &models.Campaign{
		ShopID:                   primitive.NewObjectID(),
		Name:                     "Loyalty",
		PointsRedemptionValue:    100,
		PointsRedemptionDiscount: 10,
		IsActive:                 true,
	}
	require.NoError(t, campaignRepo.Create(ctx, campaign))

	result, err := svc.PreviewRedemption(ctx, campaign.ID, 250, 80)
	require.NoError(t, err)
	assert.Equal(t, 2, result.RedemptionUnits)
	assert.InDelta(t, 20.0, result.DiscountPct, 1e-9)
	assert.InDelta(t, 16.0, result.DiscountAmount, 1e-9)
	assert.InDelta(t, 64.0, result.FinalAmount, 1e-9)
}
