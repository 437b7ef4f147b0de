package services

import (
	"context"
	"fmt"
	"math"

	"shopperks/internal/models"
	"shopperks/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RedemptionResult is the outcome of applying a campaign's redemption
// configuration to a requested point spend against a bill.
type RedemptionResult struct {
	RedemptionUnits int     `json:"redemption_units"`
	DiscountPct     float64 `json:"discount_pct"`
	DiscountAmount  float64 `json:"discount_amount"`
	FinalAmount     float64 `json:"final_amount"`
}

// EvaluatePoints maps a purchase amount to earned points using the
// campaign's ordered tier list. First match wins: rules are authored as an
// ordered list by the shop, which keeps behavior deterministic even when
// ranges are misconfigured to overlap. An empty or non-matching list yields 0.
func EvaluatePoints(amount float64, rules []models.PointRule) int {
	for _, rule := range rules {
		if rule.Matches(amount) {
			return rule.Points
		}
	}
	return 0
}

// ComputeRedemption converts a requested point spend into a discount.
// Partial units are not honored: a customer must spend points in whole
// multiples of redemptionValue to unlock any discount. The effective
// discount percentage is deliberately not clamped at 100 here; callers
// validate the requested spend against the available balance before a
// redemption transaction is created.
func ComputeRedemption(pointsToRedeem int, billAmount float64, redemptionValue int, redemptionDiscountPct float64) RedemptionResult {
	var units int
	if redemptionValue > 0 && pointsToRedeem > 0 {
		units = pointsToRedeem / redemptionValue
	}

	discountPct := float64(units) * redemptionDiscountPct
	discountAmount := billAmount * discountPct / 100
	finalAmount := math.Max(0, billAmount-discountAmount)

	return RedemptionResult{
		RedemptionUnits: units,
		DiscountPct:     discountPct,
		DiscountAmount:  discountAmount,
		FinalAmount:     finalAmount,
	}
}

type PointsService interface {
	// PreviewPoints computes the points a purchase of the given amount
	// would earn under the campaign's rules, without creating anything.
	PreviewPoints(ctx context.Context, campaignID primitive.ObjectID, amount float64) (int, error)

	// PreviewRedemption computes the discount a point spend would produce
	// under the campaign's redemption configuration.
	PreviewRedemption(ctx context.Context, campaignID primitive.ObjectID, pointsToRedeem int, billAmount float64) (*RedemptionResult, error)
}

type pointsService struct {
	campaignRepo interfaces.CampaignRepository
}

func NewPointsService(campaignRepo interfaces.CampaignRepository) PointsService {
	return &pointsService{campaignRepo: campaignRepo}
}

func (s *pointsService) PreviewPoints(ctx context.Context, campaignID primitive.ObjectID, amount float64) (int, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return 0, fmt.Errorf("failed to get campaign: %w", err)
	}

	if !campaign.IsActive {
		return 0, ErrCampaignInactive
	}

	if amount < campaign.MinPurchaseAmount {
		return 0, nil
	}

	return EvaluatePoints(amount, campaign.PointRules), nil
}

func (s *pointsService) PreviewRedemption(ctx context.Context, campaignID primitive.ObjectID, pointsToRedeem int, billAmount float64) (*RedemptionResult, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}

	if !campaign.IsActive {
		return nil, ErrCampaignInactive
	}

	result := ComputeRedemption(pointsToRedeem, billAmount, campaign.PointsRedemptionValue, campaign.PointsRedemptionDiscount)
	return &result, nil
}
