package services

import (
	"context"
	"fmt"
	"time"

	"shopperks/internal/models"
	"shopperks/internal/repositories/interfaces"
	"shopperks/internal/utils"
	"shopperks/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IssueCouponRequest struct {
	CampaignID  primitive.ObjectID `json:"campaign_id" validate:"required"`
	CustomerID  primitive.ObjectID `json:"customer_id" validate:"required"`
	DiscountPct float64            `json:"discount_pct" validate:"min=0,max=100"`
	UsageLimit  int                `json:"usage_limit" validate:"min=0"`
	TTL         time.Duration      `json:"-"`
}

// ClaimResult pairs the claimed coupon with the pending referral
// transaction created for the sharing customer.
type ClaimResult struct {
	Coupon              *models.Coupon      `json:"coupon"`
	DiscountPct         float64             `json:"discount_pct"`
	ReferralTransaction *models.Transaction `json:"referral_transaction,omitempty"`
}

type CouponService interface {
	IssueCoupon(ctx context.Context, req *IssueCouponRequest) (*models.Coupon, error)
	ClaimCoupon(ctx context.Context, code string) (*ClaimResult, error)
	GetCustomerCoupons(ctx context.Context, customerID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Coupon, int64, error)
}

type couponService struct {
	couponRepo         interfaces.CouponRepository
	campaignRepo       interfaces.CampaignRepository
	transactionService TransactionService
	logger             *logger.Logger
}

func NewCouponService(
	couponRepo interfaces.CouponRepository,
	campaignRepo interfaces.CampaignRepository,
	transactionService TransactionService,
	log *logger.Logger,
) CouponService {
	return &couponService{
		couponRepo:         couponRepo,
		campaignRepo:       campaignRepo,
		transactionService: transactionService,
		logger:             log,
	}
}

func (s *couponService) IssueCoupon(ctx context.Context, req *IssueCouponRequest) (*models.Coupon, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, req.CampaignID)
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}
	if !campaign.IsActive {
		return nil, ErrCampaignInactive
	}

	ttl := req.TTL
	if ttl == 0 {
		ttl = utils.DefaultCouponTTL
	}
	expiresAt := time.Now().Add(ttl)

	coupon := &models.Coupon{
		CampaignID:  req.CampaignID,
		CustomerID:  req.CustomerID,
		Code:        utils.GenerateCouponCode(),
		DiscountPct: req.DiscountPct,
		Status:      models.CouponStatusActive,
		UsageLimit:  req.UsageLimit,
		ExpiresAt:   &expiresAt,
	}

	if err := s.couponRepo.Create(ctx, coupon); err != nil {
		return nil, fmt.Errorf("failed to create coupon: %w", err)
	}

	if s.logger != nil {
		s.logger.WithFields(map[string]interface{}{
			"coupon_id":   coupon.ID.Hex(),
			"campaign_id": coupon.CampaignID.Hex(),
			"customer_id": coupon.CustomerID.Hex(),
			"type":        utils.EventCouponIssued,
		}).Info("Coupon issued")
	}

	return coupon, nil
}

// ClaimCoupon redeems a shared coupon code. The sharer is credited through
// a pending referral transaction, so the shop still reviews the claim
// before any points move.
func (s *couponService) ClaimCoupon(ctx context.Context, code string) (*ClaimResult, error) {
	coupon, err := s.couponRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get coupon: %w", err)
	}

	if !coupon.IsClaimable(time.Now()) {
		return nil, fmt.Errorf("%w: %s", ErrCouponNotClaimable, code)
	}

	campaign, err := s.campaignRepo.GetByID(ctx, coupon.CampaignID)
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}
	if !campaign.IsActive {
		return nil, ErrCampaignInactive
	}

	coupon, err = s.couponRepo.IncrementUsage(ctx, coupon.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to record coupon usage: %w", err)
	}

	result := &ClaimResult{
		Coupon:      coupon,
		DiscountPct: coupon.DiscountPct,
	}

	if campaign.ReferralPoints > 0 {
		campaignID := campaign.ID
		transaction, err := s.transactionService.CreateTransaction(ctx, &CreateTransactionRequest{
			CustomerID: coupon.CustomerID,
			CampaignID: &campaignID,
			Type:       models.TransactionTypeReferral,
			Points:     campaign.ReferralPoints,
			Notes:      fmt.Sprintf("referral via coupon %s", coupon.Code),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create referral transaction: %w", err)
		}
		result.ReferralTransaction = transaction
	}

	if s.logger != nil {
		s.logger.WithFields(map[string]interface{}{
			"coupon_id": coupon.ID.Hex(),
			"code":      coupon.Code,
			"type":      utils.EventCouponClaimed,
		}).Info("Coupon claimed")
	}

	return result, nil
}

func (s *couponService) GetCustomerCoupons(ctx context.Context, customerID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Coupon, int64, error) {
	return s.couponRepo.GetByCustomerID(ctx, customerID, params)
}
