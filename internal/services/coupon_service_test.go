package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"shopperks/internal/models"
	"shopperks/internal/repositories/interfaces"
	"shopperks/internal/repositories/memory"
	"shopperks/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type couponFixture struct {
	svc          CouponService
	couponRepo   interfaces.CouponRepository
	customerRepo interfaces.CustomerRepository
	campaignRepo interfaces.CampaignRepository
	transactions TransactionService
}

func newCouponFixture() *couponFixture {
	couponRepo := memory.NewCouponRepository()
	customerRepo := memory.NewCustomerRepository()
	campaignRepo := memory.NewCampaignRepository()
	transactions := NewTransactionService(
		memory.NewTransactionRepository(),
		customerRepo,
		campaignRepo,
		memory.NewPassthroughRunner(),
		nil, nil, nil,
	)
	return &couponFixture{
		svc:          NewCouponService(couponRepo, campaignRepo, transactions, nil),
		couponRepo:   couponRepo,
		customerRepo: customerRepo,
		campaignRepo: campaignRepo,
		transactions: transactions,
	}
}

func (f *couponFixture) seed(t *testing.T, referralPoints int) (*models.Customer, *models.Campaign) {
	t.Helper()
	ctx := context.Background()

	customer := &models.Customer{
		Name:         "Sharer",
		Phone:        "+15550100500",
		ReferralCode: "SHARE123",
		IsActive:     true,
	}
	require.NoError(t, f.customerRepo.Create(ctx, customer))

	campaign := &models.Campaign{
		ShopID:         primitive.NewObjectID(),
		Name:           "Referral Drive",
		ReferralPoints: referralPoints,
		IsActive:       true,
	}
	require.NoError(t, f.campaignRepo.Create(ctx, campaign))

	return customer, campaign
}

func TestIssueCoupon(t *testing.T) {
	f := newCouponFixture()
	customer, campaign := f.seed(t, 50)

	coupon, err := f.svc.IssueCoupon(context.Background(), &IssueCouponRequest{
		CampaignID:  campaign.ID,
		CustomerID:  customer.ID,
		DiscountPct: 10,
		UsageLimit:  3,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(coupon.Code, "PERK-"))
	assert.Len(t, coupon.Code, utils.CouponCodeLength)
	assert.Equal(t, models.CouponStatusActive, coupon.Status)
	require.NotNil(t, coupon.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(utils.DefaultCouponTTL), *coupon.ExpiresAt, time.Minute)
}

func TestIssueCouponInactiveCampaign(t *testing.T) {
	f := newCouponFixture()
	customer, campaign := f.seed(t, 50)
	require.NoError(t, f.campaignRepo.Update(context.Background(), campaign.ID, map[string]interface{}{"is_active": false}))

	_, err := f.svc.IssueCoupon(context.Background(), &IssueCouponRequest{
		CampaignID: campaign.ID,
		CustomerID: customer.ID,
	})
	assert.ErrorIs(t, err, ErrCampaignInactive)
}

func TestClaimCouponCreatesPendingReferral(t *testing.T) {
	f := newCouponFixture()
	ctx := context.Background()
	customer, campaign := f.seed(t, 50)

	coupon, err := f.svc.IssueCoupon(ctx, &IssueCouponRequest{
		CampaignID:  campaign.ID,
		CustomerID:  customer.ID,
		DiscountPct: 15,
	})
	require.NoError(t, err)

	result, err := f.svc.ClaimCoupon(ctx, coupon.Code)
	require.NoError(t, err)

	assert.InDelta(t, 15.0, result.DiscountPct, 1e-9)
	assert.Equal(t, 1, result.Coupon.UsedCount)

	// The sharer is credited through a pending referral transaction; no
	// points move until the shop approves it.
	require.NotNil(t, result.ReferralTransaction)
	assert.Equal(t, models.TransactionStatusPending, result.ReferralTransaction.Status)
	assert.Equal(t, models.TransactionTypeReferral, result.ReferralTransaction.Type)
	assert.Equal(t, 50, result.ReferralTransaction.Points)
	assert.Equal(t, customer.ID, result.ReferralTransaction.CustomerID)

	sharer, err := f.customerRepo.GetByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, sharer.TotalPoints)

	_, err = f.transactions.RequestStatusChange(ctx, result.ReferralTransaction.ID, models.TransactionStatusApproved, nil)
	require.NoError(t, err)

	sharer, err = f.customerRepo.GetByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, sharer.TotalPoints)
}

func TestClaimCouponWithoutReferralPoints(t *testing.T) {
	f := newCouponFixture()
	ctx := context.Background()
	customer, campaign := f.seed(t, 0)

	coupon, err := f.svc.IssueCoupon(ctx, &IssueCouponRequest{
		CampaignID: campaign.ID,
		CustomerID: customer.ID,
	})
	require.NoError(t, err)

	result, err := f.svc.ClaimCoupon(ctx, coupon.Code)
	require.NoError(t, err)
	assert.Nil(t, result.ReferralTransaction)
}

func TestClaimCouponUsageLimit(t *testing.T) {
	f := newCouponFixture()
	ctx := context.Background()
	customer, campaign := f.seed(t, 0)

	coupon, err := f.svc.IssueCoupon(ctx, &IssueCouponRequest{
		CampaignID: campaign.ID,
		CustomerID: customer.ID,
		UsageLimit: 1,
	})
	require.NoError(t, err)

	_, err = f.svc.ClaimCoupon(ctx, coupon.Code)
	require.NoError(t, err)

	_, err = f.svc.ClaimCoupon(ctx, coupon.Code)
	assert.ErrorIs(t, err, ErrCouponNotClaimable)
}

func TestClaimCouponExpired(t *testing.T) {
	f := newCouponFixture()
	ctx := context.Background()
	customer, campaign := f.seed(t, 0)

	expired := time.Now().Add(-time.Hour)
	coupon := &models.Coupon{
		CampaignID: campaign.ID,
		CustomerID: customer.ID,
		Code:       "PERK-STALE",
		Status:     models.CouponStatusActive,
		ExpiresAt:  &expired,
	}
	require.NoError(t, f.couponRepo.Create(ctx, coupon))

	_, err := f.svc.ClaimCoupon(ctx, coupon.Code)
	assert.ErrorIs(t, err, ErrCouponNotClaimable)
}

func TestClaimCouponRevoked(t *testing.T) {
	f := newCouponFixture()
	ctx := context.Background()
	customer, campaign := f.seed(t, 0)

	coupon := &models.Coupon{
		CampaignID: campaign.ID,
		CustomerID: customer.ID,
		Code:       "PERK-GONE1",
		Status:     models.CouponStatusRevoked,
	}
	require.NoError(t, f.couponRepo.Create(ctx, coupon))

	_, err := f.svc.ClaimCoupon(ctx, coupon.Code)
	assert.ErrorIs(t, err, ErrCouponNotClaimable)
}

func TestClaimCouponUnknownCode(t *testing.T) {
	f := newCouponFixture()

	_, err := f.svc.ClaimCoupon(context.Background(), "PERK-MISSING")
	assert.ErrorIs(t, err, interfaces.ErrCouponNotFound)
}
