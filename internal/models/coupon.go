package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CouponStatus string

const (
	CouponStatusActive  CouponStatus = "active"
	CouponStatusExpired CouponStatus = "expired"
	CouponStatusRevoked CouponStatus = "revoked"
)

// Coupon is the shareable artifact behind a customer's referral code: a
// discount code tied to the sharing customer and campaign. Each successful
// claim creates a pending referral transaction for the sharer.
type Coupon struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CampaignID  primitive.ObjectID `json:"campaign_id" bson:"campaign_id" validate:"required"`
	CustomerID  primitive.ObjectID `json:"customer_id" bson:"customer_id" validate:"required"`
	Code        string             `json:"code" bson:"code" validate:"required"`
	DiscountPct float64            `json:"discount_pct" bson:"discount_pct"`
	Status      CouponStatus       `json:"status" bson:"status" default:"active"`
	UsageLimit  int                `json:"usage_limit" bson:"usage_limit" default:"0"`
	UsedCount   int                `json:"used_count" bson:"used_count" default:"0"`
	ExpiresAt   *time.Time         `json:"expires_at" bson:"expires_at"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

func (c *Coupon) IsClaimable(now time.Time) bool {
	if c.Status != CouponStatusActive {
		return false
	}
	if c.ExpiresAt != nil && now.After(*c.ExpiresAt) {
		return false
	}
	if c.UsageLimit > 0 && c.UsedCount >= c.UsageLimit {
		return false
	}
	return true
}
