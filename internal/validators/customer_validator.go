package validators

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CustomerRegisterRequest struct {
	Name         string              `json:"name" validate:"required,min=2,max=100"`
	Phone        string              `json:"phone" validate:"required,phone_number"`
	Email        string              `json:"email" validate:"omitempty,email"`
	CampaignID   *primitive.ObjectID `json:"campaign_id"`
	ReferralCode string              `json:"referral_code" validate:"omitempty,referral_code"`
}

type CustomerUpdateRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=2,max=100"`
	Email *string `json:"email" validate:"omitempty,email"`
}

type CouponIssueRequest struct {
	CustomerID  primitive.ObjectID `json:"customer_id" validate:"required"`
	CampaignID  primitive.ObjectID `json:"campaign_id" validate:"required"`
	DiscountPct float64            `json:"discount_pct" validate:"required,min=0,max=100"`
	UsageLimit  int                `json:"usage_limit" validate:"omitempty,min=1"`
}

type CouponClaimRequest struct {
	Code       string             `json:"code" validate:"required,coupon_code"`
	CustomerID primitive.ObjectID `json:"customer_id" validate:"required"`
}

func ValidateCustomerRegister(req *CustomerRegisterRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateCustomerUpdate(req *CustomerUpdateRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateCouponIssue(req *CouponIssueRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateCouponClaim(req *CouponClaimRequest) ValidationErrors {
	return ValidateStruct(req)
}
