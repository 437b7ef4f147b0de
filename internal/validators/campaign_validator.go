package validators

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PointRuleRequest struct {
	MinAmount float64 `json:"min_amount" validate:"bill_amount"`
	MaxAmount float64 `json:"max_amount" validate:"bill_amount"`
	Points    int     `json:"points" validate:"points_value"`
}

type CampaignCreateRequest struct {
	ShopID                   primitive.ObjectID `json:"shop_id" validate:"required"`
	Name                     string             `json:"name" validate:"required,min=2,max=100"`
	Description              string             `json:"description" validate:"omitempty,max=1000"`
	PointRules               []PointRuleRequest `json:"point_rules" validate:"omitempty,max=50,dive"`
	PointsRedemptionValue    int                `json:"points_redemption_value" validate:"omitempty,min=1"`
	PointsRedemptionDiscount float64            `json:"points_redemption_discount" validate:"omitempty,min=0,max=100"`
	MinPurchaseAmount        float64            `json:"min_purchase_amount" validate:"bill_amount"`
	ReferralPoints           int                `json:"referral_points" validate:"points_value"`
	ThemeColor               string             `json:"theme_color" validate:"omitempty,hex_color"`
	LogoURL                  string             `json:"logo_url" validate:"omitempty,url"`
}

type CampaignUpdateRequest struct {
	Name                     *string            `json:"name" validate:"omitempty,min=2,max=100"`
	Description              *string            `json:"description" validate:"omitempty,max=1000"`
	PointRules               []PointRuleRequest `json:"point_rules" validate:"omitempty,max=50,dive"`
	PointsRedemptionValue    *int               `json:"points_redemption_value" validate:"omitempty,min=1"`
	PointsRedemptionDiscount *float64           `json:"points_redemption_discount" validate:"omitempty,min=0,max=100"`
	MinPurchaseAmount        *float64           `json:"min_purchase_amount" validate:"omitempty,bill_amount"`
	ReferralPoints           *int               `json:"referral_points" validate:"omitempty,points_value"`
	IsActive                 *bool              `json:"is_active"`
	ThemeColor               *string            `json:"theme_color" validate:"omitempty,hex_color"`
	LogoURL                  *string            `json:"logo_url" validate:"omitempty,url"`
}

func ValidateCampaignCreate(req *CampaignCreateRequest) ValidationErrors {
	errors := ValidateStruct(req)
	errors = append(errors, validateRuleRanges(req.PointRules)...)
	return errors
}

func ValidateCampaignUpdate(req *CampaignUpdateRequest) ValidationErrors {
	errors := ValidateStruct(req)
	errors = append(errors, validateRuleRanges(req.PointRules)...)
	return errors
}

func validateRuleRanges(rules []PointRuleRequest) ValidationErrors {
	var errors ValidationErrors

	for i, rule := range rules {
		if rule.MaxAmount < rule.MinAmount {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("point_rules[%d]", i),
				Message: "Rule maximum amount must not be below its minimum",
			})
		}
	}

	return errors
}
