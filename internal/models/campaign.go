package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PointRule maps a purchase-amount range (inclusive on both ends) to a
// points award. Rules are an ordered tier list authored by the shop; lookup
// is first-match-wins, so order is meaningful and must be preserved.
type PointRule struct {
	MinAmount float64 `json:"min_amount" bson:"min_amount"`
	MaxAmount float64 `json:"max_amount" bson:"max_amount"`
	Points    int     `json:"points" bson:"points"`
}

func (r PointRule) Matches(amount float64) bool {
	return amount >= r.MinAmount && amount <= r.MaxAmount
}

// Campaign is a shop-defined set of earning and redemption rules.
// PointsRedemptionValue is the number of points that make up one redemption
// unit and PointsRedemptionDiscount the percent discount each unit unlocks.
type Campaign struct {
	ID                       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ShopID                   primitive.ObjectID `json:"shop_id" bson:"shop_id" validate:"required"`
	Name                     string             `json:"name" bson:"name" validate:"required"`
	Description              string             `json:"description" bson:"description"`
	PointRules               []PointRule        `json:"point_rules" bson:"point_rules"`
	PointsRedemptionValue    int                `json:"points_redemption_value" bson:"points_redemption_value" default:"100"`
	PointsRedemptionDiscount float64            `json:"points_redemption_discount" bson:"points_redemption_discount" default:"10"`
	MinPurchaseAmount        float64            `json:"min_purchase_amount" bson:"min_purchase_amount" default:"0"`
	ReferralPoints           int                `json:"referral_points" bson:"referral_points" default:"0"`
	IsActive                 bool               `json:"is_active" bson:"is_active" default:"true"`
	ThemeColor               string             `json:"theme_color" bson:"theme_color"`
	LogoURL                  string             `json:"logo_url" bson:"logo_url"`
	CreatedAt                time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt                time.Time          `json:"updated_at" bson:"updated_at"`
}
