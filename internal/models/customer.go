package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Customer is a shop affiliate. TotalPoints is the cumulative lifetime
// points ever applied by the ledger and RedeemedPoints the cumulative points
// spent on redemptions; TotalPoints >= RedeemedPoints is enforced by
// redemption validation before a transaction is created, never by the ledger.
type Customer struct {
	ID             primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	ShopID         *primitive.ObjectID `json:"shop_id" bson:"shop_id"`
	CampaignID     *primitive.ObjectID `json:"campaign_id" bson:"campaign_id"`
	Name           string              `json:"name" bson:"name" validate:"required"`
	Phone          string              `json:"phone" bson:"phone" validate:"required"`
	Email          string              `json:"email" bson:"email"`
	ReferralCode   string              `json:"referral_code" bson:"referral_code" validate:"required"`
	TotalPoints    int                 `json:"total_points" bson:"total_points" default:"0"`
	RedeemedPoints int                 `json:"redeemed_points" bson:"redeemed_points" default:"0"`
	IsActive       bool                `json:"is_active" bson:"is_active" default:"true"`
	CreatedAt      time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at" bson:"updated_at"`
}

func (c *Customer) AvailablePoints() int {
	return c.TotalPoints - c.RedeemedPoints
}
