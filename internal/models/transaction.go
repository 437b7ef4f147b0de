package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TransactionType string
type TransactionStatus string

const (
	TransactionTypePurchase   TransactionType = "purchase"
	TransactionTypeReferral   TransactionType = "referral"
	TransactionTypeRedemption TransactionType = "redemption"

	TransactionStatusPending  TransactionStatus = "pending"
	TransactionStatusApproved TransactionStatus = "approved"
	TransactionStatusRejected TransactionStatus = "rejected"
)

// Transaction records one purchase, referral or redemption event. It is
// created pending and moves to approved or rejected exactly once; both
// terminal states are final. Points is the signed net delta applied to the
// customer ledger when the transaction is approved (negative when a
// redemption outweighs the points earned on the same bill).
type Transaction struct {
	ID             primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	CustomerID     primitive.ObjectID  `json:"customer_id" bson:"customer_id" validate:"required"`
	CampaignID     *primitive.ObjectID `json:"campaign_id" bson:"campaign_id"`
	Type           TransactionType     `json:"type" bson:"type" validate:"required"`
	Status         TransactionStatus   `json:"status" bson:"status" default:"pending"`
	Amount         float64             `json:"amount" bson:"amount"`
	Points         int                 `json:"points" bson:"points"`
	PointsRedeemed int                 `json:"points_redeemed" bson:"points_redeemed" default:"0"`
	DiscountAmount float64             `json:"discount_amount" bson:"discount_amount" default:"0"`
	FinalAmount    float64             `json:"final_amount" bson:"final_amount" default:"0"`
	BillImageURL   string              `json:"bill_image_url" bson:"bill_image_url"`
	Notes          string              `json:"notes" bson:"notes"`
	ReviewedBy     *primitive.ObjectID `json:"reviewed_by" bson:"reviewed_by"`
	ReviewedAt     *time.Time          `json:"reviewed_at" bson:"reviewed_at"`
	CreatedAt      time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at" bson:"updated_at"`
}

func (t *Transaction) IsTerminal() bool {
	return t.Status == TransactionStatusApproved || t.Status == TransactionStatusRejected
}

func IsValidTransactionStatus(status TransactionStatus) bool {
	switch status {
	case TransactionStatusPending, TransactionStatusApproved, TransactionStatusRejected:
		return true
	}
	return false
}

func IsValidTransactionType(txType TransactionType) bool {
	switch txType {
	case TransactionTypePurchase, TransactionTypeReferral, TransactionTypeRedemption:
		return true
	}
	return false
}
