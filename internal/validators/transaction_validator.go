package validators

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shopperks/internal/models"
)

type TransactionCreateRequest struct {
	CustomerID     primitive.ObjectID  `json:"customer_id" validate:"required"`
	CampaignID     *primitive.ObjectID `json:"campaign_id"`
	Type           string              `json:"type" validate:"required,oneof=purchase referral redemption"`
	Amount         float64             `json:"amount" validate:"bill_amount"`
	PointsToRedeem int                 `json:"points_to_redeem" validate:"points_value"`
	BillImageURL   string              `json:"bill_image_url" validate:"omitempty,url"`
	Notes          string              `json:"notes" validate:"omitempty,max=500"`
}

type TransactionReviewRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
	Notes  string `json:"notes" validate:"omitempty,max=500"`
}

type RedemptionPreviewRequest struct {
	CampaignID     primitive.ObjectID `json:"campaign_id" validate:"required"`
	Amount         float64            `json:"amount" validate:"required,bill_amount"`
	PointsToRedeem int                `json:"points_to_redeem" validate:"required,points_value"`
}

func ValidateTransactionCreate(req *TransactionCreateRequest) ValidationErrors {
	errors := ValidateStruct(req)

	if models.TransactionType(req.Type) == models.TransactionTypeRedemption {
		if req.CampaignID == nil {
			errors = append(errors, ValidationError{
				Field:   "campaign_id",
				Message: "Campaign is required when redeeming points",
			})
		}
		if req.PointsToRedeem == 0 {
			errors = append(errors, ValidationError{
				Field:   "points_to_redeem",
				Message: "Points to redeem must be greater than zero",
			})
		}
	}

	if models.TransactionType(req.Type) == models.TransactionTypePurchase && req.Amount <= 0 {
		errors = append(errors, ValidationError{
			Field:   "amount",
			Message: "Purchase amount must be greater than zero",
		})
	}

	return errors
}

func ValidateTransactionReview(req *TransactionReviewRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateRedemptionPreview(req *RedemptionPreviewRequest) ValidationErrors {
	return ValidateStruct(req)
}
