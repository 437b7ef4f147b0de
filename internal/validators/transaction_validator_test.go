package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestValidateTransactionCreate(t *testing.T) {
	campaignID := primitive.NewObjectID()

	t.Run("valid purchase", func(t *testing.T) {
		errs := ValidateTransactionCreate(&TransactionCreateRequest{
			CustomerID: primitive.NewObjectID(),
			Type:       "purchase",
			Amount:     150,
		})
		assert.Empty(t, errs)
	})

	t.Run("purchase requires positive amount", func(t *testing.T) {
		errs := ValidateTransactionCreate(&TransactionCreateRequest{
			CustomerID: primitive.NewObjectID(),
			Type:       "purchase",
			Amount:     0,
		})
		assert.NotEmpty(t, errs)
	})

	t.Run("unknown type", func(t *testing.T) {
		errs := ValidateTransactionCreate(&TransactionCreateRequest{
			CustomerID: primitive.NewObjectID(),
			Type:       "cashback",
			Amount:     10,
		})
		assert.NotEmpty(t, errs)
	})

	t.Run("redemption requires campaign", func(t *testing.T) {
		errs := ValidateTransactionCreate(&TransactionCreateRequest{
			CustomerID:     primitive.NewObjectID(),
			Type:           "redemption",
			Amount:         100,
			PointsToRedeem: 200,
		})
		assert.NotEmpty(t, errs)
	})

	t.Run("redemption requires points", func(t *testing.T) {
		errs := ValidateTransactionCreate(&TransactionCreateRequest{
			CustomerID: primitive.NewObjectID(),
			CampaignID: &campaignID,
			Type:       "redemption",
			Amount:     100,
		})
		assert.NotEmpty(t, errs)
	})

	t.Run("valid redemption", func(t *testing.T) {
		errs := ValidateTransactionCreate(&TransactionCreateRequest{
			CustomerID:     primitive.NewObjectID(),
			CampaignID:     &campaignID,
			Type:           "redemption",
			Amount:         100,
			PointsToRedeem: 200,
		})
		assert.Empty(t, errs)
	})
}

func TestValidateTransactionReview(t *testing.T) {
	assert.Empty(t, ValidateTransactionReview(&TransactionReviewRequest{Status: "approved"}))
	assert.Empty(t, ValidateTransactionReview(&TransactionReviewRequest{Status: "rejected", Notes: "blurry bill photo"}))
	// pending is accepted so a duplicate review request stays a no-op
	assert.Empty(t, ValidateTransactionReview(&TransactionReviewRequest{Status: "pending"}))
	assert.NotEmpty(t, ValidateTransactionReview(&TransactionReviewRequest{Status: "cancelled"}))
	assert.NotEmpty(t, ValidateTransactionReview(&TransactionReviewRequest{}))
}

func TestValidateCustomerRegister(t *testing.T) {
	assert.Empty(t, ValidateCustomerRegister(&CustomerRegisterRequest{
		Name:  "Asha Verma",
		Phone: "+15550100200",
		Email: "asha@example.com",
	}))

	assert.NotEmpty(t, ValidateCustomerRegister(&CustomerRegisterRequest{
		Name:  "A",
		Phone: "+15550100200",
	}), "single-character name")

	assert.NotEmpty(t, ValidateCustomerRegister(&CustomerRegisterRequest{
		Name:  "Asha Verma",
		Phone: "not-a-phone",
	}), "invalid phone")

	assert.NotEmpty(t, ValidateCustomerRegister(&CustomerRegisterRequest{
		Name:         "Asha Verma",
		Phone:        "+15550100200",
		ReferralCode: "bad code!",
	}), "invalid referral code")
}
