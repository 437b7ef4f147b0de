package services

import "errors"

var (
	// ErrInvalidStatus is returned when a requested transaction status is
	// outside the pending/approved/rejected enum.
	ErrInvalidStatus = errors.New("invalid transaction status")

	// ErrInvalidType is returned when a transaction is created with a type
	// outside the purchase/referral/redemption enum.
	ErrInvalidType = errors.New("invalid transaction type")

	// ErrInvalidTransition is returned when a transition out of a terminal
	// status is requested. Same-status requests are an idempotent no-op and
	// never produce this error.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInsufficientPoints is returned when a redemption request exceeds
	// the customer's available balance. Validated at transaction creation,
	// before anything reaches the ledger.
	ErrInsufficientPoints = errors.New("insufficient points")

	ErrCampaignInactive   = errors.New("campaign is not active")
	ErrCampaignRequired   = errors.New("campaign required for redemption")
	ErrCouponNotClaimable = errors.New("coupon cannot be claimed")
	ErrInvalidPointRules  = errors.New("invalid point rules")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrShopDisabled       = errors.New("shop account is disabled")
)
