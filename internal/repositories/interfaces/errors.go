package interfaces

import "errors"

// Storage-level not-found errors. Repositories wrap these with %w so callers
// can test with errors.Is regardless of the backing store.
var (
	ErrShopNotFound        = errors.New("shop not found")
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrCampaignNotFound    = errors.New("campaign not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrCouponNotFound      = errors.New("coupon not found")

	// ErrStatusConflict is returned by UpdateStatus when the record's
	// status no longer matches the expected one, meaning a concurrent
	// reviewer moved it first. Callers re-read and re-evaluate.
	ErrStatusConflict = errors.New("transaction status changed concurrently")
)
